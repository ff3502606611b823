package models

// DiskLayout describes one physical disk
type DiskLayout struct {
	Device        string `json:"device"`
	Type          string `json:"type"`
	Name          string `json:"name"`
	Vendor        string `json:"vendor"`
	Size          uint64 `json:"size"`
	SerialNum     string `json:"serialNum"`
	InterfaceType string `json:"interfaceType"`
	Removable     bool   `json:"removable"`
}
