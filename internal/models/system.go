package models

// SystemInformation is the aggregate returned by GET /api/v1/sysinfo.
// It is built fresh for every request and never modified afterwards.
type SystemInformation struct {
	CPU               CPU                `json:"cpu"`
	System            System             `json:"system"`
	Mem               Memory             `json:"mem"`
	OS                OS                 `json:"os"`
	CurrentLoad       CurrentLoad        `json:"currentLoad"`
	Processes         Processes          `json:"processes"`
	DiskLayout        []DiskLayout       `json:"diskLayout"`
	NetworkInterfaces []NetworkInterface `json:"networkInterfaces"`
}

// System describes the machine manufacturer and model
type System struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Version      string `json:"version"`
	Serial       string `json:"serial"`
	UUID         string `json:"uuid"`
	SKU          string `json:"sku"`
	Virtual      bool   `json:"virtual"`
	VirtualHost  string `json:"virtualHost,omitempty"`
}

// OS describes the platform and distribution
type OS struct {
	Platform       string `json:"platform"`
	Distro         string `json:"distro"`
	Release        string `json:"release"`
	PlatformFamily string `json:"platformFamily"`
	Kernel         string `json:"kernel"`
	Arch           string `json:"arch"`
	Hostname       string `json:"hostname"`
	Uptime         uint64 `json:"uptime"`
	BootTime       uint64 `json:"bootTime"`
}
