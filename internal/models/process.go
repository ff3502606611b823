package models

// Processes holds process counts by state
type Processes struct {
	All      int `json:"all"`
	Running  int `json:"running"`
	Blocked  int `json:"blocked"`
	Sleeping int `json:"sleeping"`
	Unknown  int `json:"unknown"`
}
