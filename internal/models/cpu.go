package models

// CPU represents processor identity and vendor information
type CPU struct {
	Manufacturer  string   `json:"manufacturer"`
	Brand         string   `json:"brand"`
	Vendor        string   `json:"vendor"`
	Family        string   `json:"family"`
	Model         string   `json:"model"`
	Stepping      int32    `json:"stepping"`
	Speed         float64  `json:"speed"`
	Cores         int      `json:"cores"`
	PhysicalCores int      `json:"physicalCores"`
	Cache         int32    `json:"cache"`
	Flags         []string `json:"flags,omitempty"`
}

// CurrentLoad represents instantaneous CPU load
type CurrentLoad struct {
	AvgLoad     float64   `json:"avgLoad"`
	CurrentLoad float64   `json:"currentLoad"`
	CPUs        []CPULoad `json:"cpus,omitempty"`
}

// CPULoad is the load of a single logical core
type CPULoad struct {
	Load float64 `json:"load"`
}
