package models

// NetworkInterface represents one network interface and its primary addresses
type NetworkInterface struct {
	Iface     string `json:"iface"`
	IP4       string `json:"ip4"`
	IP4Subnet string `json:"ip4subnet"`
	IP6       string `json:"ip6"`
	IP6Subnet string `json:"ip6subnet"`
	MAC       string `json:"mac"`
	MTU       int    `json:"mtu"`
	OperState string `json:"operstate"`
	Internal  bool   `json:"internal"`
}
