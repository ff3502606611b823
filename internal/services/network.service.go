package services

import (
	"context"
	"net/netip"
	"slices"

	"sysinfo-api/internal/models"

	"github.com/shirou/gopsutil/v3/net"
)

// NetworkInterfaces lists interfaces in the order the OS reports them
func (p *HostProvider) NetworkInterfaces(ctx context.Context) ([]models.NetworkInterface, error) {
	ifaces, err := net.InterfacesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.NetworkInterface, 0, len(ifaces))
	for _, iface := range ifaces {
		result = append(result, toNetworkInterface(iface))
	}
	return result, nil
}

// toNetworkInterface keeps the first IPv4 and IPv6 address of an interface
func toNetworkInterface(iface net.InterfaceStat) models.NetworkInterface {
	ni := models.NetworkInterface{
		Iface:     iface.Name,
		MAC:       iface.HardwareAddr,
		MTU:       iface.MTU,
		OperState: "down",
		Internal:  slices.Contains(iface.Flags, "loopback"),
	}
	if slices.Contains(iface.Flags, "up") {
		ni.OperState = "up"
	}

	for _, a := range iface.Addrs {
		prefix, err := netip.ParsePrefix(a.Addr)
		if err != nil {
			continue
		}
		addr := prefix.Addr()
		switch {
		case addr.Is4() && ni.IP4 == "":
			ni.IP4 = addr.String()
			ni.IP4Subnet = netmask(prefix)
		case addr.Is6() && ni.IP6 == "":
			ni.IP6 = addr.WithZone("").String()
			ni.IP6Subnet = netmask(prefix)
		}
	}
	return ni
}

// netmask renders a prefix length as a dotted (IPv4) or colon (IPv6) mask
func netmask(prefix netip.Prefix) string {
	bits := prefix.Bits()
	size := prefix.Addr().BitLen() / 8

	mask := make([]byte, size)
	for i := range mask {
		switch {
		case bits >= 8:
			mask[i] = 0xff
			bits -= 8
		case bits > 0:
			mask[i] = byte(0xff << (8 - bits))
			bits = 0
		}
	}

	m, _ := netip.AddrFromSlice(mask)
	return m.String()
}
