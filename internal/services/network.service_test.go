package services

import (
	"net/netip"
	"testing"

	"sysinfo-api/internal/models"

	"github.com/shirou/gopsutil/v3/net"
	"github.com/stretchr/testify/assert"
)

func TestToNetworkInterface(t *testing.T) {
	tests := []struct {
		name  string
		iface net.InterfaceStat
		want  models.NetworkInterface
	}{
		{
			name: "ethernet with v4 and v6",
			iface: net.InterfaceStat{
				Name:         "eth0",
				MTU:          1500,
				HardwareAddr: "52:54:00:12:34:56",
				Flags:        []string{"up", "broadcast", "multicast"},
				Addrs: net.InterfaceAddrList{
					{Addr: "192.168.1.10/24"},
					{Addr: "192.168.1.11/24"},
					{Addr: "fe80::5054:ff:fe12:3456/64"},
				},
			},
			want: models.NetworkInterface{
				Iface:     "eth0",
				IP4:       "192.168.1.10",
				IP4Subnet: "255.255.255.0",
				IP6:       "fe80::5054:ff:fe12:3456",
				IP6Subnet: "ffff:ffff:ffff:ffff::",
				MAC:       "52:54:00:12:34:56",
				MTU:       1500,
				OperState: "up",
			},
		},
		{
			name: "loopback",
			iface: net.InterfaceStat{
				Name:  "lo",
				MTU:   65536,
				Flags: []string{"up", "loopback"},
				Addrs: net.InterfaceAddrList{{Addr: "127.0.0.1/8"}, {Addr: "::1/128"}},
			},
			want: models.NetworkInterface{
				Iface:     "lo",
				IP4:       "127.0.0.1",
				IP4Subnet: "255.0.0.0",
				IP6:       "::1",
				IP6Subnet: "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
				MTU:       65536,
				OperState: "up",
				Internal:  true,
			},
		},
		{
			name: "down without addresses",
			iface: net.InterfaceStat{
				Name:  "wlan0",
				MTU:   1500,
				Flags: []string{"broadcast"},
				Addrs: net.InterfaceAddrList{{Addr: "garbage"}},
			},
			want: models.NetworkInterface{Iface: "wlan0", MTU: 1500, OperState: "down"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toNetworkInterface(tt.iface))
		})
	}
}

func TestNetmask(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"10.0.0.0/8", "255.0.0.0"},
		{"172.16.0.0/12", "255.240.0.0"},
		{"192.168.1.0/26", "255.255.255.192"},
		{"0.0.0.0/0", "0.0.0.0"},
		{"2001:db8::/32", "ffff:ffff::"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.want, netmask(netip.MustParsePrefix(tt.prefix)))
		})
	}
}
