// Package netinfo lists the IPv4 networks attached to local interfaces so a
// user can pick a range to scan.
package netinfo

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/projectdiscovery/netsweep/pkg/types"
	sliceutil "github.com/projectdiscovery/utils/slice"
	psnet "github.com/shirou/gopsutil/v3/net"
)

// ErrNoNetworks is returned by Primary when no usable network was found.
var ErrNoNetworks = errors.New("no networks detected")

// skipPrefixes are virtual or tunnel interfaces that never host a LAN
var skipPrefixes = []string{
	"awdl",   // Apple Wireless Direct Link
	"llw",    // Low Latency WLAN
	"utun",   // VPN tunnels
	"bridge", // Bridges
	"docker", // Docker
	"veth",   // Virtual Ethernet
	"virbr",  // Virtual Bridge
}

// Detect returns one entry per IPv4 address on every up, non-loopback,
// physical-looking interface.
func Detect() ([]types.Network, error) {
	ifaces, err := psnet.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to get interfaces: %w", err)
	}
	return fromInterfaces(ifaces), nil
}

func fromInterfaces(ifaces psnet.InterfaceStatList) []types.Network {
	var networks []types.Network

	for _, iface := range ifaces {
		if hasFlag(iface.Flags, "loopback") || !hasFlag(iface.Flags, "up") {
			continue
		}
		if skipInterface(iface.Name) {
			continue
		}

		for _, addr := range iface.Addrs {
			ip, ipNet, err := net.ParseCIDR(addr.Addr)
			if err != nil {
				continue
			}
			ip4 := ip.To4()
			if ip4 == nil {
				continue
			}

			ones, _ := ipNet.Mask.Size()
			networks = append(networks, types.Network{
				Interface: iface.Name,
				IP:        ip4.String(),
				CIDR:      fmt.Sprintf("%s/%d", ipNet.IP.String(), ones),
			})
		}
	}

	return sliceutil.Dedupe(networks)
}

// Primary picks the network most likely to be the user's LAN: en0 first,
// then wireless, then wired interfaces, then whatever was found first.
func Primary(networks []types.Network) (types.Network, error) {
	if len(networks) == 0 {
		return types.Network{}, ErrNoNetworks
	}

	for _, n := range networks {
		if n.Interface == "en0" {
			return n, nil
		}
	}
	for _, n := range networks {
		if strings.HasPrefix(n.Interface, "wlan") {
			return n, nil
		}
	}
	for _, n := range networks {
		if strings.HasPrefix(n.Interface, "eth") || strings.HasPrefix(n.Interface, "en") {
			return n, nil
		}
	}
	return networks[0], nil
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, flag) {
			return true
		}
	}
	return false
}

func skipInterface(name string) bool {
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
