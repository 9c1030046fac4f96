package nmap

import (
	"encoding/xml"
	"fmt"

	"github.com/projectdiscovery/netsweep/pkg/types"
)

const (
	rootElement = "nmaprun"
	stateUp     = "up"
	addrIPv4    = "ipv4"
	addrMAC     = "mac"
)

// report is the subset of the nmap XML report read by ParseReport
type report struct {
	XMLName xml.Name
	Hosts   []reportHost `xml:"host"`
}

type reportHost struct {
	Status    reportStatus     `xml:"status"`
	Addresses []reportAddress  `xml:"address"`
	Hostnames []reportHostname `xml:"hostnames>hostname"`
}

type reportStatus struct {
	State string `xml:"state,attr"`
}

type reportAddress struct {
	Addr     string `xml:"addr,attr"`
	AddrType string `xml:"addrtype,attr"`
	Vendor   string `xml:"vendor,attr"`
}

type reportHostname struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
}

// ParseReport extracts a device for every host marked up in an nmap XML
// report, in report order. A well formed document with another root element
// yields no devices.
func ParseReport(data []byte) ([]types.Device, error) {
	var r report
	if err := xml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("could not parse nmap report: %w", err)
	}

	devices := []types.Device{}
	if r.XMLName.Local != rootElement {
		return devices, nil
	}

	for _, host := range r.Hosts {
		if host.Status.State != stateUp {
			continue
		}
		devices = append(devices, host.device())
	}
	return devices, nil
}

func (h reportHost) device() types.Device {
	var device types.Device

	if addr, ok := h.address(addrIPv4); ok {
		device.IP = addr.Addr
	}

	if addr, ok := h.address(addrMAC); ok && addr.Addr != "" {
		device.MAC = addr.Addr
		device.Vendor = addr.Vendor
		if device.Vendor == "" {
			device.Vendor = types.UnknownVendor
		}
	}

	if len(h.Hostnames) > 0 {
		device.Hostname = h.Hostnames[0].Name
	}

	return device
}

// address returns the first address entry of the given type
func (h reportHost) address(addrType string) (reportAddress, bool) {
	for _, addr := range h.Addresses {
		if addr.AddrType == addrType {
			return addr, true
		}
	}
	return reportAddress{}, false
}
