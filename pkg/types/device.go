package types

// UnknownVendor is reported when a MAC address carries no vendor attribute.
const UnknownVendor = "Unknown"

// Device is a host reported as up by a discovery scan.
//
// All fields are optional. Vendor is only ever set together with MAC.
type Device struct {
	IP       string `json:"ip,omitempty"`
	MAC      string `json:"mac,omitempty"`
	Vendor   string `json:"vendor,omitempty"`
	Hostname string `json:"hostname,omitempty"`
}

// Network is a local IPv4 network attached to an interface
type Network struct {
	Interface string `json:"interface"`
	IP        string `json:"ip"`
	CIDR      string `json:"cidr"`
}
