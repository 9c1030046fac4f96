package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/projectdiscovery/netsweep/pkg/types"
)

// Format selects how results are rendered on stdout.
type Format string

const (
	// FormatJSON renders a single compact JSON array.
	FormatJSON Format = "json"
	// FormatTable renders an aligned, optionally colored table.
	FormatTable Format = "table"
)

// ParseFormat maps a flag value onto a Format.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatTable:
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (valid: %s, %s)", value, FormatJSON, FormatTable)
	}
}

const emptyField = "-"

// Writer renders devices and networks.
type Writer struct {
	format Format
	au     *aurora.Aurora
}

// New creates a writer for the given format.
func New(format Format, noColor bool) *Writer {
	return &Writer{
		format: format,
		au:     aurora.New(aurora.WithColors(!noColor)),
	}
}

// Format returns the format the writer renders.
func (w *Writer) Format() Format {
	return w.format
}

// Devices renders devices in the writer's format.
func (w *Writer) Devices(devices []types.Device) ([]byte, error) {
	if w.format == FormatTable {
		return w.deviceTable(devices), nil
	}
	return JSON(devices)
}

// Networks renders networks in the writer's format.
func (w *Writer) Networks(networks []types.Network) ([]byte, error) {
	if w.format == FormatTable {
		return w.networkTable(networks), nil
	}
	return JSON(networks)
}

// JSON renders items as one compact JSON array followed by a newline.
// A nil or empty slice renders as [].
func JSON[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (w *Writer) deviceTable(devices []types.Device) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s\n", w.au.Bold(fmt.Sprintf("%-15s  %-17s  %-20s  %s", "IP Address", "MAC Address", "Vendor", "Hostname")))
	fmt.Fprintln(&buf, strings.Repeat("─", 79))

	for _, d := range devices {
		fmt.Fprintf(&buf, "%s  %s  %s  %s\n",
			w.au.Green(pad(orEmpty(d.IP), 15)),
			pad(orEmpty(d.MAC), 17),
			w.au.Cyan(pad(truncate(orEmpty(d.Vendor), 20), 20)),
			orEmpty(d.Hostname))
	}

	fmt.Fprintf(&buf, "\n%d device(s) up\n", len(devices))
	return buf.Bytes()
}

func (w *Writer) networkTable(networks []types.Network) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s\n", w.au.Bold(fmt.Sprintf("%-12s %-15s  %s", "Interface", "IP Address", "Network CIDR")))
	fmt.Fprintln(&buf, strings.Repeat("─", 54))

	for _, n := range networks {
		fmt.Fprintf(&buf, "%-12s %-15s  %s\n", n.Interface, n.IP, w.au.Green(n.CIDR))
	}
	return buf.Bytes()
}

func orEmpty(s string) string {
	if s == "" {
		return emptyField
	}
	return s
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max-3]) + "..."
	}
	return s
}
