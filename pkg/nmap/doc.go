// Package nmap runs nmap in host discovery mode and turns its XML report
// into device records.
//
// The command line is fixed:
//
//	nmap -sn -T4 -oX - <range>
//
// -sn disables port scanning, -T4 selects the aggressive timing template and
// -oX - writes the XML report to stdout. The range is passed as a single argv
// element and is never interpreted by a shell.
//
// Example usage:
//
//	scanner := nmap.New("nmap")
//	report, err := scanner.Scan(ctx, "192.168.1.0/24")
//	if err != nil {
//		// errors.Is(err, nmap.ErrScanFailed)
//	}
//	devices, err := nmap.ParseReport(report)
//
// Privilege Requirements:
// - nmap only reports MAC addresses and vendors when run as root/admin
// - IsPrivileged reports whether the current process qualifies
package nmap
