//go:build !unix && !windows

package nmap

// IsPrivileged always returns false on platforms without a privilege model.
func IsPrivileged() bool {
	return false
}
