package nmap

import "runtime"

// InstallHint returns a one line hint for installing nmap on this platform.
func InstallHint() string {
	return installHintFor(runtime.GOOS)
}

func installHintFor(goos string) string {
	switch goos {
	case "darwin":
		return "Make sure nmap is installed: brew install nmap"
	case "linux":
		return "Make sure nmap is installed: sudo apt install nmap (or dnf/pacman/apk equivalent)"
	case "windows":
		return "Make sure nmap is installed: https://nmap.org/download.html#windows"
	default:
		return "Make sure nmap is installed: https://nmap.org/download.html"
	}
}
