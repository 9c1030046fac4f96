package nmap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeStub installs a shell script standing in for nmap and returns its path
func writeStub(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub nmap requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "nmap")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestNewDefaultsBinary(t *testing.T) {
	require.Equal(t, DefaultBinary, New("").Binary())
	require.Equal(t, DefaultBinary, New("   ").Binary())
	require.Equal(t, "/opt/nmap/bin/nmap", New("/opt/nmap/bin/nmap").Binary())
}

func TestArgs(t *testing.T) {
	s := New("")
	require.Equal(t, []string{"-sn", "-T4", "-oX", "-", "192.168.1.0/24"}, s.Args("192.168.1.0/24"))
	// the fixed flags must not be mutated between calls
	require.Equal(t, []string{"-sn", "-T4", "-oX", "-", "10.0.0.0/8"}, s.Args("10.0.0.0/8"))
}

func TestScanCapturesStdout(t *testing.T) {
	stub := writeStub(t, `printf '%s\n' "$@" > "$(dirname "$0")/args"
echo "Warning: stub" >&2
cat <<'XML'
<nmaprun><host><status state="up"/><address addr="192.168.1.10" addrtype="ipv4"/></host></nmaprun>
XML`)

	out, err := New(stub).Scan(context.Background(), "192.168.1.0/24")
	require.NoError(t, err)
	require.Contains(t, string(out), `addr="192.168.1.10"`)
	require.NotContains(t, string(out), "Warning: stub")

	args, err := os.ReadFile(filepath.Join(filepath.Dir(stub), "args"))
	require.NoError(t, err)
	require.Equal(t, []string{"-sn", "-T4", "-oX", "-", "192.168.1.0/24"}, strings.Fields(string(args)))

	devices, err := ParseReport(out)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	require.Equal(t, "192.168.1.10", devices[0].IP)
}

func TestScanNonZeroExit(t *testing.T) {
	stub := writeStub(t, `echo "Failed to resolve given hostname/IP" >&2
exit 1`)

	out, err := New(stub).Scan(context.Background(), "192.168.1.0/24")
	require.Nil(t, out)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrScanFailed))

	var scanErr *ScanError
	require.True(t, errors.As(err, &scanErr))
	require.Equal(t, 1, scanErr.ExitCode)
	require.Equal(t, "Failed to resolve given hostname/IP", scanErr.Stderr)
}

func TestScanMissingBinary(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := New(missing).Scan(context.Background(), "192.168.1.0/24")
	require.ErrorIs(t, err, ErrScanFailed)

	var scanErr *ScanError
	require.ErrorAs(t, err, &scanErr)
	require.Equal(t, -1, scanErr.ExitCode)
	require.Contains(t, scanErr.Error(), missing)
}

func TestScanCanceled(t *testing.T) {
	stub := writeStub(t, "sleep 5")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(stub).Scan(ctx, "192.168.1.0/24")
	require.ErrorIs(t, err, ErrScanFailed)
}

func TestInstallHintFor(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{goos: "darwin", want: "brew install nmap"},
		{goos: "linux", want: "apt install nmap"},
		{goos: "windows", want: "nmap.org/download.html#windows"},
		{goos: "freebsd", want: "nmap.org/download.html"},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			require.Contains(t, installHintFor(tt.goos), tt.want)
		})
	}
	require.NotEmpty(t, InstallHint())
}
