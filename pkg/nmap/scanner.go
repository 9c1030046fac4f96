package nmap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/projectdiscovery/gologger"
)

// DefaultBinary is the executable looked up in $PATH when no path is configured.
const DefaultBinary = "nmap"

// ErrScanFailed is matched by every error returned from Scanner.Scan.
var ErrScanFailed = errors.New("nmap command failed")

// discoveryFlags disable port scanning, select aggressive timing and write
// the XML report to stdout.
var discoveryFlags = []string{"-sn", "-T4", "-oX", "-"}

// ScanError describes an nmap invocation that could not start or exited non-zero.
type ScanError struct {
	Binary   string
	ExitCode int // -1 when the process never started or was killed
	Stderr   string
	Err      error
}

func (e *ScanError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s: %s: %v", ErrScanFailed, e.Binary, e.Err)
	}
	return fmt.Sprintf("%s: %s exited with status %d", ErrScanFailed, e.Binary, e.ExitCode)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Is makes every ScanError match ErrScanFailed.
func (e *ScanError) Is(target error) bool {
	return target == ErrScanFailed
}

// Scanner invokes the nmap binary.
type Scanner struct {
	binary string
}

// New creates a scanner for the given binary, falling back to DefaultBinary.
func New(binary string) *Scanner {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultBinary
	}
	return &Scanner{binary: binary}
}

// Binary returns the executable the scanner runs.
func (s *Scanner) Binary() string {
	return s.binary
}

// Args returns the argument vector used to scan cidr.
func (s *Scanner) Args(cidr string) []string {
	args := make([]string, 0, len(discoveryFlags)+1)
	args = append(args, discoveryFlags...)
	return append(args, cidr)
}

// Scan runs a host discovery scan against cidr and returns the raw XML report.
// It blocks until the process exits.
func (s *Scanner) Scan(ctx context.Context, cidr string) ([]byte, error) {
	args := s.Args(cidr)
	cmd := exec.CommandContext(ctx, s.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	gologger.Debug().Msgf("running %s %s", s.binary, strings.Join(args, " "))

	if err := cmd.Start(); err != nil {
		return nil, &ScanError{Binary: s.binary, ExitCode: -1, Err: err}
	}

	if err := cmd.Wait(); err != nil {
		scanErr := &ScanError{
			Binary:   s.binary,
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			scanErr.ExitCode = exitErr.ExitCode()
		}
		return nil, scanErr
	}

	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		gologger.Verbose().Msgf("nmap stderr: %s", msg)
	}

	return stdout.Bytes(), nil
}
