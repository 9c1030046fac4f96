// Package target validates the network range handed to a scan.
//
// The check is purely syntactic: a dotted quad of 1-3 digit groups followed
// by a slash and a 1-2 digit prefix length. Octet and prefix bounds are not
// enforced, so "999.1.1.1/64" is accepted and left for nmap to judge.
package target

import (
	"errors"
	"fmt"
	"regexp"
)

// Example is the range shown in usage and error hints.
const Example = "192.168.1.0/24"

var (
	// ErrUsage is returned when the number of positional arguments is not one.
	ErrUsage = errors.New("expected exactly one network range argument")
	// ErrInvalidRange is returned when the argument is not CIDR shaped.
	ErrInvalidRange = errors.New("invalid CIDR format")
)

var cidrPattern = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}/\d{1,2}$`)

// Validate checks that value looks like an IPv4 CIDR.
func Validate(value string) error {
	if !cidrPattern.MatchString(value) {
		return fmt.Errorf("%w: %q (expected format: %s)", ErrInvalidRange, value, Example)
	}
	return nil
}

// FromArgs returns the single validated range from positional arguments.
func FromArgs(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w, got %d", ErrUsage, len(args))
	}
	if err := Validate(args[0]); err != nil {
		return "", err
	}
	return args[0], nil
}
