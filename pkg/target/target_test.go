package target

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "private /24", value: "192.168.1.0/24"},
		{name: "single digit groups", value: "1.2.3.4/8"},
		{name: "octets out of range are accepted", value: "999.999.999.999/24"},
		{name: "prefix above 32 is accepted", value: "10.0.0.0/99"},
		{name: "missing prefix", value: "192.168.1.0", wantErr: true},
		{name: "three digit prefix", value: "192.168.1.0/240", wantErr: true},
		{name: "four digit octet", value: "1921.168.1.0/24", wantErr: true},
		{name: "too few octets", value: "192.168.1/24", wantErr: true},
		{name: "hostname", value: "printer.local/24", wantErr: true},
		{name: "ipv6", value: "fe80::/64", wantErr: true},
		{name: "trailing garbage", value: "192.168.1.0/24;ls", wantErr: true},
		{name: "leading space", value: " 192.168.1.0/24", wantErr: true},
		{name: "trailing newline", value: "192.168.1.0/24\n", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrInvalidRange))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestFromArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{name: "single valid range", args: []string{"10.0.0.0/16"}, want: "10.0.0.0/16"},
		{name: "no arguments", args: nil, wantErr: ErrUsage},
		{name: "two valid ranges", args: []string{"10.0.0.0/16", "192.168.1.0/24"}, wantErr: ErrUsage},
		{name: "single invalid range", args: []string{"10.0.0.0"}, wantErr: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromArgs(tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
