package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/mapcidr"
	"github.com/projectdiscovery/netsweep/pkg/netinfo"
	"github.com/projectdiscovery/netsweep/pkg/nmap"
	"github.com/projectdiscovery/netsweep/pkg/output"
	"github.com/projectdiscovery/netsweep/pkg/target"
	"github.com/projectdiscovery/netsweep/pkg/types"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	"github.com/rs/xid"
)

// Scanner produces a raw nmap XML report for a range.
type Scanner interface {
	Scan(ctx context.Context, cidr string) ([]byte, error)
}

// Runner contains the internal logic of the program
type Runner struct {
	options *Options
	runID   xid.ID
	target  string
	writer  *output.Writer
	scanner Scanner
	stdout  io.Writer
}

// NewRunner validates options and returns a runner backed by nmap.
// Argument errors wrap target.ErrUsage or target.ErrInvalidRange.
func NewRunner(options *Options) (*Runner, error) {
	return newRunner(options, nmap.New(options.NmapPath), os.Stdout)
}

func newRunner(options *Options, scanner Scanner, stdout io.Writer) (*Runner, error) {
	format, err := output.ParseFormat(options.Format)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		options: options,
		runID:   xid.New(),
		writer:  output.New(format, options.NoColor),
		scanner: scanner,
		stdout:  stdout,
	}

	if options.ListNetworks {
		return r, nil
	}

	cidr, err := target.FromArgs(options.Targets)
	if err != nil {
		return nil, err
	}
	r.target = cidr

	return r, nil
}

// Run the instance
func (r *Runner) Run(ctx context.Context) error {
	if r.options.ListNetworks {
		return r.listNetworks()
	}
	return r.discover(ctx)
}

func (r *Runner) discover(ctx context.Context) error {
	gologger.Verbose().Msgf("[%s] using %s", r.runID, r.options.NmapPath)

	if count, err := mapcidr.AddressCount(r.target); err == nil {
		gologger.Info().Msgf("Scanning %s (%s addresses)", r.target, humanize.Comma(int64(count)))
	} else {
		gologger.Info().Msgf("Scanning %s", r.target)
	}

	if !nmap.IsPrivileged() {
		gologger.Warning().Msg("Not running as root, nmap will not report MAC addresses or vendors")
	}

	started := time.Now()
	report, err := r.scanner.Scan(ctx, r.target)
	if err != nil {
		// a killed nmap is reported as a cancellation, not a scan failure
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("scan of %s interrupted: %w", r.target, ctxErr)
		}
		return err
	}
	gologger.Verbose().Msgf("[%s] nmap finished in %s (%s report)", r.runID, time.Since(started).Round(time.Millisecond), humanize.Bytes(uint64(len(report))))

	devices, err := nmap.ParseReport(report)
	if err != nil {
		return err
	}
	gologger.Info().Msgf("Found %d device(s) up", len(devices))

	return r.writeDevices(devices)
}

func (r *Runner) writeDevices(devices []types.Device) error {
	data, err := r.writer.Devices(devices)
	if err != nil {
		return errorutil.NewWithErr(err).Msgf("could not render devices")
	}
	if _, err := r.stdout.Write(data); err != nil {
		return errorutil.NewWithErr(err).Msgf("could not write devices")
	}

	if r.options.Output == "" {
		return nil
	}

	// the output file is always json, whatever is shown on screen
	if r.writer.Format() != output.FormatJSON {
		if data, err = output.JSON(devices); err != nil {
			return errorutil.NewWithErr(err).Msgf("could not render devices")
		}
	}
	if dir := filepath.Dir(r.options.Output); !fileutil.FolderExists(dir) {
		if err := fileutil.CreateFolder(dir); err != nil {
			return errorutil.NewWithErr(err).Msgf("could not create output folder %s", dir)
		}
	}
	if err := os.WriteFile(r.options.Output, data, 0644); err != nil {
		return errorutil.NewWithErr(err).Msgf("could not write output file %s", r.options.Output)
	}
	gologger.Verbose().Msgf("[%s] wrote %d device(s) to %s", r.runID, len(devices), r.options.Output)
	return nil
}

func (r *Runner) listNetworks() error {
	networks, err := netinfo.Detect()
	if err != nil {
		return err
	}

	if primary, err := netinfo.Primary(networks); err == nil {
		gologger.Info().Msgf("Primary network: %s (interface: %s, your IP: %s)", primary.CIDR, primary.Interface, primary.IP)
		gologger.Info().Msgf("To scan it: netsweep %s", primary.CIDR)
	} else {
		gologger.Warning().Msgf("%s", err)
	}

	data, err := r.writer.Networks(networks)
	if err != nil {
		return errorutil.NewWithErr(err).Msgf("could not render networks")
	}
	_, err = r.stdout.Write(data)
	return err
}
