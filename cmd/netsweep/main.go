package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/netsweep/internal/runner"
	"github.com/projectdiscovery/netsweep/pkg/nmap"
	"github.com/projectdiscovery/netsweep/pkg/target"
)

func main() {
	options := runner.ParseOptions()

	netsweepRunner, err := runner.NewRunner(options)
	if err != nil {
		if errors.Is(err, target.ErrUsage) || errors.Is(err, target.ErrInvalidRange) {
			runner.PrintUsage(os.Stderr)
		}
		gologger.Fatal().Msgf("%s\n", err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup close handler
	go func() {
		<-c
		gologger.Info().Msg("Ctrl+C pressed in Terminal, Exiting...")
		cancel()
	}()

	if err := netsweepRunner.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			gologger.Fatal().Msgf("%s\n", err)
		}
		var scanErr *nmap.ScanError
		if errors.As(err, &scanErr) {
			if scanErr.Stderr != "" {
				gologger.Verbose().Msgf("nmap stderr: %s", scanErr.Stderr)
			}
			gologger.Error().Msgf("%s", err)
			gologger.Fatal().Msgf("%s\n", nmap.InstallHint())
		}
		gologger.Fatal().Msgf("Could not run netsweep: %s\n", err)
	}
}
