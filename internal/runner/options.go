package runner

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/netsweep/pkg/nmap"
	"github.com/projectdiscovery/netsweep/pkg/output"
	"github.com/projectdiscovery/netsweep/pkg/version"
	envutil "github.com/projectdiscovery/utils/env"
)

var (
	NmapPathEnv = envutil.GetEnvOrDefault("NETSWEEP_NMAP_PATH", nmap.DefaultBinary)
	VerboseEnv  = envutil.GetEnvOrDefault("NETSWEEP_VERBOSE", "")
)

// Options contains the configuration options for a discovery run.
type Options struct {
	// Targets holds the positional arguments; exactly one CIDR is expected.
	Targets []string

	ConfigFile string
	NmapPath   string

	Output string
	Format string

	ListNetworks bool

	Verbose bool
	Silent  bool
	NoColor bool
	Version bool
}

// ParseOptions parses the command line flags provided by a user
func ParseOptions() *Options {
	options := &Options{}
	flagSet := goflags.NewFlagSet()

	flagSet.SetDescription(`netsweep discovers live hosts on a local network using nmap host discovery.

Usage: netsweep [flags] <CIDR>`)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&options.Output, "output", "o", "", "file to also write the json device list to"),
		flagSet.StringVarP(&options.Format, "format", "f", string(output.FormatJSON), "stdout format (json, table)"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&options.ConfigFile, "config", "", "cli flag configuration file"),
		flagSet.StringVarP(&options.NmapPath, "nmap-path", "np", NmapPathEnv, "path to the nmap binary"),
	)

	flagSet.CreateGroup("discovery", "Discovery",
		flagSet.BoolVarP(&options.ListNetworks, "list-networks", "ln", false, "list detected local networks then exit"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show verbose output"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only results in output"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable output content coloring (ANSI escape codes)"),
		flagSet.BoolVar(&options.Version, "version", false, "show version of the project"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	if options.ConfigFile != "" {
		if err := flagSet.MergeConfigFile(options.ConfigFile); err != nil {
			gologger.Fatal().Msgf("Could not read config file %s: %s\n", options.ConfigFile, err)
		}
	}

	options.Targets = flagSet.CommandLine.Args()

	if VerboseEnv == "true" || VerboseEnv == "1" {
		options.Verbose = true
	}

	options.configureOutput()

	showBanner()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version.Version)
		os.Exit(0)
	}

	return options
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	// If the user desires verbose output, show verbose output
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}
