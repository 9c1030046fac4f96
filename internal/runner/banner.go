package runner

import (
	"fmt"
	"io"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/netsweep/pkg/target"
	"github.com/projectdiscovery/netsweep/pkg/version"
)

const banner = `
              __                              
   ____  ___  / /________      _____  ___  ____ 
  / __ \/ _ \/ __/ ___/ | /| / / _ \/ _ \/ __ \
 / / / /  __/ /_(__  )| |/ |/ /  __/  __/ /_/ /
/_/ /_/\___/\__/____/ |__/|__/\___/\___/ .___/ 
                                      /_/      
`

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tnetsweep %s\n\n", version.Version)
}

// PrintUsage writes the short usage reminder shown on argument errors.
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: netsweep [flags] <CIDR>")
	fmt.Fprintln(w, "Flags must come before <CIDR>.")
	fmt.Fprintf(w, "Example: netsweep %s\n", target.Example)
}
