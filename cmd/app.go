// Package cmd implements the CLI application to manage the dashboard.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/luminary-app/luminary"
)

// Commands lists every subcommand of the application.
// A main package registers them all and Executes the user-selected one.
var Commands = []subcommands.Command{
	&planCmd{},
	&eventCmd{},
	&todoCmd{},
	&menuCmd{},
	&txCmd{},
	&monthlyCmd{},
	&yearlyCmd{},
	&bankCmd{},
	&stockCmd{},
	&researchCmd{},
	&wishCmd{},
	&blueprintCmd{},
	&targetCmd{},
	&focusCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", defaultDataDir(), "Path to the dashboard data folder")

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home + "/.luminary"
	}
	return ".luminary"
}

// openDashboard loads the settings and every collection from the data folder,
// creating the folder on first use.
func openDashboard() (*luminary.Dashboard, luminary.Config, error) {
	cfg, err := luminary.LoadConfig(*dataDir)
	if err != nil {
		return nil, cfg, err
	}
	store, err := luminary.NewDirStore(*dataDir)
	if err != nil {
		return nil, cfg, err
	}
	d, err := luminary.Open(store, luminary.Options{BlueprintPassword: cfg.BlueprintPassword})
	return d, cfg, err
}

// printMarkdown renders markdown to the terminal. When rendering fails the
// raw markdown is still printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// givenFlags reports which flags were explicitly passed on the command line,
// so edit paths can tell a default apart from a deliberate value.
func givenFlags(f *flag.FlagSet) map[string]bool {
	given := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { given[fl.Name] = true })
	return given
}

// fail prints the error and maps it to a failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// usage prints the message and maps it to a usage-error exit status.
func usage(msg string) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	return subcommands.ExitUsageError
}
