// The sensorgen command fills an SQLite file with synthetic sensor readings
// for dashboard demos.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cnosdb/sensorgen/cmd/sensorgen/run"

	"github.com/spf13/cobra"
)

// These variables are populated via the Go linker.
var (
	version string
	commit  string
	branch  string
)

func init() {
	// If commit, branch, or build time are not set, make that clear.
	if version == "" {
		version = "unknown"
	}
	if commit == "" {
		commit = "unknown"
	}
	if branch == "" {
		branch = "unknown"
	}
}

var sensorgen_examples = `  sensorgen
  sensorgen --count 1000 --path ./data/metrics.db
  sensorgen --config ./sensorgen.conf`

func main() {
	mainCmd := GetCommand()
	mainCmd.AddCommand(run.GetCommand())
	mainCmd.AddCommand(run.GetConfigCommand())
	mainCmd.AddCommand(printBuildInfo())

	if err := mainCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Printf("Error : %+v\n", err)
		os.Exit(1)
	}
}

func GetCommand() *cobra.Command {
	c := &cobra.Command{
		Use:     "sensorgen [command]",
		Long:    "The 'sensorgen' command generates demo sensor readings into an SQLite file. Without a command it behaves like 'sensorgen run'.",
		Example: sensorgen_examples,
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run.RunE,
	}
	run.SetFlags(c)
	return c
}

func printBuildInfo() *cobra.Command {
	return &cobra.Command{
		Use:  "version",
		Long: "displays the sensorgen version",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableNoDescFlag:   true,
			DisableDescriptions: true,
		},
		// example: sensorgen v0.1.0 (git: main c2b889e3)
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sensorgen v%s (git: %s %s)\n", version, branch, commit)
		},
	}
}
