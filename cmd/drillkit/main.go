// Package main provides the CLI entry point for the recordkit drills.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/recordkit/logger"
	"github.com/kbukum/recordkit/version"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitConfigError  = 1
	ExitRuntimeError = 2
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

const serviceName = "drillkit"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitRuntimeError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "drillkit",
	Short: "Drillkit - in-memory record transformation drills",
	Long: `Drillkit runs three classic record transformation drills over small
in-memory datasets: stable employee sorting, student filtering with a
marks threshold, and product grouping with aggregates.

Examples:
  # Print the results of all three drills
  drillkit demo

  # Serve the drills over HTTP
  drillkit serve

  # Serve with an explicit config file
  drillkit serve --config ./config.yml`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := "info"
		if verbose {
			level = "debug"
		} else if quiet {
			level = "error"
		}
		logger.Init(logger.Config{ServiceName: serviceName, Level: level, Format: "console"})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		info := version.GetVersionInfo()
		fmt.Printf("Version: %s\n", info.Version)
		fmt.Printf("Commit: %s\n", info.GitCommit)
		fmt.Printf("Build Date: %s\n", info.BuildTime)
		fmt.Printf("Go: %s\n", info.GoVersion)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
