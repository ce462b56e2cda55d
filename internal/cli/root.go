// Package cmd implements the readable CLI's command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tantowi/readable/internal/build"
)

var (
	cfgFile string
	format  string
	output  string
)

// rootCmd is the base command when readable is invoked with no subcommand.
var rootCmd = &cobra.Command{
	Use:   "readable",
	Short: "Extract the main readable content from an HTML page.",
	Long: `readable extracts the main article content and metadata from an
HTML document, using a heuristic content scorer when no site-specific
override applies and an FTR-style site-config bundle when one does.`,
	Version: build.FullVersion(),
}

// Execute adds all child commands to the root command and runs it. This is
// called by cmd/readable's main function.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "extraction tunables file (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "json", "output format: json, markdown, text, toml")
	rootCmd.PersistentFlags().StringVar(&output, "output", "", "output file path (default: stdout)")
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}
