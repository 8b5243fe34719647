package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "server",
	Short:   "Smart Task Planner API",
	Long:    `Breaks a free-text goal down into a dependency-ordered task plan using an LLM and stores every plan it generates.`,
	Version: "1.1.0",
	Args:    cobra.NoArgs,
	// no subcommand means serve
	RunE:         runServe,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
