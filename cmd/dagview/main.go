package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "dagview",
		Short:   "dagview - power-graph decomposition for dependency graphs",
		Long:    `dagview decomposes a directed graph into a compact power-graph of power nodes and power edges, preserving lossless edge coverage.`,
		Version: Version,
	}

	rootCmd.AddCommand(decomposeCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dagview version %s\n", Version)
		},
	}
}
