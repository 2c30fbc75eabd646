package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the simterm version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("simterm %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
