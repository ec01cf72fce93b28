package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version can be overridden at build time via -ldflags.
var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the isoparse version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("isoparse %s\n", version)
	},
}
