package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/oncoscreen"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of oncoscreen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "oncoscreen version %s\n", strings.TrimSpace(oncoscreen.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
