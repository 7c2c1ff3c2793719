package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/sxm"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sxm",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sxm version %s\n", sxm.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
