package main

import (
	"fmt"

	"github.com/flipr/sitepanel"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sitepanel",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sitepanel version %s\n", sitepanel.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
