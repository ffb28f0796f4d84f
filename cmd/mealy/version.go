package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/mealy"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mealy",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mealy version %s\n", mealy.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
