package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mealy",
	Short: "mealy runs externally synthesized Mealy machine controllers",
	Long:  `Mealy drives a finite state machine defined by a YAML transition table, either as a one-shot batch run or as an HTTP session server.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("table", "t", "table.yaml", "Path to the YAML transition table")
}
