package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/mealy/pkg/adapters/yamltable"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a transition table document",
	Long: `Parses the table document and reports its shape. Fails on malformed YAML,
duplicate (state, input) pairs, or an empty rule set.`,
	Run: func(cmd *cobra.Command, args []string) {
		tablePath, _ := cmd.Flags().GetString("table")

		table, err := yamltable.Load(tablePath)
		if err != nil {
			fmt.Printf("Invalid table: %v\n", err)
			os.Exit(1)
		}

		states := map[int]struct{}{}
		inputs := map[int]struct{}{}
		for _, rule := range table.Rules() {
			states[int(rule.From)] = struct{}{}
			states[int(rule.To)] = struct{}{}
			inputs[int(rule.Input)] = struct{}{}
		}

		fmt.Printf("OK: %d rule(s), %d state(s), %d input symbol(s), initial state %d\n",
			table.Len(), len(states), len(inputs), table.InitialState())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
