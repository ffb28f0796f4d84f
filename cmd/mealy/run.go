package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/mealy"
	"github.com/aretw0/mealy/internal/logging"
	"github.com/aretw0/mealy/pkg/adapters/yamltable"
	"github.com/aretw0/mealy/pkg/domain"
)

// runCmd feeds one batch of inputs through the table and prints the result.
var runCmd = &cobra.Command{
	Use:   "run [inputs...]",
	Short: "Run one batch of inputs through the machine",
	Long: `Loads the transition table, starts a machine at its initial state and feeds
the given input symbols in order. Prints the final output and state, or the
partial progress if the batch halts on an undefined transition.

Inputs are integers, given as arguments or comma separated:

  mealy run --table traffic.yaml 1 1 0
  mealy run --table traffic.yaml 1,1,0 --trace`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tablePath, _ := cmd.Flags().GetString("table")
		trace, _ := cmd.Flags().GetBool("trace")
		debug, _ := cmd.Flags().GetBool("debug")

		inputs, err := parseInputs(args)
		if err != nil {
			fmt.Printf("Error parsing inputs: %v\n", err)
			os.Exit(1)
		}

		table, err := yamltable.Load(tablePath)
		if err != nil {
			fmt.Printf("Error loading table: %v\n", err)
			os.Exit(1)
		}

		opts := []mealy.Option{}
		if debug {
			opts = append(opts, mealy.WithLogger(logging.New(slog.LevelDebug)))
		}
		m, err := mealy.New(table, opts...)
		if err != nil {
			fmt.Printf("Error initializing machine: %v\n", err)
			os.Exit(1)
		}
		defer m.Close()

		ctx := context.Background()
		if trace {
			runTrace(ctx, m, inputs)
			return
		}

		out, err := m.Transition(ctx, inputs...)
		if reportHalt(err) {
			os.Exit(2)
		}
		if out == domain.NoOutput {
			fmt.Printf("no transitions, state=%d\n", m.Current())
			return
		}
		fmt.Printf("output=%d state=%d\n", out, m.Current())
	},
}

func runTrace(ctx context.Context, m *mealy.Machine, inputs []domain.Input) {
	steps, err := m.Trace(ctx, inputs...)
	for _, step := range steps {
		fmt.Printf("%d -%d-> %d output=%d\n", step.From, step.Input, step.To, step.Output)
	}
	if reportHalt(err) {
		os.Exit(2)
	}
}

// reportHalt prints a transition error, distinguishing the fail-stop case.
func reportHalt(err error) bool {
	if err == nil {
		return false
	}
	var ute *domain.UndefinedTransitionError
	if errors.As(err, &ute) {
		fmt.Printf("halted: no transition for (state %d, input %d); %d symbol(s) consumed\n",
			ute.State, ute.Input, ute.Consumed)
		return true
	}
	fmt.Printf("Error: %v\n", err)
	return true
}

func parseInputs(args []string) ([]domain.Input, error) {
	var inputs []domain.Input
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid input symbol %q", field)
			}
			inputs = append(inputs, domain.Input(n))
		}
	}
	return inputs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("trace", false, "Print every applied transition")
	runCmd.Flags().Bool("debug", false, "Enable debug logging")
}
