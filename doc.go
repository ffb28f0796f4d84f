/*
Package mealy is a deterministic Mealy machine engine: a finite automaton
whose output on each step depends on both the current state and the current
input symbol.

It is designed as the execution half of externally synthesized controllers:
the transition table (the "Mealy data") is compiled elsewhere and supplied to
the engine as an immutable lookup, while the engine owns exactly one piece of
mutable state, the current state, and folds batches of input symbols through
the table.

# Key Properties

  - Deterministic Execution: the same table, start state, and input sequence
    always produce the same final state and outputs.
  - Strict Ordering: a batch is a sequential fold; each step's lookup key
    depends on the previous step's result. Repeated calls are cumulative.
  - Fail-Stop: an input with no table entry halts the batch. The state stays
    at the last valid transition and the error reports how many symbols were
    consumed, so the caller decides whether that is fatal.
  - Hexagonal Architecture: the core is decoupled from table formats,
    persistence, and transports (see pkg/ports and pkg/adapters).

# Usage

	table, err := dsl.New().
		From(0).On(1, 1, 9).
		From(1).On(0, 0, 4).On(1, 1, 2).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	m, err := mealy.New(table)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	out, err := m.Transition(context.Background(), 1, 1, 0)
	// out == 4, m.Current() == 0

Durable, concurrent session handling lives in pkg/session; YAML table
documents in pkg/adapters/yamltable; Prometheus metrics in pkg/observability.
*/
package mealy
