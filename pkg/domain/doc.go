/*
Package domain contains the core domain models for the Mealy engine.

It defines the fundamental entities of the automaton, such as States, Inputs,
Transitions, and the durable execution Snapshot. This package is kept pure and
free of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - State / Input / Output: the integer symbol spaces of the automaton.
  - Transition: one (state, input) -> (next state, output) rule.
  - Step: the record of a single applied transition.
  - Snapshot: the runtime snapshot of a machine (current state, step count).
*/
package domain
