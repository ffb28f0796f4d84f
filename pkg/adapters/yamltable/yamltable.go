// Package yamltable loads and exports transition tables as YAML documents.
//
// This is the serialization boundary the engine core deliberately does not
// own: the "Mealy data" arrives as a document and leaves this package as an
// immutable in-memory table. The document format mirrors exported
// controllers:
//
//	initial: 0
//	transitions:
//	  - { from: 0, input: 1, to: 1, output: 9 }
//	  - { from: 1, input: 0, to: 0, output: 4 }
package yamltable

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/mealy/pkg/adapters/memory"
	"github.com/aretw0/mealy/pkg/domain"
)

// Document is the on-disk shape of a transition table.
type Document struct {
	Initial     domain.State        `yaml:"initial"`
	Transitions []domain.Transition `yaml:"transitions"`
}

// Parse builds a table from YAML bytes.
func Parse(data []byte) (*memory.Table, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse table document: %w", err)
	}
	if len(doc.Transitions) == 0 {
		return nil, fmt.Errorf("table document declares no transitions")
	}

	table, err := memory.NewTable(doc.Transitions, memory.WithInitialState(doc.Initial))
	if err != nil {
		return nil, fmt.Errorf("invalid table document: %w", err)
	}
	return table, nil
}

// Load reads and parses a table document from disk.
func Load(path string) (*memory.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file: %w", err)
	}
	return Parse(data)
}

// Dump serializes a table back into the document format, rules in
// deterministic (state, input) order.
func Dump(table *memory.Table) ([]byte, error) {
	doc := Document{
		Initial:     table.InitialState(),
		Transitions: table.Rules(),
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal table document: %w", err)
	}
	return data, nil
}

// Write dumps a table to a file.
func Write(path string, table *memory.Table) error {
	data, err := Dump(table)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
