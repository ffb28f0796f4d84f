package yamltable_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/mealy/pkg/adapters/yamltable"
	"github.com/aretw0/mealy/pkg/domain"
	"github.com/aretw0/mealy/pkg/ports"
)

const sampleDoc = `
initial: 0
transitions:
  - { from: 0, input: 1, to: 1, output: 9 }
  - { from: 1, input: 0, to: 0, output: 4 }
  - { from: 1, input: 1, to: 1, output: 2 }
`

func TestParse(t *testing.T) {
	table, err := yamltable.Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ports.RunTableContract(t, table, []domain.Transition{
		{From: 0, Input: 1, To: 1, Output: 9},
		{From: 1, Input: 0, To: 0, Output: 4},
		{From: 1, Input: 1, To: 1, Output: 2},
	})

	if table.InitialState() != 0 {
		t.Errorf("expected initial state 0, got %d", table.InitialState())
	}
}

func TestParse_Errors(t *testing.T) {
	t.Run("Malformed YAML", func(t *testing.T) {
		if _, err := yamltable.Parse([]byte("initial: [")); err == nil {
			t.Error("expected error for malformed YAML")
		}
	})

	t.Run("No Transitions", func(t *testing.T) {
		if _, err := yamltable.Parse([]byte("initial: 0")); err == nil {
			t.Error("expected error for a document without transitions")
		}
	})

	t.Run("Duplicate Rule", func(t *testing.T) {
		doc := `
transitions:
  - { from: 0, input: 1, to: 1, output: 9 }
  - { from: 0, input: 1, to: 0, output: 3 }
`
		if _, err := yamltable.Parse([]byte(doc)); err == nil {
			t.Error("expected error for duplicate (state, input) pair")
		}
	})
}

func TestLoad_NotFound(t *testing.T) {
	if _, err := yamltable.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDump_RoundTrip(t *testing.T) {
	table, err := yamltable.Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "table.yaml")
	if err := yamltable.Write(path, table); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("dumped file missing: %v", err)
	}

	reloaded, err := yamltable.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if reloaded.Len() != table.Len() {
		t.Errorf("round trip lost rules: %d != %d", reloaded.Len(), table.Len())
	}
	for _, rule := range table.Rules() {
		next, ok := reloaded.Lookup(rule.From, rule.Input)
		if !ok || next != rule.Next() {
			t.Errorf("rule %s not preserved across round trip", rule)
		}
	}
}
