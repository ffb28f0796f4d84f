package memory_test

import (
	"testing"

	"github.com/aretw0/mealy/pkg/adapters/memory"
	"github.com/aretw0/mealy/pkg/domain"
	"github.com/aretw0/mealy/pkg/ports"
)

func twoStateRules() []domain.Transition {
	return []domain.Transition{
		{From: 0, Input: 1, To: 1, Output: 9},
		{From: 1, Input: 0, To: 0, Output: 4},
		{From: 1, Input: 1, To: 1, Output: 2},
	}
}

func TestTable_Contract(t *testing.T) {
	table, err := memory.NewTable(twoStateRules())
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	ports.RunTableContract(t, table, twoStateRules())
}

func TestTable_DuplicateRule(t *testing.T) {
	rules := append(twoStateRules(), domain.Transition{From: 0, Input: 1, To: 0, Output: 7})
	if _, err := memory.NewTable(rules); err == nil {
		t.Error("expected error for duplicate (state, input) pair, got nil")
	}
}

func TestTable_InitialState(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		table, _ := memory.NewTable(twoStateRules())
		if got := ports.InitialState(table); got != 0 {
			t.Errorf("expected default initial state 0, got %d", got)
		}
	})

	t.Run("Declared", func(t *testing.T) {
		table, _ := memory.NewTable(twoStateRules(), memory.WithInitialState(1))
		if got := ports.InitialState(table); got != 1 {
			t.Errorf("expected initial state 1, got %d", got)
		}
	})
}

func TestTable_Rules(t *testing.T) {
	table, err := memory.NewTable(twoStateRules())
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	rules := table.Rules()
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}
	// Deterministic (state, input) order.
	want := []domain.Transition{
		{From: 0, Input: 1, To: 1, Output: 9},
		{From: 1, Input: 0, To: 0, Output: 4},
		{From: 1, Input: 1, To: 1, Output: 2},
	}
	for i, rule := range rules {
		if rule != want[i] {
			t.Errorf("rule %d: got %s, want %s", i, rule, want[i])
		}
	}

	if table.Len() != 3 {
		t.Errorf("expected Len 3, got %d", table.Len())
	}
}
