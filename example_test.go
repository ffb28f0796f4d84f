package mealy_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aretw0/mealy"
	"github.com/aretw0/mealy/pkg/domain"
	"github.com/aretw0/mealy/pkg/dsl"
)

func ExampleMachine_Transition() {
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
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out, m.Current())
	// Output: 4 0
}

func ExampleMachine_Transition_undefined() {
	table, err := dsl.New().
		From(0).On(1, 1, 9).
		From(1).On(0, 0, 4).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	m, err := mealy.New(table)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	_, err = m.Transition(context.Background(), 1, 5)

	var ute *domain.UndefinedTransitionError
	if errors.As(err, &ute) {
		fmt.Println(ute.Consumed, ute.State, ute.Input)
	}
	// Output: 1 1 5
}
