package domain

import (
	"context"
	"time"
)

// StepEvent is emitted after each applied transition.
type StepEvent struct {
	Timestamp time.Time `json:"timestamp"`
	From      State     `json:"from"`
	Input     Input     `json:"input"`
	To        State     `json:"to"`
	Output    Output    `json:"output"`
}

// HaltEvent is emitted when a batch stops on an undefined transition.
type HaltEvent struct {
	Timestamp time.Time `json:"timestamp"`
	State     State     `json:"state"`
	Input     Input     `json:"input"`
	Consumed  int       `json:"consumed"`
}

// LifecycleHooks defines callbacks for engine observability. All fields are
// optional; nil hooks are skipped. Hooks run synchronously inside the
// transition loop and must not call back into the machine.
type LifecycleHooks struct {
	OnStep func(context.Context, *StepEvent)
	OnHalt func(context.Context, *HaltEvent)
}
