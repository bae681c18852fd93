package statemux_test

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/statemux/statemux"
)

// Example: a door that can be closed, opened, or locked with a key.
func Example_door() {
	door, err := statemux.NewDefinition().
		Add(statemux.State(NewClosedState())).
		Add(statemux.State(NewOpenState())).
		Add(statemux.State(NewLockedState(0x11))).
		Build(
			statemux.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))),
		)
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	door.OnTransition(func(from, to string) {
		fmt.Printf("%s -> %s\n", from, to)
	})

	door.Handle(LockEvent{NewKey: 1234})
	door.Handle(UnlockEvent{Key: 2})
	door.Handle(UnlockEvent{Key: 1234})

	// Output:
	// ClosedState -> LockedState
	// LockedState -> ClosedState
}
