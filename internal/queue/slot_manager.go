package queue

import (
	"context"
	"errors"
)

// SlotManager bounds how many plan generations may run at once. A generation
// acquires a slot before calling the completion service and releases it when
// the response has been processed.
type SlotManager interface {
	Acquire(ctx context.Context) error

	Release(ctx context.Context) error

	Fill(ctx context.Context, count int) error
}

var ErrNoSlotAvailable = errors.New("no plan slot available")
