package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Update when the id has no live session.
var ErrNotFound = errors.New("session not found")

// Store keeps one value per browser session.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, bool, error)
	Put(ctx context.Context, id string, v T) error
	// Update applies fn to the stored value and saves the result atomically.
	// When fn returns an error nothing is saved.
	Update(ctx context.Context, id string, fn func(T) (T, error)) (T, error)
	Delete(ctx context.Context, id string) error
	NewID() string
}
