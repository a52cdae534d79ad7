package internal

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match with errors.Is.
var (
	// ErrConfiguration reports a configuration that cannot be sampled, e.g. a
	// chunk count larger than the selected pool.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrClipboard reports a failed write to the system clipboard.
	ErrClipboard = errors.New("clipboard write failed")

	// ErrEmptyPool reports a word list that produced no tokens.
	ErrEmptyPool = errors.New("pool is empty")

	// ErrAttemptsExhausted is only returned when Generator.MaxAttempts is set.
	ErrAttemptsExhausted = errors.New("no draw met the length floor")
)

// ConfigError is returned before any random draw when a pool cannot supply
// ChunkCount distinct tokens.
type ConfigError struct {
	Pool       string
	ChunkCount int
	PoolSize   int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: need %d distinct chunks but pool %q has %d tokens",
		ErrConfiguration, e.ChunkCount, e.Pool, e.PoolSize)
}

func (e *ConfigError) Unwrap() error { return ErrConfiguration }

// ClipboardError wraps the underlying clipboard failure.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("%v: %v", ErrClipboard, e.Err)
}

// Unwrap exposes both the sentinel and the cause.
func (e *ClipboardError) Unwrap() []error { return []error{ErrClipboard, e.Err} }
