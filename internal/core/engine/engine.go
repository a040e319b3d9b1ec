// Package engine implements the budget calculation core: envelope budgeting
// with month carry-forward, debt payoff planning, savings-goal projection,
// and net-worth analytics. An Engine is constructed from a ledger snapshot
// and performs no I/O; the only state it mutates is the snapshot's budget
// collection, and callers own persisting any records it returns.
//
// The engine is not safe for concurrent use against one snapshot: envelope
// assignment is a read-modify-write over the budget slice.
package engine

import (
	"time"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// Engine computes financial facts from a ledger snapshot.
type Engine struct {
	ledger *domain.Ledger
	now    func() time.Time
}

// Option is a functional option for configuring the engine.
type Option func(*Engine)

// WithClock overrides the engine's time source. Used by goal projection and
// age-of-money, and by tests needing deterministic dates.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates an engine over the given ledger snapshot.
func New(ledger *domain.Ledger, options ...Option) *Engine {
	e := &Engine{
		ledger: ledger,
		now:    time.Now,
	}
	for _, option := range options {
		option(e)
	}
	return e
}
