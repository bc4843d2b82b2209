// Package view holds the per-view state of the three pages. Each value is
// one mount: it is activated once, fetches once, and is then read by the
// renderer. Failures never surface; the view just stays Idle.
package view

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Phase is the lifecycle position of a view:
//
//	Idle -> Fetching -> Rendered
//	            \-----> Idle (on failure, terminal)
type Phase int

const (
	Idle Phase = iota
	Fetching
	Rendered
)

func (p Phase) String() string {
	switch p {
	case Fetching:
		return "fetching"
	case Rendered:
		return "rendered"
	default:
		return "idle"
	}
}

func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Phase) UnmarshalText(b []byte) error {
	switch string(b) {
	case "idle":
		*p = Idle
	case "fetching":
		*p = Fetching
	case "rendered":
		*p = Rendered
	default:
		return fmt.Errorf("unknown phase %q", b)
	}
	return nil
}

// lifecycle is embedded by every view. It enforces the single activation
// and records the outcome.
type lifecycle struct {
	mu        sync.RWMutex
	log       *zap.Logger
	phase     Phase
	activated bool
	err       error
}

func (l *lifecycle) init(name string, log *zap.Logger, fields ...zap.Field) {
	if log == nil {
		log = zap.NewNop()
	}
	l.log = log.With(append([]zap.Field{zap.String("view", name)}, fields...)...)
}

// begin moves Idle -> Fetching. It returns false when the view was already
// activated.
func (l *lifecycle) begin() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.activated {
		return false
	}
	l.activated = true
	l.phase = Fetching
	return true
}

// fail logs err and drops back to Idle; the caller must not publish data.
func (l *lifecycle) fail(ctx context.Context, err error) {
	l.log.Warn("fetch failed", zap.Error(err), zap.Bool("ctx_done", ctx.Err() != nil))
	l.mu.Lock()
	l.phase = Idle
	l.err = err
	l.mu.Unlock()
}

func (l *lifecycle) Phase() Phase {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.phase
}

// Err is the last fetch error. It is kept for diagnostics only and is never
// rendered.
func (l *lifecycle) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}
