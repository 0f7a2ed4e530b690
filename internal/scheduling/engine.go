// Package scheduling implements the deterministic domain core behind the
// agent tools: slot search, atomic booking, insurance verification, referral
// checks, clinical protocol lookups, and provider discovery. Everything here
// is synchronous and side-effect free except for slot availability, which is
// guarded by the SlotStore.
package scheduling

import (
	"time"

	"github.com/harborhealth/scheduling-agent/internal/clinicdata"
	"github.com/harborhealth/scheduling-agent/pkg/logging"
)

// DefaultMaxResults caps slot search responses when the caller does not ask
// for a specific limit.
const DefaultMaxResults = 20

// referralValidityDays is how long a documented referral stays usable.
// A referral aged exactly this many days is still valid.
const referralValidityDays = 90

// Engine executes scheduling operations against the clinic directory and the
// slot store.
type Engine struct {
	dir    *clinicdata.Directory
	slots  *SlotStore
	logger *logging.Logger
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source. Referral age and confirmation
// numbers depend on it.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates the scheduling engine. All dependencies are required.
func NewEngine(dir *clinicdata.Directory, slots *SlotStore, logger *logging.Logger, opts ...Option) *Engine {
	if dir == nil {
		panic("scheduling: directory is required")
	}
	if slots == nil {
		panic("scheduling: slot store is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	e := &Engine{
		dir:    dir,
		slots:  slots,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
