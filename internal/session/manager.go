package session

import (
	"fmt"
	"time"

	"github.com/cfdapp/crowdfund-client/internal/logger"
)

// Manager decides whether the user currently holds a live session.
type Manager struct {
	clock Clock
	store Store
	ttl   time.Duration
	log   *logger.Logger
}

// NewManager constructs a *Manager with the given clock, slot store and
// time-to-live.
func NewManager(clock Clock, store Store, ttl time.Duration, log *logger.Logger) *Manager {
	return &Manager{
		clock: clock,
		store: store,
		ttl:   ttl,
		log:   log,
	}
}

// Start records the current moment as the session start, replacing any
// previous slot.
func (m *Manager) Start() error {
	now := m.clock.Now()
	if err := m.store.Write(now); err != nil {
		return fmt.Errorf("error writing session slot: %w", err)
	}

	m.log.Debug().Time("started_at", now).Msg("session started")
	return nil
}

// Expired reports whether the session is over: the slot is absent,
// unreadable, or older than the configured TTL. Whenever it returns true the
// slot is cleared, so repeated calls are idempotent and keep answering true
// until the next Start.
func (m *Manager) Expired() bool {
	startedAt, ok, err := m.store.Read()
	if err != nil {
		m.log.Warn().Err(err).Msg("session slot read failed; treating session as expired")
		m.clear()
		return true
	}
	if !ok {
		return true
	}

	if m.clock.Now().Sub(startedAt) >= m.ttl {
		m.log.Debug().Time("started_at", startedAt).Msg("session expired")
		m.clear()
		return true
	}

	return false
}

// End clears the slot unconditionally.
func (m *Manager) End() error {
	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("error clearing session slot: %w", err)
	}

	m.log.Debug().Msg("session ended")
	return nil
}

func (m *Manager) clear() {
	if err := m.store.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("error clearing expired session slot")
	}
}
