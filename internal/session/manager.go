// Package session tracks the client's authentication session as an
// explicit state machine: Active -> Expiring -> LoggedOut. The gateway
// drives transitions from authorization failures; the Expiring state
// replaces the one-shot latch + cooldown flag so that concurrent failing
// requests trigger the logout callback exactly once per episode.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/verifiedwealth/vw/internal/common"
)

// State is a session lifecycle state.
type State string

const (
	// StateActive means a credential is stored and believed valid.
	StateActive State = "active"
	// StateExpiring means an authorization failure was observed and the
	// logout callback has fired; further failures are absorbed until the
	// cooldown elapses.
	StateExpiring State = "expiring"
	// StateLoggedOut means no usable credential exists.
	StateLoggedOut State = "logged_out"
)

// Manager owns the session state. Safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	state    State
	cooldown time.Duration
	timer    *time.Timer
	onLogout func()
	logger   *common.Logger
}

// NewManager creates a manager in the LoggedOut state.
func NewManager(cooldown time.Duration, logger *common.Logger) *Manager {
	if cooldown <= 0 {
		cooldown = time.Second
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Manager{
		state:    StateLoggedOut,
		cooldown: cooldown,
		logger:   logger,
	}
}

// OnLogout registers the single callback invoked when the session expires.
func (m *Manager) OnLogout(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onLogout = fn
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Activate marks the session active after a credential is stored,
// cancelling any pending expiry cooldown.
func (m *Manager) Activate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.state = StateActive
	m.logger.Debug().Msg("Session activated")
}

// Deactivate moves the session straight to LoggedOut without firing the
// logout callback. Used for explicit, user-initiated logout.
func (m *Manager) Deactivate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.state = StateLoggedOut
	m.logger.Debug().Msg("Session deactivated")
}

// Expire moves an active session to Expiring and fires the logout
// callback once. Repeat calls while Expiring or LoggedOut are no-ops, so
// concurrent 401s from in-flight requests cannot double-trigger logout.
// After the cooldown the session settles in LoggedOut.
func (m *Manager) Expire() {
	m.mu.Lock()
	if m.state != StateActive {
		m.mu.Unlock()
		return
	}

	m.state = StateExpiring
	cb := m.onLogout
	m.timer = time.AfterFunc(m.cooldown, m.settle)
	m.mu.Unlock()

	m.logger.Warn().Msg("Session expiring after authorization failure")
	if cb != nil {
		cb()
	}
}

// settle completes the Expiring -> LoggedOut transition.
func (m *Manager) settle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateExpiring {
		m.state = StateLoggedOut
		m.timer = nil
		m.logger.Debug().Msg("Session logged out")
	}
}

// TokenExpiry extracts the expiry claim from a bearer token without
// verifying the signature. The client has no signing key; the claim is
// used only to report expected session lifetime.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("token has no expiry claim")
	}
	return exp.Time, nil
}
