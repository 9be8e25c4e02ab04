package api

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/session"
)

// LogoutHandler is registered once at application startup. It signs out of
// any federated identity provider and resets navigation to the login entry
// point.
type LogoutHandler func(ctx context.Context) error

// ExpiryNotice is a blocking acknowledgment shown to the user before the
// logout handler runs.
type ExpiryNotice func(ctx context.Context)

// SessionWatcher coordinates the one global reaction to an expired session.
// Concurrent expiry triggers collapse into a single logout flow.
type SessionWatcher struct {
	session *session.Store
	log     zerolog.Logger

	mu         sync.Mutex
	loggingOut bool
	notice     ExpiryNotice
	onLogout   LogoutHandler
}

// NewSessionWatcher creates a watcher over the given session store.
func NewSessionWatcher(sess *session.Store, log zerolog.Logger) *SessionWatcher {
	return &SessionWatcher{session: sess, log: log}
}

// RegisterLogoutHandler sets the handler invoked after an expired session
// has been cleared. Registering a new handler replaces the previous one.
func (w *SessionWatcher) RegisterLogoutHandler(fn LogoutHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onLogout = fn
}

// RegisterExpiryNotice sets the acknowledgment step that runs before the
// logout handler. Registering a new notice replaces the previous one.
func (w *SessionWatcher) RegisterExpiryNotice(fn ExpiryNotice) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.notice = fn
}

// NotifyExpired runs the session-expiry flow: clear the stored credential,
// show the notice, invoke the logout handler. At most one flow runs at a
// time; triggers that arrive while one is in flight return immediately.
func (w *SessionWatcher) NotifyExpired(ctx context.Context) {
	w.mu.Lock()
	if w.loggingOut {
		w.mu.Unlock()
		return
	}
	w.loggingOut = true
	notice := w.notice
	onLogout := w.onLogout
	w.mu.Unlock()

	// The flag must come back down even when the handler fails, or every
	// future expiry would be silently dropped.
	defer func() {
		w.mu.Lock()
		w.loggingOut = false
		w.mu.Unlock()
	}()

	if err := w.session.Clear(); err != nil {
		w.log.Warn().Err(err).Msg("clearing expired session failed")
	}

	if notice != nil {
		notice(ctx)
	}
	if onLogout == nil {
		return
	}
	if err := onLogout(ctx); err != nil {
		w.log.Warn().Err(err).Msg("logout handler failed")
	}
}
