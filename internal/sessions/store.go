// Package sessions binds browser and API clients to their own wizard state.
package sessions

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/charter/internal/wizard"
	"github.com/JaimeStill/charter/pkg/lifecycle"
)

// Factory creates the wizard for a new session, wired to its clipboard.
type Factory func(clipboard wizard.Clipboard) (*wizard.Controller, error)

// Session is one client's wizard and clipboard.
type Session struct {
	ID        uuid.UUID
	Wizard    *wizard.Controller
	Clipboard *Clipboard

	lastSeen time.Time
}

// System manages session lookup and idle expiry.
type System interface {
	// Lookup returns the live session named by the request cookie. It never
	// creates one.
	Lookup(r *http.Request) (*Session, bool)
	// Resolve returns the session named by the request cookie, creating one
	// and setting the cookie on w when absent or expired.
	Resolve(w http.ResponseWriter, r *http.Request) (*Session, error)
	// Len reports the number of live sessions.
	Len() int
	// Sweep closes and removes sessions idle past the timeout.
	Sweep() int
	// Start registers the expiry sweeper with the lifecycle coordinator.
	Start(lc *lifecycle.Coordinator) error
}

type store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	factory Factory
	cfg     Config
	now     func() time.Time
	logger  *slog.Logger
}

// New creates a session store. cfg must already be finalized.
func New(cfg *Config, factory Factory, logger *slog.Logger) System {
	return newStore(cfg, factory, time.Now, logger)
}

func newStore(cfg *Config, factory Factory, now func() time.Time, logger *slog.Logger) *store {
	return &store{
		sessions: make(map[uuid.UUID]*Session),
		factory:  factory,
		cfg:      *cfg,
		now:      now,
		logger:   logger.With("system", "sessions"),
	}
}

func (s *store) Lookup(r *http.Request) (*Session, bool) {
	c, err := r.Cookie(s.cfg.CookieName)
	if err != nil {
		return nil, false
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return nil, false
	}

	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || s.expired(sess, now) {
		return nil, false
	}
	sess.lastSeen = now
	return sess, true
}

func (s *store) Resolve(w http.ResponseWriter, r *http.Request) (*Session, error) {
	if sess, ok := s.Lookup(r); ok {
		return sess, nil
	}

	now := s.now()
	clip := &Clipboard{}
	ctrl, err := s.factory(clip)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		ID:        uuid.New(),
		Wizard:    ctrl,
		Clipboard: clip,
		lastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    sess.ID.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	s.logger.Debug("session created", "id", sess.ID)
	return sess, nil
}

func (s *store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	var stale []*Session
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			stale = append(stale, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range stale {
		sess.Wizard.Close()
	}
	if len(stale) > 0 {
		s.logger.Debug("sessions expired", "count", len(stale))
	}
	return len(stale)
}

func (s *store) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting session sweeper", "idle_timeout", s.cfg.IdleTimeout)

	lc.Go(func(ctx context.Context) {
		ticker := time.NewTicker(s.cfg.SweepIntervalDuration())
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-ctx.Done():
				s.closeAll()
				return
			}
		}
	})

	return nil
}

func (s *store) closeAll() {
	s.mu.Lock()
	all := make([]*Session, 0, len(s.sessions))
	for id, sess := range s.sessions {
		all = append(all, sess)
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for _, sess := range all {
		sess.Wizard.Close()
	}
	s.logger.Info("sessions closed", "count", len(all))
}

func (s *store) expired(sess *Session, now time.Time) bool {
	return now.Sub(sess.lastSeen) > s.cfg.IdleTimeoutDuration()
}
