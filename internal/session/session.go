// Package session keeps one disclosure controller and scroll dispatcher per
// browser, keyed by a cookie.
package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ziadkadry99/bistro/internal/content"
	"github.com/ziadkadry99/bistro/internal/disclosure"
	"github.com/ziadkadry99/bistro/internal/navigation"
)

// CookieName is the cookie carrying the session ID.
const CookieName = "bistro_session"

// scrollBuffer is how many scroll commands may wait for the websocket writer.
const scrollBuffer = 8

// Session is the UI state of one browser.
type Session struct {
	ID string

	mu         sync.Mutex
	controller *disclosure.Controller
	dispatcher *navigation.Dispatcher
	scroller   *navigation.ChannelScroller
	limiter    *rate.Limiter
	lastSeen   time.Time
	conns      int
}

// Do runs fn with exclusive access to the session's controller and
// dispatcher and returns the state afterwards.
func (s *Session) Do(fn func(c *disclosure.Controller, d *navigation.Dispatcher) error) (disclosure.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	err := fn(s.controller, s.dispatcher)
	return s.controller.Snapshot(), err
}

// State returns the current toggle state.
func (s *Session) State() disclosure.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.Snapshot()
}

// MenuItems returns the dishes of the open category dialog, if any.
func (s *Session) MenuItems() []content.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.MenuItems()
}

// Commands returns the scroll commands dispatched for this session.
func (s *Session) Commands() <-chan navigation.Command {
	return s.scroller.Commands()
}

// PendingScroll discards queued scroll commands and returns the newest one.
// A new connection calls it so superseded scrolls are not replayed.
func (s *Session) PendingScroll() (navigation.Command, bool) {
	return s.scroller.Latest()
}

// Allow reports whether the session may make another UI change now.
func (s *Session) Allow() bool {
	return s.limiter.Allow()
}

// Attach marks a live connection on the session. Sweep keeps the session
// until every release has been called.
func (s *Session) Attach() (release func()) {
	s.mu.Lock()
	s.conns++
	s.lastSeen = time.Now()
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.conns--
			s.lastSeen = time.Now()
			s.mu.Unlock()
		})
	}
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince(t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conns == 0 && s.lastSeen.Before(t)
}

// Manager owns every live session.
type Manager struct {
	items    disclosure.ItemSource
	registry *navigation.Registry
	ttl      time.Duration
	limit    rate.Limit
	burst    int

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager returns a Manager whose sessions read dishes from items and
// scroll to the sections in registry. Sessions idle for longer than ttl
// are dropped by Sweep.
func NewManager(items disclosure.ItemSource, registry *navigation.Registry, ttl time.Duration) *Manager {
	return &Manager{
		items:    items,
		registry: registry,
		ttl:      ttl,
		limit:    rate.Inf,
		sessions: make(map[string]*Session),
	}
}

// SetRateLimit caps UI changes per session at perSecond with the given
// burst. Sessions created earlier keep their old limit. A non-positive
// perSecond removes the cap.
func (m *Manager) SetRateLimit(perSecond float64, burst int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if perSecond <= 0 {
		m.limit, m.burst = rate.Inf, 0
		return
	}
	m.limit, m.burst = rate.Limit(perSecond), burst
}

// Create starts a new session with both dialogs closed.
func (m *Manager) Create() *Session {
	scroller := navigation.NewChannelScroller(scrollBuffer)
	s := &Session{
		ID:         uuid.NewString(),
		controller: disclosure.New(m.items),
		dispatcher: navigation.NewDispatcher(m.registry, scroller),
		scroller:   scroller,
		lastSeen:   time.Now(),
	}
	m.mu.Lock()
	s.limiter = rate.NewLimiter(m.limit, m.burst)
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Resolve returns the session named by the request cookie, creating one and
// setting the cookie when the request has none or it has expired.
func (m *Manager) Resolve(w http.ResponseWriter, r *http.Request) *Session {
	if c, err := r.Cookie(CookieName); err == nil {
		if s, ok := m.Get(c.Value); ok {
			s.touch()
			return s
		}
	}
	s := m.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops sessions idle since before now minus the TTL and returns how
// many were removed. Sessions with an attached connection are kept.
func (m *Manager) Sweep(now time.Time) int {
	if m.ttl <= 0 {
		return 0
	}
	cutoff := now.Add(-m.ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		if s.idleSince(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.Sweep(now)
		}
	}
}
