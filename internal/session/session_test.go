package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ziadkadry99/bistro/internal/content"
	"github.com/ziadkadry99/bistro/internal/disclosure"
	"github.com/ziadkadry99/bistro/internal/navigation"
)

func newManager(ttl time.Duration) *Manager {
	store := content.Default()
	return NewManager(store, navigation.NewRegistry(store.SectionIDs()...), ttl)
}

func TestCreateAndGet(t *testing.T) {
	m := newManager(time.Hour)
	s := m.Create()
	if s.ID == "" {
		t.Fatal("session ID should not be empty")
	}
	got, ok := m.Get(s.ID)
	if !ok || got != s {
		t.Fatal("Get should return the created session")
	}
	if _, ok := m.Get("missing"); ok {
		t.Error("Get(missing) should fail")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}

	st := s.State()
	if st.MenuDialog != disclosure.Closed || st.PrivacyDialog != disclosure.Closed || !st.HeaderVisible {
		t.Errorf("unexpected initial state %+v", st)
	}
}

func TestResolveSetsCookie(t *testing.T) {
	m := newManager(time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	s := m.Resolve(w, req)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName || cookies[0].Value != s.ID {
		t.Fatalf("expected session cookie for %s, got %v", s.ID, cookies)
	}

	// A second request carrying the cookie reuses the session.
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()
	if again := m.Resolve(w2, req2); again != s {
		t.Error("Resolve should return the cookie's session")
	}
	if len(w2.Result().Cookies()) != 0 {
		t.Error("no new cookie should be set for a known session")
	}

	// An unknown cookie value gets a fresh session.
	req3 := httptest.NewRequest(http.MethodGet, "/", nil)
	req3.AddCookie(&http.Cookie{Name: CookieName, Value: "stale"})
	w3 := httptest.NewRecorder()
	if fresh := m.Resolve(w3, req3); fresh == s || fresh.ID == "stale" {
		t.Error("stale cookie should produce a new session")
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestDoReturnsState(t *testing.T) {
	m := newManager(time.Hour)
	s := m.Create()

	st, err := s.Do(func(c *disclosure.Controller, _ *navigation.Dispatcher) error {
		return c.OpenMenuCategory(content.Sweets)
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if st.SelectedCategory != content.Sweets {
		t.Errorf("selected = %q, want sweets", st.SelectedCategory)
	}
	if len(s.MenuItems()) != len(content.Default().Items(content.Sweets)) {
		t.Error("MenuItems should list the open category")
	}

	st, err = s.Do(func(c *disclosure.Controller, _ *navigation.Dispatcher) error {
		return c.OpenMenuCategory("soups")
	})
	if !errors.Is(err, disclosure.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
	if st.SelectedCategory != content.Sweets {
		t.Error("failed open should leave the previous selection")
	}
}

func TestDispatchReachesCommands(t *testing.T) {
	m := newManager(time.Hour)
	s := m.Create()

	var dispatched bool
	s.Do(func(_ *disclosure.Controller, d *navigation.Dispatcher) error {
		dispatched = d.ScrollTo("gallery")
		return nil
	})
	if !dispatched {
		t.Fatal("gallery should be a known section")
	}
	select {
	case cmd := <-s.Commands():
		if cmd.SectionID != "gallery" {
			t.Errorf("command section = %q, want gallery", cmd.SectionID)
		}
	case <-time.After(time.Second):
		t.Fatal("no command queued")
	}
}

func TestSweep(t *testing.T) {
	m := newManager(time.Minute)
	old := m.Create()
	old.lastSeen = time.Now().Add(-2 * time.Minute)
	fresh := m.Create()

	if n := m.Sweep(time.Now()); n != 1 {
		t.Errorf("Sweep removed %d, want 1", n)
	}
	if _, ok := m.Get(old.ID); ok {
		t.Error("idle session should be gone")
	}
	if _, ok := m.Get(fresh.ID); !ok {
		t.Error("fresh session should remain")
	}
}

func TestSweepDisabled(t *testing.T) {
	m := newManager(0)
	s := m.Create()
	s.lastSeen = time.Now().Add(-24 * time.Hour)
	if n := m.Sweep(time.Now()); n != 0 {
		t.Errorf("Sweep with no TTL removed %d sessions", n)
	}
}

func TestSweepKeepsAttached(t *testing.T) {
	m := newManager(time.Minute)
	s := m.Create()
	release := s.Attach()

	s.mu.Lock()
	s.lastSeen = time.Now().Add(-time.Hour)
	s.mu.Unlock()
	if n := m.Sweep(time.Now()); n != 0 {
		t.Fatalf("Sweep removed %d sessions with a live connection", n)
	}

	release()
	release()
	if n := m.Sweep(time.Now()); n != 0 {
		t.Errorf("release should refresh lastSeen, Sweep removed %d", n)
	}
	if n := m.Sweep(time.Now().Add(2 * time.Minute)); n != 1 {
		t.Errorf("detached idle session should be swept, removed %d", n)
	}
}

func TestRunSweepsUntilCanceled(t *testing.T) {
	m := newManager(time.Minute)
	s := m.Create()
	s.lastSeen = time.Now().Add(-time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for m.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("Run did not sweep the idle session")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestConcurrentDo(t *testing.T) {
	m := newManager(time.Hour)
	s := m.Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Do(func(c *disclosure.Controller, _ *navigation.Dispatcher) error {
				if i%2 == 0 {
					c.OpenPrivacyDialog()
				} else {
					c.ClosePrivacyDialog()
				}
				c.ObserveScroll(float64(i))
				return nil
			})
		}(i)
	}
	wg.Wait()
	_ = s.State()
}

func TestRateLimit(t *testing.T) {
	m := newManager(time.Hour)
	unlimited := m.Create()
	for i := 0; i < 100; i++ {
		if !unlimited.Allow() {
			t.Fatalf("unlimited session refused at %d", i)
		}
	}

	m.SetRateLimit(0.001, 2)
	s := m.Create()
	if !s.Allow() || !s.Allow() {
		t.Fatal("burst of 2 should be allowed")
	}
	if s.Allow() {
		t.Error("third change should be refused")
	}
	if !unlimited.Allow() {
		t.Error("existing sessions keep their limit")
	}

	m.SetRateLimit(0, 0)
	fresh := m.Create()
	for i := 0; i < 10; i++ {
		if !fresh.Allow() {
			t.Fatal("a zero rate should remove the cap")
		}
	}
}
