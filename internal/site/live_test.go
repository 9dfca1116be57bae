package site

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/bistro/internal/content"
	"github.com/ziadkadry99/bistro/internal/disclosure"
	"github.com/ziadkadry99/bistro/internal/session"
)

func dialUI(t *testing.T, server *httptest.Server, header http.Header) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/ui"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) uiEvent {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var ev uiEvent
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read: %v", err)
	}
	return ev
}

func startLive(t *testing.T) *websocket.Conn {
	t.Helper()
	s, _ := setupTest(t, Config{})
	server := httptest.NewServer(setupRouter(s))
	t.Cleanup(server.Close)

	conn := dialUI(t, server, nil)
	if ev := readEvent(t, conn); ev.Type != "state" {
		t.Fatalf("expected initial state, got %q", ev.Type)
	}
	return conn
}

func TestWebSocketInitialState(t *testing.T) {
	s, _ := setupTest(t, Config{})
	server := httptest.NewServer(setupRouter(s))
	defer server.Close()

	conn := dialUI(t, server, nil)
	ev := readEvent(t, conn)
	if ev.Type != "state" || ev.State == nil {
		t.Fatalf("expected state event, got %+v", ev)
	}
	if ev.State.MenuDialog != disclosure.Closed || !ev.State.HeaderVisible {
		t.Errorf("unexpected initial state %+v", ev.State)
	}
}

func TestWebSocketSharesSessionWithPage(t *testing.T) {
	s, _ := setupTest(t, Config{})
	server := httptest.NewServer(setupRouter(s))
	defer server.Close()

	resp, err := http.Get(server.URL + "/?privacy=open")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	resp.Body.Close()

	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			cookie = c.Name + "=" + c.Value
		}
	}
	if cookie == "" {
		t.Fatal("expected session cookie")
	}

	conn := dialUI(t, server, http.Header{"Cookie": {cookie}})
	ev := readEvent(t, conn)
	if ev.State == nil || ev.State.PrivacyDialog != disclosure.Open {
		t.Errorf("socket should see the page's session, got %+v", ev.State)
	}
}

func TestWebSocketReplaysOnlyLatestScroll(t *testing.T) {
	s, _ := setupTest(t, Config{})
	server := httptest.NewServer(setupRouter(s))
	defer server.Close()

	resp, err := http.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	resp.Body.Close()
	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			cookie = c.Name + "=" + c.Value
		}
	}
	if cookie == "" {
		t.Fatal("expected session cookie")
	}

	// Navigate with no socket listening.
	for _, id := range []string{"about", "menu", "gallery"} {
		req, _ := http.NewRequest(http.MethodPost, server.URL+"/api/ui/navigate/"+id, nil)
		req.Header.Set("Cookie", cookie)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("navigate %s: %v", id, err)
		}
		resp.Body.Close()
	}

	conn := dialUI(t, server, http.Header{"Cookie": {cookie}})
	if ev := readEvent(t, conn); ev.Type != "state" {
		t.Fatalf("expected state first, got %+v", ev)
	}
	ev := readEvent(t, conn)
	if ev.Type != "scroll" || ev.SectionID != "gallery" {
		t.Fatalf("expected only the newest scroll, got %+v", ev)
	}

	// Nothing else was queued: the next event answers the next message.
	conn.WriteJSON(uiRequest{Type: "close_menu"})
	if ev := readEvent(t, conn); ev.Type != "state" {
		t.Errorf("superseded scroll replayed: %+v", ev)
	}

	// A reconnect has nothing left to replay.
	conn.Close()
	again := dialUI(t, server, http.Header{"Cookie": {cookie}})
	if ev := readEvent(t, again); ev.Type != "state" {
		t.Fatalf("expected state, got %+v", ev)
	}
	again.WriteJSON(uiRequest{Type: "open_privacy"})
	if ev := readEvent(t, again); ev.Type != "state" || ev.State.PrivacyDialog != disclosure.Open {
		t.Errorf("expected privacy state after reconnect, got %+v", ev)
	}
}

func TestWebSocketKeepsSessionAlive(t *testing.T) {
	s, sessions := setupTest(t, Config{})
	server := httptest.NewServer(setupRouter(s))
	defer server.Close()

	conn := dialUI(t, server, nil)
	if ev := readEvent(t, conn); ev.Type != "state" {
		t.Fatalf("expected initial state, got %+v", ev)
	}

	later := time.Now().Add(2 * time.Hour)
	if n := sessions.Sweep(later); n != 0 {
		t.Fatalf("session with an open socket was swept")
	}

	conn.Close()
	deadline := time.Now().Add(5 * time.Second)
	for sessions.Sweep(later) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("session not released after the socket closed")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWebSocketMenuSwitch(t *testing.T) {
	conn := startLive(t)

	conn.WriteJSON(uiRequest{Type: "open_menu", Category: "starters"})
	ev := readEvent(t, conn)
	if ev.Type != "state" || ev.State.SelectedCategory != content.Starters {
		t.Fatalf("after starters: %+v", ev)
	}

	conn.WriteJSON(uiRequest{Type: "open_menu", Category: "sweets"})
	ev = readEvent(t, conn)
	if ev.State.MenuDialog != disclosure.Open || ev.State.SelectedCategory != content.Sweets {
		t.Errorf("after sweets: %+v", ev.State)
	}

	conn.WriteJSON(uiRequest{Type: "close_menu"})
	ev = readEvent(t, conn)
	if ev.State.MenuDialog != disclosure.Closed || ev.State.SelectedCategory != "" {
		t.Errorf("after close: %+v", ev.State)
	}
}

func TestWebSocketUnknownCategory(t *testing.T) {
	conn := startLive(t)

	conn.WriteJSON(uiRequest{Type: "open_menu", Category: "soups"})
	ev := readEvent(t, conn)
	if ev.Type != "error" || !strings.Contains(ev.Message, "unknown menu category") {
		t.Errorf("expected unknown category error, got %+v", ev)
	}
}

func TestWebSocketPrivacyAndScroll(t *testing.T) {
	conn := startLive(t)

	conn.WriteJSON(uiRequest{Type: "open_privacy"})
	if ev := readEvent(t, conn); ev.State.PrivacyDialog != disclosure.Open {
		t.Errorf("privacy should be open: %+v", ev.State)
	}

	delta := 25.0
	conn.WriteJSON(uiRequest{Type: "scroll", Delta: &delta})
	if ev := readEvent(t, conn); ev.State.HeaderVisible {
		t.Error("header should hide on downward scroll")
	}

	delta = -5
	conn.WriteJSON(uiRequest{Type: "scroll", Delta: &delta})
	if ev := readEvent(t, conn); !ev.State.HeaderVisible {
		t.Error("header should show on upward scroll")
	}

	conn.WriteJSON(uiRequest{Type: "close_privacy"})
	if ev := readEvent(t, conn); ev.State.PrivacyDialog != disclosure.Closed {
		t.Errorf("privacy should be closed: %+v", ev.State)
	}
}

func TestWebSocketNavigate(t *testing.T) {
	conn := startLive(t)

	conn.WriteJSON(uiRequest{Type: "navigate", SectionID: "testimonials"})
	ev := readEvent(t, conn)
	if ev.Type != "scroll" {
		t.Fatalf("expected scroll event, got %+v", ev)
	}
	if ev.SectionID != "testimonials" || ev.Behavior != "smooth" || ev.Block != "start" {
		t.Errorf("unexpected scroll event %+v", ev)
	}

	// An unknown section produces nothing; the next event is the state
	// reply to the following message.
	conn.WriteJSON(uiRequest{Type: "navigate", SectionID: "nowhere"})
	conn.WriteJSON(uiRequest{Type: "close_menu"})
	if ev := readEvent(t, conn); ev.Type != "state" {
		t.Errorf("expected state after unknown navigate, got %+v", ev)
	}
}

func TestWebSocketBadMessages(t *testing.T) {
	conn := startLive(t)

	tests := []struct {
		name string
		send func() error
		want string
	}{
		{"malformed", func() error { return conn.WriteMessage(websocket.TextMessage, []byte("{")) }, "invalid message format"},
		{"unknown type", func() error { return conn.WriteJSON(uiRequest{Type: "dance"}) }, "unknown message type: dance"},
		{"scroll without delta", func() error { return conn.WriteJSON(uiRequest{Type: "scroll"}) }, "delta is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.send(); err != nil {
				t.Fatalf("write: %v", err)
			}
			ev := readEvent(t, conn)
			if ev.Type != "error" || ev.Message != tt.want {
				t.Errorf("got %+v, want error %q", ev, tt.want)
			}
		})
	}
}

func TestWebSocketRateLimit(t *testing.T) {
	s, sessions := setupTest(t, Config{})
	sessions.SetRateLimit(0.001, 1)
	server := httptest.NewServer(setupRouter(s))
	defer server.Close()

	conn := dialUI(t, server, nil)
	readEvent(t, conn)

	conn.WriteJSON(uiRequest{Type: "open_privacy"})
	if ev := readEvent(t, conn); ev.Type != "state" {
		t.Fatalf("first change: expected state, got %+v", ev)
	}
	conn.WriteJSON(uiRequest{Type: "close_privacy"})
	if ev := readEvent(t, conn); ev.Type != "error" || ev.Message != "rate limit exceeded" {
		t.Errorf("second change: expected rate limit error, got %+v", ev)
	}
}
