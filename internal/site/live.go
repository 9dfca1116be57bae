package site

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/bistro/internal/content"
	"github.com/ziadkadry99/bistro/internal/disclosure"
	"github.com/ziadkadry99/bistro/internal/navigation"
	"github.com/ziadkadry99/bistro/internal/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// uiRequest is the incoming WebSocket message format.
type uiRequest struct {
	Type      string   `json:"type"` // open_menu, close_menu, open_privacy, close_privacy, scroll or navigate
	Category  string   `json:"category,omitempty"`
	Delta     *float64 `json:"delta,omitempty"`
	SectionID string   `json:"section_id,omitempty"`
}

// uiEvent is the outgoing WebSocket message format.
type uiEvent struct {
	Type      string            `json:"type"` // "state", "scroll" or "error"
	State     *disclosure.State `json:"state,omitempty"`
	SectionID string            `json:"section_id,omitempty"`
	Behavior  string            `json:"behavior,omitempty"`
	Block     string            `json:"block,omitempty"`
	Message   string            `json:"message,omitempty"`
}

// liveConn serializes writes to one socket.
type liveConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *liveConn) send(ev uiEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(ev); err != nil {
		log.Printf("site: websocket write: %v", err)
	}
}

func (c *liveConn) sendState(state disclosure.State) {
	c.send(uiEvent{Type: "state", State: &state})
}

func (c *liveConn) sendError(message string) {
	c.send(uiEvent{Type: "error", Message: message})
}

func (c *liveConn) sendScroll(cmd navigation.Command) {
	c.send(uiEvent{
		Type:      "scroll",
		SectionID: cmd.SectionID,
		Behavior:  cmd.Behavior,
		Block:     cmd.Block,
	})
}

func (s *Site) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Resolve(w, r)

	// The upgrade response ignores w's headers, so pass a fresh cookie along.
	var header http.Header
	if cookies := w.Header().Values("Set-Cookie"); len(cookies) > 0 {
		header = http.Header{"Set-Cookie": cookies}
	}

	conn, err := upgrader.Upgrade(w, r, header)
	if err != nil {
		log.Printf("site: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	release := sess.Attach()
	defer release()

	lc := &liveConn{conn: conn}
	lc.sendState(sess.State())
	if cmd, ok := sess.PendingScroll(); ok {
		lc.sendScroll(cmd)
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			select {
			case <-done:
				return
			case cmd := <-sess.Commands():
				lc.sendScroll(cmd)
			}
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("site: websocket read: %v", err)
			}
			return
		}

		var req uiRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			lc.sendError("invalid message format")
			continue
		}

		s.handleUIMessage(lc, sess, req)
	}
}

func (s *Site) handleUIMessage(lc *liveConn, sess *session.Session, req uiRequest) {
	if !sess.Allow() {
		lc.sendError("rate limit exceeded")
		return
	}

	var op func(c *disclosure.Controller, d *navigation.Dispatcher) error

	switch req.Type {
	case "open_menu":
		op = func(c *disclosure.Controller, _ *navigation.Dispatcher) error {
			return c.OpenMenuCategory(content.CategoryKey(req.Category))
		}
	case "close_menu":
		op = func(c *disclosure.Controller, _ *navigation.Dispatcher) error {
			c.CloseMenuDialog()
			return nil
		}
	case "open_privacy":
		op = func(c *disclosure.Controller, _ *navigation.Dispatcher) error {
			c.OpenPrivacyDialog()
			return nil
		}
	case "close_privacy":
		op = func(c *disclosure.Controller, _ *navigation.Dispatcher) error {
			c.ClosePrivacyDialog()
			return nil
		}
	case "scroll":
		if req.Delta == nil {
			lc.sendError("delta is required")
			return
		}
		op = func(c *disclosure.Controller, _ *navigation.Dispatcher) error {
			c.ObserveScroll(*req.Delta)
			return nil
		}
	case "navigate":
		// A dispatched command reaches the socket through the session's
		// scroll channel. Unknown sections produce nothing.
		sess.Do(func(_ *disclosure.Controller, d *navigation.Dispatcher) error {
			d.ScrollTo(req.SectionID)
			return nil
		})
		return
	default:
		lc.sendError("unknown message type: " + req.Type)
		return
	}

	state, err := sess.Do(op)
	if err != nil {
		lc.sendError(err.Error())
		return
	}
	lc.sendState(state)
}
