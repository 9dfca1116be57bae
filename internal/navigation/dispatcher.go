// Package navigation turns nav bar clicks into scroll commands for the
// browser.
package navigation

import "sync"

// Command asks the browser to bring a section to the top of the viewport.
type Command struct {
	SectionID string `json:"section_id"`
	Behavior  string `json:"behavior"`
	Block     string `json:"block"`
}

// Scroller delivers scroll commands. Implementations must return without
// waiting for the scroll to happen.
type Scroller interface {
	Scroll(cmd Command)
}

// Func adapts a plain function to the Scroller interface.
type Func func(cmd Command)

func (f Func) Scroll(cmd Command) { f(cmd) }

// Registry is the ordered set of addressable sections on the page.
type Registry struct {
	order []string
	ids   map[string]bool
}

// NewRegistry returns a registry of the given section IDs. Empty and
// duplicate IDs are ignored.
func NewRegistry(ids ...string) *Registry {
	r := &Registry{ids: make(map[string]bool, len(ids))}
	for _, id := range ids {
		if id == "" || r.ids[id] {
			continue
		}
		r.ids[id] = true
		r.order = append(r.order, id)
	}
	return r
}

// Has reports whether id names a section.
func (r *Registry) Has(id string) bool {
	return r.ids[id]
}

// Sections returns the section IDs in registration order.
func (r *Registry) Sections() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Dispatcher maps section IDs to scroll commands.
type Dispatcher struct {
	registry *Registry
	scroller Scroller
}

// NewDispatcher returns a Dispatcher sending commands for sections in
// registry to scroller.
func NewDispatcher(registry *Registry, scroller Scroller) *Dispatcher {
	return &Dispatcher{registry: registry, scroller: scroller}
}

// ScrollTo issues a smooth scroll to sectionID. Unknown sections are ignored
// and ScrollTo reports false.
func (d *Dispatcher) ScrollTo(sectionID string) bool {
	if d.registry == nil || !d.registry.Has(sectionID) {
		return false
	}
	d.scroller.Scroll(Command{SectionID: sectionID, Behavior: "smooth", Block: "start"})
	return true
}

// ChannelScroller queues commands on a buffered channel for a writer
// goroutine. When the buffer is full the oldest queued command is dropped.
type ChannelScroller struct {
	mu sync.Mutex
	ch chan Command
}

// NewChannelScroller returns a ChannelScroller with room for size pending
// commands. size is at least 1.
func NewChannelScroller(size int) *ChannelScroller {
	if size < 1 {
		size = 1
	}
	return &ChannelScroller{ch: make(chan Command, size)}
}

// Scroll queues cmd without blocking.
func (s *ChannelScroller) Scroll(cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		select {
		case s.ch <- cmd:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

// Latest empties the queue and returns the newest pending command, if any.
func (s *ChannelScroller) Latest() (Command, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var (
		last Command
		ok   bool
	)
	for {
		select {
		case cmd := <-s.ch:
			last, ok = cmd, true
		default:
			return last, ok
		}
	}
}

// Commands returns the channel the writer goroutine drains.
func (s *ChannelScroller) Commands() <-chan Command {
	return s.ch
}
