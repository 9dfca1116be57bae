package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/bistro/internal/content"
	"github.com/ziadkadry99/bistro/internal/disclosure"
	"github.com/ziadkadry99/bistro/internal/navigation"
	"github.com/ziadkadry99/bistro/internal/session"
)

// Config controls what the live site serves besides the page itself.
type Config struct {
	SiteName  string
	StaticDir string
	Exclude   []string
	BaseURL   string
}

// Site serves the page, its content API and the per-session UI API.
type Site struct {
	store    *content.Store
	renderer *Renderer
	sessions *session.Manager
	cfg      Config
}

// New creates a Site backed by store. UI state lives in sessions.
func New(store *content.Store, sessions *session.Manager, cfg Config) (*Site, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	return &Site{
		store:    store,
		renderer: renderer,
		sessions: sessions,
		cfg:      cfg,
	}, nil
}

// RegisterRoutes mounts all site routes onto the given router.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handleIndex)
	r.Get("/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/script.js", serveAsset("application/javascript; charset=utf-8", jsContent))
	if s.cfg.StaticDir != "" {
		r.Get("/static/*", s.handleStatic)
	}

	r.Route("/api/content", func(r chi.Router) {
		r.Get("/", s.handleContent)
		r.Get("/menu", s.handleMenu)
		r.Get("/menu/{category}", s.handleMenuCategory)
		r.Get("/gallery", s.handleGallery)
		r.Get("/testimonials", s.handleTestimonials)
		r.Get("/navigation", s.handleNavigation)
	})

	r.Route("/api/ui", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/menu/{category}", s.handleOpenMenu)
		r.Delete("/menu", s.handleCloseMenu)
		r.Post("/privacy", s.handleOpenPrivacy)
		r.Delete("/privacy", s.handleClosePrivacy)
		r.Post("/scroll", s.handleScroll)
		r.Post("/navigate/{section}", s.handleNavigate)
	})

	r.Get("/ws/ui", s.handleWebSocket)
}

func (s *Site) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Resolve(w, r)

	q := r.URL.Query()
	state, _ := sess.Do(func(c *disclosure.Controller, _ *navigation.Dispatcher) error {
		if key, ok := content.ParseCategoryKey(q.Get("menu")); ok {
			if err := c.OpenMenuCategory(key); err != nil {
				return err
			}
		}
		if q.Get("privacy") == "open" {
			c.OpenPrivacyDialog()
		}
		return nil
	})

	page, err := s.renderer.BuildPage(s.store, state, Options{SiteName: s.cfg.SiteName, BaseURL: s.cfg.BaseURL, Live: true})
	if err != nil {
		log.Printf("site: building page: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, page); err != nil {
		log.Printf("site: rendering page: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

func (s *Site) handleStatic(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if rel == "" || isExcluded(rel, s.cfg.Exclude) {
		http.NotFound(w, r)
		return
	}
	http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.StaticDir))).ServeHTTP(w, r)
}

// ===== Content API =====

func (s *Site) handleContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NewExport(s.store))
}

func (s *Site) handleMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Menu())
}

func (s *Site) handleMenuCategory(w http.ResponseWriter, r *http.Request) {
	key, ok := content.ParseCategoryKey(chi.URLParam(r, "category"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown menu category"})
		return
	}
	writeJSON(w, http.StatusOK, s.store.Items(key))
}

func (s *Site) handleGallery(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Gallery())
}

func (s *Site) handleTestimonials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Testimonials())
}

func (s *Site) handleNavigation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Navigation())
}

// ===== UI API =====

// stateResponse is the session's toggle state plus the dishes of the open
// menu dialog.
type stateResponse struct {
	disclosure.State
	Items []content.MenuItem `json:"items,omitempty"`
}

// navigateResponse reports whether a scroll command was issued.
type navigateResponse struct {
	Dispatched bool `json:"dispatched"`
}

// scrollRequest is the JSON body for POST /api/ui/scroll.
type scrollRequest struct {
	Delta *float64 `json:"delta"`
}

// limited answers 429 when the session has used up its UI changes.
func limited(w http.ResponseWriter, sess *session.Session) bool {
	if sess.Allow() {
		return false
	}
	writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
	return true
}

func (s *Site) writeState(w http.ResponseWriter, sess *session.Session, state disclosure.State) {
	writeJSON(w, http.StatusOK, stateResponse{State: state, Items: sess.MenuItems()})
}

func (s *Site) handleState(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Resolve(w, r)
	s.writeState(w, sess, sess.State())
}

func (s *Site) handleOpenMenu(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Resolve(w, r)
	if limited(w, sess) {
		return
	}
	key := content.CategoryKey(chi.URLParam(r, "category"))
	state, err := sess.Do(func(c *disclosure.Controller, _ *navigation.Dispatcher) error {
		return c.OpenMenuCategory(key)
	})
	if errors.Is(err, disclosure.ErrUnknownCategory) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	s.writeState(w, sess, state)
}

func (s *Site) handleCloseMenu(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Resolve(w, r)
	if limited(w, sess) {
		return
	}
	state, _ := sess.Do(func(c *disclosure.Controller, _ *navigation.Dispatcher) error {
		c.CloseMenuDialog()
		return nil
	})
	s.writeState(w, sess, state)
}

func (s *Site) handleOpenPrivacy(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Resolve(w, r)
	if limited(w, sess) {
		return
	}
	state, _ := sess.Do(func(c *disclosure.Controller, _ *navigation.Dispatcher) error {
		c.OpenPrivacyDialog()
		return nil
	})
	s.writeState(w, sess, state)
}

func (s *Site) handleClosePrivacy(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Resolve(w, r)
	if limited(w, sess) {
		return
	}
	state, _ := sess.Do(func(c *disclosure.Controller, _ *navigation.Dispatcher) error {
		c.ClosePrivacyDialog()
		return nil
	})
	s.writeState(w, sess, state)
}

func (s *Site) handleScroll(w http.ResponseWriter, r *http.Request) {
	var req scrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Delta == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "delta is required"})
		return
	}

	sess := s.sessions.Resolve(w, r)
	if limited(w, sess) {
		return
	}
	state, _ := sess.Do(func(c *disclosure.Controller, _ *navigation.Dispatcher) error {
		c.ObserveScroll(*req.Delta)
		return nil
	})
	s.writeState(w, sess, state)
}

func (s *Site) handleNavigate(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Resolve(w, r)
	if limited(w, sess) {
		return
	}
	section := chi.URLParam(r, "section")
	var dispatched bool
	sess.Do(func(_ *disclosure.Controller, d *navigation.Dispatcher) error {
		dispatched = d.ScrollTo(section)
		return nil
	})
	writeJSON(w, http.StatusOK, navigateResponse{Dispatched: dispatched})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
