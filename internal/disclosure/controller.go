// Package disclosure holds the UI toggle state of the page: which menu
// category dialog is open, whether the privacy dialog is open, and whether
// the header should be showing given the last scroll movement.
package disclosure

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/bistro/internal/content"
)

// ErrUnknownCategory is returned when a dialog is requested for a key that
// is not one of the menu categories.
var ErrUnknownCategory = errors.New("unknown menu category")

// DialogState is the disclosure state of a single dialog.
type DialogState int

const (
	Closed DialogState = iota
	Open
)

func (d DialogState) String() string {
	if d == Open {
		return "open"
	}
	return "closed"
}

// MarshalText renders the state as "open" or "closed".
func (d DialogState) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts "open" or "closed".
func (d *DialogState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "open":
		*d = Open
	case "closed":
		*d = Closed
	default:
		return fmt.Errorf("invalid dialog state %q", text)
	}
	return nil
}

// ItemSource supplies the dishes shown in a category dialog.
type ItemSource interface {
	Items(key content.CategoryKey) []content.MenuItem
}

// IsHeaderVisible reports whether the header should be shown after a scroll
// movement of delta pixels. Positive deltas move down the page.
func IsHeaderVisible(delta float64) bool {
	return delta <= 0
}

// Controller owns the toggle state of one page. It is not safe for
// concurrent use.
type Controller struct {
	items      ItemSource
	selected   content.CategoryKey
	privacy    bool
	lastScroll float64
}

// New returns a Controller with both dialogs closed and the header visible.
func New(items ItemSource) *Controller {
	return &Controller{items: items}
}

// OpenMenuCategory shows the dialog for key. An already open category dialog
// is replaced in the same step.
func (c *Controller) OpenMenuCategory(key content.CategoryKey) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, key)
	}
	c.selected = key
	return nil
}

// CloseMenuDialog hides the category dialog. Closing a closed dialog is a no-op.
func (c *Controller) CloseMenuDialog() {
	c.selected = ""
}

// SelectedCategory returns the category whose dialog is open.
func (c *Controller) SelectedCategory() (content.CategoryKey, bool) {
	return c.selected, c.selected != ""
}

// MenuDialog returns the disclosure state of the category dialog.
func (c *Controller) MenuDialog() DialogState {
	if c.selected == "" {
		return Closed
	}
	return Open
}

// MenuItems returns the dishes of the open category, or nil when the dialog
// is closed.
func (c *Controller) MenuItems() []content.MenuItem {
	if c.selected == "" || c.items == nil {
		return nil
	}
	return c.items.Items(c.selected)
}

// OpenPrivacyDialog shows the privacy policy.
func (c *Controller) OpenPrivacyDialog() { c.privacy = true }

// ClosePrivacyDialog hides the privacy policy.
func (c *Controller) ClosePrivacyDialog() { c.privacy = false }

// PrivacyOpen reports whether the privacy dialog is showing.
func (c *Controller) PrivacyOpen() bool { return c.privacy }

// PrivacyDialog returns the disclosure state of the privacy dialog.
func (c *Controller) PrivacyDialog() DialogState {
	if c.privacy {
		return Open
	}
	return Closed
}

// ObserveScroll records the most recent scroll movement.
func (c *Controller) ObserveScroll(delta float64) {
	c.lastScroll = delta
}

// HeaderVisible applies IsHeaderVisible to the most recent scroll movement.
func (c *Controller) HeaderVisible() bool {
	return IsHeaderVisible(c.lastScroll)
}

// State is a point-in-time copy of a Controller's toggles.
type State struct {
	MenuDialog       DialogState         `json:"menu_dialog"`
	SelectedCategory content.CategoryKey `json:"selected_category,omitempty"`
	PrivacyDialog    DialogState         `json:"privacy_dialog"`
	HeaderVisible    bool                `json:"header_visible"`
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	return State{
		MenuDialog:       c.MenuDialog(),
		SelectedCategory: c.selected,
		PrivacyDialog:    c.PrivacyDialog(),
		HeaderVisible:    c.HeaderVisible(),
	}
}
