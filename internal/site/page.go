package site

import (
	"fmt"
	"html/template"

	"github.com/ziadkadry99/bistro/internal/content"
	"github.com/ziadkadry99/bistro/internal/disclosure"
)

// Options controls how a page is rendered.
type Options struct {
	// SiteName replaces the restaurant name from the content store when set.
	SiteName string
	// BaseURL is the absolute URL the site is published at. Empty omits the
	// canonical link.
	BaseURL string
	// Live makes the page script talk to the server over /ws/ui instead of
	// keeping its toggles in the browser.
	Live bool
}

// MenuDialog is the pre-rendered dialog listing one category's dishes.
type MenuDialog struct {
	Key   content.CategoryKey
	Title string
	Items []content.MenuItem
	Open  bool
}

// Page is the view model handed to the page template.
type Page struct {
	SiteName      string
	BaseURL       string
	Live          bool
	HeaderVisible bool

	Navigation   []content.NavigationEntry
	Hero         content.Hero
	About        content.Document
	AboutHTML    template.HTML
	Categories   []content.Category
	MenuDialogs  []MenuDialog
	Gallery      []content.GalleryImage
	Testimonials []content.Testimonial
	Contact      content.Contact

	Privacy     content.Document
	PrivacyHTML template.HTML
	PrivacyOpen bool
}

// BuildPage assembles the view model from the content store and one
// session's toggle state. Every dialog is rendered; only those open in
// state are visible.
func (r *Renderer) BuildPage(store *content.Store, state disclosure.State, opts Options) (Page, error) {
	about := store.About()
	aboutHTML, err := r.Markdown(about.Body)
	if err != nil {
		return Page{}, fmt.Errorf("rendering about: %w", err)
	}
	privacy := store.Privacy()
	privacyHTML, err := r.Markdown(privacy.Body)
	if err != nil {
		return Page{}, fmt.Errorf("rendering privacy policy: %w", err)
	}

	categories := store.Categories()
	dialogs := make([]MenuDialog, 0, len(categories))
	for _, c := range categories {
		dialogs = append(dialogs, MenuDialog{
			Key:   c.Key,
			Title: c.Label,
			Items: store.Items(c.Key),
			Open:  state.MenuDialog == disclosure.Open && state.SelectedCategory == c.Key,
		})
	}

	name := store.SiteName()
	hero := store.Hero()
	if opts.SiteName != "" {
		name = opts.SiteName
		hero.Title = opts.SiteName
	}

	return Page{
		SiteName:      name,
		BaseURL:       opts.BaseURL,
		Live:          opts.Live,
		HeaderVisible: state.HeaderVisible,
		Navigation:    store.Navigation(),
		Hero:          hero,
		About:         about,
		AboutHTML:     aboutHTML,
		Categories:    categories,
		MenuDialogs:   dialogs,
		Gallery:       store.Gallery(),
		Testimonials:  store.Testimonials(),
		Contact:       store.Contact(),
		Privacy:       privacy,
		PrivacyHTML:   privacyHTML,
		PrivacyOpen:   state.PrivacyDialog == disclosure.Open,
	}, nil
}
