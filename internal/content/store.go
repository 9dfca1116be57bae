package content

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/adrg/frontmatter"
)

//go:embed documents/*.md
var documentFS embed.FS

// Store is the read-only content of the site. Every accessor returns a copy,
// so callers may freely modify what they get back.
type Store struct {
	about   Document
	privacy Document
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the process-wide store, loading it on first use.
// It panics if the embedded documents cannot be parsed.
func Default() *Store {
	defaultOnce.Do(func() {
		s, err := Load()
		if err != nil {
			panic(fmt.Sprintf("content: %v", err))
		}
		defaultStore = s
	})
	return defaultStore
}

// Load builds a Store from the compiled-in tables and embedded documents.
func Load() (*Store, error) {
	about, err := loadDocument("documents/about.md")
	if err != nil {
		return nil, err
	}
	privacy, err := loadDocument("documents/privacy.md")
	if err != nil {
		return nil, err
	}
	return &Store{about: about, privacy: privacy}, nil
}

// documentMatter is the frontmatter accepted at the top of a document.
type documentMatter struct {
	Title    string `yaml:"title"`
	Image    string `yaml:"image"`
	ImageAlt string `yaml:"image_alt"`
}

func loadDocument(name string) (Document, error) {
	raw, err := documentFS.ReadFile(name)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", name, err)
	}
	var matter documentMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &matter)
	if err != nil {
		return Document{}, fmt.Errorf("parsing frontmatter of %s: %w", name, err)
	}
	if matter.Title == "" {
		return Document{}, fmt.Errorf("document %s has no title", name)
	}
	return Document{
		Title:    matter.Title,
		Image:    matter.Image,
		ImageAlt: matter.ImageAlt,
		Body:     strings.TrimSpace(string(body)),
	}, nil
}

// SiteName returns the restaurant name shown in the nav bar and title.
func (s *Store) SiteName() string { return siteName }

// Hero returns the banner content.
func (s *Store) Hero() Hero { return hero }

// About returns the about section document.
func (s *Store) About() Document { return s.about }

// Privacy returns the privacy policy document.
func (s *Store) Privacy() Document { return s.privacy }

// Navigation returns the nav bar entries in display order.
func (s *Store) Navigation() []NavigationEntry {
	out := make([]NavigationEntry, len(navigation))
	copy(out, navigation)
	return out
}

// Categories returns the menu category cards in display order.
func (s *Store) Categories() []Category {
	out := make([]Category, 0, len(categoryOrder))
	for _, k := range categoryOrder {
		out = append(out, categories[k])
	}
	return out
}

// Items returns the dishes of a category in their defined order. It returns
// nil for a key that is not a menu category.
func (s *Store) Items(key CategoryKey) []MenuItem {
	items, ok := menu[key]
	if !ok {
		return nil
	}
	out := make([]MenuItem, len(items))
	copy(out, items)
	return out
}

// Menu returns the whole menu table keyed by category.
func (s *Store) Menu() map[CategoryKey][]MenuItem {
	out := make(map[CategoryKey][]MenuItem, len(menu))
	for _, k := range categoryOrder {
		out[k] = s.Items(k)
	}
	return out
}

// Gallery returns the gallery images in display order.
func (s *Store) Gallery() []GalleryImage {
	out := make([]GalleryImage, len(gallery))
	copy(out, gallery)
	return out
}

// Testimonials returns the customer quotes in display order.
func (s *Store) Testimonials() []Testimonial {
	out := make([]Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}

// Contact returns the contact details.
func (s *Store) Contact() Contact {
	c := contact
	c.Social = make([]SocialLink, len(contact.Social))
	copy(c.Social, contact.Social)
	return c
}

// SectionIDs returns the section identifiers addressable from the nav bar.
func (s *Store) SectionIDs() []string {
	ids := make([]string, len(navigation))
	for i, e := range navigation {
		ids[i] = e.SectionID
	}
	return ids
}
