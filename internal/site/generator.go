package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/bistro/internal/content"
	"github.com/ziadkadry99/bistro/internal/disclosure"
	"github.com/ziadkadry99/bistro/internal/progress"
)

// Generator writes the restaurant page as a static site.
type Generator struct {
	SiteName  string
	OutputDir string
	StaticDir string
	Exclude   []string
	BaseURL   string
	Store     *content.Store
	Reporter  progress.Reporter
}

// NewGenerator creates a Generator that reads from the default content store.
func NewGenerator(outputDir, staticDir string, exclude []string, baseURL string) *Generator {
	return &Generator{
		OutputDir: outputDir,
		StaticDir: staticDir,
		Exclude:   exclude,
		BaseURL:   baseURL,
		Store:     content.Default(),
		Reporter:  progress.Discard{},
	}
}

// Export is the machine-readable copy of the page content written to
// content.json and served under /api/content.
type Export struct {
	SiteName     string                                     `json:"site_name"`
	Hero         content.Hero                               `json:"hero"`
	Navigation   []content.NavigationEntry                  `json:"navigation"`
	About        content.Document                           `json:"about"`
	Categories   []content.Category                         `json:"categories"`
	Menu         map[content.CategoryKey][]content.MenuItem `json:"menu"`
	Gallery      []content.GalleryImage                     `json:"gallery"`
	Testimonials []content.Testimonial                      `json:"testimonials"`
	Contact      content.Contact                            `json:"contact"`
	Privacy      content.Document                           `json:"privacy"`
}

// NewExport collects every read accessor of store.
func NewExport(store *content.Store) Export {
	return Export{
		SiteName:     store.SiteName(),
		Hero:         store.Hero(),
		Navigation:   store.Navigation(),
		About:        store.About(),
		Categories:   store.Categories(),
		Menu:         store.Menu(),
		Gallery:      store.Gallery(),
		Testimonials: store.Testimonials(),
		Contact:      store.Contact(),
		Privacy:      store.Privacy(),
	}
}

// Generate builds the site into OutputDir. Returns the number of files written.
func (g *Generator) Generate() (int, error) {
	store := g.Store
	if store == nil {
		store = content.Default()
	}
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Discard{}
	}

	assets, err := CollectAssets(g.StaticDir, g.Exclude)
	if err != nil {
		return 0, err
	}

	renderer, err := NewRenderer()
	if err != nil {
		return 0, err
	}
	page, err := renderer.BuildPage(store, disclosure.New(store).Snapshot(), Options{SiteName: g.SiteName, BaseURL: g.BaseURL})
	if err != nil {
		return 0, err
	}
	var index bytes.Buffer
	if err := renderer.Render(&index, page); err != nil {
		return 0, fmt.Errorf("rendering index.html: %w", err)
	}

	export, err := json.MarshalIndent(NewExport(store), "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encoding content.json: %w", err)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	files := []struct {
		name string
		data []byte
	}{
		{"index.html", index.Bytes()},
		{"style.css", []byte(cssContent)},
		{"script.js", []byte(jsContent)},
		{"content.json", export},
	}

	total := len(files) + len(assets)
	reporter.Start(total)
	defer reporter.Finish()

	written := 0
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(g.OutputDir, f.name), f.data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", f.name, err)
		}
		written++
		reporter.Update(written, f.name)
	}

	for _, a := range assets {
		dst := filepath.Join(g.OutputDir, "static", filepath.FromSlash(a.RelPath))
		if err := copyFile(a.Path, dst); err != nil {
			return written, fmt.Errorf("copying %s: %w", a.RelPath, err)
		}
		written++
		reporter.Update(written, "static/"+a.RelPath)
	}

	return written, nil
}
