package content

// CategoryKey identifies one of the fixed menu categories.
type CategoryKey string

const (
	Starters   CategoryKey = "starters"
	MainCourse CategoryKey = "mainCourse"
	Sweets     CategoryKey = "sweets"
)

// categoryOrder is the display order of the menu categories.
var categoryOrder = []CategoryKey{Starters, MainCourse, Sweets}

// categoryLabels maps each key to its display label.
var categoryLabels = map[CategoryKey]string{
	Starters:   "Starters",
	MainCourse: "Main Course",
	Sweets:     "Sweets",
}

// CategoryKeys returns the menu category keys in display order.
func CategoryKeys() []CategoryKey {
	out := make([]CategoryKey, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Label returns the display label for key, or "" if key is not a menu category.
func Label(key CategoryKey) string {
	return categoryLabels[key]
}

// ParseCategoryKey converts s to a CategoryKey. The match is exact.
func ParseCategoryKey(s string) (CategoryKey, bool) {
	k := CategoryKey(s)
	if _, ok := categoryLabels[k]; !ok {
		return "", false
	}
	return k, true
}

// Valid reports whether k is one of the fixed menu categories.
func (k CategoryKey) Valid() bool {
	_, ok := categoryLabels[k]
	return ok
}

// MenuItem is a single dish.
type MenuItem struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// Category is the card shown for a menu category in the menu section.
type Category struct {
	Key   CategoryKey `json:"key"`
	Label string      `json:"label"`
	Blurb string      `json:"blurb"`
	Image string      `json:"image"`
}

// NavigationEntry is one nav bar button and the section it scrolls to.
type NavigationEntry struct {
	Label     string `json:"label"`
	SectionID string `json:"section_id"`
}

// GalleryImage is one tile of the gallery grid.
type GalleryImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Rating int    `json:"rating"`
	Quote  string `json:"quote"`
}

// Hero is the full-height banner at the top of the page.
type Hero struct {
	Title        string `json:"title"`
	Tagline      string `json:"tagline"`
	Image        string `json:"image"`
	CallToAction string `json:"call_to_action"`
}

// SocialLink is a social network handle listed in the contact section.
type SocialLink struct {
	Network string `json:"network"`
	Handle  string `json:"handle"`
}

// Contact holds the contact section details.
type Contact struct {
	Address string       `json:"address"`
	Phone   string       `json:"phone"`
	Email   string       `json:"email"`
	Hours   string       `json:"hours"`
	Social  []SocialLink `json:"social"`
}

// Document is a Markdown text block with its frontmatter already parsed.
type Document struct {
	Title    string `json:"title"`
	Image    string `json:"image,omitempty"`
	ImageAlt string `json:"image_alt,omitempty"`
	Body     string `json:"body"`
}
