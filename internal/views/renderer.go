// Package views renders the application pages from embedded HTML templates
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/wordbook/backend/internal/models"
)

//go:embed templates/*.html templates/partials/*.html
var templatesFS embed.FS

// Page template names
const (
	PageSplash    = "splash.html"
	PageHome      = "home.html"
	PageWordOfDay = "word_of_the_day.html"
	PageHistory   = "history.html"
	PageBookmarks = "bookmarks.html"
)

// Navigation keys of the sidebar
const (
	NavHome      = "home"
	NavWordOfDay = "word-of-the-day"
	NavHistory   = "history"
	NavBookmarks = "bookmarks"
)

var pages = []string{PageSplash, PageHome, PageWordOfDay, PageHistory, PageBookmarks}

// PageData holds the data available to every page template
type PageData struct {
	Title      string
	ActivePage string

	Word       string
	Definition *models.Definition
	Bookmarked bool
	History    []models.SearchEntry
	Bookmarks  []models.BookmarkEntry

	Error   string
	Warning string
	Success string

	// RedirectURL and RedirectAfter drive the splash screen meta refresh
	RedirectURL   string
	RedirectAfter int
}

// Renderer executes page templates
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every page together with the layout and partials
func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))

	for _, page := range pages {
		tmpl, err := template.New("").Funcs(funcMap()).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/partials/*.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", page, err)
		}
		templates[page] = tmpl
	}

	return &Renderer{templates: templates}, nil
}

// Render writes the named page wrapped in the layout
func (r *Renderer) Render(w io.Writer, page string, data PageData) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("template not found: %s", page)
	}
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("failed to execute %s: %w", page, err)
	}
	return nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"navItems": func() []navItem {
			return navigation
		},
	}
}

type navItem struct {
	Key   string
	Label string
	Path  string
}

var navigation = []navItem{
	{Key: NavHome, Label: "🏠 Home", Path: "/home"},
	{Key: NavWordOfDay, Label: "🌟 Word of the Day", Path: "/word-of-the-day"},
	{Key: NavHistory, Label: "🔍 Search History", Path: "/history"},
	{Key: NavBookmarks, Label: "📌 Bookmarked Words", Path: "/bookmarks"},
}
