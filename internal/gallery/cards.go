// Package gallery renders the video gallery: the card grid, the featured
// row and the player modal fragments, driven by the catalog and the view
// ledger.
package gallery

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ivtr7/dtsite/internal/catalog"
	"github.com/ivtr7/dtsite/internal/views"
)

// DefaultCategories is the ordered category list the site has always shown.
// Records in any other category never render; the list is configuration,
// not a property of the data.
var DefaultCategories = []string{"Aftermovie Evento", "Aftermovie DJ", "Vídeo Drop"}

const defaultFeaturedLimit = 3

const (
	featuredDescriptionLimit = 100
	cardDescriptionLimit     = 80
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CategoryToken derives the URL-safe filter token for a category name:
// lowercased, whitespace runs collapsed to hyphens.
func CategoryToken(category string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(category), "-")
}

// Card is the view model for a single rendered video card.
type Card struct {
	ID            string
	Title         string
	Category      string
	CategoryToken string
	Description   string
	Duration      string
	ThumbnailURL  string
	Featured      bool
	ViewsLabel    string
}

// Section is one category block of the gallery.
type Section struct {
	Title string
	Cards []Card
}

// Filter is one button of the category filter bar.
type Filter struct {
	Token string
	Label string
}

// Renderer projects the catalog into gallery view models.
type Renderer struct {
	store         *catalog.Store
	resolver      *views.Resolver
	categories    []string
	featuredLimit int
	printer       *message.Printer
}

func NewRenderer(store *catalog.Store, resolver *views.Resolver, categories []string, featuredLimit int) *Renderer {
	if len(categories) == 0 {
		categories = DefaultCategories
	}
	if featuredLimit <= 0 {
		featuredLimit = defaultFeaturedLimit
	}
	return &Renderer{
		store:         store,
		resolver:      resolver,
		categories:    categories,
		featuredLimit: featuredLimit,
		printer:       message.NewPrinter(language.BrazilianPortuguese),
	}
}

// FeaturedCards returns up to the configured number of featured cards in
// catalog order. An empty result means the featured section is omitted
// entirely, not rendered empty.
func (r *Renderer) FeaturedCards() []Card {
	featured := r.store.Featured(r.featuredLimit)
	cards := make([]Card, 0, len(featured))
	for _, v := range featured {
		cards = append(cards, r.buildCard(v, true))
	}
	return cards
}

// Sections returns the per-category blocks in configured order. Categories
// with no matching records are skipped.
func (r *Renderer) Sections() []Section {
	var sections []Section
	for _, category := range r.categories {
		matches := r.store.ByCategory(category)
		if len(matches) == 0 {
			continue
		}
		cards := make([]Card, 0, len(matches))
		for _, v := range matches {
			cards = append(cards, r.buildCard(v, false))
		}
		sections = append(sections, Section{Title: category, Cards: cards})
	}
	return sections
}

// Filters returns the filter bar buttons: "all" plus one per configured
// category.
func (r *Renderer) Filters() []Filter {
	filters := []Filter{{Token: "all", Label: "Todos"}}
	for _, category := range r.categories {
		filters = append(filters, Filter{Token: CategoryToken(category), Label: category})
	}
	return filters
}

func (r *Renderer) buildCard(v catalog.Video, featured bool) Card {
	card := Card{
		ID:            v.ID,
		Title:         v.Title,
		Category:      v.Category,
		CategoryToken: CategoryToken(v.Category),
		Duration:      v.Duration,
		ThumbnailURL:  v.ThumbnailURL,
		Featured:      featured,
	}
	if v.Description != "" {
		limit := cardDescriptionLimit
		if featured {
			limit = featuredDescriptionLimit
		}
		card.Description = truncate(v.Description, limit)
	}
	if !featured {
		card.ViewsLabel = r.formatViews(r.resolver.Resolve(v.ID))
	}
	return card
}

// truncate cuts s to at most limit runes and always appends the ellipsis,
// whether or not anything was cut. That is how the cards have always
// looked; changing it would be a visible redesign.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		runes = runes[:limit]
	}
	return string(runes) + "..."
}

func (r *Renderer) formatViews(n int64) string {
	return r.printer.Sprintf("%d visualizações", n)
}
