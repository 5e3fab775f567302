package gallery

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ivtr7/dtsite/internal/catalog"
	"github.com/ivtr7/dtsite/internal/views"
)

func newTestRenderer(t *testing.T, videos []catalog.Video, categories []string) (*Renderer, *views.Ledger) {
	t.Helper()
	store := catalog.NewStore(videos)
	ledger := views.Open(filepath.Join(t.TempDir(), "ledger.json"))
	resolver := views.NewResolver(store, ledger)
	return NewRenderer(store, resolver, categories, 0), ledger
}

func TestCategoryToken(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"Aftermovie Evento", "aftermovie-evento"},
		{"Vídeo Drop", "vídeo-drop"},
		{"Spaced   Out\tName", "spaced-out-name"},
		{"single", "single"},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if got := CategoryToken(tt.category); got != tt.want {
				t.Errorf("CategoryToken(%q) = %q, want %q", tt.category, got, tt.want)
			}
		})
	}
}

func TestTruncateAlwaysAppendsEllipsis(t *testing.T) {
	if got := truncate("curto", 80); got != "curto..." {
		t.Errorf("short description = %q, want %q", got, "curto...")
	}

	long := strings.Repeat("ab", 100)
	got := truncate(long, 80)
	if len([]rune(got)) != 83 {
		t.Errorf("truncated length = %d runes, want 83", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("missing ellipsis: %q", got)
	}
}

func TestTruncateIsRuneSafe(t *testing.T) {
	accented := strings.Repeat("é", 90)
	got := truncate(accented, 80)
	if want := strings.Repeat("é", 80) + "..."; got != want {
		t.Errorf("rune-unsafe truncation: got %q", got)
	}
}

func TestFeaturedCardsCapAndOrder(t *testing.T) {
	r, _ := newTestRenderer(t, []catalog.Video{
		{ID: "1", Category: "Vídeo Drop", Featured: true},
		{ID: "2", Category: "Vídeo Drop", Featured: true},
		{ID: "3", Category: "Vídeo Drop", Featured: true},
		{ID: "4", Category: "Vídeo Drop", Featured: true},
	}, nil)

	cards := r.FeaturedCards()
	if len(cards) != 3 {
		t.Fatalf("expected 3 featured cards, got %d", len(cards))
	}
	for i, want := range []string{"1", "2", "3"} {
		if cards[i].ID != want {
			t.Errorf("featured[%d].ID = %q, want %q", i, cards[i].ID, want)
		}
	}
}

func TestFeaturedCardsEmptyWhenNoneFlagged(t *testing.T) {
	r, _ := newTestRenderer(t, []catalog.Video{{ID: "1", Category: "Vídeo Drop"}}, nil)
	if cards := r.FeaturedCards(); len(cards) != 0 {
		t.Errorf("expected no featured cards, got %d", len(cards))
	}
}

func TestSectionsFixedOrderAndSkipping(t *testing.T) {
	r, _ := newTestRenderer(t, []catalog.Video{
		{ID: "1", Category: "Vídeo Drop"},
		{ID: "2", Category: "Aftermovie Evento"},
		{ID: "3", Category: "Categoria Fantasma"},
		{ID: "4", Category: "Vídeo Drop"},
	}, nil)

	sections := r.Sections()
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	// Configured order, not catalog order: Evento before Drop. No section
	// for the empty "Aftermovie DJ", and the unlisted category never
	// renders anywhere.
	if sections[0].Title != "Aftermovie Evento" || sections[1].Title != "Vídeo Drop" {
		t.Errorf("unexpected section order: %q, %q", sections[0].Title, sections[1].Title)
	}
	if len(sections[1].Cards) != 2 {
		t.Errorf("expected 2 cards in Vídeo Drop, got %d", len(sections[1].Cards))
	}
	for _, s := range sections {
		for _, c := range s.Cards {
			if c.ID == "3" {
				t.Error("record with unlisted category rendered")
			}
		}
	}
}

func TestSectionsConfigurableCategories(t *testing.T) {
	r, _ := newTestRenderer(t, []catalog.Video{
		{ID: "1", Category: "Categoria Fantasma"},
	}, []string{"Categoria Fantasma"})

	sections := r.Sections()
	if len(sections) != 1 || sections[0].Title != "Categoria Fantasma" {
		t.Fatalf("expected configured category section, got %+v", sections)
	}
}

func TestBuildCardViewsOnlyOnRegularCards(t *testing.T) {
	r, ledger := newTestRenderer(t, []catalog.Video{
		{ID: "v", Category: "Vídeo Drop", Views: 1234566},
	}, nil)
	ledger.Increment("v")

	v, _ := r.store.ByID("v")

	regular := r.buildCard(v, false)
	if regular.ViewsLabel != "1.234.567 visualizações" {
		t.Errorf("views label = %q, want %q", regular.ViewsLabel, "1.234.567 visualizações")
	}

	featured := r.buildCard(v, true)
	if featured.ViewsLabel != "" {
		t.Errorf("featured card should not carry a views label, got %q", featured.ViewsLabel)
	}
}

func TestBuildCardDescriptionLimits(t *testing.T) {
	long := strings.Repeat("x", 200)
	r, _ := newTestRenderer(t, []catalog.Video{
		{ID: "v", Category: "Vídeo Drop", Description: long},
	}, nil)
	v, _ := r.store.ByID("v")

	if got := r.buildCard(v, true).Description; got != strings.Repeat("x", 100)+"..." {
		t.Errorf("featured description truncated to %d runes", len([]rune(got))-3)
	}
	if got := r.buildCard(v, false).Description; got != strings.Repeat("x", 80)+"..." {
		t.Errorf("regular description truncated to %d runes", len([]rune(got))-3)
	}
}

func TestBuildCardNoDescription(t *testing.T) {
	r, _ := newTestRenderer(t, []catalog.Video{{ID: "v", Category: "Vídeo Drop"}}, nil)
	v, _ := r.store.ByID("v")

	if got := r.buildCard(v, false).Description; got != "" {
		t.Errorf("empty description should stay empty, got %q", got)
	}
}

func TestFilters(t *testing.T) {
	r, _ := newTestRenderer(t, nil, nil)

	filters := r.Filters()
	if len(filters) != 4 {
		t.Fatalf("expected all + 3 category filters, got %d", len(filters))
	}
	if filters[0].Token != "all" || filters[0].Label != "Todos" {
		t.Errorf("first filter = %+v, want the all button", filters[0])
	}
	if filters[3].Token != "vídeo-drop" {
		t.Errorf("last filter token = %q, want %q", filters[3].Token, "vídeo-drop")
	}
}
