package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "videos.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeCatalogFile(t, `{"videos":[
		{"id":"1","title":"Drop Night","category":"Vídeo Drop","video_url":"https://youtu.be/dQw4w9WgXcQ","views":120,"featured":true},
		{"id":"2","title":"Festival","category":"Aftermovie Evento","video_url":"https://vimeo.com/76979871","views":45}
	]}`)

	videos, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(videos))
	}
	if videos[0].ID != "1" || videos[0].Title != "Drop Night" || !videos[0].Featured {
		t.Errorf("unexpected first record: %+v", videos[0])
	}
	if videos[1].Views != 45 {
		t.Errorf("expected baseline 45, got %d", videos[1].Views)
	}
}

func TestLoadFileMissingVideosField(t *testing.T) {
	path := writeCatalogFile(t, `{}`)

	videos, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(videos) != 0 {
		t.Errorf("expected empty catalog, got %d videos", len(videos))
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := writeCatalogFile(t, `{"videos": [`)

	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for malformed catalog")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing catalog file")
	}
}

func TestByIDFirstMatch(t *testing.T) {
	store := NewStore([]Video{
		{ID: "dup", Title: "first"},
		{ID: "dup", Title: "second"},
		{ID: "other", Title: "third"},
	})

	v, ok := store.ByID("dup")
	if !ok {
		t.Fatal("expected to find duplicate id")
	}
	if v.Title != "first" {
		t.Errorf("expected first match, got %q", v.Title)
	}

	if _, ok := store.ByID("missing"); ok {
		t.Error("did not expect to find missing id")
	}
}

func TestFeaturedLimitAndOrder(t *testing.T) {
	store := NewStore([]Video{
		{ID: "1", Featured: true},
		{ID: "2"},
		{ID: "3", Featured: true},
		{ID: "4", Featured: true},
		{ID: "5", Featured: true},
	})

	featured := store.Featured(3)
	if len(featured) != 3 {
		t.Fatalf("expected 3 featured, got %d", len(featured))
	}
	for i, want := range []string{"1", "3", "4"} {
		if featured[i].ID != want {
			t.Errorf("featured[%d] = %q, want %q", i, featured[i].ID, want)
		}
	}
}

func TestFeaturedNone(t *testing.T) {
	store := NewStore([]Video{{ID: "1"}, {ID: "2"}})
	if got := store.Featured(3); len(got) != 0 {
		t.Errorf("expected no featured videos, got %d", len(got))
	}
}

func TestByCategoryExactMatch(t *testing.T) {
	store := NewStore([]Video{
		{ID: "1", Category: "Vídeo Drop"},
		{ID: "2", Category: "vídeo drop"},
		{ID: "3", Category: "Vídeo Drop"},
	})

	matches := store.ByCategory("Vídeo Drop")
	if len(matches) != 2 {
		t.Fatalf("expected 2 exact matches, got %d", len(matches))
	}
	if matches[0].ID != "1" || matches[1].ID != "3" {
		t.Errorf("expected catalog order 1,3; got %s,%s", matches[0].ID, matches[1].ID)
	}
}

func TestReplaceSwapsCatalog(t *testing.T) {
	store := NewStore([]Video{{ID: "old"}})
	store.Replace([]Video{{ID: "new-1"}, {ID: "new-2"}})

	if store.Len() != 2 {
		t.Fatalf("expected 2 videos after replace, got %d", store.Len())
	}
	if _, ok := store.ByID("old"); ok {
		t.Error("old record still visible after replace")
	}
}
