// Package catalog holds the video catalog loaded from videos.json and
// provides lookups over it. The catalog is read-only between reloads;
// a reload swaps the whole slice at once.
package catalog

import (
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-json"
)

// Video is a single catalog record. Records are immutable once loaded.
// The id is opaque and assumed unique; lookups use first-match semantics,
// so a duplicate id silently shadows later records.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	Description  string `json:"description,omitempty"`
	Duration     string `json:"duration,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	VideoURL     string `json:"video_url"`
	Views        int64  `json:"views"`
	Featured     bool   `json:"featured"`
}

type catalogFile struct {
	Videos []Video `json:"videos"`
}

// LoadFile reads and decodes a catalog file. A document without a "videos"
// field decodes to an empty catalog, not an error.
func LoadFile(path string) ([]Video, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var doc catalogFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return doc.Videos, nil
}

// Store holds the current catalog. Reads see a consistent snapshot; Replace
// swaps the whole catalog atomically.
type Store struct {
	mu     sync.RWMutex
	videos []Video
}

func NewStore(videos []Video) *Store {
	return &Store{videos: videos}
}

func (s *Store) Replace(videos []Video) {
	s.mu.Lock()
	s.videos = videos
	s.mu.Unlock()
}

// Videos returns a copy of the catalog in file order.
func (s *Store) Videos() []Video {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Video, len(s.videos))
	copy(out, s.videos)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.videos)
}

// ByID returns the first record with the given id.
func (s *Store) ByID(id string) (Video, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.videos {
		if v.ID == id {
			return v, true
		}
	}
	return Video{}, false
}

// Featured returns up to limit featured records in catalog order.
func (s *Store) Featured(limit int) []Video {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Video
	for _, v := range s.videos {
		if !v.Featured {
			continue
		}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}

// ByCategory returns records whose category exactly matches, in catalog order.
func (s *Store) ByCategory(category string) []Video {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Video
	for _, v := range s.videos {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out
}
