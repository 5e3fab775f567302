// Package views tracks per-video view counts: a persistent ledger of local
// increments plus a resolver that combines them with catalog baselines.
package views

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/renameio/v2"

	"github.com/ivtr7/dtsite/internal/metrics"
)

// Ledger is a persistent mapping from video id to an accumulated local view
// increment. It is loaded fully into memory once and the whole mapping is
// rewritten to disk on every increment. Concurrent processes sharing the
// file are last-write-wins; nothing reconciles them.
type Ledger struct {
	mu     sync.Mutex
	path   string
	deltas map[string]int64
}

// Open loads the ledger at path. Missing or malformed files reset the
// ledger to empty rather than failing: view counts are best-effort and a
// corrupt file must never take the site down.
func Open(path string) *Ledger {
	l := &Ledger{path: path, deltas: make(map[string]int64)}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("views: could not read ledger, starting empty", "path", path, "error", err)
		}
		return l
	}
	if err := json.Unmarshal(data, &l.deltas); err != nil {
		slog.Warn("views: malformed ledger, starting empty", "path", path, "error", err)
		l.deltas = make(map[string]int64)
	}
	if l.deltas == nil {
		// A file holding the literal "null" decodes without error but nils
		// the map, which would make every Increment panic.
		l.deltas = make(map[string]int64)
	}
	return l
}

// Delta returns the accumulated increment for id, 0 for unknown ids.
func (l *Ledger) Delta(id string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.deltas[id]
}

// Increment adds one view for id and rewrites the ledger file. The new delta
// is returned even when persistence fails; the in-memory count is
// authoritative for the rest of the process lifetime.
func (l *Ledger) Increment(id string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.deltas[id]++
	delta := l.deltas[id]
	metrics.LedgerIncrements.Inc()
	if err := l.persistLocked(); err != nil {
		return delta, fmt.Errorf("persist ledger: %w", err)
	}
	return delta, nil
}

func (l *Ledger) persistLocked() error {
	data, err := json.Marshal(l.deltas)
	if err != nil {
		return err
	}
	return renameio.WriteFile(l.path, data, 0o644)
}
