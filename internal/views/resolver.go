package views

import "github.com/ivtr7/dtsite/internal/catalog"

// Resolver computes the view count actually shown to users: the catalog
// baseline plus the local ledger delta. Pure read over current state, no
// caching.
type Resolver struct {
	store  *catalog.Store
	ledger *Ledger
}

func NewResolver(store *catalog.Store, ledger *Ledger) *Resolver {
	return &Resolver{store: store, ledger: ledger}
}

// Resolve returns baseline(id) + delta(id). Ids absent from the catalog
// have a baseline of 0; stale ledger entries therefore still resolve but
// never surface through rendering.
func (r *Resolver) Resolve(id string) int64 {
	var baseline int64
	if v, ok := r.store.ByID(id); ok {
		baseline = v.Views
	}
	return baseline + r.ledger.Delta(id)
}
