package gallery

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ivtr7/dtsite/internal/catalog"
	"github.com/ivtr7/dtsite/internal/httputil"
	"github.com/ivtr7/dtsite/internal/metrics"
	"github.com/ivtr7/dtsite/internal/views"
)

// Handler serves the gallery page, the player modal fragments and the
// catalog JSON API.
type Handler struct {
	store    *catalog.Store
	ledger   *views.Ledger
	resolver *views.Resolver
	renderer *Renderer
}

func NewHandler(store *catalog.Store, ledger *views.Ledger, resolver *views.Resolver, renderer *Renderer) *Handler {
	return &Handler{store: store, ledger: ledger, resolver: resolver, renderer: renderer}
}

// Home renders the full gallery page. An empty catalog renders an empty
// page: not yet loaded and genuinely empty are indistinguishable here.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Year:     time.Now().Year(),
		Nonce:    httputil.NonceFromContext(r.Context()),
		Featured: h.renderer.FeaturedCards(),
		Sections: h.renderer.Sections(),
		Filters:  h.renderer.Filters(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		slog.Error("gallery: failed to render page", "error", err)
	}
}

// Player returns the modal fragment for a video: the player plus details
// panel when it plays, an error panel otherwise. Opening counts a view per
// the rules in openVideo.
func (h *Handler) Player(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res := h.openVideo(id)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	switch res.State {
	case StateNotFound:
		metrics.PlayerOpens.WithLabelValues("not_found").Inc()
		w.WriteHeader(http.StatusNotFound)
		h.renderError(w, res)
	case StateInvalidURL:
		metrics.PlayerOpens.WithLabelValues("invalid_url").Inc()
		w.WriteHeader(http.StatusUnprocessableEntity)
		h.renderError(w, res)
	default:
		metrics.PlayerOpens.WithLabelValues("playing").Inc()
		h.renderPlaying(w, res)
	}
}

func (h *Handler) renderPlaying(w http.ResponseWriter, res OpenResult) {
	data := playingData{
		Title:       res.Video.Title,
		Description: res.Video.Description,
		Category:    res.Video.Category,
		Duration:    res.Video.Duration,
		EmbedURL:    res.Source.EmbedURL(),
		VideoURL:    res.Video.VideoURL,
		ViewsLabel:  h.renderer.formatViews(res.Views),
	}
	if err := playingTemplate.Execute(w, data); err != nil {
		slog.Error("gallery: failed to render player", "video_id", res.Video.ID, "error", err)
	}
}

func (h *Handler) renderError(w http.ResponseWriter, res OpenResult) {
	if err := errorTemplate.Execute(w, errorData{Message: errorMessage(res)}); err != nil {
		slog.Error("gallery: failed to render error panel", "error", err)
	}
}

type videoResponse struct {
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

func (h *Handler) toResponse(v catalog.Video) videoResponse {
	return videoResponse{
		ID:           v.ID,
		Title:        v.Title,
		Category:     v.Category,
		Description:  v.Description,
		Duration:     v.Duration,
		ThumbnailURL: v.ThumbnailURL,
		VideoURL:     v.VideoURL,
		Views:        h.resolver.Resolve(v.ID),
		Featured:     v.Featured,
	}
}

// ListVideos returns the catalog with display view counts.
func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	videos := h.store.Videos()
	items := make([]videoResponse, 0, len(videos))
	for _, v := range videos {
		items = append(items, h.toResponse(v))
	}
	httputil.WriteJSON(w, http.StatusOK, items)
}

// GetVideo returns one record with its display view count.
func (h *Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	v, ok := h.store.ByID(id)
	if !ok {
		httputil.WriteError(w, http.StatusNotFound, "video not found")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.toResponse(v))
}
