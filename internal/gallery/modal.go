package gallery

import (
	"html/template"
	"log/slog"
	"strings"

	"github.com/ivtr7/dtsite/internal/catalog"
	"github.com/ivtr7/dtsite/internal/player"
)

// OpenState is the outcome of opening a video in the player modal.
type OpenState int

const (
	// StatePlaying means the video was found and classified; a player is
	// rendered and the view was counted.
	StatePlaying OpenState = iota
	// StateNotFound means the id is not in the catalog. The view ledger
	// is untouched.
	StateNotFound
	// StateInvalidURL means the video exists but its platform URL yielded
	// no media id. The view increment has already happened and stays: a
	// view counts the open attempt, not a successful play.
	StateInvalidURL
)

// OpenResult carries everything the modal fragment needs.
type OpenResult struct {
	State  OpenState
	Video  catalog.Video
	Source player.Source
	Views  int64
}

// openVideo implements the modal open sequence: look up the record, count
// the view, classify the URL. Order matters; see OpenState docs.
func (h *Handler) openVideo(id string) OpenResult {
	v, ok := h.store.ByID(id)
	if !ok {
		return OpenResult{State: StateNotFound}
	}
	if _, err := h.ledger.Increment(id); err != nil {
		// The in-memory count already moved; losing the flush only
		// costs this delta on restart.
		slog.Error("gallery: ledger flush failed", "video_id", id, "error", err)
	}
	src := player.Classify(v.VideoURL)
	if src.Kind == player.KindInvalid {
		return OpenResult{State: StateInvalidURL, Video: v, Source: src}
	}
	return OpenResult{
		State:  StatePlaying,
		Video:  v,
		Source: src,
		Views:  h.resolver.Resolve(id),
	}
}

var playingTemplate = template.Must(template.New("playing").Parse(`<div class="modal-player">
    {{if .EmbedURL}}<iframe src="{{.EmbedURL}}" frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen title="{{.Title}}"></iframe>
    {{else}}<video controls autoplay><source src="{{.VideoURL}}" type="video/mp4">Seu navegador não suporta vídeos HTML5.</video>
    {{end}}</div>
<div class="modal-details">
    <h3>{{.Title}}</h3>
    {{if .Description}}<p>{{.Description}}</p>{{end}}
    <div class="modal-meta">
        <span>📁 {{.Category}}</span>
        {{if .Duration}} | <span>⏱ {{.Duration}}</span>{{end}}
        | <span class="views">{{.ViewsLabel}}</span>
    </div>
</div>`))

var errorTemplate = template.Must(template.New("error").Parse(`<div class="modal-player">
    <div class="video-error">
        <div class="video-error-icon">⚠️</div>
        <h3>Erro ao carregar vídeo</h3>
        <p>{{.Message}}</p>
        <button type="button" class="close-modal-inline">Fechar</button>
    </div>
</div>
<div class="modal-details"></div>`))

type playingData struct {
	Title       string
	Description string
	Category    string
	Duration    string
	EmbedURL    string
	VideoURL    string
	ViewsLabel  string
}

type errorData struct {
	Message string
}

// errorMessage picks the user-facing message for a failed open, in the
// site's language.
func errorMessage(res OpenResult) string {
	if res.State == StateNotFound {
		return "Vídeo não encontrado."
	}
	if strings.Contains(res.Video.VideoURL, "vimeo.com") {
		return "URL do Vimeo inválida"
	}
	return "URL do YouTube inválida"
}
