package gallery

import "html/template"

var pageTemplate = template.Must(template.New("gallery").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>DT Vídeos — Aftermovies e Drops</title>
    <link rel="stylesheet" href="/assets/gallery.css">
</head>
<body>
    <nav class="navbar">
        <a class="nav-brand" href="/">DT Vídeos</a>
    </nav>

    <main id="gallery">
        {{if .Featured}}
        <section id="featured-section">
            <h2 class="section-title">Destaques</h2>
            <div id="featured-grid" class="videos-grid featured-grid">
                {{range .Featured}}{{template "card" .}}{{end}}
            </div>
        </section>
        {{end}}

        <div class="filter-bar" id="filter-bar">
            {{range .Filters}}<button type="button" class="filter-btn{{if eq .Token "all"}} active{{end}}" data-filter="{{.Token}}">{{.Label}}</button>
            {{end}}
        </div>

        <div id="videos-container">
            {{range .Sections}}
            <div class="category-section">
                <h2 class="category-title"><span class="category-icon">▶</span> {{.Title}}</h2>
                <div class="videos-grid">
                    {{range .Cards}}{{template "card" .}}{{end}}
                </div>
            </div>
            {{end}}
        </div>
    </main>

    <div id="videoModal" class="modal" aria-hidden="true">
        <div class="modal-content" role="dialog" aria-modal="true">
            <button type="button" class="close-modal" aria-label="Fechar modal de vídeo">&times;</button>
            <div id="videoPlayer"></div>
            <div id="videoDetails"></div>
        </div>
    </div>

    <footer class="footer">
        <p>&copy; <span id="current-year">{{.Year}}</span> DT Vídeos</p>
    </footer>

    <script src="/assets/gallery.js" defer nonce="{{.Nonce}}"></script>
</body>
</html>

{{define "card"}}<div class="video-card{{if .Featured}} featured{{end}}" data-video-id="{{.ID}}" data-category="{{.CategoryToken}}" tabindex="0" role="button" aria-label="Assistir: {{.Title}}">
    <div class="video-thumbnail">
        {{if .ThumbnailURL}}<img src="{{.ThumbnailURL}}" alt="Thumbnail do vídeo: {{.Title}}" loading="lazy" width="400" height="225">{{else}}<div class="video-placeholder"></div>{{end}}
        <div class="play-overlay"><div class="play-button"></div></div>
        {{if .Featured}}<div class="video-category">{{.Category}}</div>{{end}}
        {{if and .Duration (not .Featured)}}<div class="video-duration">{{.Duration}}</div>{{end}}
    </div>
    <div class="video-info">
        <h3>{{.Title}}</h3>
        {{if .Description}}<p>{{.Description}}</p>{{end}}
        {{if not .Featured}}<div class="video-stats"><span class="views">{{.ViewsLabel}}</span></div>{{end}}
    </div>
</div>{{end}}`))

type pageData struct {
	Year     int
	Nonce    string
	Featured []Card
	Sections []Section
	Filters  []Filter
}
