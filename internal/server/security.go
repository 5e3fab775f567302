package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ivtr7/dtsite/internal/httputil"
)

type SecurityConfig struct {
	BaseURL string
}

// securityHeaders sets the usual response headers plus a CSP that permits
// what the gallery actually embeds: YouTube and Vimeo player iframes,
// externally hosted thumbnails and direct media files.
func securityHeaders(cfg SecurityConfig) func(http.Handler) http.Handler {
	strictTransport := strings.HasPrefix(cfg.BaseURL, "https://")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nonce := httputil.GenerateNonce()
			ctx := httputil.ContextWithNonce(r.Context(), nonce)

			w.Header().Set("Referrer-Policy", "no-referrer")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "SAMEORIGIN")
			w.Header().Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

			csp := fmt.Sprintf(
				"default-src 'self'; img-src 'self' data: https:; media-src 'self' https:; script-src 'self' 'nonce-%s'; style-src 'self' 'nonce-%s'; frame-src https://www.youtube.com https://player.vimeo.com; connect-src 'self'; frame-ancestors 'self';",
				nonce, nonce,
			)
			w.Header().Set("Content-Security-Policy", csp)

			if strictTransport {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
