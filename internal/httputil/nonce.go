package httputil

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
)

type contextKey string

const nonceKey contextKey = "csp-nonce"

// GenerateNonce returns a fresh per-request CSP nonce. If the system
// randomness source fails the nonce is empty, which degrades the policy
// rather than failing the request.
func GenerateNonce() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		slog.Error("failed to generate CSP nonce", "error", err)
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// ContextWithNonce stashes the nonce so page renderers can emit it on the
// script tags the policy covers.
func ContextWithNonce(ctx context.Context, nonce string) context.Context {
	return context.WithValue(ctx, nonceKey, nonce)
}

// NonceFromContext returns the request's nonce, or "" outside the security
// middleware.
func NonceFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(nonceKey).(string); ok {
		return v
	}
	return ""
}
