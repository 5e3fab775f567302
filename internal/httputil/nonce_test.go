package httputil

import (
	"context"
	"testing"
)

func TestGenerateNonceUnique(t *testing.T) {
	a := GenerateNonce()
	b := GenerateNonce()

	if a == "" || b == "" {
		t.Fatal("expected non-empty nonces")
	}
	if a == b {
		t.Error("expected distinct nonces per call")
	}
}

func TestNonceContextRoundTrip(t *testing.T) {
	ctx := ContextWithNonce(context.Background(), "abc123")
	if got := NonceFromContext(ctx); got != "abc123" {
		t.Errorf("NonceFromContext = %q, want %q", got, "abc123")
	}
}

func TestNonceFromContextMissing(t *testing.T) {
	if got := NonceFromContext(context.Background()); got != "" {
		t.Errorf("expected empty nonce for bare context, got %q", got)
	}
}
