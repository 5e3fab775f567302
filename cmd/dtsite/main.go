package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/ivtr7/dtsite/internal/catalog"
	"github.com/ivtr7/dtsite/internal/server"
	"github.com/ivtr7/dtsite/internal/views"
)

func main() {
	port := getEnv("PORT", "8080")
	baseURL := getEnv("BASE_URL", "http://localhost:8080")
	catalogPath := getEnv("CATALOG_PATH", "videos.json")
	ledgerPath := getEnv("LEDGER_PATH", "video-views.json")

	videos, err := catalog.LoadFile(catalogPath)
	if err != nil {
		// Same behavior as a failed fetch: log it and serve an empty
		// gallery until the file appears.
		log.Printf("catalog load failed, serving empty catalog: %v", err)
	}
	store := catalog.NewStore(videos)
	log.Printf("catalog loaded: %d videos", store.Len())

	ledger := views.Open(ledgerPath)

	if getEnv("CATALOG_WATCH", "true") == "true" {
		watcher, err := catalog.NewWatcher(store, catalogPath)
		if err != nil {
			log.Printf("catalog watch disabled: %v", err)
		} else {
			defer watcher.Close()
			log.Printf("watching %s for catalog changes", catalogPath)
		}
	}

	srv := server.New(server.Config{
		Store:         store,
		Ledger:        ledger,
		BaseURL:       baseURL,
		Categories:    splitCategories(os.Getenv("CATEGORIES")),
		FeaturedLimit: int(getEnvInt64("FEATURED_LIMIT", 3)),
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("dtsite listening on :%s", port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-shutdownCh
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}
	log.Println("shutdown complete")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// splitCategories parses the CATEGORIES env var, a comma-separated ordered
// list. Empty input means the built-in default list.
func splitCategories(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
