package server

import (
	"fmt"
	"net/http"
	"time"

	"shortsapi/config"
	"shortsapi/server/handlers"
	"shortsapi/shorts"

	"go.uber.org/zap"
)

// Start wires the handler tree and serves until the listener fails.
func Start(svc *shorts.Service) {
	registry := NewRegistry()
	mux := http.NewServeMux()

	mux.Handle("/metrics", registry.Handler())
	mux.Handle("/health", registry.Wrap("health", handlers.Health()))
	mux.Handle("/shorts/trending", registry.Wrap("trending", handlers.Trending(svc)))
	mux.Handle("/shorts/search", registry.Wrap("search", handlers.Search(svc)))
	mux.Handle("/shorts/by-channel", registry.Wrap("by_channel", handlers.ByChannel(svc)))

	handler := Recover(RequestLog(CORS(mux)))

	addr := fmt.Sprintf(":%d", config.Env.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	zap.S().Infof("shorts api listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zap.S().Fatalf("server stopped: %v", err)
	}
}
