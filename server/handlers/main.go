package handlers

import (
	"context"
	"net/http"

	"shortsapi/models"
	"shortsapi/shorts"
)

// Lister is the slice of the shorts service the handlers consume.
type Lister interface {
	Trending(ctx context.Context, req shorts.TrendingRequest) ([]models.NormalizedVideo, error)
	Search(ctx context.Context, req shorts.SearchRequest) ([]models.NormalizedVideo, error)
	ByChannel(ctx context.Context, req shorts.ChannelRequest) ([]models.NormalizedVideo, error)
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

func writeVideos(w http.ResponseWriter, videos []models.NormalizedVideo) {
	if videos == nil {
		videos = []models.NormalizedVideo{}
	}
	WriteJSON(w, http.StatusOK, videos)
}
