package handlers

import (
	"net/http"

	"shortsapi/config"
	"shortsapi/shorts"
)

func Search(svc Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		query := strParam(q, "q", "")
		if query == "" {
			WriteError(w, http.StatusBadRequest, "q parameter is required")
			return
		}

		req := shorts.SearchRequest{
			Query:       query,
			Region:      strParam(q, "region", config.Env.DefaultRegion),
			MaxAgeHours: floatParam(q, "hours", config.Env.SearchMaxAgeHours),
			MinViews:    intParam(q, "minViews", 0),
			Max: clamp(int(intParam(q, "max", int64(config.Env.ResultCap))),
				config.Env.ResultCap, config.Env.ResultCapMax),
		}

		videos, err := svc.Search(r.Context(), req)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeVideos(w, videos)
	}
}
