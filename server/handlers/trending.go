package handlers

import (
	"net/http"

	"shortsapi/config"
	"shortsapi/shorts"
)

func Trending(svc Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		req := shorts.TrendingRequest{
			Region:      strParam(q, "region", config.Env.DefaultRegion),
			MaxAgeHours: floatParam(q, "hours", config.Env.TrendingMaxAgeHours),
			MinViews:    intParam(q, "minViews", 0),
			Max: clamp(int(intParam(q, "max", int64(config.Env.ResultCap))),
				config.Env.ResultCap, config.Env.ResultCapMax),
		}

		videos, err := svc.Trending(r.Context(), req)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeVideos(w, videos)
	}
}
