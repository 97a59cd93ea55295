package handlers

import (
	"net/http"

	"shortsapi/config"
	"shortsapi/shorts"
)

func ByChannel(svc Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		input := strParam(q, "input", "")
		if input == "" {
			WriteError(w, http.StatusBadRequest, "input parameter is required")
			return
		}

		req := shorts.ChannelRequest{
			Input:  input,
			Region: strParam(q, "region", config.Env.DefaultRegion),
			Limit: clamp(int(intParam(q, "limit", int64(config.Env.ChannelLimit))),
				config.Env.ChannelLimit, config.Env.ChannelLimitMax),
		}

		videos, err := svc.ByChannel(r.Context(), req)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeVideos(w, videos)
	}
}
