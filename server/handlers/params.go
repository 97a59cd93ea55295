package handlers

import (
	"net/url"
	"strconv"
	"strings"
)

func strParam(q url.Values, key string, fallback string) string {
	if v := strings.TrimSpace(q.Get(key)); v != "" {
		return v
	}
	return fallback
}

func intParam(q url.Values, key string, fallback int64) int64 {
	if v := strings.TrimSpace(q.Get(key)); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func floatParam(q url.Values, key string, fallback float64) float64 {
	if v := strings.TrimSpace(q.Get(key)); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return fallback
}

func clamp(n int, fallback int, max int) int {
	if n <= 0 {
		n = fallback
	}
	if max > 0 && n > max {
		return max
	}
	return n
}
