package models

import "time"

type EnvConfig struct {
	Port     int
	LogLevel string

	DefaultRegion string

	TrendingMaxAgeHours float64
	SearchMaxAgeHours   float64
	ResultCap           int
	ResultCapMax        int
	ChannelLimit        int
	ChannelLimitMax     int

	CallTimeout   time.Duration
	FilterTimeout time.Duration
	SearchPoolCap int

	InnertubeAPIKey string
}

// ServerConfig holds optional per-deployment overrides loaded from
// shorts-cfg.yaml. Zero values leave the env defaults untouched.
type ServerConfig struct {
	DefaultRegion   string  `yaml:"default_region"`
	TrendingHours   float64 `yaml:"trending_hours"`
	SearchHours     float64 `yaml:"search_hours"`
	ResultCap       int     `yaml:"result_cap"`
	ChannelLimit    int     `yaml:"channel_limit"`
	InnertubeAPIKey string  `yaml:"innertube_api_key"`
}
