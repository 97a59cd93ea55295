package main

import (
	"shortsapi/config"
	"shortsapi/logger"
	"shortsapi/server"
	"shortsapi/shorts"
	"shortsapi/youtube"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Sync()

	// load environment variables and configurations
	config.Load()
	logger.SetLevel(config.Env.LogLevel)

	zap.S().Debugf("default region: %s", config.Env.DefaultRegion)

	clients := youtube.NewRegionCache(config.Env.InnertubeAPIKey)
	svc := shorts.NewService(clients)

	server.Start(svc)
}
