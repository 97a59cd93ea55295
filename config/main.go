package config

import (
	"os"

	"shortsapi/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var Env = GetDefaultConfig()

const configPath = "shorts-cfg.yaml"

func Load() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		zap.S().Warnf("failed to load .env file: %v", err)
	}
	if err := LoadServerConfig(); err != nil {
		zap.S().Fatalf("failed to load %s: %v", configPath, err)
	}
	LoadEnv()
}

// LoadServerConfig merges optional YAML deployment overrides into Env.
func LoadServerConfig() error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}
	var cfg models.ServerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	if cfg.DefaultRegion != "" {
		Env.DefaultRegion = cfg.DefaultRegion
	}
	if cfg.TrendingHours > 0 {
		Env.TrendingMaxAgeHours = cfg.TrendingHours
	}
	if cfg.SearchHours > 0 {
		Env.SearchMaxAgeHours = cfg.SearchHours
	}
	if cfg.ResultCap > 0 {
		Env.ResultCap = cfg.ResultCap
	}
	if cfg.ChannelLimit > 0 {
		Env.ChannelLimit = cfg.ChannelLimit
	}
	if cfg.InnertubeAPIKey != "" {
		Env.InnertubeAPIKey = cfg.InnertubeAPIKey
	}
	return nil
}
