package config

import (
	"fmt"
	"log"
	"strings"

	"reddit-monitor/models"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from a .env file (optional) and config.yaml
// (optional), with environment variables overriding both. Keys in the config
// tree map to environment variables with '.' replaced by '_', so
// MONITOR_DB_PATH overrides monitor.db_path.
func LoadConfig() {
	// Load environment variables from .env, ignoring a missing file.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, skipping.")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("No config.yaml found, using environment variables and defaults.")
		} else {
			panic(fmt.Errorf("fatal error reading config file: %w", err))
		}
	}

	viper.SetDefault("monitor.min_relevance_score", 6)
	viper.SetDefault("monitor.scan_interval_hours", 8)
	viper.SetDefault("monitor.db_path", "data/discoveries.db")
	viper.SetDefault("monitor.scan_at_startup", true)
}

// MonitorFromViper decodes and validates the monitor section of the loaded
// configuration. Forums and keywords may also be given as comma-separated
// FORUMS / KEYWORDS environment variables.
func MonitorFromViper() (models.MonitorConfig, error) {
	raw := viper.GetStringMap("monitor")

	var cfg models.MonitorConfig
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("could not decode monitor config: %w", err)
	}

	// Defaults and env overrides don't appear in GetStringMap; fall back to
	// direct lookups only for keys the config tree really left unset, so an
	// explicit zero stays a zero.
	if _, ok := raw["min_relevance_score"]; !ok {
		cfg.MinRelevanceScore = viper.GetInt("monitor.min_relevance_score")
	}
	if _, ok := raw["scan_interval_hours"]; !ok {
		cfg.ScanIntervalHours = viper.GetInt("monitor.scan_interval_hours")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = viper.GetString("monitor.db_path")
	}
	if _, ok := raw["scan_at_startup"]; !ok {
		cfg.ScanAtStartup = viper.GetBool("monitor.scan_at_startup")
	}
	if cfg.DigestChannelID == "" {
		cfg.DigestChannelID = viper.GetString("monitor.digest_channel_id")
	}

	if len(cfg.Forums) == 0 {
		cfg.Forums = splitList(viper.GetString("FORUMS"))
	}
	if len(cfg.Keywords) == 0 {
		cfg.Keywords = splitList(viper.GetString("KEYWORDS"))
	}

	if len(cfg.Forums) == 0 {
		return cfg, fmt.Errorf("no forums configured")
	}
	if len(cfg.Keywords) == 0 {
		return cfg, fmt.Errorf("no keywords configured")
	}
	if cfg.DigestChannelID == "" {
		return cfg, fmt.Errorf("no digest channel configured")
	}

	return cfg, nil
}

// splitList parses a comma-separated list, dropping empty entries.
func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
