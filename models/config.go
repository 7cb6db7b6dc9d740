package models

// MonitorConfig represents the "monitor" section of the configuration.
type MonitorConfig struct {
	Forums            []string `json:"forums" mapstructure:"forums"`
	Keywords          []string `json:"keywords" mapstructure:"keywords"`
	MinRelevanceScore int      `json:"min_relevance_score" mapstructure:"min_relevance_score"`
	ScanIntervalHours int      `json:"scan_interval_hours" mapstructure:"scan_interval_hours"`
	DBPath            string   `json:"db_path" mapstructure:"db_path"`
	DigestChannelID   string   `json:"digest_channel_id" mapstructure:"digest_channel_id"`
	ScanAtStartup     bool     `json:"scan_at_startup" mapstructure:"scan_at_startup"`
}
