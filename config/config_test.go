package config

import (
	"reflect"
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetDefault("monitor.min_relevance_score", 6)
	viper.SetDefault("monitor.scan_interval_hours", 8)
	viper.SetDefault("monitor.db_path", "data/discoveries.db")
	viper.SetDefault("monitor.scan_at_startup", true)
}

func TestMonitorFromViperDefaults(t *testing.T) {
	resetViper(t)
	viper.Set("monitor.forums", []string{"golang"})
	viper.Set("monitor.keywords", []string{"widget"})
	viper.Set("monitor.digest_channel_id", "123")

	cfg, err := MonitorFromViper()
	if err != nil {
		t.Fatalf("MonitorFromViper failed: %v", err)
	}
	if cfg.MinRelevanceScore != 6 {
		t.Fatalf("default min relevance = %d, want 6", cfg.MinRelevanceScore)
	}
	if cfg.ScanIntervalHours != 8 {
		t.Fatalf("default interval = %d, want 8", cfg.ScanIntervalHours)
	}
	if !cfg.ScanAtStartup {
		t.Fatal("expected scan_at_startup default true")
	}
	if cfg.DBPath == "" {
		t.Fatal("expected a default db path")
	}
}

func TestMonitorFromViperEnvStyleLists(t *testing.T) {
	resetViper(t)
	viper.Set("FORUMS", "golang, rust,  ")
	viper.Set("KEYWORDS", "widget,gadget")
	viper.Set("monitor.digest_channel_id", "123")

	cfg, err := MonitorFromViper()
	if err != nil {
		t.Fatalf("MonitorFromViper failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Forums, []string{"golang", "rust"}) {
		t.Fatalf("forums = %v", cfg.Forums)
	}
	if !reflect.DeepEqual(cfg.Keywords, []string{"widget", "gadget"}) {
		t.Fatalf("keywords = %v", cfg.Keywords)
	}
}

func TestMonitorFromViperKeepsExplicitZeroMinScore(t *testing.T) {
	resetViper(t)
	viper.Set("monitor.forums", []string{"golang"})
	viper.Set("monitor.keywords", []string{"widget"})
	viper.Set("monitor.digest_channel_id", "123")
	viper.Set("monitor.min_relevance_score", 0)
	viper.Set("monitor.scan_at_startup", false)

	cfg, err := MonitorFromViper()
	if err != nil {
		t.Fatalf("MonitorFromViper failed: %v", err)
	}
	// An explicit 0 must not be replaced by the default of 6.
	if cfg.MinRelevanceScore != 0 {
		t.Fatalf("explicit zero min relevance became %d", cfg.MinRelevanceScore)
	}
	if cfg.ScanAtStartup {
		t.Fatal("explicit scan_at_startup false was overridden")
	}
}

func TestMonitorFromViperFailsFast(t *testing.T) {
	cases := []struct {
		name string
		set  func()
	}{
		{"missing forums", func() {
			viper.Set("monitor.keywords", []string{"widget"})
			viper.Set("monitor.digest_channel_id", "123")
		}},
		{"missing keywords", func() {
			viper.Set("monitor.forums", []string{"golang"})
			viper.Set("monitor.digest_channel_id", "123")
		}},
		{"missing channel", func() {
			viper.Set("monitor.forums", []string{"golang"})
			viper.Set("monitor.keywords", []string{"widget"})
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resetViper(t)
			tc.set()
			if _, err := MonitorFromViper(); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}
