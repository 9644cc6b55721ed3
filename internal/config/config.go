package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"YieldSentinel/internal/model"
)

// Data sources.
const (
	SourceCSV    = "csv"
	SourceFred   = "fred"
	SourceSQLite = "sqlite"
)

// SeriesConfig names one series.
type SeriesConfig struct {
	Code   string `yaml:"code"`
	Title  string `yaml:"title"`
	Unit   string `yaml:"unit"`
	Column string `yaml:"column"`
}

// Spec converts the configured series to a model.SeriesSpec.
func (s SeriesConfig) Spec() model.SeriesSpec {
	return model.NewSeriesSpec(s.Code, s.Title, s.Unit, s.Column)
}

// Config holds all application configuration.
type Config struct {
	Data struct {
		Source      string `yaml:"source"`
		Dir         string `yaml:"dir"`
		SQLitePath  string `yaml:"sqlite_path"`
		FredBaseURL string `yaml:"fred_base_url"`
	} `yaml:"data"`
	Series struct {
		Short SeriesConfig `yaml:"short"`
		Long  SeriesConfig `yaml:"long"`
	} `yaml:"series"`
	Chart struct {
		Output string `yaml:"output"`
		Title  string `yaml:"title"`
	} `yaml:"chart"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Log struct {
		Debug bool `yaml:"debug"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides, then defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env is optional; variables already set in the environment win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// Environment variable overrides
	if v := os.Getenv("DATA_SOURCE"); v != "" {
		cfg.Data.Source = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Data.SQLitePath = v
	}
	if v := os.Getenv("FRED_BASE_URL"); v != "" {
		cfg.Data.FredBaseURL = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CHART_OUTPUT"); v != "" {
		cfg.Chart.Output = v
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("LOG_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Debug = debug
		}
	}

	// Defaults
	if cfg.Data.Source == "" {
		cfg.Data.Source = SourceCSV
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data"
	}
	if cfg.Series.Short.Code == "" {
		cfg.Series.Short = SeriesConfig{Code: "DGS3MO", Title: "3-Month Treasury", Unit: "percent"}
	}
	if cfg.Series.Long.Code == "" {
		cfg.Series.Long = SeriesConfig{Code: "DGS10", Title: "10-Year Treasury", Unit: "percent"}
	}
	if cfg.Chart.Output == "" {
		cfg.Chart.Output = "recession.png"
	}

	return cfg, nil
}

// Validate checks that the selected source has what it needs.
func (c *Config) Validate() error {
	switch c.Data.Source {
	case SourceCSV:
		if c.Data.Dir == "" {
			return fmt.Errorf("data.dir is required for the csv source")
		}
	case SourceSQLite:
		if c.Data.SQLitePath == "" {
			return fmt.Errorf("data.sqlite_path is required for the sqlite source")
		}
	case SourceFred:
	default:
		return fmt.Errorf("data.source must be one of csv, fred, sqlite, got %q", c.Data.Source)
	}
	if c.Series.Short.Code == c.Series.Long.Code {
		return fmt.Errorf("series.short and series.long must differ")
	}
	if c.Chart.Output == "" {
		return fmt.Errorf("chart.output is required")
	}
	if c.Schedule.Cron != "" {
		parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
		if _, err := parser.Parse(c.Schedule.Cron); err != nil {
			return fmt.Errorf("schedule.cron: %w", err)
		}
	}
	return nil
}
