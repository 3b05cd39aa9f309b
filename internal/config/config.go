package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ScoringOverride overlays one adapter's scoring weights. Nil fields keep the
// compiled-in value, so a config file can retune a single weight.
type ScoringOverride struct {
	Base     *int `yaml:"base"`
	TitleHit *int `yaml:"title_hit"`
	DescHit  *int `yaml:"desc_hit"`

	SkillHit *int     `yaml:"skill_hit"`
	Skills   []string `yaml:"skills"`

	RemoteBonus   *int     `yaml:"remote_bonus"`
	SeniorBonus   *int     `yaml:"senior_bonus"`
	JuniorBonus   *int     `yaml:"junior_bonus"`
	LocationHit   *int     `yaml:"location_hit"`
	LocationTerms []string `yaml:"location_terms"`

	RecentWeek  *int `yaml:"recent_week"`
	RecentMonth *int `yaml:"recent_month"`

	Floor   *int `yaml:"floor"`
	Ceiling *int `yaml:"ceiling"`
}

type Config struct {
	App struct {
		Port int `yaml:"port"`
	} `yaml:"app"`

	HTTP struct {
		// RatePerHost and Burst feed the per-host outbound limiter.
		RatePerHost float64 `yaml:"rate_per_host"`
		Burst       int     `yaml:"burst"`
		// SourceTimeoutSeconds is the outer bound on one adapter call.
		SourceTimeoutSeconds int `yaml:"source_timeout_seconds"`
	} `yaml:"http"`

	Sources struct {
		// Order is the adapter priority order; unknown names are ignored.
		Order []string `yaml:"order"`

		MultiSite struct {
			Enabled        bool     `yaml:"enabled"`
			Endpoint       string   `yaml:"endpoint"`
			Sites          []string `yaml:"sites"`
			FreshnessHours int      `yaml:"freshness_hours"`
		} `yaml:"multisite"`

		Feed struct {
			Enabled  bool   `yaml:"enabled"`
			BaseURL  string `yaml:"base_url"`
			MaxFeeds int    `yaml:"max_feeds"`
		} `yaml:"feed"`

		Page struct {
			Enabled   bool   `yaml:"enabled"`
			SearchURL string `yaml:"search_url"`
		} `yaml:"page"`

		API struct {
			Enabled  bool   `yaml:"enabled"`
			Endpoint string `yaml:"endpoint"`
		} `yaml:"api"`
	} `yaml:"sources"`

	// Scoring retunes adapter score weights, keyed by source name.
	Scoring map[string]ScoringOverride `yaml:"scoring"`
}

// Default returns the built-in configuration; a missing config file is not
// an error.
func Default() Config {
	var cfg Config
	cfg.App.Port = 5000

	cfg.HTTP.RatePerHost = 1
	cfg.HTTP.Burst = 2
	cfg.HTTP.SourceTimeoutSeconds = 20

	cfg.Sources.Order = []string{"multisite", "rssfeed", "webpage", "remoteok"}

	cfg.Sources.MultiSite.Enabled = false // needs an endpoint to be usable
	cfg.Sources.MultiSite.Sites = []string{"indeed", "linkedin", "glassdoor"}
	cfg.Sources.MultiSite.FreshnessHours = 168

	cfg.Sources.Feed.Enabled = true
	cfg.Sources.Feed.BaseURL = "https://rss.indeed.com/rss"
	cfg.Sources.Feed.MaxFeeds = 2

	cfg.Sources.Page.Enabled = true
	cfg.Sources.Page.SearchURL = "https://www.linkedin.com/jobs/search"

	cfg.Sources.API.Enabled = true
	cfg.Sources.API.Endpoint = "https://remoteok.com/api"

	return cfg
}

// Load reads the YAML file over the defaults, then applies env overrides.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

// Env overrides, for deploy targets that can't ship a config file.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = p
		}
	}
	if v := os.Getenv("JOBSEEK_MULTISITE_ENDPOINT"); v != "" {
		cfg.Sources.MultiSite.Endpoint = v
		cfg.Sources.MultiSite.Enabled = true
	}
	if v := os.Getenv("JOBSEEK_FEED_URL"); v != "" {
		cfg.Sources.Feed.BaseURL = v
	}
	if v := os.Getenv("JOBSEEK_PAGE_URL"); v != "" {
		cfg.Sources.Page.SearchURL = v
	}
	if v := os.Getenv("JOBSEEK_API_ENDPOINT"); v != "" {
		cfg.Sources.API.Endpoint = v
	}
}
