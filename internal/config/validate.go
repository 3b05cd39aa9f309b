package config

import (
	"errors"
	"fmt"
	"strings"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}
	if cfg.HTTP.RatePerHost <= 0 {
		errs = append(errs, "http.rate_per_host must be > 0")
	}
	if cfg.HTTP.Burst <= 0 {
		errs = append(errs, "http.burst must be > 0")
	}
	if cfg.HTTP.SourceTimeoutSeconds <= 0 {
		errs = append(errs, "http.source_timeout_seconds must be > 0")
	}

	known := map[string]bool{"multisite": true, "rssfeed": true, "webpage": true, "remoteok": true}
	for i, name := range cfg.Sources.Order {
		if !known[name] {
			errs = append(errs, fmt.Sprintf("sources.order[%d]: unknown source %q", i, name))
		}
	}

	if cfg.Sources.MultiSite.Enabled && strings.TrimSpace(cfg.Sources.MultiSite.Endpoint) == "" {
		errs = append(errs, "sources.multisite.endpoint is required when multisite is enabled")
	}
	if cfg.Sources.Feed.Enabled && strings.TrimSpace(cfg.Sources.Feed.BaseURL) == "" {
		errs = append(errs, "sources.feed.base_url is required when feed is enabled")
	}
	if cfg.Sources.Page.Enabled && strings.TrimSpace(cfg.Sources.Page.SearchURL) == "" {
		errs = append(errs, "sources.page.search_url is required when page is enabled")
	}
	if cfg.Sources.API.Enabled && strings.TrimSpace(cfg.Sources.API.Endpoint) == "" {
		errs = append(errs, "sources.api.endpoint is required when api is enabled")
	}

	for name, o := range cfg.Scoring {
		if !known[name] {
			errs = append(errs, fmt.Sprintf("scoring.%s: unknown source", name))
		}
		if o.Floor != nil && o.Ceiling != nil && *o.Floor > *o.Ceiling {
			errs = append(errs, fmt.Sprintf("scoring.%s: floor above ceiling", name))
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}
