package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"jobseek-engine/internal/aggregate"
	"jobseek-engine/internal/config"
	"jobseek-engine/internal/httpapi"
	"jobseek-engine/internal/rank"
	"jobseek-engine/internal/source"
	"jobseek-engine/internal/source/mock"
	"jobseek-engine/internal/source/multisite"
	"jobseek-engine/internal/source/remoteok"
	"jobseek-engine/internal/source/rssfeed"
	"jobseek-engine/internal/source/util"
	"jobseek-engine/internal/source/webpage"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfgPath := os.Getenv("JOBSEEK_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Error("config load failed", "path", cfgPath, "err", err)
		os.Exit(1)
	}
	if err := config.Validate(cfg); err != nil {
		log.Error("config invalid", "err", err)
		os.Exit(1)
	}

	limiter := util.NewHostLimiter(cfg.HTTP.RatePerHost, cfg.HTTP.Burst)
	sources := buildSources(cfg, limiter, log)
	for _, s := range sources {
		log.Info("source enabled", "source", s.Name())
	}

	gen := mock.New()
	agg := aggregate.New(sources, gen, log)
	agg.SourceTimeout = time.Duration(cfg.HTTP.SourceTimeoutSeconds) * time.Second

	handler := httpapi.Handler(httpapi.Deps{Agg: agg, Gen: gen, Log: log})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Info("api listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// buildSources assembles adapters in configured priority order. An enabled
// source with nothing to call (no endpoint) is skipped here rather than
// failing per-request later.
func buildSources(cfg config.Config, limiter *util.HostLimiter, log *slog.Logger) []source.Adapter {
	// Stock weights, retuned by any scoring section in the config file.
	profile := func(name string, stock rank.Profile) *rank.Profile {
		if o, ok := cfg.Scoring[name]; ok {
			p := rank.Override(stock, o)
			return &p
		}
		return nil
	}

	var out []source.Adapter
	for _, name := range cfg.Sources.Order {
		switch name {
		case "multisite":
			if cfg.Sources.MultiSite.Enabled && cfg.Sources.MultiSite.Endpoint != "" {
				out = append(out, multisite.New(multisite.Config{
					Endpoint:       cfg.Sources.MultiSite.Endpoint,
					Sites:          cfg.Sources.MultiSite.Sites,
					FreshnessHours: cfg.Sources.MultiSite.FreshnessHours,
					Profile:        profile("multisite", rank.MultiSite),
				}, limiter, log))
			}
		case "rssfeed":
			if cfg.Sources.Feed.Enabled && cfg.Sources.Feed.BaseURL != "" {
				out = append(out, rssfeed.New(rssfeed.Config{
					BaseURL:  cfg.Sources.Feed.BaseURL,
					MaxFeeds: cfg.Sources.Feed.MaxFeeds,
					ExtraQueries: [][2]string{
						{"react developer", "remote"},
						{"frontend developer", "remote"},
						{"javascript developer", "remote"},
					},
					Profile: profile("rssfeed", rank.Feed),
				}, limiter, log))
			}
		case "webpage":
			if cfg.Sources.Page.Enabled && cfg.Sources.Page.SearchURL != "" {
				out = append(out, webpage.New(webpage.Config{
					SearchURL: cfg.Sources.Page.SearchURL,
					Profile:   profile("webpage", rank.Page),
				}, limiter, log))
			}
		case "remoteok":
			if cfg.Sources.API.Enabled && cfg.Sources.API.Endpoint != "" {
				out = append(out, remoteok.New(remoteok.Config{
					Endpoint: cfg.Sources.API.Endpoint,
					Profile:  profile("remoteok", rank.API),
				}, limiter, log))
			}
		}
	}
	return out
}
