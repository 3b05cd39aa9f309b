package httpapi

import (
	"log/slog"
	"net/http"

	"jobseek-engine/internal/aggregate"
	"jobseek-engine/internal/source/mock"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	Agg *aggregate.Aggregator
	Gen *mock.Generator
	Log *slog.Logger
}

func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	jh := JobsHandler{Agg: d.Agg, Gen: d.Gen, Log: d.Log}
	mux.HandleFunc("/api/jobs/search", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Search,
	}))

	mux.HandleFunc("/api/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

// Handler wraps the mux in the standard middleware chain.
func Handler(d Deps) http.Handler {
	return Chain(NewMux(d), RequestID, AccessLog(d.Log), Recover(d.Log), Cors)
}
