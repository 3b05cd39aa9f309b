package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"

	"jobseek-engine/internal/aggregate"
	"jobseek-engine/internal/domain"
	"jobseek-engine/internal/source"
	"jobseek-engine/internal/source/mock"
)

type JobsHandler struct {
	Agg *aggregate.Aggregator
	Gen *mock.Generator
	Log *slog.Logger
}

type searchResponse struct {
	Jobs    []domain.NormalizedJob `json:"jobs"`
	Total   int                    `json:"total"`
	Message string                 `json:"message"`
	Error   string                 `json:"error,omitempty"`
}

const (
	defaultTerm     = "frontend developer"
	defaultLocation = "Nashville, TN"
	defaultLimit    = 20
	maxLimit        = 100
)

// resolveLocation maps the frontend's shorthand tokens to concrete location
// strings; anything else passes through unchanged.
func resolveLocation(loc string) string {
	switch loc {
	case "", "nashville", "both":
		// "both" searches Nashville and lets remote matches surface on top
		return defaultLocation
	case "remote":
		return "Remote"
	default:
		return loc
	}
}

func (h JobsHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	term := params.Get("search")
	if term == "" {
		term = defaultTerm
	}
	location := resolveLocation(params.Get("location"))

	limit := defaultLimit
	if s := params.Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	q := source.Query{Term: term, Location: location, Limit: limit}
	h.Log.Info("job search", "term", term, "location", location, "limit", limit,
		"request_id", RequestIDFrom(r.Context()))

	res, err := h.Agg.Search(r.Context(), q)
	if err != nil {
		// Last resort: answer with demo data rather than an empty error.
		jobs := h.Gen.Generate(q)
		h.Log.Error("aggregation failed, serving demo data", "err", err)
		WriteJSON(w, http.StatusOK, searchResponse{
			Jobs:    jobs,
			Total:   len(jobs),
			Message: "Using demo data - live sources unavailable",
			Error:   err.Error(),
		})
		return
	}

	if res.Jobs == nil {
		res.Jobs = []domain.NormalizedJob{}
	}
	WriteJSON(w, http.StatusOK, searchResponse{
		Jobs:    res.Jobs,
		Total:   res.Total,
		Message: res.Message,
	})
}
