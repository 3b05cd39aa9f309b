package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobseek-engine/internal/aggregate"
	"jobseek-engine/internal/domain"
	"jobseek-engine/internal/source"
	"jobseek-engine/internal/source/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time { return time.Date(2025, 8, 7, 0, 0, 0, 0, time.UTC) }

type stubAdapter struct {
	jobs []domain.NormalizedJob
	err  error
	seen *source.Query
}

func (s *stubAdapter) Name() string { return "stub" }
func (s *stubAdapter) Search(_ context.Context, q source.Query) ([]domain.NormalizedJob, error) {
	if s.seen != nil {
		*s.seen = q
	}
	return s.jobs, s.err
}

func testServer(adapters ...source.Adapter) *httptest.Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	gen := mock.NewSeeded(3, fixedNow)
	agg := aggregate.New(adapters, gen, log)
	return httptest.NewServer(Handler(Deps{Agg: agg, Gen: gen, Log: log}))
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	return res
}

func TestHealth(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	var body map[string]string
	res := getJSON(t, srv.URL+"/api/health", &body)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["message"])
}

func TestSearchEndpoint(t *testing.T) {
	seen := &source.Query{}
	ad := &stubAdapter{seen: seen, jobs: []domain.NormalizedJob{{
		ID: "x1", Title: "React Developer", Source: "Indeed",
		RelevanceScore: 90, ApplicationStatus: domain.StatusNotApplied,
	}}}
	srv := testServer(ad)
	defer srv.Close()

	var body searchResponse
	res := getJSON(t, srv.URL+"/api/jobs/search?search=react&location=remote&limit=3", &body)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 3, body.Total)
	assert.Len(t, body.Jobs, 3)
	assert.Empty(t, body.Error)
	assert.NotEmpty(t, body.Message)

	// shorthand resolved before the core sees it
	assert.Equal(t, "react", seen.Term)
	assert.Equal(t, "Remote", seen.Location)
}

func TestSearchDefaults(t *testing.T) {
	seen := &source.Query{}
	srv := testServer(&stubAdapter{seen: seen})
	defer srv.Close()

	var body searchResponse
	getJSON(t, srv.URL+"/api/jobs/search", &body)

	assert.Equal(t, "frontend developer", seen.Term)
	assert.Equal(t, "Nashville, TN", seen.Location)
	assert.Equal(t, 20, body.Total)
}

func TestSearchLocationShorthands(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"nashville", "Nashville, TN"},
		{"remote", "Remote"},
		{"both", "Nashville, TN"},
		{"Austin, TX", "Austin, TX"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveLocation(tt.token))
		})
	}
}

func TestSearchAllSourcesDownStillAnswers(t *testing.T) {
	srv := testServer(&stubAdapter{err: errors.New("connection refused")})
	defer srv.Close()

	var body searchResponse
	res := getJSON(t, srv.URL+"/api/jobs/search?search=react+developer&location=remote&limit=5", &body)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, body.Jobs, 5)
	for _, j := range body.Jobs {
		assert.Equal(t, domain.SourceMock, j.Source)
		assert.GreaterOrEqual(t, j.RelevanceScore, 75)
		assert.LessOrEqual(t, j.RelevanceScore, 95)
	}
}

// Even a broken aggregator still yields a populated answer plus an error
// field, via the handler's direct generator call.
func TestSearchAggregatorFailureFallsBackToDemo(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	agg := aggregate.New(nil, nil, log) // nil generator: shortfall fill blows up
	srv := httptest.NewServer(Handler(Deps{Agg: agg, Gen: mock.NewSeeded(3, fixedNow), Log: log}))
	defer srv.Close()

	var body searchResponse
	res := getJSON(t, srv.URL+"/api/jobs/search?search=react&limit=5", &body)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotEmpty(t, body.Error)
	require.Len(t, body.Jobs, 5)
	for _, j := range body.Jobs {
		assert.Equal(t, domain.SourceMock, j.Source)
	}
}

func TestSearchLimitClamped(t *testing.T) {
	seen := &source.Query{}
	srv := testServer(&stubAdapter{seen: seen})
	defer srv.Close()

	var body searchResponse
	getJSON(t, srv.URL+"/api/jobs/search?limit=5000", &body)
	assert.Equal(t, maxLimit, body.Total)
}

func TestSearchMethodNotAllowed(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	res, err := http.Post(srv.URL+"/api/jobs/search", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func TestRequestIDHeader(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
}

func TestCorsHeaders(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, "http://localhost:3000", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	res, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
