package webpage

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobseek-engine/internal/domain"
	"jobseek-engine/internal/rank"
	"jobseek-engine/internal/source"
	"jobseek-engine/internal/source/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageFixture = `<!DOCTYPE html>
<html><body>
  <div class="header-nav">not a job</div>
  <div class="base-card job-search-card">
    <h3 class="base-search-card__title job-title">Senior React Developer</h3>
    <span class="base-search-card__company-name">Acme Corp</span>
    <span class="job-search-card__location">Remote</span>
    <a href="/jobs/view/12345">view</a>
  </div>
  <div class="job-card">
    <h3 class="job-title">Frontend Engineer</h3>
    <a href="https://example.com/jobs/67890?utm_campaign=feed">view</a>
  </div>
</body></html>`

func newTestAdapter(srvURL string) *Adapter {
	a := New(Config{SearchURL: srvURL}, util.NewHostLimiter(100, 100), slog.New(slog.NewTextHandler(io.Discard, nil)))
	a.now = func() time.Time { return time.Date(2025, 8, 7, 0, 0, 0, 0, time.UTC) }
	return a
}

func TestSearchExtractsCards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla")
		assert.Equal(t, "react developer", r.URL.Query().Get("keywords"))
		io.WriteString(w, pageFixture)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	jobs, err := a.Search(context.Background(), source.Query{Term: "react developer", Location: "Remote", Limit: 10})
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	first := jobs[0]
	assert.Equal(t, "Senior React Developer", first.Title)
	assert.Equal(t, "Remote", first.Location)
	assert.True(t, first.IsRemote)
	assert.Equal(t, domain.SourcePage, first.Source)
	assert.Contains(t, first.URL, "/jobs/view/12345")
	assert.Contains(t, first.Tags, "Senior")
	assert.GreaterOrEqual(t, first.RelevanceScore, rank.Page.Floor)
	assert.LessOrEqual(t, first.RelevanceScore, rank.Page.Ceiling)

	// second card has no company/location elements: defaults fill in
	second := jobs[1]
	assert.Equal(t, "Frontend Engineer", second.Title)
	assert.Equal(t, "LinkedIn Company", second.Company)
	assert.NotContains(t, second.URL, "utm_campaign")
}

// The probe is markup guesswork; a page with no matching elements yields
// zero jobs and no error.
func TestSearchNoMatchingMarkup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html><body><div class="hero">welcome</div></body></html>`)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	jobs, err := a.Search(context.Background(), source.Query{Term: "react", Location: "Remote", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestSearchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	_, err := a.Search(context.Background(), source.Query{Term: "react", Location: "Remote", Limit: 10})
	assert.Error(t, err)
}

func TestRemoteFilterParam(t *testing.T) {
	var gotWT string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotWT = r.URL.Query().Get("f_WT")
		io.WriteString(w, "<html></html>")
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	_, err := a.Search(context.Background(), source.Query{Term: "react", Location: "remote", Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, "2", gotWT)
}
