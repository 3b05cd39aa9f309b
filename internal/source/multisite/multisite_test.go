package multisite

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobseek-engine/internal/rank"
	"jobseek-engine/internal/source"
	"jobseek-engine/internal/source/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serviceFixture = `[
  {
    "title": "React Developer",
    "company": "Acme Corp",
    "location": "Nashville, TN",
    "description": "<p>Build with React and TypeScript</p>",
    "job_url": "https://boards.example/jobs/1",
    "date_posted": "2025-08-05",
    "min_amount": 90000,
    "max_amount": 130000,
    "job_type": "fulltime",
    "site": "indeed"
  },
  {
    "title": "Remote Python Engineer",
    "company": "Widget Co",
    "location": "Remote",
    "description": "Python and SQL, work from anywhere",
    "job_url": "https://boards.example/jobs/2",
    "date_posted": "",
    "site": "linkedin"
  }
]`

func newTestAdapter(srvURL string) *Adapter {
	a := New(Config{Endpoint: srvURL}, util.NewHostLimiter(100, 100), slog.New(slog.NewTextHandler(io.Discard, nil)))
	a.now = func() time.Time { return time.Date(2025, 8, 7, 0, 0, 0, 0, time.UTC) }
	return a
}

func TestSearchNormalizesServicePostings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "react developer", q.Get("search_term"))
		assert.Equal(t, "168", q.Get("hours_old"))
		assert.ElementsMatch(t, []string{"indeed", "linkedin", "glassdoor"}, q["site_name"])
		io.WriteString(w, serviceFixture)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	jobs, err := a.Search(context.Background(), source.Query{Term: "react developer", Location: "Nashville, TN", Limit: 10})
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	first := jobs[0]
	assert.Equal(t, "React Developer", first.Title)
	assert.Equal(t, "$90,000 - $130,000", first.Salary)
	assert.Equal(t, "Indeed", first.Source)
	assert.Equal(t, "2025-08-05T00:00:00Z", first.PostedDate)
	assert.False(t, first.IsRemote)
	assert.GreaterOrEqual(t, first.RelevanceScore, rank.MultiSite.Floor)
	assert.LessOrEqual(t, first.RelevanceScore, rank.MultiSite.Ceiling)

	second := jobs[1]
	assert.Equal(t, "Linkedin", second.Source)
	assert.True(t, second.IsRemote)
	assert.Equal(t, "Salary not specified", second.Salary)
	// empty date degrades to the normalization instant
	assert.Equal(t, "2025-08-07T00:00:00Z", second.PostedDate)
}

func TestSearchEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	jobs, err := a.Search(context.Background(), source.Query{Term: "react", Location: "Remote", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestSearchServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	_, err := a.Search(context.Background(), source.Query{Term: "react", Location: "Remote", Limit: 10})
	assert.Error(t, err)
}
