package multisite

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"jobseek-engine/internal/domain"
	"jobseek-engine/internal/normalize"
	"jobseek-engine/internal/rank"
	"jobseek-engine/internal/source"
	"jobseek-engine/internal/source/util"

	"github.com/google/uuid"
)

// This adapter delegates to an external multi-board search service (the
// collaborator that actually crawls the big boards) and normalizes whatever
// it returns.

type Config struct {
	// Endpoint is the search service URL.
	Endpoint string
	// Sites are the board identifiers the service should fan over.
	Sites []string
	// FreshnessHours bounds posting age; zero means 168 (one week).
	FreshnessHours int
	// Profile overrides the stock scoring weights; nil keeps rank.MultiSite.
	Profile *rank.Profile
}

type Adapter struct {
	cfg     Config
	profile rank.Profile
	hc      *http.Client
	limiter *util.HostLimiter
	log     *slog.Logger
	now     func() time.Time
}

func New(cfg Config, limiter *util.HostLimiter, log *slog.Logger) *Adapter {
	if len(cfg.Sites) == 0 {
		cfg.Sites = []string{"indeed", "linkedin", "glassdoor"}
	}
	if cfg.FreshnessHours <= 0 {
		cfg.FreshnessHours = 168
	}
	profile := rank.MultiSite
	if cfg.Profile != nil {
		profile = *cfg.Profile
	}
	return &Adapter{
		cfg:     cfg,
		profile: profile,
		hc:      &http.Client{Timeout: 15 * time.Second},
		limiter: limiter,
		log:     log,
		now:     time.Now,
	}
}

func (a *Adapter) Name() string { return "multisite" }

type servicePosting struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	JobURL      string   `json:"job_url"`
	DatePosted  string   `json:"date_posted"`
	MinAmount   *float64 `json:"min_amount"`
	MaxAmount   *float64 `json:"max_amount"`
	JobType     string   `json:"job_type"`
	Site        string   `json:"site"`
}

func (a *Adapter) Search(ctx context.Context, q source.Query) ([]domain.NormalizedJob, error) {
	v := url.Values{}
	v.Set("search_term", q.Term)
	v.Set("location", q.Location)
	v.Set("results_wanted", strconv.Itoa(q.Limit))
	v.Set("hours_old", strconv.Itoa(a.cfg.FreshnessHours))
	for _, site := range a.cfg.Sites {
		v.Add("site_name", site)
	}
	searchURL := a.cfg.Endpoint + "?" + v.Encode()

	if err := a.limiter.WaitURL(ctx, searchURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := a.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search service status %d", res.StatusCode)
	}

	var postings []servicePosting
	if err := json.NewDecoder(res.Body).Decode(&postings); err != nil {
		return nil, fmt.Errorf("decode search service payload: %w", err)
	}

	jobs := make([]domain.NormalizedJob, 0, len(postings))
	for _, p := range postings {
		if len(jobs) >= q.Limit {
			break
		}
		jobs = append(jobs, a.normalizePosting(p, q))
	}
	a.log.Info("multi-board search done", "adapter", a.Name(), "found", len(jobs))
	return jobs, nil
}

func (a *Adapter) normalizePosting(p servicePosting, q source.Query) domain.NormalizedJob {
	now := a.now()

	desc := normalize.CleanHTML(p.Description)
	remote := normalize.IsRemote(p.Title, p.Location, desc)
	postedAt := normalize.ParseTime(p.DatePosted, now)

	score := a.profile.ScoreAt(rank.Input{
		Title:       p.Title,
		Description: desc,
		Location:    p.Location,
		Remote:      remote,
		PostedAt:    postedAt,
	}, q.Term, now)

	var min, max *int
	if p.MinAmount != nil {
		n := int(*p.MinAmount)
		min = &n
	}
	if p.MaxAmount != nil {
		n := int(*p.MaxAmount)
		max = &n
	}

	site := p.Site
	if site == "" {
		site = "multisite"
	}

	return domain.NormalizedJob{
		ID:                uuid.NewString(),
		Title:             util.CleanText(p.Title),
		Company:           util.CleanText(p.Company),
		Location:          util.CleanText(p.Location),
		Salary:            normalize.FormatSalary(min, max),
		PostedDate:        postedAt.Format(time.RFC3339),
		Source:            normalize.TitleCase(site),
		Description:       normalize.Truncate(desc),
		Requirements:      normalize.ExtractSkills(desc),
		IsRemote:          remote,
		RelevanceScore:    score,
		ApplicationStatus: domain.StatusNotApplied,
		Tags:              normalize.Tags(p.Title, desc, p.JobType, remote),
		URL:               util.CanonicalizeURL(p.JobURL),
	}
}
