package remoteok

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"jobseek-engine/internal/domain"
	"jobseek-engine/internal/normalize"
	"jobseek-engine/internal/rank"
	"jobseek-engine/internal/source"
	"jobseek-engine/internal/source/util"

	"github.com/google/uuid"
)

type Config struct {
	// Endpoint is the public API URL returning the full posting list.
	Endpoint string
	// Profile overrides the stock scoring weights; nil keeps rank.API.
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
	profile := rank.API
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

func (a *Adapter) Name() string { return "remoteok" }

type posting struct {
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	SalaryMin   int      `json:"salary_min"`
	SalaryMax   int      `json:"salary_max"`
	Date        any      `json:"date"` // epoch seconds or ISO string, depending on entry
	URL         string   `json:"url"`
}

// broadenTerms widens the caller's search the way the upstream API's own
// search would; the feed skews heavily toward web roles.
var broadenTerms = []string{"react", "javascript", "frontend", "developer"}

func (a *Adapter) Search(ctx context.Context, q source.Query) ([]domain.NormalizedJob, error) {
	if err := a.limiter.WaitURL(ctx, a.cfg.Endpoint); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.cfg.Endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "JobSeek/1.0 (+https://jobseek.app)")
	req.Header.Set("Accept", "application/json")

	res, err := a.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api status %d", res.StatusCode)
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode api payload: %w", err)
	}
	if len(raw) <= 1 {
		return nil, nil
	}

	terms := append([]string{strings.ToLower(q.Term)}, broadenTerms...)

	var jobs []domain.NormalizedJob
	for _, msg := range raw[1:] { // head entry is legal/metadata, not a job
		if len(jobs) >= q.Limit {
			break
		}
		var p posting
		if err := json.Unmarshal(msg, &p); err != nil {
			continue // tolerate odd entries
		}
		if !matchesAny(p, terms) {
			continue
		}
		jobs = append(jobs, a.normalizePosting(p, q))
	}
	return jobs, nil
}

func matchesAny(p posting, terms []string) bool {
	blob := strings.ToLower(p.Position + " " + p.Description + " " + strings.Join(p.Tags, " ") + " " + p.Company)
	for _, t := range terms {
		if t != "" && strings.Contains(blob, t) {
			return true
		}
	}
	return false
}

func (a *Adapter) normalizePosting(p posting, q source.Query) domain.NormalizedJob {
	now := a.now()

	title := util.CleanText(p.Position)
	if title == "" {
		title = "Developer"
	}
	company := util.CleanText(p.Company)
	if company == "" {
		company = "Remote Company"
	}

	desc := normalize.CleanHTML(p.Description)
	postedAt := a.postedAt(p, now)

	score := a.profile.ScoreAt(rank.Input{
		Title:       title,
		Description: desc,
		Tags:        p.Tags,
		Remote:      true,
		PostedAt:    postedAt,
	}, q.Term, now)

	var min, max *int
	if p.SalaryMin > 0 {
		min = &p.SalaryMin
	}
	if p.SalaryMax > 0 {
		max = &p.SalaryMax
	}

	return domain.NormalizedJob{
		ID:                uuid.NewString(),
		Title:             title,
		Company:           company,
		Location:          "Remote",
		Salary:            normalize.FormatSalary(min, max),
		PostedDate:        postedAt.Format(time.RFC3339),
		Source:            domain.SourceRemoteOK,
		Description:       normalize.Truncate(desc),
		Requirements:      normalize.CapList(p.Tags, normalize.MaxSkills),
		IsRemote:          true,
		RelevanceScore:    score,
		ApplicationStatus: domain.StatusNotApplied,
		Tags:              append([]string{normalize.TagRemote}, normalize.CapList(p.Tags, 5)...),
		URL:               util.CanonicalizeURL(p.URL),
	}
}

func (a *Adapter) postedAt(p posting, now time.Time) time.Time {
	switch d := p.Date.(type) {
	case float64:
		if d > 0 {
			return time.Unix(int64(d), 0).UTC()
		}
	case string:
		return normalize.ParseTime(d, now)
	}
	return now
}
