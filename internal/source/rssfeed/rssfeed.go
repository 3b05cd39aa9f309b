package rssfeed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"jobseek-engine/internal/domain"
	"jobseek-engine/internal/normalize"
	"jobseek-engine/internal/rank"
	"jobseek-engine/internal/source"
	"jobseek-engine/internal/source/util"

	"github.com/google/uuid"
)

type Config struct {
	// BaseURL is the feed endpoint; term and location are appended as q/l
	// query params.
	BaseURL string
	// ExtraQueries are fixed broadening searches tried after the caller's
	// own, e.g. "react developer"/"remote".
	ExtraQueries [][2]string
	// MaxFeeds caps feed URLs attempted per call. Zero means 2.
	MaxFeeds int
	// Profile overrides the stock scoring weights; nil keeps rank.Feed.
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
	if cfg.MaxFeeds <= 0 {
		cfg.MaxFeeds = 2
	}
	profile := rank.Feed
	if cfg.Profile != nil {
		profile = *cfg.Profile
	}
	return &Adapter{
		cfg:     cfg,
		profile: profile,
		hc:      &http.Client{Timeout: 10 * time.Second},
		limiter: limiter,
		log:     log,
		now:     time.Now,
	}
}

func (a *Adapter) Name() string { return "rssfeed" }

type rssDoc struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
}

func (a *Adapter) Search(ctx context.Context, q source.Query) ([]domain.NormalizedJob, error) {
	urls := a.feedURLs(q)
	if len(urls) > a.cfg.MaxFeeds {
		urls = urls[:a.cfg.MaxFeeds]
	}

	var jobs []domain.NormalizedJob
	for _, feedURL := range urls {
		if len(jobs) >= q.Limit {
			break
		}
		items, err := a.fetchFeed(ctx, feedURL)
		if err != nil {
			// one dead or malformed feed doesn't end the run
			a.log.Warn("feed fetch failed", "adapter", a.Name(), "url", feedURL, "err", err)
			continue
		}
		for _, it := range items {
			if len(jobs) >= q.Limit {
				break
			}
			jobs = append(jobs, a.normalizeItem(it, q))
		}
	}
	return jobs, nil
}

func (a *Adapter) feedURLs(q source.Query) []string {
	build := func(term, loc string) string {
		v := url.Values{}
		v.Set("q", term)
		v.Set("l", loc)
		return a.cfg.BaseURL + "?" + v.Encode()
	}

	urls := []string{build(q.Term, q.Location)}
	for _, extra := range a.cfg.ExtraQueries {
		urls = append(urls, build(extra[0], extra[1]))
	}
	return urls
}

func (a *Adapter) fetchFeed(ctx context.Context, feedURL string) ([]rssItem, error) {
	if err := a.limiter.WaitURL(ctx, feedURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "JobSeek/1.0 RSS Reader")
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	res, err := a.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return nil, err
	}

	var doc rssDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse feed xml: %w", err)
	}
	return doc.Channel.Items, nil
}

// Feed titles look like "Frontend Engineer at Acme Corp - Nashville, TN".
var (
	companyRe  = regexp.MustCompile(` at (.+?)(?:$| - | in )`)
	atSuffixRe = regexp.MustCompile(` at .+$`)
)

func (a *Adapter) normalizeItem(it rssItem, q source.Query) domain.NormalizedJob {
	now := a.now()

	rawTitle := util.CleanText(it.Title)
	title := util.CleanText(atSuffixRe.ReplaceAllString(rawTitle, ""))
	if title == "" {
		title = "Developer"
	}

	company := "Company"
	if m := companyRe.FindStringSubmatch(rawTitle); m != nil {
		company = util.CleanText(m[1])
	}

	desc := normalize.CleanHTML(it.Description)

	location := util.ExtractLocationFromLabeledText(it.Description)
	if location == "" {
		location = normalize.TitleCase(q.Location)
	}

	remote := normalize.IsRemote(rawTitle, location, desc)
	if remote {
		location = "Remote"
	}

	postedAt := normalize.ParseTime(it.PubDate, now)

	score := a.profile.ScoreAt(rank.Input{
		Title:       rawTitle,
		Description: desc,
		Location:    location,
		Remote:      remote,
		PostedAt:    postedAt,
	}, q.Term, now)

	return domain.NormalizedJob{
		ID:                uuid.NewString(),
		Title:             title,
		Company:           company,
		Location:          location,
		Salary:            normalize.SalaryFromText(it.Description),
		PostedDate:        postedAt.Format(time.RFC3339),
		Source:            domain.SourceFeed,
		Description:       normalize.Truncate(desc),
		Requirements:      normalize.ExtractSkills(desc),
		IsRemote:          remote,
		RelevanceScore:    score,
		ApplicationStatus: domain.StatusNotApplied,
		Tags:              normalize.Tags(rawTitle, desc, "", remote),
		URL:               util.CanonicalizeURL(it.Link),
	}
}
