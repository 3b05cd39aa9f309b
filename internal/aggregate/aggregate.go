package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"jobseek-engine/internal/domain"
	"jobseek-engine/internal/metrics"
	"jobseek-engine/internal/source"
	"jobseek-engine/internal/source/mock"

	"golang.org/x/sync/errgroup"
)

// Aggregator fans a search over the configured real sources, fills any
// shortfall from the synthetic generator, and returns one ranked, sized list.
type Aggregator struct {
	sources []source.Adapter // priority order
	gen     *mock.Generator
	log     *slog.Logger

	// SourceTimeout bounds each adapter call. The per-call HTTP clients
	// carry their own timeouts; this is the outer stop.
	SourceTimeout time.Duration
}

func New(sources []source.Adapter, gen *mock.Generator, log *slog.Logger) *Aggregator {
	return &Aggregator{
		sources:       sources,
		gen:           gen,
		log:           log,
		SourceTimeout: 20 * time.Second,
	}
}

// Result is one search response plus its real/synthetic breakdown.
type Result struct {
	Jobs      []domain.NormalizedJob
	Total     int
	RealCount int
	MockCount int
	Message   string
}

// Search runs the pipeline. Adapter failures degrade to empty per-source
// results; only a synthetic-generator failure surfaces as an error, and the
// HTTP layer covers even that with a direct mock call.
func (a *Aggregator) Search(ctx context.Context, q source.Query) (Result, error) {
	if q.Limit <= 0 {
		q.Limit = 20
	}

	quota := q.Limit
	if n := len(a.sources); n > 0 {
		quota = q.Limit / n
		if quota < 1 {
			quota = 1
		}
	}

	// Sources run concurrently; results land in priority slots so the final
	// concatenation order is deterministic regardless of arrival order.
	collected := make([][]domain.NormalizedJob, len(a.sources))

	var g errgroup.Group
	for i, ad := range a.sources {
		i, ad := i, ad
		g.Go(func() error {
			sctx, cancel := context.WithTimeout(ctx, a.SourceTimeout)
			defer cancel()

			start := time.Now()
			jobs, err := searchGuarded(sctx, ad, source.Query{Term: q.Term, Location: q.Location, Limit: quota})
			metrics.FetchDuration.WithLabelValues(ad.Name()).Observe(time.Since(start).Seconds())

			if err != nil {
				// source-unavailable: degrade to empty, keep going
				metrics.FetchTotal.WithLabelValues(ad.Name(), "error").Inc()
				a.log.Warn("source failed", "source", ad.Name(), "err", err)
				return nil
			}
			metrics.FetchTotal.WithLabelValues(ad.Name(), "ok").Inc()
			for _, j := range jobs {
				metrics.JobsReturned.WithLabelValues(j.Source).Inc()
			}
			collected[i] = jobs
			return nil
		})
	}
	_ = g.Wait()

	var jobs []domain.NormalizedJob
	for _, part := range collected {
		jobs = append(jobs, part...)
	}
	realCount := len(jobs)

	if shortfall := q.Limit - len(jobs); shortfall > 0 {
		fill, err := a.fillShortfall(source.Query{Term: q.Term, Location: q.Location, Limit: shortfall})
		if err != nil {
			if realCount == 0 {
				return Result{}, err
			}
			a.log.Error("shortfall fill failed", "err", err)
		}
		for _, j := range fill {
			metrics.JobsReturned.WithLabelValues(j.Source).Inc()
		}
		jobs = append(jobs, fill...)
	}

	// Stable: score ties keep source-priority order.
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].RelevanceScore > jobs[j].RelevanceScore
	})
	if len(jobs) > q.Limit {
		jobs = jobs[:q.Limit]
	}

	res := Result{Jobs: jobs, Total: len(jobs)}
	for _, j := range jobs {
		if domain.IsSynthetic(j.Source) {
			res.MockCount++
		} else {
			res.RealCount++
		}
	}

	switch {
	case res.RealCount == 0 && res.MockCount > 0:
		res.Message = fmt.Sprintf("Found %d jobs (demo data; live sources returned nothing)", res.Total)
	case res.MockCount > 0:
		res.Message = fmt.Sprintf("Found %d jobs (%d live, %d demo)", res.Total, res.RealCount, res.MockCount)
	default:
		res.Message = fmt.Sprintf("Found %d jobs", res.Total)
	}
	return res, nil
}

// searchGuarded keeps an adapter panic from crossing the adapter boundary.
func searchGuarded(ctx context.Context, ad source.Adapter, q source.Query) (jobs []domain.NormalizedJob, err error) {
	defer func() {
		if r := recover(); r != nil {
			jobs, err = nil, fmt.Errorf("adapter panic: %v", r)
		}
	}()
	return ad.Search(ctx, q)
}

func (a *Aggregator) fillShortfall(q source.Query) (jobs []domain.NormalizedJob, err error) {
	defer func() {
		if r := recover(); r != nil {
			jobs, err = nil, fmt.Errorf("mock generator panic: %v", r)
		}
	}()
	return a.gen.Generate(q), nil
}
