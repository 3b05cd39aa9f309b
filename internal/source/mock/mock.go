package mock

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"jobseek-engine/internal/domain"
	"jobseek-engine/internal/normalize"
	"jobseek-engine/internal/rank"
	"jobseek-engine/internal/source"

	"github.com/google/uuid"
)

// Generator produces plausible synthetic records. It fills aggregation
// shortfalls and is the unconditional last resort when every real source is
// down, so it must never fail.

var companies = []string{
	"TechFlow", "DataCorp", "CodeStream", "DevHouse", "PixelPerfect",
	"CloudNinja", "ReactLabs", "ByteForge", "FullStack Inc", "ScriptCraft",
}

var titlePatterns = []string{
	"Frontend %s", "Full Stack %s", "React %s", "JavaScript %s",
	"Python %s", "Senior %s", "Junior %s", "%s Engineer", "%s Specialist",
}

var skillPool = []string{
	"React", "JavaScript", "Python", "TypeScript", "Node.js",
	"HTML", "CSS", "Git", "AWS", "Docker",
}

type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func New() *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// NewSeeded pins the random stream and clock; tests use it for stable output.
func NewSeeded(seed int64, now func() time.Time) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), now: now}
}

func (g *Generator) Name() string { return "mock" }

// Search satisfies the adapter contract so the generator can sit at the end
// of a source list. It never returns an error.
func (g *Generator) Search(_ context.Context, q source.Query) ([]domain.NormalizedJob, error) {
	return g.Generate(q), nil
}

// Generate emits q.Limit synthetic records.
func (g *Generator) Generate(q source.Query) []domain.NormalizedJob {
	g.mu.Lock()
	defer g.mu.Unlock()

	term := normalize.TitleCase(q.Term)
	location := q.Location
	if location == "" {
		location = "Nashville"
	}
	now := g.now()

	jobs := make([]domain.NormalizedJob, 0, q.Limit)
	for i := 0; i < q.Limit; i++ {
		isRemote := g.rng.Intn(3) != 0 // ~2/3 remote
		loc := location
		if isRemote {
			loc = "Remote"
		}

		salaryMin := (60 + g.rng.Intn(31)) * 1000
		salaryMax := salaryMin + (10+g.rng.Intn(21))*1000

		title := fmt.Sprintf(titlePatterns[g.rng.Intn(len(titlePatterns))], term)

		tags := []string{normalize.TagOnSite}
		if isRemote {
			tags[0] = normalize.TagRemote
		}
		if g.rng.Intn(2) == 0 {
			tags = append(tags, normalize.TagFullTime)
		} else {
			tags = append(tags, normalize.TagContract)
		}

		jobs = append(jobs, domain.NormalizedJob{
			ID:       uuid.NewString(),
			Title:    title,
			Company:  companies[g.rng.Intn(len(companies))],
			Location: loc,
			Salary:   normalize.FormatSalary(&salaryMin, &salaryMax),
			PostedDate: now.AddDate(0, 0, -(1 + g.rng.Intn(30))).
				Format(time.RFC3339),
			Source:            domain.SourceMock,
			Description:       fmt.Sprintf("We're looking for a talented %s to join our growing team. Great opportunity to work with modern technologies and make an impact.", q.Term),
			Requirements:      g.sampleSkills(4 + g.rng.Intn(4)),
			IsRemote:          isRemote,
			RelevanceScore:    rank.MockFloor + g.rng.Intn(rank.MockCeiling-rank.MockFloor+1),
			ApplicationStatus: domain.StatusNotApplied,
			Tags:              tags,
			URL:               "https://example.com/jobs/" + uuid.NewString(),
		})
	}
	return jobs
}

func (g *Generator) sampleSkills(n int) []string {
	idx := g.rng.Perm(len(skillPool))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = skillPool[j]
	}
	return out
}
