package mock

import (
	"context"
	"testing"
	"time"

	"jobseek-engine/internal/domain"
	"jobseek-engine/internal/rank"
	"jobseek-engine/internal/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time { return time.Date(2025, 8, 7, 0, 0, 0, 0, time.UTC) }

func TestGenerate(t *testing.T) {
	g := NewSeeded(42, fixedNow)
	jobs := g.Generate(source.Query{Term: "react developer", Location: "Nashville", Limit: 20})
	require.Len(t, jobs, 20)

	seen := map[string]bool{}
	for _, j := range jobs {
		assert.Equal(t, domain.SourceMock, j.Source)
		assert.Equal(t, domain.StatusNotApplied, j.ApplicationStatus)
		assert.GreaterOrEqual(t, j.RelevanceScore, rank.MockFloor)
		assert.LessOrEqual(t, j.RelevanceScore, rank.MockCeiling)
		assert.GreaterOrEqual(t, len(j.Requirements), 4)
		assert.LessOrEqual(t, len(j.Requirements), 7)
		assert.NotEmpty(t, j.Title)
		assert.NotEmpty(t, j.Company)
		assert.Contains(t, j.Title, "React Developer")

		if j.IsRemote {
			assert.Equal(t, "Remote", j.Location)
			assert.Contains(t, j.Tags, "Remote")
		} else {
			assert.Equal(t, "Nashville", j.Location)
			assert.Contains(t, j.Tags, "On-site")
		}

		posted, err := time.Parse(time.RFC3339, j.PostedDate)
		require.NoError(t, err)
		age := fixedNow().Sub(posted)
		assert.True(t, age >= 24*time.Hour && age <= 31*24*time.Hour, "posted %s", j.PostedDate)

		assert.False(t, seen[j.ID], "duplicate id %s", j.ID)
		seen[j.ID] = true
	}
}

func TestGenerateRemoteBias(t *testing.T) {
	g := NewSeeded(7, fixedNow)
	jobs := g.Generate(source.Query{Term: "developer", Location: "Nashville", Limit: 300})

	remote := 0
	for _, j := range jobs {
		if j.IsRemote {
			remote++
		}
	}
	// ~2/3 remote by construction
	assert.Greater(t, remote, 150)
	assert.Less(t, remote, 260)
}

func TestSearchAdapterContract(t *testing.T) {
	g := NewSeeded(1, fixedNow)
	jobs, err := g.Search(context.Background(), source.Query{Term: "developer", Limit: 5})
	require.NoError(t, err)
	assert.Len(t, jobs, 5)
}
