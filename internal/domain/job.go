package domain

// NormalizedJob is the one record shape every source produces. It is built
// once per raw source record and never mutated afterwards; the HTTP layer
// receives it as a terminal value.
type NormalizedJob struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Company           string   `json:"company"`
	Location          string   `json:"location"`
	Salary            string   `json:"salary"`
	PostedDate        string   `json:"postedDate"`
	Source            string   `json:"source"`
	Description       string   `json:"description"`
	Requirements      []string `json:"requirements"`
	IsRemote          bool     `json:"isRemote"`
	RelevanceScore    int      `json:"relevanceScore"`
	ApplicationStatus string   `json:"applicationStatus"`
	Tags              []string `json:"tags"`
	URL               string   `json:"url"`
}

// StatusNotApplied is the initial applicationStatus for every record; only
// callers outside this engine ever move it past that.
const StatusNotApplied = "not_applied"

// Source labels. Downstream consumers use these to tell real postings from
// synthetic fill.
const (
	SourceFeed     = "Indeed"
	SourcePage     = "LinkedIn"
	SourceRemoteOK = "RemoteOK"
	SourceMock     = "Mock API"
)

// IsSynthetic reports whether a source label marks generated fill data.
func IsSynthetic(source string) bool { return source == SourceMock }
