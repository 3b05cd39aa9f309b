package rank

// Stock profiles, one per adapter. Weights mirror each source's confidence
// prior; floors and ceilings differ on purpose.

// MultiSite scores records from the multi-board search service.
var MultiSite = Profile{
	Base:          50,
	SkillHit:      8,
	Skills:        []string{"react", "javascript", "python", "next.js", "tailwind", "typescript", "node.js"},
	RemoteBonus:   10,
	LocationHit:   8,
	LocationTerms: []string{"nashville", "tennessee"},
	RecentWeek:    10,
	RecentMonth:   5,
	Floor:         70,
	Ceiling:       96,
}

// Feed scores RSS feed items.
var Feed = Profile{
	Base:        60,
	TitleHit:    20,
	DescHit:     10,
	SkillHit:    3,
	RemoteBonus: 8,
	Floor:       60,
	Ceiling:     95,
}

// Page scores HTML search-page cards. High base: the page is a professional
// network, and cards carry too little text for keyword signal.
var Page = Profile{
	Base:        75,
	SkillHit:    8,
	Skills:      []string{"react", "javascript", "frontend", "developer"},
	SeniorBonus: 10,
	JuniorBonus: 5,
	Floor:       75,
	Ceiling:     95,
}

// API scores public JSON API entries.
var API = Profile{
	Base:        70,
	TitleHit:    15,
	DescHit:     10,
	SkillHit:    3,
	Floor:       70,
	Ceiling:     95,
}

// MockFloor and MockCeiling bound the synthetic generator's uniform random
// score; there is no real signal to weigh.
const (
	MockFloor   = 75
	MockCeiling = 95
)
