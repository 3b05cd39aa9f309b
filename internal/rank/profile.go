package rank

import (
	"strings"
	"time"
)

// Input is the raw material a profile scores. PostedAt may be zero when the
// source gave no usable date; recency bonuses then simply don't apply.
type Input struct {
	Title       string
	Description string
	Location    string
	Tags        []string
	Remote      bool
	PostedAt    time.Time
}

// Profile holds one adapter's scoring weights and clamp bounds. Every source
// carries its own prior: feed-backed sources start low, professional-network
// pages start high. The asymmetric floors are deliberate.
type Profile struct {
	Base int

	TitleHit int // search term appears in title
	DescHit  int // search term appears in description

	SkillHit int      // per matched skill needle
	Skills   []string // lowercase needles checked in title/description/tags

	RemoteBonus   int
	SeniorBonus   int // senior/lead/principal in title
	JuniorBonus   int
	LocationHit   int      // preferred-location match
	LocationTerms []string // lowercase needles checked against location

	RecentWeek  int // posted within 7 days
	RecentMonth int // posted within 30 days

	Floor   int
	Ceiling int
}

// Default skill needles shared by profiles that don't declare their own.
var defaultSkills = []string{"react", "javascript", "typescript", "python", "node.js"}

// Score is ScoreAt anchored to the current instant.
func (p Profile) Score(in Input, term string) int {
	return p.ScoreAt(in, term, time.Now())
}

// ScoreAt computes the relevance score. Pure given its arguments: same
// record, term, and instant always yield the same value.
func (p Profile) ScoreAt(in Input, term string, now time.Time) int {
	title := strings.ToLower(in.Title)
	desc := strings.ToLower(in.Description)
	tags := strings.ToLower(strings.Join(in.Tags, " "))
	term = strings.ToLower(strings.TrimSpace(term))

	score := p.Base

	if term != "" {
		if strings.Contains(title, term) {
			score += p.TitleHit
		}
		if strings.Contains(desc, term) {
			score += p.DescHit
		}
	}

	skills := p.Skills
	if len(skills) == 0 {
		skills = defaultSkills
	}
	for _, s := range skills {
		if strings.Contains(title, s) || strings.Contains(desc, s) || strings.Contains(tags, s) {
			score += p.SkillHit
		}
	}

	if in.Remote {
		score += p.RemoteBonus
	}

	switch {
	case containsAny(title, "senior", "lead", "principal"):
		score += p.SeniorBonus
	case containsAny(title, "junior", "entry"):
		score += p.JuniorBonus
	}

	if p.LocationHit != 0 {
		loc := strings.ToLower(in.Location)
		for _, l := range p.LocationTerms {
			if strings.Contains(loc, l) {
				score += p.LocationHit
				break
			}
		}
	}

	if !in.PostedAt.IsZero() {
		age := now.Sub(in.PostedAt)
		switch {
		case age <= 7*24*time.Hour:
			score += p.RecentWeek
		case age <= 30*24*time.Hour:
			score += p.RecentMonth
		}
	}

	return clamp(score, p.Floor, p.Ceiling)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
