package rank

import "jobseek-engine/internal/config"

// Override returns p with any non-nil config weights applied. Deploys use it
// to retune a source's scoring without a rebuild.
func Override(p Profile, o config.ScoringOverride) Profile {
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}

	setInt(&p.Base, o.Base)
	setInt(&p.TitleHit, o.TitleHit)
	setInt(&p.DescHit, o.DescHit)
	setInt(&p.SkillHit, o.SkillHit)
	setInt(&p.RemoteBonus, o.RemoteBonus)
	setInt(&p.SeniorBonus, o.SeniorBonus)
	setInt(&p.JuniorBonus, o.JuniorBonus)
	setInt(&p.LocationHit, o.LocationHit)
	setInt(&p.RecentWeek, o.RecentWeek)
	setInt(&p.RecentMonth, o.RecentMonth)
	setInt(&p.Floor, o.Floor)
	setInt(&p.Ceiling, o.Ceiling)

	if len(o.Skills) > 0 {
		p.Skills = o.Skills
	}
	if len(o.LocationTerms) > 0 {
		p.LocationTerms = o.LocationTerms
	}
	return p
}
