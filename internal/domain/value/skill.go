package value

import (
	"fmt"
	"slices"
	"strings"
)

// Skill is the activity category an item belongs to.
type Skill string

// SkillAll disables skill filtering.
const SkillAll Skill = "All"

const (
	SkillMining     Skill = "Mining"
	SkillFishing    Skill = "Fishing"
	SkillCombat     Skill = "Combat"
	SkillFarming    Skill = "Farming"
	SkillForaging   Skill = "Foraging"
	SkillEnchanting Skill = "Enchanting"
	SkillAlchemy    Skill = "Alchemy"
)

func Skills() []Skill {
	return []Skill{
		SkillMining,
		SkillFishing,
		SkillCombat,
		SkillFarming,
		SkillForaging,
		SkillEnchanting,
		SkillAlchemy,
	}
}

// ParseSkill accepts "All" or one of the known skills, case-insensitively.
func ParseSkill(s string) (Skill, error) {
	s = strings.TrimSpace(s)

	if strings.EqualFold(s, SkillAll.String()) {
		return SkillAll, nil
	}

	idx := slices.IndexFunc(Skills(), func(skill Skill) bool {
		return strings.EqualFold(skill.String(), s)
	})
	if idx < 0 {
		return "", fmt.Errorf("unknown skill %q", s)
	}

	return Skills()[idx], nil
}

func (s Skill) String() string {
	return string(s)
}

// Matches reports whether an item of skill other passes a filter set to s.
func (s Skill) Matches(other Skill) bool {
	return s == SkillAll || s == other
}
