package entity

import "pet_market/internal/domain/value"

// Preferences are the user's persisted dashboard settings.
type Preferences struct {
	SelectedSkill  value.Skill     `json:"selectedSkill"`
	SortBy         value.SortField `json:"sortBy"`
	PetSkillFilter value.Skill     `json:"petSkillFilter"`
	ActiveRarities value.RaritySet `json:"activeRarities"`
	CompactMode    bool            `json:"compactMode"`
}

// DefaultPreferences is what an absent or expired entry falls back to.
func DefaultPreferences() Preferences {
	return Preferences{
		SelectedSkill:  value.SkillAll,
		SortBy:         value.SortFields()[0],
		PetSkillFilter: value.SkillAll,
		ActiveRarities: value.AllRarities(),
		CompactMode:    false,
	}
}

func (p Preferences) Equal(other Preferences) bool {
	return p.SelectedSkill == other.SelectedSkill &&
		p.SortBy == other.SortBy &&
		p.PetSkillFilter == other.PetSkillFilter &&
		p.ActiveRarities.Equal(other.ActiveRarities) &&
		p.CompactMode == other.CompactMode
}
