package server

import (
	"fmt"
	"time"

	"pet_market/internal/domain/entity"
	"pet_market/internal/domain/service/dashboard"
	"pet_market/internal/domain/service/display"
	"pet_market/internal/domain/value"
	"pet_market/pkg/lox"
	"pet_market/pkg/rest"
)

func newRESTView(view entity.View) rest.View {
	return rest.View{
		Records:     lox.Map(view.Records, newRESTRecord),
		CompactMode: view.CompactMode,
		Error:       view.Error,
	}
}

func newRESTRecord(r entity.DisplayRecord) rest.Record {
	return rest.Record{
		Rank:             r.Rank,
		Name:             r.Name,
		Rarity:           r.Rarity.String(),
		Skill:            r.Skill.String(),
		ImageKey:         r.ImageKey,
		AssetPath:        display.AssetPath(r.ImageKey),
		Profit:           r.Profit,
		ProfitWithoutTax: r.ProfitWithoutTax,
		CoinsPerXP:       r.CoinsPerXP,
		CoinsPerXPNote:   r.CoinsPerXPNote,
		Low:              newRESTPriceTier(r.Low),
		High:             newRESTPriceTier(r.High),
		DeviationPercent: r.DeviationPercent,
		Alert:            r.Alert,
	}
}

func newRESTPriceTier(t entity.PriceTier) rest.PriceTier {
	return rest.PriceTier{
		Label:       t.Label,
		Price:       t.Price,
		DayAvg:      t.DayAvg,
		WeekAvg:     t.WeekAvg,
		UUID:        t.UUID,
		CopyPayload: t.CopyPayload,
	}
}

func newRESTPreferences(p entity.Preferences) rest.Preferences {
	return rest.Preferences{
		SelectedSkill:  p.SelectedSkill.String(),
		SortBy:         p.SortBy.String(),
		PetSkillFilter: p.PetSkillFilter.String(),
		ActiveRarities: lox.Map(p.ActiveRarities.Slice(), value.Rarity.String),
		CompactMode:    p.CompactMode,
	}
}

func newRESTCountdown(c entity.Countdown) rest.Countdown {
	result := rest.Countdown{
		State:            c.State.String(),
		SecondsRemaining: c.SecondsRemaining,
		NextUpdate:       formatTime(c.NextUpdate),
		CheckedAt:        formatTime(c.CheckedAt),
	}

	if c.LastUpdate != nil {
		result.LastUpdate = formatTime(*c.LastUpdate)
	}

	return result
}

func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}

	s := t.Format(time.RFC3339)

	return &s
}

func newRESTOptions() rest.Options {
	return rest.Options{
		Skills:     append([]string{value.SkillAll.String()}, lox.Map(value.Skills(), value.Skill.String)...),
		SortFields: lox.Map(value.SortFields(), value.SortField.String),
		Rarities:   lox.Map(value.Rarities(), value.Rarity.String),
	}
}

// newDomainPatch parses every present field; unknown rarities are rejected
// rather than silently dropped.
func newDomainPatch(p rest.PreferencesPatch) (dashboard.PreferencesPatch, error) {
	var patch dashboard.PreferencesPatch

	if p.SelectedSkill != nil {
		skill, err := value.ParseSkill(*p.SelectedSkill)
		if err != nil {
			return patch, fmt.Errorf("selectedSkill: %w", err)
		}

		patch.SelectedSkill = &skill
	}

	if p.SortBy != nil {
		field, err := value.ParseSortField(*p.SortBy)
		if err != nil {
			return patch, fmt.Errorf("sortBy: %w", err)
		}

		patch.SortBy = &field
	}

	if p.PetSkillFilter != nil {
		skill, err := value.ParseSkill(*p.PetSkillFilter)
		if err != nil {
			return patch, fmt.Errorf("petSkillFilter: %w", err)
		}

		patch.PetSkillFilter = &skill
	}

	if p.ActiveRarities != nil {
		rarities, err := lox.MapErr(*p.ActiveRarities, value.ParseRarity)
		if err != nil {
			return patch, fmt.Errorf("activeRarities: %w", err)
		}

		set := value.NewRaritySet(rarities...)
		patch.ActiveRarities = &set
	}

	patch.CompactMode = p.CompactMode

	return patch, nil
}
