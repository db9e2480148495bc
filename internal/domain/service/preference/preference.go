// Package preference persists dashboard settings in an expiring key-value store.
package preference

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"pet_market/internal/domain"
	"pet_market/internal/domain/entity"
	"pet_market/internal/domain/value"
	"pet_market/pkg/contextx"
	"pet_market/pkg/errcodes"
	"pet_market/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const DefaultTTL = 30 * 24 * time.Hour

const (
	KeySelectedSkill  = "selectedSkill"
	KeySortBy         = "sortBy"
	KeyPetSkillFilter = "petSkillFilter"
	KeyActiveRarities = "activeRarities"
	KeyCompactMode    = "compactMode"
)

// KV is an expiring string store. A ttl <= 0 erases the key.
type KV interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (value string, ok bool, err error)
}

type Service struct {
	kv  KV
	ttl time.Duration
}

func NewService(kv KV, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Service{kv: kv, ttl: ttl}
}

// Restore reads every key, falling back to its default when it is absent,
// expired or unparsable. Backend errors are returned after all keys were tried;
// the returned preferences are usable either way.
func (s *Service) Restore(ctx context.Context) (entity.Preferences, error) {
	prefs := entity.DefaultPreferences()

	var errs []error

	read := func(key string, apply func(raw string) error) {
		raw, ok, err := s.kv.Get(ctx, key)
		if err != nil {
			errs = append(errs, err)
			return
		}

		if !ok {
			return
		}

		if err := apply(raw); err != nil {
			logger(ctx).WarnContext(ctx, "ignoring stored preference",
				slog.String(logx.FieldPreference, key), logx.Error(err))
		}
	}

	read(KeySelectedSkill, func(raw string) error {
		skill, err := value.ParseSkill(raw)
		if err == nil {
			prefs.SelectedSkill = skill
		}

		return err
	})
	read(KeySortBy, func(raw string) error {
		field, err := value.ParseSortField(raw)
		if err == nil {
			prefs.SortBy = field
		}

		return err
	})
	read(KeyPetSkillFilter, func(raw string) error {
		skill, err := value.ParseSkill(raw)
		if err == nil {
			prefs.PetSkillFilter = skill
		}

		return err
	})
	read(KeyActiveRarities, func(raw string) error {
		if set := value.ParseRaritySet(raw); !set.IsEmpty() {
			prefs.ActiveRarities = set
		}

		return nil
	})
	read(KeyCompactMode, func(raw string) error {
		compact, err := strconv.ParseBool(raw)
		if err == nil {
			prefs.CompactMode = compact
		}

		return err
	})

	if len(errs) > 0 {
		return prefs, domain.WrapError(errors.Join(errs...), errcodes.PreferenceStoreFailed, "restore preferences")
	}

	return prefs, nil
}

func (s *Service) SaveSelectedSkill(ctx context.Context, skill value.Skill) error {
	return s.set(ctx, KeySelectedSkill, skill.String(), s.ttl)
}

func (s *Service) SaveSortBy(ctx context.Context, field value.SortField) error {
	return s.set(ctx, KeySortBy, field.String(), s.ttl)
}

func (s *Service) SavePetSkillFilter(ctx context.Context, skill value.Skill) error {
	return s.set(ctx, KeyPetSkillFilter, skill.String(), s.ttl)
}

// SaveActiveRarities erases the key for an empty set, so the next restore
// activates every tier again.
func (s *Service) SaveActiveRarities(ctx context.Context, set value.RaritySet) error {
	if set.IsEmpty() {
		return s.set(ctx, KeyActiveRarities, "", -1)
	}

	return s.set(ctx, KeyActiveRarities, set.String(), s.ttl)
}

func (s *Service) SaveCompactMode(ctx context.Context, compact bool) error {
	return s.set(ctx, KeyCompactMode, strconv.FormatBool(compact), s.ttl)
}

// Save writes every key that differs between prev and next.
func (s *Service) Save(ctx context.Context, prev, next entity.Preferences) error {
	var errs []error

	if prev.SelectedSkill != next.SelectedSkill {
		errs = append(errs, s.SaveSelectedSkill(ctx, next.SelectedSkill))
	}

	if prev.SortBy != next.SortBy {
		errs = append(errs, s.SaveSortBy(ctx, next.SortBy))
	}

	if prev.PetSkillFilter != next.PetSkillFilter {
		errs = append(errs, s.SavePetSkillFilter(ctx, next.PetSkillFilter))
	}

	if !prev.ActiveRarities.Equal(next.ActiveRarities) {
		errs = append(errs, s.SaveActiveRarities(ctx, next.ActiveRarities))
	}

	if prev.CompactMode != next.CompactMode {
		errs = append(errs, s.SaveCompactMode(ctx, next.CompactMode))
	}

	return errors.Join(errs...)
}

func (s *Service) set(ctx context.Context, key, raw string, ttl time.Duration) error {
	if err := s.kv.Set(ctx, key, raw, ttl); err != nil {
		return domain.WrapError(err, errcodes.PreferenceStoreFailed, "save preference "+key)
	}

	logger(ctx).DebugContext(ctx, "preference saved", slog.String(logx.FieldPreference, key))

	return nil
}
