package preference_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"pet_market/internal/domain"
	"pet_market/internal/domain/entity"
	"pet_market/internal/domain/service/preference"
	"pet_market/internal/domain/value"
	"pet_market/pkg/errcodes"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// memoryKV expires entries against a mock clock.
type memoryKV struct {
	mu      sync.Mutex
	clock   clock.Clock
	entries map[string]entry
	getErr  error
}

func newMemoryKV(c clock.Clock) *memoryKV {
	return &memoryKV{clock: c, entries: map[string]entry{}}
}

func (m *memoryKV) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ttl <= 0 {
		delete(m.entries, key)
		return nil
	}

	m.entries[key] = entry{value: value, expiresAt: m.clock.Now().Add(ttl)}

	return nil
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getErr != nil {
		return "", false, m.getErr
	}

	e, ok := m.entries[key]
	if !ok || !m.clock.Now().Before(e.expiresAt) {
		return "", false, nil
	}

	return e.value, true, nil
}

func TestRestoreDefaults(t *testing.T) {
	rq := require.New(t)

	svc := preference.NewService(newMemoryKV(clock.NewMock()), 0)

	prefs, err := svc.Restore(context.Background())
	rq.NoError(err)
	rq.True(prefs.Equal(entity.DefaultPreferences()))
	rq.Equal(value.SortByProfit, prefs.SortBy)
	rq.Equal(value.SkillAll, prefs.SelectedSkill)
	rq.Equal(len(value.Rarities()), prefs.ActiveRarities.Len())
}

func TestRoundTrip(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := preference.NewService(newMemoryKV(clock.NewMock()), time.Hour)

	rq.NoError(svc.SaveSelectedSkill(ctx, value.SkillMining))
	rq.NoError(svc.SaveSortBy(ctx, value.SortByCoinsPerXP))
	rq.NoError(svc.SavePetSkillFilter(ctx, value.SkillFishing))
	rq.NoError(svc.SaveActiveRarities(ctx, value.NewRaritySet(value.RarityLegendary, value.RarityEpic)))
	rq.NoError(svc.SaveCompactMode(ctx, true))

	expected := entity.Preferences{
		SelectedSkill:  value.SkillMining,
		SortBy:         value.SortByCoinsPerXP,
		PetSkillFilter: value.SkillFishing,
		ActiveRarities: value.NewRaritySet(value.RarityEpic, value.RarityLegendary),
		CompactMode:    true,
	}

	prefs, err := svc.Restore(ctx)
	rq.NoError(err)
	rq.True(expected.Equal(prefs), "got %+v", prefs)

	again, err := svc.Restore(ctx)
	rq.NoError(err)
	rq.True(prefs.Equal(again))
}

func TestExpiry(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	mock := clock.NewMock()

	svc := preference.NewService(newMemoryKV(mock), preference.DefaultTTL)

	rq.NoError(svc.SaveSortBy(ctx, value.SortByHighPrice))
	mock.Add(preference.DefaultTTL / 2)
	rq.NoError(svc.SaveCompactMode(ctx, true))

	mock.Add(preference.DefaultTTL/2 - time.Second)

	prefs, err := svc.Restore(ctx)
	rq.NoError(err)
	rq.Equal(value.SortByHighPrice, prefs.SortBy)

	mock.Add(time.Second)

	prefs, err = svc.Restore(ctx)
	rq.NoError(err)
	rq.Equal(value.SortByProfit, prefs.SortBy)
	rq.True(prefs.CompactMode)
}

func TestEmptyRaritiesRestoreAll(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	kv := newMemoryKV(clock.NewMock())

	svc := preference.NewService(kv, time.Hour)

	rq.NoError(svc.SaveActiveRarities(ctx, value.NewRaritySet(value.RarityMythic)))
	rq.NoError(svc.SaveActiveRarities(ctx, value.NewRaritySet()))

	_, ok, err := kv.Get(ctx, preference.KeyActiveRarities)
	rq.NoError(err)
	rq.False(ok)

	prefs, err := svc.Restore(ctx)
	rq.NoError(err)
	rq.True(prefs.ActiveRarities.Equal(value.AllRarities()))
}

func TestRestoreIgnoresGarbage(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	kv := newMemoryKV(clock.NewMock())

	rq.NoError(kv.Set(ctx, preference.KeySortBy, "volume", time.Hour))
	rq.NoError(kv.Set(ctx, preference.KeySelectedSkill, "Cooking", time.Hour))
	rq.NoError(kv.Set(ctx, preference.KeyCompactMode, "maybe", time.Hour))
	rq.NoError(kv.Set(ctx, preference.KeyActiveRarities, "DIVINE,,SPECIAL", time.Hour))
	rq.NoError(kv.Set(ctx, preference.KeyPetSkillFilter, "mining", time.Hour))

	prefs, err := preference.NewService(kv, time.Hour).Restore(ctx)
	rq.NoError(err)
	rq.Equal(value.SortByProfit, prefs.SortBy)
	rq.Equal(value.SkillAll, prefs.SelectedSkill)
	rq.False(prefs.CompactMode)
	rq.True(prefs.ActiveRarities.Equal(value.AllRarities()))
	rq.Equal(value.SkillMining, prefs.PetSkillFilter)
}

func TestRestoreBackendFailure(t *testing.T) {
	rq := require.New(t)

	kv := newMemoryKV(clock.NewMock())
	kv.getErr = errors.New("connection refused")

	prefs, err := preference.NewService(kv, time.Hour).Restore(context.Background())
	rq.Error(err)
	rq.True(domain.HasCode(err, errcodes.PreferenceStoreFailed))
	rq.True(prefs.Equal(entity.DefaultPreferences()))
}

func TestSaveOnlyChangedKeys(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	kv := newMemoryKV(clock.NewMock())

	svc := preference.NewService(kv, time.Hour)

	prev := entity.DefaultPreferences()
	next := prev
	next.SortBy = value.SortByLowPrice
	next.ActiveRarities = prev.ActiveRarities.Toggle(value.RarityCommon)

	rq.NoError(svc.Save(ctx, prev, next))

	_, ok, err := kv.Get(ctx, preference.KeySelectedSkill)
	rq.NoError(err)
	rq.False(ok)

	raw, ok, err := kv.Get(ctx, preference.KeyActiveRarities)
	rq.NoError(err)
	rq.True(ok)
	rq.Equal("UNCOMMON,RARE,EPIC,LEGENDARY,MYTHIC", raw)

	prefs, err := svc.Restore(ctx)
	rq.NoError(err)
	rq.True(next.Equal(prefs))
}
