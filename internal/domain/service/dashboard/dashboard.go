// Package dashboard owns the fetched results, the live preferences and the
// fetch sequence counter, and turns them into views.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	"pet_market/internal/domain"
	"pet_market/internal/domain/entity"
	"pet_market/internal/domain/service/display"
	"pet_market/internal/domain/service/ranking"
	"pet_market/internal/domain/value"
	"pet_market/pkg/errcodes"
	"pet_market/pkg/logx"
)

const (
	// FetchErrorMessage is shown in place of results after a failed fetch.
	FetchErrorMessage = "Error loading results. Please try again."

	alertDedupTTL    = time.Hour
	alertBufferSize  = 32
	alertCleanupTick = 10 * time.Minute

	operationAnalyze = "analyze"
	operationSearch  = "search"
)

type Gateway interface {
	Analyze(ctx context.Context, skill value.Skill) ([]entity.Item, error)
	Search(ctx context.Context, term string, skill value.Skill) ([]entity.Item, error)
}

type ResultRepository interface {
	Replace(items []entity.Item)
	Current() []entity.Item
}

type PreferenceStore interface {
	Restore(ctx context.Context) (entity.Preferences, error)
	Save(ctx context.Context, prev, next entity.Preferences) error
}

type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

// PreferencesPatch carries the fields to change; nil fields are kept.
type PreferencesPatch struct {
	SelectedSkill  *value.Skill
	SortBy         *value.SortField
	PetSkillFilter *value.Skill
	ActiveRarities *value.RaritySet
	CompactMode    *bool
}

// Apply returns prefs with the patched fields replaced.
func (p PreferencesPatch) Apply(prefs entity.Preferences) entity.Preferences {
	if p.SelectedSkill != nil {
		prefs.SelectedSkill = *p.SelectedSkill
	}

	if p.SortBy != nil {
		prefs.SortBy = *p.SortBy
	}

	if p.PetSkillFilter != nil {
		prefs.PetSkillFilter = *p.PetSkillFilter
	}

	if p.ActiveRarities != nil {
		prefs.ActiveRarities = *p.ActiveRarities
	}

	if p.CompactMode != nil {
		prefs.CompactMode = *p.CompactMode
	}

	return prefs
}

type Service struct {
	gateway   Gateway
	repo      ResultRepository
	prefStore PreferenceStore
	clipboard Clipboard
	deriver   *display.Deriver
	metrics   *Metrics

	seq atomic.Uint64

	mu        sync.Mutex
	prefs     entity.Preferences
	lastError string

	// saveMu keeps persisted preferences in the order they were applied.
	saveMu sync.Mutex

	alerts      chan entity.Alert
	alertsTaken atomic.Bool
	alerted     *cache.Cache
	now         func() time.Time
}

func NewService(
	gateway Gateway,
	repo ResultRepository,
	prefStore PreferenceStore,
	clipboard Clipboard,
	deriver *display.Deriver,
	metrics *Metrics,
) *Service {
	if deriver == nil {
		deriver = display.NewDeriver()
	}

	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	return &Service{
		gateway:   gateway,
		repo:      repo,
		prefStore: prefStore,
		clipboard: clipboard,
		deriver:   deriver,
		metrics:   metrics,
		prefs:     entity.DefaultPreferences(),
		alerts:    make(chan entity.Alert, alertBufferSize),
		alerted:   cache.New(alertDedupTTL, alertCleanupTick),
		now:       time.Now,
	}
}

// Init restores preferences and performs the initial analyze.
func (s *Service) Init(ctx context.Context) (entity.View, error) {
	s.RestorePreferences(ctx)

	return s.Analyze(ctx)
}

// RestorePreferences loads the persisted preferences, falling back to defaults
// per key.
func (s *Service) RestorePreferences(ctx context.Context) entity.Preferences {
	prefs, err := s.prefStore.Restore(ctx)
	if err != nil {
		logger(ctx).WarnContext(ctx, "preferences restored with defaults", logx.Error(err))
	}

	s.mu.Lock()
	s.prefs = prefs
	s.mu.Unlock()

	logger(ctx).InfoContext(ctx, "preferences restored",
		slog.String(logx.FieldSkill, prefs.SelectedSkill.String()),
		slog.String("sort-by", prefs.SortBy.String()),
		slog.String("rarities", prefs.ActiveRarities.String()),
	)

	return prefs
}

// Analyze refetches the full list for the selected skill.
func (s *Service) Analyze(ctx context.Context) (entity.View, error) {
	skill := s.Preferences().SelectedSkill

	return s.fetch(ctx, operationAnalyze, func(ctx context.Context) ([]entity.Item, error) {
		return s.gateway.Analyze(ctx, skill)
	})
}

// Search replaces the results with items matching term.
func (s *Service) Search(ctx context.Context, term string) (entity.View, error) {
	return s.SearchSkill(ctx, term, s.Preferences().SelectedSkill)
}

// SearchSkill searches with skill instead of the selected one, without
// changing preferences.
func (s *Service) SearchSkill(ctx context.Context, term string, skill value.Skill) (entity.View, error) {
	term = strings.TrimSpace(term)

	return s.fetch(ctx, operationSearch, func(ctx context.Context) ([]entity.Item, error) {
		return s.gateway.Search(ctx, term, skill)
	})
}

// fetch applies a response only if no newer fetch was issued while it ran.
// A superseded response, successful or not, yields ErrStaleResponse.
func (s *Service) fetch(
	ctx context.Context,
	operation string,
	call func(ctx context.Context) ([]entity.Item, error),
) (entity.View, error) {
	seq := s.seq.Add(1)
	log := logger(ctx).With(slog.String(logx.FieldOperation, operation), slog.Uint64(logx.FieldSequence, seq))

	items, err := call(ctx)

	s.mu.Lock()

	if latest := s.seq.Load(); seq != latest {
		s.mu.Unlock()
		s.metrics.fetches.WithLabelValues(operation, resultStale).Inc()
		log.DebugContext(ctx, "stale response discarded", slog.Uint64("latest", latest))

		return entity.View{}, domain.ErrStaleResponse
	}

	if err != nil {
		s.lastError = FetchErrorMessage
		view := s.viewLocked()
		s.mu.Unlock()

		s.metrics.fetches.WithLabelValues(operation, resultFailed).Inc()
		log.ErrorContext(ctx, "fetch failed", logx.Error(err))

		if !domain.IsAppError(err) {
			err = domain.WrapError(err, errcodes.FetchFailed, operation)
		}

		return view, err
	}

	s.repo.Replace(items)
	s.lastError = ""
	view := s.viewLocked()
	s.mu.Unlock()

	s.metrics.fetches.WithLabelValues(operation, resultApplied).Inc()
	s.metrics.items.Set(float64(len(items)))
	log.InfoContext(ctx, "results updated",
		slog.Int(logx.FieldCount, len(items)), slog.Int("visible", len(view.Records)))

	s.raiseAlerts(ctx, view.Records)

	return view, nil
}

func (s *Service) View() entity.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viewLocked()
}

func (s *Service) viewLocked() entity.View {
	visible := ranking.Apply(s.repo.Current(), s.prefs)

	return entity.View{
		Records:     s.deriver.Derive(visible),
		CompactMode: s.prefs.CompactMode,
		Error:       s.lastError,
	}
}

func (s *Service) Preferences() entity.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.prefs
}

// UpdatePreferences applies patch, persists the changed keys and re-derives.
// A changed selected skill refetches, as the skill drives backend-side metrics.
func (s *Service) UpdatePreferences(ctx context.Context, patch PreferencesPatch) (entity.View, error) {
	return s.updatePreferences(ctx, patch.Apply)
}

func (s *Service) updatePreferences(
	ctx context.Context,
	change func(entity.Preferences) entity.Preferences,
) (entity.View, error) {
	prev, next := s.applyPreferences(ctx, change)

	if prev.SelectedSkill != next.SelectedSkill {
		view, err := s.Analyze(ctx)
		if errors.Is(err, domain.ErrStaleResponse) {
			return s.View(), nil
		}

		return view, err
	}

	return s.View(), nil
}

// applyPreferences swaps in change(current) and persists the difference.
// Concurrent callers are applied and saved one at a time, in the same order.
func (s *Service) applyPreferences(
	ctx context.Context,
	change func(entity.Preferences) entity.Preferences,
) (prev, next entity.Preferences) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	prev = s.prefs
	next = change(prev)
	s.prefs = next
	s.mu.Unlock()

	if err := s.prefStore.Save(ctx, prev, next); err != nil {
		// The in-memory preferences still apply for this session.
		logger(ctx).WarnContext(ctx, "preferences not persisted", logx.Error(err))
	}

	return prev, next
}

// ToggleRarity flips one tier in the active set.
func (s *Service) ToggleRarity(ctx context.Context, r value.Rarity) (entity.View, error) {
	if !r.IsKnown() {
		return entity.View{}, domain.NewError(errcodes.InvalidRarity, "unknown rarity "+r.String())
	}

	return s.updatePreferences(ctx, func(prefs entity.Preferences) entity.Preferences {
		prefs.ActiveRarities = prefs.ActiveRarities.Toggle(r)
		return prefs
	})
}

func (s *Service) SetCompactMode(ctx context.Context, compact bool) (entity.View, error) {
	return s.UpdatePreferences(ctx, PreferencesPatch{CompactMode: &compact})
}

// CopyReference writes the in-game command for an auction to the clipboard and
// returns it.
func (s *Service) CopyReference(ctx context.Context, uuid string) (string, error) {
	uuid = strings.TrimSpace(uuid)
	if uuid == "" || uuid == value.Placeholder {
		return "", domain.NewError(errcodes.InvalidAuctionReference, "auction reference is empty")
	}

	payload := display.CopyPayload(uuid)

	if err := s.clipboard.Copy(ctx, payload); err != nil {
		return "", err
	}

	return payload, nil
}

// Alerts delivers newly alerting records, each at most once per hour.
// Alerts are only raised once the channel has been taken.
func (s *Service) Alerts() <-chan entity.Alert {
	s.alertsTaken.Store(true)

	return s.alerts
}

func (s *Service) raiseAlerts(ctx context.Context, records []entity.DisplayRecord) {
	if !s.alertsTaken.Load() {
		return
	}

	for _, record := range records {
		if !record.Alert {
			continue
		}

		key := record.Name + "|" + record.Rarity.String() + "|" + record.High.UUID
		if _, found := s.alerted.Get(key); found {
			continue
		}

		select {
		case s.alerts <- entity.Alert{Record: record, DetectedAt: s.now()}:
			s.alerted.Set(key, true, cache.DefaultExpiration)
			s.metrics.alerts.Inc()
		default:
			logger(ctx).WarnContext(ctx, "alert dropped, buffer is full",
				slog.String(logx.FieldItemName, record.Name))
		}
	}
}
