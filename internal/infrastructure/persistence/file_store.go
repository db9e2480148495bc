package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"pet_market/pkg/logx"
)

const fileStoreCleanupInterval = 10 * time.Minute

// FileStore keeps preferences in an expiring in-memory cache and mirrors it to
// a JSON file after every write. Expired entries are skipped on load.
type FileStore struct {
	mu    sync.Mutex
	path  string
	cache *cache.Cache
}

func NewFileStore(ctx context.Context, path string) (*FileStore, error) {
	s := &FileStore{
		path:  path,
		cache: cache.New(cache.NoExpiration, fileStoreCleanupInterval),
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// go-cache reads a negative ttl as "never expires".
	if ttl <= 0 {
		s.cache.Delete(key)
	} else {
		s.cache.Set(key, value, ttl)
	}

	return s.persist(ctx)
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	raw, ok := s.cache.Get(key)
	if !ok {
		return "", false, nil
	}

	str, ok := raw.(string)

	return str, ok, nil
}

func (s *FileStore) load(ctx context.Context) error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("os.ReadFile: %w", err)
	}

	var snapshot snapshotSchema
	if err := json.Unmarshal(data, &snapshot); err != nil {
		// A corrupt file must not block startup, preferences just fall back to defaults.
		logger(ctx).WarnContext(ctx, "discarding unreadable preference file",
			slog.String("path", s.path), logx.Error(err))

		return nil
	}

	now := time.Now()
	live := snapshot.live(now)

	for _, e := range live {
		s.cache.Set(e.Key, e.Value, e.ExpiresAt.Sub(now))
	}

	logger(ctx).DebugContext(ctx, "preference file loaded",
		slog.String("path", s.path), slog.Int(logx.FieldCount, len(live)))

	return nil
}

func (s *FileStore) persist(ctx context.Context) error {
	snapshot := newSnapshotSchema(s.cache.Items())
	sort.Slice(snapshot.Entries, func(i, j int) bool {
		return snapshot.Entries[i].Key < snapshot.Entries[j].Key
	})

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("os.MkdirAll: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("os.Rename: %w", err)
	}

	logger(ctx).DebugContext(ctx, "preference file written",
		slog.String("path", s.path), slog.Int(logx.FieldCount, len(snapshot.Entries)))

	return nil
}
