// Package cache provides process-lifetime memoization of generated text.
// Producers run at most once per key; entries are never evicted.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/limes/internal/interfaces"
	"github.com/ternarybob/limes/internal/models"
)

// descriptionKeyLength caps how much of a raw description contributes to
// its cache key.
const descriptionKeyLength = 100

// entry holds one memoized result. The sync.Once guarantees the producer
// runs exactly once even when concurrent callers race on the same key.
type entry struct {
	once  sync.Once
	value string
	err   error
}

// Service is the compute-if-absent cache.
type Service struct {
	mu      sync.Mutex
	entries map[string]*entry
	logger  arbor.ILogger
}

// NewService creates an empty cache.
func NewService(logger arbor.ILogger) *Service {
	return &Service{
		entries: make(map[string]*entry),
		logger:  logger,
	}
}

// GetOrCompute returns the memoized value for key, invoking produce only
// on the first call. Producer errors are retained like values, so a
// failing producer is also never re-run; producers are pure functions of
// already-available inputs, so a retry would fail identically.
func (s *Service) GetOrCompute(key string, produce func() (string, error)) (string, error) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		e = &entry{}
		s.entries[key] = e
	}
	s.mu.Unlock()

	e.once.Do(func() {
		e.value, e.err = produce()
		s.logger.Debug().Str("key", key).Msg("Cache entry computed")
	})
	return e.value, e.err
}

// Len returns the number of retained entries.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Key derives the cache key for a raw description: its first 100 runes.
func Key(description string) string {
	runes := []rune(description)
	if len(runes) > descriptionKeyLength {
		runes = runes[:descriptionKeyLength]
	}
	return string(runes)
}

// ModelKey fingerprints a structured model as a hex sha256 of its
// canonical JSON encoding.
func ModelKey(model *models.ThreatModel) string {
	data, err := json.Marshal(model)
	if err != nil {
		// Marshal of plain value records cannot fail; fall back to the
		// name so a key always exists.
		return "model:" + model.Name
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Ensure Service implements CacheService interface
var _ interfaces.CacheService = (*Service)(nil)
