package cache

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/limes/internal/models"
)

func newTestService() *Service {
	return NewService(arbor.NewLogger())
}

func TestGetOrComputeMemoizes(t *testing.T) {
	svc := newTestService()
	calls := 0

	for i := 0; i < 3; i++ {
		value, err := svc.GetOrCompute("k", func() (string, error) {
			calls++
			return "result", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "result", value)
	}

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, svc.Len())
}

func TestGetOrComputeDistinctKeys(t *testing.T) {
	svc := newTestService()

	a, _ := svc.GetOrCompute("a", func() (string, error) { return "alpha", nil })
	b, _ := svc.GetOrCompute("b", func() (string, error) { return "beta", nil })

	assert.Equal(t, "alpha", a)
	assert.Equal(t, "beta", b)
	assert.Equal(t, 2, svc.Len())
}

func TestGetOrComputeExactlyOnceUnderConcurrency(t *testing.T) {
	svc := newTestService()
	var calls atomic.Int32

	const goroutines = 32
	var wg sync.WaitGroup
	results := make([]string, goroutines)
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			value, _ := svc.GetOrCompute("shared", func() (string, error) {
				calls.Add(1)
				return "once", nil
			})
			results[i] = value
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, value := range results {
		assert.Equal(t, "once", value)
	}
}

func TestGetOrComputeRetainsErrors(t *testing.T) {
	svc := newTestService()
	calls := 0
	boom := errors.New("boom")

	for i := 0; i < 2; i++ {
		_, err := svc.GetOrCompute("failing", func() (string, error) {
			calls++
			return "", boom
		})
		assert.ErrorIs(t, err, boom)
	}

	// A failing producer is never re-run.
	assert.Equal(t, 1, calls)
}

func TestKeyTruncatesAtHundredRunes(t *testing.T) {
	short := "a short description"
	assert.Equal(t, short, Key(short))

	long := strings.Repeat("x", 150)
	assert.Equal(t, strings.Repeat("x", 100), Key(long))

	// Rune boundaries, not byte boundaries.
	wide := strings.Repeat("é", 150)
	assert.Equal(t, strings.Repeat("é", 100), Key(wide))
}

func TestKeyCollision(t *testing.T) {
	// Descriptions sharing a 100-rune prefix share a cache entry.
	prefix := strings.Repeat("p", 100)
	assert.Equal(t, Key(prefix+"one"), Key(prefix+"two"))
}

func TestModelKey(t *testing.T) {
	model := &models.ThreatModel{
		Name: "Shop",
		Components: []models.Component{
			{Name: "User", Type: models.ComponentTypeUser, Boundary: "Internet"},
		},
	}

	first := ModelKey(model)
	second := ModelKey(model)
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)

	changed := &models.ThreatModel{Name: "Shop v2", Components: model.Components}
	assert.NotEqual(t, first, ModelKey(changed))
}
