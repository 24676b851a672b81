package interfaces

// CacheService memoizes generated text per key for the lifetime of the
// process. The producer runs at most once per key, including under
// concurrent access; there is no TTL and no eviction. Kept behind an
// interface so an evicting implementation can be swapped in later.
type CacheService interface {
	// GetOrCompute returns the memoized value for key, invoking produce
	// only on the first call for that key. Producer errors are retained
	// like values.
	GetOrCompute(key string, produce func() (string, error)) (string, error)

	// Len returns the number of retained entries.
	Len() int
}
