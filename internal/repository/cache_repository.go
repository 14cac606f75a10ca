package repository

// CacheRepository is a transient key/value store used to memoize computed
// reports for stored scenarios. Implementations must treat entries as
// disposable; the engine recomputes on any miss.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
