package dto

// CacheInvalidationMessage is the in-process message asking the cache
// worker to drop every entry under a key prefix.
type CacheInvalidationMessage struct {
	Prefix string `json:"prefix"`
}
