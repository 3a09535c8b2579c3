package cache

import (
	gocache "github.com/patrickmn/go-cache"
)

// SeenSet remembers questions that were already answered during this run so
// text that stays on screen across polling cycles is not re-asked. It grows
// monotonically and is never persisted; a new watcher starts empty.
type SeenSet struct {
	cache *gocache.Cache
}

// NewSeenSet creates an empty set.
func NewSeenSet() *SeenSet {
	return &SeenSet{cache: gocache.New(gocache.NoExpiration, 0)}
}

// Add marks a question as answered.
func (s *SeenSet) Add(question string) {
	s.cache.Set(question, struct{}{}, gocache.NoExpiration)
}

// Has reports whether a question was already answered.
func (s *SeenSet) Has(question string) bool {
	_, found := s.cache.Get(question)
	return found
}

// Len returns the number of answered questions.
func (s *SeenSet) Len() int {
	return s.cache.ItemCount()
}
