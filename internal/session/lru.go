package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultMaxEntries = 1000
	DefaultTTL        = 30 * time.Minute
)

// lruStore is an in-memory Store backed by an expirable LRU. Old sessions
// age out after the TTL, and the size cap bounds memory under abuse.
type lruStore struct {
	cache *expirable.LRU[string, *Session]
}

var _ Store = (*lruStore)(nil)

// Config controls the in-memory store.
type Config struct {
	MaxEntries int
	TTL        time.Duration
}

// NewStore creates an in-memory session store.
func NewStore(cfg Config) Store {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &lruStore{
		cache: expirable.NewLRU[string, *Session](cfg.MaxEntries, nil, cfg.TTL),
	}
}

func (s *lruStore) Get(id string) (*Session, bool) {
	return s.cache.Get(id)
}

func (s *lruStore) Put(sess *Session) {
	s.cache.Add(sess.ID, sess)
}

func (s *lruStore) Evict(id string) {
	s.cache.Remove(id)
}
