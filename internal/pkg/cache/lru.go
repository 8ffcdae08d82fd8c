package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// lruCache keeps entries in process memory. It backs single-instance
// deployments that run without Redis. Entries share one TTL, fixed at construction.
type lruCache struct {
	mu          sync.Mutex // serializes SetNX
	entries     *expirable.LRU[string, string]
	serviceName string
}

func NewLRUCache(size int, ttl time.Duration, serviceName string) Cache {
	return &lruCache{
		entries:     expirable.NewLRU[string, string](size, nil, ttl),
		serviceName: serviceName,
	}
}

// Set ignores the per-call ttl.
func (l *lruCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	l.entries.Add(key, fmt.Sprint(value))
	return nil
}

func (l *lruCache) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.entries.Peek(key); ok {
		return false, nil
	}
	l.entries.Add(key, fmt.Sprint(value))
	return true, nil
}

func (l *lruCache) Get(_ context.Context, key string) (string, error) {
	v, ok := l.entries.Get(key)
	if !ok {
		return "", nil
	}
	return v, nil
}

func (l *lruCache) GenerateKey(operation, key string) string {
	return generateKey(l.serviceName, operation, key)
}
