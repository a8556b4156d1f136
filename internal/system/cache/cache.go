/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package cache provides a bounded in-process key/value cache with per entry TTL,
// pluggable eviction policies, usage statistics and a background expiry sweep.
package cache

import (
	"sync"
	"time"

	"github.com/asgardeo/cachengine/internal/system/log"
)

// Store is a bounded, TTL aware cache of values of type T keyed by non-empty strings.
//
// Reads expire lazily: Get and Has delete an expired entry they come across, so they
// mutate the store even though they look read only. Values and Entries only skip expired
// entries. CleanupExpired removes expired entries that are never read again.
type Store[T any] struct {
	name            string
	enabled         bool
	capacity        int
	defaultTTL      time.Duration
	policy          EvictionPolicy
	strategy        evictionStrategy[T]
	entries         map[string]*Entry[T]
	stats           *statsTracker
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	stopOnce        sync.Once
	clock           func() time.Time
	logger          *log.Logger
	mu              sync.RWMutex
}

// NewCache creates a new cache store with the given options and starts its expiry sweep.
// Destroy must be called once the store is no longer needed.
func NewCache[T any](name string, opts Options) *Store[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyCacheName, name))

	capacity := opts.MaxSize
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}

	strategy, policy, known := newEvictionStrategy[T](opts.EvictionPolicy)
	if !known {
		logger.Warn("Unknown eviction policy, defaulting to LRU",
			log.String("evictionPolicy", string(opts.EvictionPolicy)))
	}

	s := &Store[T]{
		name:            name,
		enabled:         !opts.Disabled,
		capacity:        capacity,
		defaultTTL:      opts.DefaultTTL,
		policy:          policy,
		strategy:        strategy,
		entries:         make(map[string]*Entry[T]),
		cleanupInterval: opts.CleanupInterval,
		clock:           time.Now,
		logger:          logger,
	}
	s.stats = newStatsTracker(opts.StatsEnabled && s.enabled, s.clock())

	if !s.enabled {
		logger.Debug("Cache is disabled, writes will be ignored")
		return s
	}

	logger.Debug("Initializing in-memory cache", log.String("evictionPolicy", string(policy)),
		log.Int("size", capacity), log.Duration("defaultTTL", opts.DefaultTTL))
	s.startCleanupRoutine()

	return s
}

// NewLRUCache creates a store that evicts the least recently used entry.
func NewLRUCache[T any](name string, opts Options) *Store[T] {
	opts.EvictionPolicy = EvictionPolicyLRU
	return NewCache[T](name, opts)
}

// NewLFUCache creates a store that evicts the least frequently used entry.
func NewLFUCache[T any](name string, opts Options) *Store[T] {
	opts.EvictionPolicy = EvictionPolicyLFU
	return NewCache[T](name, opts)
}

// NewFIFOCache creates a store that evicts the oldest inserted entry.
func NewFIFOCache[T any](name string, opts Options) *Store[T] {
	opts.EvictionPolicy = EvictionPolicyFIFO
	return NewCache[T](name, opts)
}

// Name returns the name of the cache.
func (s *Store[T]) Name() string {
	return s.name
}

// IsEnabled returns whether the cache is enabled.
func (s *Store[T]) IsEnabled() bool {
	return s.enabled
}

// Capacity returns the maximum number of entries.
func (s *Store[T]) Capacity() int {
	return s.capacity
}

// Policy returns the eviction policy in effect.
func (s *Store[T]) Policy() EvictionPolicy {
	return s.policy
}

// Set adds or replaces the value stored under key.
// When key is new and the store is full, exactly one entry is evicted first, expired or not.
func (s *Store[T]) Set(key string, value T, opts ...SetOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setLocked(key, value, opts)
}

// Get returns the live value stored under key. An expired entry is deleted and reported as a miss.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getLocked(key)
}

// GetOrDefault returns the live value stored under key, or def when there is none.
func (s *Store[T]) GetOrDefault(key string, def T) T {
	if value, found := s.Get(key); found {
		return value
	}
	return def
}

// Has reports whether key holds a live value. It deletes an expired entry like Get does,
// but leaves the statistics and the access bookkeeping untouched.
func (s *Store[T]) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.hasLocked(key)
}

// RemainingTTL returns how long the entry under key stays live, or NoExpiry for entries
// without a TTL. The second result is false when there is no live entry.
func (s *Store[T]) RemainingTTL(key string) (time.Duration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.entries[key]
	now := s.clock()
	if !exists || entry.IsExpired(now) {
		return 0, false
	}
	return entry.RemainingTTL(now), true
}

// Delete removes the entry under key and reports whether it existed.
func (s *Store[T]) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deleteLocked(key)
}

// Clear removes all entries.
func (s *Store[T]) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*Entry[T])
	s.stats.updateSize(0)

	s.logger.Debug("Cleared all entries in the cache")
	return true
}

// Size returns the number of stored entries, including expired ones not yet removed.
func (s *Store[T]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Keys returns every stored key, including keys of expired entries not yet removed.
func (s *Store[T]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	return keys
}

// Values returns the live values. Expired entries are skipped but not deleted.
func (s *Store[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.clock()
	values := make([]T, 0, len(s.entries))
	for _, entry := range s.entries {
		if !entry.IsExpired(now) {
			values = append(values, entry.value)
		}
	}
	return values
}

// Entries returns the live key/value pairs. Expired entries are skipped but not deleted.
func (s *Store[T]) Entries() []KeyValue[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.clock()
	pairs := make([]KeyValue[T], 0, len(s.entries))
	for key, entry := range s.entries {
		if !entry.IsExpired(now) {
			pairs = append(pairs, KeyValue[T]{Key: key, Value: entry.value})
		}
	}
	return pairs
}

// GetStats returns a snapshot of the cache statistics, or nil when statistics are disabled.
func (s *Store[T]) GetStats() *CacheStat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stat := s.stats.snapshot()
	if stat == nil {
		return nil
	}
	stat.Name = s.name
	stat.Enabled = s.enabled
	stat.EvictionPolicy = s.policy
	stat.MaxSize = s.capacity
	return stat
}

// ResetStats zeroes the hit, miss and eviction counters.
func (s *Store[T]) ResetStats() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.reset(s.clock())
	return true
}

// setLocked writes a value. The caller must hold the write lock.
func (s *Store[T]) setLocked(key string, value T, opts []SetOption) error {
	if key == "" {
		return ErrInvalidCacheKey
	}
	if !s.enabled {
		return nil
	}

	ttl, hasTTL := s.resolveTTL(opts)
	now := s.clock()

	// Update existing entry if an entry exists
	if existing, exists := s.entries[key]; exists {
		existing.ReplaceValue(value, now)
		existing.reset(ttl, hasTTL, now)
		return nil
	}

	if len(s.entries) >= s.capacity {
		s.evictLocked()
	}

	s.entries[key] = newEntry(value, ttl, hasTTL, now)
	s.stats.updateSize(len(s.entries))

	return nil
}

// getLocked reads a value and records the hit or miss. The caller must hold the write lock.
func (s *Store[T]) getLocked(key string) (T, bool) {
	var zero T
	if key == "" || !s.enabled {
		return zero, false
	}

	entry, exists := s.entries[key]
	if !exists {
		s.stats.recordMiss()
		return zero, false
	}

	now := s.clock()
	if entry.IsExpired(now) {
		delete(s.entries, key)
		s.stats.updateSize(len(s.entries))
		s.stats.recordMiss()
		return zero, false
	}

	s.stats.recordHit()
	return entry.Touch(now), true
}

// hasLocked checks for a live entry without bookkeeping. The caller must hold the write lock.
func (s *Store[T]) hasLocked(key string) bool {
	entry, exists := s.entries[key]
	if !exists {
		return false
	}
	if entry.IsExpired(s.clock()) {
		delete(s.entries, key)
		s.stats.updateSize(len(s.entries))
		return false
	}
	return true
}

// deleteLocked removes an entry. The caller must hold the write lock.
func (s *Store[T]) deleteLocked(key string) bool {
	if _, exists := s.entries[key]; !exists {
		return false
	}
	delete(s.entries, key)
	s.stats.updateSize(len(s.entries))
	return true
}

// evictLocked removes the entry picked by the eviction strategy. The caller must hold the write lock.
func (s *Store[T]) evictLocked() {
	victim, found := s.strategy.selectVictim(s.entries)
	if !found {
		return
	}

	delete(s.entries, victim)
	s.stats.recordEvictions(1)
	s.stats.updateSize(len(s.entries))

	s.logger.Debug("Cache entry evicted", log.String("key", victim),
		log.String("evictionPolicy", string(s.policy)))
}

// resolveTTL applies the per call options on top of the store default TTL.
func (s *Store[T]) resolveTTL(opts []SetOption) (time.Duration, bool) {
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case o.noExpiry:
		return 0, false
	case o.ttlSet:
		return o.ttl, true
	case s.defaultTTL > 0:
		return s.defaultTTL, true
	default:
		return 0, false
	}
}
