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

package cache

import (
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/asgardeo/cachengine/internal/system/config"
	"github.com/asgardeo/cachengine/internal/system/log"
)

const registryLoggerComponentName = "CacheRegistry"

// managedCache is the type independent view of a store held by the registry.
type managedCache interface {
	Name() string
	GetStats() *CacheStat
	CleanupExpired() int
	Clear() bool
	Destroy()
}

// Registry owns the caches of a process: the default cache and the named caches built
// from configuration. It is created once at startup and handed to the consumers.
type Registry struct {
	cacheConfig  config.CacheConfig
	caches       map[string]managedCache
	defaultCache *Store[any]
	mu           sync.RWMutex
}

// NewRegistry creates a registry that builds caches according to the given configuration.
func NewRegistry(cacheConfig config.CacheConfig) *Registry {
	return &Registry{
		cacheConfig: cacheConfig,
		caches:      make(map[string]managedCache),
	}
}

// Default returns the process wide default cache, creating it on first use.
func (r *Registry) Default() *Store[any] {
	r.mu.RLock()
	if r.defaultCache != nil {
		defaultCache := r.defaultCache
		r.mu.RUnlock()
		return defaultCache
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.defaultCache == nil {
		r.defaultCache = NewCache[any](DefaultCacheName, r.optionsFor(DefaultCacheName))
	}
	return r.defaultCache
}

// GetCache returns the named cache holding values of type T, creating it from the registry
// configuration on first use. The same name used with different value types yields distinct caches.
func GetCache[T any](r *Registry, cacheName string) *Store[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, registryLoggerComponentName))

	var t T
	typeName := reflect.TypeOf(&t).Elem().String()
	registryKey := cacheName + keySeparator + typeName

	r.mu.RLock()
	if existing, exists := r.caches[registryKey]; exists {
		r.mu.RUnlock()
		return existing.(*Store[T])
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.caches[registryKey]; exists {
		return existing.(*Store[T])
	}

	options := r.optionsFor(cacheName)
	logger.Debug("Creating new cache", log.String(log.LoggerKeyCacheName, cacheName), log.String("type", typeName),
		log.Bool("disabled", options.Disabled))
	store := NewCache[T](cacheName, options)
	r.caches[registryKey] = store

	return store
}

// Stats returns the statistics of every cache that tracks them, ordered by cache name.
func (r *Registry) Stats() []CacheStat {
	stats := make([]CacheStat, 0)
	for _, c := range r.snapshot() {
		if stat := c.GetStats(); stat != nil {
			stats = append(stats, *stat)
		}
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Name < stats[j].Name
	})
	return stats
}

// CleanupExpired sweeps every cache with the given name. The second result is false
// when no such cache exists.
func (r *Registry) CleanupExpired(cacheName string) (int, bool) {
	cleaned, found := 0, false
	for _, c := range r.snapshot() {
		if c.Name() == cacheName {
			cleaned += c.CleanupExpired()
			found = true
		}
	}
	return cleaned, found
}

// Clear removes all entries of every cache with the given name and reports whether one existed.
func (r *Registry) Clear(cacheName string) bool {
	found := false
	for _, c := range r.snapshot() {
		if c.Name() == cacheName {
			c.Clear()
			found = true
		}
	}
	return found
}

// Close destroys every cache owned by the registry, the default cache included.
// Caches requested after Close are created afresh.
func (r *Registry) Close() {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, registryLoggerComponentName))

	r.mu.Lock()
	caches := make([]managedCache, 0, len(r.caches)+1)
	for _, c := range r.caches {
		caches = append(caches, c)
	}
	if r.defaultCache != nil {
		caches = append(caches, r.defaultCache)
	}
	r.caches = make(map[string]managedCache)
	r.defaultCache = nil
	r.mu.Unlock()

	for _, c := range caches {
		c.Destroy()
	}

	logger.Debug("All caches destroyed", log.Int("count", len(caches)))
}

// snapshot returns the caches currently held, including the default cache if it was created.
func (r *Registry) snapshot() []managedCache {
	r.mu.RLock()
	defer r.mu.RUnlock()

	caches := make([]managedCache, 0, len(r.caches)+1)
	for _, c := range r.caches {
		caches = append(caches, c)
	}
	if r.defaultCache != nil {
		caches = append(caches, r.defaultCache)
	}
	return caches
}

// optionsFor resolves the store options of a cache from its property block and the global settings.
func (r *Registry) optionsFor(cacheName string) Options {
	cacheConfig := r.cacheConfig
	property, _ := cacheConfig.GetCacheProperty(cacheName)

	opts := DefaultOptions()
	opts.Disabled = cacheConfig.Disabled || property.Disabled
	opts.StatsEnabled = !property.DisableStats
	opts.MaxSize = firstPositive(property.Size, cacheConfig.Size, DefaultCacheSize)
	opts.DefaultTTL = time.Duration(firstPositive(property.TTL, cacheConfig.TTL, 0)) * time.Second
	opts.EvictionPolicy = getEvictionPolicy(cacheConfig, property)
	opts.CleanupInterval = getCleanupInterval(cacheConfig, property)

	return opts
}

// getEvictionPolicy retrieves the eviction policy from the cache configuration.
func getEvictionPolicy(cacheConfig config.CacheConfig, cacheProperty config.CacheProperty) EvictionPolicy {
	evictionPolicy := cacheProperty.EvictionPolicy
	if evictionPolicy == "" {
		evictionPolicy = cacheConfig.EvictionPolicy
	}
	if evictionPolicy == "" {
		return EvictionPolicyLRU
	}

	policy, ok := ParseEvictionPolicy(evictionPolicy)
	if !ok {
		log.GetLogger().Warn("Unknown eviction policy, defaulting to LRU",
			log.String("evictionPolicy", evictionPolicy))
		return EvictionPolicyLRU
	}
	return policy
}

// getCleanupInterval retrieves the cleanup interval from the cache configuration.
// A negative value disables the sweep.
func getCleanupInterval(cacheConfig config.CacheConfig, cacheProperty config.CacheProperty) time.Duration {
	interval := cacheProperty.CleanupInterval
	if interval == 0 {
		interval = cacheConfig.CleanupInterval
	}
	if interval < 0 {
		return 0
	}
	if interval == 0 {
		return DefaultCleanupInterval
	}

	return time.Duration(interval) * time.Second
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
