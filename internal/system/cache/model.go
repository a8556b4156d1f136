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
	"time"
)

// Options configures a cache store.
type Options struct {
	// MaxSize is the maximum number of live entries. Non positive values fall back to DefaultCacheSize.
	MaxSize int
	// DefaultTTL applies to Set calls without a TTL option. Zero means entries never expire.
	DefaultTTL time.Duration
	// CleanupInterval is the period of the background expiry sweep. Zero disables the sweep.
	CleanupInterval time.Duration
	// StatsEnabled toggles hit, miss and eviction tracking.
	StatsEnabled bool
	// EvictionPolicy selects the victim when a new key is inserted at capacity.
	EvictionPolicy EvictionPolicy
	// Disabled turns the store into a no-op: writes are dropped and reads always miss.
	Disabled bool
}

// DefaultOptions returns the options used when nothing else is configured.
func DefaultOptions() Options {
	return Options{
		MaxSize:         DefaultCacheSize,
		CleanupInterval: DefaultCleanupInterval,
		StatsEnabled:    true,
		EvictionPolicy:  EvictionPolicyLRU,
	}
}

// setOptions holds the per call options of a write.
type setOptions struct {
	ttl      time.Duration
	ttlSet   bool
	noExpiry bool
}

// SetOption customizes a single write.
type SetOption func(*setOptions)

// WithTTL sets the time to live of the written entry, overriding the store default.
func WithTTL(ttl time.Duration) SetOption {
	return func(o *setOptions) {
		o.ttl = ttl
		o.ttlSet = true
		o.noExpiry = false
	}
}

// WithNoExpiry stores the entry without a TTL even when the store has a default TTL.
func WithNoExpiry() SetOption {
	return func(o *setOptions) {
		o.noExpiry = true
		o.ttlSet = false
	}
}

// SetItem is a single item of a MultiSet call.
type SetItem[T any] struct {
	Key     string
	Value   T
	Options []SetOption
}

// KeyValue is a key and its live value, as returned by Entries.
type KeyValue[T any] struct {
	Key   string
	Value T
}

// CacheStat represents cache statistics.
type CacheStat struct {
	Name            string         `json:"name"`
	Enabled         bool           `json:"enabled"`
	EvictionPolicy  EvictionPolicy `json:"evictionPolicy"`
	Size            int            `json:"size"`
	MaxSize         int            `json:"maxSize"`
	Hits            int64          `json:"hits"`
	Misses          int64          `json:"misses"`
	Evictions       int64          `json:"evictions"`
	TotalOperations int64          `json:"totalOperations"`
	HitRate         float64        `json:"hitRate"`
	MissRate        float64        `json:"missRate"`
	LastCleanupAt   time.Time      `json:"lastCleanupAt"`
}
