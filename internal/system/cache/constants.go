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
	"strings"
	"time"
)

// EvictionPolicy defines the eviction policy for cache entries.
type EvictionPolicy string

const (
	// EvictionPolicyLRU evicts the entry that was accessed least recently.
	EvictionPolicyLRU EvictionPolicy = "LRU"
	// EvictionPolicyLFU evicts the entry with the fewest accesses.
	EvictionPolicyLFU EvictionPolicy = "LFU"
	// EvictionPolicyFIFO evicts the entry that was inserted first.
	EvictionPolicyFIFO EvictionPolicy = "FIFO"
)

// ParseEvictionPolicy resolves a configured policy name, ignoring case.
func ParseEvictionPolicy(value string) (EvictionPolicy, bool) {
	switch EvictionPolicy(strings.ToUpper(strings.TrimSpace(value))) {
	case EvictionPolicyLRU:
		return EvictionPolicyLRU, true
	case EvictionPolicyLFU:
		return EvictionPolicyLFU, true
	case EvictionPolicyFIFO:
		return EvictionPolicyFIFO, true
	default:
		return "", false
	}
}

const (
	// DefaultCacheSize is the default maximum number of entries held by a cache.
	DefaultCacheSize = 1000
	// DefaultCleanupInterval is the default interval of the background expiry sweep.
	DefaultCleanupInterval = 60 * time.Second
	// DefaultCacheName is the name of the process wide default cache.
	DefaultCacheName = "default"
	// NoExpiry is reported as the remaining TTL of entries that never expire.
	NoExpiry time.Duration = -1
)

const (
	loggerComponentName = "CacheStore"
	keySeparator        = ":"
)
