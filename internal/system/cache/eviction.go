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

// evictionStrategy selects the entry to drop when a new key is inserted at capacity.
// Implementations hold no state; the order is computed from the entry metadata on every call.
type evictionStrategy[T any] interface {
	selectVictim(entries map[string]*Entry[T]) (string, bool)
}

// newEvictionStrategy returns the strategy for the policy, falling back to LRU for unknown values.
func newEvictionStrategy[T any](policy EvictionPolicy) (evictionStrategy[T], EvictionPolicy, bool) {
	switch policy {
	case EvictionPolicyLRU:
		return lruStrategy[T]{}, EvictionPolicyLRU, true
	case EvictionPolicyLFU:
		return lfuStrategy[T]{}, EvictionPolicyLFU, true
	case EvictionPolicyFIFO:
		return fifoStrategy[T]{}, EvictionPolicyFIFO, true
	default:
		return lruStrategy[T]{}, EvictionPolicyLRU, false
	}
}

// lruStrategy evicts the entry with the oldest last access.
type lruStrategy[T any] struct{}

func (lruStrategy[T]) selectVictim(entries map[string]*Entry[T]) (string, bool) {
	var victimKey string
	var victim *Entry[T]
	for key, entry := range entries {
		if victim == nil || entry.lastAccessedAt.Before(victim.lastAccessedAt) {
			victimKey, victim = key, entry
		}
	}
	return victimKey, victim != nil
}

// lfuStrategy evicts the entry with the fewest accesses.
type lfuStrategy[T any] struct{}

func (lfuStrategy[T]) selectVictim(entries map[string]*Entry[T]) (string, bool) {
	var victimKey string
	var victim *Entry[T]
	for key, entry := range entries {
		if victim == nil || entry.accessCount < victim.accessCount ||
			// Tie-breaker: earlier access time comes first
			(entry.accessCount == victim.accessCount && entry.lastAccessedAt.Before(victim.lastAccessedAt)) {
			victimKey, victim = key, entry
		}
	}
	return victimKey, victim != nil
}

// fifoStrategy evicts the entry that was inserted first.
type fifoStrategy[T any] struct{}

func (fifoStrategy[T]) selectVictim(entries map[string]*Entry[T]) (string, bool) {
	var victimKey string
	var victim *Entry[T]
	for key, entry := range entries {
		if victim == nil || entry.createdAt.Before(victim.createdAt) {
			victimKey, victim = key, entry
		}
	}
	return victimKey, victim != nil
}
