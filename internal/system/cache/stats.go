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

import "time"

// statsTracker accumulates the usage counters of a store. Guarded by the store lock.
// A disabled tracker ignores every call.
type statsTracker struct {
	enabled       bool
	hits          int64
	misses        int64
	evictions     int64
	size          int
	lastCleanupAt time.Time
}

func newStatsTracker(enabled bool, now time.Time) *statsTracker {
	return &statsTracker{
		enabled:       enabled,
		lastCleanupAt: now,
	}
}

func (st *statsTracker) recordHit() {
	if st.enabled {
		st.hits++
	}
}

func (st *statsTracker) recordMiss() {
	if st.enabled {
		st.misses++
	}
}

func (st *statsTracker) recordEvictions(count int) {
	if st.enabled {
		st.evictions += int64(count)
	}
}

func (st *statsTracker) updateSize(size int) {
	if st.enabled {
		st.size = size
	}
}

func (st *statsTracker) markCleanup(now time.Time) {
	if st.enabled {
		st.lastCleanupAt = now
	}
}

// reset zeroes the counters. The size keeps tracking the live entries.
func (st *statsTracker) reset(now time.Time) {
	if !st.enabled {
		return
	}
	st.hits = 0
	st.misses = 0
	st.evictions = 0
	st.lastCleanupAt = now
}

// snapshot returns a copy of the counters with the derived rates, or nil when tracking is disabled.
func (st *statsTracker) snapshot() *CacheStat {
	if !st.enabled {
		return nil
	}

	totalOps := st.hits + st.misses
	var hitRate float64
	if totalOps > 0 {
		hitRate = float64(st.hits) / float64(totalOps) * 100
	}

	return &CacheStat{
		Size:            st.size,
		Hits:            st.hits,
		Misses:          st.misses,
		Evictions:       st.evictions,
		TotalOperations: totalOps,
		HitRate:         hitRate,
		MissRate:        100 - hitRate,
		LastCleanupAt:   st.lastCleanupAt,
	}
}
