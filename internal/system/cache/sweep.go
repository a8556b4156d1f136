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

	"github.com/asgardeo/cachengine/internal/system/log"
)

// CleanupExpired removes every expired entry and returns how many were removed.
// Removed entries are counted as evictions.
func (s *Store[T]) CleanupExpired() int {
	if !s.enabled {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	cleaned := 0
	for key, entry := range s.entries {
		if entry.IsExpired(now) {
			delete(s.entries, key)
			cleaned++
		}
	}

	s.stats.recordEvictions(cleaned)
	s.stats.updateSize(len(s.entries))
	s.stats.markCleanup(now)

	if s.logger.IsDebugEnabled() {
		if cleaned > 0 {
			s.logger.Debug("Expired cache entries cleaned", log.Int("count", cleaned))
		} else {
			s.logger.Debug("No expired entries found in the cache")
		}
	}

	return cleaned
}

// Destroy stops the background sweep and removes all entries. It is safe to call more than once.
func (s *Store[T]) Destroy() {
	s.stopOnce.Do(func() {
		if s.stopCleanup != nil {
			close(s.stopCleanup)
		}
	})
	s.Clear()
}

// startCleanupRoutine starts a background routine to clean up expired entries.
func (s *Store[T]) startCleanupRoutine() {
	if s.cleanupInterval <= 0 {
		s.logger.Debug("Cache cleanup routine disabled")
		return
	}

	s.stopCleanup = make(chan struct{})
	go s.runCleanup(s.cleanupInterval, s.stopCleanup)

	s.logger.Debug("Cache cleanup routine started", log.Duration("interval", s.cleanupInterval))
}

func (s *Store[T]) runCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.CleanupExpired()
		case <-stop:
			return
		}
	}
}
