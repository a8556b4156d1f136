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

// Entry is a single cached value together with its access metadata.
type Entry[T any] struct {
	value          T
	createdAt      time.Time
	ttl            time.Duration
	hasTTL         bool
	lastAccessedAt time.Time
	accessCount    int64
}

// newEntry creates an entry that was inserted at the given time.
func newEntry[T any](value T, ttl time.Duration, hasTTL bool, now time.Time) *Entry[T] {
	return &Entry[T]{
		value:          value,
		createdAt:      now,
		ttl:            ttl,
		hasTTL:         hasTTL,
		lastAccessedAt: now,
	}
}

// Value returns the cached value without touching the entry.
func (e *Entry[T]) Value() T {
	return e.value
}

// CreatedAt returns the time of insertion or of the last full replacement.
func (e *Entry[T]) CreatedAt() time.Time {
	return e.createdAt
}

// LastAccessedAt returns the time of the last successful read or replacement.
func (e *Entry[T]) LastAccessedAt() time.Time {
	return e.lastAccessedAt
}

// AccessCount returns the number of successful reads and replacements.
func (e *Entry[T]) AccessCount() int64 {
	return e.accessCount
}

// IsExpired reports whether the entry outlived its TTL at the given time.
func (e *Entry[T]) IsExpired(now time.Time) bool {
	return e.hasTTL && now.Sub(e.createdAt) > e.ttl
}

// Touch records a read and returns the value.
func (e *Entry[T]) Touch(now time.Time) T {
	e.lastAccessedAt = now
	e.accessCount++
	return e.value
}

// RemainingTTL returns how long the entry stays live, or NoExpiry when it has no TTL.
func (e *Entry[T]) RemainingTTL(now time.Time) time.Duration {
	if !e.hasTTL {
		return NoExpiry
	}
	remaining := e.ttl - now.Sub(e.createdAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ReplaceValue swaps the value in place. A replacement counts as an access.
func (e *Entry[T]) ReplaceValue(value T, now time.Time) {
	e.value = value
	e.lastAccessedAt = now
	e.accessCount++
}

// reset restarts the lifetime of the entry with a new TTL.
func (e *Entry[T]) reset(ttl time.Duration, hasTTL bool, now time.Time) {
	e.createdAt = now
	e.ttl = ttl
	e.hasTTL = hasTTL
}
