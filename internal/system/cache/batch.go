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
	"github.com/asgardeo/cachengine/internal/system/log"
)

// Number is the set of value types supported by Increment and Decrement.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// MultiSet writes every item independently and returns how many were stored.
// An item that fails is logged and skipped; the remaining items are still written.
func (s *Store[T]) MultiSet(items []SetItem[T]) (int, error) {
	if items == nil {
		return 0, ErrInvalidMultiSetParam
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := 0
	for _, item := range items {
		if err := s.setLocked(item.Key, item.Value, item.Options); err != nil {
			s.logger.Warn("Failed to set cache item in batch", log.String("key", item.Key), log.Error(err))
			continue
		}
		stored++
	}
	return stored, nil
}

// MultiGet returns the live values of the given keys. Missing and expired keys are left out.
func (s *Store[T]) MultiGet(keys []string) (map[string]T, error) {
	if keys == nil {
		return nil, ErrInvalidMultiGetParam
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string]T, len(keys))
	for _, key := range keys {
		if value, found := s.getLocked(key); found {
			result[key] = value
		}
	}
	return result, nil
}

// MultiDelete removes the given keys and returns how many existed.
func (s *Store[T]) MultiDelete(keys []string) (int, error) {
	if keys == nil {
		return 0, ErrInvalidMultiDeleteParam
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for _, key := range keys {
		if s.deleteLocked(key) {
			deleted++
		}
	}
	return deleted, nil
}

// GetAndSet stores value under key and returns the previous live value, if any.
func (s *Store[T]) GetAndSet(key string, value T) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, found := s.getLocked(key)
	if err := s.setLocked(key, value, nil); err != nil {
		var zero T
		return zero, false, err
	}
	return previous, found, nil
}

// SetAndGet stores value under key and returns it.
func (s *Store[T]) SetAndGet(key string, value T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.setLocked(key, value, nil); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// SetIfNotExists stores value only when key holds no live value, and reports whether it did.
func (s *Store[T]) SetIfNotExists(key string, value T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasLocked(key) {
		return false, nil
	}
	if err := s.setLocked(key, value, nil); err != nil {
		return false, err
	}
	return true, nil
}

// Increment adds delta to the number under key, treating a missing key as zero, and returns the result.
// The read and the write happen under a single lock acquisition.
func Increment[N Number](s *Store[N], key string, delta N) (N, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, _ := s.getLocked(key)
	next := current + delta
	if err := s.setLocked(key, next, nil); err != nil {
		return 0, err
	}
	return next, nil
}

// Decrement subtracts delta from the number under key, treating a missing key as zero.
func Decrement[N Number](s *Store[N], key string, delta N) (N, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, _ := s.getLocked(key)
	next := current - delta
	if err := s.setLocked(key, next, nil); err != nil {
		return 0, err
	}
	return next, nil
}
