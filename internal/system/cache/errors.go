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

import "fmt"

const (
	// ErrorCodeInvalidCacheKey is reported when a write is attempted with an empty key.
	ErrorCodeInvalidCacheKey = "INVALID_CACHE_KEY"
	// ErrorCodeInvalidMultiSetParam is reported when MultiSet is called without an item list.
	ErrorCodeInvalidMultiSetParam = "INVALID_MULTI_SET_PARAM"
	// ErrorCodeInvalidMultiGetParam is reported when MultiGet is called without a key list.
	ErrorCodeInvalidMultiGetParam = "INVALID_MULTI_GET_PARAM"
	// ErrorCodeInvalidMultiDeleteParam is reported when MultiDelete is called without a key list.
	ErrorCodeInvalidMultiDeleteParam = "INVALID_MULTI_DELETE_PARAM"
)

// CacheError is the error kind returned by cache write operations.
type CacheError struct {
	Code    string
	Message string
}

// Error returns the string representation of the error.
func (e *CacheError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is reports whether target is a CacheError with the same code.
func (e *CacheError) Is(target error) bool {
	t, ok := target.(*CacheError)
	return ok && t.Code == e.Code
}

var (
	// ErrInvalidCacheKey is returned by Set and friends when the key is empty.
	ErrInvalidCacheKey = &CacheError{
		Code:    ErrorCodeInvalidCacheKey,
		Message: "cache key must be a non-empty string",
	}
	// ErrInvalidMultiSetParam is returned by MultiSet when the item list is nil.
	ErrInvalidMultiSetParam = &CacheError{
		Code:    ErrorCodeInvalidMultiSetParam,
		Message: "multi set expects a list of items",
	}
	// ErrInvalidMultiGetParam is returned by MultiGet when the key list is nil.
	ErrInvalidMultiGetParam = &CacheError{
		Code:    ErrorCodeInvalidMultiGetParam,
		Message: "multi get expects a list of keys",
	}
	// ErrInvalidMultiDeleteParam is returned by MultiDelete when the key list is nil.
	ErrInvalidMultiDeleteParam = &CacheError{
		Code:    ErrorCodeInvalidMultiDeleteParam,
		Message: "multi delete expects a list of keys",
	}
)
