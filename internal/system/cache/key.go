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
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// CreateKey builds a composite cache key by joining the string form of every part with ":".
// Maps, structs, slices and pointers are encoded as JSON, which sorts map keys, so equal
// values always produce the same key. Parts that cannot be encoded fall back to fmt.Sprint.
func CreateKey(parts ...any) string {
	segments := make([]string, len(parts))
	for i, part := range parts {
		segments[i] = keySegment(part)
	}
	return strings.Join(segments, keySeparator)
}

func keySegment(part any) string {
	value := reflect.ValueOf(part)
	if part == nil || (value.Kind() == reflect.Pointer && value.IsNil()) {
		return "null"
	}

	switch v := part.(type) {
	case string:
		return v
	case error:
		return safeString(part, v.Error)
	case fmt.Stringer:
		return safeString(part, v.String)
	}

	switch value.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array, reflect.Pointer:
		return encodeSegment(part)
	default:
		return fmt.Sprint(part)
	}
}

// encodeSegment encodes a part as JSON, falling back to fmt.Sprint when it cannot be encoded.
func encodeSegment(part any) string {
	encoded, err := json.Marshal(part)
	if err != nil {
		return fmt.Sprint(part)
	}
	return string(encoded)
}

// safeString calls a String or Error method. A method that panics is replaced by the JSON form of the part.
func safeString(part any, format func() string) (segment string) {
	defer func() {
		if recover() != nil {
			segment = encodeSegment(part)
		}
	}()
	return format()
}
