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

// Package utils provides HTTP and string helpers shared by the handlers.
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/asgardeo/cachengine/internal/system/constants"
	"github.com/asgardeo/cachengine/internal/system/error/apierror"
	"github.com/asgardeo/cachengine/internal/system/log"
)

const maxRequestBodySize = 1 << 20

// DecodeJSONBody decodes the JSON request body into a value of type T.
// Unknown fields and trailing data are rejected.
func DecodeJSONBody[T any](r *http.Request) (*T, error) {
	if r.Body == nil {
		return nil, errors.New("request body is empty")
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodySize))
	decoder.DisallowUnknownFields()

	var data T
	if err := decoder.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("request body is empty")
		}
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	if decoder.More() {
		return nil, errors.New("request body must contain a single JSON object")
	}

	return &data, nil
}

// WriteJSONResponse writes the given value as a JSON response with the given status code.
func WriteJSONResponse(w http.ResponseWriter, logger *log.Logger, statusCode int, body any) {
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// WriteJSONError writes an API error response with the given details.
func WriteJSONError(w http.ResponseWriter, logger *log.Logger, code, message, description string, statusCode int) {
	if statusCode >= http.StatusInternalServerError {
		logger.Error("Error in HTTP response", log.String("code", code), log.String("description", description))
	} else {
		logger.Debug("Client error in HTTP response", log.String("code", code),
			log.String("description", description))
	}

	WriteJSONResponse(w, logger, statusCode, apierror.ErrorResponse{
		Code:        code,
		Message:     message,
		Description: description,
	})
}

// SanitizeString trims surrounding whitespace and escapes HTML special characters.
func SanitizeString(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}

// GenerateUUID returns a new random UUID string.
func GenerateUUID() string {
	return uuid.NewString()
}
