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

// Package cachemgt exposes the cache registry over HTTP for inspection and manual maintenance.
package cachemgt

import (
	"net/http"

	"github.com/asgardeo/cachengine/internal/system/cache"
	"github.com/asgardeo/cachengine/internal/system/error/serviceerror"
	"github.com/asgardeo/cachengine/internal/system/log"
	"github.com/asgardeo/cachengine/internal/system/utils"
)

const loggerComponentName = "CacheManagementHandler"

// ErrorCacheNotFound is the error returned when no cache with the requested name exists.
var ErrorCacheNotFound = serviceerror.ServiceError{
	Type:             serviceerror.ClientErrorType,
	Code:             "CMG-1001",
	Error:            "Cache not found",
	ErrorDescription: "No cache with the specified name has been created",
}

// CacheStatsResponse is the body of the cache statistics response.
type CacheStatsResponse struct {
	TotalCaches int               `json:"totalCaches"`
	Caches      []cache.CacheStat `json:"caches"`
}

// CleanupResponse is the body of the manual sweep response.
type CleanupResponse struct {
	Name    string `json:"name"`
	Cleaned int    `json:"cleaned"`
}

// cacheManagementHandler serves the cache administration endpoints.
type cacheManagementHandler struct {
	registry *cache.Registry
}

func newCacheManagementHandler(registry *cache.Registry) *cacheManagementHandler {
	return &cacheManagementHandler{
		registry: registry,
	}
}

// HandleStatsRequest returns the statistics of every cache that tracks them.
func (h *cacheManagementHandler) HandleStatsRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	stats := h.registry.Stats()
	utils.WriteJSONResponse(w, logger, http.StatusOK, CacheStatsResponse{
		TotalCaches: len(stats),
		Caches:      stats,
	})
}

// HandleCleanupRequest removes the expired entries of the named cache.
func (h *cacheManagementHandler) HandleCleanupRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	name := r.PathValue("name")
	cleaned, found := h.registry.CleanupExpired(name)
	if !found {
		writeNotFound(w, logger)
		return
	}

	logger.Debug("Manual cache cleanup completed", log.String(log.LoggerKeyCacheName, name),
		log.Int("cleaned", cleaned))
	utils.WriteJSONResponse(w, logger, http.StatusOK, CleanupResponse{Name: name, Cleaned: cleaned})
}

// HandleClearRequest removes every entry of the named cache.
func (h *cacheManagementHandler) HandleClearRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	name := r.PathValue("name")
	if !h.registry.Clear(name) {
		writeNotFound(w, logger)
		return
	}

	logger.Info("Cache cleared", log.String(log.LoggerKeyCacheName, name))
	w.WriteHeader(http.StatusNoContent)
}

func writeNotFound(w http.ResponseWriter, logger *log.Logger) {
	utils.WriteJSONError(w, logger, ErrorCacheNotFound.Code, ErrorCacheNotFound.Error,
		ErrorCacheNotFound.ErrorDescription, http.StatusNotFound)
}
