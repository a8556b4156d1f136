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

// Package healthcheck reports the liveness and readiness of the server.
package healthcheck

import (
	"context"
	"time"

	"github.com/asgardeo/cachengine/internal/system/cache"
	"github.com/asgardeo/cachengine/internal/system/database/provider"
	"github.com/asgardeo/cachengine/internal/system/log"
)

const (
	catalogDBServiceName = "CatalogDB"
	readinessTimeout     = 2 * time.Second
	readinessCacheKey    = "health:readiness"
	readinessCacheTTL    = 5 * time.Second
)

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) ServerStatus
}

// healthCheckService checks the dependencies the server needs to serve requests.
// A successful check is kept in the default cache for a few seconds; failures are never cached.
type healthCheckService struct {
	registry   *cache.Registry
	dbProvider provider.DBProviderInterface
}

// newHealthCheckService creates a new instance of healthCheckService.
func newHealthCheckService(registry *cache.Registry,
	dbProvider provider.DBProviderInterface) HealthCheckServiceInterface {
	return &healthCheckService{
		registry:   registry,
		dbProvider: dbProvider,
	}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *healthCheckService) CheckReadiness(ctx context.Context) ServerStatus {
	defaultCache := hcs.registry.Default()
	if cached, ok := defaultCache.Get(readinessCacheKey); ok {
		if status, ok := cached.(ServerStatus); ok {
			return status
		}
	}

	catalogDBStatus := ServiceStatus{
		ServiceName: catalogDBServiceName,
		Status:      hcs.checkDatabaseStatus(ctx),
	}
	status := ServerStatus{
		Status:        catalogDBStatus.Status,
		ServiceStatus: []ServiceStatus{catalogDBStatus},
	}

	if status.Status == StatusUp {
		if err := defaultCache.Set(readinessCacheKey, status, cache.WithTTL(readinessCacheTTL)); err != nil {
			log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService")).
				Error("Failed to cache readiness status", log.Error(err))
		}
	}
	return status
}

// checkDatabaseStatus pings the catalog database.
func (hcs *healthCheckService) checkDatabaseStatus(ctx context.Context) Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	dbClient, err := hcs.dbProvider.GetDBClient()
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return StatusDown
	}

	pingCtx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()
	if err := dbClient.Ping(pingCtx); err != nil {
		logger.Error("Failed to ping the catalog database", log.Error(err))
		return StatusDown
	}
	return StatusUp
}
