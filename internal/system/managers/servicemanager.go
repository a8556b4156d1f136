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

// Package managers provides functionality for managing and registering system services.
package managers

import (
	"fmt"
	"net/http"

	"github.com/asgardeo/cachengine/internal/cachemgt"
	"github.com/asgardeo/cachengine/internal/catalog"
	"github.com/asgardeo/cachengine/internal/system/cache"
	"github.com/asgardeo/cachengine/internal/system/database/provider"
	"github.com/asgardeo/cachengine/internal/system/healthcheck"
)

// ServiceManagerInterface defines the interface for managing services.
type ServiceManagerInterface interface {
	RegisterServices() error
}

// ServiceManager registers the services of the server on a shared multiplexer.
type ServiceManager struct {
	mux        *http.ServeMux
	registry   *cache.Registry
	dbProvider provider.DBProviderInterface
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, registry *cache.Registry,
	dbProvider provider.DBProviderInterface) ServiceManagerInterface {
	return &ServiceManager{
		mux:        mux,
		registry:   registry,
		dbProvider: dbProvider,
	}
}

// RegisterServices registers all the services with the provided HTTP multiplexer.
func (sm *ServiceManager) RegisterServices() error {
	healthcheck.Initialize(sm.mux, sm.registry, sm.dbProvider)

	if _, err := catalog.Initialize(sm.mux, sm.registry, sm.dbProvider); err != nil {
		return fmt.Errorf("failed to initialize the catalog service: %w", err)
	}

	cachemgt.Initialize(sm.mux, sm.registry)
	return nil
}
