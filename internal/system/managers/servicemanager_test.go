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

package managers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/cachengine/internal/system/cache"
	"github.com/asgardeo/cachengine/internal/system/config"
	"github.com/asgardeo/cachengine/internal/system/database/provider"
	"github.com/asgardeo/cachengine/tests/mocks/databasemock"
)

type ServiceManagerTestSuite struct {
	suite.Suite
	registry *cache.Registry
}

func TestServiceManagerSuite(t *testing.T) {
	suite.Run(t, new(ServiceManagerTestSuite))
}

func (suite *ServiceManagerTestSuite) SetupTest() {
	suite.registry = cache.NewRegistry(config.CacheConfig{CleanupInterval: -1})
}

func (suite *ServiceManagerTestSuite) TearDownTest() {
	suite.registry.Close()
}

func (suite *ServiceManagerTestSuite) TestRegisterServices() {
	dbProvider := provider.NewDBProvider("", config.DataSource{
		Type:         "sqlite",
		Name:         "catalog",
		Path:         filepath.Join(suite.T().TempDir(), "catalog.db"),
		MaxOpenConns: 1,
	})
	defer func() {
		suite.NoError(dbProvider.Close())
	}()
	mux := http.NewServeMux()

	suite.Require().NoError(NewServiceManager(mux, suite.registry, dbProvider).RegisterServices())

	for _, target := range []string{"/health/liveness", "/health/readiness", "/products", "/cache/stats"} {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		suite.Equal(http.StatusOK, rr.Code, target)
	}
}

func (suite *ServiceManagerTestSuite) TestRegisterServicesDatabaseUnavailable() {
	dbProvider := databasemock.NewDBProviderInterfaceMock(suite.T())
	dbProvider.EXPECT().GetDBClient().Return(nil, errors.New("unsupported database type"))

	err := NewServiceManager(http.NewServeMux(), suite.registry, dbProvider).RegisterServices()

	suite.ErrorContains(err, "failed to initialize the catalog service")
}
