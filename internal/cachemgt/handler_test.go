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

package cachemgt

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/cachengine/internal/system/cache"
	"github.com/asgardeo/cachengine/internal/system/config"
	"github.com/asgardeo/cachengine/internal/system/error/apierror"
)

type CacheManagementHandlerTestSuite struct {
	suite.Suite
	registry *cache.Registry
	mux      *http.ServeMux
}

func TestCacheManagementHandlerSuite(t *testing.T) {
	suite.Run(t, new(CacheManagementHandlerTestSuite))
}

func (suite *CacheManagementHandlerTestSuite) SetupTest() {
	suite.registry = cache.NewRegistry(config.CacheConfig{CleanupInterval: -1})
	suite.mux = http.NewServeMux()
	Initialize(suite.mux, suite.registry)
}

func (suite *CacheManagementHandlerTestSuite) TearDownTest() {
	suite.registry.Close()
}

func (suite *CacheManagementHandlerTestSuite) serve(method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func (suite *CacheManagementHandlerTestSuite) TestStats() {
	products := cache.GetCache[string](suite.registry, "ProductByIDCache")
	suite.NoError(products.Set("p1", "Keyboard"))
	products.Get("p1")
	products.Get("p2")

	rr := suite.serve(http.MethodGet, "/cache/stats")

	suite.Equal(http.StatusOK, rr.Code)
	var response CacheStatsResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &response))
	suite.Equal(1, response.TotalCaches)
	suite.Equal("ProductByIDCache", response.Caches[0].Name)
	suite.Equal(int64(1), response.Caches[0].Hits)
	suite.Equal(int64(1), response.Caches[0].Misses)
	suite.InDelta(50.0, response.Caches[0].HitRate, 0.0001)
}

func (suite *CacheManagementHandlerTestSuite) TestCleanup() {
	products := cache.GetCache[string](suite.registry, "ProductByIDCache")
	suite.NoError(products.Set("expired", "value", cache.WithTTL(-time.Second)))
	suite.NoError(products.Set("live", "value"))

	rr := suite.serve(http.MethodPost, "/cache/ProductByIDCache/cleanup")

	suite.Equal(http.StatusOK, rr.Code)
	suite.JSONEq(`{"name":"ProductByIDCache","cleaned":1}`, rr.Body.String())
	suite.Equal(1, products.Size())
}

func (suite *CacheManagementHandlerTestSuite) TestClear() {
	products := cache.GetCache[string](suite.registry, "ProductByIDCache")
	suite.NoError(products.Set("p1", "Keyboard"))

	rr := suite.serve(http.MethodDelete, "/cache/ProductByIDCache")

	suite.Equal(http.StatusNoContent, rr.Code)
	suite.Equal(0, products.Size())
}

func (suite *CacheManagementHandlerTestSuite) TestUnknownCache() {
	for _, tc := range []struct {
		method string
		target string
	}{
		{method: http.MethodPost, target: "/cache/Unknown/cleanup"},
		{method: http.MethodDelete, target: "/cache/Unknown"},
	} {
		rr := suite.serve(tc.method, tc.target)

		suite.Equal(http.StatusNotFound, rr.Code)
		var errResp apierror.ErrorResponse
		suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &errResp))
		suite.Equal(ErrorCacheNotFound.Code, errResp.Code)
	}
}
