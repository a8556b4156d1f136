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

package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/cachengine/internal/system/cache"
	"github.com/asgardeo/cachengine/internal/system/config"
	"github.com/asgardeo/cachengine/internal/system/database/provider"
	"github.com/asgardeo/cachengine/internal/system/error/apierror"
)

// ProductHandlerTestSuite runs the product routes against a SQLite database through the caches.
type ProductHandlerTestSuite struct {
	suite.Suite
	registry   *cache.Registry
	dbProvider provider.DBProviderInterface
	mux        *http.ServeMux
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	suite.registry = cache.NewRegistry(config.CacheConfig{CleanupInterval: -1})
	suite.dbProvider = provider.NewDBProvider("", config.DataSource{
		Type:         "sqlite",
		Name:         "catalog",
		Path:         filepath.Join(suite.T().TempDir(), "catalog.db"),
		MaxOpenConns: 1,
	})
	suite.mux = http.NewServeMux()

	_, err := Initialize(suite.mux, suite.registry, suite.dbProvider)
	suite.Require().NoError(err)
}

func (suite *ProductHandlerTestSuite) TearDownTest() {
	suite.registry.Close()
	suite.NoError(suite.dbProvider.Close())
}

func (suite *ProductHandlerTestSuite) serve(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, req)
	return rr
}

func (suite *ProductHandlerTestSuite) createProduct(body string) Product {
	rr := suite.serve(http.MethodPost, "/products", body)
	suite.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())

	var product Product
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &product))
	return product
}

func (suite *ProductHandlerTestSuite) listProducts(target string) ProductListResponse {
	rr := suite.serve(http.MethodGet, target, "")
	suite.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

	var response ProductListResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &response))
	return response
}

func (suite *ProductHandlerTestSuite) cacheStat(name string) cache.CacheStat {
	for _, stat := range suite.registry.Stats() {
		if stat.Name == name {
			return stat
		}
	}
	suite.FailNow("cache not found", name)
	return cache.CacheStat{}
}

func (suite *ProductHandlerTestSuite) errorCode(rr *httptest.ResponseRecorder) string {
	var errResp apierror.ErrorResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &errResp))
	return errResp.Code
}

func (suite *ProductHandlerTestSuite) TestProductLifecycle() {
	created := suite.createProduct(`{"sku":"KB-01","name":"Keyboard","description":"Mechanical","price":49.5,"stock":10}`)
	suite.NotEmpty(created.ID)

	rr := suite.serve(http.MethodGet, "/products/"+created.ID, "")
	suite.Equal(http.StatusOK, rr.Code)
	var fetched Product
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &fetched))
	suite.Equal(created, fetched)
	suite.Equal(int64(1), suite.cacheStat(productByIDCacheName).Hits)

	rr = suite.serve(http.MethodPut, "/products/"+created.ID,
		`{"sku":"KB-01","name":"Keyboard Pro","description":"Mechanical","price":79.5,"stock":3}`)
	suite.Equal(http.StatusOK, rr.Code, rr.Body.String())

	rr = suite.serve(http.MethodGet, "/products/"+created.ID, "")
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &fetched))
	suite.Equal("Keyboard Pro", fetched.Name)
	suite.Equal(79.5, fetched.Price)

	rr = suite.serve(http.MethodDelete, "/products/"+created.ID, "")
	suite.Equal(http.StatusNoContent, rr.Code)

	rr = suite.serve(http.MethodGet, "/products/"+created.ID, "")
	suite.Equal(http.StatusNotFound, rr.Code)
	suite.Equal(ErrorProductNotFound.Code, suite.errorCode(rr))

	rr = suite.serve(http.MethodDelete, "/products/"+created.ID, "")
	suite.Equal(http.StatusNoContent, rr.Code)
}

func (suite *ProductHandlerTestSuite) TestListingIsCachedAndInvalidated() {
	suite.createProduct(`{"sku":"KB-01","name":"Keyboard","price":49.5,"stock":10}`)
	suite.createProduct(`{"sku":"MS-01","name":"Mouse","price":19.0,"stock":25}`)

	first := suite.listProducts("/products?limit=10")
	suite.Equal(2, first.TotalResults)
	suite.Equal("Keyboard", first.Products[0].Name)
	suite.Equal("Mouse", first.Products[1].Name)

	second := suite.listProducts("/products?limit=10")
	suite.Equal(first, second)
	suite.Equal(int64(1), suite.cacheStat(productListCacheName).Hits)
	suite.Equal(int64(1), suite.cacheStat(productCountCacheName).Hits)

	suite.createProduct(`{"sku":"MN-01","name":"Monitor","price":199.0,"stock":2}`)

	third := suite.listProducts("/products?limit=10")
	suite.Equal(3, third.TotalResults)
	suite.Equal("Monitor", third.Products[1].Name)
	suite.Equal(int64(1), suite.cacheStat(productListCacheName).Hits)
}

func (suite *ProductHandlerTestSuite) TestListFilterAndPagination() {
	suite.createProduct(`{"sku":"KB-01","name":"Keyboard","price":49.5,"stock":10}`)
	suite.createProduct(`{"sku":"KB-02","name":"Keyboard Mini","price":39.5,"stock":4}`)
	suite.createProduct(`{"sku":"MS-01","name":"Mouse","price":19.0,"stock":25}`)

	response := suite.listProducts("/products?name=key&limit=1&offset=0")

	suite.Equal(2, response.TotalResults)
	suite.Equal(1, response.Count)
	suite.Equal("Keyboard", response.Products[0].Name)
	suite.Equal([]Link{
		{Href: "/products?offset=1&limit=1&name=key", Rel: "next"},
		{Href: "/products?offset=1&limit=1&name=key", Rel: "last"},
	}, response.Links)
}

func (suite *ProductHandlerTestSuite) TestCreateProductErrors() {
	suite.createProduct(`{"sku":"KB-01","name":"Keyboard","price":49.5,"stock":10}`)

	testCases := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{name: "DuplicateSKU", body: `{"sku":"KB-01","name":"Other"}`,
			expectedStatus: http.StatusConflict, expectedCode: ErrorSKUConflict.Code},
		{name: "MalformedBody", body: `{"sku":`,
			expectedStatus: http.StatusBadRequest, expectedCode: ErrorInvalidRequestFormat.Code},
		{name: "UnknownField", body: `{"sku":"KB-02","name":"Keyboard","colour":"black"}`,
			expectedStatus: http.StatusBadRequest, expectedCode: ErrorInvalidRequestFormat.Code},
		{name: "NegativePrice", body: `{"sku":"KB-02","name":"Keyboard","price":-1}`,
			expectedStatus: http.StatusBadRequest, expectedCode: ErrorInvalidPrice.Code},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			rr := suite.serve(http.MethodPost, "/products", tc.body)
			suite.Equal(tc.expectedStatus, rr.Code)
			suite.Equal(tc.expectedCode, suite.errorCode(rr))
		})
	}
}

func (suite *ProductHandlerTestSuite) TestListInvalidPagination() {
	rr := suite.serve(http.MethodGet, "/products?limit=abc", "")
	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Equal(ErrorInvalidLimit.Code, suite.errorCode(rr))

	rr = suite.serve(http.MethodGet, "/products?offset=-2", "")
	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Equal(ErrorInvalidOffset.Code, suite.errorCode(rr))
}

func (suite *ProductHandlerTestSuite) TestUpdateMissingProduct() {
	rr := suite.serve(http.MethodPut, "/products/missing", `{"sku":"KB-01","name":"Keyboard"}`)

	suite.Equal(http.StatusNotFound, rr.Code)
	suite.Equal(ErrorProductNotFound.Code, suite.errorCode(rr))
}

func (suite *ProductHandlerTestSuite) TestSanitizeProductRequest() {
	sanitized := sanitizeProductRequest(ProductRequest{SKU: " KB-01 ", Name: "<b>Keyboard</b>", Price: 1, Stock: 2})

	suite.Equal("KB-01", sanitized.SKU)
	suite.Equal("&lt;b&gt;Keyboard&lt;/b&gt;", sanitized.Name)
	suite.Equal(1.0, sanitized.Price)
	suite.Equal(2, sanitized.Stock)
}
