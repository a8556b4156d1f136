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
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"strings"

	"github.com/asgardeo/cachengine/internal/system/cache"
	"github.com/asgardeo/cachengine/internal/system/database/model"
	"github.com/asgardeo/cachengine/internal/system/database/provider"
	"github.com/asgardeo/cachengine/internal/system/log"
)

var (
	//go:embed dbscripts/sqlite.sql
	sqliteSchema string
	//go:embed dbscripts/postgres.sql
	postgresSchema string
)

// Initialize creates the product service on top of the cached product store and registers its routes.
func Initialize(mux *http.ServeMux, registry *cache.Registry, dbProvider provider.DBProviderInterface) (
	ProductServiceInterface, error) {
	if err := ensureSchema(context.Background(), dbProvider); err != nil {
		return nil, err
	}

	productStore := newCachedBackedProductStore(registry, newProductStore(dbProvider))
	productService := newProductService(productStore)
	registerRoutes(mux, newProductHandler(productService))
	return productService, nil
}

// registerRoutes registers the routes for product management operations.
func registerRoutes(mux *http.ServeMux, handler *productHandler) {
	mux.HandleFunc("GET /products", handler.HandleProductListRequest)
	mux.HandleFunc("POST /products", handler.HandleProductPostRequest)
	mux.HandleFunc("GET /products/{id}", handler.HandleProductGetRequest)
	mux.HandleFunc("PUT /products/{id}", handler.HandleProductPutRequest)
	mux.HandleFunc("DELETE /products/{id}", handler.HandleProductDeleteRequest)
}

// ensureSchema creates the product table when it does not exist yet.
func ensureSchema(ctx context.Context, dbProvider provider.DBProviderInterface) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	dbClient, err := dbProvider.GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	for i, statement := range splitStatements(sqliteSchema) {
		query := model.DBQuery{
			ID:            fmt.Sprintf("CATQ-SCHEMA-%02d", i+1),
			Query:         statement,
			PostgresQuery: splitStatements(postgresSchema)[i],
		}
		if _, err := dbClient.Execute(ctx, query); err != nil {
			return fmt.Errorf("failed to create catalog schema: %w", err)
		}
	}

	logger.Debug("Catalog schema is ready")
	return nil
}

// splitStatements splits a SQL script into its non-empty statements.
func splitStatements(script string) []string {
	statements := make([]string, 0)
	for _, statement := range strings.Split(script, ";") {
		if trimmed := strings.TrimSpace(statement); trimmed != "" {
			statements = append(statements, trimmed)
		}
	}
	return statements
}
