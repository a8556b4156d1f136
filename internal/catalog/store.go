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
	"fmt"
	"strconv"

	"github.com/asgardeo/cachengine/internal/system/database/provider"
)

// productStoreInterface defines the interface for product persistence operations.
type productStoreInterface interface {
	GetProductListCount(ctx context.Context, filter ProductFilter) (int, error)
	GetProductList(ctx context.Context, filter ProductFilter, limit, offset int) ([]Product, error)
	CreateProduct(ctx context.Context, product Product) error
	GetProduct(ctx context.Context, id string) (Product, error)
	IsSKUConflict(ctx context.Context, sku, excludeID string) (bool, error)
	UpdateProduct(ctx context.Context, product Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// productStore is the database backed implementation of productStoreInterface.
type productStore struct {
	dbProvider provider.DBProviderInterface
}

// newProductStore creates a new instance of productStore.
func newProductStore(dbProvider provider.DBProviderInterface) productStoreInterface {
	return &productStore{
		dbProvider: dbProvider,
	}
}

// GetProductListCount retrieves the total count of products matching the filter.
func (s *productStore) GetProductListCount(ctx context.Context, filter ProductFilter) (int, error) {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetProductListCount, namePattern(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}

	if len(results) == 0 {
		return 0, nil
	}
	total, err := toInt(results[0]["total"])
	if err != nil {
		return 0, fmt.Errorf("unexpected type for total: %w", err)
	}
	return total, nil
}

// GetProductList retrieves products matching the filter with pagination.
func (s *productStore) GetProductList(ctx context.Context, filter ProductFilter, limit, offset int) (
	[]Product, error) {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetProductList, namePattern(filter), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	products := make([]Product, 0, len(results))
	for _, row := range results {
		product, err := buildProductFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build product: %w", err)
		}
		products = append(products, product)
	}

	return products, nil
}

// CreateProduct creates a new product in the database.
func (s *productStore) CreateProduct(ctx context.Context, product Product) error {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(ctx, queryCreateProduct,
		product.ID, product.SKU, product.Name, product.Description, product.Price, product.Stock)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetProduct retrieves a product by its id.
func (s *productStore) GetProduct(ctx context.Context, id string) (Product, error) {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return Product{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetProductByID, id)
	if err != nil {
		return Product{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return Product{}, errProductNotFound
	}
	if len(results) != 1 {
		return Product{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildProductFromResultRow(results[0])
}

// IsSKUConflict checks whether a product other than excludeID already uses the SKU.
func (s *productStore) IsSKUConflict(ctx context.Context, sku, excludeID string) (bool, error) {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return false, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryCheckSKUConflict, sku, excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return false, nil
	}
	count, err := toInt(results[0]["count"])
	if err != nil {
		return false, fmt.Errorf("unexpected type for count: %w", err)
	}
	return count > 0, nil
}

// UpdateProduct updates an existing product.
func (s *productStore) UpdateProduct(ctx context.Context, product Product) error {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(ctx, queryUpdateProduct,
		product.ID, product.SKU, product.Name, product.Description, product.Price, product.Stock)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return errProductNotFound
	}

	return nil
}

// DeleteProduct deletes a product by its id.
func (s *productStore) DeleteProduct(ctx context.Context, id string) error {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(ctx, queryDeleteProduct, id)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// namePattern returns the LIKE pattern of the name filter.
func namePattern(filter ProductFilter) string {
	return "%" + filter.Name + "%"
}

// buildProductFromResultRow builds a product from a database result row.
func buildProductFromResultRow(row map[string]any) (Product, error) {
	id, err := toString(row["product_id"])
	if err != nil {
		return Product{}, fmt.Errorf("failed to parse product_id: %w", err)
	}
	sku, err := toString(row["sku"])
	if err != nil {
		return Product{}, fmt.Errorf("failed to parse sku: %w", err)
	}
	name, err := toString(row["name"])
	if err != nil {
		return Product{}, fmt.Errorf("failed to parse name: %w", err)
	}

	var description string
	if row["description"] != nil {
		if description, err = toString(row["description"]); err != nil {
			return Product{}, fmt.Errorf("failed to parse description: %w", err)
		}
	}

	price, err := toFloat(row["price"])
	if err != nil {
		return Product{}, fmt.Errorf("failed to parse price: %w", err)
	}
	stock, err := toInt(row["stock"])
	if err != nil {
		return Product{}, fmt.Errorf("failed to parse stock: %w", err)
	}

	return Product{
		ID:          id,
		SKU:         sku,
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
	}, nil
}

func toString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unexpected type %T", value)
	}
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int64:
		return int(v), nil
	case int:
		return v, nil
	case float64:
		return int(v), nil
	case []byte:
		return strconv.Atoi(string(v))
	default:
		return 0, fmt.Errorf("unexpected type %T", value)
	}
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case []byte:
		return strconv.ParseFloat(string(v), 64)
	default:
		return 0, fmt.Errorf("unexpected type %T", value)
	}
}
