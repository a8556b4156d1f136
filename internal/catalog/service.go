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

// Package catalog handles the product catalog operations, serving reads through the cache engine.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	serverconst "github.com/asgardeo/cachengine/internal/system/constants"
	"github.com/asgardeo/cachengine/internal/system/error/serviceerror"
	"github.com/asgardeo/cachengine/internal/system/log"
	"github.com/asgardeo/cachengine/internal/system/utils"
)

const loggerComponentNameService = "ProductService"

// ProductServiceInterface defines the interface for product management operations.
type ProductServiceInterface interface {
	GetProductList(ctx context.Context, filter ProductFilter, limit, offset int) (
		*ProductListResponse, *serviceerror.ServiceError)
	CreateProduct(ctx context.Context, request ProductRequest) (Product, *serviceerror.ServiceError)
	GetProduct(ctx context.Context, id string) (Product, *serviceerror.ServiceError)
	UpdateProduct(ctx context.Context, id string, request ProductRequest) (Product, *serviceerror.ServiceError)
	DeleteProduct(ctx context.Context, id string) *serviceerror.ServiceError
}

// productService is the default implementation of ProductServiceInterface.
type productService struct {
	productStore productStoreInterface
}

// newProductService creates a new instance of productService.
func newProductService(productStore productStoreInterface) ProductServiceInterface {
	return &productService{
		productStore: productStore,
	}
}

// GetProductList retrieves a page of products.
// limit should be a positive integer and offset should be non-negative.
func (ps *productService) GetProductList(ctx context.Context, filter ProductFilter, limit, offset int) (
	*ProductListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))
	if err := validatePaginationParams(limit, offset); err != nil {
		return nil, err
	}

	totalCount, err := ps.productStore.GetProductListCount(ctx, filter)
	if err != nil {
		logger.Error("Failed to get product count", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	products, err := ps.productStore.GetProductList(ctx, filter, limit, offset)
	if err != nil {
		logger.Error("Failed to list products", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &ProductListResponse{
		TotalResults: totalCount,
		StartIndex:   offset + 1,
		Count:        len(products),
		Products:     products,
		Links:        buildPaginationLinks(filter, limit, offset, totalCount),
	}, nil
}

// CreateProduct creates a new product.
func (ps *productService) CreateProduct(ctx context.Context, request ProductRequest) (
	Product, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))
	logger.Debug("Creating product", log.String("sku", request.SKU))

	if svcErr := validateProductRequest(request); svcErr != nil {
		return Product{}, svcErr
	}

	conflict, err := ps.productStore.IsSKUConflict(ctx, request.SKU, "")
	if err != nil {
		logger.Error("Failed to check SKU conflict", log.Error(err))
		return Product{}, &ErrorInternalServerError
	}
	if conflict {
		return Product{}, &ErrorSKUConflict
	}

	product := Product{
		ID:          utils.GenerateUUID(),
		SKU:         request.SKU,
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		Stock:       request.Stock,
	}
	if err := ps.productStore.CreateProduct(ctx, product); err != nil {
		logger.Error("Failed to create product", log.Error(err))
		return Product{}, &ErrorInternalServerError
	}

	logger.Debug("Successfully created product", log.String("productID", product.ID))
	return product, nil
}

// GetProduct retrieves a product by its id.
func (ps *productService) GetProduct(ctx context.Context, id string) (Product, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))
	if id == "" {
		return Product{}, &ErrorMissingProductID
	}

	product, err := ps.productStore.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, errProductNotFound) {
			return Product{}, &ErrorProductNotFound
		}
		logger.Error("Failed to get product", log.String("productID", id), log.Error(err))
		return Product{}, &ErrorInternalServerError
	}

	return product, nil
}

// UpdateProduct replaces the attributes of an existing product.
func (ps *productService) UpdateProduct(ctx context.Context, id string, request ProductRequest) (
	Product, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))
	if id == "" {
		return Product{}, &ErrorMissingProductID
	}
	if svcErr := validateProductRequest(request); svcErr != nil {
		return Product{}, svcErr
	}

	if _, svcErr := ps.GetProduct(ctx, id); svcErr != nil {
		return Product{}, svcErr
	}

	conflict, err := ps.productStore.IsSKUConflict(ctx, request.SKU, id)
	if err != nil {
		logger.Error("Failed to check SKU conflict", log.Error(err))
		return Product{}, &ErrorInternalServerError
	}
	if conflict {
		return Product{}, &ErrorSKUConflict
	}

	product := Product{
		ID:          id,
		SKU:         request.SKU,
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		Stock:       request.Stock,
	}
	if err := ps.productStore.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, errProductNotFound) {
			return Product{}, &ErrorProductNotFound
		}
		logger.Error("Failed to update product", log.String("productID", id), log.Error(err))
		return Product{}, &ErrorInternalServerError
	}

	return product, nil
}

// DeleteProduct deletes a product. Deleting a missing product succeeds.
func (ps *productService) DeleteProduct(ctx context.Context, id string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))
	if id == "" {
		return &ErrorMissingProductID
	}

	if err := ps.productStore.DeleteProduct(ctx, id); err != nil {
		logger.Error("Failed to delete product", log.String("productID", id), log.Error(err))
		return &ErrorInternalServerError
	}
	return nil
}

// validateProductRequest validates the mandatory attributes of a product request.
func validateProductRequest(request ProductRequest) *serviceerror.ServiceError {
	if request.SKU == "" || request.Name == "" {
		return serviceerror.CustomServiceError(ErrorInvalidRequestFormat, "Product SKU and name are required")
	}
	if request.Price < 0 || request.Stock < 0 {
		return &ErrorInvalidPrice
	}
	return nil
}

// validatePaginationParams validates the limit and offset parameters.
func validatePaginationParams(limit, offset int) *serviceerror.ServiceError {
	if limit < 1 || limit > serverconst.MaxPageSize {
		return &ErrorInvalidLimit
	}
	if offset < 0 {
		return &ErrorInvalidOffset
	}
	return nil
}

// buildPaginationLinks builds pagination links for the response.
func buildPaginationLinks(filter ProductFilter, limit, offset, totalCount int) []Link {
	links := make([]Link, 0)

	nameParam := ""
	if filter.Name != "" {
		nameParam = "&name=" + url.QueryEscape(filter.Name)
	}
	link := func(rel string, linkOffset int) Link {
		return Link{
			Href: fmt.Sprintf("/products?offset=%d&limit=%d%s", linkOffset, limit, nameParam),
			Rel:  rel,
		}
	}

	if offset > 0 {
		links = append(links, link("first", 0))

		prevOffset := offset - limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		links = append(links, link("prev", prevOffset))
	}

	if offset+limit < totalCount {
		links = append(links, link("next", offset+limit))
	}

	lastPageOffset := ((totalCount - 1) / limit) * limit
	if offset < lastPageOffset {
		links = append(links, link("last", lastPageOffset))
	}

	return links
}
