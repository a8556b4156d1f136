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

	"github.com/asgardeo/cachengine/internal/system/cache"
	"github.com/asgardeo/cachengine/internal/system/log"
)

const (
	cachedStoreLoggerComponentName = "CachedBackedProductStore"

	productByIDCacheName  = "ProductByIDCache"
	productListCacheName  = "ProductListCache"
	productCountCacheName = "ProductCountCache"
	productListKeyPrefix  = "products"
	productCountKeyPrefix = "count"
)

// cachedBackedProductStore is the implementation of productStoreInterface that serves reads from caches.
// Listings are cached per filter and page, so every write drops all cached listings.
type cachedBackedProductStore struct {
	productByIDCache  *cache.Store[Product]
	productListCache  *cache.Store[[]Product]
	productCountCache *cache.Store[int]
	store             productStoreInterface
}

// newCachedBackedProductStore wraps the given store with the product caches of the registry.
func newCachedBackedProductStore(registry *cache.Registry, store productStoreInterface) productStoreInterface {
	return &cachedBackedProductStore{
		productByIDCache:  cache.GetCache[Product](registry, productByIDCacheName),
		productListCache:  cache.GetCache[[]Product](registry, productListCacheName),
		productCountCache: cache.GetCache[int](registry, productCountCacheName),
		store:             store,
	}
}

// GetProductListCount returns the number of products matching the filter, using cache if available.
func (cs *cachedBackedProductStore) GetProductListCount(ctx context.Context, filter ProductFilter) (int, error) {
	cacheKey := cache.CreateKey(productCountKeyPrefix, filter)
	if total, ok := cs.productCountCache.Get(cacheKey); ok {
		return total, nil
	}

	total, err := cs.store.GetProductListCount(ctx, filter)
	if err != nil {
		return 0, err
	}
	if err := cs.productCountCache.Set(cacheKey, total); err != nil {
		cs.logger().Error("Failed to cache product count", log.Error(err))
	}
	return total, nil
}

// GetProductList returns a page of products, using cache if available.
func (cs *cachedBackedProductStore) GetProductList(ctx context.Context, filter ProductFilter, limit, offset int) (
	[]Product, error) {
	cacheKey := cache.CreateKey(productListKeyPrefix, filter, limit, offset)
	if products, ok := cs.productListCache.Get(cacheKey); ok {
		return products, nil
	}

	products, err := cs.store.GetProductList(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	if err := cs.productListCache.Set(cacheKey, products); err != nil {
		cs.logger().Error("Failed to cache product list", log.String("cacheKey", cacheKey), log.Error(err))
	}
	return products, nil
}

// CreateProduct creates a new product and caches it.
func (cs *cachedBackedProductStore) CreateProduct(ctx context.Context, product Product) error {
	if err := cs.store.CreateProduct(ctx, product); err != nil {
		return err
	}
	cs.cacheProduct(product)
	cs.invalidateListings()
	return nil
}

// GetProduct retrieves a product by id, using cache if available.
func (cs *cachedBackedProductStore) GetProduct(ctx context.Context, id string) (Product, error) {
	if product, ok := cs.productByIDCache.Get(id); ok {
		return product, nil
	}

	product, err := cs.store.GetProduct(ctx, id)
	if err != nil {
		return Product{}, err
	}
	cs.cacheProduct(product)
	return product, nil
}

// IsSKUConflict checks the SKU against the database. Conflict checks are never cached.
func (cs *cachedBackedProductStore) IsSKUConflict(ctx context.Context, sku, excludeID string) (bool, error) {
	return cs.store.IsSKUConflict(ctx, sku, excludeID)
}

// UpdateProduct updates a product and refreshes the cached copy.
func (cs *cachedBackedProductStore) UpdateProduct(ctx context.Context, product Product) error {
	if err := cs.store.UpdateProduct(ctx, product); err != nil {
		cs.productByIDCache.Delete(product.ID)
		return err
	}
	cs.cacheProduct(product)
	cs.invalidateListings()
	return nil
}

// DeleteProduct deletes a product and invalidates the caches.
func (cs *cachedBackedProductStore) DeleteProduct(ctx context.Context, id string) error {
	if err := cs.store.DeleteProduct(ctx, id); err != nil {
		return err
	}
	cs.productByIDCache.Delete(id)
	cs.invalidateListings()
	return nil
}

// cacheProduct caches the product by its id.
func (cs *cachedBackedProductStore) cacheProduct(product Product) {
	if product.ID == "" {
		return
	}
	if err := cs.productByIDCache.Set(product.ID, product); err != nil {
		cs.logger().Error("Failed to cache product by ID", log.String("productID", product.ID), log.Error(err))
	}
}

// invalidateListings drops every cached listing and count.
func (cs *cachedBackedProductStore) invalidateListings() {
	cs.productListCache.Clear()
	cs.productCountCache.Clear()
}

func (cs *cachedBackedProductStore) logger() *log.Logger {
	return log.GetLogger().With(log.String(log.LoggerKeyComponentName, cachedStoreLoggerComponentName))
}
