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

	"github.com/stretchr/testify/mock"
)

// productStoreInterfaceMock is a mock implementation of productStoreInterface.
type productStoreInterfaceMock struct {
	mock.Mock
}

func newProductStoreInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *productStoreInterfaceMock {
	m := &productStoreInterfaceMock{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type productStoreInterfaceMockExpecter struct {
	mock *mock.Mock
}

func (m *productStoreInterfaceMock) EXPECT() *productStoreInterfaceMockExpecter {
	return &productStoreInterfaceMockExpecter{mock: &m.Mock}
}

func (m *productStoreInterfaceMock) GetProductListCount(ctx context.Context, filter ProductFilter) (int, error) {
	ret := m.Called(ctx, filter)
	return ret.Int(0), ret.Error(1)
}

func (e *productStoreInterfaceMockExpecter) GetProductListCount(ctx, filter any) *mock.Call {
	return e.mock.On("GetProductListCount", ctx, filter)
}

func (m *productStoreInterfaceMock) GetProductList(ctx context.Context, filter ProductFilter, limit, offset int) (
	[]Product, error) {
	ret := m.Called(ctx, filter, limit, offset)

	var products []Product
	if ret.Get(0) != nil {
		products = ret.Get(0).([]Product)
	}
	return products, ret.Error(1)
}

func (e *productStoreInterfaceMockExpecter) GetProductList(ctx, filter, limit, offset any) *mock.Call {
	return e.mock.On("GetProductList", ctx, filter, limit, offset)
}

func (m *productStoreInterfaceMock) CreateProduct(ctx context.Context, product Product) error {
	return m.Called(ctx, product).Error(0)
}

func (e *productStoreInterfaceMockExpecter) CreateProduct(ctx, product any) *mock.Call {
	return e.mock.On("CreateProduct", ctx, product)
}

func (m *productStoreInterfaceMock) GetProduct(ctx context.Context, id string) (Product, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(Product), ret.Error(1)
}

func (e *productStoreInterfaceMockExpecter) GetProduct(ctx, id any) *mock.Call {
	return e.mock.On("GetProduct", ctx, id)
}

func (m *productStoreInterfaceMock) IsSKUConflict(ctx context.Context, sku, excludeID string) (bool, error) {
	ret := m.Called(ctx, sku, excludeID)
	return ret.Bool(0), ret.Error(1)
}

func (e *productStoreInterfaceMockExpecter) IsSKUConflict(ctx, sku, excludeID any) *mock.Call {
	return e.mock.On("IsSKUConflict", ctx, sku, excludeID)
}

func (m *productStoreInterfaceMock) UpdateProduct(ctx context.Context, product Product) error {
	return m.Called(ctx, product).Error(0)
}

func (e *productStoreInterfaceMockExpecter) UpdateProduct(ctx, product any) *mock.Call {
	return e.mock.On("UpdateProduct", ctx, product)
}

func (m *productStoreInterfaceMock) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (e *productStoreInterfaceMockExpecter) DeleteProduct(ctx, id any) *mock.Call {
	return e.mock.On("DeleteProduct", ctx, id)
}
