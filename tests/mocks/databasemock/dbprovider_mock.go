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

// Package databasemock provides testify based mocks of the database interfaces.
package databasemock

import (
	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/cachengine/internal/system/database/client"
)

// DBProviderInterfaceMock is a mock implementation of provider.DBProviderInterface.
type DBProviderInterfaceMock struct {
	mock.Mock
}

// NewDBProviderInterfaceMock creates a mock and registers the expectation assertion on test cleanup.
func NewDBProviderInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *DBProviderInterfaceMock {
	m := &DBProviderInterfaceMock{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// DBProviderInterfaceMockExpecter records typed expectations.
type DBProviderInterfaceMockExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation recorder.
func (m *DBProviderInterfaceMock) EXPECT() *DBProviderInterfaceMockExpecter {
	return &DBProviderInterfaceMockExpecter{mock: &m.Mock}
}

// GetDBClient mocks the GetDBClient method.
func (m *DBProviderInterfaceMock) GetDBClient() (client.DBClientInterface, error) {
	ret := m.Called()

	var dbClient client.DBClientInterface
	if ret.Get(0) != nil {
		dbClient = ret.Get(0).(client.DBClientInterface)
	}
	return dbClient, ret.Error(1)
}

// DBProviderInterfaceMockGetDBClientCall wraps a GetDBClient expectation.
type DBProviderInterfaceMockGetDBClientCall struct {
	*mock.Call
}

// GetDBClient expects a call to GetDBClient.
func (e *DBProviderInterfaceMockExpecter) GetDBClient() *DBProviderInterfaceMockGetDBClientCall {
	return &DBProviderInterfaceMockGetDBClientCall{Call: e.mock.On("GetDBClient")}
}

// Return sets the values returned by GetDBClient.
func (c *DBProviderInterfaceMockGetDBClientCall) Return(
	dbClient client.DBClientInterface, err error) *DBProviderInterfaceMockGetDBClientCall {
	c.Call.Return(dbClient, err)
	return c
}

// Close mocks the Close method.
func (m *DBProviderInterfaceMock) Close() error {
	return m.Called().Error(0)
}

// DBProviderInterfaceMockCloseCall wraps a Close expectation.
type DBProviderInterfaceMockCloseCall struct {
	*mock.Call
}

// Close expects a call to Close.
func (e *DBProviderInterfaceMockExpecter) Close() *DBProviderInterfaceMockCloseCall {
	return &DBProviderInterfaceMockCloseCall{Call: e.mock.On("Close")}
}

// Return sets the value returned by Close.
func (c *DBProviderInterfaceMockCloseCall) Return(err error) *DBProviderInterfaceMockCloseCall {
	c.Call.Return(err)
	return c
}
