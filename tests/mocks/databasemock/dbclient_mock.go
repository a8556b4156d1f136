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

package databasemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/cachengine/internal/system/database/model"
)

// DBClientInterfaceMock is a mock implementation of client.DBClientInterface.
type DBClientInterfaceMock struct {
	mock.Mock
}

// NewDBClientInterfaceMock creates a mock and registers the expectation assertion on test cleanup.
func NewDBClientInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *DBClientInterfaceMock {
	m := &DBClientInterfaceMock{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// DBClientInterfaceMockExpecter records typed expectations.
type DBClientInterfaceMockExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation recorder.
func (m *DBClientInterfaceMock) EXPECT() *DBClientInterfaceMockExpecter {
	return &DBClientInterfaceMockExpecter{mock: &m.Mock}
}

// Query mocks the Query method. The query arguments are flattened into the call arguments.
func (m *DBClientInterfaceMock) Query(ctx context.Context, query model.DBQuery, args ...any) (
	[]map[string]any, error) {
	ret := m.Called(append([]any{ctx, query}, args...)...)

	var results []map[string]any
	if ret.Get(0) != nil {
		results = ret.Get(0).([]map[string]any)
	}
	return results, ret.Error(1)
}

// DBClientInterfaceMockQueryCall wraps a Query expectation.
type DBClientInterfaceMockQueryCall struct {
	*mock.Call
}

// Query expects a call to Query with the given arguments.
func (e *DBClientInterfaceMockExpecter) Query(ctx any, query any, args ...any) *DBClientInterfaceMockQueryCall {
	return &DBClientInterfaceMockQueryCall{Call: e.mock.On("Query", append([]any{ctx, query}, args...)...)}
}

// Return sets the values returned by Query.
func (c *DBClientInterfaceMockQueryCall) Return(results []map[string]any, err error) *DBClientInterfaceMockQueryCall {
	c.Call.Return(results, err)
	return c
}

// Execute mocks the Execute method. The query arguments are flattened into the call arguments.
func (m *DBClientInterfaceMock) Execute(ctx context.Context, query model.DBQuery, args ...any) (int64, error) {
	ret := m.Called(append([]any{ctx, query}, args...)...)
	return ret.Get(0).(int64), ret.Error(1)
}

// DBClientInterfaceMockExecuteCall wraps an Execute expectation.
type DBClientInterfaceMockExecuteCall struct {
	*mock.Call
}

// Execute expects a call to Execute with the given arguments.
func (e *DBClientInterfaceMockExpecter) Execute(ctx any, query any, args ...any) *DBClientInterfaceMockExecuteCall {
	return &DBClientInterfaceMockExecuteCall{Call: e.mock.On("Execute", append([]any{ctx, query}, args...)...)}
}

// Return sets the values returned by Execute.
func (c *DBClientInterfaceMockExecuteCall) Return(rowsAffected int64, err error) *DBClientInterfaceMockExecuteCall {
	c.Call.Return(rowsAffected, err)
	return c
}

// BeginTx mocks the BeginTx method.
func (m *DBClientInterfaceMock) BeginTx(ctx context.Context) (model.TxInterface, error) {
	ret := m.Called(ctx)

	var tx model.TxInterface
	if ret.Get(0) != nil {
		tx = ret.Get(0).(model.TxInterface)
	}
	return tx, ret.Error(1)
}

// Ping mocks the Ping method.
func (m *DBClientInterfaceMock) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// DBClientInterfaceMockPingCall wraps a Ping expectation.
type DBClientInterfaceMockPingCall struct {
	*mock.Call
}

// Ping expects a call to Ping.
func (e *DBClientInterfaceMockExpecter) Ping(ctx any) *DBClientInterfaceMockPingCall {
	return &DBClientInterfaceMockPingCall{Call: e.mock.On("Ping", ctx)}
}

// Return sets the value returned by Ping.
func (c *DBClientInterfaceMockPingCall) Return(err error) *DBClientInterfaceMockPingCall {
	c.Call.Return(err)
	return c
}

// Close mocks the Close method.
func (m *DBClientInterfaceMock) Close() error {
	return m.Called().Error(0)
}

// DBClientInterfaceMockCloseCall wraps a Close expectation.
type DBClientInterfaceMockCloseCall struct {
	*mock.Call
}

// Close expects a call to Close.
func (e *DBClientInterfaceMockExpecter) Close() *DBClientInterfaceMockCloseCall {
	return &DBClientInterfaceMockCloseCall{Call: e.mock.On("Close")}
}

// Return sets the value returned by Close.
func (c *DBClientInterfaceMockCloseCall) Return(err error) *DBClientInterfaceMockCloseCall {
	c.Call.Return(err)
	return c
}
