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

package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/cachengine/internal/system/config"
	"github.com/asgardeo/cachengine/internal/system/database/model"
)

type DBProviderTestSuite struct {
	suite.Suite
}

func TestDBProviderSuite(t *testing.T) {
	suite.Run(t, new(DBProviderTestSuite))
}

func (suite *DBProviderTestSuite) TestGetDBConfig() {
	testCases := []struct {
		name           string
		dataSource     config.DataSource
		expectedDriver string
		expectedDSN    string
		expectedDir    string
	}{
		{
			name: "Postgres",
			dataSource: config.DataSource{
				Type: "postgres", Hostname: "localhost", Port: 5432, Name: "catalog",
				Username: "asgardeo", Password: "secret", SSLMode: "disable",
			},
			expectedDriver: model.DBTypePostgres,
			expectedDSN:    "host=localhost port=5432 user=asgardeo password=secret dbname=catalog sslmode=disable",
		},
		{
			name:           "SQLiteRelativePath",
			dataSource:     config.DataSource{Type: "sqlite", Path: "repository/database/catalog.db", Options: "_pragma=journal_mode(WAL)"},
			expectedDriver: model.DBTypeSQLite,
			expectedDSN:    "/opt/server/repository/database/catalog.db?_pragma=journal_mode(WAL)",
			expectedDir:    "/opt/server/repository/database",
		},
		{
			name:           "SQLiteAbsolutePath",
			dataSource:     config.DataSource{Type: "sqlite", Path: "/var/lib/catalog.db", Options: "?mode=ro"},
			expectedDriver: model.DBTypeSQLite,
			expectedDSN:    "/var/lib/catalog.db?mode=ro",
			expectedDir:    "/var/lib",
		},
		{
			name:           "SQLiteInMemory",
			dataSource:     config.DataSource{Type: "sqlite", Path: ":memory:"},
			expectedDriver: model.DBTypeSQLite,
			expectedDSN:    ":memory:",
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			cfg, err := getDBConfig("/opt/server", tc.dataSource)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedDriver, cfg.driverName)
			assert.Equal(t, tc.expectedDSN, cfg.dsn)
			assert.Equal(t, tc.expectedDir, cfg.dataDir)
		})
	}
}

func (suite *DBProviderTestSuite) TestGetDBConfigUnsupportedType() {
	_, err := getDBConfig("/opt/server", config.DataSource{Type: "oracle"})

	suite.Error(err)
	suite.Contains(err.Error(), "unsupported database type")
}

func (suite *DBProviderTestSuite) TestGetDBClientWithSQLite() {
	provider := NewDBProvider(suite.T().TempDir(), config.DataSource{
		Type:         "sqlite",
		Name:         "catalog",
		Path:         "data/catalog.db",
		MaxOpenConns: 1,
	})
	defer func() {
		suite.NoError(provider.Close())
	}()

	first, err := provider.GetDBClient()
	suite.Require().NoError(err)
	second, err := provider.GetDBClient()
	suite.Require().NoError(err)

	suite.Same(first, second)
	suite.NoError(first.Ping(context.Background()))
}

func (suite *DBProviderTestSuite) TestGetDBClientWithUnsupportedType() {
	provider := NewDBProvider("/opt/server", config.DataSource{Type: "oracle"})

	dbClient, err := provider.GetDBClient()

	suite.Error(err)
	suite.Nil(dbClient)
	suite.NoError(provider.Close())
}
