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

// Package provider opens the configured data sources and hands out database clients.
package provider

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path"
	"sync"
	"time"

	"github.com/asgardeo/cachengine/internal/system/config"
	"github.com/asgardeo/cachengine/internal/system/database/client"
	"github.com/asgardeo/cachengine/internal/system/database/model"
	"github.com/asgardeo/cachengine/internal/system/log"
)

const (
	loggerComponentName = "DBProvider"
	pingTimeout         = 5 * time.Second
)

// dbConfig represents the resolved driver configuration of a data source.
type dbConfig struct {
	dsn        string
	driverName string
	dataDir    string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient() (client.DBClientInterface, error)
	Close() error
}

// DBProvider lazily opens a single data source and shares the client.
type DBProvider struct {
	serverHome string
	dataSource config.DataSource
	dbClient   client.DBClientInterface
	mutex      sync.RWMutex
}

// NewDBProvider creates a provider for the given data source. Relative SQLite paths
// are resolved against serverHome.
func NewDBProvider(serverHome string, dataSource config.DataSource) DBProviderInterface {
	return &DBProvider{
		serverHome: serverHome,
		dataSource: dataSource,
	}
}

// GetDBClient returns the database client, opening the connection pool on first use.
// Not required to close the returned client manually since the provider owns it.
func (d *DBProvider) GetDBClient() (client.DBClientInterface, error) {
	d.mutex.RLock()
	if d.dbClient != nil {
		dbClient := d.dbClient
		d.mutex.RUnlock()
		return dbClient, nil
	}
	d.mutex.RUnlock()

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.dbClient != nil {
		return d.dbClient, nil
	}

	dbClient, err := d.openClient()
	if err != nil {
		return nil, err
	}
	d.dbClient = dbClient
	return dbClient, nil
}

// Close closes the connection pool if it was opened.
func (d *DBProvider) Close() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.dbClient == nil {
		return nil
	}

	err := d.dbClient.Close()
	d.dbClient = nil
	if err != nil {
		return fmt.Errorf("failed to close database %s: %w", d.dataSource.Name, err)
	}

	log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
		Debug("Database connection closed", log.String("database", d.dataSource.Name))
	return nil
}

// openClient opens and verifies the connection pool of the data source.
func (d *DBProvider) openClient() (client.DBClientInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	cfg, err := getDBConfig(d.serverHome, d.dataSource)
	if err != nil {
		return nil, err
	}
	dbName := d.dataSource.Name

	if cfg.dataDir != "" {
		if err := os.MkdirAll(cfg.dataDir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create data directory for %s: %w", dbName, err)
		}
	}

	db, err := sql.Open(cfg.driverName, cfg.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dbName, err)
	}

	// Unset pool limits keep the database/sql defaults.
	if d.dataSource.MaxOpenConns > 0 {
		db.SetMaxOpenConns(d.dataSource.MaxOpenConns)
	}
	if d.dataSource.MaxIdleConns > 0 {
		db.SetMaxIdleConns(d.dataSource.MaxIdleConns)
	}
	if d.dataSource.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(d.dataSource.ConnMaxLifetime) * time.Second)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database %s: %w (close error: %w)", dbName, err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database %s: %w", dbName, err)
	}

	if cfg.driverName == model.DBTypeSQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				return nil, fmt.Errorf("failed to enable foreign key constraints for %s: %w (close error: %w)",
					dbName, err, closeErr)
			}
			return nil, fmt.Errorf("failed to enable foreign key constraints for %s: %w", dbName, err)
		}
	}

	logger.Debug("Database connection opened", log.String("database", dbName),
		log.String("driver", cfg.driverName), log.String("username", log.MaskString(d.dataSource.Username)))
	return client.NewDBClient(model.NewDB(db), cfg.driverName), nil
}

// getDBConfig returns the driver name and DSN of the data source.
func getDBConfig(serverHome string, dataSource config.DataSource) (dbConfig, error) {
	switch dataSource.Type {
	case model.DBTypePostgres:
		return dbConfig{
			driverName: model.DBTypePostgres,
			dsn: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
				dataSource.Name, dataSource.SSLMode),
		}, nil
	case model.DBTypeSQLite:
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		if dataSource.Path == ":memory:" {
			return dbConfig{driverName: model.DBTypeSQLite, dsn: dataSource.Path + options}, nil
		}
		dbPath := dataSource.Path
		if !path.IsAbs(dbPath) {
			dbPath = path.Join(serverHome, dbPath)
		}
		return dbConfig{
			driverName: model.DBTypeSQLite,
			dsn:        dbPath + options,
			dataDir:    path.Dir(dbPath),
		}, nil
	default:
		return dbConfig{}, fmt.Errorf("unsupported database type: %s", dataSource.Type)
	}
}
