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

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"os"
	"path/filepath"

	"github.com/asgardeo/cachengine/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Catalog DataSource `yaml:"catalog"`
}

// CacheProperty holds the configuration of an individual named cache.
// TTL and CleanupInterval are expressed in seconds.
type CacheProperty struct {
	Name            string `yaml:"name"`
	Disabled        bool   `yaml:"disabled"`
	Size            int    `yaml:"size"`
	TTL             int    `yaml:"ttl"`
	EvictionPolicy  string `yaml:"eviction_policy"`
	CleanupInterval int    `yaml:"cleanup_interval"`
	DisableStats    bool   `yaml:"disable_stats"`
}

// CacheConfig holds the global cache configuration and the per cache overrides.
type CacheConfig struct {
	Disabled        bool            `yaml:"disabled"`
	Size            int             `yaml:"size"`
	TTL             int             `yaml:"ttl"`
	EvictionPolicy  string          `yaml:"eviction_policy"`
	CleanupInterval int             `yaml:"cleanup_interval"`
	Properties      []CacheProperty `yaml:"properties"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Cache    CacheConfig    `yaml:"cache"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetCacheProperty returns the property block configured for the given cache name, if any.
func (c CacheConfig) GetCacheProperty(cacheName string) (CacheProperty, bool) {
	for _, property := range c.Properties {
		if property.Name == cacheName {
			return property, true
		}
	}
	return CacheProperty{}, false
}
