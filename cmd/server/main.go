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

// Package main is the entry point for starting the catalog server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/asgardeo/cachengine/internal/system/cache"
	"github.com/asgardeo/cachengine/internal/system/config"
	"github.com/asgardeo/cachengine/internal/system/database/provider"
	"github.com/asgardeo/cachengine/internal/system/log"
	"github.com/asgardeo/cachengine/internal/system/managers"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := log.GetLogger()
	defer logger.Sync()

	serverHome := getServerHome(logger)

	cfg := initServerConfigurations(logger, serverHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	registry := cache.NewRegistry(cfg.Cache)
	dbProvider := provider.NewDBProvider(serverHome, cfg.Database.Catalog)

	mux := initMultiplexer(logger, registry, dbProvider)
	if mux == nil {
		logger.Fatal("Failed to initialize multiplexer")
	}

	startServer(logger, cfg, mux)

	registry.Close()
	if err := dbProvider.Close(); err != nil {
		logger.Error("Failed to close the catalog database", log.Error(err))
	}
	logger.Info("Server stopped")
}

// getServerHome retrieves and returns the server home directory.
func getServerHome(logger *log.Logger) string {
	projectHome := ""
	projectHomeFlag := flag.String("serverHome", "", "Path to the server home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		logger.Info("Using serverHome from command line argument", log.String("serverHome", *projectHomeFlag))
		projectHome = *projectHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			logger.Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		projectHome = dir
	}

	return projectHome
}

// initServerConfigurations loads the deployment configuration and initializes the server runtime.
func initServerConfigurations(logger *log.Logger, serverHome string) *config.Config {
	configFilePath := path.Join(serverHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeServerRuntime(serverHome, cfg); err != nil {
		logger.Fatal("Failed to initialize server runtime", log.Error(err))
	}

	return cfg
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer(logger *log.Logger, registry *cache.Registry,
	dbProvider provider.DBProviderInterface) *http.ServeMux {
	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, registry, dbProvider)

	// Register the services.
	if err := serviceManager.RegisterServices(); err != nil {
		logger.Fatal("Failed to register the services", log.Error(err))
	}

	return mux
}

// startServer serves requests until the process receives an interrupt or termination signal.
func startServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) {
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           log.AccessLogHandler(logger, mux),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Catalog server started (HTTP)...", log.String("address", serverAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Fatal("Failed to serve HTTP requests", log.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutting down the server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down the server gracefully", log.Error(err))
	}
}
