package main

import (
	"errors"
	"os"

	"battleforge/internal/config"
	"battleforge/internal/constants"
	"battleforge/internal/logging"
	"battleforge/internal/storage"
)

const defaultConfigPath = "./battleforge_config.json"

// loadConfigOrExit resolves the config file path and loads it. An absent
// default file falls back to the shipped defaults; an explicitly configured
// path must exist.
func loadConfigOrExit() *config.LoadedConfig {
	path := os.Getenv(constants.EnvConfigPath)
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid configuration", err, logging.Fields{"config_path": path, "hint": "create a battleforge_config.json with optional server, timeouts and classes sections"})
	}
	return cfg
}

func createRepositoryOrExit(databasePath string) storage.Repository {
	db, err := storage.OpenAndMigrate(databasePath)
	if err != nil {
		logging.Fatal("Failed to open database", err, logging.Fields{"database_path": databasePath})
	}
	return storage.NewSQLiteRepository(db)
}
