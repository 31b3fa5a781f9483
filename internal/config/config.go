package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"battleforge/internal/constants"
	"battleforge/internal/game"
)

// Defaults applied when the config file omits a key.
const (
	defaultAddress          = ":8080"
	defaultDatabasePath     = "battleforge.db"
	defaultTurnTimeout      = 30 * time.Second
	defaultBattleExpiry     = 3600 * time.Second
	defaultWildcardDecision = 10 * time.Second
)

type rawConfig struct {
	Server *struct {
		Address      string `json:"address"`
		DatabasePath string `json:"database_path"`
	} `json:"server"`
	Timeouts *struct {
		TurnSeconds             int64 `json:"turn_seconds"`
		BattleExpirySeconds     int64 `json:"battle_expiry_seconds"`
		WildcardDecisionSeconds int64 `json:"wildcard_decision_seconds"`
	} `json:"timeouts"`
	// Optional per-class stat overrides; unlisted classes keep the shipped
	// defaults.
	Classes map[game.CharacterClass]game.BaseStats `json:"classes"`
}

// LoadedConfig is the fully-resolved server configuration.
type LoadedConfig struct {
	ServerAddress string
	DatabasePath  string

	TurnTimeout             time.Duration
	BattleExpiry            time.Duration
	WildcardDecisionTimeout time.Duration

	ClassStats map[game.CharacterClass]game.BaseStats
}

// LoadConfig reads the JSON configuration file at path, applies environment
// overrides and fills in defaults. An empty path yields a pure-defaults
// configuration, which is enough to run locally. A .env file next to the
// binary is honored when present.
func LoadConfig(path string) (*LoadedConfig, error) {
	_ = godotenv.Load()

	cfg := &LoadedConfig{
		ServerAddress:           defaultAddress,
		DatabasePath:            defaultDatabasePath,
		TurnTimeout:             defaultTurnTimeout,
		BattleExpiry:            defaultBattleExpiry,
		WildcardDecisionTimeout: defaultWildcardDecision,
		ClassStats:              game.DefaultBaseStats(),
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		var rc rawConfig
		if err := json.Unmarshal(b, &rc); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}

		if rc.Server != nil {
			if rc.Server.Address != "" {
				cfg.ServerAddress = rc.Server.Address
			}
			if rc.Server.DatabasePath != "" {
				cfg.DatabasePath = rc.Server.DatabasePath
			}
		}
		if rc.Timeouts != nil {
			if rc.Timeouts.TurnSeconds > 0 {
				cfg.TurnTimeout = time.Duration(rc.Timeouts.TurnSeconds) * time.Second
			}
			if rc.Timeouts.BattleExpirySeconds > 0 {
				cfg.BattleExpiry = time.Duration(rc.Timeouts.BattleExpirySeconds) * time.Second
			}
			if rc.Timeouts.WildcardDecisionSeconds > 0 {
				cfg.WildcardDecisionTimeout = time.Duration(rc.Timeouts.WildcardDecisionSeconds) * time.Second
			}
		}
		for class, stats := range rc.Classes {
			if !class.Valid() {
				return nil, fmt.Errorf("config file %s: unknown class %q", path, class)
			}
			if stats.MaxHP == 0 || stats.DamageMin == 0 || stats.DamageMax < stats.DamageMin {
				return nil, fmt.Errorf("config file %s: invalid stat line for class %q", path, class)
			}
			cfg.ClassStats[class] = stats
		}
	}

	if v := os.Getenv(constants.EnvListenAddr); v != "" {
		cfg.ServerAddress = v
	}
	if v := os.Getenv(constants.EnvDBPath); v != "" {
		cfg.DatabasePath = v
	}

	return cfg, nil
}
