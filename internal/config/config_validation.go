// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSecret == "" {
		return fmt.Errorf("%w: session secret is empty", ErrInvalidAppConfigs)
	}

	if len(cfg.App.CSRFKey) != 32 {
		return fmt.Errorf("%w: csrf key must be 32 bytes, got %d", ErrInvalidAppConfigs, len(cfg.App.CSRFKey))
	}

	if cfg.App.SessionTTL <= 0 {
		return fmt.Errorf("%w: session ttl must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.Server.StartupPolicy {
	case StartupPolicyExit, StartupPolicyDegraded:
	default:
		return fmt.Errorf("%w: unknown startup policy %q", ErrInvalidServerConfigs, cfg.Server.StartupPolicy)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Storage.DB.DSN == "" && (cfg.Storage.DB.Name == "" || cfg.Storage.DB.User == "") {
		return fmt.Errorf("%w: either a DSN or database name and user are required", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.SessionsBackend {
	case SessionsBackendPostgres:
	case SessionsBackendRedis:
		if cfg.Storage.Redis.Address == "" {
			return fmt.Errorf("%w: redis session backend requires an address", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown sessions backend %q", ErrInvalidStorageConfigs, cfg.Storage.SessionsBackend)
	}

	if cfg.Workers.SessionSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
