// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the environment layer of the configuration into cfg.
// Names are the envPrefix chain plus the env tag, e.g. SERVER_ADDRESS,
// STORAGE_DB_DATABASE_URI or APP_PASSWORD_HASH_COST. Unset variables leave
// zero values, which the merge treats as "not provided".
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("reading environment configuration: %w", err)
	}
	return nil
}
