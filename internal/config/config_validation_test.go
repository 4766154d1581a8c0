package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
		driver  string
	}{
		{
			name:   "sqlite file",
			mutate: func(cfg *StructuredConfig) {},
			driver: DriverSQLite,
		},
		{
			name:   "postgres url",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "postgresql://localhost/courses" },
			driver: DriverPostgres,
		},
		{
			name:   "postgres keyword dsn",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "host=localhost dbname=courses" },
			driver: DriverPostgres,
		},
		{
			name: "explicit driver kept",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB.Driver = DriverSQLite
				cfg.Storage.DB.DSN = "file:courses.db?cache=shared"
			},
			driver: DriverSQLite,
		},
		{
			name:    "missing address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "hash cost too low",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 3 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "hash cost too high",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 32 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.App.LogLevel = "loud" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBase()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.driver, cfg.Storage.DB.Driver)
		})
	}
}
