package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionSecret: "my secret",
			CSRFKey:       "0123456789abcdef0123456789abcdef",
		},
		Storage: Storage{
			DB: DB{User: "shop", Password: "pass", Name: "shop"},
		},
	}
}

// TestBuild_AppliesDefaults verifies that fields left empty by every source
// are filled from defaultConfig.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "server.cert", cfg.Server.TLSCertFile)
	assert.Equal(t, "server.key", cfg.Server.TLSKeyFile)
	assert.Equal(t, StartupPolicyExit, cfg.Server.StartupPolicy)
	assert.Equal(t, 14*24*time.Hour, cfg.App.SessionTTL)
	assert.Equal(t, "connect.sid", cfg.App.SessionCookieName)
	assert.Equal(t, "images", cfg.Storage.Files.ImagesDir)
	assert.Equal(t, SessionsBackendPostgres, cfg.Storage.SessionsBackend)
	assert.Equal(t, "access.log", cfg.Log.AccessFile)
}

// TestBuild_EarlierSourceWins verifies that the first non-zero value is kept.
func TestBuild_EarlierSourceWins(t *testing.T) {
	first := validConfig()
	first.Server.Port = 8443

	second := &StructuredConfig{Server: Server{Port: 9000, StaticDir: "assets"}}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 8443, cfg.Server.Port)
	assert.Equal(t, "assets", cfg.Server.StaticDir)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing session secret",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionSecret = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "short csrf key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.CSRFKey = "short" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown startup policy",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.StartupPolicy = "retry" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "no database settings",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB = DB{} },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "redis backend without address",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.SessionsBackend = SessionsBackendRedis },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown sessions backend",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.SessionsBackend = "mongo" },
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			_, err := b.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWithJSON_UsesPathFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"static_dir": "from-json"},
	})

	cfg := validConfig()
	cfg.JSONFilePath = path

	b := newConfigBuilder()
	b.configs = append(b.configs, cfg)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-json", b.configs[1].Server.StaticDir)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	require.Error(t, b.err)
}

func TestDB_ConnString(t *testing.T) {
	assert.Equal(t, "postgres://x", DB{DSN: "postgres://x", Name: "ignored"}.ConnString())
	assert.Equal(t,
		"postgres://shop:p%40ss@db:5432/shopdb?sslmode=disable",
		DB{Host: "db:5432", User: "shop", Password: "p@ss", Name: "shopdb"}.ConnString(),
	)
}

func TestServer_Address(t *testing.T) {
	assert.Equal(t, ":3000", Server{Port: 3000}.Address())
	assert.Equal(t, "127.0.0.1:8443", Server{Host: "127.0.0.1", Port: 8443}.Address())
}
