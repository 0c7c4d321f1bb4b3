package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret", TokenIssuer: "legal-idp"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/legal"}, Files: Files{DocumentsDir: "/tmp/docs"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestConfigBuilder_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig(), &StructuredConfig{
		Server: Server{HTTPAddress: "localhost:9999"},
	})

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "secret", cfg.App.TokenSignKey, "zero values do not override")
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultUserCacheTTL, cfg.Storage.Cache.UserTTL)
}

func TestConfigBuilder_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing documents dir", mutate: func(c *StructuredConfig) { c.Storage.Files.DocumentsDir = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing issuer", mutate: func(c *StructuredConfig) { c.App.TokenIssuer = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			_, err := b.build()

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestConfigBuilder_JSONOverridesFlags(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"request_timeout": "5s"}}`), 0o600))

	clearEnvVars(t)
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{
			"-a", "localhost:8080",
			"-d", "postgres://localhost/legal",
			"-f", "/tmp/docs",
			"-token-sign-key", "secret",
			"-token-issuer", "legal-idp",
			"-request-timeout", "1m",
			"-c", p,
		}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

func TestConfigBuilder_PropagatesSourceErrors(t *testing.T) {
	clearEnvVars(t)
	_, err := newConfigBuilder().
		withFlags([]string{"-c", filepath.Join(t.TempDir(), "absent.json")}).
		withJSON().
		build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}
