package config

import "time"

const (
	defaultRequestTimeout = 30 * time.Second
	defaultUserCacheTTL   = 5 * time.Minute
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.Cache.UserTTL == 0 {
		cfg.Storage.Cache.UserTTL = defaultUserCacheTTL
	}
}

// validate checks that the final merged [StructuredConfig] carries everything
// the server needs at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.DocumentsDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
