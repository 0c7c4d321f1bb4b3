package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/config"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.App
		build   models.AppBuildInfo
		want    models.VersionInfo
		wantErr error
	}{
		{
			name:  "configured version wins",
			cfg:   config.App{Version: "1.4.0"},
			build: models.NewAppBuildInfo("1.3.9", "2026-10-01", "abc123"),
			want:  models.VersionInfo{Version: "1.4.0", Date: "2026-10-01", Commit: "abc123"},
		},
		{
			name:  "falls back to linked version",
			build: models.NewAppBuildInfo("v2.0.0-rc.1", "", "def456"),
			want:  models.VersionInfo{Version: "v2.0.0-rc.1", Commit: "def456"},
		},
		{
			name:    "no version anywhere",
			build:   models.NewAppBuildInfo("", "2026-10-01", ""),
			wantErr: ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, tt.build, logger.Nop())
			if tt.wantErr != nil {
				assert.Nil(t, svc)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.GetAppInfo(context.Background()))
		})
	}
}

func TestGetAppInfo_CancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppInfo(ctx).Version)
}
