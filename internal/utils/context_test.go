package utils

import (
	"context"
	"testing"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	assert.Equal(t, "testKey", key.String())
}

func TestPrincipalCtxKey(t *testing.T) {
	assert.Equal(t, "principal", PrincipalCtxKey.String())
}

func TestGetPrincipalFromContext(t *testing.T) {
	officer := models.Principal{ID: 42, Email: "officer@example.com", Role: models.RoleLegalOfficer}

	tests := []struct {
		name   string
		ctx    context.Context
		want   models.Principal
		wantOk bool
	}{
		{
			name:   "principal present",
			ctx:    WithPrincipal(context.Background(), officer),
			want:   officer,
			wantOk: true,
		},
		{
			name:   "missing",
			ctx:    context.Background(),
			wantOk: false,
		},
		{
			name:   "wrong type",
			ctx:    context.WithValue(context.Background(), PrincipalCtxKey, "admin"),
			wantOk: false,
		},
		{
			name:   "zero principal",
			ctx:    WithPrincipal(context.Background(), models.Principal{}),
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetPrincipalFromContext(tt.ctx)

			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
