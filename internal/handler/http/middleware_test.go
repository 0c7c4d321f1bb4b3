package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/utils"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		wantEchoed  bool
		wantNewUUID bool
	}{
		{name: "reuses caller trace id", header: "my-custom-trace-id", wantEchoed: true},
		{name: "generates when absent", wantNewUUID: true},
		{name: "replaces oversized header", header: strings.Repeat("x", maxTraceIDBytes+1), wantNewUUID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = w.Header().Get(traceIDHeader)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			assert.Equal(t, got, seen)
			if tt.wantEchoed {
				assert.Equal(t, tt.header, got)
			}
			if tt.wantNewUUID {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/cases", nil)
	l := zerolog.New(&buf)
	req = req.WithContext(l.WithContext(req.Context()))

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, req)

	out := buf.String()
	assert.Equal(t, http.StatusCreated, rr.Code)
	for _, want := range []string{`"method":"POST"`, `"uri":"/api/cases"`, `"status":201`, `"size":7`, `"duration":`} {
		assert.Contains(t, out, want)
	}
}

func TestWithLogging_DefaultsToOK(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	l := zerolog.New(&buf)
	req = req.WithContext(l.WithContext(req.Context()))

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestAuth_PutsPrincipalInContext(t *testing.T) {
	h := &Handler{logger: logger.Nop(), tokens: testConfig().App}
	approver := models.Principal{ID: 44, Email: "approver@legal.lk", Role: models.RoleAgreementApprover, ApproverLevel: 2}

	var got models.Principal
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = utils.GetPrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/agreements", nil)
	req.Header.Set("Authorization", bearer(t, approver))
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	require.True(t, ok)
	assert.Equal(t, approver, got)
}

func TestAuth_TagsLoggerWithPrincipal(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop(), tokens: testConfig().App}
	approver := models.Principal{ID: 44, Email: "approver@legal.lk", Role: models.RoleAgreementApprover, ApproverLevel: 2}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("handled")
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/agreements", nil)
	req.Header.Set("Authorization", bearer(t, approver))
	l := zerolog.New(&buf).With().Str("role", "server").Logger()
	req = req.WithContext(l.WithContext(req.Context()))
	h.auth(next).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"principal_id":44`)
	assert.Contains(t, out, `"principal_role":"AGREEMENT_APPROVER"`)
	assert.Equal(t, 1, strings.Count(out, `"role":`))
	assert.Contains(t, out, `"role":"server"`)
}

func TestAuth_RejectsBadTokens(t *testing.T) {
	expired, err := utils.GenerateJWTToken(testIssuer, officer, -time.Minute, testSignKey)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWTToken("someone-else", officer, time.Hour, testSignKey)
	require.NoError(t, err)
	wrongKey, err := utils.GenerateJWTToken(testIssuer, officer, time.Hour, "other-key")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "expired", header: "Bearer " + expired},
		{name: "wrong issuer", header: "Bearer " + foreign},
		{name: "wrong key", header: "Bearer " + wrongKey},
		{name: "empty", header: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop(), tokens: testConfig().App}
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/api/cases", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.False(t, called)
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		principal  *models.Principal
		wantStatus int
	}{
		{name: "allowed role", principal: &supervisor, wantStatus: http.StatusOK},
		{name: "other role", principal: &officer, wantStatus: http.StatusForbidden},
		{name: "no principal", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

			req := httptest.NewRequest(http.MethodPut, "/api/cases/1/status", nil)
			if tt.principal != nil {
				req = req.WithContext(utils.WithPrincipal(req.Context(), *tt.principal))
			}
			rr := httptest.NewRecorder()
			h.requireRole(models.RoleSupervisor, models.RoleAdmin)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
