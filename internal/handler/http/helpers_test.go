package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/config"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/mock"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/service"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/utils"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "legal-scale-test"
)

var (
	officer    = models.Principal{ID: 7, Email: "officer@legal.lk", Role: models.RoleLegalOfficer}
	supervisor = models.Principal{ID: 3, Email: "supervisor@legal.lk", Role: models.RoleSupervisor}
)

type mockServices struct {
	cases      *mock.MockCaseService
	money      *mock.MockMoneyRecoveryService
	damages    *mock.MockDamagesRecoveryService
	land       *mock.MockLandService
	criminal   *mock.MockCriminalService
	appeals    *mock.MockAppealService
	inquiries  *mock.MockInquiryService
	otherCases *mock.MockOtherCaseService
	agreements *mock.MockAgreementService
	users      *mock.MockUserDirectoryService
	documents  *mock.MockDocumentService
	appInfo    *mock.MockAppInfoService
}

func newMockServices(t *testing.T) (*service.Services, mockServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := mockServices{
		cases:      mock.NewMockCaseService(ctrl),
		money:      mock.NewMockMoneyRecoveryService(ctrl),
		damages:    mock.NewMockDamagesRecoveryService(ctrl),
		land:       mock.NewMockLandService(ctrl),
		criminal:   mock.NewMockCriminalService(ctrl),
		appeals:    mock.NewMockAppealService(ctrl),
		inquiries:  mock.NewMockInquiryService(ctrl),
		otherCases: mock.NewMockOtherCaseService(ctrl),
		agreements: mock.NewMockAgreementService(ctrl),
		users:      mock.NewMockUserDirectoryService(ctrl),
		documents:  mock.NewMockDocumentService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}

	return &service.Services{
		CaseService:            m.cases,
		MoneyRecoveryService:   m.money,
		DamagesRecoveryService: m.damages,
		LandService:            m.land,
		CriminalService:        m.criminal,
		AppealService:          m.appeals,
		InquiryService:         m.inquiries,
		OtherCaseService:       m.otherCases,
		AgreementService:       m.agreements,
		UserDirectoryService:   m.users,
		DocumentService:        m.documents,
		AppInfoService:         m.appInfo,
	}, m
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer},
	}
}

func newTestHandler(t *testing.T, deps Dependencies) (*Handler, mockServices) {
	t.Helper()
	services, m := newMockServices(t)
	return NewHandler(services, deps, testConfig(), logger.Nop()), m
}

func bearer(t *testing.T, p models.Principal) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, p, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}
