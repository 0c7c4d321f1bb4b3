package service

import (
	"context"
	"testing"
	"time"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/mock"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// passThroughTx runs the unit of work without a database.
type passThroughTx struct{}

func (passThroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockStorages struct {
	cases      *mock.MockCaseRepository
	users      *mock.MockUserRepository
	documents  *mock.MockDocumentStorage
	money      *mock.MockMoneyRecoveryRepository
	damages    *mock.MockDamagesRecoveryRepository
	land       *mock.MockLandRepository
	criminal   *mock.MockCriminalRepository
	appeals    *mock.MockAppealRepository
	inquiries  *mock.MockInquiryRepository
	otherCases *mock.MockOtherCaseRepository
	agreements *mock.MockAgreementRepository
}

func newMockStorages(t *testing.T) (*store.Storages, mockStorages) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := mockStorages{
		cases:      mock.NewMockCaseRepository(ctrl),
		users:      mock.NewMockUserRepository(ctrl),
		documents:  mock.NewMockDocumentStorage(ctrl),
		money:      mock.NewMockMoneyRecoveryRepository(ctrl),
		damages:    mock.NewMockDamagesRecoveryRepository(ctrl),
		land:       mock.NewMockLandRepository(ctrl),
		criminal:   mock.NewMockCriminalRepository(ctrl),
		appeals:    mock.NewMockAppealRepository(ctrl),
		inquiries:  mock.NewMockInquiryRepository(ctrl),
		otherCases: mock.NewMockOtherCaseRepository(ctrl),
		agreements: mock.NewMockAgreementRepository(ctrl),
	}
	return &store.Storages{
		Transactor:      passThroughTx{},
		Users:           m.users,
		Documents:       m.documents,
		Cases:           m.cases,
		MoneyRecovery:   m.money,
		DamagesRecovery: m.damages,
		Land:            m.land,
		Criminal:        m.criminal,
		Appeals:         m.appeals,
		Inquiries:       m.inquiries,
		OtherCases:      m.otherCases,
		Agreements:      m.agreements,
	}, m
}

var fixedNow = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

var (
	legalOfficer = models.Principal{ID: 7, FullName: "Nimal Perera", Role: models.RoleLegalOfficer}
	supervisor   = models.Principal{ID: 3, FullName: "Ayesha Silva", Role: models.RoleSupervisor}
)

func activeCase(id int64, caseType models.CaseType) models.Case {
	return models.Case{ID: id, CaseType: caseType, Status: models.CaseStatusActive, ReferenceNumber: "LC/2026/001"}
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year int, month time.Month, day int) models.Date {
	return models.NewDate(year, month, day)
}
