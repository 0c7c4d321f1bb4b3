package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
	"github.com/jackc/pgerrcode"
)

func agreementRow(rows *sqlmock.Rows, id int64, status models.AgreementStatus) *sqlmock.Rows {
	return rows.AddRow(
		id, "Office lease", "LEASE", "Ministry; Lanka Estates", nil, nil, nil, "", nil,
		status, 4, testTime, nil, nil, nil, nil,
		nil, false, nil, testTime,
	)
}

func TestLockAgreement_UsesForUpdate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAgreementRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM agreements WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(5)).
		WillReturnRows(agreementRow(sqlmock.NewRows(agreementColumns), 5, models.AgreementApproved))

	a, err := repo.LockAgreement(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != models.AgreementApproved {
		t.Errorf("expected APPROVED, got %s", a.Status)
	}
	if a.CaseID != nil {
		t.Errorf("expected no linked case, got %v", *a.CaseID)
	}
	expectationsMet(t, mock)
}

func TestListAgreements_FiltersByStatus(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAgreementRepository(db, logger.Nop())
	status := models.AgreementPendingApproval

	mock.ExpectQuery(regexp.QuoteMeta("FROM agreements WHERE status = $1 ORDER BY created_at DESC, id DESC")).
		WithArgs(status).
		WillReturnRows(agreementRow(sqlmock.NewRows(agreementColumns), 5, status))

	agreements, err := repo.ListAgreements(context.Background(), models.AgreementListFilter{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(agreements) != 1 {
		t.Errorf("expected one agreement, got %d", len(agreements))
	}
	expectationsMet(t, mock)
}

func TestNextVersionNumber(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAgreementRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(version_number), 0) + 1 FROM agreement_versions WHERE agreement_id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(3))

	n, err := repo.NextVersionNumber(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("expected version 3, got %d", n)
	}
	expectationsMet(t, mock)
}

func TestListVersions_NoAgreements(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAgreementRepository(db, logger.Nop())

	versions, err := repo.ListVersions(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if versions == nil || len(versions) != 0 {
		t.Errorf("expected an empty list, got %v", versions)
	}
	expectationsMet(t, mock)
}

func TestCreateSignature_SecondSignatureIsDuplicate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAgreementRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO agreement_signatures").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateSignature(context.Background(), models.DigitalSignature{AgreementID: 5, SignerID: 9, SignatureKey: "key"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestFindSignature_NotSigned(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAgreementRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM agreement_signatures WHERE agreement_id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(signatureColumns))

	_, err := repo.FindSignature(context.Background(), 5)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
