package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

func TestMoneyRecovery_FindDetails(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMoneyRecoveryRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM money_recovery_details WHERE case_id = $1")).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(moneyRecoveryColumns).
			AddRow(1, 10, "1000.00", "Debtor Ltd", "", "", nil, "", 2, testTime, nil, nil))

	d, err := repo.FindDetails(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.ClaimedAmount.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("unexpected claimed amount %s", d.ClaimedAmount)
	}
	if d.DueDate != nil {
		t.Errorf("expected nil due date, got %v", d.DueDate)
	}
	expectationsMet(t, mock)
}

func TestRecoveryTransactions_UseTypeSpecificTable(t *testing.T) {
	tests := []struct {
		name  string
		list  func(db *DB) ([]models.RecoveryTransaction, error)
		table string
	}{
		{
			name: "money recovery",
			list: func(db *DB) ([]models.RecoveryTransaction, error) {
				return NewMoneyRecoveryRepository(db, logger.Nop()).ListTransactions(context.Background(), 1)
			},
			table: "money_recovery_transactions",
		},
		{
			name: "damages recovery",
			list: func(db *DB) ([]models.RecoveryTransaction, error) {
				return NewDamagesRecoveryRepository(db, logger.Nop()).ListTransactions(context.Background(), 1)
			},
			table: "damages_recovery_transactions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)

			mock.ExpectQuery(regexp.QuoteMeta("FROM " + tt.table + " WHERE detail_id = $1 ORDER BY transaction_date, id")).
				WithArgs(int64(1)).
				WillReturnRows(sqlmock.NewRows(recoveryTransactionColumns).
					AddRow(5, 1, "250.00", testTime, "PAYMENT", "RCPT-1", "", 2, testTime, nil, nil))

			txs, err := tt.list(db)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(txs) != 1 || txs[0].Kind != models.TransactionPayment {
				t.Errorf("unexpected transactions %+v", txs)
			}
			expectationsMet(t, mock)
		})
	}
}

func TestCreateTransaction_RejectedByCheck(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMoneyRecoveryRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO money_recovery_transactions").WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.CreateTransaction(context.Background(), models.RecoveryTransaction{DetailID: 1})
	if !errors.Is(err, ErrConstraintViolated) {
		t.Fatalf("expected ErrConstraintViolated, got %v", err)
	}
}

func TestLandReferenceExists(t *testing.T) {
	tests := []struct {
		name    string
		exclude int64
		query   string
		args    []any
	}{
		{
			name:  "no exclusion",
			query: "FROM land_details WHERE (land_reference_number = $1)",
			args:  []any{"LR-77"},
		},
		{
			name:    "excluding own details",
			exclude: 3,
			query:   "FROM land_details WHERE (land_reference_number = $1 AND id <> $2)",
			args:    []any{"LR-77", int64(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewLandRepository(db, logger.Nop())

			args := make([]driver.Value, len(tt.args))
			for i, a := range tt.args {
				args[i] = a
			}
			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).
				WithArgs(args...).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

			found, err := repo.LandReferenceExists(context.Background(), "LR-77", tt.exclude)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !found {
				t.Error("expected reference to exist")
			}
			expectationsMet(t, mock)
		})
	}
}

func TestCreateOwnership_SecondOpenRecordIsDuplicate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLandRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO land_ownership_records").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateOwnership(context.Background(), models.OwnershipRecord{DetailID: 1, OwnerName: "B"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestLandUniqueConstraints_MapToDuplicate(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		constraint string
		call       func(r LandRepository) error
	}{
		{
			name:       "second current owner on insert",
			query:      "INSERT INTO land_ownership_records",
			constraint: "uq_land_current_owner",
			call: func(r LandRepository) error {
				_, err := r.CreateOwnership(context.Background(), models.OwnershipRecord{DetailID: 1, OwnerName: "B"})
				return err
			},
		},
		{
			name:       "end date cleared on update",
			query:      "UPDATE land_ownership_records",
			constraint: "uq_land_current_owner",
			call: func(r LandRepository) error {
				_, err := r.UpdateOwnership(context.Background(), models.OwnershipRecord{ID: 2, DetailID: 1, OwnerName: "A"})
				return err
			},
		},
		{
			name:       "reference number taken by another case",
			query:      "INSERT INTO land_details",
			constraint: "uq_land_reference_number",
			call: func(r LandRepository) error {
				_, err := r.CreateDetails(context.Background(), models.LandDetails{
					DetailAudit:         models.DetailAudit{CaseID: 40},
					LandReferenceNumber: "LR-77",
				})
				return err
			},
		},
		{
			name:       "reference number changed to a taken one",
			query:      "UPDATE land_details",
			constraint: "uq_land_reference_number",
			call: func(r LandRepository) error {
				_, err := r.UpdateDetails(context.Background(), models.LandDetails{
					DetailAudit:         models.DetailAudit{ID: 2, CaseID: 40},
					LandReferenceNumber: "LR-77",
				})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewLandRepository(db, logger.Nop())

			mock.ExpectQuery(tt.query).WillReturnError(&pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: tt.constraint,
			})

			err := tt.call(repo)
			if !errors.Is(err, ErrDuplicate) {
				t.Fatalf("expected ErrDuplicate, got %v", err)
			}
			var pgErr *pgconn.PgError
			if !errors.As(err, &pgErr) || pgErr.ConstraintName != tt.constraint {
				t.Errorf("expected constraint %s to be kept in the chain, got %v", tt.constraint, err)
			}
			expectationsMet(t, mock)
		})
	}
}

func TestAppealDetails_OriginalCaseVariants(t *testing.T) {
	tests := []struct {
		name        string
		originalID  any
		originalRef any
		want        *models.OriginalCaseLink
	}{
		{"internal", int64(4), nil, models.InternalCase(4)},
		{"external", nil, "SC/APPEAL/12/2024", models.ExternalCase("SC/APPEAL/12/2024")},
		{"none", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewAppealRepository(db, logger.Nop())

			mock.ExpectQuery("FROM appeal_details WHERE case_id =").
				WillReturnRows(sqlmock.NewRows(appealColumns).
					AddRow(1, 20, tt.originalID, tt.originalRef, "Court of Appeal", "CA-1", "", "", "", nil, 2, testTime, nil, nil))

			d, err := repo.FindDetails(context.Background(), 20)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			switch {
			case tt.want == nil && d.OriginalCase != nil:
				t.Errorf("expected no link, got %+v", d.OriginalCase)
			case tt.want != nil && d.OriginalCase == nil:
				t.Errorf("expected link %+v, got none", tt.want)
			case tt.want != nil:
				if d.OriginalCase.Kind != tt.want.Kind || d.OriginalCase.Reference != tt.want.Reference {
					t.Errorf("expected %+v, got %+v", tt.want, d.OriginalCase)
				}
			}
		})
	}
}

func TestAppealValues_WritesExactlyOneVariant(t *testing.T) {
	internal := appealValues(models.AppealDetails{OriginalCase: models.InternalCase(4)})
	if id, ok := internal["original_case_id"].(*int64); !ok || id == nil || *id != 4 {
		t.Errorf("expected original_case_id 4, got %v", internal["original_case_id"])
	}
	if ref, _ := internal["original_case_ref"].(*string); ref != nil {
		t.Errorf("expected no original_case_ref, got %v", *ref)
	}

	external := appealValues(models.AppealDetails{OriginalCase: models.ExternalCase("HC/1")})
	if id, _ := external["original_case_id"].(*int64); id != nil {
		t.Errorf("expected no original_case_id, got %v", *id)
	}
	if ref, ok := external["original_case_ref"].(*string); !ok || ref == nil || *ref != "HC/1" {
		t.Errorf("expected original_case_ref HC/1, got %v", external["original_case_ref"])
	}
}

func TestAttributeNameExists_ExcludesSelf(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOtherCaseRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM other_case_attributes WHERE (detail_id = $1 AND name = $2 AND id <> $3)")).
		WithArgs(int64(2), "Priority", int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	found, err := repo.AttributeNameExists(context.Background(), 2, "Priority", 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected no clash")
	}
	expectationsMet(t, mock)
}

func TestListFindings_OrderedByNumber(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInquiryRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM inquiry_findings WHERE detail_id = $1 ORDER BY finding_number")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(findingColumns).
			AddRow(11, 3, 1, "Procedures ignored", "HIGH", 2, testTime, nil, nil).
			AddRow(12, 3, 2, "Records missing", "MEDIUM", 2, testTime, nil, nil))

	findings, err := repo.ListFindings(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(findings) != 2 || findings[1].FindingNumber != 2 {
		t.Errorf("unexpected findings %+v", findings)
	}
	expectationsMet(t, mock)
}
