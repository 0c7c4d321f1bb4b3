package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

var detailAuditColumns = []string{"created_by", "created_at", "last_updated_by", "last_updated_at"}

var childAuditColumns = []string{"recorded_by", "recorded_at", "updated_by", "updated_at"}

var recoveryTransactionColumns = append([]string{
	"id", "detail_id", "amount", "transaction_date", "kind", "reference", "remarks",
}, childAuditColumns...)

func detailAuditValues(a models.DetailAudit) map[string]any {
	return map[string]any{
		"case_id":    a.CaseID,
		"created_by": a.CreatedBy,
		"created_at": a.CreatedAt,
	}
}

func detailUpdateValues(a models.DetailAudit) map[string]any {
	return map[string]any{
		"last_updated_by": a.LastUpdatedBy,
		"last_updated_at": a.LastUpdatedAt,
	}
}

func childInsertValues(a models.ChildAudit) map[string]any {
	return map[string]any{
		"recorded_by": a.RecordedBy,
		"recorded_at": a.RecordedAt,
	}
}

func childUpdateValues(a models.ChildAudit) map[string]any {
	return map[string]any{
		"updated_by": a.UpdatedBy,
		"updated_at": a.UpdatedAt,
	}
}

func merge(maps ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

func scanRecoveryTransaction(row rowScanner) (models.RecoveryTransaction, error) {
	var t models.RecoveryTransaction
	err := row.Scan(
		&t.ID, &t.DetailID, &t.Amount, &t.TransactionDate, &t.Kind, &t.Reference, &t.Remarks,
		&t.RecordedBy, &t.RecordedAt, &t.UpdatedBy, &t.UpdatedAt,
	)
	return t, err
}

// recoveryTransactions persists the transaction ledger shared by both
// recovery case types. Only the table differs.
type recoveryTransactions struct {
	db    *DB
	table string
	op    string
}

func (r recoveryTransactions) ListTransactions(ctx context.Context, detailID int64) ([]models.RecoveryTransaction, error) {
	q := psql.Select(recoveryTransactionColumns...).From(r.table).
		Where(sq.Eq{"detail_id": detailID}).
		OrderBy("transaction_date", "id")
	return queryMany(ctx, r.db, r.op+".ListTransactions", q, scanRecoveryTransaction)
}

func (r recoveryTransactions) FindTransaction(ctx context.Context, id int64) (models.RecoveryTransaction, error) {
	q := psql.Select(recoveryTransactionColumns...).From(r.table).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, r.op+".FindTransaction", q, scanRecoveryTransaction)
}

func transactionValues(t models.RecoveryTransaction) map[string]any {
	return map[string]any{
		"amount":           t.Amount,
		"transaction_date": t.TransactionDate,
		"kind":             t.Kind,
		"reference":        t.Reference,
		"remarks":          t.Remarks,
	}
}

func (r recoveryTransactions) CreateTransaction(ctx context.Context, t models.RecoveryTransaction) (models.RecoveryTransaction, error) {
	values := merge(transactionValues(t), childInsertValues(t.ChildAudit), map[string]any{"detail_id": t.DetailID})
	q := psql.Insert(r.table).SetMap(values).Suffix(returning(recoveryTransactionColumns))
	return queryOne(ctx, r.db, r.op+".CreateTransaction", q, scanRecoveryTransaction)
}

func (r recoveryTransactions) UpdateTransaction(ctx context.Context, t models.RecoveryTransaction) (models.RecoveryTransaction, error) {
	values := merge(transactionValues(t), childUpdateValues(t.ChildAudit))
	q := psql.Update(r.table).SetMap(values).Where(sq.Eq{"id": t.ID}).Suffix(returning(recoveryTransactionColumns))
	return queryOne(ctx, r.db, r.op+".UpdateTransaction", q, scanRecoveryTransaction)
}

func (r recoveryTransactions) DeleteTransaction(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, r.op+".DeleteTransaction", psql.Delete(r.table).Where(sq.Eq{"id": id}))
}

const moneyRecoveryTable = "money_recovery_details"

var moneyRecoveryColumns = append([]string{
	"id", "case_id", "claimed_amount", "debtor_name", "debtor_address", "recovery_method", "due_date", "notes",
}, detailAuditColumns...)

func scanMoneyRecovery(row rowScanner) (models.MoneyRecoveryDetails, error) {
	var d models.MoneyRecoveryDetails
	err := row.Scan(
		&d.ID, &d.CaseID, &d.ClaimedAmount, &d.DebtorName, &d.DebtorAddress, &d.RecoveryMethod, &d.DueDate, &d.Notes,
		&d.CreatedBy, &d.CreatedAt, &d.LastUpdatedBy, &d.LastUpdatedAt,
	)
	return d, err
}

func moneyRecoveryValues(d models.MoneyRecoveryDetails) map[string]any {
	return map[string]any{
		"claimed_amount":  d.ClaimedAmount,
		"debtor_name":     d.DebtorName,
		"debtor_address":  d.DebtorAddress,
		"recovery_method": d.RecoveryMethod,
		"due_date":        d.DueDate,
		"notes":           d.Notes,
	}
}

type moneyRecoveryRepository struct {
	recoveryTransactions
	db     *DB
	logger *logger.Logger
}

// NewMoneyRecoveryRepository constructs a [MoneyRecoveryRepository] backed by db.
func NewMoneyRecoveryRepository(db *DB, logger *logger.Logger) MoneyRecoveryRepository {
	logger.Debug().Msg("creating money recovery repository")
	return &moneyRecoveryRepository{
		recoveryTransactions: recoveryTransactions{db: db, table: "money_recovery_transactions", op: "moneyRecoveryRepository"},
		db:                   db,
		logger:               logger,
	}
}

func (r *moneyRecoveryRepository) FindDetails(ctx context.Context, caseID int64) (models.MoneyRecoveryDetails, error) {
	q := psql.Select(moneyRecoveryColumns...).From(moneyRecoveryTable).Where(sq.Eq{"case_id": caseID})
	return queryOne(ctx, r.db, "moneyRecoveryRepository.FindDetails", q, scanMoneyRecovery)
}

func (r *moneyRecoveryRepository) CreateDetails(ctx context.Context, d models.MoneyRecoveryDetails) (models.MoneyRecoveryDetails, error) {
	q := psql.Insert(moneyRecoveryTable).
		SetMap(merge(moneyRecoveryValues(d), detailAuditValues(d.DetailAudit))).
		Suffix(returning(moneyRecoveryColumns))
	return queryOne(ctx, r.db, "moneyRecoveryRepository.CreateDetails", q, scanMoneyRecovery)
}

func (r *moneyRecoveryRepository) UpdateDetails(ctx context.Context, d models.MoneyRecoveryDetails) (models.MoneyRecoveryDetails, error) {
	q := psql.Update(moneyRecoveryTable).
		SetMap(merge(moneyRecoveryValues(d), detailUpdateValues(d.DetailAudit))).
		Where(sq.Eq{"id": d.ID}).
		Suffix(returning(moneyRecoveryColumns))
	return queryOne(ctx, r.db, "moneyRecoveryRepository.UpdateDetails", q, scanMoneyRecovery)
}

const damagesRecoveryTable = "damages_recovery_details"

var damagesRecoveryColumns = append([]string{
	"id", "case_id", "compensation_claimed", "respondent_name", "incident_date", "damage_description", "assessment_notes",
}, detailAuditColumns...)

func scanDamagesRecovery(row rowScanner) (models.DamagesRecoveryDetails, error) {
	var d models.DamagesRecoveryDetails
	err := row.Scan(
		&d.ID, &d.CaseID, &d.CompensationClaimed, &d.RespondentName, &d.IncidentDate, &d.DamageDescription, &d.AssessmentNotes,
		&d.CreatedBy, &d.CreatedAt, &d.LastUpdatedBy, &d.LastUpdatedAt,
	)
	return d, err
}

func damagesRecoveryValues(d models.DamagesRecoveryDetails) map[string]any {
	return map[string]any{
		"compensation_claimed": d.CompensationClaimed,
		"respondent_name":      d.RespondentName,
		"incident_date":        d.IncidentDate,
		"damage_description":   d.DamageDescription,
		"assessment_notes":     d.AssessmentNotes,
	}
}

type damagesRecoveryRepository struct {
	recoveryTransactions
	db     *DB
	logger *logger.Logger
}

// NewDamagesRecoveryRepository constructs a [DamagesRecoveryRepository] backed by db.
func NewDamagesRecoveryRepository(db *DB, logger *logger.Logger) DamagesRecoveryRepository {
	logger.Debug().Msg("creating damages recovery repository")
	return &damagesRecoveryRepository{
		recoveryTransactions: recoveryTransactions{db: db, table: "damages_recovery_transactions", op: "damagesRecoveryRepository"},
		db:                   db,
		logger:               logger,
	}
}

func (r *damagesRecoveryRepository) FindDetails(ctx context.Context, caseID int64) (models.DamagesRecoveryDetails, error) {
	q := psql.Select(damagesRecoveryColumns...).From(damagesRecoveryTable).Where(sq.Eq{"case_id": caseID})
	return queryOne(ctx, r.db, "damagesRecoveryRepository.FindDetails", q, scanDamagesRecovery)
}

func (r *damagesRecoveryRepository) CreateDetails(ctx context.Context, d models.DamagesRecoveryDetails) (models.DamagesRecoveryDetails, error) {
	q := psql.Insert(damagesRecoveryTable).
		SetMap(merge(damagesRecoveryValues(d), detailAuditValues(d.DetailAudit))).
		Suffix(returning(damagesRecoveryColumns))
	return queryOne(ctx, r.db, "damagesRecoveryRepository.CreateDetails", q, scanDamagesRecovery)
}

func (r *damagesRecoveryRepository) UpdateDetails(ctx context.Context, d models.DamagesRecoveryDetails) (models.DamagesRecoveryDetails, error) {
	q := psql.Update(damagesRecoveryTable).
		SetMap(merge(damagesRecoveryValues(d), detailUpdateValues(d.DetailAudit))).
		Where(sq.Eq{"id": d.ID}).
		Suffix(returning(damagesRecoveryColumns))
	return queryOne(ctx, r.db, "damagesRecoveryRepository.UpdateDetails", q, scanDamagesRecovery)
}
