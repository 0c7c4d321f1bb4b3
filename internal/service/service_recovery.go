package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
	"github.com/shopspring/decimal"
)

// transactionStore is the transaction part shared by the money and damages
// recovery repositories.
type transactionStore interface {
	ListTransactions(ctx context.Context, detailID int64) ([]models.RecoveryTransaction, error)
	FindTransaction(ctx context.Context, id int64) (models.RecoveryTransaction, error)
	CreateTransaction(ctx context.Context, t models.RecoveryTransaction) (models.RecoveryTransaction, error)
	UpdateTransaction(ctx context.Context, t models.RecoveryTransaction) (models.RecoveryTransaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

// recoveryLedger keeps the recorded total of a recovery at or below its
// ceiling, the claimed amount or compensation.
type recoveryLedger struct {
	transactions transactionStore
	kinds        []models.TransactionKind
}

func (l recoveryLedger) add(ctx context.Context, detailID int64, ceiling decimal.Decimal,
	req models.RecoveryTransactionRequest, actor int64, now time.Time) (models.RecoveryTransaction, error) {
	if err := l.checkRequest(req); err != nil {
		return models.RecoveryTransaction{}, err
	}
	if err := l.checkCeiling(ctx, detailID, ceiling, req.Amount, 0); err != nil {
		return models.RecoveryTransaction{}, err
	}

	t := models.RecoveryTransaction{DetailID: detailID, ChildAudit: newChildAudit(actor, now)}
	applyTransaction(&t, req)
	return l.transactions.CreateTransaction(ctx, t)
}

func (l recoveryLedger) update(ctx context.Context, detailID int64, ceiling decimal.Decimal, transactionID int64,
	req models.RecoveryTransactionRequest, actor int64, now time.Time) (models.RecoveryTransaction, error) {
	t, err := findChild(ctx, l.transactions.FindTransaction, transactionID, detailID, transactionDetail, "transaction")
	if err != nil {
		return models.RecoveryTransaction{}, err
	}
	if err := l.checkRequest(req); err != nil {
		return models.RecoveryTransaction{}, err
	}
	if err := l.checkCeiling(ctx, detailID, ceiling, req.Amount, transactionID); err != nil {
		return models.RecoveryTransaction{}, err
	}

	applyTransaction(&t, req)
	t.Touch(actor, now)
	return l.transactions.UpdateTransaction(ctx, t)
}

func (l recoveryLedger) delete(ctx context.Context, detailID, transactionID int64) error {
	if _, err := findChild(ctx, l.transactions.FindTransaction, transactionID, detailID, transactionDetail, "transaction"); err != nil {
		return err
	}
	return l.transactions.DeleteTransaction(ctx, transactionID)
}

// summary lists the detail's transactions with the aggregates derived from
// them.
func (l recoveryLedger) summary(ctx context.Context, detailID int64, ceiling decimal.Decimal) ([]models.RecoveryTransaction, models.RecoverySummary, error) {
	txs, err := l.transactions.ListTransactions(ctx, detailID)
	if err != nil {
		return nil, models.RecoverySummary{}, err
	}
	return emptyIfNil(txs), models.SummarizeRecovery(ceiling, txs), nil
}

// checkCeiling rejects amount when it exceeds the ceiling less every other
// recorded transaction. excludeID is the transaction being replaced.
func (l recoveryLedger) checkCeiling(ctx context.Context, detailID int64, ceiling, amount decimal.Decimal, excludeID int64) error {
	txs, err := l.transactions.ListTransactions(ctx, detailID)
	if err != nil {
		return err
	}

	others := decimal.Zero
	for _, t := range txs {
		if t.ID != excludeID {
			others = others.Add(t.Amount)
		}
	}

	outstanding := ceiling.Sub(others)
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}
	if amount.GreaterThan(outstanding) {
		return invalidState("transaction amount %s exceeds outstanding balance %s", amount.StringFixed(2), outstanding.StringFixed(2))
	}
	return nil
}

// checkNewCeiling rejects lowering the ceiling below what is already
// recorded.
func (l recoveryLedger) checkNewCeiling(ctx context.Context, detailID int64, ceiling decimal.Decimal, what string) error {
	txs, err := l.transactions.ListTransactions(ctx, detailID)
	if err != nil {
		return err
	}

	recorded := models.SummarizeRecovery(ceiling, txs).TotalRecovered
	if recorded.GreaterThan(ceiling) {
		return invalidState("%s %s is below the recorded total %s", what, ceiling.StringFixed(2), recorded.StringFixed(2))
	}
	return nil
}

func (l recoveryLedger) checkRequest(req models.RecoveryTransactionRequest) error {
	if !req.Amount.IsPositive() {
		return invalidInput("transaction amount must be greater than zero")
	}
	if req.TransactionDate.IsZero() {
		return invalidInput("transaction date is required")
	}
	if !slices.Contains(l.kinds, req.Kind) {
		return invalidInput("transaction kind %q is not one of %v", req.Kind, l.kinds)
	}
	return nil
}

func applyTransaction(t *models.RecoveryTransaction, req models.RecoveryTransactionRequest) {
	t.Amount = req.Amount
	t.TransactionDate = req.TransactionDate
	t.Kind = req.Kind
	t.Reference = strings.TrimSpace(req.Reference)
	t.Remarks = req.Remarks
}

func transactionDetail(t models.RecoveryTransaction) int64 { return t.DetailID }

func checkCeilingAmount(ceiling decimal.Decimal, what string) error {
	if !ceiling.IsPositive() {
		return invalidInput("%s must be greater than zero", what)
	}
	return nil
}
