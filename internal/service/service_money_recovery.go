package service

import (
	"context"
	"time"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/metrics"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

type moneyRecoveryService struct {
	detailWorkflow
	repo   store.MoneyRecoveryRepository
	ledger recoveryLedger
}

func NewMoneyRecoveryService(storages *store.Storages, m *metrics.Workflow, logger *logger.Logger) MoneyRecoveryService {
	logger.Debug().Msg("creating money recovery service")
	return &moneyRecoveryService{
		detailWorkflow: newDetailWorkflow(models.CaseTypeMoneyRecovery, storages, m, logger),
		repo:           storages.MoneyRecovery,
		ledger: recoveryLedger{
			transactions: storages.MoneyRecovery,
			kinds:        []models.TransactionKind{models.TransactionPayment, models.TransactionInstallment, models.TransactionSettlement},
		},
	}
}

func (s *moneyRecoveryService) SetDetails(ctx context.Context, principal models.Principal, caseID int64, req models.MoneyRecoveryRequest) (models.MoneyRecoveryView, error) {
	if err := checkCeilingAmount(req.ClaimedAmount, "claimed amount"); err != nil {
		return models.MoneyRecoveryView{}, err
	}

	var view models.MoneyRecoveryView
	err := s.mutate(ctx, principal, caseID, "set_details", func(ctx context.Context, c models.Case, now time.Time) error {
		saved, err := upsertDetails[models.MoneyRecoveryDetails](ctx, s.repo, c.ID, principal.ID, now, func(d *models.MoneyRecoveryDetails) error {
			if d.ID != 0 {
				if err := s.ledger.checkNewCeiling(ctx, d.ID, req.ClaimedAmount, "claimed amount"); err != nil {
					return err
				}
			}
			d.ClaimedAmount = req.ClaimedAmount
			d.DebtorName = req.DebtorName
			d.DebtorAddress = req.DebtorAddress
			d.RecoveryMethod = req.RecoveryMethod
			d.DueDate = req.DueDate
			d.Notes = req.Notes
			return nil
		})
		if err != nil {
			return err
		}
		view, err = s.assemble(ctx, saved)
		return err
	})
	return view, err
}

func (s *moneyRecoveryService) GetDetails(ctx context.Context, principal models.Principal, caseID int64) (models.MoneyRecoveryView, error) {
	var view models.MoneyRecoveryView
	err := s.read(ctx, principal, caseID, func(ctx context.Context, c models.Case, _ models.Date) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "money recovery")
		if err != nil {
			return err
		}
		view, err = s.assemble(ctx, d)
		return err
	})
	return view, err
}

func (s *moneyRecoveryService) AddTransaction(ctx context.Context, principal models.Principal, caseID int64, req models.RecoveryTransactionRequest) (models.RecoveryTransaction, error) {
	var saved models.RecoveryTransaction
	err := s.mutate(ctx, principal, caseID, "add_transaction", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "money recovery")
		if err != nil {
			return err
		}
		saved, err = s.ledger.add(ctx, d.ID, d.ClaimedAmount, req, principal.ID, now)
		return err
	})
	return saved, err
}

func (s *moneyRecoveryService) UpdateTransaction(ctx context.Context, principal models.Principal, caseID, transactionID int64, req models.RecoveryTransactionRequest) (models.RecoveryTransaction, error) {
	var saved models.RecoveryTransaction
	err := s.mutate(ctx, principal, caseID, "update_transaction", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "money recovery")
		if err != nil {
			return err
		}
		saved, err = s.ledger.update(ctx, d.ID, d.ClaimedAmount, transactionID, req, principal.ID, now)
		return err
	})
	return saved, err
}

func (s *moneyRecoveryService) DeleteTransaction(ctx context.Context, principal models.Principal, caseID, transactionID int64) error {
	return s.mutate(ctx, principal, caseID, "delete_transaction", func(ctx context.Context, c models.Case, _ time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "money recovery")
		if err != nil {
			return err
		}
		return s.ledger.delete(ctx, d.ID, transactionID)
	})
}

func (s *moneyRecoveryService) assemble(ctx context.Context, d models.MoneyRecoveryDetails) (models.MoneyRecoveryView, error) {
	txs, summary, err := s.ledger.summary(ctx, d.ID, d.ClaimedAmount)
	if err != nil {
		return models.MoneyRecoveryView{}, err
	}
	return models.MoneyRecoveryView{Details: d, Transactions: txs, Summary: summary}, nil
}
