package service

import (
	"context"
	"time"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/metrics"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

type damagesRecoveryService struct {
	detailWorkflow
	repo   store.DamagesRecoveryRepository
	ledger recoveryLedger
}

func NewDamagesRecoveryService(storages *store.Storages, m *metrics.Workflow, logger *logger.Logger) DamagesRecoveryService {
	logger.Debug().Msg("creating damages recovery service")
	return &damagesRecoveryService{
		detailWorkflow: newDetailWorkflow(models.CaseTypeDamagesRecovery, storages, m, logger),
		repo:           storages.DamagesRecovery,
		ledger: recoveryLedger{
			transactions: storages.DamagesRecovery,
			kinds:        []models.TransactionKind{models.TransactionAssessment, models.TransactionPayment, models.TransactionSettlement},
		},
	}
}

func (s *damagesRecoveryService) SetDetails(ctx context.Context, principal models.Principal, caseID int64, req models.DamagesRecoveryRequest) (models.DamagesRecoveryView, error) {
	if err := checkCeilingAmount(req.CompensationClaimed, "compensation claimed"); err != nil {
		return models.DamagesRecoveryView{}, err
	}

	var view models.DamagesRecoveryView
	err := s.mutate(ctx, principal, caseID, "set_details", func(ctx context.Context, c models.Case, now time.Time) error {
		saved, err := upsertDetails[models.DamagesRecoveryDetails](ctx, s.repo, c.ID, principal.ID, now, func(d *models.DamagesRecoveryDetails) error {
			if d.ID != 0 {
				if err := s.ledger.checkNewCeiling(ctx, d.ID, req.CompensationClaimed, "compensation claimed"); err != nil {
					return err
				}
			}
			d.CompensationClaimed = req.CompensationClaimed
			d.RespondentName = req.RespondentName
			d.IncidentDate = req.IncidentDate
			d.DamageDescription = req.DamageDescription
			d.AssessmentNotes = req.AssessmentNotes
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

func (s *damagesRecoveryService) GetDetails(ctx context.Context, principal models.Principal, caseID int64) (models.DamagesRecoveryView, error) {
	var view models.DamagesRecoveryView
	err := s.read(ctx, principal, caseID, func(ctx context.Context, c models.Case, _ models.Date) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "damages recovery")
		if err != nil {
			return err
		}
		view, err = s.assemble(ctx, d)
		return err
	})
	return view, err
}

func (s *damagesRecoveryService) AddTransaction(ctx context.Context, principal models.Principal, caseID int64, req models.RecoveryTransactionRequest) (models.RecoveryTransaction, error) {
	var saved models.RecoveryTransaction
	err := s.mutate(ctx, principal, caseID, "add_transaction", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "damages recovery")
		if err != nil {
			return err
		}
		saved, err = s.ledger.add(ctx, d.ID, d.CompensationClaimed, req, principal.ID, now)
		return err
	})
	return saved, err
}

func (s *damagesRecoveryService) UpdateTransaction(ctx context.Context, principal models.Principal, caseID, transactionID int64, req models.RecoveryTransactionRequest) (models.RecoveryTransaction, error) {
	var saved models.RecoveryTransaction
	err := s.mutate(ctx, principal, caseID, "update_transaction", func(ctx context.Context, c models.Case, now time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "damages recovery")
		if err != nil {
			return err
		}
		saved, err = s.ledger.update(ctx, d.ID, d.CompensationClaimed, transactionID, req, principal.ID, now)
		return err
	})
	return saved, err
}

func (s *damagesRecoveryService) DeleteTransaction(ctx context.Context, principal models.Principal, caseID, transactionID int64) error {
	return s.mutate(ctx, principal, caseID, "delete_transaction", func(ctx context.Context, c models.Case, _ time.Time) error {
		d, err := requireDetails(ctx, s.repo.FindDetails, c.ID, "damages recovery")
		if err != nil {
			return err
		}
		return s.ledger.delete(ctx, d.ID, transactionID)
	})
}

func (s *damagesRecoveryService) assemble(ctx context.Context, d models.DamagesRecoveryDetails) (models.DamagesRecoveryView, error) {
	txs, summary, err := s.ledger.summary(ctx, d.ID, d.CompensationClaimed)
	if err != nil {
		return models.DamagesRecoveryView{}, err
	}
	return models.DamagesRecoveryView{Details: d, Transactions: txs, Summary: summary}, nil
}
