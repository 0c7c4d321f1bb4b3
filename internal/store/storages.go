package store

import (
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
)

// Storages groups every persistence component handed to the service layer.
type Storages struct {
	Transactor      Transactor
	Users           UserRepository
	Documents       DocumentStorage
	Cases           CaseRepository
	MoneyRecovery   MoneyRecoveryRepository
	DamagesRecovery DamagesRecoveryRepository
	Land            LandRepository
	Criminal        CriminalRepository
	Appeals         AppealRepository
	Inquiries       InquiryRepository
	OtherCases      OtherCaseRepository
	Agreements      AgreementRepository
}

// NewStorages builds the PostgreSQL repositories over db. files holds
// document content. A nil cache disables user directory caching.
func NewStorages(db *DB, files FileStorage, cache UserCache, logger *logger.Logger) *Storages {
	var users UserRepository = NewUserRepository(db, logger)
	if cache != nil {
		users = NewCachedUserRepository(users, cache)
	}

	return &Storages{
		Transactor:      db,
		Users:           users,
		Documents:       NewDocumentStorage(NewDocumentRepository(db, logger), files, logger),
		Cases:           NewCaseRepository(db, logger),
		MoneyRecovery:   NewMoneyRecoveryRepository(db, logger),
		DamagesRecovery: NewDamagesRecoveryRepository(db, logger),
		Land:            NewLandRepository(db, logger),
		Criminal:        NewCriminalRepository(db, logger),
		Appeals:         NewAppealRepository(db, logger),
		Inquiries:       NewInquiryRepository(db, logger),
		OtherCases:      NewOtherCaseRepository(db, logger),
		Agreements:      NewAgreementRepository(db, logger),
	}
}
