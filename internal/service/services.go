package service

import (
	"fmt"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/config"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/metrics"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

type Services struct {
	CaseService            CaseService
	MoneyRecoveryService   MoneyRecoveryService
	DamagesRecoveryService DamagesRecoveryService
	LandService            LandService
	CriminalService        CriminalService
	AppealService          AppealService
	InquiryService         InquiryService
	OtherCaseService       OtherCaseService
	AgreementService       AgreementService
	UserDirectoryService   UserDirectoryService
	DocumentService        DocumentService
	AppInfoService         AppInfoService
}

func NewServices(storages *store.Storages, m *metrics.Workflow, cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		CaseService:            NewCaseService(storages, m, logger),
		MoneyRecoveryService:   NewMoneyRecoveryService(storages, m, logger),
		DamagesRecoveryService: NewDamagesRecoveryService(storages, m, logger),
		LandService:            NewLandService(storages, m, logger),
		CriminalService:        NewCriminalService(storages, m, logger),
		AppealService:          NewAppealService(storages, m, logger),
		InquiryService:         NewInquiryService(storages, m, logger),
		OtherCaseService:       NewOtherCaseService(storages, m, logger),
		AgreementService:       NewAgreementService(storages, m, logger),
		UserDirectoryService:   NewUserDirectoryService(storages.Users, logger),
		DocumentService:        NewDocumentService(storages.Documents, logger),
		AppInfoService:         appInfo,
	}, nil
}
