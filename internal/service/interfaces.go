package service

import (
	"context"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CaseService is the case registry: creation, assignment, status changes,
// comments and attachments of cases.
type CaseService interface {
	CreateCase(ctx context.Context, principal models.Principal, req models.CreateCaseRequest) (models.Case, error)
	AssignToOfficer(ctx context.Context, principal models.Principal, caseID, officerID int64) (models.Case, error)
	// UpdateStatus writes any target status. ACTIVE stamps the approver,
	// CLOSED requires closing remarks and stamps the closer.
	UpdateStatus(ctx context.Context, principal models.Principal, caseID int64, req models.UpdateCaseStatusRequest) (models.Case, error)
	AddComment(ctx context.Context, principal models.Principal, caseID int64, text string) (models.CaseComment, error)
	AttachDocument(ctx context.Context, principal models.Principal, caseID int64, upload models.Upload) (models.CaseView, error)
	// RemoveAttachment unlinks the document. The document itself is kept.
	RemoveAttachment(ctx context.Context, principal models.Principal, caseID, documentID int64) error

	GetCase(ctx context.Context, principal models.Principal, caseID int64) (models.CaseView, error)
	ListNew(ctx context.Context, principal models.Principal) ([]models.Case, error)
	ListAll(ctx context.Context, principal models.Principal) ([]models.Case, error)
	ListMine(ctx context.Context, principal models.Principal) ([]models.Case, error)
	ListAssigned(ctx context.Context, principal models.Principal) ([]models.Case, error)
}

// MoneyRecoveryService manages the MONEY_RECOVERY extension of a case.
type MoneyRecoveryService interface {
	SetDetails(ctx context.Context, principal models.Principal, caseID int64, req models.MoneyRecoveryRequest) (models.MoneyRecoveryView, error)
	GetDetails(ctx context.Context, principal models.Principal, caseID int64) (models.MoneyRecoveryView, error)
	AddTransaction(ctx context.Context, principal models.Principal, caseID int64, req models.RecoveryTransactionRequest) (models.RecoveryTransaction, error)
	UpdateTransaction(ctx context.Context, principal models.Principal, caseID, transactionID int64, req models.RecoveryTransactionRequest) (models.RecoveryTransaction, error)
	DeleteTransaction(ctx context.Context, principal models.Principal, caseID, transactionID int64) error
}

// DamagesRecoveryService manages the DAMAGES_RECOVERY extension of a case.
type DamagesRecoveryService interface {
	SetDetails(ctx context.Context, principal models.Principal, caseID int64, req models.DamagesRecoveryRequest) (models.DamagesRecoveryView, error)
	GetDetails(ctx context.Context, principal models.Principal, caseID int64) (models.DamagesRecoveryView, error)
	AddTransaction(ctx context.Context, principal models.Principal, caseID int64, req models.RecoveryTransactionRequest) (models.RecoveryTransaction, error)
	UpdateTransaction(ctx context.Context, principal models.Principal, caseID, transactionID int64, req models.RecoveryTransactionRequest) (models.RecoveryTransaction, error)
	DeleteTransaction(ctx context.Context, principal models.Principal, caseID, transactionID int64) error
}

// LandService manages the LAND extension of a case: the parcel, its
// ownership chain and registered deeds.
type LandService interface {
	SetDetails(ctx context.Context, principal models.Principal, caseID int64, req models.LandRequest) (models.LandView, error)
	GetDetails(ctx context.Context, principal models.Principal, caseID int64) (models.LandView, error)

	// AddOwnership appends to the chain. A record without an end date
	// becomes the current owner and closes the previous one.
	AddOwnership(ctx context.Context, principal models.Principal, caseID int64, req models.OwnershipRequest) (models.OwnershipRecord, error)
	UpdateOwnership(ctx context.Context, principal models.Principal, caseID, ownershipID int64, req models.OwnershipRequest) (models.OwnershipRecord, error)

	AddDeed(ctx context.Context, principal models.Principal, caseID int64, req models.DeedRequest) (models.LandDeed, error)
	UploadDeed(ctx context.Context, principal models.Principal, caseID int64, req models.DeedRequest, upload models.Upload) (models.LandDeed, error)
	UpdateDeed(ctx context.Context, principal models.Principal, caseID, deedID int64, req models.DeedRequest) (models.LandDeed, error)
	DeleteDeed(ctx context.Context, principal models.Principal, caseID, deedID int64) error
}

// CriminalService manages the CRIMINAL extension of a case.
type CriminalService interface {
	SetDetails(ctx context.Context, principal models.Principal, caseID int64, req models.CriminalRequest) (models.CriminalView, error)
	GetDetails(ctx context.Context, principal models.Principal, caseID int64) (models.CriminalView, error)

	AddCharge(ctx context.Context, principal models.Principal, caseID int64, req models.ChargeRequest) (models.Charge, error)
	UpdateCharge(ctx context.Context, principal models.Principal, caseID, chargeID int64, req models.ChargeRequest) (models.Charge, error)
	DeleteCharge(ctx context.Context, principal models.Principal, caseID, chargeID int64) error

	AddHearing(ctx context.Context, principal models.Principal, caseID int64, req models.HearingRequest) (models.Hearing, error)
	UpdateHearing(ctx context.Context, principal models.Principal, caseID, hearingID int64, req models.HearingRequest) (models.Hearing, error)
	DeleteHearing(ctx context.Context, principal models.Principal, caseID, hearingID int64) error
}

// AppealService manages the APPEALS extension of a case.
type AppealService interface {
	SetDetails(ctx context.Context, principal models.Principal, caseID int64, req models.AppealRequest) (models.AppealView, error)
	GetDetails(ctx context.Context, principal models.Principal, caseID int64) (models.AppealView, error)

	AddDeadline(ctx context.Context, principal models.Principal, caseID int64, req models.DeadlineRequest) (models.AppealDeadline, error)
	UpdateDeadline(ctx context.Context, principal models.Principal, caseID, deadlineID int64, req models.DeadlineRequest) (models.AppealDeadline, error)
	DeleteDeadline(ctx context.Context, principal models.Principal, caseID, deadlineID int64) error

	SetOutcome(ctx context.Context, principal models.Principal, caseID int64, req models.OutcomeRequest) (models.AppealOutcome, error)
	DeleteOutcome(ctx context.Context, principal models.Principal, caseID int64) error
}

// InquiryService manages the INQUIRIES extension of a case.
type InquiryService interface {
	SetDetails(ctx context.Context, principal models.Principal, caseID int64, req models.InquiryRequest) (models.InquiryView, error)
	GetDetails(ctx context.Context, principal models.Principal, caseID int64) (models.InquiryView, error)

	AddPanelMember(ctx context.Context, principal models.Principal, caseID int64, req models.PanelMemberRequest) (models.PanelMember, error)
	UpdatePanelMember(ctx context.Context, principal models.Principal, caseID, memberID int64, req models.PanelMemberRequest) (models.PanelMember, error)
	DeletePanelMember(ctx context.Context, principal models.Principal, caseID, memberID int64) error

	// AddFinding numbers the finding one past the current maximum of the
	// inquiry. Numbers are never reused or compacted.
	AddFinding(ctx context.Context, principal models.Principal, caseID int64, req models.FindingRequest) (models.Finding, error)
	UpdateFinding(ctx context.Context, principal models.Principal, caseID, findingID int64, req models.FindingRequest) (models.Finding, error)
	DeleteFinding(ctx context.Context, principal models.Principal, caseID, findingID int64) error

	AddDecision(ctx context.Context, principal models.Principal, caseID int64, req models.DecisionRequest) (models.InquiryDecision, error)
	UpdateDecision(ctx context.Context, principal models.Principal, caseID, decisionID int64, req models.DecisionRequest) (models.InquiryDecision, error)
	DeleteDecision(ctx context.Context, principal models.Principal, caseID, decisionID int64) error
}

// OtherCaseService manages the OTHER extension of a case.
type OtherCaseService interface {
	SetDetails(ctx context.Context, principal models.Principal, caseID int64, req models.OtherCaseRequest) (models.OtherCaseView, error)
	GetDetails(ctx context.Context, principal models.Principal, caseID int64) (models.OtherCaseView, error)

	AddAttribute(ctx context.Context, principal models.Principal, caseID int64, req models.AttributeRequest) (models.CaseAttribute, error)
	UpdateAttribute(ctx context.Context, principal models.Principal, caseID, attributeID int64, req models.AttributeRequest) (models.CaseAttribute, error)
	DeleteAttribute(ctx context.Context, principal models.Principal, caseID, attributeID int64) error

	AddTemplate(ctx context.Context, principal models.Principal, caseID int64, req models.TemplateRequest) (models.CaseTemplate, error)
	UploadTemplate(ctx context.Context, principal models.Principal, caseID int64, req models.TemplateRequest, upload models.Upload) (models.CaseTemplate, error)
	UpdateTemplate(ctx context.Context, principal models.Principal, caseID, templateID int64, req models.TemplateRequest) (models.CaseTemplate, error)
	DeleteTemplate(ctx context.Context, principal models.Principal, caseID, templateID int64) error
}

// AgreementService drives agreements from draft to execution.
type AgreementService interface {
	// CreateAgreement starts a DRAFT. A non-empty upload becomes version 1.
	CreateAgreement(ctx context.Context, principal models.Principal, req models.CreateAgreementRequest, upload *models.Upload) (models.AgreementView, error)
	UploadRevision(ctx context.Context, principal models.Principal, agreementID int64, notes string, upload models.Upload) (models.AgreementView, error)
	RequestReview(ctx context.Context, principal models.Principal, agreementID int64, req models.AgreementTransitionRequest) (models.Agreement, error)
	ReviewAgreement(ctx context.Context, principal models.Principal, agreementID int64, req models.AgreementTransitionRequest) (models.Agreement, error)
	// ApproveOrReject downgrades a rejection by an approver below level 2
	// to PENDING_APPROVAL.
	ApproveOrReject(ctx context.Context, principal models.Principal, agreementID int64, req models.AgreementTransitionRequest) (models.Agreement, error)
	ExecuteAgreement(ctx context.Context, principal models.Principal, agreementID int64) (models.Agreement, error)
	DigitallySign(ctx context.Context, principal models.Principal, agreementID int64) (models.AgreementView, error)
	AddComment(ctx context.Context, principal models.Principal, agreementID int64, text string) (models.AgreementComment, error)

	GetAgreement(ctx context.Context, principal models.Principal, agreementID int64) (models.AgreementView, error)
	ListAll(ctx context.Context, principal models.Principal) ([]models.Agreement, error)
	ListMine(ctx context.Context, principal models.Principal) ([]models.Agreement, error)
	ListForReview(ctx context.Context, principal models.Principal) ([]models.Agreement, error)
	ListForApproval(ctx context.Context, principal models.Principal) ([]models.Agreement, error)
}

// UserDirectoryService lists the users a principal can pick from.
type UserDirectoryService interface {
	ListUsers(ctx context.Context, principal models.Principal, role models.Role) ([]models.User, error)
}

// DocumentService serves stored documents.
type DocumentService interface {
	Download(ctx context.Context, principal models.Principal, documentID int64) (models.Document, []byte, error)
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.VersionInfo
}
