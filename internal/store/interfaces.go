package store

import (
	"context"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Transactor runs a unit of work atomically.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository reads the user directory.
type UserRepository interface {
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUsersByIDs(ctx context.Context, ids []int64) ([]models.User, error)
	ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
}

// DocumentStorage is the document store contract: bytes go to a file
// backend, metadata to the documents table.
type DocumentStorage interface {
	Store(ctx context.Context, upload models.Upload, ownerID int64) (models.Document, error)
	Retrieve(ctx context.Context, id int64) (models.Document, []byte, error)
	FindDocuments(ctx context.Context, ids []int64) ([]models.Document, error)
	// Discard removes the content of a document whose metadata row was
	// rolled back with the surrounding transaction.
	Discard(ctx context.Context, doc models.Document) error
}

// FileStorage persists raw document content under opaque keys.
type FileStorage interface {
	Save(ctx context.Context, key string, content []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
}

// DocumentRepository persists document metadata.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc models.Document) (models.Document, error)
	FindDocumentByID(ctx context.Context, id int64) (models.Document, error)
	FindDocumentsByIDs(ctx context.Context, ids []int64) ([]models.Document, error)
}

// CaseRepository persists cases with their comments and attachments.
type CaseRepository interface {
	CreateCase(ctx context.Context, c models.Case) (models.Case, error)
	FindCaseByID(ctx context.Context, id int64) (models.Case, error)
	// LockCase reads the case FOR UPDATE inside the current transaction.
	LockCase(ctx context.Context, id int64) (models.Case, error)
	ReferenceNumberExists(ctx context.Context, reference string) (bool, error)
	UpdateCase(ctx context.Context, c models.Case) (models.Case, error)
	ListCases(ctx context.Context, filter models.CaseListFilter) ([]models.Case, error)

	AddComment(ctx context.Context, comment models.CaseComment) (models.CaseComment, error)
	ListComments(ctx context.Context, caseIDs []int64) ([]models.CaseComment, error)

	AttachDocument(ctx context.Context, attachment models.CaseAttachment) error
	DetachDocument(ctx context.Context, caseID, documentID int64) error
	ListAttachments(ctx context.Context, caseIDs []int64) ([]models.CaseAttachment, error)
}

// MoneyRecoveryRepository persists MONEY_RECOVERY extensions.
type MoneyRecoveryRepository interface {
	FindDetails(ctx context.Context, caseID int64) (models.MoneyRecoveryDetails, error)
	CreateDetails(ctx context.Context, d models.MoneyRecoveryDetails) (models.MoneyRecoveryDetails, error)
	UpdateDetails(ctx context.Context, d models.MoneyRecoveryDetails) (models.MoneyRecoveryDetails, error)

	ListTransactions(ctx context.Context, detailID int64) ([]models.RecoveryTransaction, error)
	FindTransaction(ctx context.Context, id int64) (models.RecoveryTransaction, error)
	CreateTransaction(ctx context.Context, t models.RecoveryTransaction) (models.RecoveryTransaction, error)
	UpdateTransaction(ctx context.Context, t models.RecoveryTransaction) (models.RecoveryTransaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

// DamagesRecoveryRepository persists DAMAGES_RECOVERY extensions.
type DamagesRecoveryRepository interface {
	FindDetails(ctx context.Context, caseID int64) (models.DamagesRecoveryDetails, error)
	CreateDetails(ctx context.Context, d models.DamagesRecoveryDetails) (models.DamagesRecoveryDetails, error)
	UpdateDetails(ctx context.Context, d models.DamagesRecoveryDetails) (models.DamagesRecoveryDetails, error)

	ListTransactions(ctx context.Context, detailID int64) ([]models.RecoveryTransaction, error)
	FindTransaction(ctx context.Context, id int64) (models.RecoveryTransaction, error)
	CreateTransaction(ctx context.Context, t models.RecoveryTransaction) (models.RecoveryTransaction, error)
	UpdateTransaction(ctx context.Context, t models.RecoveryTransaction) (models.RecoveryTransaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

// LandRepository persists LAND extensions.
type LandRepository interface {
	FindDetails(ctx context.Context, caseID int64) (models.LandDetails, error)
	CreateDetails(ctx context.Context, d models.LandDetails) (models.LandDetails, error)
	UpdateDetails(ctx context.Context, d models.LandDetails) (models.LandDetails, error)
	// LandReferenceExists ignores the detail excludeDetailID (0 ignores none).
	LandReferenceExists(ctx context.Context, reference string, excludeDetailID int64) (bool, error)

	ListOwnership(ctx context.Context, detailID int64) ([]models.OwnershipRecord, error)
	FindOwnership(ctx context.Context, id int64) (models.OwnershipRecord, error)
	CreateOwnership(ctx context.Context, o models.OwnershipRecord) (models.OwnershipRecord, error)
	UpdateOwnership(ctx context.Context, o models.OwnershipRecord) (models.OwnershipRecord, error)

	ListDeeds(ctx context.Context, detailID int64) ([]models.LandDeed, error)
	FindDeed(ctx context.Context, id int64) (models.LandDeed, error)
	CreateDeed(ctx context.Context, d models.LandDeed) (models.LandDeed, error)
	UpdateDeed(ctx context.Context, d models.LandDeed) (models.LandDeed, error)
	DeleteDeed(ctx context.Context, id int64) error
}

// CriminalRepository persists CRIMINAL extensions.
type CriminalRepository interface {
	FindDetails(ctx context.Context, caseID int64) (models.CriminalDetails, error)
	CreateDetails(ctx context.Context, d models.CriminalDetails) (models.CriminalDetails, error)
	UpdateDetails(ctx context.Context, d models.CriminalDetails) (models.CriminalDetails, error)

	ListCharges(ctx context.Context, detailID int64) ([]models.Charge, error)
	FindCharge(ctx context.Context, id int64) (models.Charge, error)
	CreateCharge(ctx context.Context, c models.Charge) (models.Charge, error)
	UpdateCharge(ctx context.Context, c models.Charge) (models.Charge, error)
	DeleteCharge(ctx context.Context, id int64) error

	ListHearings(ctx context.Context, detailID int64) ([]models.Hearing, error)
	FindHearing(ctx context.Context, id int64) (models.Hearing, error)
	CreateHearing(ctx context.Context, h models.Hearing) (models.Hearing, error)
	UpdateHearing(ctx context.Context, h models.Hearing) (models.Hearing, error)
	DeleteHearing(ctx context.Context, id int64) error
}

// AppealRepository persists APPEALS extensions.
type AppealRepository interface {
	FindDetails(ctx context.Context, caseID int64) (models.AppealDetails, error)
	CreateDetails(ctx context.Context, d models.AppealDetails) (models.AppealDetails, error)
	UpdateDetails(ctx context.Context, d models.AppealDetails) (models.AppealDetails, error)

	ListDeadlines(ctx context.Context, detailID int64) ([]models.AppealDeadline, error)
	FindDeadline(ctx context.Context, id int64) (models.AppealDeadline, error)
	CreateDeadline(ctx context.Context, d models.AppealDeadline) (models.AppealDeadline, error)
	UpdateDeadline(ctx context.Context, d models.AppealDeadline) (models.AppealDeadline, error)
	DeleteDeadline(ctx context.Context, id int64) error

	FindOutcome(ctx context.Context, detailID int64) (models.AppealOutcome, error)
	CreateOutcome(ctx context.Context, o models.AppealOutcome) (models.AppealOutcome, error)
	UpdateOutcome(ctx context.Context, o models.AppealOutcome) (models.AppealOutcome, error)
	DeleteOutcome(ctx context.Context, detailID int64) error
}

// InquiryRepository persists INQUIRIES extensions.
type InquiryRepository interface {
	FindDetails(ctx context.Context, caseID int64) (models.InquiryDetails, error)
	CreateDetails(ctx context.Context, d models.InquiryDetails) (models.InquiryDetails, error)
	UpdateDetails(ctx context.Context, d models.InquiryDetails) (models.InquiryDetails, error)

	ListPanel(ctx context.Context, detailID int64) ([]models.PanelMember, error)
	FindPanelMember(ctx context.Context, id int64) (models.PanelMember, error)
	CreatePanelMember(ctx context.Context, member models.PanelMember) (models.PanelMember, error)
	UpdatePanelMember(ctx context.Context, member models.PanelMember) (models.PanelMember, error)
	DeletePanelMember(ctx context.Context, id int64) error

	ListFindings(ctx context.Context, detailID int64) ([]models.Finding, error)
	FindFinding(ctx context.Context, id int64) (models.Finding, error)
	NextFindingNumber(ctx context.Context, detailID int64) (int, error)
	CreateFinding(ctx context.Context, f models.Finding) (models.Finding, error)
	UpdateFinding(ctx context.Context, f models.Finding) (models.Finding, error)
	DeleteFinding(ctx context.Context, id int64) error

	ListDecisions(ctx context.Context, detailID int64) ([]models.InquiryDecision, error)
	FindDecision(ctx context.Context, id int64) (models.InquiryDecision, error)
	CreateDecision(ctx context.Context, d models.InquiryDecision) (models.InquiryDecision, error)
	UpdateDecision(ctx context.Context, d models.InquiryDecision) (models.InquiryDecision, error)
	DeleteDecision(ctx context.Context, id int64) error
}

// OtherCaseRepository persists OTHER extensions.
type OtherCaseRepository interface {
	FindDetails(ctx context.Context, caseID int64) (models.OtherCaseDetails, error)
	CreateDetails(ctx context.Context, d models.OtherCaseDetails) (models.OtherCaseDetails, error)
	UpdateDetails(ctx context.Context, d models.OtherCaseDetails) (models.OtherCaseDetails, error)

	ListAttributes(ctx context.Context, detailID int64) ([]models.CaseAttribute, error)
	FindAttribute(ctx context.Context, id int64) (models.CaseAttribute, error)
	// AttributeNameExists ignores the attribute excludeID (0 ignores none).
	AttributeNameExists(ctx context.Context, detailID int64, name string, excludeID int64) (bool, error)
	CreateAttribute(ctx context.Context, a models.CaseAttribute) (models.CaseAttribute, error)
	UpdateAttribute(ctx context.Context, a models.CaseAttribute) (models.CaseAttribute, error)
	DeleteAttribute(ctx context.Context, id int64) error

	ListTemplates(ctx context.Context, detailID int64) ([]models.CaseTemplate, error)
	FindTemplate(ctx context.Context, id int64) (models.CaseTemplate, error)
	CreateTemplate(ctx context.Context, t models.CaseTemplate) (models.CaseTemplate, error)
	UpdateTemplate(ctx context.Context, t models.CaseTemplate) (models.CaseTemplate, error)
	DeleteTemplate(ctx context.Context, id int64) error
}

// AgreementRepository persists agreements with versions, comments and
// signatures.
type AgreementRepository interface {
	CreateAgreement(ctx context.Context, a models.Agreement) (models.Agreement, error)
	FindAgreementByID(ctx context.Context, id int64) (models.Agreement, error)
	// LockAgreement reads the agreement FOR UPDATE inside the current transaction.
	LockAgreement(ctx context.Context, id int64) (models.Agreement, error)
	UpdateAgreement(ctx context.Context, a models.Agreement) (models.Agreement, error)
	ListAgreements(ctx context.Context, filter models.AgreementListFilter) ([]models.Agreement, error)

	NextVersionNumber(ctx context.Context, agreementID int64) (int, error)
	CreateVersion(ctx context.Context, v models.AgreementVersion) (models.AgreementVersion, error)
	ListVersions(ctx context.Context, agreementIDs []int64) ([]models.AgreementVersion, error)

	AddComment(ctx context.Context, c models.AgreementComment) (models.AgreementComment, error)
	ListComments(ctx context.Context, agreementIDs []int64) ([]models.AgreementComment, error)

	FindSignature(ctx context.Context, agreementID int64) (models.DigitalSignature, error)
	CreateSignature(ctx context.Context, s models.DigitalSignature) (models.DigitalSignature, error)
}
