package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgreementType classifies an agreement.
type AgreementType string

const (
	AgreementService     AgreementType = "SERVICE"
	AgreementLease       AgreementType = "LEASE"
	AgreementProcurement AgreementType = "PROCUREMENT"
	AgreementMOU         AgreementType = "MOU"
	AgreementEmployment  AgreementType = "EMPLOYMENT"
	AgreementNDA         AgreementType = "NDA"
	AgreementOther       AgreementType = "OTHER"
)

// AgreementStatus is the lifecycle status of an agreement.
type AgreementStatus string

const (
	AgreementDraft           AgreementStatus = "DRAFT"
	AgreementReviewRequested AgreementStatus = "REVIEW_REQUESTED"
	AgreementPendingApproval AgreementStatus = "PENDING_APPROVAL"
	AgreementApproved        AgreementStatus = "APPROVED"
	AgreementRejected        AgreementStatus = "REJECTED"
	AgreementExecuted        AgreementStatus = "EXECUTED"
	AgreementExpired         AgreementStatus = "EXPIRED"
	AgreementArchived        AgreementStatus = "ARCHIVED"
)

// Agreement is a contract moving through review, approval and execution.
type Agreement struct {
	ID              int64            `json:"id"`
	Title           string           `json:"title"`
	AgreementType   AgreementType    `json:"agreementType"`
	Parties         string           `json:"parties"`
	Value           *decimal.Decimal `json:"value,omitempty"`
	StartDate       *Date            `json:"startDate,omitempty"`
	EndDate         *Date            `json:"endDate,omitempty"`
	Description     string           `json:"description"`
	CaseID          *int64           `json:"caseId,omitempty"`
	Status          AgreementStatus  `json:"status"`
	CreatedBy       int64            `json:"createdBy"`
	CreatedAt       time.Time        `json:"createdAt"`
	ReviewerID      *int64           `json:"reviewerId,omitempty"`
	ReviewedAt      *time.Time       `json:"reviewedAt,omitempty"`
	ApproverID      *int64           `json:"approverId,omitempty"`
	ApprovedAt      *time.Time       `json:"approvedAt,omitempty"`
	ApprovalRemarks *string          `json:"approvalRemarks,omitempty"`
	DigitallySigned bool             `json:"digitallySigned"`
	ExecutedAt      *time.Time       `json:"executedAt,omitempty"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// AgreementVersion is one uploaded revision of the agreement document.
type AgreementVersion struct {
	ID            int64     `json:"id"`
	AgreementID   int64     `json:"agreementId"`
	VersionNumber int       `json:"versionNumber"`
	DocumentID    int64     `json:"documentId"`
	Notes         string    `json:"notes"`
	UploadedBy    int64     `json:"uploadedBy"`
	UploadedAt    time.Time `json:"uploadedAt"`
}

// AgreementComment is a free-text note on an agreement.
type AgreementComment struct {
	ID          int64     `json:"id"`
	AgreementID int64     `json:"agreementId"`
	AuthorID    int64     `json:"authorId"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DigitalSignature records the one-time signing of an agreement.
type DigitalSignature struct {
	ID           int64     `json:"id"`
	AgreementID  int64     `json:"agreementId"`
	SignerID     int64     `json:"signerId"`
	SignatureKey string    `json:"signatureKey"`
	SignedAt     time.Time `json:"signedAt"`
}

// AgreementListFilter narrows agreement listings. Nil fields do not filter.
type AgreementListFilter struct {
	Status    *AgreementStatus
	CreatedBy *int64
}

// CreateAgreementRequest carries the fields of a new agreement.
type CreateAgreementRequest struct {
	Title         string           `json:"title" validate:"required,max=255"`
	AgreementType AgreementType    `json:"agreementType" validate:"required,oneof=SERVICE LEASE PROCUREMENT MOU EMPLOYMENT NDA OTHER"`
	Parties       string           `json:"parties" validate:"max=2000"`
	Value         *decimal.Decimal `json:"value" validate:"omitempty,gte=0"`
	StartDate     *Date            `json:"startDate"`
	EndDate       *Date            `json:"endDate"`
	Description   string           `json:"description"`
	CaseID        *int64           `json:"caseId" validate:"omitempty,gt=0"`
}

// AgreementTransitionRequest asks for a status change.
type AgreementTransitionRequest struct {
	Status  AgreementStatus `json:"status"`
	Remarks string          `json:"remarks"`
}

// AgreementView is the assembled response of an agreement.
type AgreementView struct {
	Agreement
	CreatedByUser *UserRef               `json:"createdByUser,omitempty"`
	Reviewer      *UserRef               `json:"reviewer,omitempty"`
	Approver      *UserRef               `json:"approver,omitempty"`
	Versions      []AgreementVersionView `json:"versions"`
	Comments      []CommentView          `json:"comments"`
	Signature     *SignatureView         `json:"signature,omitempty"`
}

// AgreementVersionView is a version with its document and uploader.
type AgreementVersionView struct {
	AgreementVersion
	Document       *Document `json:"document,omitempty"`
	UploadedByUser *UserRef  `json:"uploadedByUser,omitempty"`
}

// SignatureView is a signature with its resolved signer.
type SignatureView struct {
	DigitalSignature
	Signer *UserRef `json:"signer,omitempty"`
}
