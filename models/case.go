package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CaseType selects the type-specific detail extension of a case.
type CaseType string

const (
	CaseTypeMoneyRecovery   CaseType = "MONEY_RECOVERY"
	CaseTypeDamagesRecovery CaseType = "DAMAGES_RECOVERY"
	CaseTypeLand            CaseType = "LAND"
	CaseTypeCriminal        CaseType = "CRIMINAL"
	CaseTypeAppeals         CaseType = "APPEALS"
	CaseTypeInquiries       CaseType = "INQUIRIES"
	CaseTypeOther           CaseType = "OTHER"
)

// CaseStatus is the lifecycle status of a case.
type CaseStatus string

const (
	CaseStatusNew    CaseStatus = "NEW"
	CaseStatusActive CaseStatus = "ACTIVE"
	CaseStatusOnHold CaseStatus = "ON_HOLD"
	CaseStatusClosed CaseStatus = "CLOSED"
)

// Case is a legal matter tracked by the registry.
type Case struct {
	ID                int64            `json:"id"`
	Title             string           `json:"title"`
	CaseType          CaseType         `json:"caseType"`
	ReferenceNumber   string           `json:"referenceNumber"`
	Parties           string           `json:"parties"`
	FilingDate        *Date            `json:"filingDate,omitempty"`
	Court             string           `json:"court"`
	FinancialExposure *decimal.Decimal `json:"financialExposure,omitempty"`
	Summary           string           `json:"summary"`
	Status            CaseStatus       `json:"status"`
	CreatedBy         int64            `json:"createdBy"`
	CreatedAt         time.Time        `json:"createdAt"`
	AssignedOfficerID *int64           `json:"assignedOfficerId,omitempty"`
	AssignedAt        *time.Time       `json:"assignedAt,omitempty"`
	ApprovedBy        *int64           `json:"approvedBy,omitempty"`
	ApprovedAt        *time.Time       `json:"approvedAt,omitempty"`
	ClosedBy          *int64           `json:"closedBy,omitempty"`
	ClosedAt          *time.Time       `json:"closedAt,omitempty"`
	ClosingRemarks    *string          `json:"closingRemarks,omitempty"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// CaseComment is a free-text note on a case.
type CaseComment struct {
	ID        int64     `json:"id"`
	CaseID    int64     `json:"caseId"`
	AuthorID  int64     `json:"authorId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// CaseAttachment links a stored document to a case.
type CaseAttachment struct {
	CaseID     int64     `json:"caseId"`
	Document   Document  `json:"document"`
	AttachedBy int64     `json:"attachedBy"`
	AttachedAt time.Time `json:"attachedAt"`
}

// CaseListFilter narrows case listings. Nil fields do not filter.
type CaseListFilter struct {
	Status     *CaseStatus
	CreatedBy  *int64
	AssignedTo *int64
}

// CreateCaseRequest carries the fields of a new case.
type CreateCaseRequest struct {
	Title             string           `json:"title" validate:"required,max=255"`
	CaseType          CaseType         `json:"caseType" validate:"required,oneof=MONEY_RECOVERY DAMAGES_RECOVERY LAND CRIMINAL APPEALS INQUIRIES OTHER"`
	ReferenceNumber   string           `json:"referenceNumber" validate:"required,max=100"`
	Parties           string           `json:"parties" validate:"max=2000"`
	FilingDate        *Date            `json:"filingDate"`
	Court             string           `json:"court" validate:"max=255"`
	FinancialExposure *decimal.Decimal `json:"financialExposure" validate:"omitempty,gte=0"`
	Summary           string           `json:"summary"`
}

// AssignCaseRequest names the officer a case is assigned to.
type AssignCaseRequest struct {
	OfficerID int64 `json:"officerId" validate:"required,gt=0"`
}

// UpdateCaseStatusRequest moves a case to another status.
type UpdateCaseStatusRequest struct {
	Status         CaseStatus `json:"status" validate:"required,oneof=NEW ACTIVE ON_HOLD CLOSED"`
	ClosingRemarks string     `json:"closingRemarks"`
}

// CommentRequest carries a comment body.
type CommentRequest struct {
	Text string `json:"text" validate:"required,max=4000"`
}

// CaseView is the assembled response of a case.
type CaseView struct {
	Case
	CreatedByUser   *UserRef         `json:"createdByUser,omitempty"`
	AssignedOfficer *UserRef         `json:"assignedOfficer,omitempty"`
	ApprovedByUser  *UserRef         `json:"approvedByUser,omitempty"`
	ClosedByUser    *UserRef         `json:"closedByUser,omitempty"`
	Comments        []CommentView    `json:"comments"`
	Attachments     []AttachmentView `json:"attachments"`
}

// CommentView is a comment together with its resolved author.
type CommentView struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Author    *UserRef  `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AttachmentView is an attachment together with its resolved uploader.
type AttachmentView struct {
	Document   Document  `json:"document"`
	AttachedBy *UserRef  `json:"attachedBy,omitempty"`
	AttachedAt time.Time `json:"attachedAt"`
}
