package models

// DeedType classifies a land deed record.
type DeedType string

const (
	DeedTypeDeed             DeedType = "DEED"
	DeedTypeSurveyPlan       DeedType = "SURVEY_PLAN"
	DeedTypeTitleCertificate DeedType = "TITLE_CERTIFICATE"
	DeedTypeOther            DeedType = "OTHER"
)

// LandDetails extends a LAND case.
type LandDetails struct {
	DetailAudit
	LandReferenceNumber string `json:"landReferenceNumber"`
	SurveyPlanNumber    string `json:"surveyPlanNumber"`
	Location            string `json:"location"`
	Extent              string `json:"extent"`
	DisputeNature       string `json:"disputeNature"`
}

// LandRequest carries the header fields of a land case.
type LandRequest struct {
	LandReferenceNumber string `json:"landReferenceNumber" validate:"required,max=100"`
	SurveyPlanNumber    string `json:"surveyPlanNumber" validate:"max=100"`
	Location            string `json:"location" validate:"required,max=500"`
	Extent              string `json:"extent" validate:"max=100"`
	DisputeNature       string `json:"disputeNature"`
}

// OwnershipRecord is one link of a parcel's ownership chain. The record
// without an end date is the current owner.
type OwnershipRecord struct {
	ID            int64  `json:"id"`
	DetailID      int64  `json:"detailId"`
	OwnerName     string `json:"ownerName"`
	OwnershipType string `json:"ownershipType"`
	StartDate     Date   `json:"startDate"`
	EndDate       *Date  `json:"endDate,omitempty"`
	Remarks       string `json:"remarks"`
	ChildAudit
}

// IsCurrent reports whether the record is the open link of the chain.
func (o OwnershipRecord) IsCurrent() bool {
	return o.EndDate == nil || o.EndDate.IsZero()
}

// OwnershipRequest carries an ownership record.
type OwnershipRequest struct {
	OwnerName     string `json:"ownerName" validate:"required,max=255"`
	OwnershipType string `json:"ownershipType" validate:"max=100"`
	StartDate     Date   `json:"startDate" validate:"required"`
	EndDate       *Date  `json:"endDate"`
	Remarks       string `json:"remarks"`
}

// LandDeed is a deed or plan registered for the parcel.
type LandDeed struct {
	ID               int64    `json:"id"`
	DetailID         int64    `json:"detailId"`
	DeedNumber       string   `json:"deedNumber"`
	DeedType         DeedType `json:"deedType"`
	RegistrationDate *Date    `json:"registrationDate,omitempty"`
	RegistryOffice   string   `json:"registryOffice"`
	Description      string   `json:"description"`
	DocumentID       *int64   `json:"documentId,omitempty"`
	ChildAudit
}

// DeedRequest carries a deed record. On update an omitted DocumentID keeps
// the linked document; RemoveDocument unlinks it.
type DeedRequest struct {
	DeedNumber       string   `json:"deedNumber" validate:"required,max=100"`
	DeedType         DeedType `json:"deedType" validate:"required,oneof=DEED SURVEY_PLAN TITLE_CERTIFICATE OTHER"`
	RegistrationDate *Date    `json:"registrationDate"`
	RegistryOffice   string   `json:"registryOffice" validate:"max=255"`
	Description      string   `json:"description"`
	DocumentID       *int64   `json:"documentId" validate:"omitempty,gt=0"`
	RemoveDocument   bool     `json:"removeDocument" validate:"excluded_with=DocumentID"`
}

// LandView is the assembled land extension.
type LandView struct {
	Details        LandDetails       `json:"details"`
	Ownership      []OwnershipRecord `json:"ownership"`
	Deeds          []LandDeed        `json:"deeds"`
	CurrentOwner   *OwnershipRecord  `json:"currentOwner,omitempty"`
	OwnershipCount int               `json:"ownershipCount"`
	DeedCount      int               `json:"deedCount"`
}
