package models

// AttributeType is the declared type of a free-form attribute value.
type AttributeType string

const (
	AttributeText    AttributeType = "TEXT"
	AttributeNumber  AttributeType = "NUMBER"
	AttributeDate    AttributeType = "DATE"
	AttributeBoolean AttributeType = "BOOLEAN"
)

// TemplateStatus is the lifecycle of a case template.
type TemplateStatus string

const (
	TemplateDraft    TemplateStatus = "DRAFT"
	TemplateActive   TemplateStatus = "ACTIVE"
	TemplateArchived TemplateStatus = "ARCHIVED"
)

var templateStatusRank = map[TemplateStatus]int{
	TemplateDraft:    0,
	TemplateActive:   1,
	TemplateArchived: 2,
}

// CanMoveTo reports whether s may move to next. Templates only move forward
// from DRAFT through ACTIVE to ARCHIVED.
func (s TemplateStatus) CanMoveTo(next TemplateStatus) bool {
	from, okFrom := templateStatusRank[s]
	to, okTo := templateStatusRank[next]
	return okFrom && okTo && to >= from
}

// OtherCaseDetails extends an OTHER case.
type OtherCaseDetails struct {
	DetailAudit
	CaseNature  string `json:"caseNature"`
	Description string `json:"description"`
}

// OtherCaseRequest carries the header fields of an OTHER case.
type OtherCaseRequest struct {
	CaseNature  string `json:"caseNature" validate:"required,max=255"`
	Description string `json:"description"`
}

// CaseAttribute is a named value attached to an OTHER case.
type CaseAttribute struct {
	ID           int64         `json:"id"`
	DetailID     int64         `json:"detailId"`
	Name         string        `json:"name"`
	Value        string        `json:"value"`
	DataType     AttributeType `json:"dataType"`
	Category     string        `json:"category"`
	DisplayOrder int           `json:"displayOrder"`
	ChildAudit
}

// AttributeRequest carries an attribute.
type AttributeRequest struct {
	Name         string        `json:"name" validate:"required,max=100"`
	Value        string        `json:"value"`
	DataType     AttributeType `json:"dataType" validate:"omitempty,oneof=TEXT NUMBER DATE BOOLEAN"`
	Category     string        `json:"category" validate:"max=100"`
	DisplayOrder int           `json:"displayOrder" validate:"gte=0"`
}

// CaseTemplate is reusable text or a document kept with an OTHER case.
type CaseTemplate struct {
	ID          int64          `json:"id"`
	DetailID    int64          `json:"detailId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Content     *string        `json:"content,omitempty"`
	DocumentID  *int64         `json:"documentId,omitempty"`
	Status      TemplateStatus `json:"status"`
	ChildAudit
}

// TemplateRequest carries a template. On update an omitted DocumentID keeps
// the linked document; RemoveDocument unlinks it.
type TemplateRequest struct {
	Name           string         `json:"name" validate:"required,max=255"`
	Description    string         `json:"description"`
	Content        *string        `json:"content"`
	DocumentID     *int64         `json:"documentId" validate:"omitempty,gt=0"`
	RemoveDocument bool           `json:"removeDocument" validate:"excluded_with=DocumentID"`
	Status         TemplateStatus `json:"status" validate:"omitempty,oneof=DRAFT ACTIVE ARCHIVED"`
}

// OtherCaseView is the assembled OTHER extension.
type OtherCaseView struct {
	Details    OtherCaseDetails `json:"details"`
	Attributes []CaseAttribute  `json:"attributes"`
	Templates  []CaseTemplate   `json:"templates"`
}
