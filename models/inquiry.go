package models

// PanelRole is the function of an inquiry panel member.
type PanelRole string

const (
	PanelChairperson PanelRole = "CHAIRPERSON"
	PanelRoleMember  PanelRole = "MEMBER"
	PanelSecretary   PanelRole = "SECRETARY"
)

// FindingSeverity grades an inquiry finding.
type FindingSeverity string

const (
	SeverityLow      FindingSeverity = "LOW"
	SeverityMedium   FindingSeverity = "MEDIUM"
	SeverityHigh     FindingSeverity = "HIGH"
	SeverityCritical FindingSeverity = "CRITICAL"
)

// DecisionStatus tracks implementation of an inquiry decision.
type DecisionStatus string

const (
	DecisionPending     DecisionStatus = "PENDING"
	DecisionInProgress  DecisionStatus = "IN_PROGRESS"
	DecisionImplemented DecisionStatus = "IMPLEMENTED"
	DecisionRejected    DecisionStatus = "REJECTED"
)

// InquiryDetails extends an INQUIRIES case.
type InquiryDetails struct {
	DetailAudit
	CommissioningAuthority string `json:"commissioningAuthority"`
	TermsOfReference       string `json:"termsOfReference"`
	Subject                string `json:"subject"`
	CommencedDate          *Date  `json:"commencedDate,omitempty"`
	ReportingDeadline      *Date  `json:"reportingDeadline,omitempty"`
}

// InquiryRequest carries the header fields of an inquiry.
type InquiryRequest struct {
	CommissioningAuthority string `json:"commissioningAuthority" validate:"required,max=255"`
	TermsOfReference       string `json:"termsOfReference"`
	Subject                string `json:"subject" validate:"required,max=500"`
	CommencedDate          *Date  `json:"commencedDate"`
	ReportingDeadline      *Date  `json:"reportingDeadline"`
}

// PanelMember sits on the inquiry panel.
type PanelMember struct {
	ID          int64     `json:"id"`
	DetailID    int64     `json:"detailId"`
	MemberName  string    `json:"memberName"`
	Designation string    `json:"designation"`
	Role        PanelRole `json:"role"`
	ChildAudit
}

// PanelMemberRequest carries a panel member.
type PanelMemberRequest struct {
	MemberName  string    `json:"memberName" validate:"required,max=255"`
	Designation string    `json:"designation" validate:"max=255"`
	Role        PanelRole `json:"role" validate:"required,oneof=CHAIRPERSON MEMBER SECRETARY"`
}

// Finding is a numbered conclusion of the inquiry.
type Finding struct {
	ID            int64           `json:"id"`
	DetailID      int64           `json:"detailId"`
	FindingNumber int             `json:"findingNumber"`
	Description   string          `json:"description"`
	Severity      FindingSeverity `json:"severity"`
	ChildAudit
}

// FindingRequest carries a finding.
type FindingRequest struct {
	Description string          `json:"description" validate:"required"`
	Severity    FindingSeverity `json:"severity" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
}

// InquiryDecision is an action decided on the inquiry's outcome.
type InquiryDecision struct {
	ID               int64          `json:"id"`
	DetailID         int64          `json:"detailId"`
	FindingID        *int64         `json:"findingId,omitempty"`
	Description      string         `json:"description"`
	ResponsibleParty string         `json:"responsibleParty"`
	Status           DecisionStatus `json:"status"`
	ImplementedDate  *Date          `json:"implementedDate,omitempty"`
	ChildAudit
}

// DecisionRequest carries an inquiry decision.
type DecisionRequest struct {
	FindingID        *int64         `json:"findingId" validate:"omitempty,gt=0"`
	Description      string         `json:"description" validate:"required"`
	ResponsibleParty string         `json:"responsibleParty" validate:"max=255"`
	Status           DecisionStatus `json:"status" validate:"required,oneof=PENDING IN_PROGRESS IMPLEMENTED REJECTED"`
	ImplementedDate  *Date          `json:"implementedDate"`
}

// InquiryView is the assembled inquiry extension.
type InquiryView struct {
	Details                  InquiryDetails    `json:"details"`
	Panel                    []PanelMember     `json:"panel"`
	Findings                 []Finding         `json:"findings"`
	Decisions                []InquiryDecision `json:"decisions"`
	FindingCount             int               `json:"findingCount"`
	DecisionCount            int               `json:"decisionCount"`
	ImplementedDecisionCount int               `json:"implementedDecisionCount"`
	ReportOverdue            bool              `json:"reportOverdue"`
}
