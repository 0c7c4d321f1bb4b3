package models

import "fmt"

// OriginalCaseKind tags the variant of an appeal's original case link.
type OriginalCaseKind string

const (
	OriginalCaseInternal OriginalCaseKind = "INTERNAL"
	OriginalCaseExternal OriginalCaseKind = "EXTERNAL"
)

// OriginalCaseLink is either Internal(caseId) or External(reference).
type OriginalCaseLink struct {
	Kind      OriginalCaseKind `json:"kind" validate:"required,oneof=INTERNAL EXTERNAL"`
	CaseID    *int64           `json:"caseId,omitempty"`
	Reference string           `json:"reference,omitempty"`
}

// InternalCase links to a case held in the registry.
func InternalCase(caseID int64) *OriginalCaseLink {
	return &OriginalCaseLink{Kind: OriginalCaseInternal, CaseID: &caseID}
}

// ExternalCase links to a matter known only by its textual reference.
func ExternalCase(reference string) *OriginalCaseLink {
	return &OriginalCaseLink{Kind: OriginalCaseExternal, Reference: reference}
}

// Check reports whether the link holds exactly the field its kind requires.
func (l OriginalCaseLink) Check() error {
	switch l.Kind {
	case OriginalCaseInternal:
		if l.CaseID == nil || *l.CaseID <= 0 || l.Reference != "" {
			return fmt.Errorf("internal link needs a case id and no reference")
		}
	case OriginalCaseExternal:
		if l.Reference == "" || l.CaseID != nil {
			return fmt.Errorf("external link needs a reference and no case id")
		}
	default:
		return fmt.Errorf("unknown original case kind %q", l.Kind)
	}
	return nil
}

// DeadlineType classifies an appeal deadline.
type DeadlineType string

const (
	DeadlineFiling     DeadlineType = "FILING"
	DeadlineSubmission DeadlineType = "SUBMISSION"
	DeadlineResponse   DeadlineType = "RESPONSE"
	DeadlineHearing    DeadlineType = "HEARING"
	DeadlineOther      DeadlineType = "OTHER"
)

// DeadlineStatus is the state of an appeal deadline.
type DeadlineStatus string

const (
	DeadlinePending  DeadlineStatus = "PENDING"
	DeadlineMet      DeadlineStatus = "MET"
	DeadlineMissed   DeadlineStatus = "MISSED"
	DeadlineExtended DeadlineStatus = "EXTENDED"
)

// AppealDecision is the appellate result.
type AppealDecision string

const (
	AppealAllowed       AppealDecision = "ALLOWED"
	AppealPartlyAllowed AppealDecision = "PARTLY_ALLOWED"
	AppealDismissed     AppealDecision = "DISMISSED"
	AppealWithdrawn     AppealDecision = "WITHDRAWN"
	AppealRemanded      AppealDecision = "REMANDED"
)

// AppealDetails extends an APPEALS case.
type AppealDetails struct {
	DetailAudit
	OriginalCase   *OriginalCaseLink `json:"originalCase,omitempty"`
	AppellateCourt string            `json:"appellateCourt"`
	AppealNumber   string            `json:"appealNumber"`
	Appellant      string            `json:"appellant"`
	Respondent     string            `json:"respondent"`
	Grounds        string            `json:"grounds"`
	FiledDate      *Date             `json:"filedDate,omitempty"`
}

// AppealRequest carries the header fields of an appeal.
type AppealRequest struct {
	OriginalCase   *OriginalCaseLink `json:"originalCase"`
	AppellateCourt string            `json:"appellateCourt" validate:"required,max=255"`
	AppealNumber   string            `json:"appealNumber" validate:"max=100"`
	Appellant      string            `json:"appellant" validate:"max=255"`
	Respondent     string            `json:"respondent" validate:"max=255"`
	Grounds        string            `json:"grounds"`
	FiledDate      *Date             `json:"filedDate"`
}

// AppealDeadline is a dated obligation of the appeal.
type AppealDeadline struct {
	ID           int64          `json:"id"`
	DetailID     int64          `json:"detailId"`
	DeadlineType DeadlineType   `json:"deadlineType"`
	DeadlineDate Date           `json:"deadlineDate"`
	Status       DeadlineStatus `json:"status"`
	ExtendedDate *Date          `json:"extendedDate,omitempty"`
	Notes        string         `json:"notes"`
	Overdue      bool           `json:"overdue"`
	ChildAudit
}

// EffectiveDate is the extended date when present, else the deadline date.
func (d AppealDeadline) EffectiveDate() Date {
	if d.ExtendedDate != nil && !d.ExtendedDate.IsZero() {
		return *d.ExtendedDate
	}
	return d.DeadlineDate
}

// IsOverdue reports whether a pending deadline's effective date is before
// today.
func (d AppealDeadline) IsOverdue(today Date) bool {
	return d.Status == DeadlinePending && d.EffectiveDate().Before(today)
}

// DeadlineRequest carries a deadline.
type DeadlineRequest struct {
	DeadlineType DeadlineType   `json:"deadlineType" validate:"required,oneof=FILING SUBMISSION RESPONSE HEARING OTHER"`
	DeadlineDate Date           `json:"deadlineDate" validate:"required"`
	Status       DeadlineStatus `json:"status" validate:"required,oneof=PENDING MET MISSED EXTENDED"`
	ExtendedDate *Date          `json:"extendedDate"`
	Notes        string         `json:"notes"`
}

// AppealOutcome is the single recorded result of an appeal.
type AppealOutcome struct {
	ID           int64          `json:"id"`
	DetailID     int64          `json:"detailId"`
	Decision     AppealDecision `json:"decision"`
	DecisionDate Date           `json:"decisionDate"`
	Summary      string         `json:"summary"`
	ChildAudit
}

// OutcomeRequest carries an appeal outcome.
type OutcomeRequest struct {
	Decision     AppealDecision `json:"decision" validate:"required,oneof=ALLOWED PARTLY_ALLOWED DISMISSED WITHDRAWN REMANDED"`
	DecisionDate Date           `json:"decisionDate" validate:"required"`
	Summary      string         `json:"summary"`
}

// AppealView is the assembled appeal extension.
type AppealView struct {
	Details      AppealDetails    `json:"details"`
	Deadlines    []AppealDeadline `json:"deadlines"`
	Outcome      *AppealOutcome   `json:"outcome,omitempty"`
	OverdueCount int              `json:"overdueCount"`
}
