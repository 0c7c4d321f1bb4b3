package models

// Plea is the accused's answer to a charge.
type Plea string

const (
	PleaNotEntered Plea = "NOT_ENTERED"
	PleaGuilty     Plea = "GUILTY"
	PleaNotGuilty  Plea = "NOT_GUILTY"
)

// ChargeStatus is the disposition of a charge.
type ChargeStatus string

const (
	ChargePending   ChargeStatus = "PENDING"
	ChargeConvicted ChargeStatus = "CONVICTED"
	ChargeAcquitted ChargeStatus = "ACQUITTED"
	ChargeWithdrawn ChargeStatus = "WITHDRAWN"
	ChargeDismissed ChargeStatus = "DISMISSED"
)

// HearingOutcome is the result of a hearing.
type HearingOutcome string

const (
	HearingScheduled         HearingOutcome = "SCHEDULED"
	HearingAdjourned         HearingOutcome = "ADJOURNED"
	HearingConcluded         HearingOutcome = "CONCLUDED"
	HearingJudgmentDelivered HearingOutcome = "JUDGMENT_DELIVERED"
)

// CriminalDetails extends a CRIMINAL case.
type CriminalDetails struct {
	DetailAudit
	AccusedName       string `json:"accusedName"`
	AccusedIdentifier string `json:"accusedIdentifier"`
	PoliceStation     string `json:"policeStation"`
	CourtCaseNumber   string `json:"courtCaseNumber"`
	OffenceDate       *Date  `json:"offenceDate,omitempty"`
	Prosecutor        string `json:"prosecutor"`
	BailStatus        string `json:"bailStatus"`
}

// CriminalRequest carries the header fields of a criminal case.
type CriminalRequest struct {
	AccusedName       string `json:"accusedName" validate:"required,max=255"`
	AccusedIdentifier string `json:"accusedIdentifier" validate:"max=100"`
	PoliceStation     string `json:"policeStation" validate:"max=255"`
	CourtCaseNumber   string `json:"courtCaseNumber" validate:"max=100"`
	OffenceDate       *Date  `json:"offenceDate"`
	Prosecutor        string `json:"prosecutor" validate:"max=255"`
	BailStatus        string `json:"bailStatus" validate:"max=100"`
}

// Charge is one count against the accused.
type Charge struct {
	ID          int64        `json:"id"`
	DetailID    int64        `json:"detailId"`
	Statute     string       `json:"statute"`
	Description string       `json:"description"`
	Plea        Plea         `json:"plea"`
	Status      ChargeStatus `json:"status"`
	ChildAudit
}

// ChargeRequest carries a charge.
type ChargeRequest struct {
	Statute     string       `json:"statute" validate:"required,max=255"`
	Description string       `json:"description"`
	Plea        Plea         `json:"plea" validate:"omitempty,oneof=NOT_ENTERED GUILTY NOT_GUILTY"`
	Status      ChargeStatus `json:"status" validate:"omitempty,oneof=PENDING CONVICTED ACQUITTED WITHDRAWN DISMISSED"`
}

// Hearing is a court sitting of the case.
type Hearing struct {
	ID              int64          `json:"id"`
	DetailID        int64          `json:"detailId"`
	HearingDate     Date           `json:"hearingDate"`
	Purpose         string         `json:"purpose"`
	Outcome         HearingOutcome `json:"outcome"`
	NextHearingDate *Date          `json:"nextHearingDate,omitempty"`
	Notes           string         `json:"notes"`
	ChildAudit
}

// HearingRequest carries a hearing.
type HearingRequest struct {
	HearingDate     Date           `json:"hearingDate" validate:"required"`
	Purpose         string         `json:"purpose" validate:"max=255"`
	Outcome         HearingOutcome `json:"outcome" validate:"required,oneof=SCHEDULED ADJOURNED CONCLUDED JUDGMENT_DELIVERED"`
	NextHearingDate *Date          `json:"nextHearingDate"`
	Notes           string         `json:"notes"`
}

// CriminalView is the assembled criminal extension.
type CriminalView struct {
	Details         CriminalDetails `json:"details"`
	Charges         []Charge        `json:"charges"`
	Hearings        []Hearing       `json:"hearings"`
	NextHearingDate *Date           `json:"nextHearingDate,omitempty"`
	ChargeCount     int             `json:"chargeCount"`
	HearingCount    int             `json:"hearingCount"`
}

// NextHearing returns the stored next date of the latest-dated ADJOURNED
// hearing, or nil when none is adjourned.
func NextHearing(hearings []Hearing) *Date {
	var latest *Hearing
	for i := range hearings {
		h := &hearings[i]
		if h.Outcome != HearingAdjourned {
			continue
		}
		if latest == nil || h.HearingDate.After(latest.HearingDate) {
			latest = h
		}
	}
	if latest == nil || latest.NextHearingDate == nil {
		return nil
	}
	next := *latest.NextHearingDate
	return &next
}
