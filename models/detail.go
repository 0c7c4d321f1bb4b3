package models

import "time"

// DetailAudit is the identity and audit block shared by every case-type
// detail record.
type DetailAudit struct {
	ID            int64      `json:"id"`
	CaseID        int64      `json:"caseId"`
	CreatedBy     int64      `json:"createdBy"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastUpdatedBy *int64     `json:"lastUpdatedBy,omitempty"`
	LastUpdatedAt *time.Time `json:"lastUpdatedAt,omitempty"`
}

// Audit gives generic code access to the embedded audit block.
func (a *DetailAudit) Audit() *DetailAudit {
	return a
}

// ChildAudit is the audit block of detail child rows.
type ChildAudit struct {
	RecordedBy int64      `json:"recordedBy"`
	RecordedAt time.Time  `json:"recordedAt"`
	UpdatedBy  *int64     `json:"updatedBy,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// Touch stamps the child as updated by actor at now.
func (a *ChildAudit) Touch(actor int64, now time.Time) {
	a.UpdatedBy = &actor
	a.UpdatedAt = &now
}
