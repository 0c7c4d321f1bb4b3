package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

const (
	inquiryTable          = "inquiry_details"
	inquiryPanelTable     = "inquiry_panel_members"
	inquiryFindingsTable  = "inquiry_findings"
	inquiryDecisionsTable = "inquiry_decisions"
)

var inquiryColumns = append([]string{
	"id", "case_id", "commissioning_authority", "terms_of_reference", "subject", "commenced_date", "reporting_deadline",
}, detailAuditColumns...)

var panelColumns = append([]string{
	"id", "detail_id", "member_name", "designation", "role",
}, childAuditColumns...)

var findingColumns = append([]string{
	"id", "detail_id", "finding_number", "description", "severity",
}, childAuditColumns...)

var decisionColumns = append([]string{
	"id", "detail_id", "finding_id", "description", "responsible_party", "status", "implemented_date",
}, childAuditColumns...)

func scanInquiry(row rowScanner) (models.InquiryDetails, error) {
	var d models.InquiryDetails
	err := row.Scan(
		&d.ID, &d.CaseID, &d.CommissioningAuthority, &d.TermsOfReference, &d.Subject, &d.CommencedDate, &d.ReportingDeadline,
		&d.CreatedBy, &d.CreatedAt, &d.LastUpdatedBy, &d.LastUpdatedAt,
	)
	return d, err
}

func scanPanelMember(row rowScanner) (models.PanelMember, error) {
	var m models.PanelMember
	err := row.Scan(
		&m.ID, &m.DetailID, &m.MemberName, &m.Designation, &m.Role,
		&m.RecordedBy, &m.RecordedAt, &m.UpdatedBy, &m.UpdatedAt,
	)
	return m, err
}

func scanFinding(row rowScanner) (models.Finding, error) {
	var f models.Finding
	err := row.Scan(
		&f.ID, &f.DetailID, &f.FindingNumber, &f.Description, &f.Severity,
		&f.RecordedBy, &f.RecordedAt, &f.UpdatedBy, &f.UpdatedAt,
	)
	return f, err
}

func scanDecision(row rowScanner) (models.InquiryDecision, error) {
	var d models.InquiryDecision
	err := row.Scan(
		&d.ID, &d.DetailID, &d.FindingID, &d.Description, &d.ResponsibleParty, &d.Status, &d.ImplementedDate,
		&d.RecordedBy, &d.RecordedAt, &d.UpdatedBy, &d.UpdatedAt,
	)
	return d, err
}

type inquiryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewInquiryRepository constructs an [InquiryRepository] backed by db.
func NewInquiryRepository(db *DB, logger *logger.Logger) InquiryRepository {
	logger.Debug().Msg("creating inquiry repository")
	return &inquiryRepository{
		db:     db,
		logger: logger,
	}
}

func inquiryValues(d models.InquiryDetails) map[string]any {
	return map[string]any{
		"commissioning_authority": d.CommissioningAuthority,
		"terms_of_reference":      d.TermsOfReference,
		"subject":                 d.Subject,
		"commenced_date":          d.CommencedDate,
		"reporting_deadline":      d.ReportingDeadline,
	}
}

func (r *inquiryRepository) FindDetails(ctx context.Context, caseID int64) (models.InquiryDetails, error) {
	q := psql.Select(inquiryColumns...).From(inquiryTable).Where(sq.Eq{"case_id": caseID})
	return queryOne(ctx, r.db, "inquiryRepository.FindDetails", q, scanInquiry)
}

func (r *inquiryRepository) CreateDetails(ctx context.Context, d models.InquiryDetails) (models.InquiryDetails, error) {
	q := psql.Insert(inquiryTable).
		SetMap(merge(inquiryValues(d), detailAuditValues(d.DetailAudit))).
		Suffix(returning(inquiryColumns))
	return queryOne(ctx, r.db, "inquiryRepository.CreateDetails", q, scanInquiry)
}

func (r *inquiryRepository) UpdateDetails(ctx context.Context, d models.InquiryDetails) (models.InquiryDetails, error) {
	q := psql.Update(inquiryTable).
		SetMap(merge(inquiryValues(d), detailUpdateValues(d.DetailAudit))).
		Where(sq.Eq{"id": d.ID}).
		Suffix(returning(inquiryColumns))
	return queryOne(ctx, r.db, "inquiryRepository.UpdateDetails", q, scanInquiry)
}

func panelValues(m models.PanelMember) map[string]any {
	return map[string]any{
		"member_name": m.MemberName,
		"designation": m.Designation,
		"role":        m.Role,
	}
}

func (r *inquiryRepository) ListPanel(ctx context.Context, detailID int64) ([]models.PanelMember, error) {
	q := psql.Select(panelColumns...).From(inquiryPanelTable).Where(sq.Eq{"detail_id": detailID}).OrderBy("id")
	return queryMany(ctx, r.db, "inquiryRepository.ListPanel", q, scanPanelMember)
}

func (r *inquiryRepository) FindPanelMember(ctx context.Context, id int64) (models.PanelMember, error) {
	q := psql.Select(panelColumns...).From(inquiryPanelTable).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, "inquiryRepository.FindPanelMember", q, scanPanelMember)
}

func (r *inquiryRepository) CreatePanelMember(ctx context.Context, m models.PanelMember) (models.PanelMember, error) {
	values := merge(panelValues(m), childInsertValues(m.ChildAudit), map[string]any{"detail_id": m.DetailID})
	q := psql.Insert(inquiryPanelTable).SetMap(values).Suffix(returning(panelColumns))
	return queryOne(ctx, r.db, "inquiryRepository.CreatePanelMember", q, scanPanelMember)
}

func (r *inquiryRepository) UpdatePanelMember(ctx context.Context, m models.PanelMember) (models.PanelMember, error) {
	values := merge(panelValues(m), childUpdateValues(m.ChildAudit))
	q := psql.Update(inquiryPanelTable).SetMap(values).Where(sq.Eq{"id": m.ID}).Suffix(returning(panelColumns))
	return queryOne(ctx, r.db, "inquiryRepository.UpdatePanelMember", q, scanPanelMember)
}

func (r *inquiryRepository) DeletePanelMember(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "inquiryRepository.DeletePanelMember", psql.Delete(inquiryPanelTable).Where(sq.Eq{"id": id}))
}

func (r *inquiryRepository) ListFindings(ctx context.Context, detailID int64) ([]models.Finding, error) {
	q := psql.Select(findingColumns...).From(inquiryFindingsTable).
		Where(sq.Eq{"detail_id": detailID}).
		OrderBy("finding_number")
	return queryMany(ctx, r.db, "inquiryRepository.ListFindings", q, scanFinding)
}

func (r *inquiryRepository) FindFinding(ctx context.Context, id int64) (models.Finding, error) {
	q := psql.Select(findingColumns...).From(inquiryFindingsTable).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, "inquiryRepository.FindFinding", q, scanFinding)
}

func (r *inquiryRepository) NextFindingNumber(ctx context.Context, detailID int64) (int, error) {
	return nextNumber(ctx, r.db, "inquiryRepository.NextFindingNumber", inquiryFindingsTable, "finding_number", sq.Eq{"detail_id": detailID})
}

func (r *inquiryRepository) CreateFinding(ctx context.Context, f models.Finding) (models.Finding, error) {
	values := merge(childInsertValues(f.ChildAudit), map[string]any{
		"detail_id":      f.DetailID,
		"finding_number": f.FindingNumber,
		"description":    f.Description,
		"severity":       f.Severity,
	})
	q := psql.Insert(inquiryFindingsTable).SetMap(values).Suffix(returning(findingColumns))
	return queryOne(ctx, r.db, "inquiryRepository.CreateFinding", q, scanFinding)
}

// UpdateFinding never changes the finding number.
func (r *inquiryRepository) UpdateFinding(ctx context.Context, f models.Finding) (models.Finding, error) {
	values := merge(childUpdateValues(f.ChildAudit), map[string]any{
		"description": f.Description,
		"severity":    f.Severity,
	})
	q := psql.Update(inquiryFindingsTable).SetMap(values).Where(sq.Eq{"id": f.ID}).Suffix(returning(findingColumns))
	return queryOne(ctx, r.db, "inquiryRepository.UpdateFinding", q, scanFinding)
}

func (r *inquiryRepository) DeleteFinding(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "inquiryRepository.DeleteFinding", psql.Delete(inquiryFindingsTable).Where(sq.Eq{"id": id}))
}

func decisionValues(d models.InquiryDecision) map[string]any {
	return map[string]any{
		"finding_id":        d.FindingID,
		"description":       d.Description,
		"responsible_party": d.ResponsibleParty,
		"status":            d.Status,
		"implemented_date":  d.ImplementedDate,
	}
}

func (r *inquiryRepository) ListDecisions(ctx context.Context, detailID int64) ([]models.InquiryDecision, error) {
	q := psql.Select(decisionColumns...).From(inquiryDecisionsTable).Where(sq.Eq{"detail_id": detailID}).OrderBy("id")
	return queryMany(ctx, r.db, "inquiryRepository.ListDecisions", q, scanDecision)
}

func (r *inquiryRepository) FindDecision(ctx context.Context, id int64) (models.InquiryDecision, error) {
	q := psql.Select(decisionColumns...).From(inquiryDecisionsTable).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, "inquiryRepository.FindDecision", q, scanDecision)
}

func (r *inquiryRepository) CreateDecision(ctx context.Context, d models.InquiryDecision) (models.InquiryDecision, error) {
	values := merge(decisionValues(d), childInsertValues(d.ChildAudit), map[string]any{"detail_id": d.DetailID})
	q := psql.Insert(inquiryDecisionsTable).SetMap(values).Suffix(returning(decisionColumns))
	return queryOne(ctx, r.db, "inquiryRepository.CreateDecision", q, scanDecision)
}

func (r *inquiryRepository) UpdateDecision(ctx context.Context, d models.InquiryDecision) (models.InquiryDecision, error) {
	values := merge(decisionValues(d), childUpdateValues(d.ChildAudit))
	q := psql.Update(inquiryDecisionsTable).SetMap(values).Where(sq.Eq{"id": d.ID}).Suffix(returning(decisionColumns))
	return queryOne(ctx, r.db, "inquiryRepository.UpdateDecision", q, scanDecision)
}

func (r *inquiryRepository) DeleteDecision(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "inquiryRepository.DeleteDecision", psql.Delete(inquiryDecisionsTable).Where(sq.Eq{"id": id}))
}
