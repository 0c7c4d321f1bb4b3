package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

const (
	appealTable          = "appeal_details"
	appealDeadlinesTable = "appeal_deadlines"
	appealOutcomesTable  = "appeal_outcomes"
)

var appealColumns = append([]string{
	"id", "case_id", "original_case_id", "original_case_ref", "appellate_court", "appeal_number",
	"appellant", "respondent", "grounds", "filed_date",
}, detailAuditColumns...)

var deadlineColumns = append([]string{
	"id", "detail_id", "deadline_type", "deadline_date", "status", "extended_date", "notes",
}, childAuditColumns...)

var outcomeColumns = append([]string{
	"id", "detail_id", "decision", "decision_date", "summary",
}, childAuditColumns...)

func scanAppeal(row rowScanner) (models.AppealDetails, error) {
	var (
		d           models.AppealDetails
		originalID  *int64
		originalRef *string
	)
	err := row.Scan(
		&d.ID, &d.CaseID, &originalID, &originalRef, &d.AppellateCourt, &d.AppealNumber,
		&d.Appellant, &d.Respondent, &d.Grounds, &d.FiledDate,
		&d.CreatedBy, &d.CreatedAt, &d.LastUpdatedBy, &d.LastUpdatedAt,
	)
	switch {
	case originalID != nil:
		d.OriginalCase = models.InternalCase(*originalID)
	case originalRef != nil:
		d.OriginalCase = models.ExternalCase(*originalRef)
	}
	return d, err
}

func scanDeadline(row rowScanner) (models.AppealDeadline, error) {
	var d models.AppealDeadline
	err := row.Scan(
		&d.ID, &d.DetailID, &d.DeadlineType, &d.DeadlineDate, &d.Status, &d.ExtendedDate, &d.Notes,
		&d.RecordedBy, &d.RecordedAt, &d.UpdatedBy, &d.UpdatedAt,
	)
	return d, err
}

func scanOutcome(row rowScanner) (models.AppealOutcome, error) {
	var o models.AppealOutcome
	err := row.Scan(
		&o.ID, &o.DetailID, &o.Decision, &o.DecisionDate, &o.Summary,
		&o.RecordedBy, &o.RecordedAt, &o.UpdatedBy, &o.UpdatedAt,
	)
	return o, err
}

type appealRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAppealRepository constructs an [AppealRepository] backed by db.
func NewAppealRepository(db *DB, logger *logger.Logger) AppealRepository {
	logger.Debug().Msg("creating appeal repository")
	return &appealRepository{
		db:     db,
		logger: logger,
	}
}

func appealValues(d models.AppealDetails) map[string]any {
	var (
		originalID  *int64
		originalRef *string
	)
	if link := d.OriginalCase; link != nil {
		switch link.Kind {
		case models.OriginalCaseInternal:
			originalID = link.CaseID
		case models.OriginalCaseExternal:
			ref := link.Reference
			originalRef = &ref
		}
	}

	return map[string]any{
		"original_case_id":  originalID,
		"original_case_ref": originalRef,
		"appellate_court":   d.AppellateCourt,
		"appeal_number":     d.AppealNumber,
		"appellant":         d.Appellant,
		"respondent":        d.Respondent,
		"grounds":           d.Grounds,
		"filed_date":        d.FiledDate,
	}
}

func (r *appealRepository) FindDetails(ctx context.Context, caseID int64) (models.AppealDetails, error) {
	q := psql.Select(appealColumns...).From(appealTable).Where(sq.Eq{"case_id": caseID})
	return queryOne(ctx, r.db, "appealRepository.FindDetails", q, scanAppeal)
}

func (r *appealRepository) CreateDetails(ctx context.Context, d models.AppealDetails) (models.AppealDetails, error) {
	q := psql.Insert(appealTable).
		SetMap(merge(appealValues(d), detailAuditValues(d.DetailAudit))).
		Suffix(returning(appealColumns))
	return queryOne(ctx, r.db, "appealRepository.CreateDetails", q, scanAppeal)
}

func (r *appealRepository) UpdateDetails(ctx context.Context, d models.AppealDetails) (models.AppealDetails, error) {
	q := psql.Update(appealTable).
		SetMap(merge(appealValues(d), detailUpdateValues(d.DetailAudit))).
		Where(sq.Eq{"id": d.ID}).
		Suffix(returning(appealColumns))
	return queryOne(ctx, r.db, "appealRepository.UpdateDetails", q, scanAppeal)
}

func deadlineValues(d models.AppealDeadline) map[string]any {
	return map[string]any{
		"deadline_type": d.DeadlineType,
		"deadline_date": d.DeadlineDate,
		"status":        d.Status,
		"extended_date": d.ExtendedDate,
		"notes":         d.Notes,
	}
}

func (r *appealRepository) ListDeadlines(ctx context.Context, detailID int64) ([]models.AppealDeadline, error) {
	q := psql.Select(deadlineColumns...).From(appealDeadlinesTable).
		Where(sq.Eq{"detail_id": detailID}).
		OrderBy("deadline_date", "id")
	return queryMany(ctx, r.db, "appealRepository.ListDeadlines", q, scanDeadline)
}

func (r *appealRepository) FindDeadline(ctx context.Context, id int64) (models.AppealDeadline, error) {
	q := psql.Select(deadlineColumns...).From(appealDeadlinesTable).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, "appealRepository.FindDeadline", q, scanDeadline)
}

func (r *appealRepository) CreateDeadline(ctx context.Context, d models.AppealDeadline) (models.AppealDeadline, error) {
	values := merge(deadlineValues(d), childInsertValues(d.ChildAudit), map[string]any{"detail_id": d.DetailID})
	q := psql.Insert(appealDeadlinesTable).SetMap(values).Suffix(returning(deadlineColumns))
	return queryOne(ctx, r.db, "appealRepository.CreateDeadline", q, scanDeadline)
}

func (r *appealRepository) UpdateDeadline(ctx context.Context, d models.AppealDeadline) (models.AppealDeadline, error) {
	values := merge(deadlineValues(d), childUpdateValues(d.ChildAudit))
	q := psql.Update(appealDeadlinesTable).SetMap(values).Where(sq.Eq{"id": d.ID}).Suffix(returning(deadlineColumns))
	return queryOne(ctx, r.db, "appealRepository.UpdateDeadline", q, scanDeadline)
}

func (r *appealRepository) DeleteDeadline(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "appealRepository.DeleteDeadline", psql.Delete(appealDeadlinesTable).Where(sq.Eq{"id": id}))
}

func outcomeValues(o models.AppealOutcome) map[string]any {
	return map[string]any{
		"decision":      o.Decision,
		"decision_date": o.DecisionDate,
		"summary":       o.Summary,
	}
}

func (r *appealRepository) FindOutcome(ctx context.Context, detailID int64) (models.AppealOutcome, error) {
	q := psql.Select(outcomeColumns...).From(appealOutcomesTable).Where(sq.Eq{"detail_id": detailID})
	return queryOne(ctx, r.db, "appealRepository.FindOutcome", q, scanOutcome)
}

func (r *appealRepository) CreateOutcome(ctx context.Context, o models.AppealOutcome) (models.AppealOutcome, error) {
	values := merge(outcomeValues(o), childInsertValues(o.ChildAudit), map[string]any{"detail_id": o.DetailID})
	q := psql.Insert(appealOutcomesTable).SetMap(values).Suffix(returning(outcomeColumns))
	return queryOne(ctx, r.db, "appealRepository.CreateOutcome", q, scanOutcome)
}

func (r *appealRepository) UpdateOutcome(ctx context.Context, o models.AppealOutcome) (models.AppealOutcome, error) {
	values := merge(outcomeValues(o), childUpdateValues(o.ChildAudit))
	q := psql.Update(appealOutcomesTable).SetMap(values).Where(sq.Eq{"id": o.ID}).Suffix(returning(outcomeColumns))
	return queryOne(ctx, r.db, "appealRepository.UpdateOutcome", q, scanOutcome)
}

func (r *appealRepository) DeleteOutcome(ctx context.Context, detailID int64) error {
	q := psql.Delete(appealOutcomesTable).Where(sq.Eq{"detail_id": detailID})
	return execOne(ctx, r.db, "appealRepository.DeleteOutcome", q)
}
