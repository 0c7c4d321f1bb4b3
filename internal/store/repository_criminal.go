package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

const (
	criminalTable = "criminal_details"
	chargesTable  = "criminal_charges"
	hearingsTable = "criminal_hearings"
)

var criminalColumns = append([]string{
	"id", "case_id", "accused_name", "accused_identifier", "police_station", "court_case_number",
	"offence_date", "prosecutor", "bail_status",
}, detailAuditColumns...)

var chargeColumns = append([]string{
	"id", "detail_id", "statute", "description", "plea", "status",
}, childAuditColumns...)

var hearingColumns = append([]string{
	"id", "detail_id", "hearing_date", "purpose", "outcome", "next_hearing_date", "notes",
}, childAuditColumns...)

func scanCriminal(row rowScanner) (models.CriminalDetails, error) {
	var d models.CriminalDetails
	err := row.Scan(
		&d.ID, &d.CaseID, &d.AccusedName, &d.AccusedIdentifier, &d.PoliceStation, &d.CourtCaseNumber,
		&d.OffenceDate, &d.Prosecutor, &d.BailStatus,
		&d.CreatedBy, &d.CreatedAt, &d.LastUpdatedBy, &d.LastUpdatedAt,
	)
	return d, err
}

func scanCharge(row rowScanner) (models.Charge, error) {
	var c models.Charge
	err := row.Scan(
		&c.ID, &c.DetailID, &c.Statute, &c.Description, &c.Plea, &c.Status,
		&c.RecordedBy, &c.RecordedAt, &c.UpdatedBy, &c.UpdatedAt,
	)
	return c, err
}

func scanHearing(row rowScanner) (models.Hearing, error) {
	var h models.Hearing
	err := row.Scan(
		&h.ID, &h.DetailID, &h.HearingDate, &h.Purpose, &h.Outcome, &h.NextHearingDate, &h.Notes,
		&h.RecordedBy, &h.RecordedAt, &h.UpdatedBy, &h.UpdatedAt,
	)
	return h, err
}

type criminalRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCriminalRepository constructs a [CriminalRepository] backed by db.
func NewCriminalRepository(db *DB, logger *logger.Logger) CriminalRepository {
	logger.Debug().Msg("creating criminal repository")
	return &criminalRepository{
		db:     db,
		logger: logger,
	}
}

func criminalValues(d models.CriminalDetails) map[string]any {
	return map[string]any{
		"accused_name":       d.AccusedName,
		"accused_identifier": d.AccusedIdentifier,
		"police_station":     d.PoliceStation,
		"court_case_number":  d.CourtCaseNumber,
		"offence_date":       d.OffenceDate,
		"prosecutor":         d.Prosecutor,
		"bail_status":        d.BailStatus,
	}
}

func (r *criminalRepository) FindDetails(ctx context.Context, caseID int64) (models.CriminalDetails, error) {
	q := psql.Select(criminalColumns...).From(criminalTable).Where(sq.Eq{"case_id": caseID})
	return queryOne(ctx, r.db, "criminalRepository.FindDetails", q, scanCriminal)
}

func (r *criminalRepository) CreateDetails(ctx context.Context, d models.CriminalDetails) (models.CriminalDetails, error) {
	q := psql.Insert(criminalTable).
		SetMap(merge(criminalValues(d), detailAuditValues(d.DetailAudit))).
		Suffix(returning(criminalColumns))
	return queryOne(ctx, r.db, "criminalRepository.CreateDetails", q, scanCriminal)
}

func (r *criminalRepository) UpdateDetails(ctx context.Context, d models.CriminalDetails) (models.CriminalDetails, error) {
	q := psql.Update(criminalTable).
		SetMap(merge(criminalValues(d), detailUpdateValues(d.DetailAudit))).
		Where(sq.Eq{"id": d.ID}).
		Suffix(returning(criminalColumns))
	return queryOne(ctx, r.db, "criminalRepository.UpdateDetails", q, scanCriminal)
}

func chargeValues(c models.Charge) map[string]any {
	return map[string]any{
		"statute":     c.Statute,
		"description": c.Description,
		"plea":        c.Plea,
		"status":      c.Status,
	}
}

func (r *criminalRepository) ListCharges(ctx context.Context, detailID int64) ([]models.Charge, error) {
	q := psql.Select(chargeColumns...).From(chargesTable).Where(sq.Eq{"detail_id": detailID}).OrderBy("id")
	return queryMany(ctx, r.db, "criminalRepository.ListCharges", q, scanCharge)
}

func (r *criminalRepository) FindCharge(ctx context.Context, id int64) (models.Charge, error) {
	q := psql.Select(chargeColumns...).From(chargesTable).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, "criminalRepository.FindCharge", q, scanCharge)
}

func (r *criminalRepository) CreateCharge(ctx context.Context, c models.Charge) (models.Charge, error) {
	values := merge(chargeValues(c), childInsertValues(c.ChildAudit), map[string]any{"detail_id": c.DetailID})
	q := psql.Insert(chargesTable).SetMap(values).Suffix(returning(chargeColumns))
	return queryOne(ctx, r.db, "criminalRepository.CreateCharge", q, scanCharge)
}

func (r *criminalRepository) UpdateCharge(ctx context.Context, c models.Charge) (models.Charge, error) {
	values := merge(chargeValues(c), childUpdateValues(c.ChildAudit))
	q := psql.Update(chargesTable).SetMap(values).Where(sq.Eq{"id": c.ID}).Suffix(returning(chargeColumns))
	return queryOne(ctx, r.db, "criminalRepository.UpdateCharge", q, scanCharge)
}

func (r *criminalRepository) DeleteCharge(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "criminalRepository.DeleteCharge", psql.Delete(chargesTable).Where(sq.Eq{"id": id}))
}

func hearingValues(h models.Hearing) map[string]any {
	return map[string]any{
		"hearing_date":      h.HearingDate,
		"purpose":           h.Purpose,
		"outcome":           h.Outcome,
		"next_hearing_date": h.NextHearingDate,
		"notes":             h.Notes,
	}
}

func (r *criminalRepository) ListHearings(ctx context.Context, detailID int64) ([]models.Hearing, error) {
	q := psql.Select(hearingColumns...).From(hearingsTable).
		Where(sq.Eq{"detail_id": detailID}).
		OrderBy("hearing_date", "id")
	return queryMany(ctx, r.db, "criminalRepository.ListHearings", q, scanHearing)
}

func (r *criminalRepository) FindHearing(ctx context.Context, id int64) (models.Hearing, error) {
	q := psql.Select(hearingColumns...).From(hearingsTable).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, "criminalRepository.FindHearing", q, scanHearing)
}

func (r *criminalRepository) CreateHearing(ctx context.Context, h models.Hearing) (models.Hearing, error) {
	values := merge(hearingValues(h), childInsertValues(h.ChildAudit), map[string]any{"detail_id": h.DetailID})
	q := psql.Insert(hearingsTable).SetMap(values).Suffix(returning(hearingColumns))
	return queryOne(ctx, r.db, "criminalRepository.CreateHearing", q, scanHearing)
}

func (r *criminalRepository) UpdateHearing(ctx context.Context, h models.Hearing) (models.Hearing, error) {
	values := merge(hearingValues(h), childUpdateValues(h.ChildAudit))
	q := psql.Update(hearingsTable).SetMap(values).Where(sq.Eq{"id": h.ID}).Suffix(returning(hearingColumns))
	return queryOne(ctx, r.db, "criminalRepository.UpdateHearing", q, scanHearing)
}

func (r *criminalRepository) DeleteHearing(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "criminalRepository.DeleteHearing", psql.Delete(hearingsTable).Where(sq.Eq{"id": id}))
}
