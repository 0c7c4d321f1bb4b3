package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

const (
	landTable          = "land_details"
	landOwnershipTable = "land_ownership_records"
	landDeedsTable     = "land_deeds"
)

var landColumns = append([]string{
	"id", "case_id", "land_reference_number", "survey_plan_number", "location", "extent", "dispute_nature",
}, detailAuditColumns...)

var ownershipColumns = append([]string{
	"id", "detail_id", "owner_name", "ownership_type", "start_date", "end_date", "remarks",
}, childAuditColumns...)

var deedColumns = append([]string{
	"id", "detail_id", "deed_number", "deed_type", "registration_date", "registry_office", "description", "document_id",
}, childAuditColumns...)

func scanLand(row rowScanner) (models.LandDetails, error) {
	var d models.LandDetails
	err := row.Scan(
		&d.ID, &d.CaseID, &d.LandReferenceNumber, &d.SurveyPlanNumber, &d.Location, &d.Extent, &d.DisputeNature,
		&d.CreatedBy, &d.CreatedAt, &d.LastUpdatedBy, &d.LastUpdatedAt,
	)
	return d, err
}

func scanOwnership(row rowScanner) (models.OwnershipRecord, error) {
	var o models.OwnershipRecord
	err := row.Scan(
		&o.ID, &o.DetailID, &o.OwnerName, &o.OwnershipType, &o.StartDate, &o.EndDate, &o.Remarks,
		&o.RecordedBy, &o.RecordedAt, &o.UpdatedBy, &o.UpdatedAt,
	)
	return o, err
}

func scanDeed(row rowScanner) (models.LandDeed, error) {
	var d models.LandDeed
	err := row.Scan(
		&d.ID, &d.DetailID, &d.DeedNumber, &d.DeedType, &d.RegistrationDate, &d.RegistryOffice, &d.Description, &d.DocumentID,
		&d.RecordedBy, &d.RecordedAt, &d.UpdatedBy, &d.UpdatedAt,
	)
	return d, err
}

type landRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLandRepository constructs a [LandRepository] backed by db.
func NewLandRepository(db *DB, logger *logger.Logger) LandRepository {
	logger.Debug().Msg("creating land repository")
	return &landRepository{
		db:     db,
		logger: logger,
	}
}

func landValues(d models.LandDetails) map[string]any {
	return map[string]any{
		"land_reference_number": d.LandReferenceNumber,
		"survey_plan_number":    d.SurveyPlanNumber,
		"location":              d.Location,
		"extent":                d.Extent,
		"dispute_nature":        d.DisputeNature,
	}
}

func (r *landRepository) FindDetails(ctx context.Context, caseID int64) (models.LandDetails, error) {
	q := psql.Select(landColumns...).From(landTable).Where(sq.Eq{"case_id": caseID})
	return queryOne(ctx, r.db, "landRepository.FindDetails", q, scanLand)
}

func (r *landRepository) CreateDetails(ctx context.Context, d models.LandDetails) (models.LandDetails, error) {
	q := psql.Insert(landTable).
		SetMap(merge(landValues(d), detailAuditValues(d.DetailAudit))).
		Suffix(returning(landColumns))
	return queryOne(ctx, r.db, "landRepository.CreateDetails", q, scanLand)
}

func (r *landRepository) UpdateDetails(ctx context.Context, d models.LandDetails) (models.LandDetails, error) {
	q := psql.Update(landTable).
		SetMap(merge(landValues(d), detailUpdateValues(d.DetailAudit))).
		Where(sq.Eq{"id": d.ID}).
		Suffix(returning(landColumns))
	return queryOne(ctx, r.db, "landRepository.UpdateDetails", q, scanLand)
}

func (r *landRepository) LandReferenceExists(ctx context.Context, reference string, excludeDetailID int64) (bool, error) {
	where := sq.And{sq.Eq{"land_reference_number": reference}}
	if excludeDetailID != 0 {
		where = append(where, sq.NotEq{"id": excludeDetailID})
	}
	return exists(ctx, r.db, "landRepository.LandReferenceExists", landTable, where)
}

func ownershipValues(o models.OwnershipRecord) map[string]any {
	return map[string]any{
		"owner_name":     o.OwnerName,
		"ownership_type": o.OwnershipType,
		"start_date":     o.StartDate,
		"end_date":       o.EndDate,
		"remarks":        o.Remarks,
	}
}

func (r *landRepository) ListOwnership(ctx context.Context, detailID int64) ([]models.OwnershipRecord, error) {
	q := psql.Select(ownershipColumns...).From(landOwnershipTable).
		Where(sq.Eq{"detail_id": detailID}).
		OrderBy("start_date", "id")
	return queryMany(ctx, r.db, "landRepository.ListOwnership", q, scanOwnership)
}

func (r *landRepository) FindOwnership(ctx context.Context, id int64) (models.OwnershipRecord, error) {
	q := psql.Select(ownershipColumns...).From(landOwnershipTable).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, "landRepository.FindOwnership", q, scanOwnership)
}

func (r *landRepository) CreateOwnership(ctx context.Context, o models.OwnershipRecord) (models.OwnershipRecord, error) {
	values := merge(ownershipValues(o), childInsertValues(o.ChildAudit), map[string]any{"detail_id": o.DetailID})
	q := psql.Insert(landOwnershipTable).SetMap(values).Suffix(returning(ownershipColumns))
	return queryOne(ctx, r.db, "landRepository.CreateOwnership", q, scanOwnership)
}

func (r *landRepository) UpdateOwnership(ctx context.Context, o models.OwnershipRecord) (models.OwnershipRecord, error) {
	values := merge(ownershipValues(o), childUpdateValues(o.ChildAudit))
	q := psql.Update(landOwnershipTable).SetMap(values).Where(sq.Eq{"id": o.ID}).Suffix(returning(ownershipColumns))
	return queryOne(ctx, r.db, "landRepository.UpdateOwnership", q, scanOwnership)
}

func deedValues(d models.LandDeed) map[string]any {
	return map[string]any{
		"deed_number":       d.DeedNumber,
		"deed_type":         d.DeedType,
		"registration_date": d.RegistrationDate,
		"registry_office":   d.RegistryOffice,
		"description":       d.Description,
		"document_id":       d.DocumentID,
	}
}

func (r *landRepository) ListDeeds(ctx context.Context, detailID int64) ([]models.LandDeed, error) {
	q := psql.Select(deedColumns...).From(landDeedsTable).
		Where(sq.Eq{"detail_id": detailID}).
		OrderBy("id")
	return queryMany(ctx, r.db, "landRepository.ListDeeds", q, scanDeed)
}

func (r *landRepository) FindDeed(ctx context.Context, id int64) (models.LandDeed, error) {
	q := psql.Select(deedColumns...).From(landDeedsTable).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, "landRepository.FindDeed", q, scanDeed)
}

func (r *landRepository) CreateDeed(ctx context.Context, d models.LandDeed) (models.LandDeed, error) {
	values := merge(deedValues(d), childInsertValues(d.ChildAudit), map[string]any{"detail_id": d.DetailID})
	q := psql.Insert(landDeedsTable).SetMap(values).Suffix(returning(deedColumns))
	return queryOne(ctx, r.db, "landRepository.CreateDeed", q, scanDeed)
}

func (r *landRepository) UpdateDeed(ctx context.Context, d models.LandDeed) (models.LandDeed, error) {
	values := merge(deedValues(d), childUpdateValues(d.ChildAudit))
	q := psql.Update(landDeedsTable).SetMap(values).Where(sq.Eq{"id": d.ID}).Suffix(returning(deedColumns))
	return queryOne(ctx, r.db, "landRepository.UpdateDeed", q, scanDeed)
}

func (r *landRepository) DeleteDeed(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "landRepository.DeleteDeed", psql.Delete(landDeedsTable).Where(sq.Eq{"id": id}))
}
