package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

const (
	otherCaseTable  = "other_case_details"
	attributesTable = "other_case_attributes"
	templatesTable  = "other_case_templates"
)

var otherCaseColumns = append([]string{"id", "case_id", "case_nature", "description"}, detailAuditColumns...)

var attributeColumns = append([]string{
	"id", "detail_id", "name", "value", "data_type", "category", "display_order",
}, childAuditColumns...)

var templateColumns = append([]string{
	"id", "detail_id", "name", "description", "content", "document_id", "status",
}, childAuditColumns...)

func scanOtherCase(row rowScanner) (models.OtherCaseDetails, error) {
	var d models.OtherCaseDetails
	err := row.Scan(
		&d.ID, &d.CaseID, &d.CaseNature, &d.Description,
		&d.CreatedBy, &d.CreatedAt, &d.LastUpdatedBy, &d.LastUpdatedAt,
	)
	return d, err
}

func scanAttribute(row rowScanner) (models.CaseAttribute, error) {
	var a models.CaseAttribute
	err := row.Scan(
		&a.ID, &a.DetailID, &a.Name, &a.Value, &a.DataType, &a.Category, &a.DisplayOrder,
		&a.RecordedBy, &a.RecordedAt, &a.UpdatedBy, &a.UpdatedAt,
	)
	return a, err
}

func scanTemplate(row rowScanner) (models.CaseTemplate, error) {
	var t models.CaseTemplate
	err := row.Scan(
		&t.ID, &t.DetailID, &t.Name, &t.Description, &t.Content, &t.DocumentID, &t.Status,
		&t.RecordedBy, &t.RecordedAt, &t.UpdatedBy, &t.UpdatedAt,
	)
	return t, err
}

type otherCaseRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewOtherCaseRepository constructs an [OtherCaseRepository] backed by db.
func NewOtherCaseRepository(db *DB, logger *logger.Logger) OtherCaseRepository {
	logger.Debug().Msg("creating other case repository")
	return &otherCaseRepository{
		db:     db,
		logger: logger,
	}
}

func otherCaseValues(d models.OtherCaseDetails) map[string]any {
	return map[string]any{
		"case_nature": d.CaseNature,
		"description": d.Description,
	}
}

func (r *otherCaseRepository) FindDetails(ctx context.Context, caseID int64) (models.OtherCaseDetails, error) {
	q := psql.Select(otherCaseColumns...).From(otherCaseTable).Where(sq.Eq{"case_id": caseID})
	return queryOne(ctx, r.db, "otherCaseRepository.FindDetails", q, scanOtherCase)
}

func (r *otherCaseRepository) CreateDetails(ctx context.Context, d models.OtherCaseDetails) (models.OtherCaseDetails, error) {
	q := psql.Insert(otherCaseTable).
		SetMap(merge(otherCaseValues(d), detailAuditValues(d.DetailAudit))).
		Suffix(returning(otherCaseColumns))
	return queryOne(ctx, r.db, "otherCaseRepository.CreateDetails", q, scanOtherCase)
}

func (r *otherCaseRepository) UpdateDetails(ctx context.Context, d models.OtherCaseDetails) (models.OtherCaseDetails, error) {
	q := psql.Update(otherCaseTable).
		SetMap(merge(otherCaseValues(d), detailUpdateValues(d.DetailAudit))).
		Where(sq.Eq{"id": d.ID}).
		Suffix(returning(otherCaseColumns))
	return queryOne(ctx, r.db, "otherCaseRepository.UpdateDetails", q, scanOtherCase)
}

func attributeValues(a models.CaseAttribute) map[string]any {
	return map[string]any{
		"name":          a.Name,
		"value":         a.Value,
		"data_type":     a.DataType,
		"category":      a.Category,
		"display_order": a.DisplayOrder,
	}
}

func (r *otherCaseRepository) ListAttributes(ctx context.Context, detailID int64) ([]models.CaseAttribute, error) {
	q := psql.Select(attributeColumns...).From(attributesTable).
		Where(sq.Eq{"detail_id": detailID}).
		OrderBy("display_order", "id")
	return queryMany(ctx, r.db, "otherCaseRepository.ListAttributes", q, scanAttribute)
}

func (r *otherCaseRepository) FindAttribute(ctx context.Context, id int64) (models.CaseAttribute, error) {
	q := psql.Select(attributeColumns...).From(attributesTable).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, "otherCaseRepository.FindAttribute", q, scanAttribute)
}

func (r *otherCaseRepository) AttributeNameExists(ctx context.Context, detailID int64, name string, excludeID int64) (bool, error) {
	where := sq.And{sq.Eq{"detail_id": detailID}, sq.Eq{"name": name}}
	if excludeID != 0 {
		where = append(where, sq.NotEq{"id": excludeID})
	}
	return exists(ctx, r.db, "otherCaseRepository.AttributeNameExists", attributesTable, where)
}

func (r *otherCaseRepository) CreateAttribute(ctx context.Context, a models.CaseAttribute) (models.CaseAttribute, error) {
	values := merge(attributeValues(a), childInsertValues(a.ChildAudit), map[string]any{"detail_id": a.DetailID})
	q := psql.Insert(attributesTable).SetMap(values).Suffix(returning(attributeColumns))
	return queryOne(ctx, r.db, "otherCaseRepository.CreateAttribute", q, scanAttribute)
}

func (r *otherCaseRepository) UpdateAttribute(ctx context.Context, a models.CaseAttribute) (models.CaseAttribute, error) {
	values := merge(attributeValues(a), childUpdateValues(a.ChildAudit))
	q := psql.Update(attributesTable).SetMap(values).Where(sq.Eq{"id": a.ID}).Suffix(returning(attributeColumns))
	return queryOne(ctx, r.db, "otherCaseRepository.UpdateAttribute", q, scanAttribute)
}

func (r *otherCaseRepository) DeleteAttribute(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "otherCaseRepository.DeleteAttribute", psql.Delete(attributesTable).Where(sq.Eq{"id": id}))
}

func templateValues(t models.CaseTemplate) map[string]any {
	return map[string]any{
		"name":        t.Name,
		"description": t.Description,
		"content":     t.Content,
		"document_id": t.DocumentID,
		"status":      t.Status,
	}
}

func (r *otherCaseRepository) ListTemplates(ctx context.Context, detailID int64) ([]models.CaseTemplate, error) {
	q := psql.Select(templateColumns...).From(templatesTable).Where(sq.Eq{"detail_id": detailID}).OrderBy("id")
	return queryMany(ctx, r.db, "otherCaseRepository.ListTemplates", q, scanTemplate)
}

func (r *otherCaseRepository) FindTemplate(ctx context.Context, id int64) (models.CaseTemplate, error) {
	q := psql.Select(templateColumns...).From(templatesTable).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, "otherCaseRepository.FindTemplate", q, scanTemplate)
}

func (r *otherCaseRepository) CreateTemplate(ctx context.Context, t models.CaseTemplate) (models.CaseTemplate, error) {
	values := merge(templateValues(t), childInsertValues(t.ChildAudit), map[string]any{"detail_id": t.DetailID})
	q := psql.Insert(templatesTable).SetMap(values).Suffix(returning(templateColumns))
	return queryOne(ctx, r.db, "otherCaseRepository.CreateTemplate", q, scanTemplate)
}

func (r *otherCaseRepository) UpdateTemplate(ctx context.Context, t models.CaseTemplate) (models.CaseTemplate, error) {
	values := merge(templateValues(t), childUpdateValues(t.ChildAudit))
	q := psql.Update(templatesTable).SetMap(values).Where(sq.Eq{"id": t.ID}).Suffix(returning(templateColumns))
	return queryOne(ctx, r.db, "otherCaseRepository.UpdateTemplate", q, scanTemplate)
}

func (r *otherCaseRepository) DeleteTemplate(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "otherCaseRepository.DeleteTemplate", psql.Delete(templatesTable).Where(sq.Eq{"id": id}))
}
