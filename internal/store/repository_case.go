package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

const (
	casesTable           = "cases"
	caseCommentsTable    = "case_comments"
	caseAttachmentsTable = "case_attachments"
)

var caseColumns = []string{
	"id", "title", "case_type", "reference_number", "parties", "filing_date", "court",
	"financial_exposure", "summary", "status", "created_by", "created_at",
	"assigned_officer_id", "assigned_at", "approved_by", "approved_at",
	"closed_by", "closed_at", "closing_remarks", "updated_at",
}

var caseCommentColumns = []string{"id", "case_id", "author_id", "text", "created_at"}

func scanCase(row rowScanner) (models.Case, error) {
	var c models.Case
	err := row.Scan(
		&c.ID, &c.Title, &c.CaseType, &c.ReferenceNumber, &c.Parties, &c.FilingDate, &c.Court,
		&c.FinancialExposure, &c.Summary, &c.Status, &c.CreatedBy, &c.CreatedAt,
		&c.AssignedOfficerID, &c.AssignedAt, &c.ApprovedBy, &c.ApprovedAt,
		&c.ClosedBy, &c.ClosedAt, &c.ClosingRemarks, &c.UpdatedAt,
	)
	return c, err
}

func scanCaseComment(row rowScanner) (models.CaseComment, error) {
	var cm models.CaseComment
	err := row.Scan(&cm.ID, &cm.CaseID, &cm.AuthorID, &cm.Text, &cm.CreatedAt)
	return cm, err
}

func scanCaseAttachment(row rowScanner) (models.CaseAttachment, error) {
	var a models.CaseAttachment
	d := &a.Document
	err := row.Scan(
		&a.CaseID, &a.AttachedBy, &a.AttachedAt,
		&d.ID, &d.FileName, &d.ContentType, &d.SizeBytes, &d.Checksum, &d.StorageKey, &d.UploadedBy, &d.UploadedAt,
	)
	return a, err
}

type caseRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCaseRepository constructs a [CaseRepository] backed by db.
func NewCaseRepository(db *DB, logger *logger.Logger) CaseRepository {
	logger.Debug().Msg("creating case repository")
	return &caseRepository{
		db:     db,
		logger: logger,
	}
}

func caseValues(c models.Case) map[string]any {
	return map[string]any{
		"title":               c.Title,
		"case_type":           c.CaseType,
		"reference_number":    c.ReferenceNumber,
		"parties":             c.Parties,
		"filing_date":         c.FilingDate,
		"court":               c.Court,
		"financial_exposure":  c.FinancialExposure,
		"summary":             c.Summary,
		"status":              c.Status,
		"assigned_officer_id": c.AssignedOfficerID,
		"assigned_at":         c.AssignedAt,
		"approved_by":         c.ApprovedBy,
		"approved_at":         c.ApprovedAt,
		"closed_by":           c.ClosedBy,
		"closed_at":           c.ClosedAt,
		"closing_remarks":     c.ClosingRemarks,
		"updated_at":          c.UpdatedAt,
	}
}

func (r *caseRepository) CreateCase(ctx context.Context, c models.Case) (models.Case, error) {
	values := caseValues(c)
	values["created_by"] = c.CreatedBy
	values["created_at"] = c.CreatedAt

	q := psql.Insert(casesTable).SetMap(values).Suffix(returning(caseColumns))
	return queryOne(ctx, r.db, "caseRepository.CreateCase", q, scanCase)
}

func (r *caseRepository) FindCaseByID(ctx context.Context, id int64) (models.Case, error) {
	q := psql.Select(caseColumns...).From(casesTable).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, "caseRepository.FindCaseByID", q, scanCase)
}

func (r *caseRepository) LockCase(ctx context.Context, id int64) (models.Case, error) {
	q := psql.Select(caseColumns...).From(casesTable).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE")
	return queryOne(ctx, r.db, "caseRepository.LockCase", q, scanCase)
}

func (r *caseRepository) ReferenceNumberExists(ctx context.Context, reference string) (bool, error) {
	return exists(ctx, r.db, "caseRepository.ReferenceNumberExists", casesTable, sq.Eq{"reference_number": reference})
}

func (r *caseRepository) UpdateCase(ctx context.Context, c models.Case) (models.Case, error) {
	q := psql.Update(casesTable).SetMap(caseValues(c)).Where(sq.Eq{"id": c.ID}).Suffix(returning(caseColumns))
	return queryOne(ctx, r.db, "caseRepository.UpdateCase", q, scanCase)
}

func (r *caseRepository) ListCases(ctx context.Context, filter models.CaseListFilter) ([]models.Case, error) {
	q := psql.Select(caseColumns...).From(casesTable).OrderBy("created_at DESC", "id DESC")
	if filter.Status != nil {
		q = q.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.CreatedBy != nil {
		q = q.Where(sq.Eq{"created_by": *filter.CreatedBy})
	}
	if filter.AssignedTo != nil {
		q = q.Where(sq.Eq{"assigned_officer_id": *filter.AssignedTo})
	}
	return queryMany(ctx, r.db, "caseRepository.ListCases", q, scanCase)
}

func (r *caseRepository) AddComment(ctx context.Context, comment models.CaseComment) (models.CaseComment, error) {
	q := psql.Insert(caseCommentsTable).SetMap(map[string]any{
		"case_id":    comment.CaseID,
		"author_id":  comment.AuthorID,
		"text":       comment.Text,
		"created_at": comment.CreatedAt,
	}).Suffix(returning(caseCommentColumns))
	return queryOne(ctx, r.db, "caseRepository.AddComment", q, scanCaseComment)
}

func (r *caseRepository) ListComments(ctx context.Context, caseIDs []int64) ([]models.CaseComment, error) {
	if len(caseIDs) == 0 {
		return []models.CaseComment{}, nil
	}
	q := psql.Select(caseCommentColumns...).From(caseCommentsTable).
		Where(sq.Eq{"case_id": caseIDs}).
		OrderBy("created_at", "id")
	return queryMany(ctx, r.db, "caseRepository.ListComments", q, scanCaseComment)
}

func (r *caseRepository) AttachDocument(ctx context.Context, attachment models.CaseAttachment) error {
	q := psql.Insert(caseAttachmentsTable).SetMap(map[string]any{
		"case_id":     attachment.CaseID,
		"document_id": attachment.Document.ID,
		"attached_by": attachment.AttachedBy,
		"attached_at": attachment.AttachedAt,
	})
	return execOne(ctx, r.db, "caseRepository.AttachDocument", q)
}

func (r *caseRepository) DetachDocument(ctx context.Context, caseID, documentID int64) error {
	q := psql.Delete(caseAttachmentsTable).Where(sq.Eq{"case_id": caseID, "document_id": documentID})
	return execOne(ctx, r.db, "caseRepository.DetachDocument", q)
}

func (r *caseRepository) ListAttachments(ctx context.Context, caseIDs []int64) ([]models.CaseAttachment, error) {
	if len(caseIDs) == 0 {
		return []models.CaseAttachment{}, nil
	}
	columns := append([]string{"a.case_id", "a.attached_by", "a.attached_at"}, prefixed("d", documentColumns)...)
	q := psql.Select(columns...).
		From(caseAttachmentsTable + " a").
		Join(documentsTable + " d ON d.id = a.document_id").
		Where(sq.Eq{"a.case_id": caseIDs}).
		OrderBy("a.attached_at", "d.id")
	return queryMany(ctx, r.db, "caseRepository.ListAttachments", q, scanCaseAttachment)
}
