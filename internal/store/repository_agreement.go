package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

const (
	agreementsTable          = "agreements"
	agreementVersionsTable   = "agreement_versions"
	agreementCommentsTable   = "agreement_comments"
	agreementSignaturesTable = "agreement_signatures"
)

var agreementColumns = []string{
	"id", "title", "agreement_type", "parties", "value", "start_date", "end_date", "description", "case_id",
	"status", "created_by", "created_at", "reviewer_id", "reviewed_at", "approver_id", "approved_at",
	"approval_remarks", "digitally_signed", "executed_at", "updated_at",
}

var agreementVersionColumns = []string{"id", "agreement_id", "version_number", "document_id", "notes", "uploaded_by", "uploaded_at"}

var agreementCommentColumns = []string{"id", "agreement_id", "author_id", "text", "created_at"}

var signatureColumns = []string{"id", "agreement_id", "signer_id", "signature_key", "signed_at"}

func scanAgreement(row rowScanner) (models.Agreement, error) {
	var a models.Agreement
	err := row.Scan(
		&a.ID, &a.Title, &a.AgreementType, &a.Parties, &a.Value, &a.StartDate, &a.EndDate, &a.Description, &a.CaseID,
		&a.Status, &a.CreatedBy, &a.CreatedAt, &a.ReviewerID, &a.ReviewedAt, &a.ApproverID, &a.ApprovedAt,
		&a.ApprovalRemarks, &a.DigitallySigned, &a.ExecutedAt, &a.UpdatedAt,
	)
	return a, err
}

func scanAgreementVersion(row rowScanner) (models.AgreementVersion, error) {
	var v models.AgreementVersion
	err := row.Scan(&v.ID, &v.AgreementID, &v.VersionNumber, &v.DocumentID, &v.Notes, &v.UploadedBy, &v.UploadedAt)
	return v, err
}

func scanAgreementComment(row rowScanner) (models.AgreementComment, error) {
	var c models.AgreementComment
	err := row.Scan(&c.ID, &c.AgreementID, &c.AuthorID, &c.Text, &c.CreatedAt)
	return c, err
}

func scanSignature(row rowScanner) (models.DigitalSignature, error) {
	var s models.DigitalSignature
	err := row.Scan(&s.ID, &s.AgreementID, &s.SignerID, &s.SignatureKey, &s.SignedAt)
	return s, err
}

type agreementRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAgreementRepository constructs an [AgreementRepository] backed by db.
func NewAgreementRepository(db *DB, logger *logger.Logger) AgreementRepository {
	logger.Debug().Msg("creating agreement repository")
	return &agreementRepository{
		db:     db,
		logger: logger,
	}
}

func agreementValues(a models.Agreement) map[string]any {
	return map[string]any{
		"title":            a.Title,
		"agreement_type":   a.AgreementType,
		"parties":          a.Parties,
		"value":            a.Value,
		"start_date":       a.StartDate,
		"end_date":         a.EndDate,
		"description":      a.Description,
		"case_id":          a.CaseID,
		"status":           a.Status,
		"reviewer_id":      a.ReviewerID,
		"reviewed_at":      a.ReviewedAt,
		"approver_id":      a.ApproverID,
		"approved_at":      a.ApprovedAt,
		"approval_remarks": a.ApprovalRemarks,
		"digitally_signed": a.DigitallySigned,
		"executed_at":      a.ExecutedAt,
		"updated_at":       a.UpdatedAt,
	}
}

func (r *agreementRepository) CreateAgreement(ctx context.Context, a models.Agreement) (models.Agreement, error) {
	values := agreementValues(a)
	values["created_by"] = a.CreatedBy
	values["created_at"] = a.CreatedAt

	q := psql.Insert(agreementsTable).SetMap(values).Suffix(returning(agreementColumns))
	return queryOne(ctx, r.db, "agreementRepository.CreateAgreement", q, scanAgreement)
}

func (r *agreementRepository) FindAgreementByID(ctx context.Context, id int64) (models.Agreement, error) {
	q := psql.Select(agreementColumns...).From(agreementsTable).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, "agreementRepository.FindAgreementByID", q, scanAgreement)
}

func (r *agreementRepository) LockAgreement(ctx context.Context, id int64) (models.Agreement, error) {
	q := psql.Select(agreementColumns...).From(agreementsTable).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE")
	return queryOne(ctx, r.db, "agreementRepository.LockAgreement", q, scanAgreement)
}

func (r *agreementRepository) UpdateAgreement(ctx context.Context, a models.Agreement) (models.Agreement, error) {
	q := psql.Update(agreementsTable).SetMap(agreementValues(a)).Where(sq.Eq{"id": a.ID}).Suffix(returning(agreementColumns))
	return queryOne(ctx, r.db, "agreementRepository.UpdateAgreement", q, scanAgreement)
}

func (r *agreementRepository) ListAgreements(ctx context.Context, filter models.AgreementListFilter) ([]models.Agreement, error) {
	q := psql.Select(agreementColumns...).From(agreementsTable).OrderBy("created_at DESC", "id DESC")
	if filter.Status != nil {
		q = q.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.CreatedBy != nil {
		q = q.Where(sq.Eq{"created_by": *filter.CreatedBy})
	}
	return queryMany(ctx, r.db, "agreementRepository.ListAgreements", q, scanAgreement)
}

func (r *agreementRepository) NextVersionNumber(ctx context.Context, agreementID int64) (int, error) {
	return nextNumber(ctx, r.db, "agreementRepository.NextVersionNumber", agreementVersionsTable, "version_number", sq.Eq{"agreement_id": agreementID})
}

func (r *agreementRepository) CreateVersion(ctx context.Context, v models.AgreementVersion) (models.AgreementVersion, error) {
	q := psql.Insert(agreementVersionsTable).SetMap(map[string]any{
		"agreement_id":   v.AgreementID,
		"version_number": v.VersionNumber,
		"document_id":    v.DocumentID,
		"notes":          v.Notes,
		"uploaded_by":    v.UploadedBy,
		"uploaded_at":    v.UploadedAt,
	}).Suffix(returning(agreementVersionColumns))
	return queryOne(ctx, r.db, "agreementRepository.CreateVersion", q, scanAgreementVersion)
}

func (r *agreementRepository) ListVersions(ctx context.Context, agreementIDs []int64) ([]models.AgreementVersion, error) {
	if len(agreementIDs) == 0 {
		return []models.AgreementVersion{}, nil
	}
	q := psql.Select(agreementVersionColumns...).From(agreementVersionsTable).
		Where(sq.Eq{"agreement_id": agreementIDs}).
		OrderBy("agreement_id", "version_number")
	return queryMany(ctx, r.db, "agreementRepository.ListVersions", q, scanAgreementVersion)
}

func (r *agreementRepository) AddComment(ctx context.Context, c models.AgreementComment) (models.AgreementComment, error) {
	q := psql.Insert(agreementCommentsTable).SetMap(map[string]any{
		"agreement_id": c.AgreementID,
		"author_id":    c.AuthorID,
		"text":         c.Text,
		"created_at":   c.CreatedAt,
	}).Suffix(returning(agreementCommentColumns))
	return queryOne(ctx, r.db, "agreementRepository.AddComment", q, scanAgreementComment)
}

func (r *agreementRepository) ListComments(ctx context.Context, agreementIDs []int64) ([]models.AgreementComment, error) {
	if len(agreementIDs) == 0 {
		return []models.AgreementComment{}, nil
	}
	q := psql.Select(agreementCommentColumns...).From(agreementCommentsTable).
		Where(sq.Eq{"agreement_id": agreementIDs}).
		OrderBy("created_at", "id")
	return queryMany(ctx, r.db, "agreementRepository.ListComments", q, scanAgreementComment)
}

func (r *agreementRepository) FindSignature(ctx context.Context, agreementID int64) (models.DigitalSignature, error) {
	q := psql.Select(signatureColumns...).From(agreementSignaturesTable).Where(sq.Eq{"agreement_id": agreementID})
	return queryOne(ctx, r.db, "agreementRepository.FindSignature", q, scanSignature)
}

func (r *agreementRepository) CreateSignature(ctx context.Context, s models.DigitalSignature) (models.DigitalSignature, error) {
	q := psql.Insert(agreementSignaturesTable).SetMap(map[string]any{
		"agreement_id":  s.AgreementID,
		"signer_id":     s.SignerID,
		"signature_key": s.SignatureKey,
		"signed_at":     s.SignedAt,
	}).Suffix(returning(signatureColumns))
	return queryOne(ctx, r.db, "agreementRepository.CreateSignature", q, scanSignature)
}
