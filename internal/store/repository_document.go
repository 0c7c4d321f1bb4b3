package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

const documentsTable = "documents"

var documentColumns = []string{"id", "file_name", "content_type", "size_bytes", "checksum", "storage_key", "uploaded_by", "uploaded_at"}

func scanDocument(row rowScanner) (models.Document, error) {
	var d models.Document
	err := row.Scan(&d.ID, &d.FileName, &d.ContentType, &d.SizeBytes, &d.Checksum, &d.StorageKey, &d.UploadedBy, &d.UploadedAt)
	return d, err
}

type documentRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by db.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *documentRepository) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	q := psql.Insert(documentsTable).SetMap(map[string]any{
		"file_name":    doc.FileName,
		"content_type": doc.ContentType,
		"size_bytes":   doc.SizeBytes,
		"checksum":     doc.Checksum,
		"storage_key":  doc.StorageKey,
		"uploaded_by":  doc.UploadedBy,
		"uploaded_at":  doc.UploadedAt,
	}).Suffix(returning(documentColumns))

	return queryOne(ctx, r.db, "documentRepository.CreateDocument", q, scanDocument)
}

func (r *documentRepository) FindDocumentByID(ctx context.Context, id int64) (models.Document, error) {
	q := psql.Select(documentColumns...).From(documentsTable).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, "documentRepository.FindDocumentByID", q, scanDocument)
}

func (r *documentRepository) FindDocumentsByIDs(ctx context.Context, ids []int64) ([]models.Document, error) {
	if len(ids) == 0 {
		return []models.Document{}, nil
	}
	q := psql.Select(documentColumns...).From(documentsTable).Where(sq.Eq{"id": ids}).OrderBy("id")
	return queryMany(ctx, r.db, "documentRepository.FindDocumentsByIDs", q, scanDocument)
}
