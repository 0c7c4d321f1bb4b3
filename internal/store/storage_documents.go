package store

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/utils"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

type keyGenerator interface {
	Generate() string
}

// documentStorage coordinates the file backend and the metadata table.
// Bytes are written first under a fresh opaque key. If recording the
// metadata fails the bytes are removed again.
type documentStorage struct {
	repository DocumentRepository
	files      FileStorage
	keys       keyGenerator
	now        func() time.Time
	logger     *logger.Logger
}

// NewDocumentStorage constructs a [DocumentStorage].
func NewDocumentStorage(repository DocumentRepository, files FileStorage, logger *logger.Logger) DocumentStorage {
	logger.Debug().Msg("creating document storage")
	return &documentStorage{
		repository: repository,
		files:      files,
		keys:       utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *documentStorage) Store(ctx context.Context, upload models.Upload, ownerID int64) (models.Document, error) {
	log := logger.FromContext(ctx).With().Str("func", "documentStorage.Store").Logger()

	if upload.IsEmpty() {
		return models.Document{}, ErrEmptyUpload
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(upload.Content)
	}

	fileName := filepath.Base(upload.FileName)
	if fileName == "." || fileName == string(filepath.Separator) {
		fileName = "document"
	}

	doc := models.Document{
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   int64(len(upload.Content)),
		Checksum:    utils.Checksum(upload.Content),
		StorageKey:  s.keys.Generate(),
		UploadedBy:  ownerID,
		UploadedAt:  s.now().UTC(),
	}

	if err := s.files.Save(ctx, doc.StorageKey, upload.Content); err != nil {
		log.Err(err).Msg("failed to save document content")
		return models.Document{}, err
	}

	stored, err := s.repository.CreateDocument(ctx, doc)
	if err != nil {
		if rmErr := s.files.Remove(ctx, doc.StorageKey); rmErr != nil {
			log.Err(rmErr).Str("key", doc.StorageKey).Msg("failed to remove orphaned document content")
		}
		return models.Document{}, err
	}

	log.Debug().Int64("document_id", stored.ID).Int64("size", stored.SizeBytes).Msg("document stored")
	return stored, nil
}

func (s *documentStorage) Retrieve(ctx context.Context, id int64) (models.Document, []byte, error) {
	doc, err := s.repository.FindDocumentByID(ctx, id)
	if err != nil {
		return models.Document{}, nil, err
	}

	content, err := s.files.Load(ctx, doc.StorageKey)
	if err != nil {
		return models.Document{}, nil, fmt.Errorf("document %d content: %w", id, err)
	}

	return doc, content, nil
}

func (s *documentStorage) Discard(ctx context.Context, doc models.Document) error {
	if doc.StorageKey == "" {
		return nil
	}
	if err := s.files.Remove(ctx, doc.StorageKey); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug().Str("func", "documentStorage.Discard").Str("key", doc.StorageKey).Msg("uncommitted document content removed")
	return nil
}

func (s *documentStorage) FindDocuments(ctx context.Context, ids []int64) ([]models.Document, error) {
	return s.repository.FindDocumentsByIDs(ctx, ids)
}
