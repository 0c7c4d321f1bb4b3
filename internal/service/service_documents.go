package service

import (
	"context"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

type documentService struct {
	documents store.DocumentStorage

	logger *logger.Logger
}

func NewDocumentService(documents store.DocumentStorage, logger *logger.Logger) DocumentService {
	return &documentService{documents: documents, logger: logger}
}

func (s *documentService) Download(ctx context.Context, principal models.Principal, documentID int64) (models.Document, []byte, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.Document{}, nil, err
	}

	doc, content, err := s.documents.Retrieve(ctx, documentID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("document_id", documentID).Msg("document retrieval failed")
		return models.Document{}, nil, translate(err)
	}
	return doc, content, nil
}
