package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestOtherCases(t *testing.T) (*otherCaseService, mockStorages) {
	t.Helper()
	storages, mocks := newMockStorages(t)
	svc := NewOtherCaseService(storages, nil, logger.Nop()).(*otherCaseService)
	svc.now = fixedClock
	return svc, mocks
}

func otherDetails(caseID int64) models.OtherCaseDetails {
	return models.OtherCaseDetails{DetailAudit: models.DetailAudit{ID: 4, CaseID: caseID}, CaseNature: "Arbitration"}
}

func TestOtherCase_AttributeNameIsUniquePerCase(t *testing.T) {
	svc, mocks := newTestOtherCases(t)

	mocks.cases.EXPECT().LockCase(gomock.Any(), int64(50)).Return(activeCase(50, models.CaseTypeOther), nil)
	mocks.otherCases.EXPECT().FindDetails(gomock.Any(), int64(50)).Return(otherDetails(50), nil)
	mocks.otherCases.EXPECT().AttributeNameExists(gomock.Any(), int64(4), "Arbitrator", int64(0)).Return(true, nil)

	_, err := svc.AddAttribute(context.Background(), legalOfficer, 50, models.AttributeRequest{Name: " Arbitrator ", Value: "J. Fernando"})
	assert.True(t, errors.Is(err, ErrConflict), "got %v", err)
}

func TestOtherCase_AddAttributeDefaultsToText(t *testing.T) {
	svc, mocks := newTestOtherCases(t)

	mocks.cases.EXPECT().LockCase(gomock.Any(), int64(50)).Return(activeCase(50, models.CaseTypeOther), nil)
	mocks.otherCases.EXPECT().FindDetails(gomock.Any(), int64(50)).Return(otherDetails(50), nil)
	mocks.otherCases.EXPECT().AttributeNameExists(gomock.Any(), int64(4), "Venue", int64(0)).Return(false, nil)
	mocks.otherCases.EXPECT().CreateAttribute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.CaseAttribute) (models.CaseAttribute, error) {
			a.ID = 12
			return a, nil
		},
	)

	attr, err := svc.AddAttribute(context.Background(), legalOfficer, 50, models.AttributeRequest{Name: "Venue", Value: "Colombo", DisplayOrder: 2})
	require.NoError(t, err)
	assert.Equal(t, models.AttributeText, attr.DataType)
	assert.Equal(t, int64(4), attr.DetailID)
	assert.Equal(t, 2, attr.DisplayOrder)
}

func TestOtherCase_AttributeValueMustMatchType(t *testing.T) {
	tests := []struct {
		name string
		req  models.AttributeRequest
	}{
		{name: "number", req: models.AttributeRequest{Name: "Award", Value: "a lot", DataType: models.AttributeNumber}},
		{name: "date", req: models.AttributeRequest{Name: "Hearing", Value: "14/03/2026", DataType: models.AttributeDate}},
		{name: "boolean", req: models.AttributeRequest{Name: "Settled", Value: "maybe", DataType: models.AttributeBoolean}},
		{name: "unknown type", req: models.AttributeRequest{Name: "Colour", Value: "red", DataType: "COLOUR"}},
		{name: "negative order", req: models.AttributeRequest{Name: "Venue", DisplayOrder: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestOtherCases(t)

			_, err := svc.AddAttribute(context.Background(), legalOfficer, 50, tt.req)
			assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
		})
	}
}

func TestOtherCase_TemplateNeedsBody(t *testing.T) {
	svc, mocks := newTestOtherCases(t)

	mocks.cases.EXPECT().LockCase(gomock.Any(), int64(50)).Return(activeCase(50, models.CaseTypeOther), nil)
	mocks.otherCases.EXPECT().FindDetails(gomock.Any(), int64(50)).Return(otherDetails(50), nil)

	_, err := svc.AddTemplate(context.Background(), legalOfficer, 50, models.TemplateRequest{Name: "Notice of arbitration"})
	assert.True(t, errors.Is(err, ErrInvalidState), "got %v", err)
}

func TestOtherCase_UploadTemplateLinksDocument(t *testing.T) {
	svc, mocks := newTestOtherCases(t)
	upload := models.Upload{FileName: "notice.docx", ContentType: "application/octet-stream", Content: []byte("notice")}

	mocks.cases.EXPECT().LockCase(gomock.Any(), int64(50)).Return(activeCase(50, models.CaseTypeOther), nil)
	mocks.otherCases.EXPECT().FindDetails(gomock.Any(), int64(50)).Return(otherDetails(50), nil)
	mocks.documents.EXPECT().Store(gomock.Any(), upload, legalOfficer.ID).Return(models.Document{ID: 88, FileName: "notice.docx"}, nil)
	mocks.otherCases.EXPECT().CreateTemplate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tmpl models.CaseTemplate) (models.CaseTemplate, error) {
			tmpl.ID = 3
			return tmpl, nil
		},
	)

	tmpl, err := svc.UploadTemplate(context.Background(), legalOfficer, 50, models.TemplateRequest{Name: "Notice"}, upload)
	require.NoError(t, err)
	require.NotNil(t, tmpl.DocumentID)
	assert.Equal(t, int64(88), *tmpl.DocumentID)
	assert.Equal(t, models.TemplateDraft, tmpl.Status)
}

func TestOtherCase_TemplateStatusOnlyMovesForward(t *testing.T) {
	svc, mocks := newTestOtherCases(t)
	content := "Dear Sir,"
	current := models.CaseTemplate{ID: 3, DetailID: 4, Name: "Notice", Content: &content, Status: models.TemplateActive}

	mocks.cases.EXPECT().LockCase(gomock.Any(), int64(50)).Return(activeCase(50, models.CaseTypeOther), nil)
	mocks.otherCases.EXPECT().FindDetails(gomock.Any(), int64(50)).Return(otherDetails(50), nil)
	mocks.otherCases.EXPECT().FindTemplate(gomock.Any(), int64(3)).Return(current, nil)

	_, err := svc.UpdateTemplate(context.Background(), legalOfficer, 50, 3, models.TemplateRequest{
		Name:    "Notice",
		Content: &content,
		Status:  models.TemplateDraft,
	})
	assert.True(t, errors.Is(err, ErrInvalidState), "got %v", err)
}

func TestOtherCase_UpdateTemplateKeepsDocument(t *testing.T) {
	svc, mocks := newTestOtherCases(t)
	documentID := int64(88)
	current := models.CaseTemplate{ID: 3, DetailID: 4, Name: "Notice", DocumentID: &documentID, Status: models.TemplateDraft}

	mocks.cases.EXPECT().LockCase(gomock.Any(), int64(50)).Return(activeCase(50, models.CaseTypeOther), nil)
	mocks.otherCases.EXPECT().FindDetails(gomock.Any(), int64(50)).Return(otherDetails(50), nil)
	mocks.otherCases.EXPECT().FindTemplate(gomock.Any(), int64(3)).Return(current, nil)
	mocks.otherCases.EXPECT().UpdateTemplate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tmpl models.CaseTemplate) (models.CaseTemplate, error) {
			return tmpl, nil
		},
	)

	tmpl, err := svc.UpdateTemplate(context.Background(), legalOfficer, 50, 3, models.TemplateRequest{
		Name:   "Notice of arbitration",
		Status: models.TemplateActive,
	})
	require.NoError(t, err)
	require.NotNil(t, tmpl.DocumentID)
	assert.Equal(t, documentID, *tmpl.DocumentID)
	assert.Equal(t, models.TemplateActive, tmpl.Status)
	require.NotNil(t, tmpl.UpdatedBy)
	assert.Equal(t, legalOfficer.ID, *tmpl.UpdatedBy)
}

func TestOtherCase_RejectedTemplateUploadDiscardsContent(t *testing.T) {
	svc, mocks := newTestOtherCases(t)
	upload := models.Upload{FileName: "notice.docx", ContentType: "application/octet-stream", Content: []byte("notice")}
	doc := models.Document{ID: 88, FileName: "notice.docx", StorageKey: "key-88"}

	mocks.cases.EXPECT().LockCase(gomock.Any(), int64(50)).Return(activeCase(50, models.CaseTypeOther), nil)
	mocks.otherCases.EXPECT().FindDetails(gomock.Any(), int64(50)).Return(otherDetails(50), nil)
	mocks.documents.EXPECT().Store(gomock.Any(), upload, legalOfficer.ID).Return(doc, nil)
	mocks.otherCases.EXPECT().CreateTemplate(gomock.Any(), gomock.Any()).Return(models.CaseTemplate{}, store.ErrConstraintViolated)
	mocks.documents.EXPECT().Discard(gomock.Any(), doc).Return(nil)

	_, err := svc.UploadTemplate(context.Background(), legalOfficer, 50, models.TemplateRequest{Name: "Notice"}, upload)
	assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
}

func TestOtherCase_UpdateTemplateRemovesDocument(t *testing.T) {
	documentID := int64(88)
	content := "Dear Sir,"

	tests := []struct {
		name    string
		content *string
		wantErr error
	}{
		{name: "inline content remains", content: &content},
		{name: "nothing left", wantErr: ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newTestOtherCases(t)
			current := models.CaseTemplate{ID: 3, DetailID: 4, Name: "Notice", DocumentID: &documentID, Status: models.TemplateDraft}

			mocks.cases.EXPECT().LockCase(gomock.Any(), int64(50)).Return(activeCase(50, models.CaseTypeOther), nil)
			mocks.otherCases.EXPECT().FindDetails(gomock.Any(), int64(50)).Return(otherDetails(50), nil)
			mocks.otherCases.EXPECT().FindTemplate(gomock.Any(), int64(3)).Return(current, nil)
			if tt.wantErr == nil {
				mocks.otherCases.EXPECT().UpdateTemplate(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tmpl models.CaseTemplate) (models.CaseTemplate, error) {
						return tmpl, nil
					},
				)
			}

			tmpl, err := svc.UpdateTemplate(context.Background(), legalOfficer, 50, 3, models.TemplateRequest{
				Name:           "Notice",
				Content:        tt.content,
				RemoveDocument: true,
			})
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Nil(t, tmpl.DocumentID)
			assert.Equal(t, models.TemplateDraft, tmpl.Status)
		})
	}
}
