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

type fixedKeys string

func (k fixedKeys) Generate() string { return string(k) }

var (
	reviewer       = models.Principal{ID: 21, FullName: "Kamal Fernando", Role: models.RoleAgreementReviewer}
	juniorSigner   = models.Principal{ID: 31, FullName: "Dilani Jayawardena", Role: models.RoleAgreementApprover, ApproverLevel: 1}
	seniorSigner   = models.Principal{ID: 32, FullName: "Ruwan Wickrama", Role: models.RoleAgreementApprover, ApproverLevel: 2}
	draftAgreement = models.Agreement{ID: 9, Title: "Office lease", AgreementType: models.AgreementLease, Status: models.AgreementDraft, CreatedBy: 7}
)

func newTestAgreements(t *testing.T) (*agreementService, mockStorages) {
	t.Helper()
	storages, mocks := newMockStorages(t)
	svc := NewAgreementService(storages, nil, logger.Nop()).(*agreementService)
	svc.now = fixedClock
	svc.keys = fixedKeys("0192a5c0-7b3e-7000-8000-000000000001")
	return svc, mocks
}

func withStatus(status models.AgreementStatus) models.Agreement {
	a := draftAgreement
	a.Status = status
	return a
}

func expectTransition(m mockStorages, current models.Agreement, check func(a models.Agreement)) {
	m.agreements.EXPECT().LockAgreement(gomock.Any(), current.ID).Return(current, nil)
	m.agreements.EXPECT().UpdateAgreement(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Agreement) (models.Agreement, error) {
			check(a)
			return a, nil
		},
	)
}

func TestAgreement_ReviewPath(t *testing.T) {
	svc, mocks := newTestAgreements(t)
	ctx := context.Background()

	expectTransition(mocks, withStatus(models.AgreementDraft), func(a models.Agreement) {
		assert.Equal(t, models.AgreementReviewRequested, a.Status)
		assert.Equal(t, fixedNow, a.UpdatedAt)
	})
	got, err := svc.RequestReview(ctx, legalOfficer, 9, models.AgreementTransitionRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.AgreementReviewRequested, got.Status)

	expectTransition(mocks, withStatus(models.AgreementReviewRequested), func(a models.Agreement) {
		assert.Equal(t, models.AgreementPendingApproval, a.Status)
		require.NotNil(t, a.ReviewerID)
		assert.Equal(t, reviewer.ID, *a.ReviewerID)
		require.NotNil(t, a.ReviewedAt)
		assert.Equal(t, fixedNow, *a.ReviewedAt)
	})
	mocks.agreements.EXPECT().AddComment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.AgreementComment) (models.AgreementComment, error) {
			assert.Equal(t, "Rent clause checked", c.Text)
			assert.Equal(t, reviewer.ID, c.AuthorID)
			return c, nil
		},
	)
	got, err = svc.ReviewAgreement(ctx, reviewer, 9, models.AgreementTransitionRequest{
		Status:  models.AgreementPendingApproval,
		Remarks: " Rent clause checked ",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AgreementPendingApproval, got.Status)
}

func TestAgreement_RejectedTransitions(t *testing.T) {
	tests := []struct {
		name    string
		call    func(svc *agreementService) error
		current *models.Agreement
		wantErr error
	}{
		{
			name: "review request outside draft",
			call: func(svc *agreementService) error {
				_, err := svc.RequestReview(context.Background(), legalOfficer, 9, models.AgreementTransitionRequest{})
				return err
			},
			current: &models.Agreement{ID: 9, Status: models.AgreementApproved},
			wantErr: ErrInvalidState,
		},
		{
			name: "review target outside the review states",
			call: func(svc *agreementService) error {
				_, err := svc.ReviewAgreement(context.Background(), reviewer, 9, models.AgreementTransitionRequest{Status: models.AgreementExecuted})
				return err
			},
			wantErr: ErrInvalidState,
		},
		{
			name: "decision other than approve or reject",
			call: func(svc *agreementService) error {
				_, err := svc.ApproveOrReject(context.Background(), seniorSigner, 9, models.AgreementTransitionRequest{Status: models.AgreementArchived})
				return err
			},
			wantErr: ErrInvalidState,
		},
		{
			name: "execute before approval",
			call: func(svc *agreementService) error {
				_, err := svc.ExecuteAgreement(context.Background(), seniorSigner, 9)
				return err
			},
			current: &models.Agreement{ID: 9, Status: models.AgreementPendingApproval},
			wantErr: ErrInvalidState,
		},
		{
			name: "unknown agreement",
			call: func(svc *agreementService) error {
				_, err := svc.ExecuteAgreement(context.Background(), seniorSigner, 404)
				return err
			},
			wantErr: ErrNotFound,
		},
		{
			name: "missing principal",
			call: func(svc *agreementService) error {
				_, err := svc.ExecuteAgreement(context.Background(), models.Principal{}, 9)
				return err
			},
			wantErr: ErrIdentityMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newTestAgreements(t)
			if tt.current != nil {
				mocks.agreements.EXPECT().LockAgreement(gomock.Any(), tt.current.ID).Return(*tt.current, nil)
			}
			if tt.wantErr == ErrNotFound {
				mocks.agreements.EXPECT().LockAgreement(gomock.Any(), int64(404)).Return(models.Agreement{}, store.ErrNotFound)
			}

			err := tt.call(svc)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestAgreement_ApproveOrReject(t *testing.T) {
	tests := []struct {
		name       string
		current    models.AgreementStatus
		principal  models.Principal
		decision   models.AgreementStatus
		wantStatus models.AgreementStatus
	}{
		{name: "junior approval", current: models.AgreementPendingApproval, principal: juniorSigner, decision: models.AgreementApproved, wantStatus: models.AgreementApproved},
		{name: "junior rejection escalates", current: models.AgreementPendingApproval, principal: juniorSigner, decision: models.AgreementRejected, wantStatus: models.AgreementPendingApproval},
		{name: "senior rejection is final", current: models.AgreementPendingApproval, principal: seniorSigner, decision: models.AgreementRejected, wantStatus: models.AgreementRejected},
		{name: "decision on a draft", current: models.AgreementDraft, principal: seniorSigner, decision: models.AgreementApproved, wantStatus: models.AgreementApproved},
		{name: "rejection of an approved agreement", current: models.AgreementApproved, principal: seniorSigner, decision: models.AgreementRejected, wantStatus: models.AgreementRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newTestAgreements(t)

			expectTransition(mocks, withStatus(tt.current), func(a models.Agreement) {
				assert.Equal(t, tt.wantStatus, a.Status)
				require.NotNil(t, a.ApproverID)
				assert.Equal(t, tt.principal.ID, *a.ApproverID)
				require.NotNil(t, a.ApprovedAt)
				require.NotNil(t, a.ApprovalRemarks)
				assert.Equal(t, "", *a.ApprovalRemarks)
			})

			got, err := svc.ApproveOrReject(context.Background(), tt.principal, 9, models.AgreementTransitionRequest{Status: tt.decision})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestAgreement_DigitallySign(t *testing.T) {
	t.Run("approver level too low", func(t *testing.T) {
		svc, _ := newTestAgreements(t)

		_, err := svc.DigitallySign(context.Background(), juniorSigner, 9)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrPermissionDenied))
		assert.Contains(t, err.Error(), "level 2 or higher")
	})

	t.Run("not yet approved", func(t *testing.T) {
		svc, mocks := newTestAgreements(t)
		mocks.agreements.EXPECT().LockAgreement(gomock.Any(), int64(9)).Return(withStatus(models.AgreementPendingApproval), nil)

		_, err := svc.DigitallySign(context.Background(), seniorSigner, 9)
		assert.True(t, errors.Is(err, ErrInvalidState))
	})

	t.Run("already signed", func(t *testing.T) {
		svc, mocks := newTestAgreements(t)
		mocks.agreements.EXPECT().LockAgreement(gomock.Any(), int64(9)).Return(withStatus(models.AgreementApproved), nil)
		mocks.agreements.EXPECT().FindSignature(gomock.Any(), int64(9)).Return(models.DigitalSignature{ID: 1, AgreementID: 9}, nil)

		_, err := svc.DigitallySign(context.Background(), seniorSigner, 9)
		assert.True(t, errors.Is(err, ErrConflict))
	})

	t.Run("signs and executes", func(t *testing.T) {
		svc, mocks := newTestAgreements(t)

		var signature models.DigitalSignature
		var executed models.Agreement
		mocks.agreements.EXPECT().FindSignature(gomock.Any(), int64(9)).Return(models.DigitalSignature{}, store.ErrNotFound)
		mocks.agreements.EXPECT().CreateSignature(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.DigitalSignature) (models.DigitalSignature, error) {
				assert.Equal(t, seniorSigner.ID, s.SignerID)
				assert.Equal(t, "0192a5c0-7b3e-7000-8000-000000000001", s.SignatureKey)
				assert.Equal(t, fixedNow, s.SignedAt)
				s.ID = 4
				signature = s
				return s, nil
			},
		)
		expectTransition(mocks, withStatus(models.AgreementApproved), func(a models.Agreement) {
			assert.True(t, a.DigitallySigned)
			assert.Equal(t, models.AgreementExecuted, a.Status)
			require.NotNil(t, a.ExecutedAt)
			executed = a
		})

		mocks.agreements.EXPECT().FindAgreementByID(gomock.Any(), int64(9)).DoAndReturn(
			func(context.Context, int64) (models.Agreement, error) { return executed, nil },
		)
		mocks.agreements.EXPECT().ListVersions(gomock.Any(), []int64{9}).Return(nil, nil)
		mocks.agreements.EXPECT().ListComments(gomock.Any(), []int64{9}).Return(nil, nil)
		mocks.agreements.EXPECT().FindSignature(gomock.Any(), int64(9)).DoAndReturn(
			func(context.Context, int64) (models.DigitalSignature, error) { return signature, nil },
		)
		mocks.users.EXPECT().FindUsersByIDs(gomock.Any(), []int64{7, 32}).Return([]models.User{
			{ID: 7, FullName: "Nimal Perera"},
			{ID: 32, FullName: "Ruwan Wickrama"},
		}, nil)
		mocks.documents.EXPECT().FindDocuments(gomock.Any(), gomock.Any()).Return(nil, nil)

		view, err := svc.DigitallySign(context.Background(), seniorSigner, 9)
		require.NoError(t, err)
		assert.Equal(t, models.AgreementExecuted, view.Status)
		require.NotNil(t, view.Signature)
		require.NotNil(t, view.Signature.Signer)
		assert.Equal(t, "Ruwan Wickrama", view.Signature.Signer.FullName)
		assert.Equal(t, "Nimal Perera", view.CreatedByUser.FullName)
		assert.Empty(t, view.Versions)
	})
}

func TestAgreement_UploadRevision(t *testing.T) {
	upload := models.Upload{FileName: "lease-v2.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.7")}

	t.Run("empty upload", func(t *testing.T) {
		svc, _ := newTestAgreements(t)

		_, err := svc.UploadRevision(context.Background(), legalOfficer, 9, "v2", models.Upload{})
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("appends the next version", func(t *testing.T) {
		svc, mocks := newTestAgreements(t)

		// Any status, executed included, goes back to review.
		expectTransition(mocks, withStatus(models.AgreementExecuted), func(a models.Agreement) {
			assert.Equal(t, models.AgreementReviewRequested, a.Status)
		})
		mocks.agreements.EXPECT().NextVersionNumber(gomock.Any(), int64(9)).Return(3, nil)
		mocks.documents.EXPECT().Store(gomock.Any(), upload, legalOfficer.ID).Return(models.Document{ID: 55, FileName: "lease-v2.pdf"}, nil)
		mocks.agreements.EXPECT().CreateVersion(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v models.AgreementVersion) (models.AgreementVersion, error) {
				assert.Equal(t, 3, v.VersionNumber)
				assert.Equal(t, int64(55), v.DocumentID)
				assert.Equal(t, "v2", v.Notes)
				v.ID = 12
				return v, nil
			},
		)

		version := models.AgreementVersion{ID: 12, AgreementID: 9, VersionNumber: 3, DocumentID: 55, UploadedBy: 7}
		mocks.agreements.EXPECT().FindAgreementByID(gomock.Any(), int64(9)).Return(withStatus(models.AgreementReviewRequested), nil)
		mocks.agreements.EXPECT().ListVersions(gomock.Any(), []int64{9}).Return([]models.AgreementVersion{version}, nil)
		mocks.agreements.EXPECT().ListComments(gomock.Any(), []int64{9}).Return(nil, nil)
		mocks.agreements.EXPECT().FindSignature(gomock.Any(), int64(9)).Return(models.DigitalSignature{}, store.ErrNotFound)
		mocks.users.EXPECT().FindUsersByIDs(gomock.Any(), []int64{7}).Return([]models.User{{ID: 7, FullName: "Nimal Perera"}}, nil)
		mocks.documents.EXPECT().FindDocuments(gomock.Any(), []int64{55}).Return([]models.Document{{ID: 55, FileName: "lease-v2.pdf"}}, nil)

		view, err := svc.UploadRevision(context.Background(), legalOfficer, 9, "v2", upload)
		require.NoError(t, err)
		require.Len(t, view.Versions, 1)
		require.NotNil(t, view.Versions[0].Document)
		assert.Equal(t, "lease-v2.pdf", view.Versions[0].Document.FileName)
		assert.Nil(t, view.Signature)
	})
}

func TestAgreement_CreateRejectsUnknownCase(t *testing.T) {
	svc, mocks := newTestAgreements(t)
	caseID := int64(77)
	mocks.cases.EXPECT().FindCaseByID(gomock.Any(), caseID).Return(models.Case{}, store.ErrNotFound)

	_, err := svc.CreateAgreement(context.Background(), legalOfficer, models.CreateAgreementRequest{
		Title:         "Cleaning services",
		AgreementType: models.AgreementService,
		CaseID:        &caseID,
	}, nil)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAgreement_ReviewChecksTargetOnly(t *testing.T) {
	svc, mocks := newTestAgreements(t)

	expectTransition(mocks, withStatus(models.AgreementDraft), func(a models.Agreement) {
		assert.Equal(t, models.AgreementPendingApproval, a.Status)
		require.NotNil(t, a.ReviewerID)
		assert.Equal(t, reviewer.ID, *a.ReviewerID)
	})

	got, err := svc.ReviewAgreement(context.Background(), reviewer, 9, models.AgreementTransitionRequest{Status: models.AgreementPendingApproval})
	require.NoError(t, err)
	assert.Equal(t, models.AgreementPendingApproval, got.Status)
}

func TestAgreement_FailedRevisionDiscardsContent(t *testing.T) {
	svc, mocks := newTestAgreements(t)
	upload := models.Upload{FileName: "lease-v2.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.7")}
	doc := models.Document{ID: 55, FileName: "lease-v2.pdf", StorageKey: "key-55"}

	mocks.agreements.EXPECT().LockAgreement(gomock.Any(), int64(9)).Return(withStatus(models.AgreementPendingApproval), nil)
	mocks.agreements.EXPECT().NextVersionNumber(gomock.Any(), int64(9)).Return(2, nil)
	mocks.documents.EXPECT().Store(gomock.Any(), upload, legalOfficer.ID).Return(doc, nil)
	mocks.agreements.EXPECT().CreateVersion(gomock.Any(), gomock.Any()).Return(models.AgreementVersion{}, store.ErrDuplicate)
	mocks.documents.EXPECT().Discard(gomock.Any(), doc).Return(nil)

	_, err := svc.UploadRevision(context.Background(), legalOfficer, 9, "v2", upload)
	assert.True(t, errors.Is(err, ErrConflict), "got %v", err)
}
