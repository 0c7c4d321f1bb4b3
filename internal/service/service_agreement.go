package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/metrics"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/utils"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

const initialDraftNote = "Initial draft"

type keyGenerator interface {
	Generate() string
}

type agreementService struct {
	transactor store.Transactor
	agreements store.AgreementRepository
	cases      store.CaseRepository
	documents  store.DocumentStorage
	resolver   userResolver
	keys       keyGenerator

	metrics *metrics.Workflow
	now     clock
	logger  *logger.Logger
}

func NewAgreementService(storages *store.Storages, m *metrics.Workflow, logger *logger.Logger) AgreementService {
	logger.Debug().Msg("creating agreement service")
	return &agreementService{
		transactor: storages.Transactor,
		agreements: storages.Agreements,
		cases:      storages.Cases,
		documents:  storages.Documents,
		resolver:   userResolver{users: storages.Users},
		keys:       utils.NewUUIDGenerator(),
		metrics:    m,
		now:        systemClock,
		logger:     logger,
	}
}

func (s *agreementService) CreateAgreement(ctx context.Context, principal models.Principal, req models.CreateAgreementRequest, upload *models.Upload) (models.AgreementView, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.AgreementView{}, err
	}
	if err := checkAgreementRequest(req); err != nil {
		return models.AgreementView{}, err
	}
	log := logger.FromContext(ctx)

	now := s.now()
	var created models.Agreement
	uploads := newPendingUploads(s.documents)
	err := s.transactor.RunInTx(ctx, func(ctx context.Context) error {
		if req.CaseID != nil {
			if _, err := s.cases.FindCaseByID(ctx, *req.CaseID); err != nil {
				return caseLookupError(err, *req.CaseID)
			}
		}

		var err error
		created, err = s.agreements.CreateAgreement(ctx, models.Agreement{
			Title:         strings.TrimSpace(req.Title),
			AgreementType: req.AgreementType,
			Parties:       req.Parties,
			Value:         req.Value,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			Description:   req.Description,
			CaseID:        req.CaseID,
			Status:        models.AgreementDraft,
			CreatedBy:     principal.ID,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			return err
		}

		if upload.IsEmpty() {
			return nil
		}
		return s.addVersion(ctx, uploads, principal, created.ID, 1, initialDraftNote, *upload, now)
	})
	uploads.discardOn(ctx, err)
	if err != nil {
		log.Err(err).Int64("principal_id", principal.ID).Msg("agreement creation failed")
		return models.AgreementView{}, translate(err)
	}

	s.metrics.AgreementStatusChanged(created.Status)
	log.Info().Int64("agreement_id", created.ID).Msg("agreement created")
	return s.GetAgreement(ctx, principal, created.ID)
}

// UploadRevision appends the next version and sends the agreement back to
// review, whatever its current status.
func (s *agreementService) UploadRevision(ctx context.Context, principal models.Principal, agreementID int64, notes string, upload models.Upload) (models.AgreementView, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.AgreementView{}, err
	}
	if upload.IsEmpty() {
		return models.AgreementView{}, invalidInput("a file is required")
	}

	uploads := newPendingUploads(s.documents)
	_, err := s.transition(ctx, agreementID, "UploadRevision", func(ctx context.Context, a *models.Agreement, now time.Time) error {
		number, err := s.agreements.NextVersionNumber(ctx, a.ID)
		if err != nil {
			return err
		}
		if err := s.addVersion(ctx, uploads, principal, a.ID, number, notes, upload, now); err != nil {
			return err
		}

		a.Status = models.AgreementReviewRequested
		return nil
	})
	uploads.discardOn(ctx, err)
	if err != nil {
		return models.AgreementView{}, err
	}
	return s.GetAgreement(ctx, principal, agreementID)
}

// RequestReview moves a DRAFT to REVIEW_REQUESTED.
func (s *agreementService) RequestReview(ctx context.Context, principal models.Principal, agreementID int64, req models.AgreementTransitionRequest) (models.Agreement, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.Agreement{}, err
	}
	target := req.Status
	if target == "" {
		target = models.AgreementReviewRequested
	}
	if target != models.AgreementReviewRequested {
		return models.Agreement{}, invalidState("a review request must target %s, not %s", models.AgreementReviewRequested, target)
	}

	return s.transition(ctx, agreementID, "RequestReview", func(ctx context.Context, a *models.Agreement, now time.Time) error {
		if a.Status != models.AgreementDraft {
			return invalidState("review can only be requested for a %s agreement, not %s", models.AgreementDraft, a.Status)
		}
		a.Status = target
		return s.remark(ctx, principal, a.ID, req.Remarks, now)
	})
}

// ReviewAgreement records the reviewer's verdict. Only the target status is
// checked. Moving to PENDING_APPROVAL makes the principal the reviewer of
// record.
func (s *agreementService) ReviewAgreement(ctx context.Context, principal models.Principal, agreementID int64, req models.AgreementTransitionRequest) (models.Agreement, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.Agreement{}, err
	}
	switch req.Status {
	case models.AgreementReviewRequested, models.AgreementPendingApproval, models.AgreementApproved:
	default:
		return models.Agreement{}, invalidState("a review cannot move an agreement to %q", req.Status)
	}

	return s.transition(ctx, agreementID, "ReviewAgreement", func(ctx context.Context, a *models.Agreement, now time.Time) error {
		if req.Status == models.AgreementPendingApproval {
			a.ReviewerID = &principal.ID
			a.ReviewedAt = &now
		}
		a.Status = req.Status
		return s.remark(ctx, principal, a.ID, req.Remarks, now)
	})
}

func (s *agreementService) ApproveOrReject(ctx context.Context, principal models.Principal, agreementID int64, req models.AgreementTransitionRequest) (models.Agreement, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.Agreement{}, err
	}
	if req.Status != models.AgreementApproved && req.Status != models.AgreementRejected {
		return models.Agreement{}, invalidState("a decision must be %s or %s, not %q", models.AgreementApproved, models.AgreementRejected, req.Status)
	}

	outcome := req.Status
	if outcome == models.AgreementRejected && !principal.CanSign() {
		outcome = models.AgreementPendingApproval
	}

	return s.transition(ctx, agreementID, "ApproveOrReject", func(ctx context.Context, a *models.Agreement, now time.Time) error {
		remarks := strings.TrimSpace(req.Remarks)
		a.ApproverID = &principal.ID
		a.ApprovedAt = &now
		a.ApprovalRemarks = &remarks
		a.Status = outcome
		return s.remark(ctx, principal, a.ID, remarks, now)
	})
}

func (s *agreementService) ExecuteAgreement(ctx context.Context, principal models.Principal, agreementID int64) (models.Agreement, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.Agreement{}, err
	}

	return s.transition(ctx, agreementID, "ExecuteAgreement", func(_ context.Context, a *models.Agreement, now time.Time) error {
		if a.Status != models.AgreementApproved {
			return invalidState("only an %s agreement can be executed, agreement %d is %s", models.AgreementApproved, a.ID, a.Status)
		}
		a.Status = models.AgreementExecuted
		a.ExecutedAt = &now
		return nil
	})
}

// DigitallySign signs an APPROVED agreement once and executes it. Only
// approvers of level 2 and above may sign.
func (s *agreementService) DigitallySign(ctx context.Context, principal models.Principal, agreementID int64) (models.AgreementView, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.AgreementView{}, err
	}
	if !principal.CanSign() {
		logger.FromContext(ctx).Warn().
			Int64("agreement_id", agreementID).
			Int64("principal_id", principal.ID).
			Int("approver_level", principal.ApproverLevel).
			Msg("signing refused")
		return models.AgreementView{}, &levelError{level: principal.ApproverLevel}
	}

	_, err := s.transition(ctx, agreementID, "DigitallySign", func(ctx context.Context, a *models.Agreement, now time.Time) error {
		if a.Status != models.AgreementApproved {
			return invalidState("only an %s agreement can be signed, agreement %d is %s", models.AgreementApproved, a.ID, a.Status)
		}

		_, err := s.agreements.FindSignature(ctx, a.ID)
		if err == nil {
			return conflict("agreement %d is already signed", a.ID)
		}
		if !isStoreNotFound(err) {
			return err
		}

		if _, err := s.agreements.CreateSignature(ctx, models.DigitalSignature{
			AgreementID:  a.ID,
			SignerID:     principal.ID,
			SignatureKey: s.keys.Generate(),
			SignedAt:     now,
		}); err != nil {
			return err
		}

		a.DigitallySigned = true
		a.Status = models.AgreementExecuted
		a.ExecutedAt = &now
		return nil
	})
	if err != nil {
		return models.AgreementView{}, err
	}
	return s.GetAgreement(ctx, principal, agreementID)
}

func (s *agreementService) AddComment(ctx context.Context, principal models.Principal, agreementID int64, text string) (models.AgreementComment, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.AgreementComment{}, err
	}
	if isBlank(text) {
		return models.AgreementComment{}, invalidInput("comment text is required")
	}

	var comment models.AgreementComment
	err := s.transactor.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.agreements.LockAgreement(ctx, agreementID); err != nil {
			return agreementLookupError(err, agreementID)
		}

		var err error
		comment, err = s.agreements.AddComment(ctx, models.AgreementComment{
			AgreementID: agreementID,
			AuthorID:    principal.ID,
			Text:        strings.TrimSpace(text),
			CreatedAt:   s.now(),
		})
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("agreement_id", agreementID).Msg("adding agreement comment failed")
		return models.AgreementComment{}, translate(err)
	}
	return comment, nil
}

// GetAgreement assembles the agreement with versions, comments, the
// signature and the names of every actor.
func (s *agreementService) GetAgreement(ctx context.Context, principal models.Principal, agreementID int64) (models.AgreementView, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.AgreementView{}, err
	}

	view, err := s.assemble(ctx, agreementID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("agreement_id", agreementID).Msg("loading agreement failed")
		return models.AgreementView{}, translate(err)
	}
	return view, nil
}

func (s *agreementService) assemble(ctx context.Context, agreementID int64) (models.AgreementView, error) {
	a, err := s.agreements.FindAgreementByID(ctx, agreementID)
	if err != nil {
		return models.AgreementView{}, agreementLookupError(err, agreementID)
	}

	versions, err := s.agreements.ListVersions(ctx, []int64{a.ID})
	if err != nil {
		return models.AgreementView{}, err
	}
	comments, err := s.agreements.ListComments(ctx, []int64{a.ID})
	if err != nil {
		return models.AgreementView{}, err
	}

	var signature *models.DigitalSignature
	sig, err := s.agreements.FindSignature(ctx, a.ID)
	switch {
	case err == nil:
		signature = &sig
	case !isStoreNotFound(err):
		return models.AgreementView{}, err
	}

	documentIDs := make([]int64, 0, len(versions))
	ids := []int64{a.CreatedBy, deref(a.ReviewerID), deref(a.ApproverID)}
	for _, v := range versions {
		documentIDs = append(documentIDs, v.DocumentID)
		ids = append(ids, v.UploadedBy)
	}
	for _, c := range comments {
		ids = append(ids, c.AuthorID)
	}
	if signature != nil {
		ids = append(ids, signature.SignerID)
	}

	refs, err := s.resolver.resolve(ctx, ids...)
	if err != nil {
		return models.AgreementView{}, err
	}
	docs, err := s.documents.FindDocuments(ctx, documentIDs)
	if err != nil {
		return models.AgreementView{}, err
	}
	docsByID := make(map[int64]models.Document, len(docs))
	for _, d := range docs {
		docsByID[d.ID] = d
	}

	view := models.AgreementView{
		Agreement:     a,
		CreatedByUser: refs[a.CreatedBy],
		Reviewer:      refs[deref(a.ReviewerID)],
		Approver:      refs[deref(a.ApproverID)],
		Versions:      make([]models.AgreementVersionView, 0, len(versions)),
		Comments:      make([]models.CommentView, 0, len(comments)),
	}
	for _, v := range versions {
		vv := models.AgreementVersionView{AgreementVersion: v, UploadedByUser: refs[v.UploadedBy]}
		if d, ok := docsByID[v.DocumentID]; ok {
			vv.Document = &d
		}
		view.Versions = append(view.Versions, vv)
	}
	for _, c := range comments {
		view.Comments = append(view.Comments, models.CommentView{
			ID:        c.ID,
			Text:      c.Text,
			Author:    refs[c.AuthorID],
			CreatedAt: c.CreatedAt,
		})
	}
	if signature != nil {
		view.Signature = &models.SignatureView{DigitalSignature: *signature, Signer: refs[signature.SignerID]}
	}
	return view, nil
}

func (s *agreementService) ListAll(ctx context.Context, principal models.Principal) ([]models.Agreement, error) {
	return s.list(ctx, principal, models.AgreementListFilter{})
}

func (s *agreementService) ListMine(ctx context.Context, principal models.Principal) ([]models.Agreement, error) {
	return s.list(ctx, principal, models.AgreementListFilter{CreatedBy: &principal.ID})
}

func (s *agreementService) ListForReview(ctx context.Context, principal models.Principal) ([]models.Agreement, error) {
	status := models.AgreementReviewRequested
	return s.list(ctx, principal, models.AgreementListFilter{Status: &status})
}

func (s *agreementService) ListForApproval(ctx context.Context, principal models.Principal) ([]models.Agreement, error) {
	status := models.AgreementPendingApproval
	return s.list(ctx, principal, models.AgreementListFilter{Status: &status})
}

func (s *agreementService) list(ctx context.Context, principal models.Principal, filter models.AgreementListFilter) ([]models.Agreement, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	agreements, err := s.agreements.ListAgreements(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing agreements failed")
		return nil, translate(err)
	}
	return emptyIfNil(agreements), nil
}

// transition locks the agreement, applies fn and writes the result back in
// one transaction. A status change is counted once committed.
func (s *agreementService) transition(ctx context.Context, agreementID int64, operation string,
	fn func(ctx context.Context, a *models.Agreement, now time.Time) error) (models.Agreement, error) {
	now := s.now()

	var before models.AgreementStatus
	var updated models.Agreement
	err := s.transactor.RunInTx(ctx, func(ctx context.Context) error {
		a, err := s.agreements.LockAgreement(ctx, agreementID)
		if err != nil {
			return agreementLookupError(err, agreementID)
		}
		before = a.Status

		if err := fn(ctx, &a, now); err != nil {
			return err
		}

		a.UpdatedAt = now
		updated, err = s.agreements.UpdateAgreement(ctx, a)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "agreementService."+operation).
			Int64("agreement_id", agreementID).
			Msg("agreement transition failed")
		return models.Agreement{}, translate(err)
	}

	if updated.Status != before {
		s.metrics.AgreementStatusChanged(updated.Status)
	}
	return updated, nil
}

func (s *agreementService) addVersion(ctx context.Context, uploads *pendingUploads, principal models.Principal, agreementID int64, number int,
	notes string, upload models.Upload, now time.Time) error {
	doc, err := uploads.store(ctx, upload, principal.ID)
	if err != nil {
		return err
	}
	s.metrics.DocumentStored()

	_, err = s.agreements.CreateVersion(ctx, models.AgreementVersion{
		AgreementID:   agreementID,
		VersionNumber: number,
		DocumentID:    doc.ID,
		Notes:         notes,
		UploadedBy:    principal.ID,
		UploadedAt:    now,
	})
	return err
}

// remark appends non-blank remarks as a comment.
func (s *agreementService) remark(ctx context.Context, principal models.Principal, agreementID int64, remarks string, now time.Time) error {
	if isBlank(remarks) {
		return nil
	}
	_, err := s.agreements.AddComment(ctx, models.AgreementComment{
		AgreementID: agreementID,
		AuthorID:    principal.ID,
		Text:        strings.TrimSpace(remarks),
		CreatedAt:   now,
	})
	return err
}

func agreementLookupError(err error, agreementID int64) error {
	if isStoreNotFound(err) {
		return notFound("agreement %d", agreementID)
	}
	return err
}

func checkAgreementRequest(req models.CreateAgreementRequest) error {
	if isBlank(req.Title) {
		return invalidInput("agreement title is required")
	}
	switch req.AgreementType {
	case models.AgreementService, models.AgreementLease, models.AgreementProcurement, models.AgreementMOU,
		models.AgreementEmployment, models.AgreementNDA, models.AgreementOther:
	default:
		return invalidInput("unknown agreement type %q", req.AgreementType)
	}
	if req.StartDate != nil && req.EndDate != nil && !req.StartDate.IsZero() && !req.EndDate.IsZero() && req.EndDate.Before(*req.StartDate) {
		return invalidInput("agreement end date %s is before its start date %s", req.EndDate, req.StartDate)
	}
	return nil
}

// levelError reports an approver level too low to sign.
type levelError struct {
	level int
}

func (e *levelError) Error() string {
	return fmt.Sprintf("%s: approver level %d cannot sign; level %d or higher is required",
		ErrPermissionDenied, e.level, models.MinimumSigningApprover)
}

func (e *levelError) Unwrap() error {
	return ErrPermissionDenied
}
