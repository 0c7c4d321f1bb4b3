package service

import (
	"context"
	"strings"
	"time"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/metrics"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

type caseService struct {
	transactor store.Transactor
	cases      store.CaseRepository
	users      store.UserRepository
	documents  store.DocumentStorage
	resolver   userResolver

	metrics *metrics.Workflow
	now     clock
	logger  *logger.Logger
}

func NewCaseService(storages *store.Storages, m *metrics.Workflow, logger *logger.Logger) CaseService {
	logger.Debug().Msg("creating case service")
	return &caseService{
		transactor: storages.Transactor,
		cases:      storages.Cases,
		users:      storages.Users,
		documents:  storages.Documents,
		resolver:   userResolver{users: storages.Users},
		metrics:    m,
		now:        systemClock,
		logger:     logger,
	}
}

// CreateCase registers a NEW case. The reference number is checked up front
// and again by the unique constraint.
func (s *caseService) CreateCase(ctx context.Context, principal models.Principal, req models.CreateCaseRequest) (models.Case, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.Case{}, err
	}
	log := logger.FromContext(ctx)

	reference := strings.TrimSpace(req.ReferenceNumber)
	if isBlank(req.Title) || reference == "" {
		return models.Case{}, invalidInput("title and reference number are required")
	}
	if !validCaseType(req.CaseType) {
		return models.Case{}, invalidInput("unknown case type %q", req.CaseType)
	}

	now := s.now()
	var created models.Case
	err := s.transactor.RunInTx(ctx, func(ctx context.Context) error {
		taken, err := s.cases.ReferenceNumberExists(ctx, reference)
		if err != nil {
			return err
		}
		if taken {
			return conflict("reference number %q is already in use", reference)
		}

		created, err = s.cases.CreateCase(ctx, models.Case{
			Title:             strings.TrimSpace(req.Title),
			CaseType:          req.CaseType,
			ReferenceNumber:   reference,
			Parties:           req.Parties,
			FilingDate:        req.FilingDate,
			Court:             req.Court,
			FinancialExposure: req.FinancialExposure,
			Summary:           req.Summary,
			Status:            models.CaseStatusNew,
			CreatedBy:         principal.ID,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
		return err
	})
	if err != nil {
		log.Err(err).Str("reference_number", reference).Int64("principal_id", principal.ID).Msg("case creation failed")
		return models.Case{}, translate(err)
	}

	s.metrics.CaseStatusChanged(created.Status)
	log.Info().Int64("case_id", created.ID).Str("case_type", string(created.CaseType)).Msg("case created")
	return created, nil
}

// AssignToOfficer records the LEGAL_OFFICER responsible for the case. Any
// case status may be assigned.
func (s *caseService) AssignToOfficer(ctx context.Context, principal models.Principal, caseID, officerID int64) (models.Case, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.Case{}, err
	}

	updated, err := s.modifyCase(ctx, caseID, func(ctx context.Context, c *models.Case, now time.Time) error {
		officer, err := s.users.FindUserByID(ctx, officerID)
		if err != nil {
			return userLookupError(err, officerID)
		}
		if officer.Role != models.RoleLegalOfficer {
			return invalidState("user %d is a %s, not a %s", officerID, officer.Role, models.RoleLegalOfficer)
		}

		c.AssignedOfficerID = &officer.ID
		c.AssignedAt = &now
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("case_id", caseID).Int64("officer_id", officerID).Msg("case assignment failed")
		return models.Case{}, err
	}
	return updated, nil
}

func (s *caseService) UpdateStatus(ctx context.Context, principal models.Principal, caseID int64, req models.UpdateCaseStatusRequest) (models.Case, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.Case{}, err
	}
	if !validCaseStatus(req.Status) {
		return models.Case{}, invalidInput("unknown case status %q", req.Status)
	}

	updated, err := s.modifyCase(ctx, caseID, func(_ context.Context, c *models.Case, now time.Time) error {
		switch req.Status {
		case models.CaseStatusActive:
			c.ApprovedBy = &principal.ID
			c.ApprovedAt = &now
		case models.CaseStatusClosed:
			remarks := strings.TrimSpace(req.ClosingRemarks)
			if remarks == "" {
				return invalidState("closing remarks are required to close case %d", caseID)
			}
			c.ClosedBy = &principal.ID
			c.ClosedAt = &now
			c.ClosingRemarks = &remarks
		}
		c.Status = req.Status
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("case_id", caseID).Str("status", string(req.Status)).Msg("case status update failed")
		return models.Case{}, err
	}

	s.metrics.CaseStatusChanged(updated.Status)
	return updated, nil
}

func (s *caseService) AddComment(ctx context.Context, principal models.Principal, caseID int64, text string) (models.CaseComment, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.CaseComment{}, err
	}
	if isBlank(text) {
		return models.CaseComment{}, invalidInput("comment text is required")
	}

	var comment models.CaseComment
	err := s.transactor.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.cases.LockCase(ctx, caseID); err != nil {
			return caseLookupError(err, caseID)
		}

		var err error
		comment, err = s.cases.AddComment(ctx, models.CaseComment{
			CaseID:    caseID,
			AuthorID:  principal.ID,
			Text:      strings.TrimSpace(text),
			CreatedAt: s.now(),
		})
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("case_id", caseID).Msg("adding case comment failed")
		return models.CaseComment{}, translate(err)
	}
	return comment, nil
}

// AttachDocument stores upload and links it to the case.
func (s *caseService) AttachDocument(ctx context.Context, principal models.Principal, caseID int64, upload models.Upload) (models.CaseView, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.CaseView{}, err
	}
	if upload.IsEmpty() {
		return models.CaseView{}, invalidInput("a file is required")
	}

	uploads := newPendingUploads(s.documents)
	err := s.transactor.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.cases.LockCase(ctx, caseID); err != nil {
			return caseLookupError(err, caseID)
		}

		doc, err := uploads.store(ctx, upload, principal.ID)
		if err != nil {
			return err
		}

		return s.cases.AttachDocument(ctx, models.CaseAttachment{
			CaseID:     caseID,
			Document:   doc,
			AttachedBy: principal.ID,
			AttachedAt: s.now(),
		})
	})
	uploads.discardOn(ctx, err)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("case_id", caseID).Str("file_name", upload.FileName).Msg("attaching document failed")
		return models.CaseView{}, translate(err)
	}

	s.metrics.DocumentStored()
	return s.GetCase(ctx, principal, caseID)
}

func (s *caseService) RemoveAttachment(ctx context.Context, principal models.Principal, caseID, documentID int64) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	err := s.transactor.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.cases.LockCase(ctx, caseID); err != nil {
			return caseLookupError(err, caseID)
		}
		if err := s.cases.DetachDocument(ctx, caseID, documentID); err != nil {
			if isStoreNotFound(err) {
				return notFound("document %d is not attached to case %d", documentID, caseID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("case_id", caseID).Int64("document_id", documentID).Msg("removing attachment failed")
		return translate(err)
	}
	return nil
}

// GetCase assembles the case with its comments, attachments and the names of
// every audit actor.
func (s *caseService) GetCase(ctx context.Context, principal models.Principal, caseID int64) (models.CaseView, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.CaseView{}, err
	}

	c, err := s.cases.FindCaseByID(ctx, caseID)
	if err != nil {
		return models.CaseView{}, translate(caseLookupError(err, caseID))
	}

	comments, err := s.cases.ListComments(ctx, []int64{caseID})
	if err != nil {
		return models.CaseView{}, translate(err)
	}
	attachments, err := s.cases.ListAttachments(ctx, []int64{caseID})
	if err != nil {
		return models.CaseView{}, translate(err)
	}

	ids := []int64{c.CreatedBy, deref(c.AssignedOfficerID), deref(c.ApprovedBy), deref(c.ClosedBy)}
	for _, cm := range comments {
		ids = append(ids, cm.AuthorID)
	}
	for _, a := range attachments {
		ids = append(ids, a.AttachedBy)
	}
	refs, err := s.resolver.resolve(ctx, ids...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("case_id", caseID).Msg("resolving case actors failed")
		return models.CaseView{}, translate(err)
	}

	view := models.CaseView{
		Case:            c,
		CreatedByUser:   refs[c.CreatedBy],
		AssignedOfficer: refs[deref(c.AssignedOfficerID)],
		ApprovedByUser:  refs[deref(c.ApprovedBy)],
		ClosedByUser:    refs[deref(c.ClosedBy)],
		Comments:        make([]models.CommentView, 0, len(comments)),
		Attachments:     make([]models.AttachmentView, 0, len(attachments)),
	}
	for _, cm := range comments {
		view.Comments = append(view.Comments, models.CommentView{
			ID:        cm.ID,
			Text:      cm.Text,
			Author:    refs[cm.AuthorID],
			CreatedAt: cm.CreatedAt,
		})
	}
	for _, a := range attachments {
		view.Attachments = append(view.Attachments, models.AttachmentView{
			Document:   a.Document,
			AttachedBy: refs[a.AttachedBy],
			AttachedAt: a.AttachedAt,
		})
	}
	return view, nil
}

func (s *caseService) ListNew(ctx context.Context, principal models.Principal) ([]models.Case, error) {
	status := models.CaseStatusNew
	return s.list(ctx, principal, models.CaseListFilter{Status: &status})
}

func (s *caseService) ListAll(ctx context.Context, principal models.Principal) ([]models.Case, error) {
	return s.list(ctx, principal, models.CaseListFilter{})
}

func (s *caseService) ListMine(ctx context.Context, principal models.Principal) ([]models.Case, error) {
	return s.list(ctx, principal, models.CaseListFilter{CreatedBy: &principal.ID})
}

func (s *caseService) ListAssigned(ctx context.Context, principal models.Principal) ([]models.Case, error) {
	return s.list(ctx, principal, models.CaseListFilter{AssignedTo: &principal.ID})
}

func (s *caseService) list(ctx context.Context, principal models.Principal, filter models.CaseListFilter) ([]models.Case, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	cases, err := s.cases.ListCases(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing cases failed")
		return nil, translate(err)
	}
	return emptyIfNil(cases), nil
}

// modifyCase locks the case, lets fn change it and writes it back, all in
// one transaction.
func (s *caseService) modifyCase(ctx context.Context, caseID int64, fn func(ctx context.Context, c *models.Case, now time.Time) error) (models.Case, error) {
	now := s.now()

	var updated models.Case
	err := s.transactor.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.cases.LockCase(ctx, caseID)
		if err != nil {
			return caseLookupError(err, caseID)
		}
		if err := fn(ctx, &c, now); err != nil {
			return err
		}

		c.UpdatedAt = now
		updated, err = s.cases.UpdateCase(ctx, c)
		return err
	})
	return updated, translate(err)
}

func userLookupError(err error, userID int64) error {
	if isStoreNotFound(err) {
		return notFound("user %d", userID)
	}
	return err
}

func validCaseType(t models.CaseType) bool {
	switch t {
	case models.CaseTypeMoneyRecovery, models.CaseTypeDamagesRecovery, models.CaseTypeLand, models.CaseTypeCriminal,
		models.CaseTypeAppeals, models.CaseTypeInquiries, models.CaseTypeOther:
		return true
	}
	return false
}

func validCaseStatus(s models.CaseStatus) bool {
	switch s {
	case models.CaseStatusNew, models.CaseStatusActive, models.CaseStatusOnHold, models.CaseStatusClosed:
		return true
	}
	return false
}
