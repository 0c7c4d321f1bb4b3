package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/metrics"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

type clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}

func requirePrincipal(principal models.Principal) error {
	if principal.IsZero() {
		return ErrIdentityMissing
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// caseGuard resolves the case a detail operation runs against.
type caseGuard struct {
	cases store.CaseRepository
}

// findAndValidate locks the case for the rest of the transaction and checks
// that it has caseType and is ACTIVE.
func (g caseGuard) findAndValidate(ctx context.Context, caseID int64, caseType models.CaseType) (models.Case, error) {
	c, err := g.cases.LockCase(ctx, caseID)
	if err != nil {
		return models.Case{}, caseLookupError(err, caseID)
	}
	if c.CaseType != caseType {
		return models.Case{}, invalidState("case %d is a %s case, not %s", caseID, c.CaseType, caseType)
	}
	if c.Status != models.CaseStatusActive {
		return models.Case{}, invalidState("case %d is %s; details can only change while it is ACTIVE", caseID, c.Status)
	}
	return c, nil
}

// findForRead checks existence and type only, so closed matters stay
// viewable.
func (g caseGuard) findForRead(ctx context.Context, caseID int64, caseType models.CaseType) (models.Case, error) {
	c, err := g.cases.FindCaseByID(ctx, caseID)
	if err != nil {
		return models.Case{}, caseLookupError(err, caseID)
	}
	if c.CaseType != caseType {
		return models.Case{}, invalidState("case %d is a %s case, not %s", caseID, c.CaseType, caseType)
	}
	return c, nil
}

func caseLookupError(err error, caseID int64) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound("case %d", caseID)
	}
	return err
}

// detailWorkflow carries what every case-type extension service shares.
type detailWorkflow struct {
	caseType   models.CaseType
	transactor store.Transactor
	guard      caseGuard
	documents  store.DocumentStorage
	metrics    *metrics.Workflow
	now        clock
	logger     *logger.Logger
}

func newDetailWorkflow(caseType models.CaseType, storages *store.Storages, m *metrics.Workflow, logger *logger.Logger) detailWorkflow {
	return detailWorkflow{
		caseType:   caseType,
		transactor: storages.Transactor,
		guard:      caseGuard{cases: storages.Cases},
		documents:  storages.Documents,
		metrics:    m,
		now:        systemClock,
		logger:     logger,
	}
}

// mutate runs fn in one transaction after the full guard. operation labels
// the mutation in logs and metrics.
func (w *detailWorkflow) mutate(ctx context.Context, principal models.Principal, caseID int64, operation string,
	fn func(ctx context.Context, c models.Case, now time.Time) error) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	now := w.now()
	err := w.transactor.RunInTx(ctx, func(ctx context.Context) error {
		c, err := w.guard.findAndValidate(ctx, caseID, w.caseType)
		if err != nil {
			return err
		}
		return fn(ctx, c, now)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("case_type", string(w.caseType)).
			Str("operation", operation).
			Int64("case_id", caseID).
			Int64("principal_id", principal.ID).
			Msg("case detail mutation failed")
		return translate(err)
	}

	w.metrics.DetailMutated(w.caseType, operation)
	return nil
}

// read runs fn in one transaction after the relaxed guard.
func (w *detailWorkflow) read(ctx context.Context, principal models.Principal, caseID int64,
	fn func(ctx context.Context, c models.Case, today models.Date) error) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	today := models.DateOf(w.now())
	err := w.transactor.RunInTx(ctx, func(ctx context.Context) error {
		c, err := w.guard.findForRead(ctx, caseID, w.caseType)
		if err != nil {
			return err
		}
		return fn(ctx, c, today)
	})
	return translate(err)
}

// storeUpload writes upload to the document store on behalf of principal and
// records it in uploads.
func (w *detailWorkflow) storeUpload(ctx context.Context, uploads *pendingUploads, principal models.Principal, upload models.Upload) (models.Document, error) {
	if upload.IsEmpty() {
		return models.Document{}, invalidInput("a file is required")
	}
	doc, err := uploads.store(ctx, upload, principal.ID)
	if err != nil {
		return models.Document{}, err
	}
	w.metrics.DocumentStored()
	return doc, nil
}

// pendingUploads tracks the documents written inside one transaction. The
// metadata rows roll back with the transaction but the bytes do not, so a
// failed transaction must discard them.
type pendingUploads struct {
	documents store.DocumentStorage
	stored    []models.Document
}

func newPendingUploads(documents store.DocumentStorage) *pendingUploads {
	return &pendingUploads{documents: documents}
}

func (p *pendingUploads) store(ctx context.Context, upload models.Upload, ownerID int64) (models.Document, error) {
	doc, err := p.documents.Store(ctx, upload, ownerID)
	if err != nil {
		return models.Document{}, err
	}
	p.stored = append(p.stored, doc)
	return doc, nil
}

// discardOn removes the content of every tracked document when err is set.
func (p *pendingUploads) discardOn(ctx context.Context, err error) {
	if err == nil {
		return
	}
	for _, doc := range p.stored {
		if rmErr := p.documents.Discard(ctx, doc); rmErr != nil {
			logger.FromContext(ctx).Err(rmErr).Int64("document_id", doc.ID).Msg("failed to discard uncommitted document content")
		}
	}
	p.stored = nil
}

// detailStore is the header part of every extension repository.
type detailStore[D any] interface {
	FindDetails(ctx context.Context, caseID int64) (D, error)
	CreateDetails(ctx context.Context, d D) (D, error)
	UpdateDetails(ctx context.Context, d D) (D, error)
}

// upsertDetails creates the case's detail record on first save and updates
// it in place afterwards. apply copies the request onto the record; a new
// record reaches apply with a zero ID.
func upsertDetails[D any, P interface {
	*D
	Audit() *models.DetailAudit
}](ctx context.Context, repo detailStore[D], caseID, actor int64, now time.Time, apply func(P) error) (D, error) {
	current, err := repo.FindDetails(ctx, caseID)
	created := errors.Is(err, store.ErrNotFound)
	if err != nil && !created {
		return current, err
	}

	var d D
	if !created {
		d = current
	}
	if err := apply(P(&d)); err != nil {
		return d, err
	}

	audit := P(&d).Audit()
	if created {
		audit.CaseID = caseID
		audit.CreatedBy = actor
		audit.CreatedAt = now
		return repo.CreateDetails(ctx, d)
	}

	audit.LastUpdatedBy = &actor
	audit.LastUpdatedAt = &now
	return repo.UpdateDetails(ctx, d)
}

// requireDetails loads the case's detail record, which child operations
// need to exist.
func requireDetails[D any](ctx context.Context, find func(context.Context, int64) (D, error), caseID int64, what string) (D, error) {
	d, err := find(ctx, caseID)
	if errors.Is(err, store.ErrNotFound) {
		return d, notFound("%s details are not recorded for case %d", what, caseID)
	}
	return d, err
}

// findChild loads a child row and checks it belongs to detailID. A child of
// another detail is reported as missing.
func findChild[T any](ctx context.Context, find func(context.Context, int64) (T, error), id, detailID int64,
	detailOf func(T) int64, what string) (T, error) {
	var zero T

	child, err := find(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return zero, notFound("%s %d", what, id)
	}
	if err != nil {
		return zero, err
	}
	if detailOf(child) != detailID {
		return zero, notFound("%s %d", what, id)
	}
	return child, nil
}

func newChildAudit(actor int64, now time.Time) models.ChildAudit {
	return models.ChildAudit{RecordedBy: actor, RecordedAt: now}
}

// emptyIfNil keeps JSON arrays from rendering as null.
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func isStoreNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
