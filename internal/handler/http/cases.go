package http

import (
	"context"
	"net/http"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

func (h *Handler) createCase(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCaseRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	created, err := h.services.CaseService.CreateCase(r.Context(), principalFrom(r), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) listCases(list func(ctx context.Context, p models.Principal) ([]models.Case, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cases, err := list(r.Context(), principalFrom(r))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, r, cases, http.StatusOK)
	}
}

func (h *Handler) assignCase(ctx context.Context, p models.Principal, caseID int64, req models.AssignCaseRequest) (models.Case, error) {
	return h.services.CaseService.AssignToOfficer(ctx, p, caseID, req.OfficerID)
}

func (h *Handler) commentOnCase(ctx context.Context, p models.Principal, caseID int64, req models.CommentRequest) (models.CaseComment, error) {
	return h.services.CaseService.AddComment(ctx, p, caseID, req.Text)
}

func (h *Handler) attachDocument(w http.ResponseWriter, r *http.Request) {
	caseID, err := pathID(r, caseIDParam)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	upload, err := readUpload(r, "file")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	view, err := h.services.CaseService.AttachDocument(r.Context(), principalFrom(r), caseID, uploadOrEmpty(upload))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, view, http.StatusCreated)
}
