package http

import (
	"context"
	"net/http"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

const agreementIDParam = "agreementID"

func (h *Handler) createAgreement(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAgreementRequest
	if err := h.formJSON(r, "agreement", &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	upload, err := readUpload(r, "file")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	view, err := h.services.AgreementService.CreateAgreement(r.Context(), principalFrom(r), req, upload)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, view, http.StatusCreated)
}

func (h *Handler) listAgreements(list func(ctx context.Context, p models.Principal) ([]models.Agreement, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		agreements, err := list(r.Context(), principalFrom(r))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, r, agreements, http.StatusOK)
	}
}

func (h *Handler) agreementView(call func(ctx context.Context, p models.Principal, agreementID int64) (models.AgreementView, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, agreementIDParam)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		view, err := call(r.Context(), principalFrom(r), id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, r, view, http.StatusOK)
	}
}

func (h *Handler) uploadRevision(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, agreementIDParam)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	upload, err := readUpload(r, "file")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	view, err := h.services.AgreementService.UploadRevision(r.Context(), principalFrom(r), id, r.FormValue("notes"), uploadOrEmpty(upload))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, view, http.StatusCreated)
}

func (h *Handler) transitionAgreement(call func(ctx context.Context, p models.Principal, agreementID int64, req models.AgreementTransitionRequest) (models.Agreement, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, agreementIDParam)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		var req models.AgreementTransitionRequest
		if err := h.decode(r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}

		agreement, err := call(r.Context(), principalFrom(r), id, req)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, r, agreement, http.StatusOK)
	}
}

func (h *Handler) executeAgreement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, agreementIDParam)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	agreement, err := h.services.AgreementService.ExecuteAgreement(r.Context(), principalFrom(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, agreement, http.StatusOK)
}

func (h *Handler) commentOnAgreement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, agreementIDParam)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.CommentRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	comment, err := h.services.AgreementService.AddComment(r.Context(), principalFrom(r), id, req.Text)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, comment, http.StatusCreated)
}
