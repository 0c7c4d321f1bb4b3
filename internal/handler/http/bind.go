package http

import (
	"context"
	"net/http"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

// Adapters between chi routes and the case-scoped service calls. The case id
// is read from {caseID}; child ids from {id}.

const (
	caseIDParam  = "caseID"
	childIDParam = "id"
)

func readCase[Resp any](h *Handler, call func(ctx context.Context, p models.Principal, caseID int64) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseID, err := pathID(r, caseIDParam)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		resp, err := call(r.Context(), principalFrom(r), caseID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, r, resp, http.StatusOK)
	}
}

func writeCase[Req, Resp any](h *Handler, status int, call func(ctx context.Context, p models.Principal, caseID int64, req Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseID, err := pathID(r, caseIDParam)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		var req Req
		if err := h.decode(r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}

		resp, err := call(r.Context(), principalFrom(r), caseID, req)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, r, resp, status)
	}
}

func writeChild[Req, Resp any](h *Handler, call func(ctx context.Context, p models.Principal, caseID, childID int64, req Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseID, err := pathID(r, caseIDParam)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		childID, err := pathID(r, childIDParam)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		var req Req
		if err := h.decode(r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}

		resp, err := call(r.Context(), principalFrom(r), caseID, childID, req)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, r, resp, http.StatusOK)
	}
}

func deleteChild(h *Handler, call func(ctx context.Context, p models.Principal, caseID, childID int64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseID, err := pathID(r, caseIDParam)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		childID, err := pathID(r, childIDParam)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if err := call(r.Context(), principalFrom(r), caseID, childID); err != nil {
			h.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// uploadToCase handles a multipart request with a "details" JSON part and a
// "file" part.
func uploadToCase[Req, Resp any](h *Handler, call func(ctx context.Context, p models.Principal, caseID int64, req Req, upload models.Upload) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseID, err := pathID(r, caseIDParam)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		var req Req
		if err := h.formJSON(r, "details", &req); err != nil {
			h.writeError(w, r, err)
			return
		}
		upload, err := readUpload(r, "file")
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		resp, err := call(r.Context(), principalFrom(r), caseID, req, uploadOrEmpty(upload))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, r, resp, http.StatusCreated)
	}
}

func deleteFromCase(h *Handler, call func(ctx context.Context, p models.Principal, caseID int64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseID, err := pathID(r, caseIDParam)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if err := call(r.Context(), principalFrom(r), caseID); err != nil {
			h.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
