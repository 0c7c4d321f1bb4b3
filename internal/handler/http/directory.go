package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	role := models.Role(r.URL.Query().Get("role"))

	users, err := h.services.UserDirectoryService.ListUsers(r.Context(), principalFrom(r), role)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, users, http.StatusOK)
}

func (h *Handler) downloadDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "documentID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	doc, content, err := h.services.DocumentService.Download(r.Context(), principalFrom(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		h.logger.Warn().Err(err).Int64("document_id", id).Msg("writing document body failed")
	}
}
