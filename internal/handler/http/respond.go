package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/service"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/utils"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

const (
	maxJSONBody   = 1 << 20
	maxUploadSize = 32 << 20
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}

// writeError maps err onto its status. Messages of unexpected failures are
// not exposed.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		message = http.StatusText(status)
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, werr := utils.WriteJSON(w, errorResponse{Error: message}, status); werr != nil {
		log.Err(werr).Msg("writing error response failed")
	}
}

// decode reads a JSON body into dst and validates it.
func (h *Handler) decode(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxJSONBody)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", service.ErrInvalidInput)
		}
		return fmt.Errorf("%w: malformed JSON: %s", service.ErrInvalidInput, err)
	}
	return h.validate(r, dst)
}

func (h *Handler) validate(r *http.Request, dst any) error {
	if h.validator == nil {
		return nil
	}
	return h.validator.Validate(r.Context(), dst)
}

// pathID parses the positive integer path parameter name.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", service.ErrInvalidInput, name, raw)
	}
	return id, nil
}

// principalFrom returns the authenticated principal, or the zero principal
// that every service rejects as missing.
func principalFrom(r *http.Request) models.Principal {
	p, _ := utils.GetPrincipalFromContext(r.Context())
	return p
}

// readUpload reads the multipart file field. A request without the field
// yields nil.
func readUpload(r *http.Request, field string) (*models.Upload, error) {
	if err := parseMultipart(r); err != nil {
		return nil, err
	}

	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %s", service.ErrInvalidInput, field, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %s", service.ErrInvalidInput, field, err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(content)
	}
	return &models.Upload{FileName: header.Filename, ContentType: contentType, Content: content}, nil
}

func parseMultipart(r *http.Request) error {
	if r.MultipartForm != nil {
		return nil
	}
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return fmt.Errorf("%w: expected a multipart form: %s", service.ErrInvalidInput, err)
	}
	return nil
}

// formJSON decodes and validates the JSON carried in the multipart field.
// A missing field leaves dst unchanged.
func (h *Handler) formJSON(r *http.Request, field string, dst any) error {
	if err := parseMultipart(r); err != nil {
		return err
	}
	raw := r.FormValue(field)
	if raw == "" {
		return h.validate(r, dst)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: malformed JSON in %q: %s", service.ErrInvalidInput, field, err)
	}
	return h.validate(r, dst)
}

func uploadOrEmpty(u *models.Upload) models.Upload {
	if u == nil {
		return models.Upload{}
	}
	return *u
}
