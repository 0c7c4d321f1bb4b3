package http

import (
	"errors"
	"net/http"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/service"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrNotFound:         http.StatusNotFound,
	service.ErrInvalidState:     http.StatusUnprocessableEntity,
	service.ErrConflict:         http.StatusConflict,
	service.ErrPermissionDenied: http.StatusForbidden,
	service.ErrIdentityMissing:  http.StatusUnauthorized,
	service.ErrInvalidInput:     http.StatusBadRequest,

	validators.ErrInvalidRequest: http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidToken:               http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
