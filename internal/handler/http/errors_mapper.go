package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/project-elevate/internal/service"
	"github.com/MKhiriev/project-elevate/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusForbidden,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrInsufficientRole:           http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrRetriesExhausted:     http.StatusInternalServerError,
}

// statusFromError maps err onto an HTTP status. Unknown errors are 500.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
