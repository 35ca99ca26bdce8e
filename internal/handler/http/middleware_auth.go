package http

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/project-elevate/internal/app"
	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/MKhiriev/project-elevate/internal/utils"
	"github.com/MKhiriev/project-elevate/models"
)

const bearerScheme = "Bearer"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the authenticated user's ID and role in the request context under
// [utils.UserIDCtxKey] and [utils.UserRoleCtxKey] before delegating to the
// next handler.
//
// Rejections:
//   - 401 "Access denied" when the "Authorization" header is absent or
//     carries no token after the scheme;
//   - 403 "Invalid token" when a token is present but the scheme is not
//     "Bearer" or the token is expired, tampered with or otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteMessage(w, app.MsgAccessDenied, statusFromError(ErrEmptyAuthorizationHeader))
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if errors.Is(err, ErrEmptyToken) {
			log.Debug().Err(err).Send()
			utils.WriteMessage(w, app.MsgAccessDenied, statusFromError(err))
			return
		}
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteMessage(w, app.MsgInvalidToken, statusFromError(err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("token rejected")
			utils.WriteMessage(w, app.MsgInvalidToken, statusFromError(err))
			return
		}

		ctx = utils.WithIdentity(ctx, token.UserID, token.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole rejects authenticated callers whose role is not in roles with
// 403. It must run after [Handler.auth].
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetUserRoleFromContext(r.Context())
			if !ok || !slices.Contains(roles, role) {
				logger.FromRequest(r).Info().Str("role", string(role)).Msg("role not permitted")
				utils.WriteMessage(w, app.MsgInsufficientRole, statusFromError(ErrInsufficientRole))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// The token is whatever follows the first space. The scheme is matched
// case-insensitively. It returns the following sentinel errors:
//   - [ErrEmptyToken] if there is no space or nothing but blanks after it
//     ("Bearer", "Bearer  ", "sometoken");
//   - [ErrInvalidAuthorizationHeader] if a token is present but the scheme
//     is not "Bearer".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(authHeader, " ")
	tokenString = strings.TrimSpace(tokenString)
	if !found || tokenString == "" {
		return "", ErrEmptyToken
	}

	if !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
