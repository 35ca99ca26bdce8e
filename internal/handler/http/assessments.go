package http

import (
	"net/http"

	"github.com/MKhiriev/project-elevate/internal/app"
	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/MKhiriev/project-elevate/internal/utils"
)

func (h *Handler) listAssessments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		utils.WriteMessage(w, app.MsgAccessDenied, http.StatusUnauthorized)
		return
	}

	assessments, err := h.services.AssessmentService.ListAssessments(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error fetching assessments")
		utils.WriteMessage(w, app.MsgErrorFetchingAssessments, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, assessments, http.StatusOK)
}
