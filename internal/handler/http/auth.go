package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/project-elevate/internal/app"
	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/MKhiriev/project-elevate/internal/utils"
	"github.com/MKhiriev/project-elevate/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		status := statusFromError(err)
		switch status {
		case http.StatusBadRequest:
			log.Info().Err(err).Msg("invalid data provided")
			utils.WriteMessage(w, app.MsgCredentialsRequired, status)
		case http.StatusUnauthorized:
			log.Info().Err(err).Msg("invalid credentials")
			utils.WriteMessage(w, app.MsgInvalidCredentials, status)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteMessage(w, app.MsgServerError, http.StatusInternalServerError)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteMessage(w, app.MsgServerError, http.StatusInternalServerError)
		return
	}

	log.Debug().Str("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Token: token.SignedString,
		User:  foundUser.Info(),
	}, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var newUser models.NewUser
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	createdUser, err := h.services.AuthService.RegisterUser(ctx, newUser)
	if err != nil {
		status := statusFromError(err)
		switch status {
		case http.StatusBadRequest:
			log.Info().Err(err).Msg("invalid data provided")
			utils.WriteMessage(w, app.MsgInvalidUserData, status)
		case http.StatusConflict:
			log.Info().Err(err).Msg("email already registered")
			utils.WriteMessage(w, app.MsgEmailAlreadyRegistered, status)
		default:
			log.Err(err).Msg("unexpected error occurred during user creation")
			utils.WriteMessage(w, app.MsgServerError, http.StatusInternalServerError)
		}
		return
	}

	log.Info().Str("id", createdUser.UserID).Str("role", string(createdUser.Role)).Msg("user created")

	utils.WriteJSON(w, createdUser.Info(), http.StatusCreated)
}
