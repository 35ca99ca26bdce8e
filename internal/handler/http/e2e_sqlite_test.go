package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/project-elevate/internal/app"
	"github.com/MKhiriev/project-elevate/internal/config"
	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/MKhiriev/project-elevate/internal/service"
	"github.com/MKhiriev/project-elevate/internal/store"
	"github.com/MKhiriev/project-elevate/internal/utils"
	"github.com/MKhiriev/project-elevate/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type e2eEnv struct {
	router   *chi.Mux
	services *service.Services
	cfg      *config.StructuredConfig
}

// newE2EEnv wires every layer on top of a fresh migrated in-memory SQLite
// database and runs the startup bootstrap.
func newE2EEnv(t *testing.T) e2eEnv {
	t.Helper()
	ctx := context.Background()

	cfg := &config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "e2e-sign-key",
			TokenIssuer:      "project-elevate",
			TokenDuration:    time.Hour,
			PasswordHashCost: bcrypt.MinCost,
			Version:          "1.0.0",
			Bootstrap: config.Bootstrap{
				Enabled:  true,
				Email:    "jevans@impactnetworking.com",
				Password: "12345",
				Name:     "John Evans",
				Role:     string(models.RoleManager),
			},
		},
		Storage: config.Storage{DB: config.DB{DSN: "sqlite://:memory:"}},
		Server:  config.Server{RequestTimeout: 5 * time.Second},
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))

	services, err := service.NewServices(store.NewStorages(db, logger.Nop()), cfg, logger.Nop())
	require.NoError(t, err)

	_, err = services.BootstrapService.Bootstrap(ctx)
	require.NoError(t, err)

	return e2eEnv{
		router:   NewHandler(services, cfg.Server, logger.Nop()).Init(),
		services: services,
		cfg:      cfg,
	}
}

func (e e2eEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e e2eEnv) login(t *testing.T, email, password string) (*httptest.ResponseRecorder, models.LoginResponse) {
	t.Helper()
	rr := e.do(jsonRequest(t, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: email, Password: password}))

	var resp models.LoginResponse
	if rr.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	}
	return rr, resp
}

func (e e2eEnv) listAssessments(t *testing.T, token string) (*httptest.ResponseRecorder, []models.Assessment) {
	t.Helper()
	rr := e.do(authorizedRequest(http.MethodGet, "/api/assessments", "Bearer "+token))

	var assessments []models.Assessment
	if rr.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &assessments))
	}
	return rr, assessments
}

func TestE2E_BootstrapAccountLogsIn(t *testing.T) {
	env := newE2EEnv(t)

	rr, resp := env.login(t, "jevans@impactnetworking.com", "12345")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleManager, resp.User.Role)
	assert.Equal(t, "John Evans", resp.User.Name)

	token, err := env.services.AuthService.ParseToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, token.UserID)
	assert.Equal(t, resp.User.Role, token.Role)
}

func TestE2E_LoginIsCaseInsensitiveAndTrimmed(t *testing.T) {
	env := newE2EEnv(t)

	rr, _ := env.login(t, "  JEvans@ImpactNetworking.COM ", " 12345 ")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestE2E_UnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	env := newE2EEnv(t)

	unknown, _ := env.login(t, "nobody@x.com", "x")
	wrong, _ := env.login(t, "jevans@impactnetworking.com", "wrong")

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, unknown.Code, wrong.Code)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
	assert.Equal(t, app.MsgInvalidCredentials, decodeMessage(t, unknown))

	// no account is created as a side effect
	again, _ := env.login(t, "nobody@x.com", "x")
	assert.Equal(t, http.StatusUnauthorized, again.Code)
}

func TestE2E_MissingCredentials(t *testing.T) {
	env := newE2EEnv(t)

	rr, _ := env.login(t, "jevans@impactnetworking.com", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgCredentialsRequired, decodeMessage(t, rr))
}

func TestE2E_AssessmentsWithoutHeader(t *testing.T) {
	env := newE2EEnv(t)

	rr := env.do(httptest.NewRequest(http.MethodGet, "/api/assessments", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestE2E_HeaderWithoutTokenIsUnauthorized(t *testing.T) {
	env := newE2EEnv(t)

	for _, header := range []string{"Bearer", "Bearer ", "sometoken"} {
		t.Run(header, func(t *testing.T) {
			rr := env.do(authorizedRequest(http.MethodGet, "/api/assessments", header))

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, app.MsgAccessDenied, decodeMessage(t, rr))
		})
	}

	rr := env.do(authorizedRequest(http.MethodGet, "/api/assessments", "Basic dXNlcjpwYXNz"))
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, app.MsgInvalidToken, decodeMessage(t, rr))
}

func TestE2E_PaddedPasswordRoundTrips(t *testing.T) {
	env := newE2EEnv(t)

	_, err := env.services.AuthService.RegisterUser(context.Background(), models.NewUser{
		Email: "pad@impactnetworking.com", Password: " secret ", Role: models.RoleConsultant, Name: "Pad",
	})
	require.NoError(t, err)

	rr, _ := env.login(t, "pad@impactnetworking.com", " secret ")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr, _ = env.login(t, "pad@impactnetworking.com", "secret")
	assert.Equal(t, http.StatusOK, rr.Code)

	_, err = env.services.AuthService.RegisterUser(context.Background(), models.NewUser{
		Email: "blank@impactnetworking.com", Password: "   ", Role: models.RoleConsultant,
	})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestE2E_ExpiredAndForeignTokensRejected(t *testing.T) {
	env := newE2EEnv(t)
	_, resp := env.login(t, "jevans@impactnetworking.com", "12345")
	app := env.cfg.App

	expired, err := utils.GenerateJWTToken(app.TokenIssuer, resp.User.ID, resp.User.Role, -time.Second, app.TokenSignKey)
	require.NoError(t, err)

	foreign, err := utils.GenerateJWTToken(app.TokenIssuer, resp.User.ID, resp.User.Role, time.Hour, "someone-elses-key")
	require.NoError(t, err)

	for name, token := range map[string]string{"expired": expired.SignedString, "foreign key": foreign.SignedString} {
		t.Run(name, func(t *testing.T) {
			rr, _ := env.listAssessments(t, token)
			assert.Equal(t, http.StatusForbidden, rr.Code)
		})
	}
}

func TestE2E_FirstListingSeedsOnce(t *testing.T) {
	env := newE2EEnv(t)
	_, resp := env.login(t, "jevans@impactnetworking.com", "12345")

	rr, first := env.listAssessments(t, resp.Token)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, first, len(service.DemoAssessments("")))

	names := make([]string, 0, len(first))
	for _, a := range first {
		assert.Equal(t, resp.User.ID, a.AssignedTo)
		names = append(names, a.CompanyName)
	}
	assert.Equal(t, []string{"Acme Corp", "TechStart Inc", "Global Solutions"}, names)
	assert.True(t, first[0].DueDate.Equal(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)))

	_, second := env.listAssessments(t, resp.Token)
	assert.Equal(t, first, second)
}

func TestE2E_AssessmentsAreIsolatedPerUser(t *testing.T) {
	env := newE2EEnv(t)
	ctx := context.Background()

	_, err := env.services.AuthService.RegisterUser(ctx, models.NewUser{
		Email:    "consultant@impactnetworking.com",
		Password: "s3cret",
		Role:     models.RoleConsultant,
		Name:     "Casey Consultant",
	})
	require.NoError(t, err)

	_, manager := env.login(t, "jevans@impactnetworking.com", "12345")
	_, consultant := env.login(t, "consultant@impactnetworking.com", "s3cret")

	_, seeded := env.listAssessments(t, manager.Token)
	require.NotEmpty(t, seeded)

	rr, others := env.listAssessments(t, consultant.Token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, others)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestE2E_AdminCreatesUser(t *testing.T) {
	env := newE2EEnv(t)
	ctx := context.Background()

	_, err := env.services.AuthService.RegisterUser(ctx, models.NewUser{
		Email: "admin@impactnetworking.com", Password: "adm1n", Role: models.RoleAdmin, Name: "Admin",
	})
	require.NoError(t, err)
	_, admin := env.login(t, "admin@impactnetworking.com", "adm1n")

	create := func() *httptest.ResponseRecorder {
		req := jsonRequest(t, http.MethodPost, "/api/users", models.NewUser{
			Email: "New.Hire@ImpactNetworking.com", Password: "welcome", Role: models.RoleConsultant, Name: "New Hire",
		})
		req.Header.Set("Authorization", "Bearer "+admin.Token)
		return env.do(req)
	}

	rr := create()
	require.Equal(t, http.StatusCreated, rr.Code)

	var info models.UserInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, "new.hire@impactnetworking.com", info.Email)

	loginRR, _ := env.login(t, "new.hire@impactnetworking.com", "welcome")
	assert.Equal(t, http.StatusOK, loginRR.Code)

	assert.Equal(t, http.StatusConflict, create().Code)
}
