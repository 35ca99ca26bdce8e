package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/project-elevate/internal/app"
	"github.com/MKhiriev/project-elevate/internal/config"
	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/MKhiriev/project-elevate/internal/mock"
	"github.com/MKhiriev/project-elevate/internal/service"
	"github.com/MKhiriev/project-elevate/internal/store"
	"github.com/MKhiriev/project-elevate/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID = "0190c2b4-6a1f-7c3e-9b2d-3f4e5a6b7c8d"

type testMocks struct {
	auth        *mock.MockAuthService
	assessments *mock.MockAssessmentService
	appInfo     *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		auth:        mock.NewMockAuthService(ctrl),
		assessments: mock.NewMockAssessmentService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:       m.auth,
		AssessmentService: m.assessments,
		AppInfoService:    m.appInfo,
	}, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())

	return h, m
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msg))
	return msg.Message
}

// ── public routes ────────────────────────────────────────────────────────────

func TestRoot(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Project Elevate API", decodeMessage(t, rr))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestGetServerVersion(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rr.Body.String())
}

func TestUnsupportedMethod_Returns404(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/auth/login", nil),
		httptest.NewRequest(http.MethodDelete, "/api/assessments", nil),
		httptest.NewRequest(http.MethodPut, "/", nil),
	} {
		rr := serve(h, req)
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", req.Method, req.URL.Path)
	}
}

func TestTraceID_ReusesValidIncomingID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, testUserID)
	assert.Equal(t, testUserID, serve(h, req).Header().Get(traceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "not a uuid\nforged=1")
	got := serve(h, req).Header().Get(traceIDHeader)
	assert.NotEqual(t, "not a uuid\nforged=1", got)
	assert.Len(t, got, 36)
}

// ── login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	h, m := newTestHandler(t)
	user := models.User{UserID: testUserID, Email: "jevans@impactnetworking.com", Role: models.RoleManager, Name: "John Evans", PasswordHash: "hash"}

	m.auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "jevans@impactnetworking.com", Password: "12345"}).Return(user, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "signed.jwt.token"}, nil)

	rr := serve(h, jsonRequest(t, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "jevans@impactnetworking.com", Password: "12345"}))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.NotContains(t, rr.Body.String(), "hash")

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, user.Info(), resp.User)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{"missing field", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgCredentialsRequired},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
		{"storage failure", errors.Join(store.ErrRetriesExhausted, errors.New("pq: connection refused")), http.StatusInternalServerError, app.MsgServerError},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, app.MsgServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)

			rr := serve(h, jsonRequest(t, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "a@b.co", Password: "p"}))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rr))
			assert.NotContains(t, rr.Body.String(), "connection refused")
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidJSON, decodeMessage(t, rr))
}

func TestLogin_TokenCreationFails(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: testUserID}, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rr := serve(h, jsonRequest(t, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "a@b.co", Password: "p"}))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, app.MsgServerError, decodeMessage(t, rr))
}

// ── auth middleware ──────────────────────────────────────────────────────────

func authorizedRequest(method, path, header string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return req
}

func TestAuth_MissingHeader_Returns401(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Times(0)

	rr := serve(h, authorizedRequest(http.MethodGet, "/api/assessments", ""))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, app.MsgAccessDenied, decodeMessage(t, rr))
}

func TestAuth_HeaderWithoutToken_Returns401(t *testing.T) {
	for _, header := range []string{"Bearer", "Bearer ", "Bearer    ", "sometoken"} {
		t.Run(header, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Times(0)

			rr := serve(h, authorizedRequest(http.MethodGet, "/api/assessments", header))

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, app.MsgAccessDenied, decodeMessage(t, rr))
		})
	}
}

func TestAuth_ForeignScheme_Returns403(t *testing.T) {
	for _, header := range []string{"Basic dXNlcjpwYXNz", "Token abc.def.ghi"} {
		t.Run(header, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Times(0)

			rr := serve(h, authorizedRequest(http.MethodGet, "/api/assessments", header))

			assert.Equal(t, http.StatusForbidden, rr.Code)
			assert.Equal(t, app.MsgInvalidToken, decodeMessage(t, rr))
		})
	}
}

func TestAuth_InvalidToken_Returns403(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), "expired.jwt").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
	m.assessments.EXPECT().ListAssessments(gomock.Any(), gomock.Any()).Times(0)

	rr := serve(h, authorizedRequest(http.MethodGet, "/api/assessments", "Bearer expired.jwt"))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, app.MsgInvalidToken, decodeMessage(t, rr))
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header    string
		wantToken string
		wantErr   error
	}{
		{header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{header: "Bearer  padded ", wantToken: "padded"},
		{header: "Bearer", wantErr: ErrEmptyToken},
		{header: "Bearer ", wantErr: ErrEmptyToken},
		{header: "sometoken", wantErr: ErrEmptyToken},
		{header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ── assessments ──────────────────────────────────────────────────────────────

func TestListAssessments_Success(t *testing.T) {
	h, m := newTestHandler(t)
	due := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	want := []models.Assessment{{ID: "a1", CompanyName: "Acme Corp", Priority: models.PriorityHigh, Status: models.StatusInProgress, PercentComplete: 60, DueDate: due, AssignedTo: testUserID}}

	m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{UserID: testUserID, Role: models.RoleManager}, nil)
	m.assessments.EXPECT().ListAssessments(gomock.Any(), testUserID).Return(want, nil)

	rr := serve(h, authorizedRequest(http.MethodGet, "/api/assessments", "Bearer good"))

	require.Equal(t, http.StatusOK, rr.Code)
	var got []models.Assessment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, want, got)
	assert.Contains(t, rr.Body.String(), `"companyName":"Acme Corp"`)
	assert.Contains(t, rr.Body.String(), `"percentComplete":60`)
}

func TestListAssessments_EmptyIsArray(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(models.Token{UserID: testUserID, Role: models.RoleManager}, nil)
	m.assessments.EXPECT().ListAssessments(gomock.Any(), testUserID).Return([]models.Assessment{}, nil)

	rr := serve(h, authorizedRequest(http.MethodGet, "/api/assessments", "Bearer good"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListAssessments_ServiceError(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(models.Token{UserID: testUserID, Role: models.RoleManager}, nil)
	m.assessments.EXPECT().ListAssessments(gomock.Any(), gomock.Any()).Return(nil, store.ErrExecutingQuery)

	rr := serve(h, authorizedRequest(http.MethodGet, "/api/assessments", "Bearer good"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, app.MsgErrorFetchingAssessments, decodeMessage(t, rr))
}

// ── create user ──────────────────────────────────────────────────────────────

func TestCreateUser_RequiresAdmin(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(models.Token{UserID: testUserID, Role: models.RoleManager}, nil)
	m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Times(0)

	req := jsonRequest(t, http.MethodPost, "/api/users", models.NewUser{Email: "new@example.com", Password: "p", Role: models.RoleConsultant})
	req.Header.Set("Authorization", "Bearer good")
	rr := serve(h, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, app.MsgInsufficientRole, decodeMessage(t, rr))
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"created", nil, http.StatusCreated},
		{"invalid input", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"duplicate email", store.ErrEmailAlreadyExists, http.StatusConflict},
		{"storage failure", store.ErrExecutingStatement, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			newUser := models.NewUser{Email: "new@example.com", Password: "p", Role: models.RoleConsultant, Name: "New"}

			m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(models.Token{UserID: testUserID, Role: models.RoleAdmin}, nil)
			m.auth.EXPECT().RegisterUser(gomock.Any(), newUser).Return(models.User{UserID: "u2", Email: newUser.Email, Role: newUser.Role, Name: newUser.Name}, tt.serviceErr)

			req := jsonRequest(t, http.MethodPost, "/api/users", newUser)
			req.Header.Set("Authorization", "Bearer admin")
			rr := serve(h, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.serviceErr == nil {
				var info models.UserInfo
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
				assert.Equal(t, "u2", info.ID)
				assert.NotContains(t, rr.Body.String(), "password")
			}
		})
	}
}

// ── error mapping & access log ───────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
		{ErrEmptyToken, http.StatusUnauthorized},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusForbidden},
		{ErrInvalidAuthorizationHeader, http.StatusForbidden},
		{store.ErrEmailAlreadyExists, http.StatusConflict},
		{store.ErrScanningRows, http.StatusInternalServerError},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWithLogging_WritesAccessEntry(t *testing.T) {
	var buf bytes.Buffer
	base := &logger.Logger{Logger: zerolog.New(&buf)}
	h := &Handler{logger: base}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/brew?kind=earl-grey", nil)
	rr := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rr, req)

	out := buf.String()
	assert.Contains(t, out, `"uri":"/brew?kind=earl-grey"`)
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"size":15`)
	assert.Contains(t, out, `"trace_id":"`+rr.Header().Get(traceIDHeader)+`"`)
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, _ = w.Write([]byte("ab"))
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte("c"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, w.size)
}
