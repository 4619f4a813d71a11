package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/khaledhussein957/my-websote-sub000/config"
	httpmiddleware "github.com/khaledhussein957/my-websote-sub000/internal/delivery/http/middleware"
	"github.com/khaledhussein957/my-websote-sub000/internal/delivery/http/validator"
	"github.com/khaledhussein957/my-websote-sub000/internal/domain/entity"
	mockSvc "github.com/khaledhussein957/my-websote-sub000/internal/mocks/service"
	mockUC "github.com/khaledhussein957/my-websote-sub000/internal/mocks/usecase"
	"github.com/khaledhussein957/my-websote-sub000/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == httpmiddleware.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")

	return nil
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	cfg := &config.Config{}

	account := &entity.Account{ID: uuid.New(), Email: "test@example.com", PasswordHash: "secret_hash"}
	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.AuthOutput{Account: account, Token: "session_token"}, nil)
	tokenSvc.EXPECT().GetSessionDuration().Return(time.Hour)

	h := NewAuthHandler(uc, tokenSvc, cfg)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"identifier":"test@example.com","password":"AAbb11!!"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookieFrom(t, rec)
	assert.Equal(t, "session_token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 3600, cookie.MaxAge)
	// Outside production the cookie stays usable over plain HTTP.
	assert.False(t, cookie.Secure)

	// The password hash must never appear in a response body.
	assert.NotContains(t, rec.Body.String(), "secret_hash")
}

func TestAuthHandler_Login_ProductionCookieHardening(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	cfg := &config.Config{}
	cfg.Env.Env = "production"

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.AuthOutput{Account: &entity.Account{ID: uuid.New()}, Token: "session_token"}, nil)
	tokenSvc.EXPECT().GetSessionDuration().Return(time.Hour)

	h := NewAuthHandler(uc, tokenSvc, cfg)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"identifier":"test@example.com","password":"AAbb11!!"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	require.NoError(t, err)

	cookie := sessionCookieFrom(t, rec)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestAuthHandler_Logout_ClearsSessionCookie(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	h := NewAuthHandler(uc, tokenSvc, &config.Config{})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()

	err := h.Logout(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookieFrom(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_Register_ValidatesInput(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	h := NewAuthHandler(uc, tokenSvc, &config.Config{})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"Test"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	// Missing required fields fail struct validation before the usecase runs.
	err := h.Register(e.NewContext(req, rec))
	require.Error(t, err)
}
