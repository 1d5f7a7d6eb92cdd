package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	auth.AuthService
	loginFn  func(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error)
	logoutFn func(ctx context.Context, refreshToken string) error
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	return f.loginFn(ctx, req)
}
func (f *fakeAuthService) Logout(ctx context.Context, refreshToken string) error {
	return f.logoutFn(ctx, refreshToken)
}

func newTestAuthHandler(svc auth.AuthService) AuthHandler {
	return NewAuthHandler(jwt.NewJWTService("test-secret", "1h", "168h"), svc)
}

func TestLoginHandler_SetsRefreshCookie(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
			assert.Equal(t, "DFJODO20260001", req.Identifier)
			return auth.TokenResponse{
				AccessToken:           "access",
				AccessTokenExpiresIn:  1,
				RefreshToken:          "refresh",
				RefreshTokenExpiresIn: 2,
			}, nil
		},
	}
	handler := newTestAuthHandler(svc)

	body, _ := json.Marshal(map[string]string{"login_id": "DFJODO20260001", "password": "s3cretpass"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "refresh_token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, "refresh", cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "access", envelope.Data.AccessToken)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		},
	}
	handler := newTestAuthHandler(svc)

	body, _ := json.Marshal(map[string]string{"login_id": "DFJODO20260001", "password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
}

func TestLoginHandler_MalformedBody(t *testing.T) {
	handler := newTestAuthHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutHandler_ReadsCookieAndExpiresIt(t *testing.T) {
	var receivedToken string
	svc := &fakeAuthService{
		logoutFn: func(ctx context.Context, refreshToken string) error {
			receivedToken = refreshToken
			return nil
		},
	}
	handler := newTestAuthHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "stored-refresh"})
	rec := httptest.NewRecorder()

	handler.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "stored-refresh", receivedToken)

	var expired *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "refresh_token" {
			expired = c
		}
	}
	require.NotNil(t, expired)
	assert.Empty(t, expired.Value)
}
