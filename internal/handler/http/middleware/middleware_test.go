package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatedRouter(t *testing.T, jwtService jwt.Service) *chi.Mux {
	t.Helper()
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(AuthRequired(jwtService.JWTAuth()))

	r.Get("/probe", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Group(func(r chi.Router) {
		r.Use(AdminOnly)
		r.Get("/admin-probe", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func accessTokenFor(t *testing.T, jwtService jwt.Service, role user.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken(uuid.New().String(), "DFJODO20260001", "jd@dayflow.test", nil, role)
	require.NoError(t, err)
	return token
}

func doGet(router *chi.Mux, path string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_MissingToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	router := newGatedRouter(t, jwtService)

	rec := doGet(router, "/probe", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RejectsRefreshToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	router := newGatedRouter(t, jwtService)

	refresh, _, err := jwtService.GenerateRefreshToken(uuid.New().String())
	require.NoError(t, err)

	rec := doGet(router, "/probe", refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_AcceptsAccessToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	router := newGatedRouter(t, jwtService)

	rec := doGet(router, "/probe", accessTokenFor(t, jwtService, user.RoleEmployee))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnly_RejectsEmployeeRole(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	router := newGatedRouter(t, jwtService)

	rec := doGet(router, "/admin-probe", accessTokenFor(t, jwtService, user.RoleEmployee))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnly_AllowsAdminRole(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	router := newGatedRouter(t, jwtService)

	rec := doGet(router, "/admin-probe", accessTokenFor(t, jwtService, user.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}
