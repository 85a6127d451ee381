package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/temidayo/servecorps/internal/app/controllers"
	"github.com/temidayo/servecorps/internal/app/models"
	"github.com/temidayo/servecorps/internal/middleware"
	"github.com/temidayo/servecorps/internal/pkg/auth"
)

// newTestRouter wires the full route table with the real auth middleware.
// The controllers carry no services; requests in these tests are expected
// to be rejected before any handler runs.
func newTestRouter() (*gin.Engine, *auth.JWTService) {
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "route-test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "servecorps-test",
	})

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(nil),
		controllers.NewRosterController(nil, nil),
		controllers.NewGraduateController(nil),
		controllers.NewStaffRequestController(nil),
		controllers.NewReferenceController(nil),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{
		ID:    1,
		Email: "account@servecorps.org",
		Role:  role,
	})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func request(router *gin.Engine, method, path, token string) int {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec.Code
}

func TestGraduateRoutesRequireAuthentication(t *testing.T) {
	router, _ := newTestRouter()

	if code := request(router, http.MethodGet, "/api/v1/graduates", ""); code != http.StatusUnauthorized {
		t.Fatalf("GET /graduates without token = %d, want 401", code)
	}
	if code := request(router, http.MethodGet, "/api/v1/graduates/1", ""); code != http.StatusUnauthorized {
		t.Fatalf("GET /graduates/1 without token = %d, want 401", code)
	}
}

func TestGraduateRoutesAreOfficeOnly(t *testing.T) {
	router, jwtService := newTestRouter()

	for _, role := range []models.RoleType{models.RoleZone, models.RoleDepartment} {
		token := tokenFor(t, jwtService, role)

		if code := request(router, http.MethodGet, "/api/v1/graduates", token); code != http.StatusForbidden {
			t.Fatalf("GET /graduates as %s = %d, want 403", role, code)
		}
		if code := request(router, http.MethodGet, "/api/v1/graduates/1", token); code != http.StatusForbidden {
			t.Fatalf("GET /graduates/1 as %s = %d, want 403", role, code)
		}
		if code := request(router, http.MethodPost, "/api/v1/graduates/1/status", token); code != http.StatusForbidden {
			t.Fatalf("POST /graduates/1/status as %s = %d, want 403", role, code)
		}
	}
}

func TestBatchUploadIsZoneOnly(t *testing.T) {
	router, jwtService := newTestRouter()

	for _, role := range []models.RoleType{models.RoleOffice, models.RoleDepartment} {
		token := tokenFor(t, jwtService, role)
		if code := request(router, http.MethodPost, "/api/v1/roster/batches", token); code != http.StatusForbidden {
			t.Fatalf("POST /roster/batches as %s = %d, want 403", role, code)
		}
	}
}
