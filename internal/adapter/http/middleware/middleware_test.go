package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"service_inventory/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func newAuthRouter(roles ...entities.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger(zap.NewNop()))
	r.GET("/me", JWTAuth(testSecret), RequireRole(roles...), func(c *gin.Context) {
		p, _ := PrincipalFrom(c)
		c.String(http.StatusOK, p.UserID+":"+string(p.Role))
	})
	return r
}

func doGet(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	r := newAuthRouter(entities.RoleCustomer)
	exp := time.Now().Add(time.Hour).Unix()

	t.Run("missing token", func(t *testing.T) {
		w := doGet(r, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		w := doGet(r, signToken(t, "other", jwt.MapClaims{"uid": "u1", "role": "customer", "exp": exp}))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired", func(t *testing.T) {
		w := doGet(r, signToken(t, testSecret, jwt.MapClaims{"uid": "u1", "role": "customer", "exp": time.Now().Add(-time.Minute).Unix()}))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("no subject", func(t *testing.T) {
		w := doGet(r, signToken(t, testSecret, jwt.MapClaims{"role": "customer", "exp": exp}))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid", func(t *testing.T) {
		w := doGet(r, signToken(t, testSecret, jwt.MapClaims{"sub": "u1", "role": "Customer", "exp": exp}))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "u1:customer" {
			t.Fatalf("unexpected principal %q", w.Body.String())
		}
		if w.Header().Get(HeaderRequestID) == "" {
			t.Fatalf("expected a request id header")
		}
	})
}

func TestRequireRole(t *testing.T) {
	r := newAuthRouter(entities.RoleTechnician)
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   int
	}{
		{"role allowed", jwt.MapClaims{"uid": "t1", "role": "technician", "exp": exp}, http.StatusOK},
		{"role denied", jwt.MapClaims{"uid": "c1", "role": "customer", "exp": exp}, http.StatusForbidden},
		{"admin role", jwt.MapClaims{"uid": "a1", "role": "admin", "exp": exp}, http.StatusOK},
		{"admin flag", jwt.MapClaims{"uid": "a2", "role": "customer", "is_admin": true, "exp": exp}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, signToken(t, testSecret, tt.claims))
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestRequestID_Propagates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Body.String() != "req-42" || w.Header().Get(HeaderRequestID) != "req-42" {
		t.Fatalf("request id not propagated: body=%q header=%q", w.Body.String(), w.Header().Get(HeaderRequestID))
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
