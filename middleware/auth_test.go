package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartloop/ecommerce-api/models"
)

var testSecret = []byte("test-secret")

func signTestToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func authTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{RequireAuth(testSecret)}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		caller, _ := CallerFrom(c)
		c.JSON(http.StatusOK, gin.H{"id": caller.ID, "role": string(caller.Role)})
	})
	r.GET("/", chain...)
	return r
}

func TestRequireAuth(t *testing.T) {
	validClaims := jwt.MapClaims{
		"user_id": "u1",
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signTestToken(t, []byte("other"), validClaims), http.StatusUnauthorized},
		{"no user_id claim", "Bearer " + signTestToken(t, testSecret, jwt.MapClaims{"role": "user"}), http.StatusUnauthorized},
		{"valid token", "Bearer " + signTestToken(t, testSecret, validClaims), http.StatusOK},
		{"valid without bearer prefix", signTestToken(t, testSecret, validClaims), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := authTestRouter()
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	expired := signTestToken(t, testSecret, jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	r := authTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestRequireAuthAttachesIdentity(t *testing.T) {
	token := signTestToken(t, testSecret, jwt.MapClaims{
		"user_id": "u42",
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	r := authTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"u42"`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestRequireAuthUnknownRoleDefaultsToUser(t *testing.T) {
	token := signTestToken(t, testSecret, jwt.MapClaims{
		"user_id": "u1",
		"role":    "superuser",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	r := authTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		role       models.Role
		wantStatus int
	}{
		{"admin passes", models.RoleAdmin, http.StatusOK},
		{"user blocked", models.RoleUser, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signTestToken(t, testSecret, jwt.MapClaims{
				"user_id": "u1",
				"role":    string(tt.role),
				"exp":     time.Now().Add(time.Hour).Unix(),
			})
			r := authTestRouter(RequireAdmin)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireAdminWithoutAuthGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", RequireAdmin, func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
