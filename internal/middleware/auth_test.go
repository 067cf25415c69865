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
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, role string, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := &JWTClaims{
		Email: "gabi@example.com",
		Name:  "Gabriel Perez",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "gabi@example.com",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": GetClaims(c).Email})
	})
	r.POST("/admin", JWTAuth(testSecret), RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, method, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	r := newAuthRouter()
	token := signToken(t, testSecret, "user", time.Hour)

	w := doRequest(r, http.MethodGet, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gabi@example.com")
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	r := newAuthRouter()

	w := doRequest(r, http.MethodGet, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Falta token")
}

func TestJWTAuthRejectsBadSignature(t *testing.T) {
	r := newAuthRouter()
	token := signToken(t, "otro-secreto", "user", time.Hour)

	w := doRequest(r, http.MethodGet, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	r := newAuthRouter()
	token := signToken(t, testSecret, "user", -time.Hour)

	w := doRequest(r, http.MethodGet, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token invalido o expirado")
}

func TestRequireRole(t *testing.T) {
	r := newAuthRouter()

	w := doRequest(r, http.MethodPost, "/admin", "Bearer "+signToken(t, testSecret, "user", time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, http.MethodPost, "/admin", "Bearer "+signToken(t, testSecret, "admin", time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
}
