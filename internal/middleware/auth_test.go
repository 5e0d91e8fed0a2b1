package middleware

import (
	"context"
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

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestAuthValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var gotUserID any
	var gotRole any
	router.GET("/probe", Auth(testSecret, true), func(c *gin.Context) {
		gotUserID, _ = c.Get("user_id")
		gotRole, _ = c.Get("role")
		c.Status(http.StatusOK)
	})

	token := signToken(t, jwt.MapClaims{
		"sub":  float64(42),
		"role": "student",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), gotUserID)
	assert.Equal(t, "student", gotRole)
}

func TestAuthMissingTokenRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/probe", Auth(testSecret, true), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMissingTokenOptional(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var hasUser bool
	router.GET("/probe", Auth(testSecret, false), func(c *gin.Context) {
		_, hasUser = c.Get("user_id")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, hasUser)
}

func TestAuthInvalidTokenRejectedEvenWhenOptional(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/probe", Auth(testSecret, false), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthWrongSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/probe", Auth(testSecret, true), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": float64(1)})
	signed, err := tok.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", func(c *gin.Context) {
		c.Set("role", "student")
		c.Next()
	}, RequireRole("manager", "admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/admin-ok", func(c *gin.Context) {
		c.Set("role", "admin")
		c.Next()
	}, RequireRole("manager", "admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin-ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserContextRoundTrip(t *testing.T) {
	ctx := ContextWithUser(context.Background(), 7, "staff")

	id, ok := UserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	role, ok := RoleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "staff", role)
}
