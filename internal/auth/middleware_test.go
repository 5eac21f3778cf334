package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(handler gin.HandlerFunc, middleware gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware, handler)
	return router
}

func identityEcho(c *gin.Context) {
	userID, _ := GetUserID(c)
	c.JSON(http.StatusOK, gin.H{"user_id": userID})
}

func TestMiddleware_ValidToken(t *testing.T) {
	router := setupRouter(identityEcho, Middleware(testSecret))

	token, err := GenerateToken("user_2abc", "veer@example.com", "Veer", "", testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user_2abc")
}

func TestMiddleware_MissingHeader(t *testing.T) {
	router := setupRouter(identityEcho, Middleware(testSecret))

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	router := setupRouter(identityEcho, Middleware(testSecret))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalMiddleware_Anonymous(t *testing.T) {
	router := setupRouter(identityEcho, OptionalMiddleware(testSecret))

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", Middleware(testSecret), RequireRole(RoleAdmin), identityEcho)

	t.Run("admin allowed", func(t *testing.T) {
		token, err := GenerateToken("user_admin", "", "", RoleAdmin, testSecret)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("member forbidden", func(t *testing.T) {
		token, err := GenerateToken("user_2abc", "", "", "", testSecret)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestOptionalMiddleware_InvalidTokenStillRejected(t *testing.T) {
	router := setupRouter(identityEcho, OptionalMiddleware(testSecret))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
