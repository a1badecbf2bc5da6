package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/fyp-portal/internal/config"
	"github.com/linskybing/fyp-portal/internal/domain/user"
	"github.com/linskybing/fyp-portal/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWT(t *testing.T) {
	t.Helper()
	config.JwtSecret = "unit-test-secret"
	config.Issuer = "fyp-portal-test"
	Init()
}

func TestGenerateAndParseToken(t *testing.T) {
	setupJWT(t)

	tok, err := GenerateToken(user.User{ID: 42, Email: "a@uni.test", Role: user.RoleSupervisor}, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "supervisor", claims.Role)
	assert.Equal(t, "fyp-portal-test", claims.Issuer)
}

func TestParseToken_Rejects(t *testing.T) {
	setupJWT(t)

	expired, err := GenerateToken(user.User{ID: 1, Role: user.RoleStudent}, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired)
	assert.Error(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, &types.Claims{UserID: 1, Role: "student"})
	s, err := noExp.SignedString(jwtKey)
	require.NoError(t, err)
	_, err = ParseToken(s)
	assert.Error(t, err, "tokens without exp are refused")

	badRole := jwt.NewWithClaims(jwt.SigningMethodHS256, &types.Claims{
		UserID:           1,
		Role:             "root",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	s, err = badRole.SignedString(jwtKey)
	require.NoError(t, err)
	_, err = ParseToken(s)
	assert.Error(t, err)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, &types.Claims{
		UserID:           1,
		Role:             "student",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	s, err = other.SignedString([]byte("someone-else"))
	require.NoError(t, err)
	_, err = ParseToken(s)
	assert.Error(t, err)
}

func newProtected() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/p", JWTAuthMiddleware(), func(c *gin.Context) {
		claims, _ := c.Get("claims")
		c.JSON(http.StatusOK, gin.H{"uid": claims.(*types.Claims).UserID})
	})
	return r
}

func TestJWTAuthMiddleware_TokenSources(t *testing.T) {
	setupJWT(t)
	r := newProtected()
	tok, err := GenerateToken(user.User{ID: 7, Role: user.RoleStudent}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/p", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: tok})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Token "+tok)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// query tokens are only honoured on websocket handshakes
	req = httptest.NewRequest(http.MethodGet, "/p?token="+tok, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/p?token="+tok, nil)
	req.Header.Set("Upgrade", "websocket")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := NewAuth(nil)

	run := func(role string, mw gin.HandlerFunc) int {
		r := gin.New()
		r.GET("/x", func(c *gin.Context) {
			if role != "" {
				c.Set("claims", &types.Claims{UserID: 1, Role: role})
			}
			c.Next()
		}, mw, func(c *gin.Context) { c.Status(http.StatusNoContent) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, run("admin", auth.Admin()))
	assert.Equal(t, http.StatusForbidden, run("supervisor", auth.Admin()))
	assert.Equal(t, http.StatusNoContent, run("supervisor", auth.Staff()))
	assert.Equal(t, http.StatusForbidden, run("student", auth.Staff()))
	assert.Equal(t, http.StatusUnauthorized, run("", auth.Staff()))
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.CORSAllowedOrigins = []string{"http://localhost:5173/"}
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
