package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/Govind-619/Plug233/services"
	"github.com/Govind-619/Plug233/testutil"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(sub string) Claims {
	return Claims{
		Email: sub + "@example.com",
		Name:  "Test User",
		StandardClaims: jwt.StandardClaims{
			Subject:   sub,
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
}

func TestParseToken(t *testing.T) {
	good := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("user-1"))
	claims, err := ParseToken(good, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "user-1@example.com", claims.Email)

	_, err = ParseToken(good, "other-secret")
	assert.Error(t, err)

	expired := validClaims("user-1")
	expired.ExpiresAt = time.Now().Add(-time.Minute).Unix()
	_, err = ParseToken(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired), testSecret)
	assert.Error(t, err)

	noSubject := validClaims("")
	_, err = ParseToken(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noSubject), testSecret)
	assert.Error(t, err)

	unsigned := signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims("user-1"))
	_, err = ParseToken(unsigned, testSecret)
	assert.Error(t, err)
}

func newRouter(t *testing.T) (*gin.Engine, *repository.Repositories) {
	t.Helper()
	repos := testutil.NewRepos(t)
	accounts := services.NewAccountService(repos)

	r := gin.New()
	auth := r.Group("/", AuthMiddleware(testSecret, accounts))
	auth.GET("/me", func(c *gin.Context) {
		p, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": p.ID, "role": p.Role})
	})
	auth.GET("/admin", AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, repos
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r, _ := newRouter(t)
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("user-7"))

	w := get(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "missing Bearer prefix")

	w = get(r, "/me", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, "/me", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-7", body["id"])
	assert.Equal(t, string(models.RoleUser), body["role"])
}

func TestAdminMiddleware(t *testing.T) {
	r, repos := newRouter(t)
	userToken := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("plain"))
	w := get(r, "/admin", "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("boss"))
	w = get(r, "/me", "Bearer "+adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, repos.Profiles.Update(context.Background(), "boss", map[string]interface{}{"role": models.RoleAdmin}))

	w = get(r, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
