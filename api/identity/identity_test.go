package identity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-posemaze/infrastruture/token"
	"github.com/beka-birhanu/vinom-posemaze/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const operatorKey = "violet-Harbor-92-quartz-lantern"

func newEngine(t *testing.T, keyHash string) (*gin.Engine, *token.JwtService) {
	t.Helper()
	tokenizer, err := token.NewJwtService("test-secret", "posemaze")
	require.NoError(t, err)
	auth, err := service.NewAuthService(keyHash, tokenizer)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewIdentityServer(auth).RegisterPublic(r.Group("/v1"))

	protected := r.Group("/v1")
	protected.Use(Authoriz(tokenizer))
	protected.GET("/secret", func(c *gin.Context) {
		claims, _ := c.Get(ContextOperatorClaims)
		c.JSON(http.StatusOK, claims)
	})
	return r, tokenizer
}

func hash(t *testing.T) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(operatorKey), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/secret", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestTokenEndpoint(t *testing.T) {
	r, _ := newEngine(t, hash(t))

	t.Run("Valid key yields a usable token", func(t *testing.T) {
		w := post(r, `{"key":"`+operatorKey+`"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)

		assert.Equal(t, http.StatusOK, get(r, "Bearer "+resp.Token).Code)
	})

	t.Run("Wrong key", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, post(r, `{"key":"guess"}`).Code)
	})

	t.Run("Missing key", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, post(r, `{}`).Code)
	})

	t.Run("Login disabled without a configured hash", func(t *testing.T) {
		disabled, _ := newEngine(t, "")
		assert.Equal(t, http.StatusServiceUnavailable, post(disabled, `{"key":"`+operatorKey+`"}`).Code)
	})
}

func TestAuthoriz(t *testing.T) {
	r, tokenizer := newEngine(t, hash(t))

	t.Run("Missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	})

	t.Run("Malformed header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(r, "Token abc").Code)
	})

	t.Run("Invalid token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer not-a-jwt").Code)
	})

	t.Run("Token without operator role", func(t *testing.T) {
		tok, err := tokenizer.Generate(map[string]interface{}{"role": "viewer"}, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, get(r, "Bearer "+tok).Code)
	})

	t.Run("Scheme is case insensitive", func(t *testing.T) {
		tok, err := tokenizer.Generate(map[string]interface{}{"role": "operator"}, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, get(r, "bearer "+tok).Code)
	})
}
