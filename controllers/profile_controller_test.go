package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SillyCatLover68/NourishNine-Web-App/logger"
	"github.com/SillyCatLover68/NourishNine-Web-App/middlewares"
	"github.com/SillyCatLover68/NourishNine-Web-App/utils"
)

func newProfileRouter() *gin.Engine {
	pc := NewProfileController(logger.Nop())
	r := gin.New()
	grp := r.Group("/api/profile")
	grp.Use(middlewares.RequireIdentity())
	grp.POST("", pc.UpsertProfile)
	grp.DELETE("", pc.DeleteProfile)
	return r
}

func TestUpsertProfileWithoutToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	w := postJSON(newProfileRouter(), "/api/profile", `{"age":29}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing id token")
}

func TestUpsertProfileWithGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newProfileRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/profile", strings.NewReader(`{"age":29}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token verification failed")
}

func TestUpsertProfileSecretUnset(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	w := postJSON(newProfileRouter(), "/api/profile", `{"age":29,"idToken":"whatever"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "identity verification not configured")
}

func TestUpsertProfileEmptyPayload(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateIdentityToken("user-1")
	require.NoError(t, err)

	r := newProfileRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/profile", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing profile payload")
}

func TestTokenAcceptedFromBody(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateIdentityToken("user-2")
	require.NoError(t, err)

	// idToken in the body authenticates, but the payload must carry real
	// profile fields too; idToken alone strips down to nothing. With no
	// database configured the write itself fails.
	w := postJSON(newProfileRouter(), "/api/profile", `{"idToken":"`+token+`","age":31}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to write profile")
}
