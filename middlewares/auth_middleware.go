// middlewares/auth_middleware.go
package middlewares

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SillyCatLover68/NourishNine-Web-App/utils"
)

// extractToken finds the identity token in the Authorization header, then
// the JSON body's idToken field, then the idToken query param. The body is
// restored so handlers can still bind it.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if c.Request.Body != nil {
		raw, err := io.ReadAll(c.Request.Body)
		if err == nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			var probe struct {
				IDToken string `json:"idToken"`
			}
			if json.Unmarshal(raw, &probe) == nil && probe.IDToken != "" {
				return probe.IDToken
			}
		}
	}

	return c.Query("idToken")
}

// OptionalIdentity associates a verified identity subject with the request
// when a token is present. Verification failure degrades to anonymous; the
// request always proceeds.
func OptionalIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if sub, err := utils.VerifyIdentityToken(token); err == nil {
				c.Set("userID", sub)
			}
		}
		c.Next()
	}
}

// RequireIdentity rejects requests without a valid identity token. The
// profile endpoints need a subject to key their records by.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing id token"})
			return
		}
		if len(os.Getenv("JWT_SECRET")) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "identity verification not configured"})
			return
		}
		sub, err := utils.VerifyIdentityToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token verification failed"})
			return
		}
		c.Set("userID", sub)
		c.Next()
	}
}
