package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sosfido/sosfido-api/internal/model"
	"github.com/sosfido/sosfido-api/pkg/auth"
)

// TokenFinder resolves a bearer token string to its unexpired row
type TokenFinder interface {
	FindValid(tokenString string, now time.Time) (*model.AccessToken, error)
}

// AuthMiddleware validates opaque bearer tokens against the access_tokens
// table and the revocation blacklist, and injects the owning account into
// the request context.
func AuthMiddleware(tokens TokenFinder, revocation auth.RevocationList) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: "Authorization header required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: "Invalid authorization format. Use: Bearer <token>"})
			return
		}

		tokenString := parts[1]

		revoked, err := revocation.IsRevoked(c.Request.Context(), tokenString)
		if err != nil {
			// Fail closed on revocation-store errors.
			c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Auth server error"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: "Token has been revoked"})
			return
		}

		token, err := tokens.FindValid(tokenString, time.Now())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		c.Set("account_id", token.AccountID)
		c.Set("username", token.Account.Username)

		c.Next()
	}
}
