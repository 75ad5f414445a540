package middleware

import (
	"net/http"
	"strings"

	"pickme-backend/internal/delivery/http/response"
	"pickme-backend/internal/domain"
	"pickme-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and loads the current account
// into the request context. The role stored in the context always comes
// from the database, never from the token claims, so role changes take
// effect without waiting for the token to expire.
func AuthMiddleware(tokens *token.Service, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		accountID, err := claims.AccountID()
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token subject", nil)
			c.Abort()
			return
		}

		account, err := authUC.CurrentAccount(c.Request.Context(), accountID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Account not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyAccountID), account.ID)
		c.Set(string(domain.KeyAccountEmail), account.Email)
		c.Set(string(domain.KeyAccountRole), account.Role)

		c.Next()
	}
}
