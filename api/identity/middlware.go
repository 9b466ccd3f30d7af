package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-posemaze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextOperatorClaims is the key used to store token claims in the Gin context.
	ContextOperatorClaims = "operatorClaims"

	operatorRole = "operator"
)

// Authoriz admits requests carrying a valid operator bearer token.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if role, _ := claims["role"].(string); role != operatorRole {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set(ContextOperatorClaims, claims)
		c.Next()
	}
}
