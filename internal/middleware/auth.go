package middleware

import (
	"net/http"
	"os"

	"storefront-be/internal/auth"
	"storefront-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var jwtKey = []byte(os.Getenv("SECRET_KEY"))

// AuthMiddleware parses the access token when present and stores the caller
// identity in the request context. It never rejects on its own; RequireAuth
// does that for protected routes.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := auth.ExtractAccessToken(c.Request)
		if tokenStr == "" {
			c.Next()
			return
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			return jwtKey, nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			uid, _ := claims["user_id"].(float64)
			email, _ := claims["email"].(string)
			role, _ := claims["role"].(string)

			ctx := utils.SetUserContext(c.Request.Context(), uint(uid), email, role)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}

// RequireAuth rejects requests without an authenticated user.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.GetUserIDFromContext(c.Request.Context())
		if !ok || userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects callers whose token does not carry the ADMIN role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.GetUserRoleFromContext(c.Request.Context()) != utils.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}
