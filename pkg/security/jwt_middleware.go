package security

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/muhryhan/be-aset-dlh/pkg/acl"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTMiddleware validates the bearer token (or its mirrored cookie) and
// loads the claims into the request context. A missing or invalid token is
// always a 401: the dashboard reacts to that status with a forced logout.
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie("token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return jwtSecret, nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		claims := token.Claims.(jwt.MapClaims)
		if id, ok := claims["userID"].(float64); ok {
			c.Set("userID", int(id))
		}
		c.Set("role", claims["role"])
		c.Set("username", claims["username"])
		c.Next()
	}
}

// Authorize gates a route on the static permission table.
func Authorize(resource string, action acl.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := RoleFromContext(c)
		if !ok || !acl.Allowed(acl.Role(role), resource, action) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequireRole gates a route on an exact role, for surfaces outside the
// resource table (user administration).
func RequireRole(required acl.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := RoleFromContext(c)
		if !ok || acl.Role(role) != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient permissions"})
			return
		}
		c.Next()
	}
}
