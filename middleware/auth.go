package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/cartloop/ecommerce-api/models"
)

// Identity is the caller attached to the request by RequireAuth.
type Identity struct {
	ID   string
	Role models.Role
}

const identityKey = "identity"

// SetCaller attaches an identity to the request context. RequireAuth does
// this after token verification.
func SetCaller(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

// CallerFrom returns the identity a RequireAuth gate attached earlier in the
// chain.
func CallerFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// RequireAuth verifies the bearer token and attaches the caller identity
// (user id and role) to the context, or aborts with 401.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is missing"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			return
		}
		userID, _ := claims["user_id"].(string)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			return
		}
		role := models.RoleUser
		if r, _ := claims["role"].(string); r == string(models.RoleAdmin) {
			role = models.RoleAdmin
		}

		SetCaller(c, Identity{ID: userID, Role: role})
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless RequireAuth attached an admin identity.
// It must be mounted after RequireAuth.
func RequireAdmin(c *gin.Context) {
	caller, ok := CallerFrom(c)
	if !ok || caller.Role != models.RoleAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
		return
	}
	c.Next()
}
