package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"lexhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// bearerToken pulls the JWT from the Authorization header, falling back
// to the "token" query parameter for WebSocket upgrades.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}

// JWTAuthMiddleware validates the bearer token, rejects revoked tokens
// and sets userID and role in the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Revoked tokens are parked in the auth cache by hash until they expire.
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		revoked, err := utils.GetAuthCacheClient().Exists(ctx, utils.AuthCachePrefix+"revoked:"+utils.HashToken(tokenString)).Result()
		cancel()
		if err == nil && revoked > 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		sub, _ := claims["sub"].(string)
		if sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token missing subject"})
			return
		}

		c.Set("userID", sub)
		if role, ok := claims["role"].(string); ok {
			c.Set("role", role)
		}
		c.Next()
	}
}
