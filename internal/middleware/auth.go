package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextSalonID  = "salonID"
	ContextUserRole = "userRole"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			httperr.Unauthorized(c, "missing_authorization_header", "authorization required")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "invalid token claims")
			c.Abort()
			return
		}

		userID, _ := claims["sub"].(string)
		salonID, _ := claims["salonId"].(string)
		role, _ := claims["role"].(string)
		if userID == "" || role == "" {
			httperr.Unauthorized(c, "invalid_token_payload", "invalid token payload")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextSalonID, salonID)
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// bearerToken reads the Authorization header. Websocket clients cannot set
// headers, so a token query parameter is accepted on upgrade requests.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
			if t := c.Query("token"); t != "" {
				return t, true
			}
		}
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// RequireRole lets through only the listed roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		httperr.Forbidden(c, httperr.CodeForbidden, "not allowed for role "+role)
		c.Abort()
	}
}

// RequireSalon rejects tokens not bound to a salon (customers).
func RequireSalon() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextSalonID) == "" {
			httperr.Forbidden(c, httperr.CodeForbidden, "salon account required")
			c.Abort()
			return
		}
		c.Next()
	}
}
