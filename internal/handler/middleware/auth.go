package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"mealvoucher/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware authenticates cafeteria terminals by bearer token. Terminals
// are headless devices, so there is no cookie fallback.
type AuthMiddleware struct {
	tokens *jwt.Service
}

const (
	ctxDeviceIDKey    = "device_id"
	ctxCafeteriaIDKey = "cafeteria_id"
)

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireTerminal() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("terminal token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxDeviceIDKey, claims.DeviceID)
		c.Set(ctxCafeteriaIDKey, claims.CafeteriaID)
		c.Set("jwt_claims", map[string]any{
			"device_id":    claims.DeviceID.String(),
			"cafeteria_id": claims.CafeteriaID.String(),
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetDeviceID(c *gin.Context) (uuid.UUID, bool) {
	deviceID, exists := c.Get(ctxDeviceIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := deviceID.(uuid.UUID)
	return id, ok
}

func GetCafeteriaID(c *gin.Context) (uuid.UUID, bool) {
	cafeteriaID, exists := c.Get(ctxCafeteriaIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := cafeteriaID.(uuid.UUID)
	return id, ok
}
