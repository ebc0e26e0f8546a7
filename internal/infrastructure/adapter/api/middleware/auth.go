package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	domainerr "github.com/masjid-digital/donation-processor/internal/domain/error"
	coreport "github.com/masjid-digital/donation-processor/internal/domain/port/core"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/api/dto"
)

// StaffIDKey is the gin context key holding the authenticated staff identity
const StaffIDKey = "staffID"

// StaffAuth validates the bearer token and stores the staff identity in the
// request context. Confirmation, cancellation, and registry mutations all sit
// behind this middleware.
func StaffAuth(secret string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		tokenStr := strings.TrimPrefix(auth, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			logger.Warn("Rejected staff token", map[string]any{
				"path": c.Request.URL.Path,
				"ip":   c.ClientIP(),
			})
			abortUnauthorized(c, "invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid token")
			return
		}

		sub, _ := claims["sub"].(string)
		staffID, err := uuid.Parse(sub)
		if err != nil {
			abortUnauthorized(c, "invalid subject")
			return
		}

		c.Set(StaffIDKey, staffID)
		c.Next()
	}
}

// StaffIDFromContext returns the authenticated staff identity
func StaffIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(StaffIDKey)
	if !exists {
		return uuid.Nil, false
	}
	staffID, ok := value.(uuid.UUID)
	return staffID, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
		Message: message,
	})
}
