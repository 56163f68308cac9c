package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medtime/internal/auth"
)

const contextUserKey = "medtime.user"

// Authentication checks for a valid Bearer session token and stores the
// resolved user on the request context.
func Authentication(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse("missing bearer token"))
			return
		}

		user, err := authService.VerifyToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse("invalid or expired token"))
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// currentUser returns the authenticated user stored by the middleware.
func currentUser(c *gin.Context) (auth.User, bool) {
	value, ok := c.Get(contextUserKey)
	if !ok {
		return auth.User{}, false
	}
	user, ok := value.(auth.User)
	return user, ok
}

// RequestLogger logs each request with method, path, status, and duration.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
