package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ampedent/internal/metrics"
	"ampedent/internal/models"
)

const (
	ctxSessionName = "session_name"
	ctxSessionRole = "session_role"
)

// session resolves the caller's role from the bearer token. Missing or
// invalid tokens leave the role at none; the access guard rejects such
// callers uniformly at the operation level.
func (s *Server) session() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.Fields(header)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if name, role, err := s.auth.ParseToken(parts[1]); err == nil {
				c.Set(ctxSessionName, name)
				c.Set(ctxSessionRole, role)
			}
		}
		c.Next()
	}
}

func sessionRole(c *gin.Context) models.Role {
	if v, ok := c.Get(ctxSessionRole); ok {
		if role, ok := v.(models.Role); ok {
			return role
		}
	}
	return models.RoleNone
}

func sessionName(c *gin.Context) string {
	return c.GetString(ctxSessionName)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("request_id", requestID)

		c.Next()

		s.logger.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

func (s *Server) requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		metrics.IncHTTP(handler, strconv.Itoa(c.Writer.Status()))
	}
}
