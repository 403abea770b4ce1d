package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"cashcard-service/internal/core/domain"
	"cashcard-service/internal/core/ports"
	"cashcard-service/pkg/apperror"
	"cashcard-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// Context keys
	CtxPrincipal = "principal"
	CtxRoles     = "roles"
)

// Authenticate resolves the request principal from the Authorization header.
// Basic credentials are verified against the user store; Bearer tokens are
// validated by the token service. Anything else gets a 401 with a Basic
// challenge so browser-style clients know how to retry.
func Authenticate(authSvc ports.AuthService, tokenSvc ports.TokenService, realm string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		switch {
		case strings.HasPrefix(authHeader, "Basic "):
			username, password, ok := c.Request.BasicAuth()
			if !ok {
				challenge(c, realm, apperror.ErrUnauthenticated())
				return
			}
			user, err := authSvc.Verify(c.Request.Context(), username, password)
			if err != nil {
				appErr, isApp := err.(*apperror.AppError)
				if isApp && appErr.HTTPStatus == http.StatusUnauthorized {
					challenge(c, realm, appErr)
					return
				}
				log.Error().Err(err).Msg("credential verification failed")
				response.Error(c, err)
				c.Abort()
				return
			}
			c.Set(CtxPrincipal, user.Username)
			c.Set(CtxRoles, user.Roles)

		case strings.HasPrefix(authHeader, "Bearer "):
			claims, err := tokenSvc.Validate(authHeader[7:])
			if err != nil {
				challenge(c, realm, apperror.ErrInvalidToken())
				return
			}
			c.Set(CtxPrincipal, claims.Username)
			c.Set(CtxRoles, claims.Roles)

		default:
			challenge(c, realm, apperror.ErrUnauthenticated())
			return
		}

		c.Next()
	}
}

// challenge writes a 401 with the WWW-Authenticate header set.
func challenge(c *gin.Context, realm string, appErr *apperror.AppError) {
	c.Header("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", realm))
	response.Error(c, appErr)
	c.Abort()
}

// RequireRole rejects authenticated principals that lack the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, exists := c.Get(CtxRoles)
		if exists {
			if rs, ok := roles.([]string); ok {
				user := domain.User{Roles: rs}
				if user.HasRole(role) {
					c.Next()
					return
				}
			}
		}
		response.Error(c, apperror.ErrForbidden())
		c.Abort()
	}
}

// Principal returns the authenticated username, or "" before authentication.
func Principal(c *gin.Context) string {
	if p, exists := c.Get(CtxPrincipal); exists {
		if s, ok := p.(string); ok {
			return s
		}
	}
	return ""
}

// MaxBodySize caps request body size to guard against oversized payloads.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
