package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vetlig/vetlig/internal/common"
	"github.com/vetlig/vetlig/internal/server/models"
)

const (
	requestIDHeader = "X-Request-Id"
	currentUserKey  = "currentUser"
)

// requestIDMiddleware tags every request with an ID, echoes it in the
// response, and keeps a request-scoped logger on the gin context.
func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Set("logger", s.logger.With("request_id", id))
		c.Next()
	}
}

// requireAuth extracts the bearer token, resolves it to a user, and aborts
// with one uniform 401 on any failure. The WWW-Authenticate header mirrors
// what the login endpoint sends.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, common.BearerSchema) {
			abortUnauthorized(c)
			return
		}
		token := strings.TrimPrefix(header, common.BearerSchema)

		user, err := s.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": common.ErrorUnauthorized.Error()})
}

// currentUser returns the user placed on the context by requireAuth.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
