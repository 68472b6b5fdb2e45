package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/muzahidswe/fs17-Backend-project/internal/apperror"
	"github.com/muzahidswe/fs17-Backend-project/internal/domain"
	"github.com/muzahidswe/fs17-Backend-project/internal/service"
	"github.com/muzahidswe/fs17-Backend-project/internal/token"
)

const userContextKey = "currentUser"

// Authenticate validates the bearer token and resolves it to a user record
// attached to the request context. Invalid, expired or orphaned tokens all
// terminate the request with 401.
func Authenticate(tokens *token.Manager, users service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, apperror.Unauthorized("Authorization header is required"))
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) || len(authHeader) == len(bearerPrefix) {
			abort(c, apperror.Unauthorized("Invalid authorization header format"))
			return
		}

		claims, err := tokens.Verify(authHeader[len(bearerPrefix):])
		if err != nil {
			abort(c, apperror.From(err))
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			// a store failure is not a credential problem
			if apiErr := apperror.From(err); apiErr.Status >= 500 {
				abort(c, apiErr)
				return
			}
			abort(c, apperror.Unauthorized("Invalid or expired token"))
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// AdminOnly rejects non-admin users. Assumes Authenticate already ran.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abort(c, apperror.Unauthorized(""))
			return
		}
		if user.Role != domain.RoleAdmin {
			abort(c, apperror.Forbidden("You don't have access to this operation"))
			return
		}
		c.Next()
	}
}

// ActiveOnly rejects inactive accounts. Assumes Authenticate already ran.
func ActiveOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abort(c, apperror.Unauthorized(""))
			return
		}
		if user.Status != domain.StatusActive {
			abort(c, apperror.Forbidden("You don't have access to this system. Please contact support"))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by Authenticate.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*domain.User)
	return user, ok
}

func abort(c *gin.Context, err *apperror.Error) {
	c.AbortWithStatusJSON(err.Status, gin.H{"message": err.Message})
}
