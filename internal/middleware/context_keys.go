package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is a custom type for values stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	userIDKey    = contextKey("userID")
	tenantIDKey  = contextKey("tenantID")
	loggerCtxKey = contextKey("logger")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, userIDKey)
}

// GetTenantIDFromContext retrieves the tenant the request is scoped to.
// The tenant always comes from the verified token, never from the URL.
func GetTenantIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, tenantIDKey)
}

func stringFromContext(c *gin.Context, key contextKey) (string, bool) {
	if val, exists := c.Get(string(key)); exists {
		s, ok := val.(string)
		return s, ok && s != ""
	}
	// check in the request context as well
	if val, ok := c.Request.Context().Value(key).(string); ok && val != "" {
		return val, true
	}
	return "", false
}

// WithAuthenticatedUser returns a copy of ctx carrying the user and tenant IDs.
func WithAuthenticatedUser(ctx context.Context, userID, tenantID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, tenantIDKey, tenantID)
}
