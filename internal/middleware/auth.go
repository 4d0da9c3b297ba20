package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TenantClaims are the JWT claims the ledger understands. The subject is the
// user; TenantID scopes every query the request makes.
type TenantClaims struct {
	TenantID string `json:"tenant_id"`
	jwt.RegisteredClaims
}

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens
// signed with HMAC. When issuer is non-empty the token's iss claim must match.
func AuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})}
	if issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(issuer))
	}

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims := &TenantClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		}, parserOpts...)

		if err != nil || !token.Valid {
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			logger.Warn("Invalid token", slog.Any("error", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		if claims.TenantID == "" {
			logger.Warn("Token carries no tenant", slog.String("user_id", claims.Subject))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token is not scoped to a tenant"})
			return
		}

		enrichedLogger := logger.With(
			slog.String("user_id", claims.Subject),
			slog.String("tenant_id", claims.TenantID),
		)

		ctx := WithAuthenticatedUser(c.Request.Context(), claims.Subject, claims.TenantID)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Next()
	}
}
