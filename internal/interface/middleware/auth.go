package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HiI2O/lunch-hub/internal/application"
	"github.com/HiI2O/lunch-hub/pkg/response"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
	CtxUserRole  = "userRole"
)

// RequireAuth verifies the Bearer access token and stores the token
// payload in the context. Missing or bad tokens end the request with 401.
func RequireAuth(tokens application.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, "Missing access token", nil)
			c.Abort()
			return
		}
		payload, err := tokens.VerifyAccessToken(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "Invalid or expired access token", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserID, payload.UserID)
		c.Set(CtxUserEmail, payload.Email)
		c.Set(CtxUserRole, payload.Role)
		c.Next()
	}
}

// RequireRoles allows the request only when the authenticated user's
// role is one of the given roles. Must run after RequireAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		if _, ok := allowed[c.GetString(CtxUserRole)]; !ok {
			response.Fail(c, http.StatusForbidden, "Insufficient permissions", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
