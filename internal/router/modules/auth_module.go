package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/HiI2O/lunch-hub/internal/application"
	handlers "github.com/HiI2O/lunch-hub/internal/interface/http"
	"github.com/HiI2O/lunch-hub/internal/interface/middleware"
)

// AuthModule mounts the public auth endpoints. Each route carries its
// own per-IP limit on top of the per-email limits inside the use cases.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Tokens  application.TokenService
	RDB     *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, tokens application.TokenService, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, Tokens: tokens, RDB: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	limit := func(max int) gin.HandlerFunc {
		return middleware.RateLimit(m.RDB, max, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	}

	rg.POST("/auth/login", limit(10), m.Handler.PostLogin)
	rg.POST("/auth/signup", limit(5), m.Handler.PostSignup)
	rg.POST("/auth/activate", limit(10), m.Handler.PostActivate)
	rg.POST("/auth/refresh", limit(30), m.Handler.PostRefresh)
	rg.POST("/auth/forgot-password", limit(5), m.Handler.PostForgotPassword)
	rg.POST("/auth/reset-password", limit(10), m.Handler.PostResetPassword)

	rg.POST("/auth/logout", middleware.RequireAuth(m.Tokens), m.Handler.PostLogout)
}
