package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/HiI2O/lunch-hub/internal/application"
	handlers "github.com/HiI2O/lunch-hub/internal/interface/http"
	"github.com/HiI2O/lunch-hub/internal/interface/middleware"
)

// UserModule mounts the authenticated self-service endpoints.
type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  application.TokenService
}

func NewUserModule(h *handlers.UserHandler, tokens application.TokenService) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.RequireAuth(m.Tokens))
	{
		users.GET("/me", m.Handler.GetMe)
		users.PUT("/me/password", m.Handler.PutMyPassword)
	}
}
