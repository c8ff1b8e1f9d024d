package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/HiI2O/lunch-hub/internal/application"
	"github.com/HiI2O/lunch-hub/internal/domain/valueobject"
	handlers "github.com/HiI2O/lunch-hub/internal/interface/http"
	"github.com/HiI2O/lunch-hub/internal/interface/middleware"
)

// AdminModule mounts the administrator-only user management endpoints.
type AdminModule struct {
	Handler *handlers.AdminUserHandler
	Tokens  application.TokenService
}

func NewAdminModule(h *handlers.AdminUserHandler, tokens application.TokenService) *AdminModule {
	return &AdminModule{Handler: h, Tokens: tokens}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin/users")
	admin.Use(middleware.RequireAuth(m.Tokens), middleware.RequireRoles(valueobject.RoleAdministrator))
	{
		admin.POST("/invite", m.Handler.PostInvite)
		admin.GET("", m.Handler.GetList)
		admin.POST("/:id/resend-invitation", m.Handler.PostResendInvitation)
		admin.DELETE("/:id/invitation", m.Handler.DeleteInvitation)
		admin.PUT("/:id/deactivate", m.Handler.PutDeactivate)
		admin.PUT("/:id/reactivate", m.Handler.PutReactivate)
		admin.PUT("/:id/role", m.Handler.PutRole)
		admin.POST("/:id/force-logout", m.Handler.PostForceLogout)
	}
}
