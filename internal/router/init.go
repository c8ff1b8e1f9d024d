package router

import (
	"github.com/HiI2O/lunch-hub/internal/container"
	"github.com/HiI2O/lunch-hub/internal/router/modules"
)

// InitModules registers every feature module on the registry.
func InitModules(reg *Registry, c *container.Container) {
	reg.Add(modules.NewAuthModule(c.AuthHandler, c.Tokens, c.RDB))
	reg.Add(modules.NewUserModule(c.UserHandler, c.Tokens))
	reg.Add(modules.NewAdminModule(c.AdminHandler, c.Tokens))
}
