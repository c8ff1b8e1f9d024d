package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/HiI2O/lunch-hub/internal/application"
	"github.com/HiI2O/lunch-hub/internal/interface/middleware"
	"github.com/HiI2O/lunch-hub/pkg/response"
	"github.com/HiI2O/lunch-hub/pkg/validation"
)

// AdminUserHandler serves the administrator-only user management
// endpoints. Role enforcement happens in middleware, not here.
type AdminUserHandler struct {
	Invite           *application.InviteUserUseCase
	List             *application.GetUserListUseCase
	ResendInvitation *application.ResendInvitationUseCase
	CancelInvitation *application.CancelInvitationUseCase
	Deactivate       *application.DeactivateUserUseCase
	Reactivate       *application.ReactivateUserUseCase
	ChangeRole       *application.ChangeRoleUseCase
	ForceLogout      *application.ForceLogoutUseCase
	Logger           *logrus.Logger
}

type inviteRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=GENERAL_USER STAFF ADMINISTRATOR"`
}

func (h *AdminUserHandler) PostInvite(c *gin.Context) {
	var req inviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	invitedBy := c.GetString(middleware.CtxUserID)
	result, err := h.Invite.Execute(c.Request.Context(), req.Email, req.Role, invitedBy)
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{
		"userId": result.UserID,
		"email":  result.Email,
	}, "user invited")
}

func (h *AdminUserHandler) GetList(c *gin.Context) {
	users, err := h.List.Execute(c.Request.Context())
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, users, "user list")
}

func (h *AdminUserHandler) PostResendInvitation(c *gin.Context) {
	if err := h.ResendInvitation.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Invitation resent"}, "invitation resent")
}

func (h *AdminUserHandler) DeleteInvitation(c *gin.Context) {
	if err := h.CancelInvitation.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Invitation cancelled"}, "invitation cancelled")
}

func (h *AdminUserHandler) PutDeactivate(c *gin.Context) {
	if err := h.Deactivate.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "User deactivated"}, "user deactivated")
}

func (h *AdminUserHandler) PutReactivate(c *gin.Context) {
	if err := h.Reactivate.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "User reactivated"}, "user reactivated")
}

type changeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=GENERAL_USER STAFF ADMINISTRATOR"`
}

func (h *AdminUserHandler) PutRole(c *gin.Context) {
	var req changeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.ChangeRole.Execute(c.Request.Context(), c.Param("id"), req.Role); err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Role changed"}, "role changed")
}

func (h *AdminUserHandler) PostForceLogout(c *gin.Context) {
	if err := h.ForceLogout.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "User sessions cleared"}, "sessions cleared")
}
