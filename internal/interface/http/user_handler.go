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

// UserHandler serves the authenticated self-service endpoints.
type UserHandler struct {
	Profile        *application.GetUserProfileUseCase
	ChangePassword *application.ChangePasswordUseCase
	Logger         *logrus.Logger
}

func (h *UserHandler) GetMe(c *gin.Context) {
	profile, err := h.Profile.Execute(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, profile, "profile")
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,pwd"`
}

func (h *UserHandler) PutMyPassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	userID := c.GetString(middleware.CtxUserID)
	if err := h.ChangePassword.Execute(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Password changed successfully"}, "password changed")
}
