package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/HiI2O/lunch-hub/internal/application"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
	"github.com/HiI2O/lunch-hub/pkg/helpers"
	"github.com/HiI2O/lunch-hub/pkg/response"
	"github.com/HiI2O/lunch-hub/pkg/validation"
)

// AuthHandler serves the public auth endpoints. The refresh token rides
// an HTTP-only cookie scoped to these routes; the response body only
// ever carries the access token.
type AuthHandler struct {
	Login          *application.LoginUseCase
	Logout         *application.LogoutUseCase
	Refresh        *application.RefreshTokenUseCase
	SignUp         *application.SelfSignUpUseCase
	Activate       *application.ActivateUserUseCase
	ForgotPassword *application.RequestPasswordResetUseCase
	ResetPassword  *application.ResetPasswordUseCase
	Sessions       repository.SessionRepository
	Cookies        *helpers.CookieManager
	Logger         *logrus.Logger
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) PostLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	result, err := h.Login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	h.Cookies.SetRefreshToken(c, result.RefreshToken)
	response.JSON(c, http.StatusOK, gin.H{
		"accessToken": result.AccessToken,
		"user":        result.User,
	}, "logged in")
}

func (h *AuthHandler) PostLogout(c *gin.Context) {
	// A missing or unknown cookie still logs out; only the session
	// cleanup is skipped.
	if refreshToken, err := h.Cookies.RefreshToken(c); err == nil && refreshToken != "" {
		session, err := h.Sessions.FindByRefreshToken(c.Request.Context(), refreshToken)
		if err == nil && session != nil {
			if err := h.Logout.Execute(c.Request.Context(), session.ID()); err != nil {
				writeDomainError(c, h.Logger, err)
				return
			}
		}
	}
	h.Cookies.Clear(c)
	response.JSON(c, http.StatusOK, gin.H{"message": "Logged out"}, "logged out")
}

func (h *AuthHandler) PostRefresh(c *gin.Context) {
	refreshToken, err := h.Cookies.RefreshToken(c)
	if err != nil || refreshToken == "" {
		response.Fail(c, http.StatusBadRequest, "Refresh token is required", nil)
		return
	}
	accessToken, err := h.Refresh.Execute(c.Request.Context(), refreshToken)
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"accessToken": accessToken}, "token refreshed")
}

type signupRequest struct {
	Email string `json:"email" binding:"required,email"`
	Pin   string `json:"pin" binding:"required"`
}

func (h *AuthHandler) PostSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.SignUp.Execute(c.Request.Context(), req.Email, req.Pin); err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{"message": "Invitation email sent"}, "signup accepted")
}

type activateRequest struct {
	Token       string `json:"token" binding:"required"`
	Password    string `json:"password" binding:"required,pwd"`
	DisplayName string `json:"displayName" binding:"required,min=1,max=50"`
}

func (h *AuthHandler) PostActivate(c *gin.Context) {
	var req activateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	result, err := h.Activate.Execute(c.Request.Context(), req.Token, req.Password, req.DisplayName)
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	h.Cookies.SetRefreshToken(c, result.RefreshToken)
	response.JSON(c, http.StatusOK, gin.H{
		"accessToken": result.AccessToken,
		"user":        result.User,
	}, "account activated")
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AuthHandler) PostForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.ForgotPassword.Execute(c.Request.Context(), req.Email); err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "If the email exists, a reset link has been sent"}, "reset requested")
}

type resetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,pwd"`
}

func (h *AuthHandler) PostResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.ResetPassword.Execute(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Password has been reset"}, "password reset")
}
