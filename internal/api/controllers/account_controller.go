package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pathfinders/internal/models/request_models"
	"pathfinders/internal/services"
	"pathfinders/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// SendOtp godoc
// @Summary Send a one-time login code
// @Description Emails a 6-digit code. In login mode the email must belong to an existing account.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SendOtpRequest true "Email and mode"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/send-otp [post]
func (a *AccountController) SendOtp(c *gin.Context) {
	var req request_models.SendOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.SendOtp(c.Request.Context(), req.Email, req.Mode); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Verification code sent")
}

// VerifyOtp godoc
// @Summary Verify a one-time code
// @Description Exchanges a valid code for a session token, creating the profile on first sign-in.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.VerifyOtpRequest true "Email and code"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/verify-otp [post]
func (a *AccountController) VerifyOtp(c *gin.Context) {
	var req request_models.VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	login, err := a.accountService.VerifyOtp(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, login, "Signed in successfully")
}

// Me godoc
// @Summary Get the signed-in profile
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /account/me [get]
func (a *AccountController) Me(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}

	account, err := a.accountService.Me(c.Request.Context(), profileID.String())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Profile fetched")
}

// UnlockPremium godoc
// @Summary Grant premium to a profile
// @Description Support tool for comped or manually resolved purchases. Admin only.
// @Tags Accounts
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/accounts/{id}/premium [post]
func (a *AccountController) UnlockPremium(c *gin.Context) {
	if err := a.accountService.UnlockPremium(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Premium unlocked")
}

// Logout godoc
// @Summary Sign out
// @Description Clears server-side funnel progress for the identity. The client drops its token.
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}

	if err := a.accountService.Logout(c.Request.Context(), profileID.String()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Signed out")
}
