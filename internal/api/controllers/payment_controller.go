package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pathfinders/internal/models/request_models"
	"pathfinders/internal/services"
	"pathfinders/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// ListPlans godoc
// @Summary List purchasable plans
// @Description Active one-time offers for the paywall, cheapest first.
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /payments/plans [get]
func (p *PaymentController) ListPlans(c *gin.Context) {
	plans, err := p.paymentService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched")
}

// CreateCheckout godoc
// @Summary Start a checkout session
// @Description Creates a one-time payment session for the chosen plan and returns the hosted payment URL.
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateCheckoutRequest true "Plan selection"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/checkout [post]
func (p *PaymentController) CreateCheckout(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}

	var req request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	checkout, err := p.paymentService.CreateCheckoutForPlan(c.Request.Context(), profileID, req.PlanCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout session created")
}

// VerifySession godoc
// @Summary Verify a checkout session
// @Description Confirms payment after the redirect back and unlocks premium when the session is paid.
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.VerifySessionRequest true "Session id from the redirect"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/verify [post]
func (p *PaymentController) VerifySession(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}

	var req request_models.VerifySessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	verified, err := p.paymentService.VerifySession(c.Request.Context(), profileID, req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, verified, "Session verified")
}

// Webhook godoc
// @Summary Stripe webhook receiver
// @Description Signature-verified event intake; settles paid checkout sessions.
// @Tags Payments
// @Accept json
// @Produce json
// @Router /payments/webhook [post]
func (p *PaymentController) Webhook(c *gin.Context) {
	p.paymentService.HandleWebhook(c)
}
