package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
	"pathfinders/internal/models/response_models"
	"pathfinders/internal/repositories"
	"pathfinders/pkg/utils"

	dbm "pathfinders/internal/models/db_models"
)

type StripeConfig struct {
	SecretKey     string // sk_...
	WebhookSecret string // whsec_..., signs webhook payloads
	SuccessURL    string // e.g. https://app.pathfinders.dev/offer?session_id={CHECKOUT_SESSION_ID}
	CancelURL     string // e.g. https://app.pathfinders.dev/offer?cancelled=1
	ProviderName  string // "stripe" (stored on Transaction.Provider)
}

type PaymentService interface {
	ListPlans(ctx context.Context) ([]response_models.PlanResponse, error)
	CreateCheckoutForPlan(ctx context.Context, profileID uuid.UUID, planCode string) (*response_models.CreateCheckoutResponse, error)
	VerifySession(ctx context.Context, profileID uuid.UUID, sessionID string) (*response_models.VerifySessionResponse, error)
	HandleWebhook(c *gin.Context)
}

type paymentService struct {
	cfg         StripeConfig
	planRepo    repositories.PlanRepository
	txnRepo     repositories.TransactionRepository
	profileRepo repositories.ProfileRepository
	mailService IMailService
}

func NewPaymentService(
	cfg StripeConfig,
	planRepo repositories.PlanRepository,
	txnRepo repositories.TransactionRepository,
	profileRepo repositories.ProfileRepository,
	mailService IMailService,
) PaymentService {
	stripe.Key = cfg.SecretKey
	if cfg.ProviderName == "" {
		cfg.ProviderName = "stripe"
	}
	return &paymentService{
		cfg:         cfg,
		planRepo:    planRepo,
		txnRepo:     txnRepo,
		profileRepo: profileRepo,
		mailService: mailService,
	}
}

func providerTxnID(sessionID string) string {
	return fmt.Sprintf("stripe:%s", sessionID)
}

// ListPlans returns the active offers for the paywall, cheapest first.
func (p *paymentService) ListPlans(ctx context.Context) ([]response_models.PlanResponse, error) {
	plans, err := p.planRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	responses := make([]response_models.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		resp := response_models.PlanResponse{
			Code:       plan.Code,
			Name:       plan.Name,
			PriceMinor: plan.PriceMinor,
			Currency:   plan.Currency,
		}
		if plan.Description != nil {
			resp.Description = *plan.Description
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (p *paymentService) CreateCheckoutForPlan(ctx context.Context, profileID uuid.UUID, planCode string) (*response_models.CreateCheckoutResponse, error) {
	if planCode == "" {
		planCode = "lifetime"
	}
	plan, err := p.planRepo.FindActiveByCode(ctx, planCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	if plan.PriceMinor <= 0 || plan.StripePriceID == "" {
		return nil, fmt.Errorf("plan %s is not billable", planCode)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(profileID.String()),
		SuccessURL:        stripe.String(p.cfg.SuccessURL),
		CancelURL:         stripe.String(p.cfg.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(plan.StripePriceID),
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.AddMetadata("user_id", profileID.String())
	params.AddMetadata("plan_code", plan.Code)

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPaymentProvider, err)
	}
	if sess.URL == "" {
		return nil, fmt.Errorf("%w: no checkout URL", utils.ErrPaymentProvider)
	}

	// Record the pending transaction so the webhook can resolve it later.
	meta := map[string]any{
		"plan_id":   plan.ID,
		"plan_code": plan.Code,
	}
	metaBytes, _ := json.Marshal(meta)
	txn := &dbm.Transaction{
		ProfileID:     profileID,
		AmountMinor:   plan.PriceMinor,
		Currency:      plan.Currency,
		Status:        dbm.TxnStatusPending,
		Provider:      p.cfg.ProviderName,
		ProviderTxnID: providerTxnID(sess.ID),
		Metadata:      metaBytes,
	}
	if err := p.txnRepo.Insert(ctx, txn); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	return &response_models.CreateCheckoutResponse{
		SessionID:    sess.ID,
		Amount:       plan.PriceMinor,
		PaymentURL:   sess.URL,
		ProviderName: p.cfg.ProviderName,
	}, nil
}

// VerifySession is the success-redirect path: the client comes back with the
// sessionID and we confirm payment directly with Stripe instead of waiting
// for the webhook.
func (p *paymentService) VerifySession(ctx context.Context, profileID uuid.UUID, sessionID string) (*response_models.VerifySessionResponse, error) {
	sess, err := session.Get(sessionID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPaymentProvider, err)
	}
	if sess.ClientReferenceID != profileID.String() {
		return nil, utils.ErrInvalidInput
	}
	if sess.Status == stripe.CheckoutSessionStatusExpired {
		p.failPending(ctx, sess.ID)
		return &response_models.VerifySessionResponse{Paid: false, IsPremium: false}, nil
	}
	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return &response_models.VerifySessionResponse{Paid: false, IsPremium: false}, nil
	}

	if err := p.settle(ctx, sess.ID, profileID.String()); err != nil {
		return nil, err
	}
	return &response_models.VerifySessionResponse{Paid: true, IsPremium: true}, nil
}

func (p *paymentService) HandleWebhook(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("Error reading webhook body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	event, err := webhook.ConstructEvent(rawBody, c.GetHeader("Stripe-Signature"), p.cfg.WebhookSecret)
	if err != nil {
		log.Printf("Error verifying webhook signature: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	if event.Type != "checkout.session.completed" {
		// Not a payment completion; ack so Stripe stops retrying.
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		log.Printf("Error parsing webhook session: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
		return
	}

	if err := p.settle(c.Request.Context(), sess.ID, sess.ClientReferenceID); err != nil {
		log.Printf("webhook: failed to settle session %s: %v", sess.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}

// failPending closes the local transaction for a session that can no longer
// be paid. Best effort, and never downgrades a paid transaction.
func (p *paymentService) failPending(ctx context.Context, sessionID string) {
	txn, err := p.txnRepo.FindByProviderTxnID(ctx, providerTxnID(sessionID))
	if err != nil || txn == nil {
		return
	}
	if txn.Status != dbm.TxnStatusPending {
		return
	}
	if err := p.txnRepo.MarkFailed(ctx, txn); err != nil {
		log.Printf("could not mark transaction %s failed: %v", txn.ProviderTxnID, err)
	}
}

// settle marks the local transaction paid and activates the premium
// entitlement. Idempotent: an already-paid transaction is left alone, so
// webhook retries and the verify path can race safely.
func (p *paymentService) settle(ctx context.Context, sessionID, profileID string) error {
	txn, err := p.txnRepo.FindByProviderTxnID(ctx, providerTxnID(sessionID))
	if err != nil {
		return utils.ErrDatabaseError
	}
	if txn == nil {
		// Ack unknown sessions to avoid a retry storm, but log for
		// investigation.
		log.Printf("settle: transaction not found for session %s", sessionID)
		return nil
	}

	firstSettle := txn.Status != dbm.TxnStatusPaid
	if firstSettle {
		if err := p.txnRepo.MarkPaid(ctx, txn); err != nil {
			return utils.ErrDatabaseError
		}
	}
	if err := p.profileRepo.SetPremium(ctx, profileID); err != nil {
		return utils.ErrDatabaseError
	}

	if firstSettle {
		p.notifyUnlocked(ctx, profileID)
	}
	return nil
}

// notifyUnlocked sends the purchase confirmation. Best effort: the
// entitlement is already active, so mail problems only get logged.
func (p *paymentService) notifyUnlocked(ctx context.Context, profileID string) {
	profile, err := p.profileRepo.FindById(ctx, profileID)
	if err != nil || profile == nil {
		log.Printf("settle: could not load profile %s for confirmation mail: %v", profileID, err)
		return
	}
	err = p.mailService.SendMailToNotifyUser(
		profile.Email,
		"Premium unlocked",
		"Thanks for your purchase. Your account now has full access to the career assistant and the complete library.",
		"Open the assistant",
		p.cfg.SuccessURL,
	)
	if err != nil {
		log.Printf("settle: confirmation mail to %s failed: %v", profile.Email, err)
	}
}
