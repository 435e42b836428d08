package payment_service_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"pathfinders/internal/repositories"
	"pathfinders/internal/services"
)

var Module = fx.Provide(
	providePaymentService, providePlanRepo, provideTransactionRepo)

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func providePaymentService(
	planRepo repositories.PlanRepository,
	txnRepo repositories.TransactionRepository,
	profileRepo repositories.ProfileRepository,
	mailService services.IMailService,
) services.PaymentService {
	cfg := services.StripeConfig{
		SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		SuccessURL:    os.Getenv("STRIPE_SUCCESS_URL"),
		CancelURL:     os.Getenv("STRIPE_CANCEL_URL"),
		ProviderName:  "stripe",
	}
	return services.NewPaymentService(cfg, planRepo, txnRepo, profileRepo, mailService)
}
