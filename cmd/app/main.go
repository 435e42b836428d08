package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"pathfinders/cmd/fx/account_fx"
	"pathfinders/cmd/fx/analysis_fx"
	"pathfinders/cmd/fx/controllers_fx"
	"pathfinders/cmd/fx/db_fx"
	"pathfinders/cmd/fx/library_fx"
	"pathfinders/cmd/fx/mail_fx"
	"pathfinders/cmd/fx/memcache_fx"
	"pathfinders/cmd/fx/payment_service_fx"
	"pathfinders/cmd/fx/quiz_fx"
	"pathfinders/internal/api/controllers"
	"pathfinders/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		quiz_fx.Module,
		analysis_fx.Module,
		account_fx.Module,
		payment_service_fx.Module,
		library_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	quizController *controllers.QuizController,
	chatController *controllers.ChatController,
	accountController *controllers.AccountController,
	paymentController *controllers.PaymentController,
	libraryController *controllers.LibraryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, quizController, chatController, accountController, paymentController, libraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	quizController *controllers.QuizController,
	chatController *controllers.ChatController,
	accountController *controllers.AccountController,
	paymentController *controllers.PaymentController,
	libraryController *controllers.LibraryController) {

	api := r.Group("/api")

	// Public: the funnel analyzes before any sign-in, webhooks authenticate
	// by signature.
	api.POST("/quiz/analyze", quizController.Analyze)
	api.POST("/auth/send-otp", accountController.SendOtp)
	api.POST("/auth/verify-otp", accountController.VerifyOtp)
	api.POST("/payments/webhook", paymentController.Webhook)
	api.GET("/payments/plans", paymentController.ListPlans)

	library := api.Group("/library", middleware.OptionalJWTAuthMiddleware())
	library.GET("", libraryController.List)
	library.GET("/:id", libraryController.Get)
	library.GET("/:id/related", libraryController.Related)

	auth := api.Group("", middleware.JWTAuthMiddleware())
	auth.GET("/account/me", accountController.Me)
	auth.POST("/auth/logout", accountController.Logout)

	auth.GET("/quiz/state", quizController.State)
	auth.POST("/quiz/answer", quizController.SetAnswer)
	auth.POST("/quiz/next", quizController.Next)
	auth.POST("/quiz/back", quizController.Back)
	auth.POST("/quiz/reset", quizController.Reset)
	auth.GET("/quiz/result", quizController.Result)

	auth.POST("/chat", chatController.Chat)

	auth.POST("/payments/checkout", paymentController.CreateCheckout)
	auth.POST("/payments/verify", paymentController.VerifySession)

	admin := api.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.POST("/accounts/:id/premium", accountController.UnlockPremium)
	admin.POST("/library/reindex", libraryController.Reindex)
}
