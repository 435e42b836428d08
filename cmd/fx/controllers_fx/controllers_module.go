package controllers_fx

import (
	"go.uber.org/fx"
	"pathfinders/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPaymentController),
	fx.Provide(controllers.NewLibraryController))
