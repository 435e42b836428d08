package quiz_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"pathfinders/internal/repositories"
	"pathfinders/internal/services"
)

var Module = fx.Provide(
	provideFunnelService, provideQuizStateRepo)

func provideQuizStateRepo(db *gorm.DB) repositories.QuizStateRepository {
	return repositories.NewQuizStateRepository(db)
}

func provideFunnelService(stateRepo repositories.QuizStateRepository) services.FunnelServiceInterface {
	return services.NewFunnelService(stateRepo)
}
