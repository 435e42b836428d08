package library_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"pathfinders/internal/repositories"
	"pathfinders/internal/services"
	"pathfinders/pkg/utils"
)

var Module = fx.Provide(
	provideLibraryService, provideLibraryRepo, provideLibraryEmbeddingRepo)

func provideLibraryRepo(db *gorm.DB) repositories.LibraryRepository {
	return repositories.NewLibraryRepository(db)
}

func provideLibraryEmbeddingRepo(db *gorm.DB) repositories.ILibraryEmbeddingRepository {
	return repositories.NewLibraryEmbeddingRepository(db)
}

func provideLibraryService(
	libraryRepo repositories.LibraryRepository,
	embeddingRepo repositories.ILibraryEmbeddingRepository,
	aiClient utils.CompletionClientInterface,
) services.LibraryServiceInterface {
	return services.NewLibraryService(libraryRepo, embeddingRepo, aiClient)
}
