package db_fx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"pathfinders/internal/infra"
	"pathfinders/internal/models/db_models"
)

var Module = fx.Provide(
	provideDB)

func provideDB() *gorm.DB {
	db := infra.InitPostgresql()

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatalf("Failed to enable pgvector extension: %v", err)
	}

	err := db.AutoMigrate(
		&db_models.Profile{},
		&db_models.QuizState{},
		&db_models.Transaction{},
		&db_models.Plan{},
		&db_models.LibraryItem{},
		&db_models.LibraryEmbedding{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}
