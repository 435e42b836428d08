package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"pathfinders/internal/models/db_models"
)

type ILibraryEmbeddingRepository interface {
	Upsert(embedding db_models.LibraryEmbedding) error
	FindSimilar(vector pgvector.Vector, excludeItemID string) ([]SimilarItem, error)
}

// SimilarItem pairs an embedding row with its cosine similarity to the query.
type SimilarItem struct {
	db_models.LibraryEmbedding
	Similarity float64
}

type libraryEmbeddingRepository struct {
	db *gorm.DB
}

func NewLibraryEmbeddingRepository(db *gorm.DB) ILibraryEmbeddingRepository {
	return &libraryEmbeddingRepository{
		db: db,
	}
}

func (l *libraryEmbeddingRepository) Upsert(embedding db_models.LibraryEmbedding) error {
	return l.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "summary", "tags", "embedding"}),
		}).
		Create(&embedding).Error
}

func (l *libraryEmbeddingRepository) FindSimilar(vector pgvector.Vector, excludeItemID string) ([]SimilarItem, error) {
	var results []SimilarItem

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM library_embeddings
        WHERE item_id <> $2
          AND (1 - (embedding <=> $1)) > 0.7  -- Only return results with >70% similarity
        ORDER BY embedding <=> $1  -- Cosine distance (closer to 0 is better)
        LIMIT 5
    `

	err := l.db.Raw(query, vecStr, excludeItemID).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
