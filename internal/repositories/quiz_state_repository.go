package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"pathfinders/internal/models/db_models"
)

type QuizStateRepository interface {
	Get(ctx context.Context, profileID uuid.UUID) (*db_models.QuizState, error)
	Save(ctx context.Context, state *db_models.QuizState) error
	Delete(ctx context.Context, profileID uuid.UUID) error
}

type quizStateRepository struct {
	db *gorm.DB
}

func NewQuizStateRepository(db *gorm.DB) QuizStateRepository {
	return &quizStateRepository{
		db: db,
	}
}

func (q *quizStateRepository) Get(ctx context.Context, profileID uuid.UUID) (*db_models.QuizState, error) {
	var state db_models.QuizState
	err := q.db.WithContext(ctx).First(&state, "profile_id = ?", profileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

// Save upserts on the profile id: last write wins, no merge semantics.
func (q *quizStateRepository) Save(ctx context.Context, state *db_models.QuizState) error {
	return q.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"identity_tag", "step", "answers", "completed_at", "updated_at"}),
		}).
		Create(state).Error
}

func (q *quizStateRepository) Delete(ctx context.Context, profileID uuid.UUID) error {
	return q.db.WithContext(ctx).
		Unscoped().
		Where("profile_id = ?", profileID).
		Delete(&db_models.QuizState{}).Error
}
