package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"pathfinders/internal/models/db_models"
)

type LibraryRepository interface {
	List(ctx context.Context) ([]db_models.LibraryItem, error)
	GetByID(ctx context.Context, id string) (*db_models.LibraryItem, error)
	ListByIDs(ctx context.Context, ids []string) ([]db_models.LibraryItem, error)
}

type libraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &libraryRepository{
		db: db,
	}
}

func (l *libraryRepository) List(ctx context.Context) ([]db_models.LibraryItem, error) {
	var items []db_models.LibraryItem
	err := l.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (l *libraryRepository) GetByID(ctx context.Context, id string) (*db_models.LibraryItem, error) {
	var item db_models.LibraryItem
	err := l.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (l *libraryRepository) ListByIDs(ctx context.Context, ids []string) ([]db_models.LibraryItem, error) {
	var items []db_models.LibraryItem
	err := l.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
