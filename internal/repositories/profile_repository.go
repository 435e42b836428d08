package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"pathfinders/internal/models/db_models"
)

type ProfileRepository interface {
	Insert(ctx context.Context, profile *db_models.Profile) error
	FindById(ctx context.Context, id string) (*db_models.Profile, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Profile, error)
	SetPremium(ctx context.Context, id string) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

func (p *profileRepository) Insert(ctx context.Context, profile *db_models.Profile) error {
	return p.db.WithContext(ctx).Create(profile).Error
}

func (p *profileRepository) FindById(ctx context.Context, id string) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := p.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (p *profileRepository) FindByEmail(ctx context.Context, email string) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := p.db.WithContext(ctx).First(&profile, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// SetPremium flips the entitlement on. Idempotent: PremiumSince is only set
// the first time.
func (p *profileRepository) SetPremium(ctx context.Context, id string) error {
	now := time.Now().Unix()
	return p.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("id = ? AND is_premium = FALSE", id).
		Updates(map[string]interface{}{"is_premium": true, "premium_since": now}).Error
}
