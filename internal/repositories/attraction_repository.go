package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rehla/internal/models/db_models"
)

type AttractionRepository interface {
	CreateAttraction(ctx context.Context, attraction *db_models.Attraction) (uuid.UUID, error)
	UpdateAttraction(ctx context.Context, attraction *db_models.Attraction) error
	DeleteAttraction(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Attraction, error)
	List(ctx context.Context) ([]db_models.Attraction, error)
	FindByCity(ctx context.Context, city string) ([]db_models.Attraction, error)
	ListByIDs(ctx context.Context, ids []string) ([]db_models.Attraction, error)
}

type attractionRepository struct {
	db *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) AttractionRepository {
	return &attractionRepository{db: db}
}

func (r *attractionRepository) CreateAttraction(ctx context.Context, attraction *db_models.Attraction) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(attraction).Error; err != nil {
		return uuid.Nil, err
	}
	return attraction.ID, nil
}

func (r *attractionRepository) UpdateAttraction(ctx context.Context, attraction *db_models.Attraction) error {
	result := r.db.WithContext(ctx).Save(attraction)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *attractionRepository) DeleteAttraction(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Attraction{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *attractionRepository) GetByID(ctx context.Context, id string) (*db_models.Attraction, error) {
	var attraction db_models.Attraction
	err := r.db.WithContext(ctx).First(&attraction, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attraction, nil
}

func (r *attractionRepository) List(ctx context.Context) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	if err := r.db.WithContext(ctx).Find(&attractions).Error; err != nil {
		return nil, err
	}
	return attractions, nil
}

// FindByCity matches the destination city case-insensitively and exactly.
func (r *attractionRepository) FindByCity(ctx context.Context, city string) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	if err := r.db.WithContext(ctx).Where("LOWER(city) = LOWER(?)", city).Find(&attractions).Error; err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) ListByIDs(ctx context.Context, ids []string) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&attractions).Error; err != nil {
		return nil, err
	}
	return attractions, nil
}
