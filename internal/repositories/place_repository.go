package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rehla/internal/models/db_models"
)

type PlaceRepository interface {
	CreatePlace(ctx context.Context, place *db_models.Place) (uuid.UUID, error)
	UpdatePlace(ctx context.Context, place *db_models.Place) error
	DeletePlace(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Place, error)
	List(ctx context.Context) ([]db_models.Place, error)
	ListByType(ctx context.Context, placeType string) ([]db_models.Place, error)
	FindByTypes(ctx context.Context, types []string) ([]db_models.Place, error)

	AllocateRooms(ctx context.Context, placeID uuid.UUID, rooms int) error
	ReleaseRooms(ctx context.Context, placeID uuid.UUID, rooms int) error
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) CreatePlace(ctx context.Context, place *db_models.Place) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(place).Error; err != nil {
		return uuid.Nil, err
	}
	return place.ID, nil
}

func (r *placeRepository) UpdatePlace(ctx context.Context, place *db_models.Place) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(place)
		if result.Error != nil {
			return fmt.Errorf("failed to update place: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *placeRepository) DeletePlace(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Place{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *placeRepository) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) List(ctx context.Context) ([]db_models.Place, error) {
	var places []db_models.Place
	if err := r.db.WithContext(ctx).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) ListByType(ctx context.Context, placeType string) ([]db_models.Place, error) {
	var places []db_models.Place
	if err := r.db.WithContext(ctx).Where("type = ?", placeType).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

// FindByTypes is the catalog query the generation context is built from.
// Results come back in catalog natural order; callers apply their own caps.
func (r *placeRepository) FindByTypes(ctx context.Context, types []string) ([]db_models.Place, error) {
	var places []db_models.Place
	if err := r.db.WithContext(ctx).Where("type IN ?", types).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

// AllocateRooms performs the capacity check and decrement as one serialized
// read-check-write: the place row is locked for the duration of the
// transaction so two concurrent bookings cannot both pass a stale check.
func (r *placeRepository) AllocateRooms(ctx context.Context, placeID uuid.UUID, rooms int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var place db_models.Place
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&place, "id = ?", placeID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRepoRecordNotFound
			}
			return err
		}

		if !place.AllocateRooms(rooms) {
			return ErrRepoInsufficientRooms
		}

		return tx.Model(&db_models.Place{}).
			Where("id = ?", placeID).
			Updates(map[string]interface{}{
				"rooms":        place.Rooms,
				"is_available": place.IsAvailable,
			}).Error
	})
}

func (r *placeRepository) ReleaseRooms(ctx context.Context, placeID uuid.UUID, rooms int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var place db_models.Place
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&place, "id = ?", placeID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRepoRecordNotFound
			}
			return err
		}

		place.ReleaseRooms(rooms)

		return tx.Model(&db_models.Place{}).
			Where("id = ?", placeID).
			Updates(map[string]interface{}{
				"rooms":        place.Rooms,
				"is_available": place.IsAvailable,
			}).Error
	})
}
