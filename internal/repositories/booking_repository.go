package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rehla/internal/models/db_models"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *db_models.Booking) (uuid.UUID, error)
	UpdateBooking(ctx context.Context, booking *db_models.Booking) error
	DeleteBooking(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.Booking, error)
	ListByPlace(ctx context.Context, placeID string) ([]db_models.Booking, error)
	ListByAdmin(ctx context.Context, adminID string) ([]db_models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) CreateBooking(ctx context.Context, booking *db_models.Booking) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return uuid.Nil, err
	}
	return booking.ID, nil
}

func (r *bookingRepository) UpdateBooking(ctx context.Context, booking *db_models.Booking) error {
	result := r.db.WithContext(ctx).Save(booking)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookingRepository) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Booking{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).Preload("Place").First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	if err := r.db.WithContext(ctx).Preload("Place").Where("user_id = ?", userID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListByPlace(ctx context.Context, placeID string) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	if err := r.db.WithContext(ctx).Where("place_id = ?", placeID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListByAdmin(ctx context.Context, adminID string) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	if err := r.db.WithContext(ctx).Preload("Place").Where("admin_id = ?", adminID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
