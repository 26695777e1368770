package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"rehla/internal/models/db_models"
	"rehla/internal/models/request_models"
	"rehla/internal/repositories"
	"rehla/pkg/utils"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, userID string, req request_models.CreateBookingRequest) (*db_models.Booking, error)
	CancelBooking(ctx context.Context, userID string, bookingID string) error
	CheckOutBooking(ctx context.Context, userID string, bookingID string) error
	GetBookingByID(ctx context.Context, bookingID string) (*db_models.Booking, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]db_models.Booking, error)
	ListBookingsByPlace(ctx context.Context, adminID string, placeID string) ([]db_models.Booking, error)
	ListBookingsByAdmin(ctx context.Context, adminID string) ([]db_models.Booking, error)
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	placeRepo   repositories.PlaceRepository
}

func NewBookingService(bookingRepo repositories.BookingRepository, placeRepo repositories.PlaceRepository) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		placeRepo:   placeRepo,
	}
}

// CreateBooking reserves capacity before the booking row exists. For guest
// houses the room decrement and availability check happen atomically inside
// the repository; a booking is only written after the rooms are held.
func (s *BookingService) CreateBooking(ctx context.Context, userID string, req request_models.CreateBookingRequest) (*db_models.Booking, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	placeID, err := uuid.Parse(req.PlaceID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	place, err := s.placeRepo.GetByID(ctx, req.PlaceID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}
	if req.BookingType != place.Type {
		return nil, utils.ErrInvalidInput
	}

	booking := &db_models.Booking{
		PlaceID:     placeID,
		UserID:      uid,
		AdminID:     place.CreatedBy,
		BookingType: req.BookingType,
		Status:      db_models.BookingStatusActive,
	}

	switch req.BookingType {
	case db_models.BookingTypeGuestHouse:
		if err := s.fillGuestHouseBooking(ctx, booking, place, req); err != nil {
			return nil, err
		}
	case db_models.BookingTypeRestaurant:
		if err := fillRestaurantBooking(booking, place, req); err != nil {
			return nil, err
		}
	default:
		return nil, utils.ErrInvalidInput
	}

	if _, err := s.bookingRepo.CreateBooking(ctx, booking); err != nil {
		// The rooms were already held; hand them back so the failed insert
		// does not leak capacity.
		if booking.BookingType == db_models.BookingTypeGuestHouse {
			if relErr := s.placeRepo.ReleaseRooms(ctx, placeID, booking.NumberOfRooms); relErr != nil {
				log.Printf("failed to release %d room(s) on place %s after booking insert error: %v",
					booking.NumberOfRooms, placeID, relErr)
			}
		}
		return nil, utils.ErrDatabaseError
	}

	return booking, nil
}

func (s *BookingService) fillGuestHouseBooking(ctx context.Context, booking *db_models.Booking, place *db_models.Place, req request_models.CreateBookingRequest) error {
	checkIn, err := utils.ParseISODate(req.CheckIn)
	if err != nil {
		return utils.ErrInvalidDateRange
	}
	checkOut, err := utils.ParseISODate(req.CheckOut)
	if err != nil {
		return utils.ErrInvalidDateRange
	}
	nights := utils.DaySpan(checkIn, checkOut)
	if nights < 1 {
		return utils.ErrInvalidDateRange
	}

	adults := req.Adults
	if adults < 0 {
		adults = 0
	}
	children := req.Children
	if children < 0 {
		children = 0
	}
	rooms := req.NumberOfRooms
	if rooms <= 0 {
		rooms = RoomsNeeded(adults, children)
	}

	if err := s.placeRepo.AllocateRooms(ctx, booking.PlaceID, rooms); err != nil {
		switch {
		case errors.Is(err, repositories.ErrRepoInsufficientRooms):
			return utils.ErrInsufficientCapacity
		case errors.Is(err, repositories.ErrRepoRecordNotFound):
			return utils.ErrPlaceNotFound
		default:
			return utils.ErrDatabaseError
		}
	}

	booking.CheckIn = &checkIn
	booking.CheckOut = &checkOut
	booking.NumberOfRooms = rooms
	booking.Adults = adults
	booking.Children = children
	booking.TotalPrice = place.PricePerNight * float64(nights) * float64(rooms)
	return nil
}

func fillRestaurantBooking(booking *db_models.Booking, place *db_models.Place, req request_models.CreateBookingRequest) error {
	date, err := utils.ParseISODate(req.Date)
	if err != nil {
		return utils.ErrInvalidDateRange
	}

	guests := req.NumberOfGuests
	if guests <= 0 {
		guests = 1
	}
	tables := req.NumberOfTables
	if tables <= 0 {
		tables = TablesNeeded(guests)
	}

	booking.Date = &date
	booking.Time = req.Time
	booking.NumberOfTables = tables
	booking.NumberOfGuests = guests
	booking.TotalPrice = place.PricePerTable * float64(tables)
	return nil
}

// CancelBooking returns guest house rooms to the pool exactly once. Only the
// booking owner can cancel, and only while the booking is still active.
func (s *BookingService) CancelBooking(ctx context.Context, userID string, bookingID string) error {
	return s.closeBooking(ctx, userID, bookingID, db_models.BookingStatusCancelled)
}

// CheckOutBooking releases the rooms of a completed guest house stay.
func (s *BookingService) CheckOutBooking(ctx context.Context, userID string, bookingID string) error {
	return s.closeBooking(ctx, userID, bookingID, db_models.BookingStatusCheckedOut)
}

func (s *BookingService) closeBooking(ctx context.Context, userID string, bookingID string, status string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if booking == nil {
		return utils.ErrBookingNotFound
	}
	if booking.UserID.String() != userID && booking.AdminID.String() != userID {
		return utils.ErrBookingNotFound
	}
	if booking.Status != db_models.BookingStatusActive {
		return utils.ErrInvalidInput
	}

	if booking.BookingType == db_models.BookingTypeGuestHouse {
		if err := s.placeRepo.ReleaseRooms(ctx, booking.PlaceID, booking.NumberOfRooms); err != nil {
			return utils.ErrDatabaseError
		}
	}

	booking.Status = status
	if err := s.bookingRepo.UpdateBooking(ctx, booking); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *BookingService) GetBookingByID(ctx context.Context, bookingID string) (*db_models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	return booking, nil
}

func (s *BookingService) ListBookingsByUser(ctx context.Context, userID string) ([]db_models.Booking, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

// ListBookingsByPlace restricts the per-place view to the place's owner.
func (s *BookingService) ListBookingsByPlace(ctx context.Context, adminID string, placeID string) ([]db_models.Booking, error) {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if place == nil || place.CreatedBy.String() != adminID {
		return nil, utils.ErrPlaceNotFound
	}

	bookings, err := s.bookingRepo.ListByPlace(ctx, placeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

func (s *BookingService) ListBookingsByAdmin(ctx context.Context, adminID string) ([]db_models.Booking, error) {
	bookings, err := s.bookingRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}
