package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"rehla/internal/api/controllers"
	"rehla/internal/repositories"
	"rehla/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService, provideBookingController)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(bookingRepo repositories.BookingRepository, placeRepo repositories.PlaceRepository) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, placeRepo)
}

func provideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
