package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rehla/internal/models/request_models"
	"rehla/internal/services"
	"rehla/pkg/middleware"
	"rehla/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{bookingService: bookingService}
}

func (ctl *BookingController) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings", middleware.JWTAuthMiddleware())
	{
		bookings.POST("", ctl.CreateBooking)
		bookings.GET("", ctl.ListMyBookings)
		bookings.GET("/:id", ctl.GetBooking)
		bookings.POST("/:id/cancel", ctl.CancelBooking)
		bookings.POST("/:id/checkout", ctl.CheckOutBooking)
	}

	admin := rg.Group("/admin/bookings", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	{
		admin.GET("", ctl.ListAdminBookings)
		admin.GET("/place/:id", ctl.ListPlaceBookings)
	}
}

func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	booking, err := ctl.bookingService.CreateBooking(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking created")
}

func (ctl *BookingController) ListMyBookings(c *gin.Context) {
	bookings, err := ctl.bookingService.ListBookingsByUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bookings, "")
}

func (ctl *BookingController) GetBooking(c *gin.Context) {
	booking, err := ctl.bookingService.GetBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "")
}

func (ctl *BookingController) CancelBooking(c *gin.Context) {
	if err := ctl.bookingService.CancelBooking(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Booking cancelled")
}

func (ctl *BookingController) CheckOutBooking(c *gin.Context) {
	if err := ctl.bookingService.CheckOutBooking(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Booking checked out")
}

func (ctl *BookingController) ListPlaceBookings(c *gin.Context) {
	bookings, err := ctl.bookingService.ListBookingsByPlace(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bookings, "")
}

func (ctl *BookingController) ListAdminBookings(c *gin.Context) {
	bookings, err := ctl.bookingService.ListBookingsByAdmin(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bookings, "")
}
