package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rehla/internal/models/request_models"
	"rehla/internal/services"
	"rehla/pkg/middleware"
	"rehla/pkg/utils"
)

type PlaceController struct {
	placeService services.PlaceServiceInterface
}

func NewPlaceController(placeService services.PlaceServiceInterface) *PlaceController {
	return &PlaceController{placeService: placeService}
}

func (ctl *PlaceController) RegisterRoutes(rg *gin.RouterGroup) {
	places := rg.Group("/places")
	{
		places.GET("", ctl.ListPlaces)
		places.GET("/:id", ctl.GetPlace)
	}

	admin := rg.Group("/places", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	{
		admin.POST("", ctl.CreatePlace)
		admin.PUT("/:id", ctl.UpdatePlace)
		admin.DELETE("/:id", ctl.DeletePlace)
	}
}

func (ctl *PlaceController) ListPlaces(c *gin.Context) {
	places, err := ctl.placeService.ListPlaces(c.Request.Context(), c.Query("type"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, places, "")
}

func (ctl *PlaceController) GetPlace(c *gin.Context) {
	place, err := ctl.placeService.GetPlaceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, place, "")
}

func (ctl *PlaceController) CreatePlace(c *gin.Context) {
	var req request_models.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	place, err := ctl.placeService.CreatePlace(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, place, "Place created")
}

func (ctl *PlaceController) UpdatePlace(c *gin.Context) {
	var req request_models.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := ctl.placeService.UpdatePlace(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Place updated")
}

func (ctl *PlaceController) DeletePlace(c *gin.Context) {
	if err := ctl.placeService.DeletePlace(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Place deleted")
}
