package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rehla/internal/models/request_models"
	"rehla/internal/services"
	"rehla/pkg/middleware"
	"rehla/pkg/utils"
)

type AttractionController struct {
	attractionService services.AttractionServiceInterface
}

func NewAttractionController(attractionService services.AttractionServiceInterface) *AttractionController {
	return &AttractionController{attractionService: attractionService}
}

func (ctl *AttractionController) RegisterRoutes(rg *gin.RouterGroup) {
	attractions := rg.Group("/attractions")
	{
		attractions.GET("", ctl.ListAttractions)
		attractions.GET("/:id", ctl.GetAttraction)
		attractions.POST("/search", ctl.SearchAttractions)
	}

	admin := rg.Group("/attractions", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	{
		admin.POST("", ctl.CreateAttraction)
		admin.PUT("/:id", ctl.UpdateAttraction)
		admin.DELETE("/:id", ctl.DeleteAttraction)
	}
}

func (ctl *AttractionController) ListAttractions(c *gin.Context) {
	attractions, err := ctl.attractionService.ListAttractions(c.Request.Context(), c.Query("city"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attractions, "")
}

func (ctl *AttractionController) GetAttraction(c *gin.Context) {
	attraction, err := ctl.attractionService.GetAttractionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attraction, "")
}

func (ctl *AttractionController) SearchAttractions(c *gin.Context) {
	var req request_models.SearchAttractionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	attractions, err := ctl.attractionService.SearchAttractions(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attractions, "")
}

func (ctl *AttractionController) CreateAttraction(c *gin.Context) {
	var req request_models.CreateAttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	attraction, err := ctl.attractionService.CreateAttraction(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attraction, "Attraction created")
}

func (ctl *AttractionController) UpdateAttraction(c *gin.Context) {
	var req request_models.CreateAttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := ctl.attractionService.UpdateAttraction(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Attraction updated")
}

func (ctl *AttractionController) DeleteAttraction(c *gin.Context) {
	if err := ctl.attractionService.DeleteAttraction(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Attraction deleted")
}
