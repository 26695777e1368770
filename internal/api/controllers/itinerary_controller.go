package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rehla/internal/models/request_models"
	"rehla/internal/services"
	"rehla/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

func (ctl *ItineraryController) RegisterRoutes(rg *gin.RouterGroup) {
	travel := rg.Group("/travel")
	{
		travel.POST("/generate-program", ctl.GenerateProgram)
	}
}

// GenerateProgram runs the full plan-generation pipeline for one trip request.
func (ctl *ItineraryController) GenerateProgram(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	itinerary, err := ctl.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated")
}
