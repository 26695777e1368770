package itinerary_fx

import (
	"go.uber.org/fx"

	"rehla/internal/api/controllers"
	"rehla/internal/repositories"
	"rehla/internal/services"
	"rehla/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryService, provideItineraryController)

func provideItineraryService(
	placeRepo repositories.PlaceRepository,
	attractionRepo repositories.AttractionRepository,
	aiClient utils.AIClientInterface,
	repairer utils.JSONRepairer,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(placeRepo, attractionRepo, aiClient, repairer)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
