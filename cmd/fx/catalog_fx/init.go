package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"rehla/internal/api/controllers"
	"rehla/internal/repositories"
	"rehla/internal/services"
	"rehla/pkg/utils"
)

// Module wires the place and attraction catalog: repositories, services and
// their controllers.
var Module = fx.Provide(
	providePlaceRepo, provideAttractionRepo, provideEmbeddingRepo,
	providePlaceService, provideAttractionService,
	providePlaceController, provideAttractionController)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func provideAttractionRepo(db *gorm.DB) repositories.AttractionRepository {
	return repositories.NewAttractionRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.AttractionEmbeddingRepository {
	return repositories.NewAttractionEmbeddingRepository(db)
}

func providePlaceService(placeRepo repositories.PlaceRepository) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo)
}

func provideAttractionService(
	attractionRepo repositories.AttractionRepository,
	embeddingRepo repositories.AttractionEmbeddingRepository,
	aiClient utils.AIClientInterface,
) services.AttractionServiceInterface {
	return services.NewAttractionService(attractionRepo, embeddingRepo, aiClient)
}

func providePlaceController(placeService services.PlaceServiceInterface) *controllers.PlaceController {
	return controllers.NewPlaceController(placeService)
}

func provideAttractionController(attractionService services.AttractionServiceInterface) *controllers.AttractionController {
	return controllers.NewAttractionController(attractionService)
}
