package program_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"rehla/internal/api/controllers"
	"rehla/internal/repositories"
	"rehla/internal/services"
)

var Module = fx.Provide(
	provideProgramRepo, provideProgramService, provideProgramController)

func provideProgramRepo(db *gorm.DB) repositories.ProgramRepository {
	return repositories.NewProgramRepository(db)
}

func provideProgramService(programRepo repositories.ProgramRepository) services.ProgramServiceInterface {
	return services.NewProgramService(programRepo)
}

func provideProgramController(programService services.ProgramServiceInterface) *controllers.ProgramController {
	return controllers.NewProgramController(programService)
}
