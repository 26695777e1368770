package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rehla/internal/models/request_models"
	"rehla/internal/services"
	"rehla/pkg/middleware"
	"rehla/pkg/utils"
)

type ProgramController struct {
	programService services.ProgramServiceInterface
}

func NewProgramController(programService services.ProgramServiceInterface) *ProgramController {
	return &ProgramController{programService: programService}
}

func (ctl *ProgramController) RegisterRoutes(rg *gin.RouterGroup) {
	programs := rg.Group("/programs", middleware.JWTAuthMiddleware())
	{
		programs.POST("", ctl.SaveProgram)
		programs.GET("", ctl.ListMyPrograms)
		programs.GET("/:id", ctl.GetProgram)
		programs.DELETE("/:id", ctl.DeleteProgram)
	}
}

func (ctl *ProgramController) SaveProgram(c *gin.Context) {
	var req request_models.SaveProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	program, err := ctl.programService.SaveProgram(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, program, "Program saved")
}

func (ctl *ProgramController) ListMyPrograms(c *gin.Context) {
	programs, err := ctl.programService.ListProgramsByUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, programs, "")
}

func (ctl *ProgramController) GetProgram(c *gin.Context) {
	program, err := ctl.programService.GetProgramByID(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, program, "")
}

func (ctl *ProgramController) DeleteProgram(c *gin.Context) {
	if err := ctl.programService.DeleteProgram(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Program deleted")
}
