package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rehla/internal/models/request_models"
	"rehla/internal/services"
	"rehla/pkg/middleware"
	"rehla/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{accountService: accountService}
}

func (ctl *AccountController) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", ctl.SignUp)
		auth.POST("/login", ctl.Login)
	}

	account := rg.Group("/account", middleware.JWTAuthMiddleware())
	{
		account.GET("/me", ctl.GetProfile)
	}
}

func (ctl *AccountController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	token, err := ctl.accountService.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"token": token}, "Account created")
}

func (ctl *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	token, err := ctl.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"token": token}, "Logged in")
}

func (ctl *AccountController) GetProfile(c *gin.Context) {
	account, err := ctl.accountService.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"id":    account.ID.String(),
		"name":  account.Name,
		"email": account.Email,
		"role":  account.Role,
	}, "")
}
