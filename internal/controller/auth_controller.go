package controller

import (
	"recruiter_hub_backend/internal/service"
	"recruiter_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// @Summary Register a new account
// @Description Creates a user account. Only emails on the allowed domain are accepted when one is configured.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body service.RegisterInput true "Registration details"
// @Success 201 {object} util.Response
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var input service.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.Register(input)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// @Summary Log in
// @Description Exchanges email and password for a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body service.LoginInput true "Credentials"
// @Success 200 {object} util.Response
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var input service.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.Login(input)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
