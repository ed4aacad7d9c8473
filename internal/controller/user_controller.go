package controller

import (
	"recruiter_hub_backend/internal/service"
	"recruiter_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary Current user profile
// @Description Returns the caller's profile with activity stats, recent point history and kudos received.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/users/me [get]
func (c *UserController) Me(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.UserService.Me(user.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// @Summary Update profile
// @Description Updates the caller's name, bio, image or expertise tags.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body service.ProfileUpdateInput true "Fields to change"
// @Success 200 {object} util.Response
// @Router /api/users/me [patch]
func (c *UserController) UpdateMe(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.ProfileUpdateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.UserService.UpdateProfile(user.UserID, input)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, updated)
}

// @Summary User directory
// @Description Lists users for the team directory, filterable by name and expertise.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against name and email"
// @Param expertise query string false "Expertise tag filter"
// @Success 200 {object} util.Response
// @Router /api/users [get]
func (c *UserController) Directory(ctx *gin.Context) {
	users, err := c.UserService.Directory(ctx.Query("search"), ctx.Query("expertise"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, users)
}
