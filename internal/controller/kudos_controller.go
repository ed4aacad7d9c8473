package controller

import (
	"strconv"

	"recruiter_hub_backend/internal/service"
	"recruiter_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type KudosController struct {
	KudosService *service.KudosService
}

func NewKudosController(kudosService *service.KudosService) *KudosController {
	return &KudosController{KudosService: kudosService}
}

// @Summary Recent kudos
// @Description Lists the most recent kudos across the team.
// @Tags kudos
// @Produce json
// @Param limit query int false "Max entries" default(20)
// @Success 200 {object} util.Response
// @Router /api/kudos [get]
func (c *KudosController) Recent(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	kudos, err := c.KudosService.Recent(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, kudos)
}

// @Summary Give kudos
// @Description Sends kudos to a teammate and awards them points. Self-kudos is rejected.
// @Tags kudos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body service.KudosInput true "Recipient and message"
// @Success 201 {object} util.Response
// @Router /api/kudos [post]
func (c *KudosController) Give(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.KudosInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	kudos, err := c.KudosService.Give(input, user)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, kudos)
}
