package controller

import (
	"recruiter_hub_backend/internal/service"
	"recruiter_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentRequestController struct {
	RequestService *service.ContentRequestService
}

func NewContentRequestController(requestService *service.ContentRequestService) *ContentRequestController {
	return &ContentRequestController{RequestService: requestService}
}

// @Summary List content requests
// @Description Lists requested content topics, newest first.
// @Tags content-requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(open, in_progress, completed, declined, all) default(all)
// @Success 200 {object} util.Response
// @Router /api/content-requests [get]
func (c *ContentRequestController) List(ctx *gin.Context) {
	requests, err := c.RequestService.List(ctx.Query("status"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, requests)
}

// @Summary Request content
// @Description Files a request for content the library is missing.
// @Tags content-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body service.ContentRequestInput true "Request fields"
// @Success 201 {object} util.Response
// @Router /api/content-requests [post]
func (c *ContentRequestController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.ContentRequestInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	request, err := c.RequestService.Create(input, user)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, request)
}

// @Summary Update request status
// @Description Moves a content request through triage. Admin only.
// @Tags content-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param input body service.ContentRequestUpdateInput true "New status"
// @Success 200 {object} util.Response
// @Router /api/content-requests/{id} [patch]
func (c *ContentRequestController) UpdateStatus(ctx *gin.Context) {
	var input service.ContentRequestUpdateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	request, err := c.RequestService.UpdateStatus(ctx.Param("id"), input)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, request)
}
