package controller

import (
	"recruiter_hub_backend/internal/service"
	"recruiter_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService  *service.ContentService
	ProgressService *service.ProgressService
}

func NewContentController(contentService *service.ContentService, progressService *service.ProgressService) *ContentController {
	return &ContentController{ContentService: contentService, ProgressService: progressService}
}

// @Summary List content
// @Description Lists library content, most recently updated first. Defaults to published items.
// @Tags content
// @Produce json
// @Param search query string false "Match against title and description"
// @Param type query string false "Content type" Enums(document, video, checklist, wizard, playbook)
// @Param category query string false "Category filter"
// @Param status query string false "Status filter, or all" default(published)
// @Success 200 {object} util.Response
// @Router /api/content [get]
func (c *ContentController) List(ctx *gin.Context) {
	query := service.ContentListQuery{
		Search:   ctx.Query("search"),
		Type:     ctx.Query("type"),
		Category: ctx.Query("category"),
		Status:   ctx.Query("status"),
	}

	items, err := c.ContentService.List(query)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, items)
}

// @Summary Get content by id
// @Description Returns one content item, with the caller's progress when signed in.
// @Tags content
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} util.Response
// @Router /api/content/{id} [get]
func (c *ContentController) Get(ctx *gin.Context) {
	item, err := c.ContentService.Get(ctx.Param("id"), util.GetUserFromContext(ctx))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, item)
}

// @Summary Create content
// @Description Creates a content item. Admin items publish immediately; non-admin submissions land in the review queue.
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body service.ContentInput true "Content fields"
// @Success 201 {object} util.Response
// @Router /api/content [post]
func (c *ContentController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.ContentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.ContentService.Create(input, user)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, item)
}

// @Summary Update content
// @Description Updates a content item. Author or admin only; status changes are admin only.
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Param input body service.ContentUpdateInput true "Fields to change"
// @Success 200 {object} util.Response
// @Router /api/content/{id} [patch]
func (c *ContentController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.ContentUpdateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.ContentService.Update(ctx.Param("id"), input, user)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, item)
}

// @Summary Delete content
// @Description Deletes a content item and its progress rows. Author or admin only.
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Success 200 {object} util.Response
// @Router /api/content/{id} [delete]
func (c *ContentController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ContentService.Delete(ctx.Param("id"), user); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary Update progress
// @Description Upserts the caller's progress on a content item. Completing for the first time awards points.
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Param input body service.ProgressInput true "Progress fields"
// @Success 200 {object} util.Response
// @Router /api/content/{id}/progress [post]
func (c *ContentController) UpdateProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.ProgressInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.Update(user.UserID, ctx.Param("id"), input)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}
