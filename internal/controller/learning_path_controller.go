package controller

import (
	"recruiter_hub_backend/internal/service"
	"recruiter_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningPathController struct {
	PathService *service.LearningPathService
}

func NewLearningPathController(pathService *service.LearningPathService) *LearningPathController {
	return &LearningPathController{PathService: pathService}
}

// @Summary List learning paths
// @Description Lists paths with per-path completion rollups for the signed-in caller.
// @Tags learning-paths
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/learning-paths [get]
func (c *LearningPathController) List(ctx *gin.Context) {
	paths, err := c.PathService.List(util.GetUserFromContext(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, paths)
}

// @Summary Get a learning path
// @Description Returns a path with ordered items, per-item completion and the caller's current item.
// @Tags learning-paths
// @Produce json
// @Param id path string true "Path ID"
// @Success 200 {object} util.Response
// @Router /api/learning-paths/{id} [get]
func (c *LearningPathController) Get(ctx *gin.Context) {
	path, err := c.PathService.Get(ctx.Param("id"), util.GetUserFromContext(ctx))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, path)
}

// @Summary Create a learning path
// @Description Creates a path with an ordered content list. Admin only.
// @Tags learning-paths
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body service.PathInput true "Path fields"
// @Success 201 {object} util.Response
// @Router /api/learning-paths [post]
func (c *LearningPathController) Create(ctx *gin.Context) {
	var input service.PathInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path, err := c.PathService.Create(input)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, path)
}

// @Summary Update a learning path
// @Description Updates path metadata and replaces the item list when contentIds is given. Admin only.
// @Tags learning-paths
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Path ID"
// @Param input body service.PathUpdateInput true "Fields to change"
// @Success 200 {object} util.Response
// @Router /api/learning-paths/{id} [patch]
func (c *LearningPathController) Update(ctx *gin.Context) {
	var input service.PathUpdateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path, err := c.PathService.Update(ctx.Param("id"), input)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, path)
}

// @Summary Delete a learning path
// @Description Deletes a path and its item rows. Admin only.
// @Tags learning-paths
// @Produce json
// @Security BearerAuth
// @Param id path string true "Path ID"
// @Success 200 {object} util.Response
// @Router /api/learning-paths/{id} [delete]
func (c *LearningPathController) Delete(ctx *gin.Context) {
	if err := c.PathService.Delete(ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}
