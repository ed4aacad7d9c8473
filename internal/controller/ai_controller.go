package controller

import (
	"recruiter_hub_backend/internal/service"
	"recruiter_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	AIService *service.AIService
}

func NewAIController(aiService *service.AIService) *AIController {
	return &AIController{AIService: aiService}
}

type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Type   string `json:"type"`
}

// @Summary Generate content draft
// @Description Drafts a content item from a prompt. Serves a demo template when no AI key is configured.
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body GenerateRequest true "Prompt and content type"
// @Success 200 {object} util.Response
// @Router /api/ai/generate [post]
func (c *AIController) Generate(ctx *gin.Context) {
	var req GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AIService.Generate(req.Prompt, req.Type)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// @Summary Semantic content search
// @Description Searches published content, LLM-ranked when a key is configured, keyword-matched otherwise.
// @Tags ai
// @Accept json
// @Produce json
// @Param input body SearchRequest true "Search query"
// @Success 200 {object} util.Response
// @Router /api/ai/search [post]
func (c *AIController) Search(ctx *gin.Context) {
	var req SearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	results, err := c.AIService.Search(req.Query)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}

type AnswerRequest struct {
	Question string `json:"question" binding:"required"`
}

// @Summary Copilot answer
// @Description Answers a question grounded in the published library, citing source documents.
// @Tags ai
// @Accept json
// @Produce json
// @Param input body AnswerRequest true "Question"
// @Success 200 {object} util.Response
// @Router /api/ai/answer [post]
func (c *AIController) Answer(ctx *gin.Context) {
	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.AIService.Answer(req.Question)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, answer)
}
