package controller

import (
	"recruiter_hub_backend/internal/service"
	"recruiter_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QAController struct {
	QAService *service.QAService
}

func NewQAController(qaService *service.QAService) *QAController {
	return &QAController{QAService: qaService}
}

// @Summary List questions
// @Description Lists forum questions, newest first, with answer counts.
// @Tags qa
// @Produce json
// @Param filter query string false "Filter" Enums(all, resolved, unanswered, my-questions) default(all)
// @Param search query string false "Match against title and body"
// @Success 200 {object} util.Response
// @Router /api/questions [get]
func (c *QAController) ListQuestions(ctx *gin.Context) {
	filter := ctx.DefaultQuery("filter", "all")
	claims := util.GetUserFromContext(ctx)

	if filter == "my-questions" && claims == nil {
		util.Unauthorized(ctx)
		return
	}

	questions, err := c.QAService.List(filter, ctx.Query("search"), claims)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// @Summary Get a question
// @Description Returns a question with its answers, accepted answer first.
// @Tags qa
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [get]
func (c *QAController) GetQuestion(ctx *gin.Context) {
	detail, err := c.QAService.Get(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

// @Summary Ask a question
// @Description Creates a forum question and awards points to the asker.
// @Tags qa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body service.QuestionInput true "Question fields"
// @Success 201 {object} util.Response
// @Router /api/questions [post]
func (c *QAController) CreateQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.QuestionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QAService.CreateQuestion(input, user)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, question)
}

// @Summary Edit a question
// @Description Updates a question's title, body or tags. Author or admin only.
// @Tags qa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Param input body service.QuestionUpdateInput true "Fields to change"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [patch]
func (c *QAController) UpdateQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.QuestionUpdateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QAService.UpdateQuestion(ctx.Param("id"), input, user)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

// @Summary Delete a question
// @Description Deletes a question with its answers and votes. Author or admin only.
// @Tags qa
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [delete]
func (c *QAController) DeleteQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.QAService.DeleteQuestion(ctx.Param("id"), user); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary Answer a question
// @Description Posts an answer and awards points to the answerer.
// @Tags qa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Param input body service.AnswerInput true "Answer body"
// @Success 201 {object} util.Response
// @Router /api/questions/{id}/answers [post]
func (c *QAController) CreateAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.AnswerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.QAService.CreateAnswer(ctx.Param("id"), input, user)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, answer)
}

// @Summary Accept an answer
// @Description Marks an answer as accepted and resolves the question. Question author or admin only.
// @Tags qa
// @Produce json
// @Security BearerAuth
// @Param id path string true "Answer ID"
// @Success 200 {object} util.Response
// @Router /api/answers/{id}/accept [post]
func (c *QAController) AcceptAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	answer, err := c.QAService.AcceptAnswer(ctx.Param("id"), user)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, answer)
}

// @Summary Upvote an answer
// @Description Upvotes an answer, once per user, and awards points to its author.
// @Tags qa
// @Produce json
// @Security BearerAuth
// @Param id path string true "Answer ID"
// @Success 200 {object} util.Response
// @Router /api/answers/{id}/upvote [post]
func (c *QAController) UpvoteAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	answer, err := c.QAService.UpvoteAnswer(ctx.Param("id"), user)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, answer)
}
