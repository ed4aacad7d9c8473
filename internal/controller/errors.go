package controller

import (
	"errors"
	"net/http"

	"recruiter_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps the service sentinel errors onto HTTP responses.
// Anything unrecognized is a 500 and gets logged.
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrContentNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrAnswerNotFound),
		errors.Is(err, util.ErrPathNotFound),
		errors.Is(err, util.ErrRequestNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrSelfKudos),
		errors.Is(err, util.ErrAlreadyVoted),
		errors.Is(err, util.ErrEmailDomain),
		errors.Is(err, util.ErrEmailRegistered):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidLogin):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
