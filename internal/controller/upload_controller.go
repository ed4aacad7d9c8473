package controller

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"recruiter_hub_backend/internal/service"
	"recruiter_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadController struct {
	StorageService *service.StorageService
}

func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{StorageService: storageService}
}

// @Summary Upload a video
// @Description Stores a training video and returns its URL plus probed metadata.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Video file"
// @Success 201 {object} util.Response
// @Router /api/uploads/video [post]
func (c *UploadController) UploadVideo(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	allowed := false
	for _, e := range util.AllowedVideoExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		util.BadRequest(ctx, fmt.Sprintf("unsupported video format %q", ext))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" || !strings.HasPrefix(contentType, util.MimeVideo) {
		contentType = util.MimeOctetStream
	}

	filename := fmt.Sprintf("videos/%s/%s%s", time.Now().Format("2006-01"), uuid.New().String(), ext)

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	response := gin.H{
		"url":      url,
		"filename": filename,
		"size":     fileHeader.Size,
	}

	// Probing only works for local storage where the file is on disk.
	if local, ok := c.StorageService.Provider.(*service.LocalStorageProvider); ok {
		if info, err := util.GetVideoInfo(filepath.Join(local.Config.LocalPath, filename)); err == nil {
			response["video"] = info
		}
	}

	util.Created(ctx, response)
}
