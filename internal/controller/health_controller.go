package controller

import (
	"recruiter_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// @Summary Health check
// @Description Reports service and database health.
// @Tags health
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	dbStatus := "up"
	if sqlDB, err := c.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	util.Success(ctx, gin.H{
		"status":   "ok",
		"database": dbStatus,
	})
}
