package repository

import (
	"recruiter_hub_backend/internal/model"

	"gorm.io/gorm"
)

type PointRepository struct {
	DB *gorm.DB
}

func NewPointRepository(db *gorm.DB) *PointRepository {
	return &PointRepository{DB: db}
}

func (r *PointRepository) RecentByUser(userID string, limit int) ([]model.PointTransaction, error) {
	var rows []model.PointTransaction
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
