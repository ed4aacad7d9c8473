package repository

import (
	"recruiter_hub_backend/internal/model"

	"gorm.io/gorm"
)

type KudosRepository struct {
	DB *gorm.DB
}

func NewKudosRepository(db *gorm.DB) *KudosRepository {
	return &KudosRepository{DB: db}
}

func (r *KudosRepository) Recent(limit int) ([]model.Kudos, error) {
	var kudos []model.Kudos
	err := r.DB.Order("created_at DESC").
		Limit(limit).
		Preload("FromUser").
		Preload("ToUser").
		Find(&kudos).Error
	return kudos, err
}

func (r *KudosRepository) RecentForUser(userID string, limit int) ([]model.Kudos, error) {
	var kudos []model.Kudos
	err := r.DB.Where("to_user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Preload("FromUser").
		Find(&kudos).Error
	return kudos, err
}
