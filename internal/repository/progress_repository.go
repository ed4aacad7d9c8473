package repository

import (
	"recruiter_hub_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserAndContent(userID, contentID string) (*model.ContentProgress, error) {
	var progress model.ContentProgress
	err := r.DB.First(&progress, "user_id = ? AND content_id = ?", userID, contentID).Error
	return &progress, err
}

func (r *ProgressRepository) FindByUser(userID string) ([]model.ContentProgress, error) {
	var rows []model.ContentProgress
	err := r.DB.Find(&rows, "user_id = ?", userID).Error
	return rows, err
}

func (r *ProgressRepository) FindByUserAndContents(userID string, contentIDs []string) ([]model.ContentProgress, error) {
	var rows []model.ContentProgress
	if len(contentIDs) == 0 {
		return rows, nil
	}
	err := r.DB.Find(&rows, "user_id = ? AND content_id IN ?", userID, contentIDs).Error
	return rows, err
}

func (r *ProgressRepository) CountCompletedByUser(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ContentProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&count).Error
	return count, err
}
