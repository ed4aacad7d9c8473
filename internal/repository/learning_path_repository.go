package repository

import (
	"recruiter_hub_backend/internal/model"

	"gorm.io/gorm"
)

type LearningPathRepository struct {
	DB *gorm.DB
}

func NewLearningPathRepository(db *gorm.DB) *LearningPathRepository {
	return &LearningPathRepository{DB: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

func (r *LearningPathRepository) List() ([]model.LearningPath, error) {
	var paths []model.LearningPath
	err := r.DB.Order("sort_order ASC, created_at ASC").
		Preload("Items", orderedItems).
		Find(&paths).Error
	return paths, err
}

func (r *LearningPathRepository) FindByID(id string) (*model.LearningPath, error) {
	var path model.LearningPath
	err := r.DB.Preload("Items", orderedItems).First(&path, "id = ?", id).Error
	return &path, err
}

func (r *LearningPathRepository) Create(path *model.LearningPath) error {
	return r.DB.Create(path).Error
}

func (r *LearningPathRepository) Update(path *model.LearningPath) error {
	return r.DB.Save(path).Error
}

// ReplaceItems swaps the path's item list wholesale, keeping the given order.
func (r *LearningPathRepository) ReplaceItems(pathID string, contentIDs []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("path_id = ?", pathID).Delete(&model.LearningPathItem{}).Error; err != nil {
			return err
		}
		for i, contentID := range contentIDs {
			item := model.LearningPathItem{
				ID:        model.GenerateUUID(),
				PathID:    pathID,
				ContentID: contentID,
				SortOrder: i,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *LearningPathRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("path_id = ?", id).Delete(&model.LearningPathItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.LearningPath{}, "id = ?", id).Error
	})
}
