package repository

import (
	"recruiter_hub_backend/internal/model"

	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) List(search, contentType, category, status string, limit int) ([]model.Content, error) {
	var items []model.Content

	query := r.DB.Model(&model.Content{})

	if search != "" {
		query = query.Where("title LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if contentType != "" && contentType != "all" {
		query = query.Where("type = ?", contentType)
	}

	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	// "all" bypasses the status filter for editorial views.
	if status != "all" {
		query = query.Where("status = ?", status)
	}

	err := query.Order("updated_at DESC").
		Limit(limit).
		Preload("Author").
		Find(&items).Error
	return items, err
}

func (r *ContentRepository) FindByID(id string) (*model.Content, error) {
	var item model.Content
	err := r.DB.Preload("Author").First(&item, "id = ?", id).Error
	return &item, err
}

func (r *ContentRepository) FindByIDs(ids []string) ([]model.Content, error) {
	var items []model.Content
	if len(ids) == 0 {
		return items, nil
	}
	err := r.DB.Preload("Author").Find(&items, "id IN ?", ids).Error
	return items, err
}

func (r *ContentRepository) Create(item *model.Content) error {
	return r.DB.Create(item).Error
}

func (r *ContentRepository) Update(item *model.Content) error {
	return r.DB.Save(item).Error
}

func (r *ContentRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("content_id = ?", id).Delete(&model.ContentProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("content_id = ?", id).Delete(&model.LearningPathItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Content{}, "id = ?", id).Error
	})
}

func (r *ContentRepository) CountPublishedByAuthor(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Content{}).
		Where("author_id = ? AND status = ?", userID, model.StatusPublished).
		Count(&count).Error
	return count, err
}
