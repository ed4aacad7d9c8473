package repository

import (
	"recruiter_hub_backend/internal/model"

	"gorm.io/gorm"
)

type ContentRequestRepository struct {
	DB *gorm.DB
}

func NewContentRequestRepository(db *gorm.DB) *ContentRequestRepository {
	return &ContentRequestRepository{DB: db}
}

func (r *ContentRequestRepository) List(status string) ([]model.ContentRequest, error) {
	var requests []model.ContentRequest

	query := r.DB.Model(&model.ContentRequest{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	err := query.Order("created_at DESC").Preload("Requester").Find(&requests).Error
	return requests, err
}

func (r *ContentRequestRepository) FindByID(id string) (*model.ContentRequest, error) {
	var request model.ContentRequest
	err := r.DB.Preload("Requester").First(&request, "id = ?", id).Error
	return &request, err
}

func (r *ContentRequestRepository) Create(request *model.ContentRequest) error {
	return r.DB.Create(request).Error
}

func (r *ContentRequestRepository) Update(request *model.ContentRequest) error {
	return r.DB.Save(request).Error
}
