package service

import (
	"errors"

	"recruiter_hub_backend/internal/model"
	"recruiter_hub_backend/internal/repository"
	"recruiter_hub_backend/internal/util"

	"gorm.io/gorm"
)

type ContentRequestService struct {
	Requests *repository.ContentRequestRepository
}

func NewContentRequestService(requests *repository.ContentRequestRepository) *ContentRequestService {
	return &ContentRequestService{Requests: requests}
}

type ContentRequestView struct {
	model.ContentRequest
	RequesterName string `json:"requesterName"`
}

func toRequestView(r model.ContentRequest) ContentRequestView {
	return ContentRequestView{
		ContentRequest: r,
		RequesterName:  r.Requester.Name,
	}
}

func (s *ContentRequestService) List(status string) ([]ContentRequestView, error) {
	requests, err := s.Requests.List(status)
	if err != nil {
		return nil, err
	}

	views := make([]ContentRequestView, 0, len(requests))
	for _, r := range requests {
		views = append(views, toRequestView(r))
	}
	return views, nil
}

type ContentRequestInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (s *ContentRequestService) Create(input ContentRequestInput, claims *util.Claims) (*ContentRequestView, error) {
	request := model.ContentRequest{
		Title:       input.Title,
		Description: input.Description,
		RequesterID: claims.UserID,
		Status:      model.RequestOpen,
	}
	if err := s.Requests.Create(&request); err != nil {
		return nil, err
	}

	created, err := s.Requests.FindByID(request.ID)
	if err != nil {
		return nil, err
	}
	view := toRequestView(*created)
	return &view, nil
}

type ContentRequestUpdateInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves a request through the triage states. Admin only.
func (s *ContentRequestService) UpdateStatus(id string, input ContentRequestUpdateInput) (*ContentRequestView, error) {
	request, err := s.Requests.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRequestNotFound
		}
		return nil, err
	}

	request.Status = model.RequestStatus(input.Status)
	if err := s.Requests.Update(request); err != nil {
		return nil, err
	}

	view := toRequestView(*request)
	return &view, nil
}
