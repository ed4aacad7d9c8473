package service

import (
	"errors"
	"time"

	"recruiter_hub_backend/internal/model"
	"recruiter_hub_backend/internal/repository"
	"recruiter_hub_backend/internal/util"

	"gorm.io/gorm"
)

const contentListLimit = 50

type ContentService struct {
	Contents *repository.ContentRepository
	Progress *repository.ProgressRepository
}

func NewContentService(contents *repository.ContentRepository, progress *repository.ProgressRepository) *ContentService {
	return &ContentService{Contents: contents, Progress: progress}
}

// ContentView is the list/detail shape: the stored row plus flattened author
// info and tags as a real slice.
type ContentView struct {
	model.Content
	TagList     []string               `json:"tags"`
	AuthorName  string                 `json:"authorName"`
	AuthorImage string                 `json:"authorImage"`
	Progress    *model.ContentProgress `json:"progress,omitempty"`
}

func toContentView(item model.Content) ContentView {
	return ContentView{
		Content:     item,
		TagList:     util.SplitTags(item.Tags),
		AuthorName:  item.Author.Name,
		AuthorImage: item.Author.Image,
	}
}

type ContentListQuery struct {
	Search   string
	Type     string
	Category string
	Status   string
}

// List defaults to published items; callers pass an explicit status or "all"
// for editorial views.
func (s *ContentService) List(query ContentListQuery) ([]ContentView, error) {
	status := query.Status
	if status == "" {
		status = string(model.StatusPublished)
	}

	items, err := s.Contents.List(query.Search, query.Type, query.Category, status, contentListLimit)
	if err != nil {
		return nil, err
	}

	views := make([]ContentView, 0, len(items))
	for _, item := range items {
		views = append(views, toContentView(item))
	}
	return views, nil
}

func (s *ContentService) Get(id string, claims *util.Claims) (*ContentView, error) {
	item, err := s.Contents.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrContentNotFound
		}
		return nil, err
	}

	// Drafts are visible to their author and admins only.
	if item.Status != model.StatusPublished {
		if claims == nil || (claims.UserID != item.AuthorID && !claims.IsAdmin()) {
			return nil, util.ErrContentNotFound
		}
	}

	view := toContentView(*item)

	if claims != nil {
		if progress, err := s.Progress.FindByUserAndContent(claims.UserID, id); err == nil {
			view.Progress = progress
		}
	}

	return &view, nil
}

type ContentInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Type        string   `json:"type" binding:"required"`
	Body        string   `json:"body"`
	VideoURL    string   `json:"videoUrl"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
}

func (s *ContentService) Create(input ContentInput, claims *util.Claims) (*ContentView, error) {
	// Admin authors publish immediately; everyone else lands in the review
	// queue. The request body has no say in this.
	status := model.StatusPending
	if claims.IsAdmin() {
		status = model.StatusPublished
	}

	item := model.Content{
		Title:       input.Title,
		Description: input.Description,
		Type:        model.ContentType(input.Type),
		Body:        input.Body,
		VideoURL:    input.VideoURL,
		Tags:        util.JoinTags(input.Tags),
		Category:    input.Category,
		Status:      status,
		AuthorID:    claims.UserID,
	}

	if status == model.StatusPublished {
		now := time.Now()
		item.PublishedAt = &now
	}

	if err := s.Contents.Create(&item); err != nil {
		return nil, err
	}

	created, err := s.Contents.FindByID(item.ID)
	if err != nil {
		return nil, err
	}
	view := toContentView(*created)
	return &view, nil
}

type ContentUpdateInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Type        *string   `json:"type"`
	Body        *string   `json:"body"`
	VideoURL    *string   `json:"videoUrl"`
	Tags        *[]string `json:"tags"`
	Category    *string   `json:"category"`
	Status      *string   `json:"status"`
}

func (s *ContentService) Update(id string, input ContentUpdateInput, claims *util.Claims) (*ContentView, error) {
	item, err := s.Contents.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrContentNotFound
		}
		return nil, err
	}

	if item.AuthorID != claims.UserID && !claims.IsAdmin() {
		return nil, util.ErrPermissionDenied
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Type != nil {
		item.Type = model.ContentType(*input.Type)
	}
	if input.Body != nil {
		item.Body = *input.Body
	}
	if input.VideoURL != nil {
		item.VideoURL = *input.VideoURL
	}
	if input.Tags != nil {
		item.Tags = util.JoinTags(*input.Tags)
	}
	if input.Category != nil {
		item.Category = *input.Category
	}

	// Status transitions are an admin call.
	if input.Status != nil && claims.IsAdmin() {
		item.Status = model.ContentStatus(*input.Status)
		if item.Status == model.StatusPublished && item.PublishedAt == nil {
			now := time.Now()
			item.PublishedAt = &now
		}
	}

	if err := s.Contents.Update(item); err != nil {
		return nil, err
	}

	view := toContentView(*item)
	return &view, nil
}

func (s *ContentService) Delete(id string, claims *util.Claims) error {
	item, err := s.Contents.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrContentNotFound
		}
		return err
	}

	if item.AuthorID != claims.UserID && !claims.IsAdmin() {
		return util.ErrPermissionDenied
	}

	return s.Contents.Delete(id)
}
