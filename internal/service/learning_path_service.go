package service

import (
	"errors"
	"math"
	"time"

	"recruiter_hub_backend/internal/model"
	"recruiter_hub_backend/internal/repository"
	"recruiter_hub_backend/internal/util"

	"gorm.io/gorm"
)

type LearningPathService struct {
	Paths    *repository.LearningPathRepository
	Contents *repository.ContentRepository
	Progress *repository.ProgressRepository
}

func NewLearningPathService(paths *repository.LearningPathRepository, contents *repository.ContentRepository, progress *repository.ProgressRepository) *LearningPathService {
	return &LearningPathService{Paths: paths, Contents: contents, Progress: progress}
}

type PathItemView struct {
	ID          string                 `json:"id"`
	ContentID   string                 `json:"contentId"`
	Order       int                    `json:"order"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Type        model.ContentType      `json:"type"`
	Category    string                 `json:"category"`
	Completed   bool                   `json:"completed"`
	CompletedAt *time.Time             `json:"completedAt"`
	Checklist   map[string]interface{} `json:"checklistState"`
	IsCurrent   bool                   `json:"isCurrent"`
}

type PathView struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	IsOnboarding   bool           `json:"isOnboarding"`
	Order          int            `json:"order"`
	TotalItems     int            `json:"totalItems"`
	CompletedItems int            `json:"completedItems"`
	Progress       int            `json:"progress"`
	Items          []PathItemView `json:"items,omitempty"`
}

func (s *LearningPathService) buildView(path *model.LearningPath, userID string, includeItems bool) (*PathView, error) {
	contentIDs := make([]string, 0, len(path.Items))
	for _, item := range path.Items {
		contentIDs = append(contentIDs, item.ContentID)
	}

	contentByID := make(map[string]model.Content)
	if includeItems {
		contents, err := s.Contents.FindByIDs(contentIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range contents {
			contentByID[c.ID] = c
		}
	}

	progressByContent := make(map[string]model.ContentProgress)
	if userID != "" {
		rows, err := s.Progress.FindByUserAndContents(userID, contentIDs)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			progressByContent[row.ContentID] = row
		}
	}

	view := PathView{
		ID:           path.ID,
		Title:        path.Title,
		Description:  path.Description,
		IsOnboarding: path.IsOnboarding,
		Order:        path.SortOrder,
		TotalItems:   len(path.Items),
	}

	currentMarked := false
	for _, item := range path.Items {
		progress, hasProgress := progressByContent[item.ContentID]
		completed := hasProgress && progress.Completed
		if completed {
			view.CompletedItems++
		}

		if includeItems {
			itemView := PathItemView{
				ID:        item.ID,
				ContentID: item.ContentID,
				Order:     item.SortOrder,
				Completed: completed,
			}
			if c, ok := contentByID[item.ContentID]; ok {
				itemView.Title = c.Title
				itemView.Description = c.Description
				itemView.Type = c.Type
				itemView.Category = c.Category
			}
			if hasProgress {
				itemView.CompletedAt = progress.CompletedAt
				itemView.Checklist = progress.ChecklistState
			}
			// The first incomplete item is where the user picks up.
			if !completed && !currentMarked {
				itemView.IsCurrent = true
				currentMarked = true
			}
			view.Items = append(view.Items, itemView)
		} else if !completed {
			currentMarked = true
		}
	}

	if view.TotalItems > 0 {
		view.Progress = int(math.Round(float64(view.CompletedItems) / float64(view.TotalItems) * 100))
	}

	return &view, nil
}

func (s *LearningPathService) List(claims *util.Claims) ([]PathView, error) {
	paths, err := s.Paths.List()
	if err != nil {
		return nil, err
	}

	userID := ""
	if claims != nil {
		userID = claims.UserID
	}

	views := make([]PathView, 0, len(paths))
	for i := range paths {
		view, err := s.buildView(&paths[i], userID, false)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *LearningPathService) Get(id string, claims *util.Claims) (*PathView, error) {
	path, err := s.Paths.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPathNotFound
		}
		return nil, err
	}

	userID := ""
	if claims != nil {
		userID = claims.UserID
	}

	return s.buildView(path, userID, true)
}

type PathInput struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	IsOnboarding bool     `json:"isOnboarding"`
	Order        int      `json:"order"`
	ContentIDs   []string `json:"contentIds"`
}

func (s *LearningPathService) Create(input PathInput) (*PathView, error) {
	path := model.LearningPath{
		Title:        input.Title,
		Description:  input.Description,
		IsOnboarding: input.IsOnboarding,
		SortOrder:    input.Order,
	}
	if err := s.Paths.Create(&path); err != nil {
		return nil, err
	}

	if len(input.ContentIDs) > 0 {
		if err := s.Paths.ReplaceItems(path.ID, input.ContentIDs); err != nil {
			return nil, err
		}
	}

	created, err := s.Paths.FindByID(path.ID)
	if err != nil {
		return nil, err
	}
	return s.buildView(created, "", true)
}

type PathUpdateInput struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	IsOnboarding *bool     `json:"isOnboarding"`
	Order        *int      `json:"order"`
	ContentIDs   *[]string `json:"contentIds"`
}

func (s *LearningPathService) Update(id string, input PathUpdateInput) (*PathView, error) {
	path, err := s.Paths.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPathNotFound
		}
		return nil, err
	}

	if input.Title != nil {
		path.Title = *input.Title
	}
	if input.Description != nil {
		path.Description = *input.Description
	}
	if input.IsOnboarding != nil {
		path.IsOnboarding = *input.IsOnboarding
	}
	if input.Order != nil {
		path.SortOrder = *input.Order
	}

	path.Items = nil
	if err := s.Paths.Update(path); err != nil {
		return nil, err
	}

	if input.ContentIDs != nil {
		if err := s.Paths.ReplaceItems(id, *input.ContentIDs); err != nil {
			return nil, err
		}
	}

	updated, err := s.Paths.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.buildView(updated, "", true)
}

func (s *LearningPathService) Delete(id string) error {
	if _, err := s.Paths.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrPathNotFound
		}
		return err
	}
	return s.Paths.Delete(id)
}
