package service

import (
	"errors"
	"time"

	"recruiter_hub_backend/internal/model"
	"recruiter_hub_backend/internal/repository"
	"recruiter_hub_backend/internal/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProgressService struct {
	DB       *gorm.DB
	Contents *repository.ContentRepository
	Points   *PointsService
}

func NewProgressService(db *gorm.DB, contents *repository.ContentRepository, points *PointsService) *ProgressService {
	return &ProgressService{DB: db, Contents: contents, Points: points}
}

type ProgressInput struct {
	Completed      *bool                  `json:"completed"`
	ChecklistState map[string]interface{} `json:"checklistState"`
}

// Update upserts the (user, content) progress row. The completion award fires
// on the false-to-true transition only: the guarded UPDATE flips completed
// where it is still false, and RowsAffected tells us whether this call won.
func (s *ProgressService) Update(userID, contentID string, input ProgressInput) (*model.ContentProgress, error) {
	if _, err := s.Contents.FindByID(contentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrContentNotFound
		}
		return nil, err
	}

	var result model.ContentProgress

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		awarded := false

		var existing model.ContentProgress
		err := tx.First(&existing, "user_id = ? AND content_id = ?", userID, contentID).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := model.ContentProgress{
				UserID:    userID,
				ContentID: contentID,
			}
			if input.ChecklistState != nil {
				row.ChecklistState = datatypes.JSONMap(input.ChecklistState)
			}
			if input.Completed != nil && *input.Completed {
				now := time.Now()
				row.Completed = true
				row.CompletedAt = &now
				awarded = true
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}

		case err != nil:
			return err

		default:
			updates := map[string]interface{}{}
			if input.ChecklistState != nil {
				updates["checklist_state"] = datatypes.JSONMap(input.ChecklistState)
			}

			if input.Completed != nil && *input.Completed {
				now := time.Now()
				completion := map[string]interface{}{
					"completed":    true,
					"completed_at": &now,
				}
				res := tx.Model(&model.ContentProgress{}).
					Where("user_id = ? AND content_id = ? AND completed = ?", userID, contentID, false).
					Updates(completion)
				if res.Error != nil {
					return res.Error
				}
				awarded = res.RowsAffected == 1
			} else if input.Completed != nil {
				// Un-completing keeps the historical completedAt and the
				// already-awarded points.
				updates["completed"] = false
			}

			if len(updates) > 0 {
				if err := tx.Model(&model.ContentProgress{}).
					Where("user_id = ? AND content_id = ?", userID, contentID).
					Updates(updates).Error; err != nil {
					return err
				}
			}
		}

		if awarded {
			if err := s.Points.AwardTx(tx, userID, PointsCompleteContent, "Completed content", model.RefContent, contentID); err != nil {
				return err
			}
		}

		return tx.First(&result, "user_id = ? AND content_id = ?", userID, contentID).Error
	})

	if err != nil {
		return nil, err
	}
	return &result, nil
}
