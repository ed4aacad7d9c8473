package service

import (
	"recruiter_hub_backend/internal/model"

	"gorm.io/gorm"
)

// Award amounts for each point-earning action.
const (
	PointsCompleteContent = 50
	PointsAskQuestion     = 10
	PointsAnswerQuestion  = 25
	PointsAnswerAccepted  = 50
	PointsAnswerUpvoted   = 5
	PointsReceiveKudos    = 15
)

type PointsService struct {
	DB *gorm.DB
}

func NewPointsService(db *gorm.DB) *PointsService {
	return &PointsService{DB: db}
}

// AwardTx writes the ledger row and bumps the user's points counter inside
// the caller's transaction. The two writes never happen separately.
func (s *PointsService) AwardTx(tx *gorm.DB, userID string, amount int, reason, refType, refID string) error {
	entry := model.PointTransaction{
		UserID:        userID,
		Amount:        amount,
		Reason:        reason,
		ReferenceType: refType,
		ReferenceID:   refID,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return err
	}

	return tx.Model(&model.User{}).
		Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", amount)).Error
}

func (s *PointsService) Award(userID string, amount int, reason, refType, refID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.AwardTx(tx, userID, amount, reason, refType, refID)
	})
}
