package service

import (
	"errors"

	"recruiter_hub_backend/internal/model"
	"recruiter_hub_backend/internal/repository"
	"recruiter_hub_backend/internal/util"

	"gorm.io/gorm"
)

type KudosService struct {
	DB     *gorm.DB
	Kudos  *repository.KudosRepository
	Users  *repository.UserRepository
	Points *PointsService
}

func NewKudosService(db *gorm.DB, kudos *repository.KudosRepository, users *repository.UserRepository, points *PointsService) *KudosService {
	return &KudosService{DB: db, Kudos: kudos, Users: users, Points: points}
}

type KudosView struct {
	model.Kudos
	FromUserName  string `json:"fromUserName"`
	FromUserImage string `json:"fromUserImage"`
	ToUserName    string `json:"toUserName"`
	ToUserImage   string `json:"toUserImage"`
}

func toKudosView(k model.Kudos) KudosView {
	return KudosView{
		Kudos:         k,
		FromUserName:  k.FromUser.Name,
		FromUserImage: k.FromUser.Image,
		ToUserName:    k.ToUser.Name,
		ToUserImage:   k.ToUser.Image,
	}
}

func (s *KudosService) Recent(limit int) ([]KudosView, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	kudos, err := s.Kudos.Recent(limit)
	if err != nil {
		return nil, err
	}

	views := make([]KudosView, 0, len(kudos))
	for _, k := range kudos {
		views = append(views, toKudosView(k))
	}
	return views, nil
}

type KudosInput struct {
	ToUserID string `json:"toUserId" binding:"required"`
	Message  string `json:"message"`
}

// Give awards the recipient, not the sender.
func (s *KudosService) Give(input KudosInput, claims *util.Claims) (*KudosView, error) {
	if input.ToUserID == claims.UserID {
		return nil, util.ErrSelfKudos
	}

	if _, err := s.Users.FindByID(input.ToUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	kudos := model.Kudos{
		FromUserID: claims.UserID,
		ToUserID:   input.ToUserID,
		Message:    input.Message,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&kudos).Error; err != nil {
			return err
		}
		return s.Points.AwardTx(tx, input.ToUserID, PointsReceiveKudos, "Received kudos", model.RefKudos, kudos.ID)
	})
	if err != nil {
		return nil, err
	}

	var created model.Kudos
	if err := s.DB.Preload("FromUser").Preload("ToUser").First(&created, "id = ?", kudos.ID).Error; err != nil {
		return nil, err
	}
	view := toKudosView(created)
	return &view, nil
}
