package repository

import (
	"recruiter_hub_backend/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

// FindByQuestion returns answers with the accepted one first, then by
// upvotes, newest last among ties.
func (r *AnswerRepository) FindByQuestion(questionID string) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Where("question_id = ?", questionID).
		Order("is_accepted DESC, upvotes DESC, created_at DESC").
		Preload("Author").
		Find(&answers).Error
	return answers, err
}

func (r *AnswerRepository) FindByID(id string) (*model.Answer, error) {
	var answer model.Answer
	err := r.DB.Preload("Author").First(&answer, "id = ?", id).Error
	return &answer, err
}

func (r *AnswerRepository) Create(answer *model.Answer) error {
	return r.DB.Create(answer).Error
}

func (r *AnswerRepository) HasVote(userID, answerID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.AnswerVote{}).
		Where("user_id = ? AND answer_id = ?", userID, answerID).
		Count(&count).Error
	return count > 0, err
}

func (r *AnswerRepository) CountByAuthor(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Answer{}).Where("author_id = ?", userID).Count(&count).Error
	return count, err
}
