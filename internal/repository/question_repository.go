package repository

import (
	"recruiter_hub_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) List(filter, search, userID string, limit int) ([]model.Question, error) {
	var questions []model.Question

	query := r.DB.Model(&model.Question{})

	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR body LIKE ?", like, like)
	}

	switch filter {
	case "resolved":
		query = query.Where("resolved = ?", true)
	case "unanswered":
		query = query.Where("resolved = ?", false)
	case "my-questions":
		query = query.Where("author_id = ?", userID)
	}

	err := query.Order("created_at DESC").
		Limit(limit).
		Preload("Author").
		Find(&questions).Error
	return questions, err
}

// AnswerAggregate carries per-question answer stats for list views.
type AnswerAggregate struct {
	QuestionID  string
	AnswerCount int64
	UpvoteTotal int64
}

func (r *QuestionRepository) AnswerAggregates(questionIDs []string) (map[string]AnswerAggregate, error) {
	result := make(map[string]AnswerAggregate)
	if len(questionIDs) == 0 {
		return result, nil
	}

	var rows []AnswerAggregate
	err := r.DB.Model(&model.Answer{}).
		Select("question_id, COUNT(*) AS answer_count, COALESCE(SUM(upvotes), 0) AS upvote_total").
		Where("question_id IN ?", questionIDs).
		Group("question_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.QuestionID] = row
	}
	return result, nil
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var question model.Question
	err := r.DB.Preload("Author").First(&question, "id = ?", id).Error
	return &question, err
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

func (r *QuestionRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var answerIDs []string
		if err := tx.Model(&model.Answer{}).
			Where("question_id = ?", id).
			Pluck("id", &answerIDs).Error; err != nil {
			return err
		}
		if len(answerIDs) > 0 {
			if err := tx.Where("answer_id IN ?", answerIDs).Delete(&model.AnswerVote{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("question_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, "id = ?", id).Error
	})
}

func (r *QuestionRepository) CountByAuthor(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("author_id = ?", userID).Count(&count).Error
	return count, err
}
