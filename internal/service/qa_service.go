package service

import (
	"errors"

	"recruiter_hub_backend/internal/model"
	"recruiter_hub_backend/internal/repository"
	"recruiter_hub_backend/internal/util"

	"gorm.io/gorm"
)

const questionListLimit = 50

type QAService struct {
	DB        *gorm.DB
	Questions *repository.QuestionRepository
	Answers   *repository.AnswerRepository
	Points    *PointsService
}

func NewQAService(db *gorm.DB, questions *repository.QuestionRepository, answers *repository.AnswerRepository, points *PointsService) *QAService {
	return &QAService{DB: db, Questions: questions, Answers: answers, Points: points}
}

type QuestionView struct {
	model.Question
	TagList     []string `json:"tags"`
	AuthorName  string   `json:"authorName"`
	AuthorImage string   `json:"authorImage"`
	AnswerCount int64    `json:"answerCount"`
	UpvoteTotal int64    `json:"upvoteTotal"`
}

type AnswerView struct {
	model.Answer
	AuthorName  string `json:"authorName"`
	AuthorImage string `json:"authorImage"`
}

type QuestionDetail struct {
	QuestionView
	Answers []AnswerView `json:"answers"`
}

func toQuestionView(q model.Question) QuestionView {
	return QuestionView{
		Question:    q,
		TagList:     util.SplitTags(q.Tags),
		AuthorName:  q.Author.Name,
		AuthorImage: q.Author.Image,
	}
}

func toAnswerView(a model.Answer) AnswerView {
	return AnswerView{
		Answer:      a,
		AuthorName:  a.Author.Name,
		AuthorImage: a.Author.Image,
	}
}

// List filters: all, resolved, unanswered, my-questions. Search matches
// title and body.
func (s *QAService) List(filter, search string, claims *util.Claims) ([]QuestionView, error) {
	userID := ""
	if claims != nil {
		userID = claims.UserID
	}

	questions, err := s.Questions.List(filter, search, userID, questionListLimit)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}

	aggregates, err := s.Questions.AnswerAggregates(ids)
	if err != nil {
		return nil, err
	}

	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		view := toQuestionView(q)
		if agg, ok := aggregates[q.ID]; ok {
			view.AnswerCount = agg.AnswerCount
			view.UpvoteTotal = agg.UpvoteTotal
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *QAService) Get(id string) (*QuestionDetail, error) {
	question, err := s.Questions.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	answers, err := s.Answers.FindByQuestion(id)
	if err != nil {
		return nil, err
	}

	detail := QuestionDetail{
		QuestionView: toQuestionView(*question),
		Answers:      make([]AnswerView, 0, len(answers)),
	}
	detail.AnswerCount = int64(len(answers))
	for _, a := range answers {
		detail.UpvoteTotal += int64(a.Upvotes)
		detail.Answers = append(detail.Answers, toAnswerView(a))
	}
	return &detail, nil
}

type QuestionInput struct {
	Title string   `json:"title" binding:"required"`
	Body  string   `json:"body" binding:"required"`
	Tags  []string `json:"tags"`
}

func (s *QAService) CreateQuestion(input QuestionInput, claims *util.Claims) (*QuestionView, error) {
	question := model.Question{
		Title:    input.Title,
		Body:     input.Body,
		Tags:     util.JoinTags(input.Tags),
		AuthorID: claims.UserID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		return s.Points.AwardTx(tx, claims.UserID, PointsAskQuestion, "Asked a question", model.RefQuestion, question.ID)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.Questions.FindByID(question.ID)
	if err != nil {
		return nil, err
	}
	view := toQuestionView(*created)
	return &view, nil
}

type QuestionUpdateInput struct {
	Title *string   `json:"title"`
	Body  *string   `json:"body"`
	Tags  *[]string `json:"tags"`
}

func (s *QAService) UpdateQuestion(id string, input QuestionUpdateInput, claims *util.Claims) (*QuestionView, error) {
	question, err := s.Questions.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	if question.AuthorID != claims.UserID && !claims.IsAdmin() {
		return nil, util.ErrPermissionDenied
	}

	if input.Title != nil {
		question.Title = *input.Title
	}
	if input.Body != nil {
		question.Body = *input.Body
	}
	if input.Tags != nil {
		question.Tags = util.JoinTags(*input.Tags)
	}

	if err := s.Questions.Update(question); err != nil {
		return nil, err
	}
	view := toQuestionView(*question)
	return &view, nil
}

func (s *QAService) DeleteQuestion(id string, claims *util.Claims) error {
	question, err := s.Questions.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}

	if question.AuthorID != claims.UserID && !claims.IsAdmin() {
		return util.ErrPermissionDenied
	}

	return s.Questions.Delete(id)
}

type AnswerInput struct {
	Body string `json:"body" binding:"required"`
}

func (s *QAService) CreateAnswer(questionID string, input AnswerInput, claims *util.Claims) (*AnswerView, error) {
	if _, err := s.Questions.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	answer := model.Answer{
		QuestionID: questionID,
		Body:       input.Body,
		AuthorID:   claims.UserID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}
		return s.Points.AwardTx(tx, claims.UserID, PointsAnswerQuestion, "Answered a question", model.RefAnswer, answer.ID)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.Answers.FindByID(answer.ID)
	if err != nil {
		return nil, err
	}
	view := toAnswerView(*created)
	return &view, nil
}

// AcceptAnswer marks one answer as the accepted one and resolves the
// question. Re-accepting moves the flag; the earlier acceptance award is not
// clawed back.
func (s *QAService) AcceptAnswer(answerID string, claims *util.Claims) (*AnswerView, error) {
	answer, err := s.Answers.FindByID(answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAnswerNotFound
		}
		return nil, err
	}

	question, err := s.Questions.FindByID(answer.QuestionID)
	if err != nil {
		return nil, err
	}

	if question.AuthorID != claims.UserID && !claims.IsAdmin() {
		return nil, util.ErrPermissionDenied
	}

	alreadyAccepted := answer.IsAccepted

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Answer{}).
			Where("question_id = ?", answer.QuestionID).
			Update("is_accepted", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Answer{}).
			Where("id = ?", answerID).
			Update("is_accepted", true).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Question{}).
			Where("id = ?", answer.QuestionID).
			Update("resolved", true).Error; err != nil {
			return err
		}
		if !alreadyAccepted {
			return s.Points.AwardTx(tx, answer.AuthorID, PointsAnswerAccepted, "Answer accepted", model.RefAnswer, answerID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Answers.FindByID(answerID)
	if err != nil {
		return nil, err
	}
	view := toAnswerView(*updated)
	return &view, nil
}

// UpvoteAnswer is one vote per user per answer. A second vote returns
// ErrAlreadyVoted instead of double-counting.
func (s *QAService) UpvoteAnswer(answerID string, claims *util.Claims) (*AnswerView, error) {
	answer, err := s.Answers.FindByID(answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAnswerNotFound
		}
		return nil, err
	}

	voted, err := s.Answers.HasVote(claims.UserID, answerID)
	if err != nil {
		return nil, err
	}
	if voted {
		return nil, util.ErrAlreadyVoted
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		vote := model.AnswerVote{
			UserID:   claims.UserID,
			AnswerID: answerID,
		}
		if err := tx.Create(&vote).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Answer{}).
			Where("id = ?", answerID).
			UpdateColumn("upvotes", gorm.Expr("upvotes + 1")).Error; err != nil {
			return err
		}
		return s.Points.AwardTx(tx, answer.AuthorID, PointsAnswerUpvoted, "Answer upvoted", model.RefAnswer, answerID)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Answers.FindByID(answerID)
	if err != nil {
		return nil, err
	}
	view := toAnswerView(*updated)
	return &view, nil
}
