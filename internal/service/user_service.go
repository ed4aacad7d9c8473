package service

import (
	"errors"

	"recruiter_hub_backend/internal/model"
	"recruiter_hub_backend/internal/repository"
	"recruiter_hub_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	Users     *repository.UserRepository
	Contents  *repository.ContentRepository
	Progress  *repository.ProgressRepository
	Questions *repository.QuestionRepository
	Answers   *repository.AnswerRepository
	Points    *repository.PointRepository
	Kudos     *repository.KudosRepository
}

func NewUserService(
	users *repository.UserRepository,
	contents *repository.ContentRepository,
	progress *repository.ProgressRepository,
	questions *repository.QuestionRepository,
	answers *repository.AnswerRepository,
	points *repository.PointRepository,
	kudos *repository.KudosRepository,
) *UserService {
	return &UserService{
		Users:     users,
		Contents:  contents,
		Progress:  progress,
		Questions: questions,
		Answers:   answers,
		Points:    points,
		Kudos:     kudos,
	}
}

type UserStats struct {
	ContentCreated    int64 `json:"contentCreated"`
	ContentCompleted  int64 `json:"contentCompleted"`
	QuestionsAsked    int64 `json:"questionsAsked"`
	QuestionsAnswered int64 `json:"questionsAnswered"`
}

type UserView struct {
	model.User
	Expertise []string `json:"expertise"`
}

func toUserView(user model.User) UserView {
	return UserView{
		User:      user,
		Expertise: util.SplitTags(user.Expertise),
	}
}

type ProfileView struct {
	UserView
	Stats         UserStats                `json:"stats"`
	RecentPoints  []model.PointTransaction `json:"recentPoints"`
	KudosReceived []KudosView              `json:"kudosReceived"`
}

func (s *UserService) Me(userID string) (*ProfileView, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	profile := ProfileView{UserView: toUserView(*user)}

	if profile.Stats.ContentCreated, err = s.Contents.CountPublishedByAuthor(userID); err != nil {
		return nil, err
	}
	if profile.Stats.ContentCompleted, err = s.Progress.CountCompletedByUser(userID); err != nil {
		return nil, err
	}
	if profile.Stats.QuestionsAsked, err = s.Questions.CountByAuthor(userID); err != nil {
		return nil, err
	}
	if profile.Stats.QuestionsAnswered, err = s.Answers.CountByAuthor(userID); err != nil {
		return nil, err
	}

	if profile.RecentPoints, err = s.Points.RecentByUser(userID, 10); err != nil {
		return nil, err
	}

	received, err := s.Kudos.RecentForUser(userID, 5)
	if err != nil {
		return nil, err
	}
	profile.KudosReceived = make([]KudosView, 0, len(received))
	for _, k := range received {
		profile.KudosReceived = append(profile.KudosReceived, toKudosView(k))
	}

	return &profile, nil
}

type ProfileUpdateInput struct {
	Name      *string   `json:"name"`
	Bio       *string   `json:"bio"`
	Image     *string   `json:"image"`
	Expertise *[]string `json:"expertise"`
}

func (s *UserService) UpdateProfile(userID string, input ProfileUpdateInput) (*UserView, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Image != nil {
		user.Image = *input.Image
	}
	if input.Expertise != nil {
		user.Expertise = util.JoinTags(*input.Expertise)
	}

	if err := s.Users.Update(user); err != nil {
		return nil, err
	}

	view := toUserView(*user)
	return &view, nil
}

func (s *UserService) Directory(search, expertise string) ([]UserView, error) {
	users, err := s.Users.List(search, expertise)
	if err != nil {
		return nil, err
	}

	views := make([]UserView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}
	return views, nil
}
