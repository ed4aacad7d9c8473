package repository

import (
	"recruiter_hub_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, "email = ?", email).Error
	return &user, err
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, "id = ?", id).Error
	return &user, err
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) List(search, expertise string) ([]model.User, error) {
	var users []model.User

	query := r.DB.Model(&model.User{})

	if search != "" {
		query = query.Where("name LIKE ? OR email LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if expertise != "" {
		query = query.Where("expertise LIKE ?", "%"+expertise+"%")
	}

	err := query.Order("name ASC").Limit(100).Find(&users).Error
	return users, err
}

func (r *UserRepository) TopByPoints(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("points DESC, created_at ASC").Limit(limit).Find(&users).Error
	return users, err
}

// RankByPoints is the 1-based position of a user on the leaderboard: the
// number of users with strictly more points, plus one.
func (r *UserRepository) RankByPoints(points int) (int, error) {
	var above int64
	err := r.DB.Model(&model.User{}).Where("points > ?", points).Count(&above).Error
	return int(above) + 1, err
}
