package service

import (
	"errors"
	"strings"

	"recruiter_hub_backend/internal/config"
	"recruiter_hub_backend/internal/model"
	"recruiter_hub_backend/internal/repository"
	"recruiter_hub_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Users  *repository.UserRepository
	Config *config.Config
}

func NewAuthService(users *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{Users: users, Config: cfg}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (s *AuthService) Register(input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if domain := s.Config.Auth.AllowedEmailDomain; domain != "" {
		if !strings.HasSuffix(email, "@"+domain) {
			return nil, util.ErrEmailDomain
		}
	}

	if _, err := s.Users.FindByEmail(email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := model.RoleUser
	for _, adminEmail := range s.Config.Auth.AdminEmails {
		if strings.EqualFold(adminEmail, email) {
			role = model.RoleAdmin
			break
		}
	}

	user := model.User{
		Email:    email,
		Name:     input.Name,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.Users.Create(&user); err != nil {
		return nil, err
	}

	token, err := util.GenerateJWT(&user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: &user}, nil
}

func (s *AuthService) Login(input LoginInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.Users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidLogin
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, util.ErrInvalidLogin
	}

	token, err := util.GenerateJWT(user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}
