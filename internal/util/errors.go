package util

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailRegistered  = errors.New("email already registered")
	ErrEmailDomain      = errors.New("email domain not allowed")
	ErrInvalidLogin     = errors.New("invalid email or password")
	ErrPermissionDenied = errors.New("permission denied")
	ErrContentNotFound  = errors.New("content not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
	ErrPathNotFound     = errors.New("learning path not found")
	ErrRequestNotFound  = errors.New("content request not found")
	ErrSelfKudos        = errors.New("cannot give kudos to yourself")
	ErrAlreadyVoted     = errors.New("already upvoted this answer")
)
