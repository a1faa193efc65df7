package util

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrNicknameRequired  = errors.New("nickname is required")
	ErrInvalidAnswer     = errors.New("selected answer is out of range")
	ErrNothingToVerify   = errors.New("verification needs text content or a file")
	ErrInvalidCredential = errors.New("credential could not be decoded")
)
