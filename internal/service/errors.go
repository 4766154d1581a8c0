package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrEmptyRequestBody    = errors.New("request body is empty")

	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
