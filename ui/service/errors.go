package service

import "errors"

// Service package errors.
var (
	// ErrInvalidEmail is returned by SubscribeAction.Plan for emails that are empty or lack "@".
	ErrInvalidEmail = errors.New("service: invalid email")

	// ErrUnknownSection indicates an admin section name that does not exist.
	ErrUnknownSection = errors.New("service: unknown section")
)
