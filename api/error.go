package api

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	ErrInternalServer      = errors.New("internal server error")
	ErrNotFriends          = errors.New("users are not friends")
	ErrNotCapsuleReceiver  = errors.New("only the capsule receiver can open it")
	ErrNotLetterRecipient  = errors.New("only the letter receiver can access it")
	ErrFriendRequestExists = errors.New("friend request already exists between these users")
	ErrSelfFriendRequest   = errors.New("cannot send a friend request to yourself")
)

type FailedValidationResponse struct {
	Message         string            `json:"message"`
	FieldViolations []*FieldViolation `json:"field_violations"`
}

type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func fieldViolation(field string, err error) *FieldViolation {
	return &FieldViolation{
		Field:       field,
		Description: err.Error(),
	}
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

func failedValidationError(violations []*FieldViolation) *FailedValidationResponse {
	return &FailedValidationResponse{
		Message:         "Invalid request parameters",
		FieldViolations: violations,
	}
}
