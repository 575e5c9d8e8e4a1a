package services

import (
	"errors"
	"fmt"
)

// Error categories. Specific failures wrap one of these so handlers can map
// them to HTTP statuses with errors.Is.
var (
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation error")
)

var (
	// Identity
	ErrUsernameTaken      = fmt.Errorf("%w: username already taken", ErrConflict)
	ErrEmailTaken         = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")

	// Relationship ledger
	ErrSelfFollow       = fmt.Errorf("%w: users cannot follow themselves", ErrConflict)
	ErrAlreadyFollowing = fmt.Errorf("%w: follow edge already exists", ErrConflict)
	ErrFollowNotFound   = fmt.Errorf("%w: follow edge not found", ErrNotFound)
	ErrNotPending       = fmt.Errorf("%w: follow request is not pending", ErrInvalidState)

	// Content
	ErrPostNotFound    = fmt.Errorf("%w: post not found", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("%w: comment not found", ErrNotFound)
	ErrNotOwner        = fmt.Errorf("%w: not allowed to modify this resource", ErrForbidden)

	// Moderation
	ErrReportNotFound = fmt.Errorf("%w: report not found", ErrNotFound)
	ErrSelfBlock      = fmt.Errorf("%w: cannot block yourself", ErrConflict)
	ErrAlreadyBlocked = fmt.Errorf("%w: user already blocked", ErrConflict)
	ErrBlocked        = fmt.Errorf("%w: interaction blocked", ErrForbidden)

	// Subscription
	ErrTransactionNotFound = fmt.Errorf("%w: transaction not found", ErrNotFound)
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
