package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		category error
	}{
		{"username taken is a conflict", ErrUsernameTaken, ErrConflict},
		{"self follow is a conflict", ErrSelfFollow, ErrConflict},
		{"duplicate follow is a conflict", ErrAlreadyFollowing, ErrConflict},
		{"already blocked is a conflict", ErrAlreadyBlocked, ErrConflict},
		{"blocked interaction is forbidden", ErrBlocked, ErrForbidden},
		{"not owner is forbidden", ErrNotOwner, ErrForbidden},
		{"missing post is not found", ErrPostNotFound, ErrNotFound},
		{"missing follow edge is not found", ErrFollowNotFound, ErrNotFound},
		{"missing transaction is not found", ErrTransactionNotFound, ErrNotFound},
		{"non-pending approval is invalid state", ErrNotPending, ErrInvalidState},
		{"validation helper wraps the category", validationError("too long"), ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.category)
		})
	}
}

func TestCategoriesAreDisjoint(t *testing.T) {
	assert.False(t, errors.Is(ErrAlreadyFollowing, ErrNotFound))
	assert.False(t, errors.Is(ErrPostNotFound, ErrForbidden))
	assert.False(t, errors.Is(ErrNotPending, ErrConflict))
}
