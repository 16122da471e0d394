package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		want    string
	}{
		{
			name:    "message only",
			message: "provide a transcript file or --text",
			want:    "provide a transcript file or --text",
		},
		{
			name:    "message with cause",
			err:     ErrNoInput,
			message: "provide a transcript file or --text",
			want:    "provide a transcript file or --text: no input provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUserError(tt.message, tt.err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestUserError_Unwrap(t *testing.T) {
	err := NewUserError("sheets export is not configured", ErrMissingConfig)

	assert.True(t, errors.Is(err, ErrMissingConfig))

	var userErr *UserError
	require.True(t, errors.As(err, &userErr))
	assert.Equal(t, "sheets export is not configured", userErr.UserMessage)
}

func TestUserError_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("analyze: %w", NewUserError("video file is not readable", ErrNoInput))

	var userErr *UserError
	require.True(t, errors.As(err, &userErr))
	assert.True(t, errors.Is(err, ErrNoInput))
}
