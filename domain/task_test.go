package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskString(t *testing.T) {
	task := Task{
		Title:     "Buy milk",
		StartTime: MustParseMoment("01-01 08:00"),
		DueTime:   MustParseMoment("01-01 09:05"),
	}
	require.Equal(t, "Buy milk - Pendiente (Inicio: 01-01 08:00, Límite: 01-01 09:05)", task.String())
	require.False(t, task.IsCompleted())

	task.Completed = true
	require.Equal(t, "Buy milk - Completada (Inicio: 01-01 08:00, Límite: 01-01 09:05)", task.String())
	require.True(t, task.IsCompleted())
}

func TestDomainErrors(t *testing.T) {
	require.True(t, IsDomainError(ErrIndexOutOfRange, ErrCodeOutOfRange))
	require.Equal(t, "index out of range", ErrIndexOutOfRange.Error())

	wrapped := fmt.Errorf("complete: %w", ErrTitleTooLong)
	require.True(t, IsDomainError(wrapped, ErrCodeInvalid))
	require.False(t, IsDomainError(wrapped, ErrCodeNotFound))
	require.False(t, IsDomainError(errors.New("plain"), ErrCodeInvalid))

	cause := errors.New("boom")
	err := WrapError(ErrCodeInternal, "store failed", cause)
	require.Equal(t, "store failed: boom", err.Error())
	require.ErrorIs(t, err, cause)

	var nilErr *Error
	require.Empty(t, nilErr.Error())
	require.NoError(t, nilErr.Unwrap())
}
