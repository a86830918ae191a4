package repository

import (
	"context"

	"github.com/fastygo/tasklist/domain"
)

// TaskRepository stores tasks as an ordered sequence addressed by position.
// Positions shift down when an earlier task is deleted; IDs never change.
// The ByID variants resolve and act under the same lock, so they never touch
// a task that moved into a stale position.
type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	// Append stores task last and returns its position.
	Append(ctx context.Context, task domain.Task) (int, error)
	MarkCompleted(ctx context.Context, index int) error
	Delete(ctx context.Context, index int) error
	IndexOf(ctx context.Context, id string) (int, error)
	MarkCompletedByID(ctx context.Context, id string) error
	DeleteByID(ctx context.Context, id string) error
}
