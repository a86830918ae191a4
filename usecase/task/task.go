package task

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fastygo/tasklist/domain"
	"github.com/fastygo/tasklist/pkg/logger"
	"github.com/fastygo/tasklist/repository"
)

// Summary counts the tasks currently held by the store.
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// UseCase is the task store: validated creation, listing, completion and
// deletion of tasks addressed by their position in the list.
type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
	newID  func() string
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// AddTask validates the input and appends a new pending task to the end of
// the list, returning the task and its position. Nothing is stored when
// validation fails.
func (uc *UseCase) AddTask(ctx context.Context, title, description, startText, dueText string) (domain.Task, int, error) {
	log := logger.WithRequestID(ctx, uc.logger)

	task, err := buildTask(title, description, startText, dueText)
	if err != nil {
		log.Debug("task rejected", zap.Error(err))
		return domain.Task{}, -1, err
	}
	task.ID = uc.newID()

	index, err := uc.tasks.Append(ctx, task)
	if err != nil {
		log.Error("failed to store task", zap.Error(err))
		return domain.Task{}, -1, err
	}
	log.Info("task added", zap.String("task_id", task.ID), zap.Int("index", index), zap.String("title", task.Title))
	return task, index, nil
}

// ListTasks returns a copy of the tasks in insertion order.
func (uc *UseCase) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return uc.tasks.List(ctx)
}

// CompleteTask marks the task at index as completed. Completing an already
// completed task is a no-op.
func (uc *UseCase) CompleteTask(ctx context.Context, index int) error {
	log := logger.WithRequestID(ctx, uc.logger)
	if err := uc.tasks.MarkCompleted(ctx, index); err != nil {
		log.Debug("complete task failed", zap.Int("index", index), zap.Error(err))
		return err
	}
	log.Info("task completed", zap.Int("index", index))
	return nil
}

// DeleteTask removes the task at index; later tasks move up one position.
func (uc *UseCase) DeleteTask(ctx context.Context, index int) error {
	log := logger.WithRequestID(ctx, uc.logger)
	if err := uc.tasks.Delete(ctx, index); err != nil {
		log.Debug("delete task failed", zap.Int("index", index), zap.Error(err))
		return err
	}
	log.Info("task deleted", zap.Int("index", index))
	return nil
}

// CompleteTaskByID marks the task with the given ID as completed wherever it
// currently sits in the list.
func (uc *UseCase) CompleteTaskByID(ctx context.Context, id string) error {
	log := logger.WithRequestID(ctx, uc.logger)
	if err := uc.tasks.MarkCompletedByID(ctx, id); err != nil {
		log.Debug("complete task failed", zap.String("task_id", id), zap.Error(err))
		return err
	}
	log.Info("task completed", zap.String("task_id", id))
	return nil
}

// DeleteTaskByID removes the task with the given ID.
func (uc *UseCase) DeleteTaskByID(ctx context.Context, id string) error {
	log := logger.WithRequestID(ctx, uc.logger)
	if err := uc.tasks.DeleteByID(ctx, id); err != nil {
		log.Debug("delete task failed", zap.String("task_id", id), zap.Error(err))
		return err
	}
	log.Info("task deleted", zap.String("task_id", id))
	return nil
}

// IndexOf resolves a task ID to its current position. The position may be
// stale by the time it is used; act on IDs with the ByID methods instead.
func (uc *UseCase) IndexOf(ctx context.Context, id string) (int, error) {
	return uc.tasks.IndexOf(ctx, id)
}

func (uc *UseCase) Summary(ctx context.Context) (Summary, error) {
	tasks, err := uc.tasks.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	summary := Summary{Total: len(tasks)}
	for i := range tasks {
		if tasks[i].IsCompleted() {
			summary.Completed++
		}
	}
	summary.Pending = summary.Total - summary.Completed
	return summary, nil
}
