package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/fastygo/tasklist/domain"
	"github.com/fastygo/tasklist/repository"
)

type taskRepository struct {
	mu    sync.Mutex
	tasks []domain.Task
}

// NewTaskRepository returns an empty in-memory implementation of TaskRepository.
// All operations share one lock since Append and Delete move the positions
// that MarkCompleted and List rely on.
func NewTaskRepository() repository.TaskRepository {
	return &taskRepository{}
}

func (r *taskRepository) List(ctx context.Context) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.tasks), nil
}

func (r *taskRepository) Append(ctx context.Context, task domain.Task) (int, error) {
	if task.ID == "" {
		return -1, domain.ErrInvalidPayload
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, task)
	return len(r.tasks) - 1, nil
}

func (r *taskRepository) MarkCompleted(ctx context.Context, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.inRange(index) {
		return domain.ErrIndexOutOfRange
	}
	r.tasks[index].Completed = true
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.inRange(index) {
		return domain.ErrIndexOutOfRange
	}
	r.tasks = slices.Delete(r.tasks, index, index+1)
	return nil
}

func (r *taskRepository) IndexOf(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.indexLocked(id)
}

func (r *taskRepository) MarkCompletedByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx, err := r.indexLocked(id)
	if err != nil {
		return err
	}
	r.tasks[idx].Completed = true
	return nil
}

func (r *taskRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx, err := r.indexLocked(id)
	if err != nil {
		return err
	}
	r.tasks = slices.Delete(r.tasks, idx, idx+1)
	return nil
}

func (r *taskRepository) indexLocked(id string) (int, error) {
	if id == "" {
		return -1, domain.ErrTaskNotFound
	}
	idx := slices.IndexFunc(r.tasks, func(t domain.Task) bool { return t.ID == id })
	if idx < 0 {
		return -1, domain.ErrTaskNotFound
	}
	return idx, nil
}

func (r *taskRepository) inRange(index int) bool {
	return index >= 0 && index < len(r.tasks)
}
