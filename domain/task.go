package domain

import "fmt"

const (
	MaxTitleLength       = 50
	MaxDescriptionLength = 200
)

const (
	StatusCompleted = "Completada"
	StatusPending   = "Pendiente"
)

// Task represents one entry of the task list. Fields are fixed at creation
// except Completed, which only ever moves from false to true.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   Moment `json:"start_time"`
	DueTime     Moment `json:"due_time"`
	Completed   bool   `json:"completed"`
}

func (t Task) IsCompleted() bool {
	return t.Completed
}

// Status returns the human readable completion state.
func (t Task) Status() string {
	if t.Completed {
		return StatusCompleted
	}
	return StatusPending
}

func (t Task) String() string {
	return fmt.Sprintf("%s - %s (Inicio: %s, Límite: %s)", t.Title, t.Status(), t.StartTime, t.DueTime)
}
