package transport

import "github.com/fastygo/tasklist/domain"

// TaskView is a task as shown in a list: its current position plus the
// rendered one-line summary.
type TaskView struct {
	Index int `json:"index"`
	domain.Task
	Summary string `json:"summary"`
}

// NewTaskViews converts tasks into views, keeping their order.
func NewTaskViews(tasks []domain.Task) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for i, task := range tasks {
		views = append(views, NewTaskView(i, task))
	}
	return views
}

func NewTaskView(index int, task domain.Task) TaskView {
	return TaskView{Index: index, Task: task, Summary: task.String()}
}
