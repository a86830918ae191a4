package transport

// TaskRequest is the body of a task creation call. Times use DD-MM HH:MM.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	DueTime     string `json:"due_time"`
}
