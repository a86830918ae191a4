package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/tasklist/api/transport"
	"github.com/fastygo/tasklist/domain"
	"github.com/fastygo/tasklist/pkg/httpcontext"
	taskUC "github.com/fastygo/tasklist/usecase/task"
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List tasks
// @Tags tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) GetTasks(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListTasks(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewTaskViews(tasks))
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	var req transport.TaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, index, err := h.uc.AddTask(stdCtx, req.Title, req.Description, req.StartTime, req.DueTime)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.NewTaskView(index, created))
}

// @Summary Mark task as completed
// @Tags tasks
// @Router /api/v1/tasks/{ref}/complete [post]
func (h *TaskHandler) CompleteTask(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.withRef(ctx,
		func(index int) error { return h.uc.CompleteTask(stdCtx, index) },
		func(id string) error { return h.uc.CompleteTaskByID(stdCtx, id) },
	)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/v1/tasks/{ref} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.withRef(ctx,
		func(index int) error { return h.uc.DeleteTask(stdCtx, index) },
		func(id string) error { return h.uc.DeleteTaskByID(stdCtx, id) },
	)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

var indexRef = regexp.MustCompile(`^-?[0-9]+$`)

// withRef reads the {ref} route parameter and calls byIndex for a positional
// index or byID for a task ID. IDs are never turned into positions here, the
// store resolves them under its own lock.
func (h *TaskHandler) withRef(ctx *fasthttp.RequestCtx, byIndex func(int) error, byID func(string) error) error {
	ref, _ := ctx.UserValue("ref").(string)
	if ref == "" {
		return domain.NewError(domain.ErrCodeInvalid, "missing task reference")
	}
	if !indexRef.MatchString(ref) {
		return byID(ref)
	}
	index, err := strconv.Atoi(ref)
	if err != nil {
		// too large for an int, so past the end of any list
		return domain.ErrIndexOutOfRange
	}
	return byIndex(index)
}
