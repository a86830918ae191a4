package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/tasklist/pkg/httpcontext"
	taskUC "github.com/fastygo/tasklist/usecase/task"
)

type HealthHandler struct {
	baseHandler
	uc      *taskUC.UseCase
	started time.Time
}

func NewHealthHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		started:     time.Now(),
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	summary, err := h.uc.Summary(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	now := time.Now().UTC()
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"timestamp": now,
		"uptime":    now.Sub(h.started.UTC()).Round(time.Second).String(),
		"tasks":     summary,
	})
}
