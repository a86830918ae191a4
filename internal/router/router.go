package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/tasklist/api/handler"
)

type Handlers struct {
	Task   *apiHandler.TaskHandler
	Health *apiHandler.HealthHandler
}

// New wires the routes. Every handler is wrapped by middleware when it is set.
func New(handlers Handlers, middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	if middleware == nil {
		middleware = func(next fasthttp.RequestHandler) fasthttp.RequestHandler { return next }
	}
	r := router.New()

	r.GET("/health", middleware(handlers.Health.Check))

	r.GET("/api/v1/tasks", middleware(handlers.Task.GetTasks))
	r.POST("/api/v1/tasks", middleware(handlers.Task.CreateTask))
	r.POST("/api/v1/tasks/{ref}/complete", middleware(handlers.Task.CompleteTask))
	r.DELETE("/api/v1/tasks/{ref}", middleware(handlers.Task.DeleteTask))

	return r
}
