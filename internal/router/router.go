package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/capsyncer/capsyncer/internal/config"
	"github.com/capsyncer/capsyncer/internal/handlers"
	"github.com/capsyncer/capsyncer/internal/middleware"
	"github.com/capsyncer/capsyncer/internal/types"
)

func NewRouter(cfg *config.Config, h *handlers.Handler, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With", types.HeaderViewerRole, types.HeaderViewerName},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)

	api := r.Group("/api", middleware.ViewerMiddleware())
	{
		api.GET("/status", h.Status)
		api.GET("/me", h.Me)
		api.GET("/dashboard", h.GetDashboard)

		coworkers := api.Group("/coworkers")
		{
			coworkers.GET("", h.ListCoworkers)
			coworkers.POST("", h.CreateCoworker)
			coworkers.GET("/:id", h.GetCoworker)
			coworkers.PUT("/:id", h.UpdateCoworker)
			coworkers.DELETE("/:id", h.DeleteCoworker)
			coworkers.GET("/:id/utilization", h.GetCoworkerUtilization)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", h.ListProjects)
			projects.POST("", h.CreateProject)
			projects.GET("/:id", h.GetProject)
			projects.PUT("/:id", h.UpdateProject)
			projects.DELETE("/:id", h.DeleteProject)
			projects.GET("/:id/rollup", h.GetProjectRollup)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", h.ListTasks)
			tasks.POST("", h.CreateTask)
			tasks.GET("/:id", h.GetTask)
			tasks.PUT("/:id", h.UpdateTask)
			tasks.DELETE("/:id", h.DeleteTask)
			tasks.GET("/:id/rollup", h.GetTaskRollup)
		}

		assignments := api.Group("/assignments")
		{
			assignments.GET("", h.ListAssignments)
			assignments.POST("", h.CreateAssignment)
			assignments.GET("/:id", h.GetAssignment)
			assignments.PUT("/:id", h.UpdateAssignment)
			assignments.DELETE("/:id", h.DeleteAssignment)
		}
	}

	return r
}
