package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/taskboard/backend/internal/config"
	"github.com/taskboard/backend/internal/core/services"
	"github.com/taskboard/backend/internal/infrastructure/db"
	"github.com/taskboard/backend/internal/infrastructure/logger"
	"github.com/taskboard/backend/internal/transport/http/dto"
	"github.com/taskboard/backend/internal/transport/http/handlers"
	"github.com/taskboard/backend/web"
	"gorm.io/gorm"
)

type RouterConfig struct {
	DB     *gorm.DB
	Logger *logger.Logger
	Config *config.Config
}

func SetupRoutes(app *fiber.App, cfg RouterConfig) {
	taskRepo := db.NewTaskRepository(cfg.DB, cfg.Logger)
	taskService := services.NewTaskService(taskRepo, cfg.Logger)

	validate := validator.New()
	taskHandler := handlers.NewTaskHandler(taskService, validate, cfg.Logger, cfg.Config.IsProduction())
	healthHandler := handlers.NewHealthHandler(taskService)

	api := app.Group("/api")
	api.Get("/health", healthHandler.Health)
	api.Post("/tasks", taskHandler.CreateTask)
	api.Get("/tasks", taskHandler.GetTasks)
	api.Get("/tasks/:id", taskHandler.GetTask)
	api.Put("/tasks/:id", taskHandler.UpdateTask)
	api.Delete("/tasks/:id", taskHandler.DeleteTask)

	// Browser client, embedded at build time.
	app.Use("/", filesystem.New(filesystem.Config{
		Root:  http.FS(web.Static()),
		Index: "index.html",
	}))

	// Anything still unmatched, any method.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorEnvelope("Route not found"))
	})
}
