package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/taskboard/backend/internal/core/ports"
	"github.com/taskboard/backend/internal/transport/http/dto"
)

type HealthHandler struct {
	service ports.TaskService
}

func NewHealthHandler(service ports.TaskService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Health always answers 200; a disconnected store is reported in the body
// rather than the status code.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	database := "Disconnected"
	if h.service.CheckStore(c.Context()) {
		database = "Connected"
	}

	return c.JSON(dto.HealthResponse{
		Success:   true,
		Message:   "Server is running!",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  database,
	})
}
