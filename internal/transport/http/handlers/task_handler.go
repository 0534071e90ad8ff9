package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/taskboard/backend/internal/core/ports"
	"github.com/taskboard/backend/internal/core/services"
	"github.com/taskboard/backend/internal/infrastructure/logger"
	"github.com/taskboard/backend/internal/transport/http/dto"
)

type TaskHandler struct {
	service    ports.TaskService
	validate   *validator.Validate
	logger     *logger.Logger
	production bool
}

func NewTaskHandler(service ports.TaskService, validate *validator.Validate, log *logger.Logger, production bool) *TaskHandler {
	return &TaskHandler{service: service, validate: validate, logger: log, production: production}
}

// storageFault fills the error detail only outside production mode; in
// production the detail is replaced with a generic string.
func (h *TaskHandler) storageFault(message string, err error) dto.Envelope {
	env := dto.ErrorEnvelope(message)
	if h.production {
		env.Error = "Internal server error"
	} else {
		env.Error = err.Error()
	}
	return env
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var req dto.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("task_create_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorEnvelope("Title is required"))
	}

	if errs := req.Validate(h.validate); len(errs) > 0 {
		h.logger.Warnw("task_create_validation_failed", "details", errs)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorEnvelope(errs[0]))
	}

	task, err := h.service.CreateTask(c.Context(), ports.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		if services.IsValidationError(err) {
			h.logger.Warnw("task_create_rejected", "error", err)
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorEnvelope(validationMessage(err)))
		}
		h.logger.Errorw("task_create_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(h.storageFault("Failed to create task", err))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessEnvelope("Task created successfully", task))
}

func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	tasks, err := h.service.GetTasks(c.Context())
	if err != nil {
		h.logger.Errorw("task_list_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(h.storageFault("Failed to retrieve tasks", err))
	}

	return c.JSON(dto.ListEnvelope(tasks))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	id := c.Params("id")

	task, err := h.service.GetTaskByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			h.logger.Warnw("task_get_not_found", "id", id)
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorEnvelope("Task not found"))
		}
		h.logger.Errorw("task_get_failed", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(h.storageFault("Failed to retrieve task", err))
	}

	return c.JSON(dto.SuccessEnvelope("", task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("task_update_body_parse_failed", "id", id, "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorEnvelope("Title is required"))
	}

	if errs := req.Validate(h.validate); len(errs) > 0 {
		h.logger.Warnw("task_update_validation_failed", "id", id, "details", errs)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorEnvelope(errs[0]))
	}

	task, err := h.service.UpdateTask(c.Context(), id, ports.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			h.logger.Warnw("task_update_not_found", "id", id)
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorEnvelope("Task not found"))
		case services.IsValidationError(err):
			h.logger.Warnw("task_update_rejected", "id", id, "error", err)
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorEnvelope(validationMessage(err)))
		default:
			h.logger.Errorw("task_update_failed", "id", id, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(h.storageFault("Failed to update task", err))
		}
	}

	return c.JSON(dto.SuccessEnvelope("Task updated successfully", task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	id := c.Params("id")

	task, err := h.service.DeleteTask(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			h.logger.Warnw("task_delete_not_found", "id", id)
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorEnvelope("Task not found"))
		}
		h.logger.Errorw("task_delete_failed", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(h.storageFault("Failed to delete task", err))
	}

	return c.JSON(dto.SuccessEnvelope("Task deleted successfully", task))
}

// validationMessage maps the service sentinel errors to the messages the
// client shows in its banner.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrTaskTitleRequired):
		return "Title is required"
	case errors.Is(err, services.ErrTaskTitleTooLong):
		return "Title must be at most 200 characters"
	case errors.Is(err, services.ErrTaskDescriptionTooLong):
		return "Description must be at most 1000 characters"
	case errors.Is(err, services.ErrTaskInvalidStatus):
		return "Status must be one of: pending, in-progress, completed"
	}
	return err.Error()
}
