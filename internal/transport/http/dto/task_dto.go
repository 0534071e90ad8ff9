package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/taskboard/backend/internal/domain"
)

// TaskRequest is the body of both create and update. Description and
// status are optional; the server defaults them ("" and pending).
type TaskRequest struct {
	Title       string `json:"title" validate:"max=200"`
	Description string `json:"description" validate:"max=1000"`
	Status      string `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
}

// Validate runs the tag rules plus the trim-then-require check on title,
// which tag validation alone cannot express (a whitespace-only title must
// fail). Returns human-readable messages, empty when valid.
func (r *TaskRequest) Validate(v *validator.Validate) []string {
	var errs []string

	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, "Title is required")
	}

	if err := v.Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		errors.As(err, &fieldErrs)
		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "Title":
				errs = append(errs, "Title must be at most 200 characters")
			case "Description":
				errs = append(errs, "Description must be at most 1000 characters")
			case "Status":
				errs = append(errs, "Status must be one of: pending, in-progress, completed")
			}
		}
	}

	return errs
}

// TaskResponse mirrors the wire shape of a stored task.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func TaskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func TasksToResponse(tasks []domain.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = TaskToResponse(&task)
	}
	return responses
}

// Envelope is the uniform JSON wrapper for single-task and error
// responses.
type Envelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
	Task    *TaskResponse `json:"task,omitempty"`
}

// TaskListEnvelope wraps the full-collection response; tasks is always
// present, empty when the store has no records.
type TaskListEnvelope struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Tasks   []TaskResponse `json:"tasks"`
}

func SuccessEnvelope(message string, task *domain.Task) Envelope {
	env := Envelope{Success: true, Message: message}
	if task != nil {
		resp := TaskToResponse(task)
		env.Task = &resp
	}
	return env
}

func ListEnvelope(tasks []domain.Task) TaskListEnvelope {
	return TaskListEnvelope{
		Success: true,
		Count:   len(tasks),
		Tasks:   TasksToResponse(tasks),
	}
}

func ErrorEnvelope(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// HealthResponse reports process liveness and store connectivity. Always
// served with HTTP 200; liveness and readiness are not distinguished.
type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}
