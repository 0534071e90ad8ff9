package ports

import (
	"context"

	"github.com/taskboard/backend/internal/domain"
)

// TaskInput carries the caller-supplied fields for create and update.
// Update is whole-record replacement: an empty Description resets the
// stored value and an empty Status falls back to pending.
type TaskInput struct {
	Title       string
	Description string
	Status      string
}

type TaskService interface {
	CreateTask(ctx context.Context, input TaskInput) (*domain.Task, error)
	GetTasks(ctx context.Context) ([]domain.Task, error)
	GetTaskByID(ctx context.Context, id string) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, input TaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) (*domain.Task, error)
	CheckStore(ctx context.Context) bool
}
