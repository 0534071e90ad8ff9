package ports

import (
	"context"

	"github.com/taskboard/backend/internal/domain"
)

// TaskRepository is the Task Store: a document-style CRUD collaborator
// keyed by id. GetAll returns tasks newest-created-first. GetByID reports
// gorm.ErrRecordNotFound when the id does not resolve. Ping reflects
// current store connectivity for health reporting.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetAll(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
