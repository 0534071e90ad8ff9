package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/taskboard/backend/internal/core/ports"
	"github.com/taskboard/backend/internal/domain"
	"github.com/taskboard/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

type taskService struct {
	repo   ports.TaskRepository
	logger *logger.Logger
}

func NewTaskService(repo ports.TaskRepository, log *logger.Logger) ports.TaskService {
	return &taskService{repo: repo, logger: log}
}

// normalize trims the input, applies defaults and checks the field
// constraints shared by create and update.
func normalize(input ports.TaskInput) (title, description string, status domain.TaskStatus, err error) {
	title = strings.TrimSpace(input.Title)
	if title == "" {
		return "", "", "", ErrTaskTitleRequired
	}
	if utf8.RuneCountInString(title) > domain.TaskTitleMaxLen {
		return "", "", "", ErrTaskTitleTooLong
	}

	description = strings.TrimSpace(input.Description)
	if utf8.RuneCountInString(description) > domain.TaskDescriptionMaxLen {
		return "", "", "", ErrTaskDescriptionTooLong
	}

	status = domain.TaskStatus(input.Status)
	if status == "" {
		status = domain.TaskStatusPending
	}
	if !status.Valid() {
		return "", "", "", ErrTaskInvalidStatus
	}

	return title, description, status, nil
}

func (s *taskService) CreateTask(ctx context.Context, input ports.TaskInput) (*domain.Task, error) {
	title, description, status, err := normalize(input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task := &domain.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		s.logger.Errorw("task_create_store_failed", "error", err)
		return nil, err
	}

	s.logger.Infow("task_created", "id", task.ID, "status", task.Status)
	return task, nil
}

func (s *taskService) GetTasks(ctx context.Context) ([]domain.Task, error) {
	return s.repo.GetAll(ctx)
}

func (s *taskService) GetTaskByID(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// UpdateTask overwrites all three mutable fields wholesale. Omitted
// description resets to "" and omitted status resets to pending; this is
// replacement, not a merge.
func (s *taskService) UpdateTask(ctx context.Context, id string, input ports.TaskInput) (*domain.Task, error) {
	title, description, status, err := normalize(input)
	if err != nil {
		return nil, err
	}

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	task.Title = title
	task.Description = description
	task.Status = status
	task.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, task); err != nil {
		s.logger.Errorw("task_update_store_failed", "id", id, "error", err)
		return nil, err
	}

	s.logger.Infow("task_updated", "id", task.ID, "status", task.Status)
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Errorw("task_delete_store_failed", "id", id, "error", err)
		return nil, err
	}

	s.logger.Infow("task_deleted", "id", id)
	return task, nil
}

func (s *taskService) CheckStore(ctx context.Context) bool {
	if err := s.repo.Ping(ctx); err != nil {
		s.logger.Warnw("store_ping_failed", "error", err)
		return false
	}
	return true
}
