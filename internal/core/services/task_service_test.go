package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/taskboard/backend/internal/core/ports"
	"github.com/taskboard/backend/internal/domain"
	"github.com/taskboard/backend/internal/infrastructure/db"
	"github.com/taskboard/backend/internal/infrastructure/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupService(t *testing.T) (ports.TaskService, ports.TaskRepository) {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.RunMigrations(database); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	repo := db.NewTaskRepository(database, logger.NewNop())
	return NewTaskService(repo, logger.NewNop()), repo
}

func TestCreateTask_BlankTitleRejected(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := svc.CreateTask(ctx, ports.TaskInput{Title: title})
		if !errors.Is(err, ErrTaskTitleRequired) {
			t.Errorf("title %q: expected ErrTaskTitleRequired, got %v", title, err)
		}
	}

	tasks, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected no records persisted after rejections, got %d", len(tasks))
	}
}

func TestCreateTask_Defaults(t *testing.T) {
	svc, _ := setupService(t)

	task, err := svc.CreateTask(context.Background(), ports.TaskInput{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	if task.ID == "" {
		t.Error("expected server-assigned id")
	}
	if task.Description != "" {
		t.Errorf("expected empty description, got %q", task.Description)
	}
	if task.Status != domain.TaskStatusPending {
		t.Errorf("expected status pending, got %q", task.Status)
	}
	if !task.UpdatedAt.Equal(task.CreatedAt) {
		t.Errorf("expected updatedAt == createdAt at creation, got %v / %v", task.UpdatedAt, task.CreatedAt)
	}
}

func TestCreateTask_TrimsFields(t *testing.T) {
	svc, _ := setupService(t)

	task, err := svc.CreateTask(context.Background(), ports.TaskInput{
		Title:       "  Buy milk  ",
		Description: "  two liters  ",
		Status:      "in-progress",
	})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if task.Title != "Buy milk" {
		t.Errorf("expected trimmed title, got %q", task.Title)
	}
	if task.Description != "two liters" {
		t.Errorf("expected trimmed description, got %q", task.Description)
	}
	if task.Status != domain.TaskStatusInProgress {
		t.Errorf("expected status in-progress, got %q", task.Status)
	}
}

func TestCreateTask_FieldLimits(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, ports.TaskInput{Title: strings.Repeat("x", 201)})
	if !errors.Is(err, ErrTaskTitleTooLong) {
		t.Errorf("expected ErrTaskTitleTooLong, got %v", err)
	}

	_, err = svc.CreateTask(ctx, ports.TaskInput{
		Title:       "ok",
		Description: strings.Repeat("x", 1001),
	})
	if !errors.Is(err, ErrTaskDescriptionTooLong) {
		t.Errorf("expected ErrTaskDescriptionTooLong, got %v", err)
	}

	_, err = svc.CreateTask(ctx, ports.TaskInput{Title: "ok", Status: "archived"})
	if !errors.Is(err, ErrTaskInvalidStatus) {
		t.Errorf("expected ErrTaskInvalidStatus, got %v", err)
	}
}

func TestGetTasks_NewestFirst(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		if _, err := svc.CreateTask(ctx, ports.TaskInput{Title: title}); err != nil {
			t.Fatalf("CreateTask(%q) error = %v", title, err)
		}
	}

	tasks, err := svc.GetTasks(ctx)
	if err != nil {
		t.Fatalf("GetTasks() error = %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i].CreatedAt.After(tasks[i-1].CreatedAt) {
			t.Errorf("tasks not ordered newest-first at position %d", i)
		}
	}
}

func TestGetTaskByID_RoundTrip(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, ports.TaskInput{Title: "Buy milk", Status: "pending"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	found, err := svc.GetTaskByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTaskByID() error = %v", err)
	}
	if found.Title != "Buy milk" || found.Description != "" || found.Status != domain.TaskStatusPending {
		t.Errorf("round-trip mismatch: %+v", found)
	}
}

func TestGetTaskByID_NotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.GetTaskByID(context.Background(), "missing-id")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdateTask_WholeRecordReplacement(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, ports.TaskInput{
		Title:       "original",
		Description: "old",
		Status:      "in-progress",
	})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	// Description and status omitted: both reset, not preserved.
	updated, err := svc.UpdateTask(ctx, created.ID, ports.TaskInput{Title: "replaced"})
	if err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}

	if updated.Description != "" {
		t.Errorf("expected omitted description to reset to empty, got %q", updated.Description)
	}
	if updated.Status != domain.TaskStatusPending {
		t.Errorf("expected omitted status to reset to pending, got %q", updated.Status)
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Errorf("updatedAt %v precedes createdAt %v", updated.UpdatedAt, updated.CreatedAt)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Errorf("updatedAt went backwards: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}

	stored, err := svc.GetTaskByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTaskByID() error = %v", err)
	}
	if stored.Title != "replaced" || stored.Description != "" {
		t.Errorf("replacement not persisted: %+v", stored)
	}
}

func TestUpdateTask_NotFoundLeavesStoreUnchanged(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	if _, err := svc.CreateTask(ctx, ports.TaskInput{Title: "keeper"}); err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	_, err := svc.UpdateTask(ctx, "missing-id", ports.TaskInput{Title: "nope"})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}

	tasks, err := svc.GetTasks(ctx)
	if err != nil {
		t.Fatalf("GetTasks() error = %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "keeper" {
		t.Errorf("store changed by failed update: %+v", tasks)
	}
}

func TestUpdateTask_ValidationBeforeLookup(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.UpdateTask(context.Background(), "missing-id", ports.TaskInput{Title: "   "})
	if !errors.Is(err, ErrTaskTitleRequired) {
		t.Fatalf("expected ErrTaskTitleRequired, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, ports.TaskInput{Title: "doomed"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	deleted, err := svc.DeleteTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	if deleted.ID != created.ID {
		t.Errorf("expected deleted record returned, got %+v", deleted)
	}

	if _, err := svc.GetTaskByID(ctx, created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound after delete, got %v", err)
	}

	if _, err := svc.DeleteTask(ctx, created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound on second delete, got %v", err)
	}
}

func TestCheckStore(t *testing.T) {
	svc, _ := setupService(t)

	if !svc.CheckStore(context.Background()) {
		t.Error("expected store to report connected")
	}
}

func TestCheckStore_Disconnected(t *testing.T) {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.RunMigrations(database); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	svc := NewTaskService(db.NewTaskRepository(database, logger.NewNop()), logger.NewNop())

	if err := db.Close(database); err != nil {
		t.Fatalf("failed to close database: %v", err)
	}

	if svc.CheckStore(context.Background()) {
		t.Error("expected store to report disconnected after close")
	}
}
