package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

const (
	TaskTitleMaxLen       = 200
	TaskDescriptionMaxLen = 1000
)

// Task is the sole persisted entity. The ID is assigned by the server at
// creation and never changes; Title is stored trimmed and non-empty;
// UpdatedAt is refreshed on every successful update and never precedes
// CreatedAt.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey;size:36"`
	Title       string     `json:"title" gorm:"size:200;not null"`
	Description string     `json:"description" gorm:"size:1000"`
	Status      TaskStatus `json:"status" gorm:"size:20;not null;default:pending;index"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"index;autoCreateTime:false"`
	UpdatedAt   time.Time  `json:"updatedAt" gorm:"autoUpdateTime:false"`
}
