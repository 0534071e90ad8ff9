package dto

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestTaskRequestValidate(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name string
		req  TaskRequest
		want string // first expected message, "" when valid
	}{
		{"valid minimal", TaskRequest{Title: "Buy milk"}, ""},
		{"valid full", TaskRequest{Title: "Buy milk", Description: "2l", Status: "completed"}, ""},
		{"empty title", TaskRequest{}, "Title is required"},
		{"whitespace title", TaskRequest{Title: "  \t "}, "Title is required"},
		{"title too long", TaskRequest{Title: strings.Repeat("x", 201)}, "Title must be at most 200 characters"},
		{"description too long", TaskRequest{Title: "ok", Description: strings.Repeat("x", 1001)}, "Description must be at most 1000 characters"},
		{"invalid status", TaskRequest{Title: "ok", Status: "archived"}, "Status must be one of: pending, in-progress, completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate(v)
			if tt.want == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if len(errs) == 0 {
				t.Fatalf("expected %q, got none", tt.want)
			}
			if errs[0] != tt.want {
				t.Errorf("expected %q, got %q", tt.want, errs[0])
			}
		})
	}
}

func TestListEnvelope_EmptyTasksPresent(t *testing.T) {
	env := ListEnvelope(nil)
	if env.Count != 0 {
		t.Errorf("expected count 0, got %d", env.Count)
	}
	if env.Tasks == nil {
		t.Error("expected tasks to be an empty slice, not nil")
	}
}
