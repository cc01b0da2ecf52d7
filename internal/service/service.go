package service

import (
	"context"
	"errors"
)

// ErrNetwork marks any failure to complete a remote call, including
// responses with a non-2xx status.
var ErrNetwork = errors.New("network failure")

// Service is the remote task collection. The TUI never talks HTTP directly.
//
// Calls are single attempts: implementations must not retry.
type Service interface {
	// ListTasks returns every task in server order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task and returns the stored record, id included.
	CreateTask(ctx context.Context, task NewTask) (Task, error)

	// DeleteTask removes a task by id.
	DeleteTask(ctx context.Context, id ID) error

	// UpdateTask applies a partial update. The response body is ignored.
	UpdateTask(ctx context.Context, id ID, patch Patch) error
}
