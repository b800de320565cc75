package storage

import (
	"context"
	"encoding/json"

	"github.com/farmatrack/visitador/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage DraftStorage

// QueueStorage defines interface for the durable FIFO of pending operations.
// The queue is stored as one ordered list; every mutation is persisted
// before returning to the caller.
type QueueStorage interface {
	// AppendOperation adds an operation to the end of the list
	AppendOperation(ctx context.Context, op *models.PendingOperation) error

	// Operations returns the full list in FIFO order
	Operations(ctx context.Context) ([]models.PendingOperation, error)

	// UpdateOperation replaces the stored operation with the same id.
	// Returns ErrOperationNotFound if the id is not in the list.
	UpdateOperation(ctx context.Context, op *models.PendingOperation) error

	// RemoveOperation deletes an operation by id, keeping the order of the
	// remaining items. Removing an absent id is a no-op, not an error.
	RemoveOperation(ctx context.Context, id string) error
}

// DraftStorage defines interface for offline-created records (forms, visits)
// kept alongside the queue so they stay listable while pending.
type DraftStorage interface {
	// SaveDraft stores the serialized record under its operation id
	SaveDraft(ctx context.Context, kind models.OperationKind, id string, payload json.RawMessage) error

	// Drafts returns all drafts of a kind, keyed by operation id
	Drafts(ctx context.Context, kind models.OperationKind) (map[string]json.RawMessage, error)

	// RemoveDraft deletes a draft; removing an absent draft is a no-op
	RemoveDraft(ctx context.Context, kind models.OperationKind, id string) error
}
