package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/farmatrack/visitador/internal/client/storage"
	"github.com/farmatrack/visitador/internal/models"
)

var pendingOperationsKey = []byte("pending_operations")

// AppendOperation adds an operation to the end of the persisted list.
// List read and write happen in one transaction, порядок всегда FIFO.
func (s *Storage) AppendOperation(ctx context.Context, op *models.PendingOperation) error {
	if op == nil || op.ID == "" {
		return fmt.Errorf("operation id is empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		ops, err := readOperations(tx)
		if err != nil {
			return err
		}

		ops = append(ops, *op)

		return writeOperations(tx, ops)
	})
}

// Operations returns the full persisted list in FIFO order
func (s *Storage) Operations(ctx context.Context) ([]models.PendingOperation, error) {
	var ops []models.PendingOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		ops, err = readOperations(tx)
		return err
	})

	if err != nil {
		return nil, err
	}

	return ops, nil
}

// UpdateOperation replaces the stored operation with the same id,
// keeping its position in the list
func (s *Storage) UpdateOperation(ctx context.Context, op *models.PendingOperation) error {
	if op == nil || op.ID == "" {
		return fmt.Errorf("operation id is empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		ops, err := readOperations(tx)
		if err != nil {
			return err
		}

		found := false
		for i := range ops {
			if ops[i].ID == op.ID {
				ops[i] = *op
				found = true
				break
			}
		}
		if !found {
			return storage.ErrOperationNotFound
		}

		return writeOperations(tx, ops)
	})
}

// RemoveOperation deletes an operation by id, keeping the order of the
// remaining items. Removing an absent id is a no-op.
func (s *Storage) RemoveOperation(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		ops, err := readOperations(tx)
		if err != nil {
			return err
		}

		filtered := ops[:0]
		for _, op := range ops {
			if op.ID != id {
				filtered = append(filtered, op)
			}
		}

		return writeOperations(tx, filtered)
	})
}

// SaveDraft stores an offline-created record under its operation id.
// Drafts одного типа лежат во вложенном bucket внутри drafts.
func (s *Storage) SaveDraft(ctx context.Context, kind models.OperationKind, id string, payload json.RawMessage) error {
	if id == "" {
		return fmt.Errorf("draft id is empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		drafts := tx.Bucket(bucketDrafts)
		if drafts == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		bucket, err := drafts.CreateBucketIfNotExists([]byte(kind))
		if err != nil {
			return fmt.Errorf("failed to create draft bucket %s: %w", kind, err)
		}

		if err := bucket.Put([]byte(id), payload); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}

		return nil
	})
}

// Drafts returns all drafts of a kind, keyed by operation id
func (s *Storage) Drafts(ctx context.Context, kind models.OperationKind) (map[string]json.RawMessage, error) {
	result := make(map[string]json.RawMessage)

	err := s.db.View(func(tx *bbolt.Tx) error {
		drafts := tx.Bucket(bucketDrafts)
		if drafts == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		bucket := drafts.Bucket([]byte(kind))
		if bucket == nil {
			// Еще ни одного draft этого типа
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			payload := make(json.RawMessage, len(v))
			copy(payload, v)
			result[string(k)] = payload
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// RemoveDraft deletes a draft; removing an absent draft is a no-op
func (s *Storage) RemoveDraft(ctx context.Context, kind models.OperationKind, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		drafts := tx.Bucket(bucketDrafts)
		if drafts == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		bucket := drafts.Bucket([]byte(kind))
		if bucket == nil {
			return nil
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete draft: %w", err)
		}

		return nil
	})
}

// readOperations читает сериализованный список операций из bucket offline
func readOperations(tx *bbolt.Tx) ([]models.PendingOperation, error) {
	bucket := tx.Bucket(bucketOffline)
	if bucket == nil {
		return nil, fmt.Errorf("offline bucket not found")
	}

	data := bucket.Get(pendingOperationsKey)
	if data == nil {
		return []models.PendingOperation{}, nil
	}

	var ops []models.PendingOperation
	if err := json.Unmarshal(data, &ops); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending operations: %w", err)
	}

	return ops, nil
}

// writeOperations записывает список операций единой записью
func writeOperations(tx *bbolt.Tx, ops []models.PendingOperation) error {
	bucket := tx.Bucket(bucketOffline)
	if bucket == nil {
		return fmt.Errorf("offline bucket not found")
	}

	data, err := json.Marshal(ops)
	if err != nil {
		return fmt.Errorf("failed to marshal pending operations: %w", err)
	}

	if err := bucket.Put(pendingOperationsKey, data); err != nil {
		return fmt.Errorf("failed to save pending operations: %w", err)
	}

	return nil
}
