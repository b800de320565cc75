package queue

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmatrack/visitador/internal/client/storage"
	"github.com/farmatrack/visitador/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newMemStore собирает QueueStorage в памяти поверх moq мока.
func newMemStore() *storage.QueueStorageMock {
	var ops []models.PendingOperation

	return &storage.QueueStorageMock{
		AppendOperationFunc: func(_ context.Context, op *models.PendingOperation) error {
			ops = append(ops, *op)
			return nil
		},
		OperationsFunc: func(_ context.Context) ([]models.PendingOperation, error) {
			out := make([]models.PendingOperation, len(ops))
			copy(out, ops)
			return out, nil
		},
		UpdateOperationFunc: func(_ context.Context, op *models.PendingOperation) error {
			for i := range ops {
				if ops[i].ID == op.ID {
					ops[i] = *op
					return nil
				}
			}
			return storage.ErrOperationNotFound
		},
		RemoveOperationFunc: func(_ context.Context, id string) error {
			for i := range ops {
				if ops[i].ID == id {
					ops = append(ops[:i], ops[i+1:]...)
					return nil
				}
			}
			return nil
		},
	}
}

// newMemDrafts собирает DraftStorage в памяти поверх moq мока.
func newMemDrafts() *storage.DraftStorageMock {
	drafts := make(map[string]json.RawMessage)

	return &storage.DraftStorageMock{
		SaveDraftFunc: func(_ context.Context, _ models.OperationKind, id string, payload json.RawMessage) error {
			drafts[id] = payload
			return nil
		},
		DraftsFunc: func(_ context.Context, _ models.OperationKind) (map[string]json.RawMessage, error) {
			return drafts, nil
		},
		RemoveDraftFunc: func(_ context.Context, _ models.OperationKind, id string) error {
			delete(drafts, id)
			return nil
		},
	}
}

func TestEnqueue_AssignsIDAndPersists(t *testing.T) {
	svc := NewService(newMemStore(), newMemDrafts(), testLogger())
	ctx := context.Background()

	id, err := svc.Enqueue(ctx, models.OpRecordVisit, models.VisitRecord{DoctorID: "doc-1"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "op_"))

	ops, err := svc.PeekAll(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, id, ops[0].ID)
	assert.Equal(t, models.OpRecordVisit, ops[0].Kind)
	assert.Equal(t, models.StatusPending, ops[0].Status)
	assert.False(t, ops[0].CreatedAt.IsZero())
}

func TestEnqueue_RejectsUnknownKind(t *testing.T) {
	svc := NewService(newMemStore(), newMemDrafts(), testLogger())

	_, err := svc.Enqueue(context.Background(), models.OperationKind("bogus"), nil)
	require.Error(t, err)
}

func TestEnqueue_PreservesFIFOOrder(t *testing.T) {
	svc := NewService(newMemStore(), newMemDrafts(), testLogger())
	ctx := context.Background()

	var ids []string

	for range 5 {
		id, err := svc.Enqueue(ctx, models.OpSubmitForm, models.SatisfactionForm{VisitID: "v1"})
		require.NoError(t, err)

		ids = append(ids, id)
	}

	ops, err := svc.PeekAll(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 5)

	for i, op := range ops {
		assert.Equal(t, ids[i], op.ID)
	}
}

func TestRecordFailure_IncrementsRetryCount(t *testing.T) {
	svc := NewService(newMemStore(), newMemDrafts(), testLogger())
	ctx := context.Background()

	id, err := svc.Enqueue(ctx, models.OpRecordVisit, models.VisitRecord{})
	require.NoError(t, err)

	require.NoError(t, svc.RecordFailure(ctx, id, errors.New("connection refused")))

	ops, err := svc.PeekAll(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.StatusFailed, ops[0].Status)
	assert.Equal(t, 1, ops[0].RetryCount)
	assert.Equal(t, "connection refused", ops[0].LastError)
}

func TestRecordFailure_QuarantineAfterMaxRetries(t *testing.T) {
	svc := NewService(newMemStore(), newMemDrafts(), testLogger())
	ctx := context.Background()

	id, err := svc.Enqueue(ctx, models.OpRecordVisit, models.VisitRecord{})
	require.NoError(t, err)

	for range maxRetries {
		require.NoError(t, svc.RecordFailure(ctx, id, errors.New("timeout")))
	}

	ops, err := svc.PeekAll(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.StatusQuarantined, ops[0].Status)
	assert.Equal(t, maxRetries, ops[0].RetryCount)

	// Операция остается в очереди до явного удаления пользователем.
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Quarantined)
}

func TestMarkInFlightAndRemove(t *testing.T) {
	svc := NewService(newMemStore(), newMemDrafts(), testLogger())
	ctx := context.Background()

	id, err := svc.Enqueue(ctx, models.OpUpdatePlan, models.UpdatePlanPayload{PlanID: "p1"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkInFlight(ctx, id))

	ops, err := svc.PeekAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInFlight, ops[0].Status)

	require.NoError(t, svc.Remove(ctx, id))

	ops, err = svc.PeekAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestMarkInFlight_UnknownID(t *testing.T) {
	svc := NewService(newMemStore(), newMemDrafts(), testLogger())

	err := svc.MarkInFlight(context.Background(), "op_missing")
	require.ErrorIs(t, err, storage.ErrOperationNotFound)
}

func TestDrop(t *testing.T) {
	drafts := newMemDrafts()
	svc := NewService(newMemStore(), drafts, testLogger())
	ctx := context.Background()

	id, err := svc.Enqueue(ctx, models.OpSubmitForm, models.SatisfactionForm{})
	require.NoError(t, err)

	require.NoError(t, drafts.SaveDraft(ctx, models.OpSubmitForm, id, json.RawMessage(`{}`)))

	require.NoError(t, svc.Drop(ctx, id))

	ops, err := svc.PeekAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)

	// Черновик уходит вместе с операцией: в истории он больше не всплывет.
	left, err := drafts.Drafts(ctx, models.OpSubmitForm)
	require.NoError(t, err)
	assert.Empty(t, left)

	// Повторный drop сообщает, что операции уже нет.
	require.ErrorIs(t, svc.Drop(ctx, id), storage.ErrOperationNotFound)
}

func TestStats(t *testing.T) {
	svc := NewService(newMemStore(), newMemDrafts(), testLogger())
	ctx := context.Background()

	id1, err := svc.Enqueue(ctx, models.OpSubmitForm, models.SatisfactionForm{})
	require.NoError(t, err)

	_, err = svc.Enqueue(ctx, models.OpRecordVisit, models.VisitRecord{})
	require.NoError(t, err)

	require.NoError(t, svc.RecordFailure(ctx, id1, errors.New("boom")))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Failed)
	assert.Zero(t, stats.Quarantined)
	assert.Equal(t, 1, stats.ByKind[models.OpSubmitForm])
	assert.Equal(t, 1, stats.ByKind[models.OpRecordVisit])
}
