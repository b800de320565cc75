package data

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/farmatrack/visitador/internal/client/api"
	"github.com/farmatrack/visitador/internal/client/cache"
	"github.com/farmatrack/visitador/internal/client/location"
	"github.com/farmatrack/visitador/internal/client/queue"
	"github.com/farmatrack/visitador/internal/client/storage"
	"github.com/farmatrack/visitador/internal/models"
	"github.com/farmatrack/visitador/internal/validation"
	"github.com/farmatrack/visitador/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testEnv собирает сервис с хранилищами в памяти и настраиваемым API.
type testEnv struct {
	svc          Service
	api          *httpclient.ClientAPIMock
	drafts       map[models.OperationKind]map[string]json.RawMessage
	queue        queue.Service
	cacheEntries map[string]*storage.CacheEntry
}

func newTestEnv(t *testing.T, apiMock *httpclient.ClientAPIMock, provider location.Provider) *testEnv {
	t.Helper()

	cacheEntries := make(map[string]*storage.CacheEntry)
	cacheStore := &storage.CacheStorageMock{
		SaveEntryFunc: func(_ context.Context, entry *storage.CacheEntry) error {
			cacheEntries[entry.Key] = entry
			return nil
		},
		EntryFunc: func(_ context.Context, key string) (*storage.CacheEntry, error) {
			entry, ok := cacheEntries[key]
			if !ok {
				return nil, storage.ErrCacheEntryNotFound
			}
			return entry, nil
		},
		DeleteEntryFunc: func(_ context.Context, key string) error {
			delete(cacheEntries, key)
			return nil
		},
		KeysFunc: func(_ context.Context) ([]string, error) {
			keys := make([]string, 0, len(cacheEntries))
			for key := range cacheEntries {
				keys = append(keys, key)
			}
			return keys, nil
		},
		MetadataFunc: func(_ context.Context) (map[string]storage.EntryMeta, error) {
			return map[string]storage.EntryMeta{}, nil
		},
	}

	var ops []models.PendingOperation

	queueStore := &storage.QueueStorageMock{
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

	drafts := make(map[models.OperationKind]map[string]json.RawMessage)
	draftStore := &storage.DraftStorageMock{
		SaveDraftFunc: func(_ context.Context, kind models.OperationKind, id string, payload json.RawMessage) error {
			if drafts[kind] == nil {
				drafts[kind] = make(map[string]json.RawMessage)
			}
			drafts[kind][id] = payload
			return nil
		},
		DraftsFunc: func(_ context.Context, kind models.OperationKind) (map[string]json.RawMessage, error) {
			return drafts[kind], nil
		},
		RemoveDraftFunc: func(_ context.Context, kind models.OperationKind, id string) error {
			delete(drafts[kind], id)
			return nil
		},
	}

	queueSvc := queue.NewService(queueStore, draftStore, testLogger())

	svc := NewService(
		apiMock,
		cache.NewService(cacheStore, testLogger()),
		queueSvc,
		draftStore,
		location.NewService(provider, testLogger()),
		testLogger(),
	)

	return &testEnv{
		svc:          svc,
		api:          apiMock,
		drafts:       drafts,
		queue:        queueSvc,
		cacheEntries: cacheEntries,
	}
}

func staticLima() *location.Static {
	return &location.Static{Latitude: -12.0464, Longitude: -77.0428}
}

func validVisit() *models.VisitRecord {
	return &models.VisitRecord{
		DoctorID:    "doc-1",
		PerformedAt: time.Now(),
		Notes:       "muestra entregada",
	}
}

func validForm() *models.SatisfactionForm {
	return &models.SatisfactionForm{
		VisitID:   "v1",
		Rating:    5,
		Signature: "data:image/png;base64,abc",
	}
}

func unavailableErr() error {
	return &httpclient.RequestError{Err: errors.New("connection refused")}
}

func TestRecordVisit_DirectDelivery(t *testing.T) {
	env := newTestEnv(t, &httpclient.ClientAPIMock{
		PerformVisitFunc: func(_ context.Context, visit *models.VisitRecord) (*api.VisitReceipt, error) {
			assert.NotNil(t, visit.Location) // геопривязка подставлена
			return &api.VisitReceipt{VisitID: "srv-1"}, nil
		},
	}, staticLima())

	result, err := env.svc.RecordVisit(context.Background(), validVisit())
	require.NoError(t, err)
	assert.False(t, result.Queued)
	assert.Empty(t, result.OperationID)
}

func TestRecordVisit_QueuedWhenOffline(t *testing.T) {
	env := newTestEnv(t, &httpclient.ClientAPIMock{
		PerformVisitFunc: func(_ context.Context, _ *models.VisitRecord) (*api.VisitReceipt, error) {
			return nil, unavailableErr()
		},
	}, staticLima())

	result, err := env.svc.RecordVisit(context.Background(), validVisit())
	require.NoError(t, err)
	assert.True(t, result.Queued)
	assert.NotEmpty(t, result.OperationID)

	// Операция в очереди, черновик сохранен под её id.
	ops, err := env.queue.PeekAll(context.Background())
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, result.OperationID, ops[0].ID)
	assert.Contains(t, env.drafts[models.OpRecordVisit], result.OperationID)
}

func TestRecordVisit_WithoutLocationStillAccepted(t *testing.T) {
	// Источника координат нет: визит уходит без геопривязки.
	env := newTestEnv(t, &httpclient.ClientAPIMock{
		PerformVisitFunc: func(_ context.Context, visit *models.VisitRecord) (*api.VisitReceipt, error) {
			assert.Nil(t, visit.Location)
			return &api.VisitReceipt{}, nil
		},
	}, location.Unavailable{})

	_, err := env.svc.RecordVisit(context.Background(), validVisit())
	require.NoError(t, err)
}

func TestRecordVisit_ValidationFailureIsNotQueued(t *testing.T) {
	env := newTestEnv(t, &httpclient.ClientAPIMock{}, staticLima())

	_, err := env.svc.RecordVisit(context.Background(), &models.VisitRecord{})
	require.ErrorIs(t, err, validation.ErrMissingDoctorID)

	ops, err := env.queue.PeekAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestSubmitForm_AcquiresLocation(t *testing.T) {
	env := newTestEnv(t, &httpclient.ClientAPIMock{
		CreateFormFunc: func(_ context.Context, form *models.SatisfactionForm) (*api.FormReceipt, error) {
			require.NotNil(t, form.Location)
			assert.InDelta(t, -12.0464, form.Location.Latitude, 1e-9)
			return &api.FormReceipt{FormID: "f1"}, nil
		},
	}, staticLima())

	result, err := env.svc.SubmitForm(context.Background(), validForm())
	require.NoError(t, err)
	assert.False(t, result.Queued)
}

func TestSubmitForm_FailsWithoutLocationSource(t *testing.T) {
	env := newTestEnv(t, &httpclient.ClientAPIMock{}, location.Unavailable{})

	_, err := env.svc.SubmitForm(context.Background(), validForm())
	require.ErrorIs(t, err, location.ErrUnavailable)
}

func TestSubmitForm_ServerRejectionIsNotQueued(t *testing.T) {
	env := newTestEnv(t, &httpclient.ClientAPIMock{
		CreateFormFunc: func(_ context.Context, _ *models.SatisfactionForm) (*api.FormReceipt, error) {
			return nil, &httpclient.APIError{StatusCode: 422, Message: "duplicate form"}
		},
	}, staticLima())

	_, err := env.svc.SubmitForm(context.Background(), validForm())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate form")

	ops, err := env.queue.PeekAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestUpdatePlan_EmptyChangeRejected(t *testing.T) {
	env := newTestEnv(t, &httpclient.ClientAPIMock{}, staticLima())

	_, err := env.svc.UpdatePlan(context.Background(), "p1", models.PlanChange{})
	require.ErrorIs(t, err, validation.ErrEmptyChange)
}

func TestUpdatePlan_QueuedWhenOffline(t *testing.T) {
	env := newTestEnv(t, &httpclient.ClientAPIMock{
		UpdatePlanFunc: func(_ context.Context, _ string, _ models.PlanChange) error {
			return unavailableErr()
		},
	}, staticLima())

	result, err := env.svc.UpdatePlan(context.Background(), "p1", models.PlanChange{Status: "completado"})
	require.NoError(t, err)
	assert.True(t, result.Queued)
}

func TestDoctors_SecondReadServedFromCache(t *testing.T) {
	var apiCalls int

	env := newTestEnv(t, &httpclient.ClientAPIMock{
		DoctorsFunc: func(_ context.Context) ([]models.Doctor, error) {
			apiCalls++
			return []models.Doctor{{ID: "doc-1", Name: "Dr. Rojas"}}, nil
		},
	}, staticLima())

	ctx := context.Background()

	doctors, stale, err := env.svc.Doctors(ctx)
	require.NoError(t, err)
	assert.False(t, stale)
	require.Len(t, doctors, 1)

	doctors, _, err = env.svc.Doctors(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 1)

	assert.Equal(t, 1, apiCalls)
}

func TestDoctors_StaleFallbackWhenOffline(t *testing.T) {
	online := true

	env := newTestEnv(t, &httpclient.ClientAPIMock{
		DoctorsFunc: func(_ context.Context) ([]models.Doctor, error) {
			if !online {
				return nil, unavailableErr()
			}
			return []models.Doctor{{ID: "doc-1"}}, nil
		},
	}, staticLima())

	ctx := context.Background()

	_, _, err := env.svc.Doctors(ctx)
	require.NoError(t, err)

	// Протухание симулируем правкой записи в хранилище, сервер пропадает.
	entry := env.cacheEntries["doctors:list"]
	require.NotNil(t, entry)
	entry.ExpiresAt = time.Now().Add(-time.Minute)

	online = false

	doctors, stale, err := env.svc.Doctors(ctx)
	require.NoError(t, err)
	assert.True(t, stale)
	require.Len(t, doctors, 1)
	assert.Equal(t, "doc-1", doctors[0].ID)
}

func TestVisitHistory_MergesPendingVisits(t *testing.T) {
	env := newTestEnv(t, &httpclient.ClientAPIMock{
		VisitHistoryFunc: func(_ context.Context) ([]models.VisitRecord, error) {
			return []models.VisitRecord{{DoctorID: "doc-1"}}, nil
		},
		PerformVisitFunc: func(_ context.Context, _ *models.VisitRecord) (*api.VisitReceipt, error) {
			return nil, unavailableErr()
		},
	}, staticLima())

	ctx := context.Background()

	// Визит уходит в очередь, но должен быть виден в истории.
	result, err := env.svc.RecordVisit(ctx, validVisit())
	require.NoError(t, err)
	require.True(t, result.Queued)

	visits, _, err := env.svc.VisitHistory(ctx)
	require.NoError(t, err)
	require.Len(t, visits, 2)

	doctorIDs := []string{visits[0].DoctorID, visits[1].DoctorID}
	assert.Contains(t, doctorIDs, "doc-1")
}

func TestPendingSummary(t *testing.T) {
	env := newTestEnv(t, &httpclient.ClientAPIMock{
		PerformVisitFunc: func(_ context.Context, _ *models.VisitRecord) (*api.VisitReceipt, error) {
			return nil, unavailableErr()
		},
	}, staticLima())

	ctx := context.Background()

	_, err := env.svc.RecordVisit(ctx, validVisit())
	require.NoError(t, err)

	stats, err := env.svc.PendingSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Pending)
}
