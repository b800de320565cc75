// Package queue управляет долговременной FIFO очередью операций,
// созданных без сети. Операция покидает очередь только после успешной
// доставки на сервер или явного удаления пользователем.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/farmatrack/visitador/internal/client/storage"
	"github.com/farmatrack/visitador/internal/models"
)

// maxRetries — число неудачных попыток доставки, после которого операция
// помечается quarantined и исключается из автоматических повторов.
const maxRetries = 5

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс очереди отложенных операций.
type Service interface {
	// Enqueue добавляет операцию в конец очереди и возвращает её id.
	Enqueue(ctx context.Context, kind models.OperationKind, payload any) (string, error)

	// PeekAll возвращает все операции в порядке добавления, не изменяя их.
	PeekAll(ctx context.Context) ([]models.PendingOperation, error)

	// MarkInFlight помечает операцию как отправляемую.
	MarkInFlight(ctx context.Context, id string) error

	// Requeue возвращает отправляемую операцию в статус pending, не
	// засчитывая попытку доставки.
	Requeue(ctx context.Context, id string) error

	// Remove удаляет доставленную операцию.
	Remove(ctx context.Context, id string) error

	// RecordFailure фиксирует неудачную попытку доставки. После maxRetries
	// попыток операция переводится в карантин.
	RecordFailure(ctx context.Context, id string, cause error) error

	// Drop удаляет операцию по требованию пользователя, независимо от
	// её состояния.
	Drop(ctx context.Context, id string) error

	// Stats возвращает сводку по очереди.
	Stats(ctx context.Context) (*Stats, error)
}

// Stats содержит сводку по состоянию очереди.
type Stats struct {
	Total       int
	Pending     int
	Failed      int
	Quarantined int
	ByKind      map[models.OperationKind]int
}

type service struct {
	store  storage.QueueStorage
	drafts storage.DraftStorage
	logger *slog.Logger
	now    func() time.Time
}

// NewService создает новый сервис очереди.
func NewService(store storage.QueueStorage, drafts storage.DraftStorage, logger *slog.Logger) Service {
	return &service{
		store:  store,
		drafts: drafts,
		logger: logger,
		now:    time.Now,
	}
}

func (s *service) Enqueue(ctx context.Context, kind models.OperationKind, payload any) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("unknown operation kind %q", kind)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal operation payload: %w", err)
	}

	op := &models.PendingOperation{
		ID:        newOperationID(s.now()),
		Kind:      kind,
		Status:    models.StatusPending,
		Payload:   data,
		CreatedAt: s.now(),
	}

	if err := s.store.AppendOperation(ctx, op); err != nil {
		return "", fmt.Errorf("failed to persist operation: %w", err)
	}

	s.logger.Info("operation queued", "id", op.ID, "kind", op.Kind)

	return op.ID, nil
}

func (s *service) PeekAll(ctx context.Context) ([]models.PendingOperation, error) {
	ops, err := s.store.Operations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read queue: %w", err)
	}

	return ops, nil
}

func (s *service) MarkInFlight(ctx context.Context, id string) error {
	return s.mutate(ctx, id, func(op *models.PendingOperation) {
		op.Status = models.StatusInFlight
	})
}

func (s *service) Requeue(ctx context.Context, id string) error {
	return s.mutate(ctx, id, func(op *models.PendingOperation) {
		op.Status = models.StatusPending
	})
}

func (s *service) Remove(ctx context.Context, id string) error {
	if err := s.store.RemoveOperation(ctx, id); err != nil {
		return fmt.Errorf("failed to remove operation %s: %w", id, err)
	}

	return nil
}

func (s *service) RecordFailure(ctx context.Context, id string, cause error) error {
	return s.mutate(ctx, id, func(op *models.PendingOperation) {
		op.RetryCount++
		op.LastError = cause.Error()

		if op.RetryCount >= maxRetries {
			op.Status = models.StatusQuarantined
			s.logger.Warn("operation quarantined after repeated failures",
				"id", op.ID, "kind", op.Kind, "retries", op.RetryCount, "error", cause)

			return
		}

		op.Status = models.StatusFailed
	})
}

func (s *service) Drop(ctx context.Context, id string) error {
	ops, err := s.store.Operations(ctx)
	if err != nil {
		return fmt.Errorf("failed to read queue: %w", err)
	}

	var kind models.OperationKind

	found := false

	for i := range ops {
		if ops[i].ID == id {
			kind = ops[i].Kind
			found = true

			break
		}
	}

	if !found {
		return storage.ErrOperationNotFound
	}

	if err := s.store.RemoveOperation(ctx, id); err != nil {
		return fmt.Errorf("failed to drop operation %s: %w", id, err)
	}

	// Черновик больше никому не нужен: операция не будет доставлена.
	if err := s.drafts.RemoveDraft(ctx, kind, id); err != nil {
		s.logger.Warn("failed to remove draft of dropped operation",
			"id", id, "error", err)
	}

	s.logger.Info("operation dropped by user", "id", id, "kind", kind)

	return nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	ops, err := s.store.Operations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read queue: %w", err)
	}

	stats := &Stats{
		Total:  len(ops),
		ByKind: make(map[models.OperationKind]int),
	}

	for i := range ops {
		stats.ByKind[ops[i].Kind]++

		switch ops[i].Status {
		case models.StatusPending, models.StatusInFlight:
			stats.Pending++
		case models.StatusFailed:
			stats.Failed++
		case models.StatusQuarantined:
			stats.Quarantined++
		}
	}

	return stats, nil
}

// mutate читает операцию, применяет изменение и сохраняет её обратно,
// не меняя позиции в очереди.
func (s *service) mutate(ctx context.Context, id string, change func(*models.PendingOperation)) error {
	ops, err := s.store.Operations(ctx)
	if err != nil {
		return fmt.Errorf("failed to read queue: %w", err)
	}

	for i := range ops {
		if ops[i].ID != id {
			continue
		}

		op := ops[i]
		change(&op)

		if err := s.store.UpdateOperation(ctx, &op); err != nil {
			return fmt.Errorf("failed to update operation %s: %w", id, err)
		}

		return nil
	}

	return storage.ErrOperationNotFound
}

// newOperationID генерирует устойчивый к коллизиям id операции.
// Временная метка сохраняет сортируемость по времени создания.
func newOperationID(now time.Time) string {
	suffix := uuid.NewString()

	return fmt.Sprintf("op_%d_%s", now.UnixNano(), suffix[:8])
}
