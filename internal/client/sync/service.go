// Package sync доставляет на сервер операции, накопленные в offline
// очереди. Проход выполняется строго в порядке очереди, единственным
// экземпляром за раз.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	httpclient "github.com/farmatrack/visitador/internal/client/api"
	"github.com/farmatrack/visitador/internal/client/netmon"
	"github.com/farmatrack/visitador/internal/client/queue"
	"github.com/farmatrack/visitador/internal/client/storage"
	"github.com/farmatrack/visitador/internal/models"
)

//go:generate moq -out service_mock.go . Service

// ErrPassInProgress возвращается при попытке запустить второй проход
// одновременно с активным.
var ErrPassInProgress = errors.New("reconciliation pass already in progress")

// Service определяет интерфейс синхронизации offline очереди.
type Service interface {
	// Reconcile выполняет один проход по очереди: каждая операция
	// отправляется на сервер в порядке добавления.
	Reconcile(ctx context.Context) (*Result, error)

	// Run запускает фоновую синхронизацию: проход по интервалу и по
	// событию восстановления связи. Блокирует до отмены контекста.
	Run(ctx context.Context, events <-chan netmon.Event, interval time.Duration)
}

// Result содержит итог одного прохода.
type Result struct {
	Succeeded int // доставлено и удалено из очереди
	Failed    int // попытка не удалась, операция осталась в очереди
	Skipped   int // карантин, в автоматический повтор не входит
}

type service struct {
	apiClient httpclient.ClientAPI
	queue     queue.Service
	drafts    storage.DraftStorage
	logger    *slog.Logger

	running atomic.Bool
}

// NewService создает сервис синхронизации.
func NewService(apiClient httpclient.ClientAPI, q queue.Service, drafts storage.DraftStorage, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		queue:     q,
		drafts:    drafts,
		logger:    logger,
	}
}

func (s *service) Reconcile(ctx context.Context) (*Result, error) {
	// Только один проход одновременно: параллельные проходы могли бы
	// доставить одну операцию дважды.
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrPassInProgress
	}
	defer s.running.Store(false)

	ops, err := s.queue.PeekAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read queue: %w", err)
	}

	result := &Result{}

	for i := range ops {
		op := ops[i]

		if op.Status == models.StatusQuarantined {
			result.Skipped++

			continue
		}

		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := s.deliver(ctx, &op); err != nil {
			// Сессия умерла: продолжать проход бессмысленно. Попытка
			// операции не засчитывается, после нового логина она
			// уйдет следующим проходом.
			if errors.Is(err, httpclient.ErrSessionExpired) {
				if reqErr := s.queue.Requeue(ctx, op.ID); reqErr != nil {
					s.logger.Error("failed to requeue operation after session expiry",
						"id", op.ID, "error", reqErr)
				}

				return result, err
			}

			result.Failed++

			if recErr := s.queue.RecordFailure(ctx, op.ID, err); recErr != nil {
				s.logger.Error("failed to record delivery failure",
					"id", op.ID, "error", recErr)
			}

			s.logger.Warn("operation delivery failed",
				"id", op.ID, "kind", op.Kind, "error", err)

			continue
		}

		result.Succeeded++
	}

	if result.Succeeded > 0 || result.Failed > 0 {
		s.logger.Info("reconciliation pass finished",
			"succeeded", result.Succeeded,
			"failed", result.Failed,
			"skipped", result.Skipped)
	}

	return result, nil
}

// deliver отправляет одну операцию и, при успехе, удаляет её вместе
// с черновиком. Удаление сразу после доставки не дает повторному
// проходу отправить операцию второй раз.
func (s *service) deliver(ctx context.Context, op *models.PendingOperation) error {
	if err := s.queue.MarkInFlight(ctx, op.ID); err != nil {
		return fmt.Errorf("failed to mark operation in flight: %w", err)
	}

	if err := s.dispatch(ctx, op); err != nil {
		return err
	}

	if err := s.queue.Remove(ctx, op.ID); err != nil {
		return fmt.Errorf("delivered but failed to dequeue: %w", err)
	}

	if err := s.drafts.RemoveDraft(ctx, op.Kind, op.ID); err != nil {
		s.logger.Warn("failed to remove delivered draft", "id", op.ID, "error", err)
	}

	s.logger.Info("operation delivered", "id", op.ID, "kind", op.Kind)

	return nil
}

// dispatch выполняет серверный вызов, соответствующий типу операции.
func (s *service) dispatch(ctx context.Context, op *models.PendingOperation) error {
	switch op.Kind {
	case models.OpSubmitForm:
		form, err := op.DecodeFormPayload()
		if err != nil {
			return err
		}

		_, err = s.apiClient.CreateForm(ctx, form)

		return err
	case models.OpRecordVisit:
		visit, err := op.DecodeVisitPayload()
		if err != nil {
			return err
		}

		_, err = s.apiClient.PerformVisit(ctx, visit)

		return err
	case models.OpUpdatePlan:
		payload, err := op.DecodePlanPayload()
		if err != nil {
			return err
		}

		return s.apiClient.UpdatePlan(ctx, payload.PlanID, payload.Change)
	default:
		return fmt.Errorf("unknown operation kind %q", op.Kind)
	}
}

func (s *service) Run(ctx context.Context, events <-chan netmon.Event, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Стартовый проход: очередь могла накопиться между запусками.
	s.runPass(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}

			// Интересен только переход offline -> online.
			if !event.Current.Online || event.Previous.Online {
				continue
			}

			s.logger.Info("connectivity restored, starting reconciliation")
			s.runPass(ctx)
		case <-ticker.C:
			s.runPass(ctx)
		}
	}
}

func (s *service) runPass(ctx context.Context) {
	if _, err := s.Reconcile(ctx); err != nil && !errors.Is(err, ErrPassInProgress) {
		s.logger.Error("reconciliation pass failed", "error", err)
	}
}
