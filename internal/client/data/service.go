// Package data — фасад прикладных операций клиента. Чтения идут через
// TTL кэш с fallback на протухшие данные, мутации при недоступном
// сервере прозрачно уходят в offline очередь.
package data

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	httpclient "github.com/farmatrack/visitador/internal/client/api"
	"github.com/farmatrack/visitador/internal/client/cache"
	"github.com/farmatrack/visitador/internal/client/location"
	"github.com/farmatrack/visitador/internal/client/queue"
	"github.com/farmatrack/visitador/internal/client/storage"
	"github.com/farmatrack/visitador/internal/models"
	"github.com/farmatrack/visitador/internal/validation"
)

// Ключи кэша. Списки и отдельные записи разведены префиксами, чтобы
// инвалидация по префиксу накрывала целую сущность.
const (
	keyProfile      = "profile"
	keyDoctorsList  = "doctors:list"
	keyDoctorPrefix = "doctors:"
	keyPlansList    = "plans:list"
	keyVisitHistory = "visits:history"
)

//go:generate moq -out service_mock.go . Service

// Service определяет прикладные операции клиента.
type Service interface {
	// Чтения. Флаг stale означает, что сервер был недоступен и данные
	// взяты из протухшего кэша.
	Profile(ctx context.Context) (*models.UserProfile, bool, error)
	Doctors(ctx context.Context) ([]models.Doctor, bool, error)
	Doctor(ctx context.Context, id string) (*models.Doctor, bool, error)
	Plans(ctx context.Context) ([]models.VisitPlan, bool, error)

	// VisitHistory возвращает историю визитов с сервера, дополненную
	// локальными визитами, еще не покинувшими offline очередь.
	VisitHistory(ctx context.Context) ([]models.VisitRecord, bool, error)

	// Мутации. При недоступном сервере операция сохраняется в очередь,
	// результат сообщает об этом флагом Queued.
	RecordVisit(ctx context.Context, visit *models.VisitRecord) (*MutationResult, error)
	SubmitForm(ctx context.Context, form *models.SatisfactionForm) (*MutationResult, error)
	UpdatePlan(ctx context.Context, planID string, change models.PlanChange) (*MutationResult, error)

	// PendingSummary возвращает сводку по offline очереди.
	PendingSummary(ctx context.Context) (*queue.Stats, error)
}

// MutationResult описывает исход мутации.
type MutationResult struct {
	OperationID string // id операции в очереди, если Queued
	Queued      bool   // операция отложена до появления сети
}

type service struct {
	apiClient httpclient.ClientAPI
	cache     cache.Service
	queue     queue.Service
	drafts    storage.DraftStorage
	location  *location.Service
	logger    *slog.Logger
}

// NewService создает прикладной сервис.
func NewService(
	apiClient httpclient.ClientAPI,
	cacheSvc cache.Service,
	queueSvc queue.Service,
	drafts storage.DraftStorage,
	locationSvc *location.Service,
	logger *slog.Logger,
) Service {
	return &service{
		apiClient: apiClient,
		cache:     cacheSvc,
		queue:     queueSvc,
		drafts:    drafts,
		location:  locationSvc,
		logger:    logger,
	}
}

func (s *service) Profile(ctx context.Context) (*models.UserProfile, bool, error) {
	return cachedFetch[*models.UserProfile](ctx, s.cache, keyProfile, cache.TTLVeryLong,
		func(ctx context.Context) (*models.UserProfile, error) {
			return s.apiClient.Profile(ctx)
		})
}

func (s *service) Doctors(ctx context.Context) ([]models.Doctor, bool, error) {
	return cachedFetch[[]models.Doctor](ctx, s.cache, keyDoctorsList, cache.TTLMedium,
		func(ctx context.Context) ([]models.Doctor, error) {
			return s.apiClient.Doctors(ctx)
		})
}

func (s *service) Doctor(ctx context.Context, id string) (*models.Doctor, bool, error) {
	if id == "" {
		return nil, false, validation.ErrMissingDoctorID
	}

	return cachedFetch[*models.Doctor](ctx, s.cache, keyDoctorPrefix+id, cache.TTLMedium,
		func(ctx context.Context) (*models.Doctor, error) {
			return s.apiClient.Doctor(ctx, id)
		})
}

func (s *service) Plans(ctx context.Context) ([]models.VisitPlan, bool, error) {
	return cachedFetch[[]models.VisitPlan](ctx, s.cache, keyPlansList, cache.TTLShort,
		func(ctx context.Context) ([]models.VisitPlan, error) {
			return s.apiClient.Plans(ctx)
		})
}

func (s *service) VisitHistory(ctx context.Context) ([]models.VisitRecord, bool, error) {
	visits, stale, err := cachedFetch[[]models.VisitRecord](ctx, s.cache, keyVisitHistory, cache.TTLMedium,
		func(ctx context.Context) ([]models.VisitRecord, error) {
			return s.apiClient.VisitHistory(ctx)
		})
	if err != nil {
		return nil, stale, err
	}

	// Недоставленные визиты дополняют историю: пользователь видит
	// и то, что еще не дошло до сервера.
	pending, err := s.drafts.Drafts(ctx, models.OpRecordVisit)
	if err != nil {
		return nil, stale, fmt.Errorf("failed to read pending visits: %w", err)
	}

	for id, raw := range pending {
		var visit models.VisitRecord
		if err := json.Unmarshal(raw, &visit); err != nil {
			s.logger.Warn("skipping unreadable pending visit", "id", id, "error", err)

			continue
		}

		visits = append(visits, visit)
	}

	return visits, stale, nil
}

func (s *service) RecordVisit(ctx context.Context, visit *models.VisitRecord) (*MutationResult, error) {
	// Геопривязка best effort: визит без координат допустим.
	if visit != nil && visit.Location == nil {
		point, err := s.location.ForVisit(ctx)
		if err != nil {
			s.logger.Warn("recording visit without location", "error", err)
		} else {
			visit.Location = point
		}
	}

	if err := validation.ValidateVisit(visit); err != nil {
		return nil, err
	}

	return s.mutate(ctx, models.OpRecordVisit, visit, func(ctx context.Context) error {
		_, err := s.apiClient.PerformVisit(ctx, visit)
		if err == nil {
			s.invalidate(ctx, keyVisitHistory)
		}

		return err
	})
}

func (s *service) SubmitForm(ctx context.Context, form *models.SatisfactionForm) (*MutationResult, error) {
	// Форма без координат не проходит валидацию, поэтому точка
	// запрашивается по строгому профилю до проверки.
	if form != nil && form.Location == nil {
		point, err := s.location.ForForm(ctx)
		if err != nil {
			return nil, fmt.Errorf("form requires a location: %w", err)
		}

		form.Location = point
	}

	if err := validation.ValidateForm(form); err != nil {
		return nil, err
	}

	return s.mutate(ctx, models.OpSubmitForm, form, func(ctx context.Context) error {
		_, err := s.apiClient.CreateForm(ctx, form)

		return err
	})
}

func (s *service) UpdatePlan(ctx context.Context, planID string, change models.PlanChange) (*MutationResult, error) {
	if err := validation.ValidatePlanChange(planID, &change); err != nil {
		return nil, err
	}

	payload := models.UpdatePlanPayload{PlanID: planID, Change: change}

	return s.mutate(ctx, models.OpUpdatePlan, payload, func(ctx context.Context) error {
		err := s.apiClient.UpdatePlan(ctx, planID, change)
		if err == nil {
			s.invalidate(ctx, keyPlansList)
		}

		return err
	})
}

func (s *service) PendingSummary(ctx context.Context) (*queue.Stats, error) {
	return s.queue.Stats(ctx)
}

// mutate пытается выполнить операцию напрямую; если сервер недоступен,
// операция вместе с черновиком сохраняется в очередь.
func (s *service) mutate(ctx context.Context, kind models.OperationKind, payload any, direct func(context.Context) error) (*MutationResult, error) {
	err := direct(ctx)
	if err == nil {
		return &MutationResult{}, nil
	}

	if !httpclient.IsUnavailable(err) {
		// Сервер ответил отказом или сессия умерла: очередь не спасет.
		return nil, err
	}

	id, enqErr := s.queue.Enqueue(ctx, kind, payload)
	if enqErr != nil {
		return nil, fmt.Errorf("server unavailable and failed to queue operation: %w", enqErr)
	}

	raw, marshalErr := json.Marshal(payload)
	if marshalErr == nil {
		if draftErr := s.drafts.SaveDraft(ctx, kind, id, raw); draftErr != nil {
			s.logger.Warn("failed to save draft", "id", id, "error", draftErr)
		}
	}

	s.logger.Info("server unavailable, operation queued", "id", id, "kind", kind)

	return &MutationResult{OperationID: id, Queued: true}, nil
}

func (s *service) invalidate(ctx context.Context, key string) {
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.logger.Warn("failed to invalidate cache", "key", key, "error", err)
	}
}

// cachedFetch оборачивает серверный вызов кэшированием через GetOrFetch.
func cachedFetch[T any](ctx context.Context, c cache.Service, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, bool, error) {
	var zero T

	lookup, err := c.GetOrFetch(ctx, key, ttl, func(ctx context.Context) (json.RawMessage, error) {
		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		return json.Marshal(value)
	})
	if err != nil {
		return zero, false, err
	}

	var value T
	if err := json.Unmarshal(lookup.Data, &value); err != nil {
		return zero, false, fmt.Errorf("failed to decode cached value for %q: %w", key, err)
	}

	return value, lookup.Stale, nil
}
