package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// OperationKind тип отложенной операции. Закрытое множество значений:
// каждая операция из очереди диспетчеризуется исчерпывающим switch,
// неизвестный kind - это ошибка данных, а не молчаливый пропуск.
type OperationKind string

const (
	// OpSubmitForm отправка формуляра удовлетворенности
	OpSubmitForm OperationKind = "submit_form"
	// OpRecordVisit запись совершенного визита
	OpRecordVisit OperationKind = "record_visit"
	// OpUpdatePlan изменение плана визитов
	OpUpdatePlan OperationKind = "update_plan"
)

// Valid проверяет, что kind принадлежит известному множеству операций
func (k OperationKind) Valid() bool {
	switch k {
	case OpSubmitForm, OpRecordVisit, OpUpdatePlan:
		return true
	}
	return false
}

// OperationStatus статус отложенной операции в очереди
type OperationStatus string

const (
	// StatusPending операция ожидает отправки
	StatusPending OperationStatus = "pending"
	// StatusInFlight операция отправляется прямо сейчас
	StatusInFlight OperationStatus = "in_flight"
	// StatusFailed последняя попытка отправки завершилась ошибкой
	StatusFailed OperationStatus = "failed"
	// StatusQuarantined операция исчерпала лимит попыток и больше
	// не отправляется автоматически; удаляется только явной командой
	StatusQuarantined OperationStatus = "quarantined"
)

// PendingOperation представляет одну отложенную мутацию в durable очереди.
// Создается при отсутствии связи с сервером, удаляется только после
// подтверждения приема сервером.
type PendingOperation struct {
	CreatedAt  time.Time       `json:"created_at"`           // CreatedAt момент постановки в очередь
	ID         string          `json:"id"`                   // ID уникальный идентификатор операции
	Kind       OperationKind   `json:"kind"`                 // Kind тип операции
	Status     OperationStatus `json:"status"`               // Status текущий статус
	LastError  string          `json:"last_error,omitempty"` // LastError текст последней ошибки отправки
	Payload    json.RawMessage `json:"payload"`              // Payload сериализованные данные операции
	RetryCount int             `json:"retry_count"`          // RetryCount число неудачных попыток отправки
}

// UpdatePlanPayload полезная нагрузка операции OpUpdatePlan
type UpdatePlanPayload struct {
	PlanID string     `json:"plan_id"`
	Change PlanChange `json:"change"`
}

// DecodeFormPayload декодирует payload операции OpSubmitForm
func (op *PendingOperation) DecodeFormPayload() (*SatisfactionForm, error) {
	if op.Kind != OpSubmitForm {
		return nil, fmt.Errorf("operation %s has kind %q, want %q", op.ID, op.Kind, OpSubmitForm)
	}
	var form SatisfactionForm
	if err := json.Unmarshal(op.Payload, &form); err != nil {
		return nil, fmt.Errorf("failed to decode form payload: %w", err)
	}
	return &form, nil
}

// DecodeVisitPayload декодирует payload операции OpRecordVisit
func (op *PendingOperation) DecodeVisitPayload() (*VisitRecord, error) {
	if op.Kind != OpRecordVisit {
		return nil, fmt.Errorf("operation %s has kind %q, want %q", op.ID, op.Kind, OpRecordVisit)
	}
	var visit VisitRecord
	if err := json.Unmarshal(op.Payload, &visit); err != nil {
		return nil, fmt.Errorf("failed to decode visit payload: %w", err)
	}
	return &visit, nil
}

// DecodePlanPayload декодирует payload операции OpUpdatePlan
func (op *PendingOperation) DecodePlanPayload() (*UpdatePlanPayload, error) {
	if op.Kind != OpUpdatePlan {
		return nil, fmt.Errorf("operation %s has kind %q, want %q", op.ID, op.Kind, OpUpdatePlan)
	}
	var payload UpdatePlanPayload
	if err := json.Unmarshal(op.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode plan payload: %w", err)
	}
	return &payload, nil
}
