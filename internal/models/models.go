package models

import "time"

// UserProfile представляет профиль визитадора, полученный с сервера.
// Кешируется локально вместе с сессией для offline доступа.
type UserProfile struct {
	ID        string `json:"id"`        // ID уникальный идентификатор пользователя (UUID)
	Name      string `json:"name"`      // Name полное имя визитадора
	Email     string `json:"email"`     // Email рабочий email
	Territory string `json:"territory"` // Territory закрепленная территория (зона визитов)
}

// GeoPoint представляет GPS координату, полученную от location провайдера.
type GeoPoint struct {
	Timestamp time.Time `json:"timestamp"` // Timestamp момент получения координаты
	Latitude  float64   `json:"latitude"`  // Latitude широта в градусах [-90, 90]
	Longitude float64   `json:"longitude"` // Longitude долгота в градусах [-180, 180]
	Accuracy  float64   `json:"accuracy"`  // Accuracy погрешность в метрах (0 = неизвестна)
}

// Doctor представляет врача, которого посещает визитадор.
type Doctor struct {
	ID          string  `json:"id"`                    // ID уникальный идентификатор врача
	Name        string  `json:"name"`                  // Name полное имя врача
	Specialty   string  `json:"specialty"`             // Specialty специализация (например, "cardiology")
	Institution string  `json:"institution,omitempty"` // Institution клиника или больница
	Address     string  `json:"address,omitempty"`     // Address адрес приема
	Latitude    float64 `json:"latitude,omitempty"`    // Latitude широта места приема
	Longitude   float64 `json:"longitude,omitempty"`   // Longitude долгота места приема
}

// PlannedVisit представляет запланированный визит внутри плана.
type PlannedVisit struct {
	ScheduledAt time.Time `json:"scheduled_at"` // ScheduledAt запланированное время визита
	ID          string    `json:"id"`           // ID идентификатор записи в плане
	DoctorID    string    `json:"doctor_id"`    // DoctorID идентификатор врача
	Status      string    `json:"status"`       // Status "planned", "done", "skipped"
}

// VisitPlan представляет недельный план визитов.
type VisitPlan struct {
	WeekStart time.Time      `json:"week_start"` // WeekStart начало недели плана
	ID        string         `json:"id"`         // ID идентификатор плана
	Status    string         `json:"status"`     // Status статус плана ("draft", "active", "closed")
	Visits    []PlannedVisit `json:"visits"`     // Visits запланированные визиты в порядке обхода
}

// PlanChange представляет изменение плана, отправляемое на сервер.
// Пустые поля не меняются (частичное обновление).
type PlanChange struct {
	Status      string         `json:"status,omitempty"`       // Status новый статус плана
	AddVisits   []PlannedVisit `json:"add_visits,omitempty"`   // AddVisits визиты для добавления
	RemoveVisit string         `json:"remove_visit,omitempty"` // RemoveVisit id визита для удаления
}

// VisitRecord представляет фактически совершенный визит.
// Создается визитадором в поле, возможно без связи с сервером.
type VisitRecord struct {
	PerformedAt time.Time `json:"performed_at"`       // PerformedAt фактическое время визита
	DoctorID    string    `json:"doctor_id"`          // DoctorID идентификатор врача
	PlanID      string    `json:"plan_id,omitempty"`  // PlanID план, к которому относится визит (опционально)
	Notes       string    `json:"notes,omitempty"`    // Notes заметки визитадора
	Location    *GeoPoint `json:"location,omitempty"` // Location координата места визита
}

// SatisfactionForm представляет формуляр удовлетворенности,
// заполняемый врачом по итогам визита. Подпись и GPS обязательны.
type SatisfactionForm struct {
	VisitID   string    `json:"visit_id"`           // VisitID идентификатор совершенного визита
	Rating    int       `json:"rating"`             // Rating оценка удовлетворенности от 1 до 5
	Comments  string    `json:"comments,omitempty"` // Comments комментарии врача
	Signature string    `json:"signature"`          // Signature подпись врача (base64 PNG)
	Location  *GeoPoint `json:"location"`           // Location GPS координата места подписания
}
