package api

import "time"

// VisitReceipt представляет подтверждение сервера о записанном визите
type VisitReceipt struct {
	RecordedAt time.Time `json:"recorded_at"`
	VisitID    string    `json:"visit_id"`
}

// FormReceipt представляет подтверждение сервера о принятом формуляре
type FormReceipt struct {
	ReceivedAt time.Time `json:"received_at"`
	FormID     string    `json:"form_id"`
}
