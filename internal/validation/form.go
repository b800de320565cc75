package validation

import (
	"errors"
	"fmt"

	"github.com/farmatrack/visitador/internal/models"
)

// Ошибки валидации возвращаются до любых обращений к сети или очереди
// и никогда не повторяются автоматически.
var (
	ErrMissingVisitID   = errors.New("visit id is required")
	ErrMissingSignature = errors.New("doctor signature is required")
	ErrMissingLocation  = errors.New("gps location is required")
	ErrMissingDoctorID  = errors.New("doctor id is required")
	ErrMissingTimestamp = errors.New("visit time is required")
	ErrMissingPlanID    = errors.New("plan id is required")
	ErrEmptyChange      = errors.New("plan change is empty")
)

// ValidateRating проверяет оценку удовлетворенности (1-5)
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}
	return nil
}

// ValidateCoordinates проверяет диапазоны GPS координат
func ValidateCoordinates(latitude, longitude float64) error {
	var errs []error
	if latitude < -90 || latitude > 90 {
		errs = append(errs, fmt.Errorf("latitude %f out of range [-90, 90]", latitude))
	}
	if longitude < -180 || longitude > 180 {
		errs = append(errs, fmt.Errorf("longitude %f out of range [-180, 180]", longitude))
	}
	return errors.Join(errs...)
}

// ValidateForm проверяет формуляр удовлетворенности перед отправкой.
// Формуляр без подписи или GPS отклоняется сразу: такие данные
// сервер не примет никогда, ставить их в очередь бессмысленно.
func ValidateForm(form *models.SatisfactionForm) error {
	if form == nil {
		return errors.New("form is nil")
	}

	var errs []error
	if form.VisitID == "" {
		errs = append(errs, ErrMissingVisitID)
	}
	if err := ValidateRating(form.Rating); err != nil {
		errs = append(errs, err)
	}
	if form.Signature == "" {
		errs = append(errs, ErrMissingSignature)
	}
	if form.Location == nil {
		errs = append(errs, ErrMissingLocation)
	} else if err := ValidateCoordinates(form.Location.Latitude, form.Location.Longitude); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ValidateVisit проверяет запись визита перед отправкой
func ValidateVisit(visit *models.VisitRecord) error {
	if visit == nil {
		return errors.New("visit is nil")
	}

	var errs []error
	if visit.DoctorID == "" {
		errs = append(errs, ErrMissingDoctorID)
	}
	if visit.PerformedAt.IsZero() {
		errs = append(errs, ErrMissingTimestamp)
	}
	if visit.Location != nil {
		if err := ValidateCoordinates(visit.Location.Latitude, visit.Location.Longitude); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// ValidatePlanChange проверяет изменение плана перед отправкой
func ValidatePlanChange(planID string, change *models.PlanChange) error {
	var errs []error
	if planID == "" {
		errs = append(errs, ErrMissingPlanID)
	}
	if change == nil || (change.Status == "" && len(change.AddVisits) == 0 && change.RemoveVisit == "") {
		errs = append(errs, ErrEmptyChange)
	}
	return errors.Join(errs...)
}
