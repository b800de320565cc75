// Package location предоставляет геопривязку для записей о визитах.
// Железного GPS у CLI клиента нет: источник координат подключается
// через интерфейс Provider, а пакет отвечает за профили точности
// и контроль качества полученной точки.
package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/farmatrack/visitador/internal/models"
)

// ErrUnavailable возвращается, когда источник координат недоступен.
var ErrUnavailable = errors.New("location unavailable")

// Profile задает требования к получению координат. Форма подписи
// требует более точной и свежей точки, чем фоновая геопривязка.
type Profile struct {
	Timeout time.Duration // сколько ждать фиксации
	MaxAge  time.Duration // допустимый возраст кэшированной точки
}

// Casual — профиль фоновой геопривязки визитов.
func Casual() Profile {
	return Profile{Timeout: 15 * time.Second, MaxAge: 10 * time.Second}
}

// Form — профиль для форм с подписью врача.
func Form() Profile {
	return Profile{Timeout: 20 * time.Second, MaxAge: 5 * time.Second}
}

// formAccuracyThreshold — точность хуже этого порога для формы
// подозрительна, но не фатальна: внутри клиники GPS часто плывет.
const formAccuracyThreshold = 50.0 // метры

// Provider выдает текущие координаты устройства.
type Provider interface {
	Current(ctx context.Context, profile Profile) (*models.GeoPoint, error)
}

// Service оборачивает Provider контролем качества точек.
type Service struct {
	provider Provider
	logger   *slog.Logger
}

// NewService создает сервис геопривязки.
func NewService(provider Provider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// ForVisit возвращает точку для записи о визите.
func (s *Service) ForVisit(ctx context.Context) (*models.GeoPoint, error) {
	point, err := s.provider.Current(ctx, Casual())
	if err != nil {
		return nil, fmt.Errorf("failed to acquire location: %w", err)
	}

	return point, nil
}

// ForForm возвращает точку для формы с подписью. Низкая точность не
// блокирует отправку формы, только логируется.
func (s *Service) ForForm(ctx context.Context) (*models.GeoPoint, error) {
	point, err := s.provider.Current(ctx, Form())
	if err != nil {
		return nil, fmt.Errorf("failed to acquire location: %w", err)
	}

	if point.Accuracy > formAccuracyThreshold {
		s.logger.Warn("form location accuracy is poor",
			"accuracy_m", point.Accuracy, "threshold_m", formAccuracyThreshold)
	}

	return point, nil
}

// earthRadiusM — средний радиус Земли в метрах.
const earthRadiusM = 6371000.0

// Distance возвращает расстояние между двумя точками в метрах по
// формуле хаверсинуса.
func Distance(a, b *models.GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusM * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Static — провайдер с фиксированной точкой. Используется, когда
// координаты рабочей территории заданы конфигурацией.
type Static struct {
	Latitude  float64
	Longitude float64
}

func (p *Static) Current(_ context.Context, _ Profile) (*models.GeoPoint, error) {
	return &models.GeoPoint{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Accuracy:  0,
		Timestamp: time.Now(),
	}, nil
}

// Unavailable — провайдер для окружений без источника координат.
type Unavailable struct{}

func (Unavailable) Current(_ context.Context, _ Profile) (*models.GeoPoint, error) {
	return nil, ErrUnavailable
}
