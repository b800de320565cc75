package location

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmatrack/visitador/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixedProvider struct {
	point   *models.GeoPoint
	err     error
	profile Profile
}

func (p *fixedProvider) Current(_ context.Context, profile Profile) (*models.GeoPoint, error) {
	p.profile = profile

	return p.point, p.err
}

func TestForVisit_UsesCasualProfile(t *testing.T) {
	provider := &fixedProvider{point: &models.GeoPoint{Latitude: -12.0464, Longitude: -77.0428}}
	svc := NewService(provider, testLogger())

	point, err := svc.ForVisit(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, -12.0464, point.Latitude, 1e-9)
	assert.Equal(t, Casual(), provider.profile)
}

func TestForForm_UsesFormProfile(t *testing.T) {
	provider := &fixedProvider{point: &models.GeoPoint{Accuracy: 8}}
	svc := NewService(provider, testLogger())

	_, err := svc.ForForm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Form(), provider.profile)
}

func TestForForm_PoorAccuracyIsNotAnError(t *testing.T) {
	// Точность хуже порога: форма все равно отправляется.
	provider := &fixedProvider{point: &models.GeoPoint{Accuracy: 120}}
	svc := NewService(provider, testLogger())

	point, err := svc.ForForm(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 120.0, point.Accuracy, 1e-9)
}

func TestForVisit_ProviderFailure(t *testing.T) {
	svc := NewService(Unavailable{}, testLogger())

	_, err := svc.ForVisit(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestDistance(t *testing.T) {
	// Лима, Плаза Майор -> Мирафлорес, примерно 8.5 км.
	plazaMayor := &models.GeoPoint{Latitude: -12.0464, Longitude: -77.0428}
	miraflores := &models.GeoPoint{Latitude: -12.1211, Longitude: -77.0297}

	d := Distance(plazaMayor, miraflores)
	assert.InDelta(t, 8400, d, 300)

	// Расстояние до самой себя равно нулю.
	assert.InDelta(t, 0, Distance(plazaMayor, plazaMayor), 1e-6)
}

func TestStaticProvider(t *testing.T) {
	provider := &Static{Latitude: -12.0464, Longitude: -77.0428}

	point, err := provider.Current(context.Background(), Casual())
	require.NoError(t, err)
	assert.InDelta(t, -12.0464, point.Latitude, 1e-9)
	assert.WithinDuration(t, time.Now(), point.Timestamp, time.Minute)
}
