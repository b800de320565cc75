package netmon

import (
	"context"
	"time"

	httpclient "github.com/farmatrack/visitador/internal/client/api"
)

// probeTimeout ограничивает одну пробу: зависшая проба хуже неудавшейся.
const probeTimeout = 2 * time.Second

// HealthProber проверяет доступность сервера запросом к его health
// endpoint через общий API клиент.
type HealthProber struct {
	api httpclient.ClientAPI
}

// NewHealthProber создает пробу поверх API клиента.
func NewHealthProber(api httpclient.ClientAPI) *HealthProber {
	return &HealthProber{api: api}
}

// Probe выполняет один запрос health. Ответ сервера, даже ошибочный,
// означает, что сеть есть; тип соединения HTTP проба определить не
// может и сообщает unknown.
func (p *HealthProber) Probe(ctx context.Context) State {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if err := p.api.Health(ctx); err != nil {
		if httpclient.IsUnavailable(err) {
			return State{Online: false, Kind: KindNone}
		}

		// Сервер ответил ошибкой - связь есть.
		return State{Online: true, Kind: KindUnknown}
	}

	return State{Online: true, Kind: KindUnknown}
}
