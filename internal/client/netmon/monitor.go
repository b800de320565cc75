// Package netmon отслеживает доступность сервера. Мобильный клиент не
// может доверять состоянию интерфейса: единственный надежный сигнал -
// периодическая проба реального endpoint.
package netmon

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// defaultInterval — период фоновых проб.
const defaultInterval = 5 * time.Second

// ConnectionKind описывает тип соединения, насколько он известен.
// HTTP проба не различает wifi и cellular, поэтому online сообщается
// как unknown; none означает подтвержденное отсутствие связи.
type ConnectionKind string

const (
	KindUnknown  ConnectionKind = "unknown"
	KindWifi     ConnectionKind = "wifi"
	KindCellular ConnectionKind = "cellular"
	KindNone     ConnectionKind = "none"
)

// State описывает текущее состояние связи.
type State struct {
	Kind   ConnectionKind
	Online bool
}

// Event описывает переход между состояниями связи.
type Event struct {
	At       time.Time
	Previous State
	Current  State
}

// Prober выполняет одну пробу доступности сервера.
type Prober interface {
	Probe(ctx context.Context) State
}

// ProberFunc адаптирует функцию к интерфейсу Prober.
type ProberFunc func(ctx context.Context) State

func (f ProberFunc) Probe(ctx context.Context) State { return f(ctx) }

// Monitor периодически пробует сервер и оповещает подписчиков о
// переходах online/offline. Повторные пробы с тем же исходом событий
// не порождают.
type Monitor struct {
	prober   Prober
	logger   *slog.Logger
	interval time.Duration

	mu     sync.Mutex
	state  State
	subs   map[int]chan Event
	nextID int
}

// NewMonitor создает монитор связи. До первой пробы состояние
// считается offline.
func NewMonitor(prober Prober, interval time.Duration, logger *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = defaultInterval
	}

	return &Monitor{
		prober:   prober,
		logger:   logger,
		interval: interval,
		state:    State{Online: false, Kind: KindNone},
		subs:     make(map[int]chan Event),
	}
}

// State возвращает последнее известное состояние связи.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Check выполняет немедленную пробу вне расписания и возвращает
// свежее состояние.
func (m *Monitor) Check(ctx context.Context) State {
	state := m.prober.Probe(ctx)
	m.apply(state)

	return state
}

// Subscribe регистрирует подписчика на переходы состояния. Возвращает
// канал событий и функцию отписки. Медленный подписчик события теряет,
// но монитор не блокирует.
func (m *Monitor) Subscribe() (<-chan Event, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	ch := make(chan Event, 4)
	m.subs[id] = ch

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		if sub, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Run запускает цикл проб до отмены контекста.
func (m *Monitor) Run(ctx context.Context) {
	// Первая проба сразу, не дожидаясь тика.
	m.apply(m.prober.Probe(ctx))

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.apply(m.prober.Probe(ctx))
		}
	}
}

// apply фиксирует результат пробы и рассылает событие, если состояние
// изменилось.
func (m *Monitor) apply(current State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	previous := m.state
	if current == previous {
		return
	}

	m.state = current

	event := Event{
		At:       time.Now(),
		Previous: previous,
		Current:  current,
	}

	m.logger.Info("connectivity changed",
		"online", current.Online, "kind", current.Kind)

	// Рассылка держит mutex: отписка закрывает канал под тем же mutex,
	// поэтому отправка в закрытый канал исключена. Отправки
	// неблокирующие, надолго mutex не задерживается.
	for _, ch := range m.subs {
		select {
		case ch <- event:
		default:
			// Подписчик не успевает: событие пропускаем, следующее
			// придет при новом переходе.
		}
	}
}
