package cli

import (
	"context"
	"time"
)

// defaultSyncInterval — период фоновых проходов синхронизации в watch.
const defaultSyncInterval = 30 * time.Second

// SetSyncInterval переопределяет период фоновой синхронизации.
func (c *Cli) SetSyncInterval(interval time.Duration) {
	if interval > 0 {
		c.syncInterval = interval
	}
}

// runWatch держит клиент в фоне: монитор связи пробует сервер, а
// синхронизация запускается по расписанию и при возвращении сети.
func (c *Cli) runWatch(ctx context.Context) error {
	interval := c.syncInterval
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	c.io.Println("Watching for connectivity, press Ctrl+C to stop.")

	events, cancel := c.monitor.Subscribe()
	defer cancel()

	go c.monitor.Run(ctx)

	c.syncService.Run(ctx, events, interval)

	c.io.Println()
	c.io.Println("Stopped.")

	return nil
}
