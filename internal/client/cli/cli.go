// Package cli реализует терминальные команды визитадора.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/farmatrack/visitador/internal/client/auth"
	"github.com/farmatrack/visitador/internal/client/cache"
	"github.com/farmatrack/visitador/internal/client/data"
	"github.com/farmatrack/visitador/internal/client/iocli"
	"github.com/farmatrack/visitador/internal/client/netmon"
	"github.com/farmatrack/visitador/internal/client/queue"
	"github.com/farmatrack/visitador/internal/client/sync"
)

type Cli struct {
	authService  auth.Service
	dataService  data.Service
	syncService  sync.Service
	queueService queue.Service
	cacheService cache.Service
	monitor      *netmon.Monitor
	io           iocli.IO
	syncInterval time.Duration
}

func New(
	authService auth.Service,
	dataService data.Service,
	syncService sync.Service,
	queueService queue.Service,
	cacheService cache.Service,
	monitor *netmon.Monitor,
	io iocli.IO,
) *Cli {
	return &Cli{
		authService:  authService,
		dataService:  dataService,
		syncService:  syncService,
		queueService: queueService,
		cacheService: cacheService,
		monitor:      monitor,
		io:           io,
	}
}

// Run выполняет одну команду. Неизвестная команда печатает usage.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "profile":
		return c.runProfile(ctx)
	case "doctors":
		return c.runDoctors(ctx, args)
	case "plans":
		return c.runPlans(ctx)
	case "plan":
		return c.runPlanUpdate(ctx, args)
	case "visit":
		return c.runVisit(ctx)
	case "visits":
		return c.runVisitHistory(ctx)
	case "form":
		return c.runForm(ctx)
	case "pending":
		return c.runPending(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "watch":
		return c.runWatch(ctx)
	case "cache":
		return c.runCache(ctx, args)
	default:
		c.PrintUsage()

		return fmt.Errorf("unknown command: %s", command)
	}
}

func (c *Cli) PrintUsage() {
	c.io.Println("Visitador Client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  visitador [OPTIONS] COMMAND")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  --version            Show version information")
	c.io.Println("  --server URL         Server URL (default: http://localhost:8080)")
	c.io.Println("  --db PATH            Path to local database (default: visitador.db)")
	c.io.Println("  --location LAT,LON   Fixed coordinates for environments without GPS")
	c.io.Println("  --interval DURATION  Background sync interval for watch (default: 30s)")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  login                Login to server")
	c.io.Println("  logout               Logout and clear local session")
	c.io.Println("  status               Show session and connectivity status")
	c.io.Println("  profile              Show the agent profile")
	c.io.Println("  doctors [id]         List assigned doctors or show one")
	c.io.Println("  plans                List visit plans")
	c.io.Println("  plan <id>            Update a visit plan")
	c.io.Println("  visit                Record a doctor visit")
	c.io.Println("  visits               Show visit history, pending included")
	c.io.Println("  form                 Submit a satisfaction form")
	c.io.Println("  pending              List queued offline operations")
	c.io.Println("  pending drop <id>    Discard a queued operation")
	c.io.Println("  sync                 Deliver queued operations now")
	c.io.Println("  watch                Keep syncing in background until interrupted")
	c.io.Println("  cache stats          Show cache contents summary")
	c.io.Println("  cache clear          Drop all cached data")
	c.io.Println("  cache expire         Drop expired cache entries")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  visitador login")
	c.io.Println("  visitador doctors")
	c.io.Println("  visitador visit")
	c.io.Println("  visitador --server https://api.farmatrack.pe sync")
}
