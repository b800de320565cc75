package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	httpclient "github.com/farmatrack/visitador/internal/client/api"
	"github.com/farmatrack/visitador/internal/client/auth"
	"github.com/farmatrack/visitador/internal/client/cache"
	"github.com/farmatrack/visitador/internal/client/cli"
	"github.com/farmatrack/visitador/internal/client/data"
	"github.com/farmatrack/visitador/internal/client/iocli"
	"github.com/farmatrack/visitador/internal/client/location"
	"github.com/farmatrack/visitador/internal/client/netmon"
	"github.com/farmatrack/visitador/internal/client/queue"
	"github.com/farmatrack/visitador/internal/client/storage/boltdb"
	"github.com/farmatrack/visitador/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const probeInterval = 5 * time.Second

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "visitador.db", "Path to local database")
	fixedLocation := flag.String("location", "", "Fixed coordinates LAT,LON for devices without GPS")
	syncInterval := flag.Duration("interval", 30*time.Second, "Background sync interval for watch")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	provider, err := locationProvider(*fixedLocation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -location: %v\n", err)
		os.Exit(1)
	}

	// Контекст живет до Ctrl+C: нужен длительным командам watch и sync.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Собираем сервисы, зависимости передаются явно
	apiClient := httpclient.NewClient(*serverURL, boltStorage, logger)
	authService := auth.NewService(apiClient, boltStorage, logger)
	cacheService := cache.NewService(boltStorage, logger)
	queueService := queue.NewService(boltStorage, boltStorage, logger)
	locationService := location.NewService(provider, logger)
	dataService := data.NewService(apiClient, cacheService, queueService, boltStorage, locationService, logger)
	syncService := sync.NewService(apiClient, queueService, boltStorage, logger)
	monitor := netmon.NewMonitor(netmon.NewHealthProber(apiClient), probeInterval, logger)

	app := cli.New(authService, dataService, syncService, queueService, cacheService, monitor, iocli.NewStdio())
	app.SetSyncInterval(*syncInterval)

	args := flag.Args()
	if len(args) == 0 {
		app.PrintUsage()
		os.Exit(1)
	}

	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// locationProvider выбирает источник координат. Без флага -location
// клиент работает без геопривязки.
func locationProvider(spec string) (location.Provider, error) {
	if spec == "" {
		return location.Unavailable{}, nil
	}

	parts := strings.SplitN(spec, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected LAT,LON, got %q", spec)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("bad latitude: %w", err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("bad longitude: %w", err)
	}

	return &location.Static{Latitude: lat, Longitude: lon}, nil
}

func printVersion() {
	fmt.Printf("Visitador Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
