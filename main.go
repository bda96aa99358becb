package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"glance/internal/config"
	"glance/internal/domain"
	"glance/internal/eventbus"
	"glance/internal/feed"
	"glance/internal/lens"
	"glance/internal/ui"
	"glance/internal/voice"
)

func main() {
	var configPath, feedPath string
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&feedPath, "feed", "", "TOML feed file replacing the built-in feed")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()

	var configSvc config.ConfigService
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath, bus)
	} else {
		configSvc = config.NewConfigServiceWithBus(bus)
	}
	cfg, closeLog := setup(configSvc, bus)
	defer func() {
		bus.Close()
		closeLog()
	}()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if feedPath == "" {
		feedPath = cfg.FeedFile
	}
	items, err := loadFeed(feedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading feed: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Feed has %d items", len(items))

	sim := voice.NewSimulator(
		voice.NewPlaceholder(cfg.Voice.Placeholder),
		voice.WithDelay(cfg.Voice.Delay()),
		voice.WithTimeout(cfg.Voice.Timeout()),
	)

	uiModel := ui.NewModel(bus, cfg, items,
		ui.WithContext(ctx),
		ui.WithSimulator(sim),
		ui.WithPicker(lens.NewMockPicker(os.TempDir())),
		ui.WithSearcher(lens.NewMockSearcher()),
	)

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// setup opens the log file and subscribes the event logger before the config
// is loaded, so config events land in the log. The returned func closes the log.
func setup(configSvc config.ConfigService, bus eventbus.EventBus) (*config.Config, func()) {
	closeLog := func() {}
	if path := logFilePath(configSvc); path != "" {
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			log.SetOutput(logFile)
			closeLog = func() { logFile.Close() }
		}
	}
	log.Printf("Using config %s", configSvc.Path())

	for _, t := range eventbus.AllEventTypes {
		bus.Subscribe(t, logEvent)
	}

	return loadOrCreateConfig(configSvc), closeLog
}

// logFilePath reads the log file setting without publishing anything.
// A missing or unreadable config means the default.
func logFilePath(configSvc config.ConfigService) string {
	cfg, err := configSvc.LoadFromPath(configSvc.Path())
	if err != nil {
		return config.DefaultConfig().Log.File
	}
	return cfg.Log.File
}

// loadOrCreateConfig loads the config, writing the defaults on first run
func loadOrCreateConfig(configSvc config.ConfigService) *config.Config {
	if _, err := os.Stat(configSvc.Path()); os.IsNotExist(err) {
		cfg := config.DefaultConfig()
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save default config: %v", err)
		}
		return cfg
	}

	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// loadFeed returns the built-in feed, or the one in path when set
func loadFeed(path string) ([]domain.FeedItem, error) {
	if path == "" {
		return feed.Default(), nil
	}
	return feed.LoadFile(path)
}

func logEvent(e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case eventbus.ErrorEvent:
		log.Printf("Error: %s: %v", ev.Message, ev.Err)
	case eventbus.VoiceFailedEvent:
		log.Printf("Event %s: attempt %d reason %s", ev.Type(), ev.Attempt, ev.Reason)
	default:
		log.Printf("Event %s: %+v", e.Type(), e)
	}
}
