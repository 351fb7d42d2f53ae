package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/axitpadasala108/roven-global/internal/catalog"
	"github.com/axitpadasala108/roven-global/internal/config"
	"github.com/axitpadasala108/roven-global/internal/eventbus"
	"github.com/axitpadasala108/roven-global/internal/ui"
)

var (
	flagAPIURL  string
	flagConfig  string
	flagLogFile string
)

var rootCmd = &cobra.Command{
	Use:   "roven",
	Short: "Browse the Roven storefront from your terminal",
	Long: `Roven is a terminal client for the Roven storefront.

Press / to search categories and products as you type, arrow keys to
pick a result and enter to open it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "storefront API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "append debug logs to this file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	bus := eventbus.New()
	defer bus.Close()
	logDomainEvents(bus)

	cfgService := config.NewServiceWithBus(bus)
	var cfg *config.Config
	if flagConfig != "" {
		cfg, err = cfgService.LoadFromPath(flagConfig)
	} else {
		cfg, err = cfgService.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	persistConfigChanges(bus, cfgService, cfg, flagConfig)
	if flagAPIURL != "" {
		// A runtime override is a setting change; the subscription
		// above persists it.
		bus.Publish(eventbus.ConfigChangedEvent{APIBaseURL: flagAPIURL})
		cfg.APIBaseURL = flagAPIURL
	}
	slog.Info("starting", "api_url", cfg.APIBaseURL, "limit", cfg.SearchLimit)

	client := catalog.NewClient(cfg.APIBaseURL, nil)
	model := ui.NewModel(cfg, bus, client)

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	if cfg.UI.AutosaveOnExit {
		if flagConfig != "" {
			err = cfgService.SaveToPath(cfg, flagConfig)
		} else {
			err = cfgService.Save(cfg)
		}
		if err != nil {
			slog.Warn("autosave failed", "error", err)
		}
	}
	return nil
}

// setupLogging routes slog to a file, or discards everything when no
// file is requested. Writing to stderr would corrupt the alt screen.
func setupLogging(path string) (func(), error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	handler := tint.NewHandler(f, &tint.Options{
		Level:      slog.LevelDebug,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	})
	slog.SetDefault(slog.New(handler))
	return func() { f.Close() }, nil
}

// persistConfigChanges applies runtime setting changes to cfg and
// writes them through the config service. Zero fields on the event
// leave the corresponding setting alone. Returns the unsubscribe func.
func persistConfigChanges(bus eventbus.EventBus, svc config.Service, cfg *config.Config, path string) func() {
	return bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		ev, ok := e.(eventbus.ConfigChangedEvent)
		if !ok {
			return
		}
		if ev.APIBaseURL != "" {
			cfg.APIBaseURL = ev.APIBaseURL
		}
		if ev.SearchLimit > 0 {
			cfg.SearchLimit = ev.SearchLimit
		}
		if ev.SearchDebounceMS > 0 {
			cfg.SearchDebounceMS = ev.SearchDebounceMS
		}

		var err error
		if path != "" {
			err = svc.SaveToPath(cfg, path)
		} else {
			err = svc.Save(cfg)
		}
		if err != nil {
			slog.Warn("persist config change failed", "error", err)
		} else {
			slog.Debug("config change persisted", "api_url", cfg.APIBaseURL)
		}
	})
}

func logDomainEvents(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SearchCompletedEvent); ok {
			slog.Debug("search completed",
				"query", ev.Query,
				"categories", ev.CategoryCount,
				"products", ev.ProductCount)
		}
	})
	bus.Subscribe(eventbus.EventNavigated, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.NavigatedEvent); ok {
			slog.Debug("navigated", "path", ev.Path)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			slog.Error(ev.Message, "error", ev.Err)
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigLoadedEvent); ok {
			slog.Debug("config loaded", "api_url", ev.APIBaseURL)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(eventbus.DomainEvent) {
		slog.Debug("config saved")
	})
}
