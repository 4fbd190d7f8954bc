package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/showroom/internal/config"
	"github.com/Iron-Ham/showroom/internal/event"
	"github.com/Iron-Ham/showroom/internal/logging"
	"github.com/Iron-Ham/showroom/internal/selection"
	"github.com/Iron-Ham/showroom/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalogue interactively",
	Long: `Browse the catalogue interactively.

Use ←/→ (or h/l) to pick a color, c to clear it and q to quit.
With --watch, edits to the config file reload the catalogue in place.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().BoolP("watch", "w", false, "reload the catalogue when the config file changes")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Close() }()

	bus := event.NewBus(logger)
	bus.SubscribeAll(func(e event.Event) {
		logger.Debug("event published", "event_type", e.EventType())
	})
	state := selection.New(cfg.Catalog.Selection, bus, logger)

	model := tui.NewModel(cfg.Catalog.Collection(), state, tui.Options{
		Theme:        cfg.TUI.Theme,
		MaxNameWidth: cfg.TUI.MaxNameWidth,
		Logger:       logger,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		if viper.ConfigFileUsed() == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), "no config file in use; --watch has nothing to watch")
		} else {
			viper.OnConfigChange(catalogReloader(config.Load, p.Send, bus, logger))
			viper.WatchConfig()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// catalogReloader returns a config-change callback that reloads the
// catalogue and hands it to the running program. An invalid config is
// logged and the current catalogue is kept.
func catalogReloader(
	load func() (*config.Config, error),
	send func(tea.Msg),
	bus *event.Bus,
	logger *logging.Logger,
) func(fsnotify.Event) {
	return func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		cfg, err := load()
		if err != nil {
			logger.Warn("config reload failed", "file", e.Name, "error", err.Error())
			return
		}

		items := cfg.Catalog.Collection()
		send(tui.ReloadMsg{Items: items, Source: e.Name})
		bus.Publish(event.NewCatalogReloadedEvent(e.Name, len(items)))
	}
}
