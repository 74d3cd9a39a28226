package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/model"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/tui"
)

func runTUI(cfg cliConfig, logger *zap.Logger) error {
	sk := loadSkin(cfg, logger)

	catalog := model.NewCatalog()
	if err := model.Validate(catalog); err != nil {
		return err
	}

	dashboard := tui.NewDashboardModel(catalog, tui.Options{
		Skin:               sk,
		ReverseScrollWheel: cfg.ReverseScrollWheel,
		Logger:             logger,
	})
	defer dashboard.Close()

	app := tui.NewApp(tui.NewDashboardPage(dashboard))

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		// Hover tooltips need motion events without a button held.
		opts = append(opts, tea.WithMouseAllMotion())
	}

	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	logger.Info("dashboard closed", zap.Stringer("state", dashboard.State()))
	return nil
}
