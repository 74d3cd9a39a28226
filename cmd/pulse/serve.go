package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/model"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/web"
)

// runServe serves the dashboard over HTTP until SIGINT or SIGTERM.
func runServe(cfg cliConfig, logger *zap.Logger) error {
	sk := loadSkin(cfg, logger)

	catalog := model.NewCatalog()
	if err := model.Validate(catalog); err != nil {
		return err
	}

	srv := web.NewServer(cfg.ListenAddr, catalog, sk, logger)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start web server: %w", err)
	}

	printStartupBanner(cfg, srv.Addr(), sk.Name)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		fmt.Println("\nShutting down gracefully...")
		logger.Info("shutting down")
		return srv.Stop()
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("shutting down web server: %w", err)
	}
	return nil
}

func printStartupBanner(cfg cliConfig, addr, skinName string) {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	bold := lipgloss.NewStyle().Bold(true)

	check := green.Render("●")
	dot := dim.Render("●")

	logo := cyan.Bold(true).Render(`
    ╔═╗╦ ╦╦  ╔═╗╔═╗
    ╠═╝║ ║║  ╚═╗║╣
    ╩  ╚═╝╩═╝╚═╝╚═╝`)

	separator := dim.Render("    ─────────────────────────────────")

	lines := []string{
		"",
		logo,
		"    " + dim.Render("v"+version),
		"",
		separator,
		"",
		bold.Render("    Dashboard"),
		"",
		fmt.Sprintf("    %s  HTTP           %s", check, cyan.Render("http://"+addr)),
		fmt.Sprintf("    %s  API            %s", check, cyan.Render("http://"+addr+"/api/dashboard")),
		fmt.Sprintf("    %s  Skin           %s", check, dim.Render(skinName)),
		"",
		bold.Render("    Config"),
		"",
	}
	if cfg.ConfigPath != "" {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", check, dim.Render(shortenPath(cfg.ConfigPath))))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", dot, dim.Render("default (no file)")))
	}
	lines = append(lines,
		fmt.Sprintf("    %s  Log File       %s", check, dim.Render(shortenPath(cfg.LogPath))),
		"",
		separator,
		"",
		"    "+dim.Render("Press ")+yellow.Render("Ctrl+C")+dim.Render(" to stop"),
		"",
	)

	fmt.Println(strings.Join(lines, "\n"))
}
