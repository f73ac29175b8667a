package main

import (
	"context"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pinkypromises/adminctl/internal/buildinfo"
	"github.com/pinkypromises/adminctl/internal/client/config"
	"github.com/pinkypromises/adminctl/internal/client/gateway"
	"github.com/pinkypromises/adminctl/internal/client/session"
	"github.com/pinkypromises/adminctl/internal/client/tui"
	"github.com/pinkypromises/adminctl/internal/logging"
)

func main() {
	buildinfo.Print(os.Stderr)

	ctx := context.Background()
	cfg := config.LoadConfig()

	// The terminal belongs to the UI; logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("open log file: %v", err)
	}
	defer logFile.Close()
	logger := logging.New(logFile, cfg.LogLevel)

	client, err := gateway.New(cfg.APIBaseURL, cfg.RequestTimeout, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	auth := gateway.NewAuth(client)
	gw := tui.Gateways{
		Auth:          auth,
		Recipients:    gateway.NewRecipients(client),
		Inventory:     gateway.NewInventory(client),
		Gifts:         gateway.NewGifts(client),
		Reminders:     gateway.NewReminders(client),
		Versions:      gateway.NewVersions(client),
		Notifications: gateway.NewNotifications(client),
		Period:        gateway.NewPeriod(client),
	}

	sess := session.New(auth, logger)
	app := tui.New(ctx, sess, gw, logger)

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("%v", err)
	}
}
