// Package tui renders the crowdfund client as a terminal application. One
// Bubble Tea program hosts every page; the appModel routes messages to the
// active page model and runs every chain, content-store and session call as
// an async command so the event loop never blocks.
package tui

import (
	"context"

	"github.com/cfdapp/crowdfund-client/internal/identity"
	"github.com/cfdapp/crowdfund-client/internal/logger"
	"github.com/cfdapp/crowdfund-client/internal/service"
	"github.com/cfdapp/crowdfund-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.Services
	resolver  *identity.Resolver
	buildInfo models.AppBuildInfo
	log       *logger.Logger
}

func New(services *service.Services, resolver *identity.Resolver, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, resolver: resolver, buildInfo: buildInfo, log: log}
}

// Run drives the client until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.resolver, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
