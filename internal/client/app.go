// Package client assembles the crowdfund client: it connects the chain
// gateway, builds the service layer on top of it, and hands everything to the
// TUI.
package client

import (
	"context"
	"fmt"

	"github.com/cfdapp/crowdfund-client/internal/chain"
	"github.com/cfdapp/crowdfund-client/internal/config"
	"github.com/cfdapp/crowdfund-client/internal/identity"
	"github.com/cfdapp/crowdfund-client/internal/ipfs"
	"github.com/cfdapp/crowdfund-client/internal/logger"
	"github.com/cfdapp/crowdfund-client/internal/service"
	"github.com/cfdapp/crowdfund-client/internal/session"
	"github.com/cfdapp/crowdfund-client/internal/tui"
	"github.com/cfdapp/crowdfund-client/models"
)

type App struct {
	services *service.Services
	resolver *identity.Resolver
	ui       *tui.TUI
	log      *logger.Logger
}

// NewApp wires the full client. The chain must be reachable at startup: the
// account and the contract bindings come from the connected node.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	ctx := context.Background()

	rpc, err := chain.NewRPCClient(cfg.Chain, log)
	if err != nil {
		return nil, fmt.Errorf("create rpc client: %w", err)
	}

	gateway, err := chain.Connect(ctx, rpc, cfg.Chain, log)
	if err != nil {
		return nil, fmt.Errorf("connect chain gateway: %w", err)
	}

	content, err := ipfs.NewClient(cfg.IPFS, log)
	if err != nil {
		return nil, fmt.Errorf("create content-store client: %w", err)
	}

	sessions := session.NewManager(
		session.NewSystemClock(),
		session.NewFileStore(cfg.Session.Path),
		cfg.Session.TTL,
		log,
	)

	services := service.NewServices(
		gateway.CrowdFunding,
		gateway.Token,
		gateway.Crowdsale,
		gateway.HashStorage,
		content,
		sessions,
		gateway.Account,
		log,
	)

	resolver := identity.NewResolver(gateway.HashStorage, content, sessions, cfg.Admin.Addresses, log)

	return &App{
		services: services,
		resolver: resolver,
		ui:       tui.New(services, resolver, buildInfo, log),
		log:      log,
	}, nil
}

func (a *App) Run() error {
	return a.ui.Run(context.Background())
}
