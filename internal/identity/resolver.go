// Package identity derives the client's current user state: whether the
// connected account is logged in, registered, what its profile says, and
// whether it is an administrator. Pages consult the resolver on every load
// instead of caching authorization state.
package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/cfdapp/crowdfund-client/internal/ipfs"
	"github.com/cfdapp/crowdfund-client/internal/logger"
	"github.com/cfdapp/crowdfund-client/internal/service"
	"github.com/cfdapp/crowdfund-client/models"
)

// Resolver computes the [models.Identity] of an account. Admin status is a
// client-side allow-list; an empty list means nobody is an administrator.
type Resolver struct {
	hashes   service.HashStorage
	content  service.ContentStore
	sessions service.Sessions

	admins map[string]struct{}
	logger *logger.Logger
}

// NewResolver constructs a *Resolver with the given admin allow-list.
// Addresses are matched case-insensitively.
func NewResolver(hashes service.HashStorage, content service.ContentStore, sessions service.Sessions, adminAddresses []string, logger *logger.Logger) *Resolver {
	admins := make(map[string]struct{}, len(adminAddresses))
	for _, addr := range adminAddresses {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			admins[strings.ToLower(trimmed)] = struct{}{}
		}
	}

	return &Resolver{
		hashes:   hashes,
		content:  content,
		sessions: sessions,
		admins:   admins,
		logger:   logger,
	}
}

// Resolve computes the identity of account with a single attempt per step.
//
// An expired session short-circuits: no contract is consulted and the
// account is anonymous. Registration-check failures fail closed (identity is
// anonymous and the error surfaces). A registered account whose profile
// document cannot be fetched or decoded stays registered and logged in, with
// a nil Profile.
func (r *Resolver) Resolve(ctx context.Context, account string) (models.Identity, error) {
	ident := models.Identity{Address: account}

	if r.sessions.Expired() {
		return ident, nil
	}

	registered, err := r.hashes.AccountHasIpfsHash(ctx, account)
	if err != nil {
		return ident, fmt.Errorf("error checking registration: %w", err)
	}
	if !registered {
		return ident, nil
	}

	ident.HasProfile = true
	ident.LoggedIn = true
	ident.Admin = r.IsAdmin(account)
	ident.Profile = r.fetchProfile(ctx, account)

	return ident, nil
}

// IsAdmin reports allow-list membership for account.
func (r *Resolver) IsAdmin(account string) bool {
	_, ok := r.admins[strings.ToLower(strings.TrimSpace(account))]
	return ok
}

// fetchProfile resolves the profile document, tolerating every failure: the
// identity stays valid with a nil profile and the page falls back to the
// address.
func (r *Resolver) fetchProfile(ctx context.Context, account string) *models.Profile {
	hash, err := r.hashes.GetAccountIpfsHash(ctx, account)
	if err != nil {
		r.logger.Warn().Err(err).Str("account", account).Msg("profile hash fetch failed")
		return nil
	}

	data, err := r.content.Cat(ctx, hash)
	if err != nil {
		r.logger.Warn().Err(err).Str("account", account).Msg("profile document fetch failed")
		return nil
	}

	profile, _ := ipfs.DecodeProfile(data)
	return profile
}
