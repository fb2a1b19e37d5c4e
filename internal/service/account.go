package service

import (
	"context"
	"fmt"

	"github.com/cfdapp/crowdfund-client/internal/ipfs"
	"github.com/cfdapp/crowdfund-client/internal/logger"
	"github.com/cfdapp/crowdfund-client/internal/session"
	"github.com/cfdapp/crowdfund-client/models"
)

var _ Sessions = (*session.Manager)(nil)

// AccountService handles registration, login and profile resolution for the
// connected account. The chain is the source of truth: a profile exists iff
// the hash-storage contract holds a document hash for the account.
type AccountService struct {
	hashes   HashStorage
	content  ContentStore
	sessions Sessions

	account string
	logger  *logger.Logger
}

// NewAccountService constructs an *AccountService acting as account.
func NewAccountService(hashes HashStorage, content ContentStore, sessions Sessions, account string, logger *logger.Logger) *AccountService {
	return &AccountService{
		hashes:   hashes,
		content:  content,
		sessions: sessions,
		account:  account,
		logger:   logger,
	}
}

// Account returns the acting account address.
func (s *AccountService) Account() string {
	return s.account
}

// Register stores profile as the account's document and points the
// hash-storage contract at it. An already-registered account short-circuits
// with [ErrAlreadyRegistered] before anything is written, so the existing
// document can never be overwritten by a second registration.
func (s *AccountService) Register(ctx context.Context, profile models.Profile) error {
	registered, err := s.hashes.AccountHasIpfsHash(ctx, s.account)
	if err != nil {
		return fmt.Errorf("error checking registration: %w", err)
	}
	if registered {
		return ErrAlreadyRegistered
	}

	hash, err := s.content.AddJSON(ctx, profile)
	if err != nil {
		return fmt.Errorf("error storing profile document: %w", err)
	}

	if err := s.hashes.SetAccountIpfsHash(ctx, hash); err != nil {
		return fmt.Errorf("error storing profile hash: %w", err)
	}

	// A leftover session from a previous account state must not outlive
	// the new registration.
	if err := s.sessions.End(); err != nil {
		s.logger.Warn().Err(err).Msg("error ending stale session after registration")
	}

	s.logger.Info().Str("account", s.account).Str("hash", hash).Msg("account registered")
	return nil
}

// Login verifies the credentials against the stored profile document and
// starts a session. An unregistered account yields [ErrNotRegistered]; a
// missing, unreadable or mismatching document yields [ErrBadCredentials].
func (s *AccountService) Login(ctx context.Context, username, password string) (models.Profile, error) {
	registered, err := s.hashes.AccountHasIpfsHash(ctx, s.account)
	if err != nil {
		return models.Profile{}, fmt.Errorf("error checking registration: %w", err)
	}
	if !registered {
		return models.Profile{}, ErrNotRegistered
	}

	hash, err := s.hashes.GetAccountIpfsHash(ctx, s.account)
	if err != nil {
		return models.Profile{}, fmt.Errorf("error fetching profile hash: %w", err)
	}

	data, err := s.content.Cat(ctx, hash)
	if err != nil {
		return models.Profile{}, fmt.Errorf("error fetching profile document: %w", err)
	}

	profile, err := ipfs.DecodeProfile(data)
	if err != nil || profile == nil {
		return models.Profile{}, ErrBadCredentials
	}

	if profile.Username != username || profile.Password != password {
		return models.Profile{}, ErrBadCredentials
	}

	if err := s.sessions.Start(); err != nil {
		return models.Profile{}, fmt.Errorf("error starting session: %w", err)
	}

	s.logger.Info().Str("account", s.account).Str("username", username).Msg("login successful")
	return *profile, nil
}

// Logout ends the session.
func (s *AccountService) Logout() error {
	return s.sessions.End()
}

// ProfileOf resolves the profile document of any account. Unregistered
// accounts and unreadable documents both yield (nil, nil); only transport
// and contract failures surface as errors.
func (s *AccountService) ProfileOf(ctx context.Context, account string) (*models.Profile, error) {
	registered, err := s.hashes.AccountHasIpfsHash(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("error checking registration of %s: %w", account, err)
	}
	if !registered {
		return nil, nil
	}

	hash, err := s.hashes.GetAccountIpfsHash(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("error fetching profile hash of %s: %w", account, err)
	}

	data, err := s.content.Cat(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("error fetching profile document of %s: %w", account, err)
	}

	return ipfs.DecodeProfile(data)
}

// Users lists every account known to the hash-storage contract together with
// its resolved profile. A profile that cannot be resolved leaves the entry
// with a nil Profile; only the account listing itself can fail.
func (s *AccountService) Users(ctx context.Context) ([]models.Account, error) {
	addresses, err := s.hashes.GetAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}

	users := make([]models.Account, 0, len(addresses))
	for _, addr := range addresses {
		profile, err := s.ProfileOf(ctx, addr)
		if err != nil {
			s.logger.Warn().Err(err).Str("account", addr).Msg("profile resolution failed for user list")
			profile = nil
		}
		users = append(users, models.Account{Address: addr, Profile: profile})
	}

	return users, nil
}

// UsernameOf resolves the display name of account, falling back to "" when
// the profile cannot be resolved for any reason. Lists use this so that one
// broken profile never breaks a page.
func (s *AccountService) UsernameOf(ctx context.Context, account string) string {
	profile, err := s.ProfileOf(ctx, account)
	if err != nil || profile == nil {
		return ""
	}
	return profile.Username
}
