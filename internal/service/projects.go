package service

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cfdapp/crowdfund-client/internal/chain"
	"github.com/cfdapp/crowdfund-client/internal/ipfs"
	"github.com/cfdapp/crowdfund-client/internal/logger"
	"github.com/cfdapp/crowdfund-client/models"
)

// Project name bounds enforced client-side before the chain is touched.
const (
	ProjectNameMin = 8
	ProjectNameMax = 30
)

// ProjectFunds is the balance set re-queried after every deposit or
// withdrawal, so the page renders confirmed chain state only.
type ProjectFunds struct {
	// ProjectBalance is the project's total funded balance.
	ProjectBalance *big.Int
	// FunderBalance is the caller's stake in the project.
	FunderBalance *big.Int
	// WalletBalance is the caller's token balance.
	WalletBalance *big.Int
}

// ProjectService implements the project pages: discovery, detail, creation,
// funding and the admin approval flow.
type ProjectService struct {
	registry ProjectRegistry
	token    Token
	content  ContentStore
	accounts *AccountService

	account string
	logger  *logger.Logger
}

// NewProjectService constructs a *ProjectService acting as account.
func NewProjectService(registry ProjectRegistry, token Token, content ContentStore, accounts *AccountService, account string, logger *logger.Logger) *ProjectService {
	return &ProjectService{
		registry: registry,
		token:    token,
		content:  content,
		accounts: accounts,
		account:  account,
		logger:   logger,
	}
}

// FetchApproved scans the whole project range and returns the approved
// projects, oldest first. A project that fails to load is skipped and logged;
// one broken project never empties the discover page.
func (s *ProjectService) FetchApproved(ctx context.Context) ([]models.Project, error) {
	last, err := s.registry.GetLastProjectId(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching project count: %w", err)
	}

	projects := make([]models.Project, 0)
	for id := int64(0); id < last.Int64(); id++ {
		approved, err := s.registry.IsApproved(ctx, big.NewInt(id))
		if err != nil {
			s.logger.Warn().Err(err).Int64("project_id", id).Msg("skipping project: approval check failed")
			continue
		}
		if !approved {
			continue
		}

		project, err := s.loadProject(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Int64("project_id", id).Msg("skipping project: load failed")
			continue
		}
		projects = append(projects, project)
	}

	return projects, nil
}

// FetchAll scans the whole project range without the approval filter. The
// admin page uses it to list pending projects next to approved ones.
func (s *ProjectService) FetchAll(ctx context.Context) ([]models.Project, error) {
	last, err := s.registry.GetLastProjectId(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching project count: %w", err)
	}

	projects := make([]models.Project, 0, last.Int64())
	for id := int64(0); id < last.Int64(); id++ {
		project, err := s.loadProject(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Int64("project_id", id).Msg("skipping project: load failed")
			continue
		}
		projects = append(projects, project)
	}

	return projects, nil
}

// FetchCreated returns the caller's own projects, approved or not.
func (s *ProjectService) FetchCreated(ctx context.Context) ([]models.Project, error) {
	ids, err := s.registry.GetOwnerProjects(ctx, s.account)
	if err != nil {
		return nil, fmt.Errorf("error fetching owned projects: %w", err)
	}
	return s.loadProjects(ctx, ids)
}

// FetchFunded returns the projects the caller deposited to, with the
// caller's stake carried in the balance column.
func (s *ProjectService) FetchFunded(ctx context.Context) ([]models.Project, error) {
	ids, err := s.registry.GetUserFundedProjects(ctx, s.account)
	if err != nil {
		return nil, fmt.Errorf("error fetching funded projects: %w", err)
	}

	projects := make([]models.Project, 0, len(ids))
	for _, id := range ids {
		project, err := s.loadProject(ctx, id.Int64())
		if err != nil {
			s.logger.Warn().Err(err).Int64("project_id", id.Int64()).Msg("skipping funded project: load failed")
			continue
		}

		stake, err := s.registry.GetFunderBalance(ctx, id, s.account)
		if err != nil {
			s.logger.Warn().Err(err).Int64("project_id", id.Int64()).Msg("skipping funded project: stake fetch failed")
			continue
		}
		project.FunderBalance = stake
		project.Balance = stake

		projects = append(projects, project)
	}

	return projects, nil
}

// Fetch loads one approved project in full: chain fields, the caller's
// stake, and the metadata document when one is attached. Ids outside the
// range and unapproved projects yield [ErrProjectNotFound].
func (s *ProjectService) Fetch(ctx context.Context, id int64) (models.Project, error) {
	last, err := s.registry.GetLastProjectId(ctx)
	if err != nil {
		return models.Project{}, fmt.Errorf("error fetching project count: %w", err)
	}
	if id < 0 || id >= last.Int64() {
		return models.Project{}, ErrProjectNotFound
	}

	approved, err := s.registry.IsApproved(ctx, big.NewInt(id))
	if err != nil {
		return models.Project{}, fmt.Errorf("error checking approval: %w", err)
	}
	if !approved {
		return models.Project{}, ErrProjectNotFound
	}

	project, err := s.loadProject(ctx, id)
	if err != nil {
		return models.Project{}, err
	}

	stake, err := s.registry.GetFunderBalance(ctx, big.NewInt(id), s.account)
	if err != nil {
		return models.Project{}, fmt.Errorf("error fetching funder balance: %w", err)
	}
	project.FunderBalance = stake

	s.attachMetadata(ctx, &project)
	return project, nil
}

// Create validates the name locally, rejects duplicates via the registry's
// name index, and registers the project. Nothing is written when either
// check fails.
func (s *ProjectService) Create(ctx context.Context, name string, goal *big.Int) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < ProjectNameMin || len(trimmed) > ProjectNameMax {
		return ErrProjectName
	}

	exists, err := s.registry.ProjectExists(ctx, trimmed)
	if err != nil {
		return fmt.Errorf("error checking project name: %w", err)
	}
	if exists {
		return ErrProjectNameTaken
	}

	if err := s.registry.Create(ctx, trimmed, goal); err != nil {
		return fmt.Errorf("error creating project: %w", err)
	}

	s.logger.Info().Str("name", trimmed).Str("goal", goal.String()).Msg("project created")
	return nil
}

// ApproveProject approves project id and returns the re-queried approval
// flag, never assuming the write took effect.
func (s *ProjectService) ApproveProject(ctx context.Context, id int64) (bool, error) {
	if err := s.registry.Approve(ctx, big.NewInt(id)); err != nil {
		return false, fmt.Errorf("error approving project: %w", err)
	}

	approved, err := s.registry.IsApproved(ctx, big.NewInt(id))
	if err != nil {
		return false, fmt.Errorf("error re-querying approval: %w", err)
	}
	return approved, nil
}

// Deposit stakes tokens whole tokens on project id. The amount is scaled to
// smallest units through the quote's multiplier, the registry is granted an
// allowance, the deposit is executed, and the affected balances are
// re-queried for display.
func (s *ProjectService) Deposit(ctx context.Context, id int64, quote models.TokenQuote, tokens int64) (ProjectFunds, error) {
	units := quote.ToUnits(tokens)

	if err := s.token.Approve(ctx, s.registry.Address(), units); err != nil {
		return ProjectFunds{}, fmt.Errorf("error approving deposit allowance: %w", err)
	}

	if err := s.registry.Deposit(ctx, big.NewInt(id), units); err != nil {
		return ProjectFunds{}, fmt.Errorf("error depositing: %w", err)
	}

	return s.queryFunds(ctx, id)
}

// Withdraw takes tokens whole tokens back out of project id, scaled to
// smallest units like [ProjectService.Deposit], and transfers them from the
// registry to the caller, then re-queries the balances.
func (s *ProjectService) Withdraw(ctx context.Context, id int64, quote models.TokenQuote, tokens int64) (ProjectFunds, error) {
	units := quote.ToUnits(tokens)

	if err := s.registry.Withdraw(ctx, big.NewInt(id), units); err != nil {
		return ProjectFunds{}, fmt.Errorf("error withdrawing: %w", err)
	}

	if err := s.token.TransferFrom(ctx, s.registry.Address(), s.account, units); err != nil {
		return ProjectFunds{}, fmt.Errorf("error transferring withdrawal: %w", err)
	}

	return s.queryFunds(ctx, id)
}

// CloseProject closes project id and returns the re-queried open flag.
func (s *ProjectService) CloseProject(ctx context.Context, id int64) (bool, error) {
	if err := s.registry.Close(ctx, big.NewInt(id)); err != nil {
		return false, fmt.Errorf("error closing project: %w", err)
	}

	open, err := s.registry.IsOpen(ctx, big.NewInt(id))
	if err != nil {
		return false, fmt.Errorf("error re-querying open state: %w", err)
	}
	return open, nil
}

// PublishUpdate appends update to project id's metadata document and points
// the registry at the replacement document. Owner only.
func (s *ProjectService) PublishUpdate(ctx context.Context, id int64, update models.ProjectUpdate) error {
	owner, err := s.registry.GetOwner(ctx, big.NewInt(id))
	if err != nil {
		return fmt.Errorf("error fetching project owner: %w", err)
	}
	if !strings.EqualFold(owner, s.account) {
		return ErrNotOwner
	}

	metadata := s.fetchMetadata(ctx, id)
	if metadata == nil {
		metadata = &models.ProjectMetadata{}
	}
	if update.PostedAt == 0 {
		update.PostedAt = time.Now().UnixMilli()
	}
	metadata.Updates = append(metadata.Updates, update)

	hash, err := s.content.AddJSON(ctx, metadata)
	if err != nil {
		return fmt.Errorf("error storing metadata document: %w", err)
	}

	if err := s.registry.SetIpfsHash(ctx, big.NewInt(id), hash); err != nil {
		return fmt.Errorf("error storing metadata hash: %w", err)
	}

	s.logger.Info().Int64("project_id", id).Str("hash", hash).Msg("project update published")
	return nil
}

// ── internals ─────────────────────────────────────────────────────────────────

// queryFunds re-reads the three balances a deposit or withdrawal affects.
func (s *ProjectService) queryFunds(ctx context.Context, id int64) (ProjectFunds, error) {
	bigID := big.NewInt(id)

	projectBalance, err := s.registry.GetBalance(ctx, bigID)
	if err != nil {
		return ProjectFunds{}, fmt.Errorf("error re-querying project balance: %w", err)
	}
	funderBalance, err := s.registry.GetFunderBalance(ctx, bigID, s.account)
	if err != nil {
		return ProjectFunds{}, fmt.Errorf("error re-querying funder balance: %w", err)
	}
	walletBalance, err := s.token.BalanceOf(ctx, s.account)
	if err != nil {
		return ProjectFunds{}, fmt.Errorf("error re-querying wallet balance: %w", err)
	}

	return ProjectFunds{
		ProjectBalance: projectBalance,
		FunderBalance:  funderBalance,
		WalletBalance:  walletBalance,
	}, nil
}

func (s *ProjectService) loadProjects(ctx context.Context, ids []*big.Int) ([]models.Project, error) {
	projects := make([]models.Project, 0, len(ids))
	for _, id := range ids {
		project, err := s.loadProject(ctx, id.Int64())
		if err != nil {
			s.logger.Warn().Err(err).Int64("project_id", id.Int64()).Msg("skipping project: load failed")
			continue
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func (s *ProjectService) loadProject(ctx context.Context, id int64) (models.Project, error) {
	bigID := big.NewInt(id)

	owner, err := s.registry.GetOwner(ctx, bigID)
	if err != nil {
		return models.Project{}, fmt.Errorf("error fetching owner: %w", err)
	}
	name, err := s.registry.GetName(ctx, bigID)
	if err != nil {
		return models.Project{}, fmt.Errorf("error fetching name: %w", err)
	}
	goal, err := s.registry.GetGoal(ctx, bigID)
	if err != nil {
		return models.Project{}, fmt.Errorf("error fetching goal: %w", err)
	}
	balance, err := s.registry.GetBalance(ctx, bigID)
	if err != nil {
		return models.Project{}, fmt.Errorf("error fetching balance: %w", err)
	}
	approved, err := s.registry.IsApproved(ctx, bigID)
	if err != nil {
		return models.Project{}, fmt.Errorf("error fetching approval: %w", err)
	}
	open, err := s.registry.IsOpen(ctx, bigID)
	if err != nil {
		return models.Project{}, fmt.Errorf("error fetching open state: %w", err)
	}

	return models.Project{
		ID:           id,
		OwnerAddress: owner,
		OwnerName:    s.accounts.UsernameOf(ctx, owner),
		Name:         name,
		Goal:         goal,
		Balance:      balance,
		Approved:     approved,
		Open:         open,
	}, nil
}

// fetchMetadata resolves the metadata document of project id, tolerating
// absence and decode failures.
func (s *ProjectService) fetchMetadata(ctx context.Context, id int64) *models.ProjectMetadata {
	hash, err := s.registry.GetIpfsHash(ctx, big.NewInt(id))
	if err != nil || strings.TrimSpace(hash) == "" {
		return nil
	}

	data, err := s.content.Cat(ctx, hash)
	if err != nil {
		s.logger.Warn().Err(err).Int64("project_id", id).Msg("metadata document fetch failed")
		return nil
	}

	metadata, _ := ipfs.DecodeMetadata(data)
	return metadata
}

func (s *ProjectService) attachMetadata(ctx context.Context, project *models.Project) {
	hash, err := s.registry.GetIpfsHash(ctx, big.NewInt(project.ID))
	if err != nil || strings.TrimSpace(hash) == "" {
		return
	}
	project.MetadataHash = hash

	data, err := s.content.Cat(ctx, hash)
	if err != nil {
		s.logger.Warn().Err(err).Int64("project_id", project.ID).Msg("metadata document fetch failed")
		return
	}
	project.Metadata, _ = ipfs.DecodeMetadata(data)
}

// ensure the chain bindings satisfy the consumer interfaces
var (
	_ ProjectRegistry = (*chain.CrowdFunding)(nil)
	_ Token           = (*chain.Token)(nil)
	_ HashStorage     = (*chain.HashStorage)(nil)
)
