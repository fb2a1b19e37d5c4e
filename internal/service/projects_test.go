package service

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/cfdapp/crowdfund-client/internal/logger"
	"github.com/cfdapp/crowdfund-client/internal/mock"
	"github.com/cfdapp/crowdfund-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testRegistryAddr = "0xcccccccccccccccccccccccccccccccccccccccc"
	testOwnerAddr    = "0x9999999999999999999999999999999999999999"
)

// newTestProjectSvc builds a ProjectService wired to mocks
func newTestProjectSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*ProjectService,
	*mock.MockProjectRegistry,
	*mock.MockToken,
	*mock.MockContentStore,
	*mock.MockHashStorage,
) {
	t.Helper()
	mockRegistry := mock.NewMockProjectRegistry(ctrl)
	mockToken := mock.NewMockToken(ctrl)
	mockContent := mock.NewMockContentStore(ctrl)
	mockHashes := mock.NewMockHashStorage(ctrl)
	mockSessions := mock.NewMockSessions(ctrl)

	accounts := NewAccountService(mockHashes, mockContent, mockSessions, testAccount, logger.Nop())
	svc := NewProjectService(mockRegistry, mockToken, mockContent, accounts, testAccount, logger.Nop())

	return svc, mockRegistry, mockToken, mockContent, mockHashes
}

// expectProjectRead wires the six chain reads loadProject performs, plus the
// owner-name lookup falling back to the bare address.
func expectProjectRead(ctx context.Context, mockRegistry *mock.MockProjectRegistry, mockHashes *mock.MockHashStorage, id int64, name string, approved, open bool) {
	bigID := big.NewInt(id)
	mockRegistry.EXPECT().GetOwner(ctx, bigID).Return(testOwnerAddr, nil)
	mockRegistry.EXPECT().GetName(ctx, bigID).Return(name, nil)
	mockRegistry.EXPECT().GetGoal(ctx, bigID).Return(big.NewInt(1000), nil)
	mockRegistry.EXPECT().GetBalance(ctx, bigID).Return(big.NewInt(250), nil)
	mockRegistry.EXPECT().IsApproved(ctx, bigID).Return(approved, nil)
	mockRegistry.EXPECT().IsOpen(ctx, bigID).Return(open, nil)
	mockHashes.EXPECT().AccountHasIpfsHash(ctx, testOwnerAddr).Return(false, nil).AnyTimes()
}

// ── FetchApproved ────────────────────────────────────────────────────────────

func TestProjectService_FetchApproved_FiltersAndSkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, _, mockHashes := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	// three projects: #0 approved, #1 unapproved, #2 fails its approval check
	mockRegistry.EXPECT().GetLastProjectId(ctx).Return(big.NewInt(3), nil)
	mockRegistry.EXPECT().IsApproved(ctx, big.NewInt(0)).Return(true, nil)
	expectProjectRead(ctx, mockRegistry, mockHashes, 0, "space-elevator", true, true)
	mockRegistry.EXPECT().IsApproved(ctx, big.NewInt(1)).Return(false, nil)
	mockRegistry.EXPECT().IsApproved(ctx, big.NewInt(2)).Return(false, errors.New("revert"))

	projects, err := svc.FetchApproved(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, int64(0), projects[0].ID)
	assert.Equal(t, "space-elevator", projects[0].Name)
	assert.Equal(t, testOwnerAddr, projects[0].OwnerAddress)
}

func TestProjectService_FetchApproved_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	mockRegistry.EXPECT().GetLastProjectId(ctx).Return(big.NewInt(0), nil)

	projects, err := svc.FetchApproved(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjectService_FetchApproved_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	mockRegistry.EXPECT().GetLastProjectId(ctx).Return(nil, errors.New("not connected"))

	_, err := svc.FetchApproved(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error fetching project count")
}

// ── FetchAll ─────────────────────────────────────────────────────────────────

func TestProjectService_FetchAll_IncludesUnapproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, _, mockHashes := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	mockRegistry.EXPECT().GetLastProjectId(ctx).Return(big.NewInt(2), nil)
	expectProjectRead(ctx, mockRegistry, mockHashes, 0, "approved-one", true, true)
	expectProjectRead(ctx, mockRegistry, mockHashes, 1, "pending-one", false, true)

	projects, err := svc.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.True(t, projects[0].Approved)
	assert.False(t, projects[1].Approved)
}

// ── FetchCreated / FetchFunded ───────────────────────────────────────────────

func TestProjectService_FetchCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, _, mockHashes := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	mockRegistry.EXPECT().GetOwnerProjects(ctx, testAccount).Return([]*big.Int{big.NewInt(4)}, nil)
	expectProjectRead(ctx, mockRegistry, mockHashes, 4, "pending-project", false, true)

	projects, err := svc.FetchCreated(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	// own projects show up even before approval
	assert.False(t, projects[0].Approved)
}

func TestProjectService_FetchFunded_CarriesStake(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, _, mockHashes := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	mockRegistry.EXPECT().GetUserFundedProjects(ctx, testAccount).Return([]*big.Int{big.NewInt(2)}, nil)
	expectProjectRead(ctx, mockRegistry, mockHashes, 2, "funded-project", true, true)
	mockRegistry.EXPECT().GetFunderBalance(ctx, big.NewInt(2), testAccount).Return(big.NewInt(75), nil)

	projects, err := svc.FetchFunded(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, big.NewInt(75), projects[0].FunderBalance)
	assert.Equal(t, big.NewInt(75), projects[0].Balance)
}

// ── Fetch ────────────────────────────────────────────────────────────────────

func TestProjectService_Fetch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, mockContent, mockHashes := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	mockRegistry.EXPECT().GetLastProjectId(ctx).Return(big.NewInt(5), nil)
	mockRegistry.EXPECT().IsApproved(ctx, big.NewInt(3)).Return(true, nil)
	expectProjectRead(ctx, mockRegistry, mockHashes, 3, "solar-farm", true, true)
	mockRegistry.EXPECT().GetFunderBalance(ctx, big.NewInt(3), testAccount).Return(big.NewInt(10), nil)
	mockRegistry.EXPECT().GetIpfsHash(ctx, big.NewInt(3)).Return("QmMeta", nil)
	mockContent.EXPECT().Cat(ctx, "QmMeta").Return([]byte(`{"description":"panels","updates":[]}`), nil)

	project, err := svc.Fetch(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "solar-farm", project.Name)
	assert.Equal(t, big.NewInt(10), project.FunderBalance)
	assert.Equal(t, "QmMeta", project.MetadataHash)
	require.NotNil(t, project.Metadata)
	assert.Equal(t, "panels", project.Metadata.Description)
}

func TestProjectService_Fetch_IdOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	mockRegistry.EXPECT().GetLastProjectId(ctx).Return(big.NewInt(2), nil).Times(2)

	_, err := svc.Fetch(ctx, 2)
	require.ErrorIs(t, err, ErrProjectNotFound)

	_, err = svc.Fetch(ctx, -1)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_Fetch_Unapproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	mockRegistry.EXPECT().GetLastProjectId(ctx).Return(big.NewInt(2), nil)
	mockRegistry.EXPECT().IsApproved(ctx, big.NewInt(1)).Return(false, nil)

	_, err := svc.Fetch(ctx, 1)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_Fetch_MissingMetadataTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, _, mockHashes := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	mockRegistry.EXPECT().GetLastProjectId(ctx).Return(big.NewInt(1), nil)
	mockRegistry.EXPECT().IsApproved(ctx, big.NewInt(0)).Return(true, nil)
	expectProjectRead(ctx, mockRegistry, mockHashes, 0, "bare-project", true, true)
	mockRegistry.EXPECT().GetFunderBalance(ctx, big.NewInt(0), testAccount).Return(big.NewInt(0), nil)
	mockRegistry.EXPECT().GetIpfsHash(ctx, big.NewInt(0)).Return("", nil)

	project, err := svc.Fetch(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, project.MetadataHash)
	assert.Nil(t, project.Metadata)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestProjectService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRegistry.EXPECT().ProjectExists(ctx, "space-elevator").Return(false, nil),
		mockRegistry.EXPECT().Create(ctx, "space-elevator", big.NewInt(5000)).Return(nil),
	)

	// surrounding whitespace is trimmed before validation and submission
	err := svc.Create(ctx, "  space-elevator  ", big.NewInt(5000))
	require.NoError(t, err)
}

func TestProjectService_Create_NameBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name        string
		projectName string
	}{
		{name: "too short", projectName: "short"},
		{name: "too long", projectName: strings.Repeat("x", 31)},
		{name: "whitespace only", projectName: "   "},
		{name: "trims below minimum", projectName: "  seven77  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(ctx, tt.projectName, big.NewInt(100))
			require.ErrorIs(t, err, ErrProjectName)
		})
	}
}

func TestProjectService_Create_NameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	mockRegistry.EXPECT().ProjectExists(ctx, "space-elevator").Return(true, nil)

	err := svc.Create(ctx, "space-elevator", big.NewInt(100))
	require.ErrorIs(t, err, ErrProjectNameTaken)
}

// ── ApproveProject / CloseProject ────────────────────────────────────────────

func TestProjectService_ApproveProject_RequeriesFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRegistry.EXPECT().Approve(ctx, big.NewInt(7)).Return(nil),
		mockRegistry.EXPECT().IsApproved(ctx, big.NewInt(7)).Return(true, nil),
	)

	approved, err := svc.ApproveProject(ctx, 7)
	require.NoError(t, err)
	assert.True(t, approved)
}

func TestProjectService_ApproveProject_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	mockRegistry.EXPECT().Approve(ctx, big.NewInt(7)).Return(errors.New("rejected"))

	_, err := svc.ApproveProject(ctx, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error approving project")
}

func TestProjectService_CloseProject_RequeriesFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRegistry.EXPECT().Close(ctx, big.NewInt(7)).Return(nil),
		mockRegistry.EXPECT().IsOpen(ctx, big.NewInt(7)).Return(false, nil),
	)

	open, err := svc.CloseProject(ctx, 7)
	require.NoError(t, err)
	assert.False(t, open)
}

// ── Deposit / Withdraw ───────────────────────────────────────────────────────

func TestProjectService_Deposit_OrderAndRequery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, mockToken, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()
	quote := models.NewTokenQuote("CFT", 0)

	// the allowance precedes the deposit, the balances are re-read after
	gomock.InOrder(
		mockToken.EXPECT().Approve(ctx, testRegistryAddr, big.NewInt(50)).Return(nil),
		mockRegistry.EXPECT().Deposit(ctx, big.NewInt(3), big.NewInt(50)).Return(nil),
		mockRegistry.EXPECT().GetBalance(ctx, big.NewInt(3)).Return(big.NewInt(300), nil),
		mockRegistry.EXPECT().GetFunderBalance(ctx, big.NewInt(3), testAccount).Return(big.NewInt(50), nil),
		mockToken.EXPECT().BalanceOf(ctx, testAccount).Return(big.NewInt(950), nil),
	)
	mockRegistry.EXPECT().Address().Return(testRegistryAddr)

	funds, err := svc.Deposit(ctx, 3, quote, 50)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(300), funds.ProjectBalance)
	assert.Equal(t, big.NewInt(50), funds.FunderBalance)
	assert.Equal(t, big.NewInt(950), funds.WalletBalance)
}

func TestProjectService_Deposit_ScalesByDecimals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, mockToken, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()
	quote := models.NewTokenQuote("CFT", 3)

	// 5 whole tokens at 3 decimals hit the contracts as 5000 smallest units
	units := big.NewInt(5000)
	gomock.InOrder(
		mockToken.EXPECT().Approve(ctx, testRegistryAddr, units).Return(nil),
		mockRegistry.EXPECT().Deposit(ctx, big.NewInt(7), units).Return(nil),
		mockRegistry.EXPECT().GetBalance(ctx, big.NewInt(7)).Return(big.NewInt(5000), nil),
		mockRegistry.EXPECT().GetFunderBalance(ctx, big.NewInt(7), testAccount).Return(big.NewInt(5000), nil),
		mockToken.EXPECT().BalanceOf(ctx, testAccount).Return(big.NewInt(995000), nil),
	)
	mockRegistry.EXPECT().Address().Return(testRegistryAddr)

	funds, err := svc.Deposit(ctx, 7, quote, 5)
	require.NoError(t, err)
	assert.Equal(t, units, funds.FunderBalance)
}

func TestProjectService_Deposit_ApproveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, mockToken, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	mockRegistry.EXPECT().Address().Return(testRegistryAddr)
	mockToken.EXPECT().Approve(ctx, testRegistryAddr, big.NewInt(50)).Return(errors.New("rejected"))

	_, err := svc.Deposit(ctx, 3, models.NewTokenQuote("CFT", 0), 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error approving deposit allowance")
}

func TestProjectService_Withdraw_OrderAndRequery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, mockToken, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()
	quote := models.NewTokenQuote("CFT", 0)

	// the registry releases the stake, then the tokens come back to the caller
	gomock.InOrder(
		mockRegistry.EXPECT().Withdraw(ctx, big.NewInt(3), big.NewInt(20)).Return(nil),
		mockToken.EXPECT().TransferFrom(ctx, testRegistryAddr, testAccount, big.NewInt(20)).Return(nil),
		mockRegistry.EXPECT().GetBalance(ctx, big.NewInt(3)).Return(big.NewInt(230), nil),
		mockRegistry.EXPECT().GetFunderBalance(ctx, big.NewInt(3), testAccount).Return(big.NewInt(30), nil),
		mockToken.EXPECT().BalanceOf(ctx, testAccount).Return(big.NewInt(970), nil),
	)
	mockRegistry.EXPECT().Address().Return(testRegistryAddr)

	funds, err := svc.Withdraw(ctx, 3, quote, 20)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(230), funds.ProjectBalance)
	assert.Equal(t, big.NewInt(30), funds.FunderBalance)
	assert.Equal(t, big.NewInt(970), funds.WalletBalance)
}

func TestProjectService_Withdraw_ScalesByDecimals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, mockToken, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()
	quote := models.NewTokenQuote("CFT", 3)

	units := big.NewInt(2000)
	gomock.InOrder(
		mockRegistry.EXPECT().Withdraw(ctx, big.NewInt(7), units).Return(nil),
		mockToken.EXPECT().TransferFrom(ctx, testRegistryAddr, testAccount, units).Return(nil),
		mockRegistry.EXPECT().GetBalance(ctx, big.NewInt(7)).Return(big.NewInt(3000), nil),
		mockRegistry.EXPECT().GetFunderBalance(ctx, big.NewInt(7), testAccount).Return(big.NewInt(3000), nil),
		mockToken.EXPECT().BalanceOf(ctx, testAccount).Return(big.NewInt(997000), nil),
	)
	mockRegistry.EXPECT().Address().Return(testRegistryAddr)

	_, err := svc.Withdraw(ctx, 7, quote, 2)
	require.NoError(t, err)
}

func TestProjectService_Withdraw_TransferError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, mockToken, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRegistry.EXPECT().Withdraw(ctx, big.NewInt(3), big.NewInt(20)).Return(nil),
		mockToken.EXPECT().TransferFrom(ctx, testRegistryAddr, testAccount, big.NewInt(20)).Return(errors.New("revert")),
	)
	mockRegistry.EXPECT().Address().Return(testRegistryAddr)

	_, err := svc.Withdraw(ctx, 3, models.NewTokenQuote("CFT", 0), 20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error transferring withdrawal")
}

// ── PublishUpdate ────────────────────────────────────────────────────────────

func TestProjectService_PublishUpdate_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	mockRegistry.EXPECT().GetOwner(ctx, big.NewInt(3)).Return(testOwnerAddr, nil)

	err := svc.PublishUpdate(ctx, 3, models.ProjectUpdate{Title: "milestone"})
	require.ErrorIs(t, err, ErrNotOwner)
}

func TestProjectService_PublishUpdate_AppendsToExistingDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, mockContent, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	existing := []byte(`{"description":"panels","updates":[{"title":"first","postedAt":100}]}`)

	// owner check uses case-insensitive address comparison
	mockRegistry.EXPECT().GetOwner(ctx, big.NewInt(3)).Return(strings.ToUpper(testAccount), nil)
	mockRegistry.EXPECT().GetIpfsHash(ctx, big.NewInt(3)).Return("QmOld", nil)
	mockContent.EXPECT().Cat(ctx, "QmOld").Return(existing, nil)
	mockContent.EXPECT().AddJSON(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, v any) (string, error) {
			metadata, ok := v.(*models.ProjectMetadata)
			require.True(t, ok)
			assert.Equal(t, "panels", metadata.Description)
			require.Len(t, metadata.Updates, 2)
			assert.Equal(t, "milestone", metadata.Updates[1].Title)
			assert.NotZero(t, metadata.Updates[1].PostedAt)
			return "QmNew", nil
		},
	)
	mockRegistry.EXPECT().SetIpfsHash(ctx, big.NewInt(3), "QmNew").Return(nil)

	err := svc.PublishUpdate(ctx, 3, models.ProjectUpdate{Title: "milestone", Body: "first panel up"})
	require.NoError(t, err)
}

func TestProjectService_PublishUpdate_StartsFreshDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRegistry, _, mockContent, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	mockRegistry.EXPECT().GetOwner(ctx, big.NewInt(3)).Return(testAccount, nil)
	mockRegistry.EXPECT().GetIpfsHash(ctx, big.NewInt(3)).Return("", nil)
	mockContent.EXPECT().AddJSON(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, v any) (string, error) {
			metadata, ok := v.(*models.ProjectMetadata)
			require.True(t, ok)
			require.Len(t, metadata.Updates, 1)
			return "QmNew", nil
		},
	)
	mockRegistry.EXPECT().SetIpfsHash(ctx, big.NewInt(3), "QmNew").Return(nil)

	err := svc.PublishUpdate(ctx, 3, models.ProjectUpdate{Title: "kickoff", PostedAt: 42})
	require.NoError(t, err)
}
