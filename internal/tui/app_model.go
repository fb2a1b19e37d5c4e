package tui

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/cfdapp/crowdfund-client/internal/identity"
	"github.com/cfdapp/crowdfund-client/internal/service"
	"github.com/cfdapp/crowdfund-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenHome screen = iota
	screenLogin
	screenRegister
	screenDiscover
	screenProject
	screenPublish
	screenStartProject
	screenCrowdsale
	screenAdmin
	screenAccount
	screenAbout
)

type appModel struct {
	ctx       context.Context
	services  *service.Services
	resolver  *identity.Resolver
	account   string
	buildInfo models.AppBuildInfo

	currentScreen screen
	ident         models.Identity

	home         homeModel
	login        loginModel
	register     registerModel
	discover     discoverModel
	project      projectModel
	publish      publishModel
	startProject startProjectModel
	crowdsale    crowdsaleModel
	admin        adminModel
	accountPage  accountModel

	// projectID is the project open on the detail page; projectFrom is the
	// screen that opened it, for esc navigation.
	projectID   int64
	projectFrom screen

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
}

func newAppModel(ctx context.Context, services *service.Services, resolver *identity.Resolver, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		resolver:      resolver,
		account:       services.Accounts.Account(),
		buildInfo:     buildInfo,
		currentScreen: screenHome,
		home:          newHomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		discover:      newDiscoverModel(),
		project:       newProjectModel(),
		startProject:  newStartProjectModel(),
		crowdsale:     newCrowdsaleModel(),
		admin:         newAdminModel(),
		accountPage:   newAccountModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdResolveIdentity()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				m.project.status = ""
				m.project.submitting = true
				return m, tea.Batch(m.project.spinner.Tick, m.cmdClose(m.projectID))
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
			}
			return m, nil
		}

	case identityMsg:
		m.ident = msg.ident
		m.home.setIdentity(msg.ident)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, nil

	case gateOpenedMsg:
		return m.handleGateOpened(msg)

	case authDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.login = newLoginModel()
		m.currentScreen = screenHome
		m.home.status = fmt.Sprintf("Welcome back, %s!", msg.profile.Username)
		return m, m.cmdResolveIdentity()

	case registerDoneMsg:
		m.register.submitting = false
		if msg.err != nil {
			m.register.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.register = newRegisterModel()
		m.currentScreen = screenHome
		m.home.status = "Registration complete. Log in to continue."
		return m, m.cmdResolveIdentity()

	case logoutDoneMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.home.status = "Logged out."
		return m, m.cmdResolveIdentity()

	case discoverLoadedMsg:
		if msg.err != nil {
			m.discover.loading = false
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.discover.setProjects(msg.projects)
		return m, nil

	case projectLoadedMsg:
		if msg.err != nil {
			m.project.loading = false
			m.currentScreen = m.projectFrom
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		owned := strings.EqualFold(msg.project.OwnerAddress, m.account)
		m.project.setProject(msg.project, msg.quote, owned)
		return m, nil

	case fundsUpdatedMsg:
		m.project.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.project.project.Balance = msg.funds.ProjectBalance
		m.project.project.FunderBalance = msg.funds.FunderBalance
		m.project.amount.SetValue("")
		m.project.status = fmt.Sprintf("Confirmed. Wallet balance: %s %s",
			m.project.quote.Format(msg.funds.WalletBalance), m.project.quote.Symbol)
		return m, nil

	case closeDoneMsg:
		m.project.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.project.project.Open = msg.open
		m.project.status = "Project closed."
		return m, nil

	case updatePublishedMsg:
		m.publish.submitting = false
		if msg.err != nil {
			m.publish.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.currentScreen = screenProject
		m.project.loading = true
		return m, tea.Batch(m.project.spinner.Tick, m.cmdLoadProject(m.projectID))

	case projectCreatedMsg:
		m.startProject.submitting = false
		if msg.err != nil {
			m.startProject.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.startProject = newStartProjectModel()
		m.currentScreen = screenHome
		m.home.status = "Project submitted. It becomes public after approval."
		return m, nil

	case quoteLoadedMsg:
		if msg.err != nil {
			m.crowdsale.loading = false
			m.currentScreen = screenHome
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.crowdsale.setQuote(msg.quote, msg.wallet)
		return m, nil

	case buyDoneMsg:
		m.crowdsale.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.crowdsale.wallet = msg.balances.Wallet
		m.crowdsale.quote.ForSale = msg.balances.ForSale
		m.crowdsale.amount.SetValue("")
		m.crowdsale.status = "Purchase confirmed."
		return m, nil

	case accountLoadedMsg:
		if msg.err != nil {
			m.accountPage.loading = false
			m.currentScreen = screenHome
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.accountPage.address = m.account
		m.accountPage.setData(msg.profile, msg.quote, msg.wallet, msg.created, msg.funded)
		return m, nil

	case adminLoadedMsg:
		if msg.err != nil {
			m.admin.loading = false
			m.currentScreen = screenHome
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.admin.setData(msg.projects, msg.users)
		return m, nil

	case approveDoneMsg:
		m.admin.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		for i := range m.admin.projects {
			if m.admin.projects[i].ID == msg.id {
				m.admin.projects[i].Approved = msg.approved
			}
		}
		m.admin.status = "Project approved."
		return m, nil

	case copiedMsg:
		m.accountPage.status = "Copied!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.accountPage.status = ""
		return m, nil

	case spinner.TickMsg:
		return m.updateSpinners(msg)

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenHome:
		return m.updateHome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenDiscover:
		return m.updateDiscover(msg)
	case screenProject:
		return m.updateProject(msg)
	case screenPublish:
		return m.updatePublish(msg)
	case screenStartProject:
		return m.updateStartProject(msg)
	case screenCrowdsale:
		return m.updateCrowdsale(msg)
	case screenAdmin:
		return m.updateAdmin(msg)
	case screenAccount:
		return m.updateAccount(msg)
	case screenAbout:
		return m.updateAbout(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenHome:
		body = m.home.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenDiscover:
		body = m.discover.View()
	case screenProject:
		body = m.project.View()
	case screenPublish:
		body = m.publish.View()
	case screenStartProject:
		body = m.startProject.View()
	case screenCrowdsale:
		body = m.crowdsale.View()
	case screenAdmin:
		body = m.admin.View()
	case screenAccount:
		body = m.accountPage.View()
	case screenAbout:
		body = renderAboutWindow(m.buildInfo)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// handleGateOpened finishes a session-gated navigation: the identity was
// re-resolved and either unlocks the target page or bounces back home.
func (m appModel) handleGateOpened(msg gateOpenedMsg) (tea.Model, tea.Cmd) {
	m.ident = msg.ident
	m.home.setIdentity(msg.ident)

	if msg.err != nil {
		m.currentScreen = screenHome
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	}
	if !msg.ident.LoggedIn {
		m.currentScreen = screenHome
		m.home.status = "Your session has expired. Log in again."
		return m, nil
	}
	if msg.target == screenAdmin && !msg.ident.Admin {
		m.currentScreen = screenHome
		m.home.status = "Administrator access only."
		return m, nil
	}

	m.currentScreen = msg.target
	switch msg.target {
	case screenDiscover:
		m.discover = newDiscoverModel()
		return m, tea.Batch(m.discover.spinner.Tick, m.cmdLoadDiscover())
	case screenProject:
		m.project = newProjectModel()
		return m, tea.Batch(m.project.spinner.Tick, m.cmdLoadProject(m.projectID))
	case screenStartProject:
		m.startProject = newStartProjectModel()
		return m, nil
	case screenCrowdsale:
		m.crowdsale = newCrowdsaleModel()
		return m, tea.Batch(m.crowdsale.spinner.Tick, m.cmdLoadQuote())
	case screenAdmin:
		m.admin = newAdminModel()
		return m, tea.Batch(m.admin.spinner.Tick, m.cmdLoadAdmin())
	case screenAccount:
		m.accountPage = newAccountModel()
		return m, tea.Batch(m.accountPage.spinner.Tick, m.cmdLoadAccount())
	}

	return m, nil
}

func (m appModel) updateSpinners(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScreen {
	case screenDiscover:
		if m.discover.loading {
			m.discover.spinner, cmd = m.discover.spinner.Update(msg)
		}
	case screenProject:
		if m.project.loading || m.project.submitting {
			m.project.spinner, cmd = m.project.spinner.Update(msg)
		}
	case screenCrowdsale:
		if m.crowdsale.loading || m.crowdsale.submitting {
			m.crowdsale.spinner, cmd = m.crowdsale.spinner.Update(msg)
		}
	case screenAdmin:
		if m.admin.loading || m.admin.submitting {
			m.admin.spinner, cmd = m.admin.spinner.Update(msg)
		}
	case screenAccount:
		if m.accountPage.loading {
			m.accountPage.spinner, cmd = m.accountPage.spinner.Update(msg)
		}
	}
	return m, cmd
}

// ── per-screen key handling ───────────────────────────────────────────────────

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.home.idx > 0 {
			m.home.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.home.idx < len(m.home.items)-1 {
			m.home.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.home.current()
		if !ok {
			return m, nil
		}
		return m.openMenuItem(item.id)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) openMenuItem(id string) (tea.Model, tea.Cmd) {
	m.home.status = ""
	switch id {
	case menuLogin:
		m.login = newLoginModel()
		m.currentScreen = screenLogin
		return m, nil
	case menuRegister:
		m.register = newRegisterModel()
		m.currentScreen = screenRegister
		return m, nil
	case menuDiscover:
		return m, m.cmdOpenGated(screenDiscover)
	case menuStart:
		return m, m.cmdOpenGated(screenStartProject)
	case menuCrowdsale:
		return m, m.cmdOpenGated(screenCrowdsale)
	case menuAccount:
		return m, m.cmdOpenGated(screenAccount)
	case menuAdmin:
		return m, m.cmdOpenGated(screenAdmin)
	case menuAbout:
		m.currentScreen = screenAbout
		return m, nil
	case menuLogout:
		return m, m.cmdLogout()
	case menuQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateAbout(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			username := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if username == "" || password == "" {
				m.login.errMsg = "Username and password are required"
				return m, nil
			}
			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			username := strings.TrimSpace(m.register.inputs[regFieldUsername].Value())
			password := m.register.inputs[regFieldPassword].Value()
			repeat := m.register.inputs[regFieldRepeat].Value()
			if username == "" || password == "" {
				m.register.errMsg = "Username and password are required"
				return m, nil
			}
			if password != repeat {
				m.register.errMsg = "Passwords do not match"
				return m, nil
			}
			m.register.errMsg = ""
			m.register.submitting = true
			return m, m.cmdRegister(models.Profile{
				Username:  username,
				Email:     strings.TrimSpace(m.register.inputs[regFieldEmail].Value()),
				Firstname: strings.TrimSpace(m.register.inputs[regFieldFirstname].Value()),
				Lastname:  strings.TrimSpace(m.register.inputs[regFieldLastname].Value()),
				Password:  password,
			})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDiscover(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.up):
		m.discover.moveUp()
	case key.Matches(keyMsg, keys.down):
		m.discover.moveDown()
	case key.Matches(keyMsg, keys.left):
		m.discover.pageLeft()
	case key.Matches(keyMsg, keys.right):
		m.discover.pageRight()
	case key.Matches(keyMsg, keys.enter):
		project, ok := m.discover.current()
		if !ok {
			return m, nil
		}
		m.projectID = project.ID
		m.projectFrom = screenDiscover
		return m, m.cmdOpenGated(screenProject)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateProject(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.project.submitting || m.project.loading {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = m.projectFrom
			return m, nil
		case key.Matches(keyMsg, keys.deposit):
			tokens, err := parseWhole(m.project.amount.Value())
			if err != nil {
				m.project.status = "Enter a positive whole-token amount first."
				return m, nil
			}
			m.project.status = ""
			m.project.submitting = true
			return m, tea.Batch(m.project.spinner.Tick, m.cmdDeposit(m.projectID, m.project.quote, tokens))
		case key.Matches(keyMsg, keys.withdraw):
			tokens, err := parseWhole(m.project.amount.Value())
			if err != nil {
				m.project.status = "Enter a positive whole-token amount first."
				return m, nil
			}
			m.project.status = ""
			m.project.submitting = true
			return m, tea.Batch(m.project.spinner.Tick, m.cmdWithdraw(m.projectID, m.project.quote, tokens))
		case key.Matches(keyMsg, keys.update):
			if !m.project.owned {
				return m, nil
			}
			m.publish = newPublishModel(m.projectID)
			m.currentScreen = screenPublish
			return m, nil
		case key.Matches(keyMsg, keys.closeKey):
			if !m.project.owned || !m.project.project.Open {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = m.project.project.Name
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.project.amount, cmd = m.project.amount.Update(msg)
	return m, cmd
}

func (m appModel) updatePublish(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenProject
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.publish = focusNextPublish(m.publish)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.publish = focusPrevPublish(m.publish)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.publish.submitting {
				return m, nil
			}
			title := strings.TrimSpace(m.publish.inputs[0].Value())
			if title == "" {
				m.publish.errMsg = "A title is required"
				return m, nil
			}
			m.publish.errMsg = ""
			m.publish.submitting = true
			return m, m.cmdPublish(m.publish.projectID, models.ProjectUpdate{
				Title: title,
				Body:  strings.TrimSpace(m.publish.inputs[1].Value()),
			})
		}
	}

	var cmd tea.Cmd
	m.publish.inputs[m.publish.focus], cmd = m.publish.inputs[m.publish.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateStartProject(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.startProject = focusNextStartProject(m.startProject)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.startProject = focusPrevStartProject(m.startProject)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.startProject.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.startProject.inputs[0].Value())
			goal, err := parseAmount(m.startProject.inputs[1].Value())
			if err != nil {
				m.startProject.errMsg = "The goal must be a positive whole amount"
				return m, nil
			}
			m.startProject.errMsg = ""
			m.startProject.submitting = true
			return m, m.cmdCreateProject(name, goal)
		}
	}

	var cmd tea.Cmd
	m.startProject.inputs[m.startProject.focus], cmd = m.startProject.inputs[m.startProject.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateCrowdsale(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.crowdsale.submitting || m.crowdsale.loading {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.buy):
			whole, err := parseWhole(m.crowdsale.amount.Value())
			if err != nil {
				m.crowdsale.status = "Enter a positive whole token amount first."
				return m, nil
			}
			m.crowdsale.status = ""
			m.crowdsale.submitting = true
			return m, tea.Batch(m.crowdsale.spinner.Tick, m.cmdBuy(m.crowdsale.quote, whole))
		}
	}

	var cmd tea.Cmd
	m.crowdsale.amount, cmd = m.crowdsale.amount.Update(msg)
	return m, cmd
}

func (m appModel) updateAdmin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.admin.submitting {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.tab):
		m.admin.switchTab()
	case key.Matches(keyMsg, keys.up):
		m.admin.moveUp()
	case key.Matches(keyMsg, keys.down):
		m.admin.moveDown()
	case key.Matches(keyMsg, keys.left):
		m.admin.pageLeft()
	case key.Matches(keyMsg, keys.right):
		m.admin.pageRight()
	case key.Matches(keyMsg, keys.approve):
		project, ok := m.admin.currentProject()
		if !ok || project.Approved {
			return m, nil
		}
		m.admin.status = ""
		m.admin.submitting = true
		return m, tea.Batch(m.admin.spinner.Tick, m.cmdApprove(project.ID))
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateAccount(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.tab):
		m.accountPage.switchTab()
	case key.Matches(keyMsg, keys.up):
		m.accountPage.moveUp()
	case key.Matches(keyMsg, keys.down):
		m.accountPage.moveDown()
	case key.Matches(keyMsg, keys.left):
		m.accountPage.pageLeft()
	case key.Matches(keyMsg, keys.right):
		m.accountPage.pageRight()
	case key.Matches(keyMsg, keys.copyAddr):
		if m.accountPage.tab == accountTabWallet {
			return m, cmdCopyToClipboard(m.account)
		}
	case key.Matches(keyMsg, keys.enter):
		project, ok := m.accountPage.current()
		if !ok || !project.Approved {
			return m, nil
		}
		m.projectID = project.ID
		m.projectFrom = screenAccount
		return m, m.cmdOpenGated(screenProject)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

// ── async commands ────────────────────────────────────────────────────────────

func (m appModel) cmdResolveIdentity() tea.Cmd {
	ctx := m.ctx
	resolver := m.resolver
	account := m.account
	return func() tea.Msg {
		ident, err := resolver.Resolve(ctx, account)
		return identityMsg{ident: ident, err: err}
	}
}

// cmdOpenGated re-resolves the identity before entering a session-gated page.
func (m appModel) cmdOpenGated(target screen) tea.Cmd {
	ctx := m.ctx
	resolver := m.resolver
	account := m.account
	return func() tea.Msg {
		ident, err := resolver.Resolve(ctx, account)
		return gateOpenedMsg{target: target, ident: ident, err: err}
	}
}

func (m appModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	accounts := m.services.Accounts
	return func() tea.Msg {
		profile, err := accounts.Login(ctx, username, password)
		return authDoneMsg{profile: profile, err: err}
	}
}

func (m appModel) cmdRegister(profile models.Profile) tea.Cmd {
	ctx := m.ctx
	accounts := m.services.Accounts
	return func() tea.Msg {
		return registerDoneMsg{err: accounts.Register(ctx, profile)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	accounts := m.services.Accounts
	return func() tea.Msg {
		return logoutDoneMsg{err: accounts.Logout()}
	}
}

func (m appModel) cmdLoadDiscover() tea.Cmd {
	ctx := m.ctx
	projects := m.services.Projects
	return func() tea.Msg {
		list, err := projects.FetchApproved(ctx)
		return discoverLoadedMsg{projects: list, err: err}
	}
}

func (m appModel) cmdLoadProject(id int64) tea.Cmd {
	ctx := m.ctx
	projects := m.services.Projects
	sale := m.services.Sale
	return func() tea.Msg {
		quote, err := sale.Quote(ctx)
		if err != nil {
			return projectLoadedMsg{err: err}
		}
		project, err := projects.Fetch(ctx, id)
		return projectLoadedMsg{project: project, quote: quote, err: err}
	}
}

func (m appModel) cmdDeposit(id int64, quote models.TokenQuote, tokens int64) tea.Cmd {
	ctx := m.ctx
	projects := m.services.Projects
	return func() tea.Msg {
		funds, err := projects.Deposit(ctx, id, quote, tokens)
		return fundsUpdatedMsg{funds: funds, err: err}
	}
}

func (m appModel) cmdWithdraw(id int64, quote models.TokenQuote, tokens int64) tea.Cmd {
	ctx := m.ctx
	projects := m.services.Projects
	return func() tea.Msg {
		funds, err := projects.Withdraw(ctx, id, quote, tokens)
		return fundsUpdatedMsg{funds: funds, err: err}
	}
}

func (m appModel) cmdClose(id int64) tea.Cmd {
	ctx := m.ctx
	projects := m.services.Projects
	return func() tea.Msg {
		open, err := projects.CloseProject(ctx, id)
		return closeDoneMsg{open: open, err: err}
	}
}

func (m appModel) cmdPublish(id int64, update models.ProjectUpdate) tea.Cmd {
	ctx := m.ctx
	projects := m.services.Projects
	return func() tea.Msg {
		return updatePublishedMsg{err: projects.PublishUpdate(ctx, id, update)}
	}
}

func (m appModel) cmdCreateProject(name string, goal *big.Int) tea.Cmd {
	ctx := m.ctx
	projects := m.services.Projects
	return func() tea.Msg {
		return projectCreatedMsg{err: projects.Create(ctx, name, goal)}
	}
}

func (m appModel) cmdLoadQuote() tea.Cmd {
	ctx := m.ctx
	sale := m.services.Sale
	account := m.account
	return func() tea.Msg {
		quote, err := sale.Quote(ctx)
		if err != nil {
			return quoteLoadedMsg{err: err}
		}
		wallet, err := sale.BalanceOf(ctx, account)
		return quoteLoadedMsg{quote: quote, wallet: wallet, err: err}
	}
}

func (m appModel) cmdBuy(quote models.TokenQuote, whole int64) tea.Cmd {
	ctx := m.ctx
	sale := m.services.Sale
	return func() tea.Msg {
		balances, err := sale.Buy(ctx, quote, whole)
		return buyDoneMsg{balances: balances, err: err}
	}
}

func (m appModel) cmdLoadAccount() tea.Cmd {
	ctx := m.ctx
	services := m.services
	account := m.account
	return func() tea.Msg {
		profile, err := services.Accounts.ProfileOf(ctx, account)
		if err != nil {
			return accountLoadedMsg{err: err}
		}
		quote, err := services.Sale.Quote(ctx)
		if err != nil {
			return accountLoadedMsg{err: err}
		}
		wallet, err := services.Sale.BalanceOf(ctx, account)
		if err != nil {
			return accountLoadedMsg{err: err}
		}
		created, err := services.Projects.FetchCreated(ctx)
		if err != nil {
			return accountLoadedMsg{err: err}
		}
		funded, err := services.Projects.FetchFunded(ctx)
		return accountLoadedMsg{profile: profile, quote: quote, wallet: wallet, created: created, funded: funded, err: err}
	}
}

func (m appModel) cmdLoadAdmin() tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		projects, err := services.Projects.FetchAll(ctx)
		if err != nil {
			return adminLoadedMsg{err: err}
		}
		users, err := services.Accounts.Users(ctx)
		return adminLoadedMsg{projects: projects, users: users, err: err}
	}
}

func (m appModel) cmdApprove(id int64) tea.Cmd {
	ctx := m.ctx
	projects := m.services.Projects
	return func() tea.Msg {
		approved, err := projects.ApproveProject(ctx, id)
		return approveDoneMsg{id: id, approved: approved, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ── input helpers ─────────────────────────────────────────────────────────────

// parseAmount parses a positive amount kept in token smallest units. The
// funding goal is stored on chain exactly as entered.
func parseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok || v.Sign() <= 0 {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

func parseWhole(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid amount %d", v)
	}
	return v, nil
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextPublish(m publishModel) publishModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevPublish(m publishModel) publishModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextStartProject(m startProjectModel) startProjectModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevStartProject(m startProjectModel) startProjectModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
