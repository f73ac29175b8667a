// Package tui implements the terminal front end: a login screen and a tabbed
// dashboard for gifts, app versions, notification broadcast, and period
// content curation. All state lives in the single Bubble Tea event loop;
// remote calls run as commands and report back as messages.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pinkypromises/adminctl/internal/client/gateway"
	"github.com/pinkypromises/adminctl/internal/client/session"
	"github.com/pinkypromises/adminctl/internal/client/viewstate"
	"github.com/pinkypromises/adminctl/internal/logging"
)

// Gateways bundles every remote API surface the dashboard talks to.
type Gateways struct {
	Auth          gateway.Auth
	Recipients    gateway.Recipients
	Inventory     gateway.Inventory
	Gifts         gateway.Gifts
	Reminders     gateway.Reminders
	Versions      gateway.Versions
	Notifications gateway.Notifications
	Period        gateway.Period
}

type appView int

const (
	viewLogin appView = iota
	viewDashboard
)

// Top-level dashboard tab names.
const (
	tabGifts    = "gifts"
	tabVersions = "versions"
	tabNotify   = "notify"
	tabPeriod   = "period"
)

// App is the root model. It routes key input to the active view, routes
// result messages to the view that owns them, and drives the once-a-second
// countdown tick while the gifts tab is visible.
type App struct {
	ctx  context.Context
	log  logging.Logger
	sess *session.Session

	view   appView
	width  int
	height int

	tabs *viewstate.Tabs
	spin spinner.Model

	login    loginModel
	gifts    giftsModel
	versions versionsModel
	notify   notifyModel
	period   periodModel

	// tickGen invalidates in-flight ticks: a tick carrying an older
	// generation is dropped and not rescheduled, which is how the timer
	// stops when the gifts tab goes out of view.
	tickGen int
}

// New constructs the root model.
func New(ctx context.Context, sess *session.Session, gw Gateways, log logging.Logger) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = countdownStyle

	return &App{
		ctx:      ctx,
		log:      log,
		sess:     sess,
		view:     viewLogin,
		tabs:     viewstate.NewTabs(tabGifts, tabVersions, tabNotify, tabPeriod),
		spin:     sp,
		login:    newLoginModel(ctx, sess, log),
		gifts:    newGiftsModel(ctx, gw, log),
		versions: newVersionsModel(ctx, gw, log),
		notify:   newNotifyModel(ctx, gw, log),
		period:   newPeriodModel(ctx, gw, log),
	}
}

// Init probes the existing session before showing anything interactive.
func (a *App) Init() tea.Cmd {
	ctx := a.ctx
	sess := a.sess
	return tea.Batch(
		func() tea.Msg {
			sess.Init(ctx)
			return sessionProbedMsg{}
		},
		a.spin.Tick,
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)

	case sessionProbedMsg:
		if a.sess.Authenticated() {
			return a, a.enterDashboard()
		}
		return a, nil

	case loginResultMsg:
		cmd := a.login.update(msg)
		if msg.err == nil {
			return a, a.enterDashboard()
		}
		return a, cmd

	case loggedOutMsg:
		a.view = viewLogin
		a.tickGen++
		a.login = newLoginModel(a.ctx, a.sess, a.log)
		return a, nil

	case tickMsg:
		if msg.gen != a.tickGen {
			return a, nil
		}
		a.gifts.countdown = viewstate.UntilNextMonth(msg.at)
		return a, a.tick()

	case recipientLoadedMsg, recipientAddedMsg, giftsToggledMsg,
		giftsLoadedMsg, giftAddedMsg, giftSentMsg, cartLoadedMsg,
		remindersSentMsg, reminderDateMsg:
		return a, a.gifts.update(msg)

	case versionsLoadedMsg, versionCreatedMsg, versionDeletedMsg:
		return a, a.versions.update(msg)

	case broadcastDoneMsg:
		return a, a.notify.update(msg)

	case enumsLoadedMsg, aidsLoadedMsg, aidSavedMsg, aidDeletedMsg,
		lookoutsLoadedMsg, lookoutSavedMsg, lookoutDeletedMsg,
		periodUsersLoadedMsg, periodUserSavedMsg, periodUserDeactivatedMsg:
		return a, a.period.update(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.view == viewLogin {
		return a, a.login.handleKey(msg)
	}

	switch msg.String() {
	case "ctrl+l":
		ctx := a.ctx
		sess := a.sess
		return a, func() tea.Msg {
			sess.Logout(ctx)
			return loggedOutMsg{}
		}

	case "tab", "shift+tab":
		// Tab switching is suspended while the active view captures
		// input (an open modal or pending confirmation).
		if a.activeCaptures() {
			break
		}
		var needsLoad bool
		if msg.String() == "tab" {
			needsLoad = a.tabs.Next()
		} else {
			needsLoad = a.tabs.Prev()
		}
		return a, a.afterTabSwitch(needsLoad)
	}

	switch a.tabs.Active() {
	case tabGifts:
		return a, a.gifts.handleKey(msg)
	case tabVersions:
		return a, a.versions.handleKey(msg)
	case tabNotify:
		return a, a.notify.handleKey(msg)
	case tabPeriod:
		return a, a.period.handleKey(msg)
	}
	return a, nil
}

// activeCaptures reports whether the active view is in a state where tab and
// shift+tab belong to it rather than to top-level navigation.
func (a *App) activeCaptures() bool {
	switch a.tabs.Active() {
	case tabGifts:
		return a.gifts.captures()
	case tabVersions:
		return a.versions.captures()
	case tabNotify:
		return a.notify.captures()
	case tabPeriod:
		return a.period.captures()
	}
	return false
}

// afterTabSwitch kicks off the new tab's lazy load when needed and restarts
// or stops the countdown tick depending on whether the gifts tab is visible.
func (a *App) afterTabSwitch(needsLoad bool) tea.Cmd {
	var cmds []tea.Cmd

	if needsLoad {
		name := a.tabs.Active()
		a.tabs.MarkLoaded(name)
		switch name {
		case tabGifts:
			cmds = append(cmds, a.gifts.loadAll())
		case tabVersions:
			cmds = append(cmds, a.versions.load())
		case tabNotify:
			a.notify.open()
		case tabPeriod:
			cmds = append(cmds, a.period.loadActive())
		}
	}

	a.tickGen++
	if a.tabs.Active() == tabGifts {
		a.gifts.countdown = viewstate.UntilNextMonth(time.Now())
		cmds = append(cmds, a.tick())
	}

	return tea.Batch(cmds...)
}

func (a *App) enterDashboard() tea.Cmd {
	a.view = viewDashboard
	a.tabs = viewstate.NewTabs(tabGifts, tabVersions, tabNotify, tabPeriod)
	a.tabs.MarkLoaded(tabGifts)
	a.tickGen++
	a.gifts.countdown = viewstate.UntilNextMonth(time.Now())
	return tea.Batch(a.gifts.loadAll(), a.tick())
}

func (a *App) tick() tea.Cmd {
	gen := a.tickGen
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

func (a *App) View() string {
	if a.view == viewLogin {
		return a.login.view()
	}

	var b strings.Builder

	header := titleStyle.Render("PinkyPromises Admin")
	if admin := a.sess.Admin(); admin != nil {
		header += dimStyle.Render("  ·  " + admin.Email)
	}
	b.WriteString(header + "\n")

	var tabBar []string
	for _, name := range a.tabs.Names() {
		if name == a.tabs.Active() {
			tabBar = append(tabBar, activeTabStyle.Render(name))
		} else {
			tabBar = append(tabBar, tabStyle.Render(name))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabBar...) + "\n\n")

	switch a.tabs.Active() {
	case tabGifts:
		b.WriteString(a.gifts.view(a.spin.View()))
	case tabVersions:
		b.WriteString(a.versions.view(a.spin.View()))
	case tabNotify:
		b.WriteString(a.notify.view())
	case tabPeriod:
		b.WriteString(a.period.view(a.spin.View()))
	}

	b.WriteString("\n" + helpStyle.Render("tab switch view · ctrl+l sign out · ctrl+c quit"))
	return b.String()
}
