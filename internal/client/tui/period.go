package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pinkypromises/adminctl/internal/client/gateway"
	"github.com/pinkypromises/adminctl/internal/client/models"
	"github.com/pinkypromises/adminctl/internal/client/viewstate"
	"github.com/pinkypromises/adminctl/internal/logging"
)

// Period sub-panel names.
const (
	subAids     = "aids"
	subLookouts = "lookouts"
	subUsers    = "users"
)

const (
	actionDeleteAid      = "delete-aid"
	actionDeleteLookout  = "delete-lookout"
	actionDeactivateUser = "deactivate-user"
)

// periodModalKind names which record type the open modal edits.
type periodModalKind int

const (
	modalNone periodModalKind = iota
	modalAid
	modalLookout
	modalUserRegister
	modalUserEdit
)

// periodTarget is the subject of a pending destructive confirmation.
type periodTarget struct {
	kind  string
	id    int
	label string
}

// periodModel curates the period feature's content: aid catalog entries,
// per-user lookout advisories, and the tracked users themselves. Each record
// type lives on its own lazily loaded sub-panel; left/right switch between
// them. Users are never hard-deleted, only deactivated.
type periodModel struct {
	ctx context.Context
	gw  Gateways
	log logging.Logger

	subs        *viewstate.Tabs
	enums       models.PeriodEnums
	enumsLoaded bool

	aids     viewstate.ListStore[models.PeriodAid]
	lookouts viewstate.ListStore[models.PeriodLookout]
	users    viewstate.ListStore[models.PeriodUser]

	aidCursor     int
	lookoutCursor int
	userCursor    int

	actions viewstate.ActionSet
	confirm viewstate.Confirm[periodTarget]

	modal periodModalKind
	// formLC's draft carries the id of the record being edited, zero for
	// creates. Field values live in the form itself.
	formLC viewstate.Form[int]
	form   formModel

	status    string
	statusErr bool
}

func newPeriodModel(ctx context.Context, gw Gateways, log logging.Logger) periodModel {
	return periodModel{
		ctx:  ctx,
		gw:   gw,
		log:  log,
		subs: viewstate.NewTabs(subAids, subLookouts, subUsers),
	}
}

func (m *periodModel) captures() bool {
	return m.modal != modalNone || m.confirm.Pending()
}

// loadActive fetches the visible sub-panel's collection. The first aids load
// also fetches the enum value sets the aid form needs.
func (m *periodModel) loadActive() tea.Cmd {
	m.subs.MarkLoaded(m.subs.Active())
	switch m.subs.Active() {
	case subAids:
		cmds := []tea.Cmd{m.loadAids()}
		if !m.enumsLoaded {
			cmds = append(cmds, m.loadEnums())
		}
		return tea.Batch(cmds...)
	case subLookouts:
		return m.loadLookouts()
	case subUsers:
		return m.loadUsers()
	}
	return nil
}

func (m *periodModel) loadEnums() tea.Cmd {
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		enums, err := gw.Period.Enums(ctx)
		return enumsLoadedMsg{enums: enums, err: err}
	}
}

func (m *periodModel) loadAids() tea.Cmd {
	seq := m.aids.BeginLoad()
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		aids, err := gw.Period.Aids(ctx)
		return aidsLoadedMsg{seq: seq, aids: aids, err: err}
	}
}

func (m *periodModel) loadLookouts() tea.Cmd {
	seq := m.lookouts.BeginLoad()
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		lookouts, err := gw.Period.Lookouts(ctx)
		return lookoutsLoadedMsg{seq: seq, lookouts: lookouts, err: err}
	}
}

func (m *periodModel) loadUsers() tea.Cmd {
	seq := m.users.BeginLoad()
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		users, err := gw.Period.Users(ctx)
		return periodUsersLoadedMsg{seq: seq, users: users, err: err}
	}
}

func (m *periodModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.modal != modalNone {
		return m.handleFormKey(msg)
	}
	if m.confirm.Pending() {
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "left":
		if m.subs.Prev() {
			return m.loadActive()
		}
		return nil
	case "right":
		if m.subs.Next() {
			return m.loadActive()
		}
		return nil
	case "R":
		return m.loadActive()
	}

	switch m.subs.Active() {
	case subAids:
		return m.handleAidsKey(msg)
	case subLookouts:
		return m.handleLookoutsKey(msg)
	case subUsers:
		return m.handleUsersKey(msg)
	}
	return nil
}

func (m *periodModel) handleAidsKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.aidCursor > 0 {
			m.aidCursor--
		}
	case "down", "j":
		if m.aidCursor < m.aids.Len()-1 {
			m.aidCursor++
		}
	case "a":
		m.openAidForm(nil)
	case "e":
		if m.aidCursor < m.aids.Len() {
			aid := m.aids.Records()[m.aidCursor]
			m.openAidForm(&aid)
		}
	case "d":
		if m.aidCursor < m.aids.Len() {
			aid := m.aids.Records()[m.aidCursor]
			if !m.actions.Busy(actionDeleteAid, strconv.Itoa(aid.ID)) {
				m.confirm.Ask(
					periodTarget{kind: subAids, id: aid.ID, label: aid.Title},
					fmt.Sprintf("Delete aid %q?", aid.Title))
			}
		}
	}
	return nil
}

func (m *periodModel) handleLookoutsKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.lookoutCursor > 0 {
			m.lookoutCursor--
		}
	case "down", "j":
		if m.lookoutCursor < m.lookouts.Len()-1 {
			m.lookoutCursor++
		}
	case "a":
		m.openLookoutForm(nil)
	case "e":
		if m.lookoutCursor < m.lookouts.Len() {
			lo := m.lookouts.Records()[m.lookoutCursor]
			m.openLookoutForm(&lo)
		}
	case "d":
		if m.lookoutCursor < m.lookouts.Len() {
			lo := m.lookouts.Records()[m.lookoutCursor]
			if !m.actions.Busy(actionDeleteLookout, strconv.Itoa(lo.ID)) {
				m.confirm.Ask(
					periodTarget{kind: subLookouts, id: lo.ID, label: lo.Title},
					fmt.Sprintf("Delete lookout %q?", lo.Title))
			}
		}
	}
	return nil
}

func (m *periodModel) handleUsersKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.userCursor > 0 {
			m.userCursor--
		}
	case "down", "j":
		if m.userCursor < m.users.Len()-1 {
			m.userCursor++
		}
	case "a":
		m.openUserRegisterForm()
	case "e":
		if m.userCursor < m.users.Len() {
			u := m.users.Records()[m.userCursor]
			m.openUserEditForm(u)
		}
	case "d":
		if m.userCursor < m.users.Len() {
			u := m.users.Records()[m.userCursor]
			if u.IsActive && !m.actions.Busy(actionDeactivateUser, strconv.Itoa(u.ID)) {
				m.confirm.Ask(
					periodTarget{kind: subUsers, id: u.ID, label: u.Username},
					fmt.Sprintf("Deactivate %s? Their data is kept.", u.Username))
			}
		}
	}
	return nil
}

func (m *periodModel) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		target, ok := m.confirm.Confirmed()
		if !ok {
			return nil
		}
		ctx, gw := m.ctx, m.gw
		id := target.id
		switch target.kind {
		case subAids:
			m.actions.Start(actionDeleteAid, strconv.Itoa(id))
			return func() tea.Msg {
				return aidDeletedMsg{id: id, err: gw.Period.DeleteAid(ctx, id)}
			}
		case subLookouts:
			m.actions.Start(actionDeleteLookout, strconv.Itoa(id))
			return func() tea.Msg {
				return lookoutDeletedMsg{id: id, err: gw.Period.DeleteLookout(ctx, id)}
			}
		case subUsers:
			m.actions.Start(actionDeactivateUser, strconv.Itoa(id))
			return func() tea.Msg {
				return periodUserDeactivatedMsg{id: id, err: gw.Period.DeactivateUser(ctx, id)}
			}
		}
	case "n", "esc":
		m.confirm.Cancelled()
	}
	return nil
}

// Modal forms.

func (m *periodModel) openAidForm(aid *models.PeriodAid) {
	m.form = newFormModel("Aid",
		choiceField("problem", "Problem", m.enums.Problems),
		choiceField("category", "Category", m.enums.Categories),
		textField("title", "Title", true),
		textField("description", "Description", false),
		textField("priority", "Priority", false),
	)
	m.modal = modalAid
	if aid == nil {
		m.formLC.OpenBlank(0)
		return
	}
	m.formLC.OpenEdit(aid.ID)
	m.form.setValue("problem", aid.Problem)
	m.form.setValue("category", aid.Category)
	m.form.setValue("title", aid.Title)
	m.form.setValue("description", aid.Description)
	m.form.setValue("priority", strconv.Itoa(aid.Priority))
}

func (m *periodModel) openLookoutForm(lo *models.PeriodLookout) {
	m.form = newFormModel("Lookout",
		textField("userId", "User ID", true),
		textField("title", "Title", true),
		textField("description", "Description", false),
		textField("showOnDate", "Show on (YYYY-MM-DD)", true),
		textField("showUntilDate", "Show until (YYYY-MM-DD)", false),
		textField("priority", "Priority", false),
	)
	m.modal = modalLookout
	if lo == nil {
		m.formLC.OpenBlank(0)
		return
	}
	m.formLC.OpenEdit(lo.ID)
	m.form.setValue("userId", strconv.Itoa(lo.UserID))
	m.form.setValue("title", lo.Title)
	m.form.setValue("description", lo.Description)
	m.form.setValue("showOnDate", lo.ShowOnDate)
	m.form.setValue("showUntilDate", lo.ShowUntilDate)
	m.form.setValue("priority", strconv.Itoa(lo.Priority))
}

func (m *periodModel) openUserRegisterForm() {
	m.form = newFormModel("Register period user",
		textField("username", "Username", true),
		textField("prevStart", "Previous cycle start (YYYY-MM-DD)", true),
		textField("prevEnd", "Previous cycle end (YYYY-MM-DD)", true),
		textField("cycleLength", "Cycle length (days)", false),
		textField("periodLength", "Period length (days)", false),
	)
	m.form.setValue("cycleLength", strconv.Itoa(models.DefaultCycleLength))
	m.form.setValue("periodLength", strconv.Itoa(models.DefaultPeriodLength))
	m.modal = modalUserRegister
	m.formLC.OpenBlank(0)
}

func (m *periodModel) openUserEditForm(u models.PeriodUser) {
	m.form = newFormModel("Edit period user",
		textField("username", "Username", true),
		textField("cycleLength", "Cycle length (days)", false),
		textField("periodLength", "Period length (days)", false),
		toggleField("active", "Active", u.IsActive),
	)
	m.modal = modalUserEdit
	m.formLC.OpenEdit(u.ID)
	m.form.setValue("username", u.Username)
	m.form.setValue("cycleLength", strconv.Itoa(u.DefaultCycleLength))
	m.form.setValue("periodLength", strconv.Itoa(u.DefaultPeriodLength))
}

func (m *periodModel) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.formLC.Submitting() {
		return nil
	}
	switch msg.String() {
	case "esc":
		if m.formLC.Cancel() {
			m.modal = modalNone
		}
		return nil
	case "tab", "down":
		m.form.nextField()
		return nil
	case "shift+tab", "up":
		m.form.prevField()
		return nil
	case "enter":
		if v := m.form.validate(); v != "" {
			if m.formLC.Submit() {
				m.formLC.Fail(v)
			}
			return nil
		}
		if !m.formLC.Submit() {
			return nil
		}
		return m.submitForm()
	}
	return m.form.handleKey(msg)
}

func (m *periodModel) submitForm() tea.Cmd {
	ctx, gw := m.ctx, m.gw
	id := *m.formLC.Draft()
	editing := m.formLC.Editing()

	switch m.modal {
	case modalAid:
		in := models.PeriodAidInput{
			Problem:     m.form.value("problem"),
			Category:    m.form.value("category"),
			Title:       m.form.value("title"),
			Description: m.form.value("description"),
		}
		if p := m.form.value("priority"); p != "" {
			n := m.form.intValue("priority", 0)
			in.Priority = &n
		}
		return func() tea.Msg {
			var err error
			if editing {
				err = gw.Period.UpdateAid(ctx, id, in)
			} else {
				err = gw.Period.CreateAid(ctx, in)
			}
			return aidSavedMsg{created: !editing, err: err}
		}

	case modalLookout:
		userID := m.form.intValue("userId", 0)
		in := models.PeriodLookoutInput{
			UserID:        &userID,
			Title:         m.form.value("title"),
			Description:   m.form.value("description"),
			ShowOnDate:    m.form.value("showOnDate"),
			ShowUntilDate: m.form.value("showUntilDate"),
		}
		if p := m.form.value("priority"); p != "" {
			n := m.form.intValue("priority", 0)
			in.Priority = &n
		}
		return func() tea.Msg {
			var err error
			if editing {
				err = gw.Period.UpdateLookout(ctx, id, in)
			} else {
				err = gw.Period.CreateLookout(ctx, in)
			}
			return lookoutSavedMsg{created: !editing, err: err}
		}

	case modalUserRegister:
		in := models.RegisterPeriodUser{
			Username:               m.form.value("username"),
			PreviousCycleStartDate: m.form.value("prevStart"),
			PreviousCycleEndDate:   m.form.value("prevEnd"),
			DefaultCycleLength:     m.form.intValue("cycleLength", models.DefaultCycleLength),
			DefaultPeriodLength:    m.form.intValue("periodLength", models.DefaultPeriodLength),
		}
		return func() tea.Msg {
			return periodUserSavedMsg{created: true, err: gw.Period.RegisterUser(ctx, in)}
		}

	case modalUserEdit:
		cycle := m.form.intValue("cycleLength", models.DefaultCycleLength)
		period := m.form.intValue("periodLength", models.DefaultPeriodLength)
		active := m.form.value("active") == "true"
		in := models.UpdatePeriodUser{
			Username:            m.form.value("username"),
			DefaultCycleLength:  &cycle,
			DefaultPeriodLength: &period,
			IsActive:            &active,
		}
		return func() tea.Msg {
			return periodUserSavedMsg{created: false, err: gw.Period.UpdateUser(ctx, id, in)}
		}
	}
	return nil
}

func (m *periodModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case enumsLoadedMsg:
		if msg.err != nil {
			m.setStatus(gateway.DisplayMessage(msg.err, "Could not load aid categories."), true)
			return nil
		}
		m.enums = msg.enums
		m.enumsLoaded = true

	case aidsLoadedMsg:
		if msg.err != nil {
			m.aids.AbortLoad(msg.seq)
			m.setStatus(gateway.DisplayMessage(msg.err, "Could not load aids."), true)
			return nil
		}
		if m.aids.ApplyLoad(msg.seq, msg.aids) && m.aidCursor >= m.aids.Len() {
			m.aidCursor = 0
		}

	case aidSavedMsg:
		if msg.err != nil {
			m.formLC.Fail(gateway.DisplayMessage(msg.err, "Could not save the aid."))
			return nil
		}
		m.formLC.Succeed()
		m.modal = modalNone
		if msg.created {
			m.setStatus("Aid created.", false)
		} else {
			m.setStatus("Aid updated.", false)
		}
		return m.loadAids()

	case aidDeletedMsg:
		m.actions.Done(actionDeleteAid, strconv.Itoa(msg.id))
		if msg.err != nil {
			m.setStatus(gateway.DisplayMessage(msg.err, "Could not delete the aid."), true)
			return nil
		}
		m.aids.RemoveWhere(func(a models.PeriodAid) bool { return a.ID == msg.id })
		if m.aidCursor >= m.aids.Len() && m.aidCursor > 0 {
			m.aidCursor--
		}
		m.setStatus("Aid deleted.", false)

	case lookoutsLoadedMsg:
		if msg.err != nil {
			m.lookouts.AbortLoad(msg.seq)
			m.setStatus(gateway.DisplayMessage(msg.err, "Could not load lookouts."), true)
			return nil
		}
		if m.lookouts.ApplyLoad(msg.seq, msg.lookouts) && m.lookoutCursor >= m.lookouts.Len() {
			m.lookoutCursor = 0
		}

	case lookoutSavedMsg:
		if msg.err != nil {
			m.formLC.Fail(gateway.DisplayMessage(msg.err, "Could not save the lookout."))
			return nil
		}
		m.formLC.Succeed()
		m.modal = modalNone
		if msg.created {
			m.setStatus("Lookout created.", false)
		} else {
			m.setStatus("Lookout updated.", false)
		}
		return m.loadLookouts()

	case lookoutDeletedMsg:
		m.actions.Done(actionDeleteLookout, strconv.Itoa(msg.id))
		if msg.err != nil {
			m.setStatus(gateway.DisplayMessage(msg.err, "Could not delete the lookout."), true)
			return nil
		}
		m.lookouts.RemoveWhere(func(l models.PeriodLookout) bool { return l.ID == msg.id })
		if m.lookoutCursor >= m.lookouts.Len() && m.lookoutCursor > 0 {
			m.lookoutCursor--
		}
		m.setStatus("Lookout deleted.", false)

	case periodUsersLoadedMsg:
		if msg.err != nil {
			m.users.AbortLoad(msg.seq)
			m.setStatus(gateway.DisplayMessage(msg.err, "Could not load period users."), true)
			return nil
		}
		if m.users.ApplyLoad(msg.seq, msg.users) && m.userCursor >= m.users.Len() {
			m.userCursor = 0
		}

	case periodUserSavedMsg:
		if msg.err != nil {
			m.formLC.Fail(gateway.DisplayMessage(msg.err, "Could not save the user."))
			return nil
		}
		m.formLC.Succeed()
		m.modal = modalNone
		if msg.created {
			m.setStatus("Period user registered.", false)
		} else {
			m.setStatus("Period user updated.", false)
		}
		return m.loadUsers()

	case periodUserDeactivatedMsg:
		m.actions.Done(actionDeactivateUser, strconv.Itoa(msg.id))
		if msg.err != nil {
			m.setStatus(gateway.DisplayMessage(msg.err, "Could not deactivate the user."), true)
			return nil
		}
		// Deactivation is soft: the row stays, flagged inactive.
		m.users.Patch(
			func(u models.PeriodUser) bool { return u.ID == msg.id },
			func(u *models.PeriodUser) { u.IsActive = false },
		)
		m.setStatus("User deactivated.", false)
	}
	return nil
}

func (m *periodModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *periodModel) view(spin string) string {
	if m.modal != modalNone {
		return m.form.view(m.formLC.Err(), m.formLC.Submitting())
	}

	var b strings.Builder

	var bar []string
	for _, name := range m.subs.Names() {
		if name == m.subs.Active() {
			bar = append(bar, activeTabStyle.Render(name))
		} else {
			bar = append(bar, tabStyle.Render(name))
		}
	}
	b.WriteString(strings.Join(bar, " ") + "\n\n")

	switch m.subs.Active() {
	case subAids:
		b.WriteString(m.aidsView(spin))
	case subLookouts:
		b.WriteString(m.lookoutsView(spin))
	case subUsers:
		b.WriteString(m.usersView(spin))
	}

	if m.confirm.Pending() {
		b.WriteString("\n" + errorStyle.Render(m.confirm.Prompt()) + helpStyle.Render(" (y/n)") + "\n")
	} else if m.status != "" {
		style := successStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}

	b.WriteString(helpStyle.Render("←/→ panel · ↑/↓ select · a add · e edit · d delete · R reload"))
	return b.String()
}

func (m *periodModel) aidsView(spin string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Aids (%d)", m.aids.Len())) + "\n")

	if m.aids.Loading() && !m.aids.Loaded() {
		b.WriteString(dimStyle.Render("loading… "+spin) + "\n")
		return b.String()
	}
	if m.aids.Len() == 0 {
		b.WriteString(dimStyle.Render("No aids yet. Press a to add one.") + "\n")
		return b.String()
	}
	for i, aid := range m.aids.Records() {
		cursor := "  "
		if i == m.aidCursor {
			cursor = "> "
		}
		line := cursor + valueStyle.Render(aid.Title) +
			labelStyle.Render(fmt.Sprintf("  %s/%s  p%d", aid.Problem, aid.Category, aid.Priority))
		if aid.IsAdminCreated {
			line += "  " + dimStyle.Render("admin")
		}
		if m.actions.Busy(actionDeleteAid, strconv.Itoa(aid.ID)) {
			line += "  " + spin
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m *periodModel) lookoutsView(spin string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Lookouts (%d)", m.lookouts.Len())) + "\n")

	if m.lookouts.Loading() && !m.lookouts.Loaded() {
		b.WriteString(dimStyle.Render("loading… "+spin) + "\n")
		return b.String()
	}
	if m.lookouts.Len() == 0 {
		b.WriteString(dimStyle.Render("No lookouts yet. Press a to add one.") + "\n")
		return b.String()
	}
	for i, lo := range m.lookouts.Records() {
		cursor := "  "
		if i == m.lookoutCursor {
			cursor = "> "
		}
		who := lo.Username
		if who == "" {
			who = fmt.Sprintf("user %d", lo.UserID)
		}
		line := cursor + valueStyle.Render(lo.Title) +
			labelStyle.Render("  "+who+"  from "+lo.ShowOnDate)
		if lo.ShowUntilDate != "" {
			line += labelStyle.Render(" until " + lo.ShowUntilDate)
		}
		if m.actions.Busy(actionDeleteLookout, strconv.Itoa(lo.ID)) {
			line += "  " + spin
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m *periodModel) usersView(spin string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Period users (%d)", m.users.Len())) + "\n")

	if m.users.Loading() && !m.users.Loaded() {
		b.WriteString(dimStyle.Render("loading… "+spin) + "\n")
		return b.String()
	}
	if m.users.Len() == 0 {
		b.WriteString(dimStyle.Render("No period users yet. Press a to register one.") + "\n")
		return b.String()
	}
	for i, u := range m.users.Records() {
		cursor := "  "
		if i == m.userCursor {
			cursor = "> "
		}
		line := cursor + valueStyle.Render(u.Username) +
			labelStyle.Render(fmt.Sprintf("  cycle %dd · period %dd",
				u.DefaultCycleLength, u.DefaultPeriodLength))
		if !u.IsActive {
			line += "  " + inactiveBadge.Render("inactive")
		}
		if m.actions.Busy(actionDeactivateUser, strconv.Itoa(u.ID)) {
			line += "  " + spin
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
