package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pinkypromises/adminctl/internal/client/gateway"
	"github.com/pinkypromises/adminctl/internal/client/models"
	"github.com/pinkypromises/adminctl/internal/client/viewstate"
	"github.com/pinkypromises/adminctl/internal/logging"
)

const actionDeleteVersion = "delete-version"

// versionsModel lists published app releases newest first, publishes new
// ones, and deletes old ones behind a confirmation. Deletes are busy-tracked
// per version id so only the row being deleted shows a spinner.
type versionsModel struct {
	ctx context.Context
	gw  Gateways
	log logging.Logger

	list    viewstate.ListStore[models.AppVersion]
	cursor  int
	actions viewstate.ActionSet
	confirm viewstate.Confirm[models.AppVersion]

	formLC viewstate.Form[models.CreateAppVersion]
	form   formModel

	status    string
	statusErr bool
}

func newVersionsModel(ctx context.Context, gw Gateways, log logging.Logger) versionsModel {
	return versionsModel{
		ctx: ctx,
		gw:  gw,
		log: log,
		form: newFormModel("Publish version",
			textField("version", "Version", true),
			textField("downloadUrl", "Download URL", true),
			textField("notes", "Release notes", false),
			toggleField("mandatory", "Mandatory update", false),
		),
	}
}

func (m *versionsModel) captures() bool {
	return m.formLC.Visible() || m.confirm.Pending()
}

func (m *versionsModel) load() tea.Cmd {
	seq := m.list.BeginLoad()
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		versions, err := gw.Versions.All(ctx)
		return versionsLoadedMsg{seq: seq, versions: versions, err: err}
	}
}

func (m *versionsModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.formLC.Visible() {
		return m.handleFormKey(msg)
	}
	if m.confirm.Pending() {
		switch msg.String() {
		case "y", "enter":
			if v, ok := m.confirm.Confirmed(); ok {
				return m.deleteVersion(v)
			}
		case "n", "esc":
			m.confirm.Cancelled()
		}
		return nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
	case "a":
		m.form.reset()
		m.formLC.OpenBlank(models.CreateAppVersion{})
	case "d":
		if m.cursor < m.list.Len() {
			v := m.list.Records()[m.cursor]
			if !m.actions.Busy(actionDeleteVersion, v.ID) {
				m.confirm.Ask(v, fmt.Sprintf("Delete version %s?", v.Version))
			}
		}
	case "R":
		return m.load()
	}
	return nil
}

func (m *versionsModel) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.formLC.Submitting() {
		return nil
	}
	switch msg.String() {
	case "esc":
		if m.formLC.Cancel() {
			m.form.reset()
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
		*m.formLC.Draft() = models.CreateAppVersion{
			Version:     m.form.value("version"),
			DownloadURL: m.form.value("downloadUrl"),
			Notes:       m.form.value("notes"),
			Mandatory:   m.form.value("mandatory") == "true",
		}
		if !m.formLC.Submit() {
			return nil
		}
		req := *m.formLC.Draft()
		ctx, gw := m.ctx, m.gw
		return func() tea.Msg {
			created, err := gw.Versions.Create(ctx, req)
			return versionCreatedMsg{version: created, err: err}
		}
	}
	return m.form.handleKey(msg)
}

func (m *versionsModel) deleteVersion(v models.AppVersion) tea.Cmd {
	m.actions.Start(actionDeleteVersion, v.ID)
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		err := gw.Versions.Delete(ctx, v.ID)
		return versionDeletedMsg{id: v.ID, version: v.Version, err: err}
	}
}

func (m *versionsModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case versionsLoadedMsg:
		if msg.err != nil {
			m.list.AbortLoad(msg.seq)
			m.setStatus(gateway.DisplayMessage(msg.err, "Could not load versions."), true)
			return nil
		}
		if m.list.ApplyLoad(msg.seq, msg.versions) && m.cursor >= m.list.Len() {
			m.cursor = 0
		}

	case versionCreatedMsg:
		if msg.err != nil {
			m.formLC.Fail(gateway.DisplayMessage(msg.err, "Could not publish the version."))
			return nil
		}
		m.formLC.Succeed()
		m.form.reset()
		m.list.InsertFront(msg.version)
		m.setStatus(fmt.Sprintf("Version %s published.", msg.version.Version), false)

	case versionDeletedMsg:
		m.actions.Done(actionDeleteVersion, msg.id)
		if msg.err != nil {
			m.setStatus(gateway.DisplayMessage(msg.err, "Could not delete the version."), true)
			return nil
		}
		m.list.RemoveWhere(func(v models.AppVersion) bool { return v.ID == msg.id })
		if m.cursor >= m.list.Len() && m.cursor > 0 {
			m.cursor--
		}
		m.setStatus(fmt.Sprintf("Version %s deleted.", msg.version), false)
	}
	return nil
}

func (m *versionsModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *versionsModel) view(spin string) string {
	if m.formLC.Visible() {
		return m.form.view(m.formLC.Err(), m.formLC.Submitting())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("App versions (%d)", m.list.Len())) + "\n")

	switch {
	case m.list.Loading() && !m.list.Loaded():
		b.WriteString(dimStyle.Render("loading… "+spin) + "\n")
	case m.list.Len() == 0:
		b.WriteString(dimStyle.Render("No versions published. Press a to publish one.") + "\n")
	default:
		for i, v := range m.list.Records() {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			line := cursor + valueStyle.Render(v.Version)
			if v.Mandatory {
				line += "  " + mandatoryBadge.Render("mandatory")
			}
			if v.Notes != nil && *v.Notes != "" {
				line += dimStyle.Render("  " + *v.Notes)
			}
			if m.actions.Busy(actionDeleteVersion, v.ID) {
				line += "  " + spin
			}
			b.WriteString(line + "\n")
		}
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

	b.WriteString(helpStyle.Render("↑/↓ select · a publish · d delete · R reload"))
	return b.String()
}
