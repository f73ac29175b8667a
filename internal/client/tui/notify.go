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

// notifyModel is the broadcast compose view. A notification is a transient
// draft: it exists while being written and sent, and on success the fields
// reset for the next one. Field navigation uses the arrow keys so tab stays
// free for top-level view switching.
type notifyModel struct {
	ctx context.Context
	gw  Gateways
	log logging.Logger

	formLC viewstate.Form[models.Notification]
	form   formModel

	status    string
	statusErr bool
}

func newNotifyModel(ctx context.Context, gw Gateways, log logging.Logger) notifyModel {
	m := notifyModel{
		ctx: ctx,
		gw:  gw,
		log: log,
		form: newFormModel("Broadcast notification",
			limitedField("title", "Title", true, models.NotificationTitleMax),
			limitedField("body", "Body", true, models.NotificationBodyMax),
			choiceField("type", "Type", models.NotificationTypes),
		),
	}
	m.formLC.OpenBlank(models.Notification{})
	return m
}

// open (re-)arms the compose form when the tab is first shown.
func (m *notifyModel) open() {
	if !m.formLC.Visible() {
		m.formLC.OpenBlank(models.Notification{})
	}
}

func (m *notifyModel) captures() bool {
	// The compose form is always on screen but navigates with arrows,
	// so the view never needs to steal tab.
	return false
}

func (m *notifyModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.formLC.Submitting() {
		return nil
	}

	switch msg.String() {
	case "down":
		m.form.nextField()
		return nil
	case "up":
		m.form.prevField()
		return nil
	case "esc":
		// Discard the draft and start over.
		if m.formLC.Cancel() {
			m.form.reset()
			m.formLC.OpenBlank(models.Notification{})
		}
		return nil
	case "enter":
		draft := models.Notification{
			Title: m.form.value("title"),
			Body:  m.form.value("body"),
			Type:  m.form.value("type"),
		}
		if err := draft.Validate(); err != nil {
			if m.formLC.Submit() {
				m.formLC.Fail(err.Error())
			}
			return nil
		}
		*m.formLC.Draft() = draft
		if !m.formLC.Submit() {
			return nil
		}
		m.status = ""
		ctx, gw := m.ctx, m.gw
		return func() tea.Msg {
			res, err := gw.Notifications.Broadcast(ctx, draft)
			return broadcastDoneMsg{count: res.Count, err: err}
		}
	}
	return m.form.handleKey(msg)
}

func (m *notifyModel) update(msg tea.Msg) tea.Cmd {
	done, ok := msg.(broadcastDoneMsg)
	if !ok {
		return nil
	}
	if done.err != nil {
		m.formLC.Fail(gateway.DisplayMessage(done.err, "Could not send the notification."))
		return nil
	}
	m.formLC.Succeed()
	m.form.reset()
	m.formLC.OpenBlank(models.Notification{})
	m.setStatus(fmt.Sprintf("Notification sent to %d devices.", done.count), false)
	return nil
}

func (m *notifyModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *notifyModel) view() string {
	var b strings.Builder
	b.WriteString(m.form.view(m.formLC.Err(), m.formLC.Submitting()))

	if m.status != "" {
		style := successStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.status))
	}
	return b.String()
}
