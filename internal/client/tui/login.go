package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pinkypromises/adminctl/internal/client/gateway"
	"github.com/pinkypromises/adminctl/internal/client/session"
	"github.com/pinkypromises/adminctl/internal/logging"
)

// loginModel is the sign-in screen: email and password fields and a single
// submit. While a sign-in is in flight the fields are frozen so a second
// enter cannot start a second attempt.
type loginModel struct {
	ctx  context.Context
	sess *session.Session
	log  logging.Logger

	form       formModel
	submitting bool
	errText    string
}

func newLoginModel(ctx context.Context, sess *session.Session, log logging.Logger) loginModel {
	return loginModel{
		ctx:  ctx,
		sess: sess,
		log:  log,
		form: newFormModel("Sign in",
			textField("email", "Email", true),
			passwordField("password", "Password"),
		),
	}
}

func (m *loginModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.submitting {
		return nil
	}

	switch msg.String() {
	case "tab", "down":
		m.form.nextField()
		return nil
	case "shift+tab", "up":
		m.form.prevField()
		return nil
	case "enter":
		if v := m.form.validate(); v != "" {
			m.errText = v
			return nil
		}
		m.submitting = true
		m.errText = ""
		ctx := m.ctx
		sess := m.sess
		email := m.form.value("email")
		password := m.form.value("password")
		return func() tea.Msg {
			return loginResultMsg{err: sess.Login(ctx, email, password)}
		}
	}
	return m.form.handleKey(msg)
}

func (m *loginModel) update(msg loginResultMsg) tea.Cmd {
	m.submitting = false
	if msg.err != nil {
		m.errText = gateway.DisplayMessage(msg.err, "Login failed. Please try again.")
	}
	return nil
}

func (m *loginModel) view() string {
	return m.form.view(m.errText, m.submitting)
}
