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

// Singleton actions on the gifts view. They carry an empty record id.
const (
	actionToggle    = "toggle-gifts"
	actionSendGift  = "send-gift"
	actionReminders = "send-reminders"
)

type giftDraft struct {
	name    string
	value   string
	message string
}

type recipientDraft struct {
	username string
}

// giftsModel is the main dashboard tab: the recipient card, the gift
// inventory, the recipient's cart, reminder broadcast, and the countdown to
// the first of next month.
type giftsModel struct {
	ctx context.Context
	gw  Gateways
	log logging.Logger

	recipient      *models.Recipient
	recipientKnown bool

	gifts      viewstate.ListStore[models.Gift]
	giftCursor int
	cart       viewstate.ListStore[models.CartItem]
	cartTotal  float64

	lastReminder string
	countdown    viewstate.Countdown

	actions viewstate.ActionSet
	confirm viewstate.Confirm[string]

	giftLC   viewstate.Form[giftDraft]
	giftForm formModel

	recipientLC   viewstate.Form[recipientDraft]
	recipientForm formModel

	status    string
	statusErr bool
}

func newGiftsModel(ctx context.Context, gw Gateways, log logging.Logger) giftsModel {
	return giftsModel{
		ctx: ctx,
		gw:  gw,
		log: log,
		giftForm: newFormModel("Add gift",
			textField("name", "Name", true),
			textField("value", "Value", true),
			textField("message", "Message", false),
		),
		recipientForm: newFormModel("Add recipient",
			textField("username", "Username", true),
		),
	}
}

func (m *giftsModel) captures() bool {
	return m.giftLC.Visible() || m.recipientLC.Visible() || m.confirm.Pending()
}

func (m *giftsModel) loadAll() tea.Cmd {
	return tea.Batch(m.loadRecipient(), m.loadGifts(), m.loadCart(), m.loadReminderDate())
}

func (m *giftsModel) loadRecipient() tea.Cmd {
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		rec, err := gw.Recipients.Get(ctx)
		if err != nil {
			// No recipient registered yet is the normal empty state.
			return recipientLoadedMsg{}
		}
		return recipientLoadedMsg{recipient: &rec}
	}
}

func (m *giftsModel) loadGifts() tea.Cmd {
	seq := m.gifts.BeginLoad()
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		gifts, err := gw.Inventory.Gifts(ctx)
		return giftsLoadedMsg{seq: seq, gifts: gifts, err: err}
	}
}

func (m *giftsModel) loadCart() tea.Cmd {
	seq := m.cart.BeginLoad()
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		items, total, err := gw.Recipients.Cart(ctx)
		return cartLoadedMsg{seq: seq, items: items, total: total, err: err}
	}
}

func (m *giftsModel) loadReminderDate() tea.Cmd {
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		date, err := gw.Reminders.LastSent(ctx)
		return reminderDateMsg{date: date, err: err}
	}
}

func (m *giftsModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.giftLC.Visible() {
		return m.handleGiftFormKey(msg)
	}
	if m.recipientLC.Visible() {
		return m.handleRecipientFormKey(msg)
	}
	if m.confirm.Pending() {
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "up", "k":
		if m.giftCursor > 0 {
			m.giftCursor--
		}
	case "down", "j":
		if m.giftCursor < m.gifts.Len()-1 {
			m.giftCursor++
		}
	case "x":
		// Remove from the displayed list only; the server keeps the gift.
		if m.giftCursor < m.gifts.Len() {
			id := m.gifts.Records()[m.giftCursor].ID
			m.gifts.RemoveWhere(func(g models.Gift) bool { return g.ID == id })
			if m.giftCursor >= m.gifts.Len() && m.giftCursor > 0 {
				m.giftCursor--
			}
		}
	case "a":
		m.giftForm.reset()
		m.giftLC.OpenBlank(giftDraft{})
	case "r":
		if m.recipientKnown && m.recipient == nil {
			m.recipientForm.reset()
			m.recipientLC.OpenBlank(recipientDraft{})
		}
	case "t":
		return m.toggleGifts()
	case "s":
		if m.recipient != nil && !m.actions.AnyBusy(actionSendGift) {
			m.confirm.Ask(actionSendGift, fmt.Sprintf("Send the gift to %s now?", m.recipient.Username))
		}
	case "m":
		if !m.actions.AnyBusy(actionReminders) {
			m.confirm.Ask(actionReminders, "Send cycle reminders to all users?")
		}
	case "R":
		return m.loadAll()
	}
	return nil
}

func (m *giftsModel) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		action, ok := m.confirm.Confirmed()
		if !ok {
			return nil
		}
		switch action {
		case actionSendGift:
			return m.sendGift()
		case actionReminders:
			return m.sendReminders()
		}
	case "n", "esc":
		m.confirm.Cancelled()
	}
	return nil
}

func (m *giftsModel) handleGiftFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.giftLC.Submitting() {
		return nil
	}
	switch msg.String() {
	case "esc":
		if m.giftLC.Cancel() {
			m.giftForm.reset()
		}
		return nil
	case "tab", "down":
		m.giftForm.nextField()
		return nil
	case "shift+tab", "up":
		m.giftForm.prevField()
		return nil
	case "enter":
		if v := m.giftForm.validate(); v != "" {
			return m.failGiftForm(v)
		}
		*m.giftLC.Draft() = giftDraft{
			name:    m.giftForm.value("name"),
			value:   m.giftForm.value("value"),
			message: m.giftForm.value("message"),
		}
		if !m.giftLC.Submit() {
			return nil
		}
		d := *m.giftLC.Draft()
		ctx, gw := m.ctx, m.gw
		return func() tea.Msg {
			gift, err := gw.Inventory.AddGift(ctx, d.name, d.value, d.message)
			return giftAddedMsg{gift: gift, err: err}
		}
	}
	return m.giftForm.handleKey(msg)
}

// failGiftForm routes a local validation failure through the same
// Submitting -> Fail path a server rejection takes, so the form shows the
// message with the draft intact.
func (m *giftsModel) failGiftForm(v string) tea.Cmd {
	if m.giftLC.Submit() {
		m.giftLC.Fail(v)
	}
	return nil
}

func (m *giftsModel) handleRecipientFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.recipientLC.Submitting() {
		return nil
	}
	switch msg.String() {
	case "esc":
		if m.recipientLC.Cancel() {
			m.recipientForm.reset()
		}
		return nil
	case "enter":
		if v := m.recipientForm.validate(); v != "" {
			if m.recipientLC.Submit() {
				m.recipientLC.Fail(v)
			}
			return nil
		}
		*m.recipientLC.Draft() = recipientDraft{username: m.recipientForm.value("username")}
		if !m.recipientLC.Submit() {
			return nil
		}
		username := m.recipientLC.Draft().username
		ctx, gw := m.ctx, m.gw
		return func() tea.Msg {
			rec, err := gw.Recipients.Add(ctx, username)
			return recipientAddedMsg{recipient: rec, err: err}
		}
	}
	return m.recipientForm.handleKey(msg)
}

func (m *giftsModel) toggleGifts() tea.Cmd {
	if m.recipient == nil || m.actions.Busy(actionToggle, "") {
		return nil
	}
	m.actions.Start(actionToggle, "")
	target := !m.recipient.IsGiftsOn
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		rec, err := gw.Recipients.SetGiftsOn(ctx, target)
		return giftsToggledMsg{recipient: rec, err: err}
	}
}

func (m *giftsModel) sendGift() tea.Cmd {
	m.actions.Start(actionSendGift, "")
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		return giftSentMsg{err: gw.Gifts.SendGift(ctx)}
	}
}

func (m *giftsModel) sendReminders() tea.Cmd {
	m.actions.Start(actionReminders, "")
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		return remindersSentMsg{err: gw.Reminders.Send(ctx)}
	}
}

func (m *giftsModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case recipientLoadedMsg:
		m.recipientKnown = true
		m.recipient = msg.recipient

	case recipientAddedMsg:
		if msg.err != nil {
			m.recipientLC.Fail(gateway.DisplayMessage(msg.err, "Could not add the recipient."))
			return nil
		}
		m.recipientLC.Succeed()
		m.recipientForm.reset()
		rec := msg.recipient
		m.recipient = &rec
		m.setStatus("Recipient added.", false)

	case giftsToggledMsg:
		m.actions.Done(actionToggle, "")
		if msg.err != nil {
			m.setStatus(gateway.DisplayMessage(msg.err, "Could not update gift delivery."), true)
			return nil
		}
		rec := msg.recipient
		m.recipient = &rec
		if rec.IsGiftsOn {
			m.setStatus("Gift delivery resumed.", false)
		} else {
			m.setStatus("Gift delivery paused.", false)
		}

	case giftsLoadedMsg:
		if msg.err != nil {
			m.gifts.AbortLoad(msg.seq)
			m.setStatus(gateway.DisplayMessage(msg.err, "Could not load gifts."), true)
			return nil
		}
		if m.gifts.ApplyLoad(msg.seq, msg.gifts) && m.giftCursor >= m.gifts.Len() {
			m.giftCursor = 0
		}

	case giftAddedMsg:
		if msg.err != nil {
			m.giftLC.Fail(gateway.DisplayMessage(msg.err, "Could not add the gift."))
			return nil
		}
		m.giftLC.Succeed()
		m.giftForm.reset()
		m.gifts.InsertFront(msg.gift)
		m.setStatus("Gift added to inventory.", false)

	case giftSentMsg:
		m.actions.Done(actionSendGift, "")
		if msg.err != nil {
			m.setStatus(gateway.DisplayMessage(msg.err, "Could not send the gift."), true)
			return nil
		}
		m.setStatus("Gift sent!", false)
		return tea.Batch(m.loadRecipient(), m.loadCart())

	case cartLoadedMsg:
		if msg.err != nil {
			m.cart.AbortLoad(msg.seq)
			return nil
		}
		if m.cart.ApplyLoad(msg.seq, msg.items) {
			m.cartTotal = msg.total
		}

	case remindersSentMsg:
		m.actions.Done(actionReminders, "")
		if msg.err != nil {
			m.setStatus(gateway.DisplayMessage(msg.err, "Could not send reminders."), true)
			return nil
		}
		m.setStatus("Reminders sent.", false)
		return m.loadReminderDate()

	case reminderDateMsg:
		if msg.err == nil {
			m.lastReminder = msg.date
		}
	}
	return nil
}

func (m *giftsModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *giftsModel) view(spin string) string {
	if m.giftLC.Visible() {
		return m.giftForm.view(m.giftLC.Err(), m.giftLC.Submitting())
	}
	if m.recipientLC.Visible() {
		return m.recipientForm.view(m.recipientLC.Err(), m.recipientLC.Submitting())
	}

	var b strings.Builder

	b.WriteString(m.recipientView(spin))
	b.WriteString("\n")
	b.WriteString(m.giftsView())
	b.WriteString("\n")
	b.WriteString(m.cartView())
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Last reminders sent: "))
	if m.lastReminder == "" {
		b.WriteString(dimStyle.Render("never"))
	} else {
		b.WriteString(valueStyle.Render(m.lastReminder))
	}
	if m.actions.AnyBusy(actionReminders) {
		b.WriteString("  " + spin)
	}
	b.WriteString("\n")

	c := m.countdown
	b.WriteString(labelStyle.Render("Next gift month in: "))
	b.WriteString(countdownStyle.Render(
		fmt.Sprintf("%dd %02dh %02dm %02ds", c.Days, c.Hours, c.Minutes, c.Seconds)))
	b.WriteString("\n")

	if m.confirm.Pending() {
		b.WriteString("\n" + errorStyle.Render(m.confirm.Prompt()) + helpStyle.Render(" (y/n)") + "\n")
	} else if m.status != "" {
		style := successStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}

	b.WriteString(helpStyle.Render("a add gift · x hide gift · t toggle delivery · s send gift · m reminders · R reload"))
	return b.String()
}

func (m *giftsModel) recipientView(spin string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recipient") + "\n")

	switch {
	case !m.recipientKnown:
		b.WriteString(dimStyle.Render("loading… " + spin))
	case m.recipient == nil:
		b.WriteString(dimStyle.Render("No recipient yet. Press r to add one."))
	default:
		rec := m.recipient
		b.WriteString(valueStyle.Render(rec.Username))
		if rec.IsGiftsOn {
			b.WriteString("  " + successStyle.Render("gifts on"))
		} else {
			b.WriteString("  " + inactiveBadge.Render("gifts off"))
		}
		if m.actions.Busy(actionToggle, "") || m.actions.AnyBusy(actionSendGift) {
			b.WriteString("  " + spin)
		}
		b.WriteString("\n" + labelStyle.Render("Gifts received: ") +
			valueStyle.Render(fmt.Sprintf("%d", rec.GiftsReceived)))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *giftsModel) giftsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Gift inventory (%d)", m.gifts.Len())) + "\n")

	if m.gifts.Loading() && !m.gifts.Loaded() {
		b.WriteString(dimStyle.Render("loading…") + "\n")
		return b.String()
	}
	if m.gifts.Len() == 0 {
		b.WriteString(dimStyle.Render("No gifts yet. Press a to add one.") + "\n")
		return b.String()
	}
	for i, g := range m.gifts.Records() {
		cursor := "  "
		if i == m.giftCursor {
			cursor = "> "
		}
		line := valueStyle.Render(g.Name) + labelStyle.Render("  "+g.Value)
		if g.Message != "" {
			line += dimStyle.Render("  “" + g.Message + "”")
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func (m *giftsModel) cartView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Cart") + "\n")

	if m.cart.Len() == 0 {
		b.WriteString(dimStyle.Render("Cart is empty.") + "\n")
		return b.String()
	}
	for _, item := range m.cart.Records() {
		b.WriteString("  " + valueStyle.Render(item.Item) +
			labelStyle.Render(fmt.Sprintf("  %.2f", item.Value)) + "\n")
	}
	b.WriteString(labelStyle.Render("Total: ") +
		valueStyle.Render(fmt.Sprintf("%.2f", m.cartTotal)) + "\n")
	return b.String()
}
