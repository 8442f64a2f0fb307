package tui

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bachelormess/mess-manager/internal/adapter"
	"github.com/bachelormess/mess-manager/internal/service"
	"github.com/bachelormess/mess-manager/internal/session"
	"github.com/bachelormess/mess-manager/models"
)

const (
	bazarFieldDate = iota
	bazarFieldItems
	bazarFieldAmount
	bazarFieldCount
)

// bazarScreen lists bazar entries and hosts the purchase entry form.
type bazarScreen struct {
	ctx      context.Context
	services *service.ClientServices

	entries []models.BazarEntry
	idx     int
	loading bool
	spinner spinner.Model
	filter  models.ApprovalStatus

	adding     bool
	inputs     [bazarFieldCount]textinput.Model
	focus      int
	submitting bool

	notice string
	errMsg string
}

func newBazarScreen(ctx context.Context, services *service.ClientServices) *bazarScreen {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	b := &bazarScreen{ctx: ctx, services: services, spinner: s}

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.Width = 12
	b.inputs[bazarFieldDate] = date

	items := textinput.New()
	items.Placeholder = "rice, lentils, vegetables"
	items.CharLimit = 200
	items.Width = 40
	b.inputs[bazarFieldItems] = items

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 12
	amount.Width = 12
	b.inputs[bazarFieldAmount] = amount

	return b
}

func (b *bazarScreen) requirement() session.Requirement { return session.Authenticated() }

func (b *bazarScreen) setNotice(notice string) { b.notice = notice }

func (b *bazarScreen) Init() tea.Cmd {
	b.loading = true
	b.adding = false
	b.errMsg = ""
	return tea.Batch(b.spinner.Tick, b.cmdLoad())
}

func (b *bazarScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bazarLoadedMsg:
		b.loading = false
		if msg.err != nil {
			if cmd := expireSession(msg.err); cmd != nil {
				return b, cmd
			}
			b.errMsg = msg.err.Error()
			return b, nil
		}
		b.errMsg = ""
		b.entries = msg.entries
		if b.idx >= len(b.entries) {
			b.idx = 0
		}
		return b, nil

	case bazarSavedMsg:
		b.submitting = false
		if msg.err != nil {
			if cmd := expireSession(msg.err); cmd != nil {
				return b, cmd
			}
			b.errMsg = msg.err.Error()
			return b, nil
		}
		b.adding = false
		b.resetForm()
		if msg.queued {
			b.notice = "Server unreachable, entry saved locally and will be retried"
			return b, nil
		}
		b.notice = "Bazar entry for " + formatDate(msg.entry.Date) + " recorded"
		return b, b.cmdLoad()

	case statusChangedMsg:
		if msg.err != nil {
			if cmd := expireSession(msg.err); cmd != nil {
				return b, cmd
			}
			b.errMsg = msg.err.Error()
			return b, nil
		}
		return b, b.cmdLoad()

	case spinner.TickMsg:
		if !b.loading {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd

	case tea.KeyMsg:
		if b.adding {
			return b.updateForm(msg)
		}
		return b.updateList(msg)
	}

	return b, nil
}

func (b *bazarScreen) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return b, navigateTo(screenHome)
	case "up", "k":
		if b.idx > 0 {
			b.idx--
		}
	case "down", "j":
		if b.idx < len(b.entries)-1 {
			b.idx++
		}
	case "n":
		b.startForm()
		return b, b.inputs[bazarFieldDate].Focus()
	case "f":
		b.cycleFilter()
		b.loading = true
		return b, tea.Batch(b.spinner.Tick, b.cmdLoad())
	case "a":
		return b, b.cmdModerate(models.StatusApproved)
	case "r":
		return b, b.cmdModerate(models.StatusRejected)
	}
	return b, nil
}

func (b *bazarScreen) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		b.adding = false
		b.resetForm()
		return b, nil
	case "tab", "down":
		b.setFocus((b.focus + 1) % bazarFieldCount)
		return b, nil
	case "shift+tab", "up":
		b.setFocus((b.focus + bazarFieldCount - 1) % bazarFieldCount)
		return b, nil
	case "enter":
		if b.focus < bazarFieldAmount {
			b.setFocus(b.focus + 1)
			return b, nil
		}
		return b.submitForm()
	}

	var cmd tea.Cmd
	b.inputs[b.focus], cmd = b.inputs[b.focus].Update(msg)
	return b, cmd
}

func (b *bazarScreen) submitForm() (tea.Model, tea.Cmd) {
	if b.submitting {
		return b, nil
	}

	date := strings.TrimSpace(b.inputs[bazarFieldDate].Value())
	items := strings.TrimSpace(b.inputs[bazarFieldItems].Value())
	rawAmount := strings.TrimSpace(b.inputs[bazarFieldAmount].Value())

	if _, err := models.RequestDate(date); err != nil {
		b.errMsg = "date must be YYYY-MM-DD"
		return b, nil
	}
	if items == "" {
		b.errMsg = "describe what was bought"
		return b, nil
	}
	amount, err := parseAmount(rawAmount)
	if err != nil {
		b.errMsg = err.Error()
		return b, nil
	}

	b.errMsg = ""
	b.submitting = true
	return b, b.cmdSubmit(models.BazarRequest{Date: date, Items: items, Amount: amount})
}

// parseAmount converts a taka string such as "320.50" into the smallest
// currency unit.
func parseAmount(raw string) (int64, error) {
	taka, err := strconv.ParseFloat(raw, 64)
	if err != nil || taka < 0 {
		return 0, errors.New("amount must be a non-negative number")
	}
	return int64(math.Round(taka * 100)), nil
}

func (b *bazarScreen) View() string {
	if b.adding {
		return b.viewForm()
	}

	var sb strings.Builder
	if b.notice != "" {
		sb.WriteString(b.notice)
		sb.WriteString("\n\n")
	}

	if b.filter != "" {
		sb.WriteString("filter: ")
		sb.WriteString(string(b.filter))
		sb.WriteString("\n\n")
	}

	switch {
	case b.loading:
		sb.WriteString(b.spinner.View())
		sb.WriteString(" loading...")
	case len(b.entries) == 0:
		sb.WriteString("No bazar entries yet")
	default:
		showOwner := b.isAdmin()
		for i, entry := range b.entries {
			cursor := "  "
			if i == b.idx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s  %-9s  %10s  %s", cursor, formatDate(entry.Date), entry.Status, formatAmount(entry.Amount), fitText(entry.Items, 30))
			if showOwner {
				line += "  " + fitText(entry.UserID, 12)
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	sb.WriteString(renderError(b.errMsg))

	hotkeys := "n: new │ f: filter │ esc: back"
	if b.isAdmin() {
		hotkeys = "n: new │ a: approve │ r: reject │ f: filter │ esc: back"
	}
	return renderPage("BAZAR", strings.TrimRight(sb.String(), "\n"), hotkeys)
}

func (b *bazarScreen) viewForm() string {
	var sb strings.Builder

	labels := [bazarFieldCount]string{"Date  ", "Items ", "Amount"}
	for i, label := range labels {
		sb.WriteString(label)
		sb.WriteString(" [")
		sb.WriteString(b.inputs[i].View())
		sb.WriteString("]\n")
	}

	if b.submitting {
		sb.WriteString("\n[Submitting...]")
	} else {
		sb.WriteString("\n[Submit]")
	}
	sb.WriteString(renderError(b.errMsg))

	return renderPage("RECORD BAZAR", strings.TrimRight(sb.String(), "\n"), "enter: next/submit │ tab: next │ esc: cancel")
}

func (b *bazarScreen) startForm() {
	b.adding = true
	b.errMsg = ""
	b.notice = ""
	b.resetForm()
	b.inputs[bazarFieldDate].SetValue(time.Now().UTC().Format("2006-01-02"))
	b.setFocus(bazarFieldDate)
}

func (b *bazarScreen) resetForm() {
	for i := range b.inputs {
		b.inputs[i].SetValue("")
		b.inputs[i].Blur()
	}
	b.submitting = false
}

func (b *bazarScreen) setFocus(focus int) {
	b.focus = focus
	for i := range b.inputs {
		if i == focus {
			b.inputs[i].Focus()
		} else {
			b.inputs[i].Blur()
		}
	}
}

func (b *bazarScreen) cycleFilter() {
	switch b.filter {
	case "":
		b.filter = models.StatusPending
	case models.StatusPending:
		b.filter = models.StatusApproved
	case models.StatusApproved:
		b.filter = models.StatusRejected
	default:
		b.filter = ""
	}
}

func (b *bazarScreen) isAdmin() bool {
	return b.services.Session.Current().Identity.Role.Satisfies(models.RoleAdmin)
}

func (b *bazarScreen) cmdLoad() tea.Cmd {
	ctx := b.ctx
	bazar := b.services.BazarService
	query := adapter.ListQuery{Status: b.filter}

	return func() tea.Msg {
		entries, err := bazar.List(ctx, query)
		return bazarLoadedMsg{entries: entries, err: err}
	}
}

func (b *bazarScreen) cmdSubmit(req models.BazarRequest) tea.Cmd {
	ctx := b.ctx
	bazar := b.services.BazarService

	return func() tea.Msg {
		entry, err := bazar.Submit(ctx, req)
		if errors.Is(err, service.ErrSubmissionQueued) {
			return bazarSavedMsg{queued: true}
		}
		return bazarSavedMsg{entry: entry, err: err}
	}
}

func (b *bazarScreen) cmdModerate(status models.ApprovalStatus) tea.Cmd {
	if !b.isAdmin() || b.idx >= len(b.entries) {
		return nil
	}

	ctx := b.ctx
	bazar := b.services.BazarService
	entryID := b.entries[b.idx].ID

	return func() tea.Msg {
		return statusChangedMsg{err: bazar.SetStatus(ctx, entryID, status)}
	}
}
