package tui

import (
	"context"
	"errors"
	"fmt"
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

// mealsScreen lists the visible meal records and hosts the submission form.
// Members see their own records; admins see everyone's and can moderate.
type mealsScreen struct {
	ctx      context.Context
	services *service.ClientServices

	meals   []models.Meal
	idx     int
	loading bool
	spinner spinner.Model
	filter  models.ApprovalStatus

	adding     bool
	dateInput  textinput.Model
	marks      [3]bool
	focus      int // 0 = date input, 1..3 = breakfast/lunch/dinner
	submitting bool

	notice string
	errMsg string
}

func newMealsScreen(ctx context.Context, services *service.ClientServices) *mealsScreen {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.Width = 12

	return &mealsScreen{
		ctx:       ctx,
		services:  services,
		spinner:   s,
		dateInput: date,
	}
}

func (m *mealsScreen) requirement() session.Requirement { return session.Authenticated() }

func (m *mealsScreen) setNotice(notice string) { m.notice = notice }

func (m *mealsScreen) Init() tea.Cmd {
	m.loading = true
	m.adding = false
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *mealsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mealsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if cmd := expireSession(msg.err); cmd != nil {
				return m, cmd
			}
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.meals = msg.meals
		if m.idx >= len(m.meals) {
			m.idx = 0
		}
		return m, nil

	case mealSavedMsg:
		m.submitting = false
		if msg.err != nil {
			if cmd := expireSession(msg.err); cmd != nil {
				return m, cmd
			}
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.adding = false
		m.resetForm()
		if msg.queued {
			m.notice = "Server unreachable, submission saved locally and will be retried"
			return m, nil
		}
		m.notice = "Meals for " + formatDate(msg.meal.Date) + " submitted"
		return m, m.cmdLoad()

	case statusChangedMsg:
		if msg.err != nil {
			if cmd := expireSession(msg.err); cmd != nil {
				return m, cmd
			}
			m.errMsg = msg.err.Error()
			return m, nil
		}
		return m, m.cmdLoad()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.adding {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m *mealsScreen) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, navigateTo(screenHome)
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.meals)-1 {
			m.idx++
		}
	case "n":
		m.startForm()
		return m, textinput.Blink
	case "f":
		m.cycleFilter()
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case "a":
		return m, m.cmdModerate(models.StatusApproved)
	case "r":
		return m, m.cmdModerate(models.StatusRejected)
	}
	return m, nil
}

func (m *mealsScreen) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.resetForm()
		return m, nil
	case "tab":
		m.setFocus((m.focus + 1) % 4)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focus + 3) % 4)
		return m, nil
	case " ", "x":
		if m.focus > 0 {
			m.marks[m.focus-1] = !m.marks[m.focus-1]
			return m, nil
		}
	case "enter":
		return m.submitForm()
	}

	if m.focus == 0 {
		var cmd tea.Cmd
		m.dateInput, cmd = m.dateInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *mealsScreen) submitForm() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	req := models.MealRequest{
		Date:      strings.TrimSpace(m.dateInput.Value()),
		Breakfast: m.marks[0],
		Lunch:     m.marks[1],
		Dinner:    m.marks[2],
	}
	if _, err := models.RequestDate(req.Date); err != nil {
		m.errMsg = "date must be YYYY-MM-DD"
		return m, nil
	}
	if !req.Breakfast && !req.Lunch && !req.Dinner {
		m.errMsg = "mark at least one meal"
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true
	return m, m.cmdSubmit(req)
}

func (m *mealsScreen) View() string {
	if m.adding {
		return m.viewForm()
	}

	var b strings.Builder
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n\n")
	}

	if m.filter != "" {
		b.WriteString("filter: ")
		b.WriteString(string(m.filter))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" loading...")
	case len(m.meals) == 0:
		b.WriteString("No meal records yet")
	default:
		showOwner := m.isAdmin()
		for i, meal := range m.meals {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s  %-9s  %s", cursor, formatDate(meal.Date), meal.Status, mealSummary(meal.Breakfast, meal.Lunch, meal.Dinner))
			if showOwner {
				line += "  " + fitText(meal.UserID, 12)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString(renderError(m.errMsg))

	hotkeys := "n: new │ f: filter │ esc: back"
	if m.isAdmin() {
		hotkeys = "n: new │ a: approve │ r: reject │ f: filter │ esc: back"
	}
	return renderPage("MEALS", strings.TrimRight(b.String(), "\n"), hotkeys)
}

func (m *mealsScreen) viewForm() string {
	var b strings.Builder

	b.WriteString("Date      [")
	b.WriteString(m.dateInput.View())
	b.WriteString("]\n\n")

	labels := []string{"Breakfast", "Lunch", "Dinner"}
	for i, label := range labels {
		cursor := "  "
		if m.focus == i+1 {
			cursor = "> "
		}
		mark := "[ ]"
		if m.marks[i] {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, label))
	}

	if m.submitting {
		b.WriteString("\n[Submitting...]")
	} else {
		b.WriteString("\n[Submit]")
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("SUBMIT MEALS", strings.TrimRight(b.String(), "\n"), "enter: submit │ tab: next │ space: toggle │ esc: cancel")
}

func (m *mealsScreen) startForm() {
	m.adding = true
	m.errMsg = ""
	m.notice = ""
	m.resetForm()
	m.dateInput.SetValue(time.Now().UTC().Format("2006-01-02"))
	m.setFocus(0)
}

func (m *mealsScreen) resetForm() {
	m.marks = [3]bool{}
	m.dateInput.SetValue("")
	m.submitting = false
}

func (m *mealsScreen) setFocus(focus int) {
	m.focus = focus
	if focus == 0 {
		m.dateInput.Focus()
	} else {
		m.dateInput.Blur()
	}
}

func (m *mealsScreen) cycleFilter() {
	switch m.filter {
	case "":
		m.filter = models.StatusPending
	case models.StatusPending:
		m.filter = models.StatusApproved
	case models.StatusApproved:
		m.filter = models.StatusRejected
	default:
		m.filter = ""
	}
}

func (m *mealsScreen) isAdmin() bool {
	return m.services.Session.Current().Identity.Role.Satisfies(models.RoleAdmin)
}

func (m *mealsScreen) cmdLoad() tea.Cmd {
	ctx := m.ctx
	meals := m.services.MealService
	query := adapter.ListQuery{Status: m.filter}

	return func() tea.Msg {
		loaded, err := meals.List(ctx, query)
		return mealsLoadedMsg{meals: loaded, err: err}
	}
}

func (m *mealsScreen) cmdSubmit(req models.MealRequest) tea.Cmd {
	ctx := m.ctx
	meals := m.services.MealService

	return func() tea.Msg {
		meal, err := meals.Submit(ctx, req)
		if errors.Is(err, service.ErrSubmissionQueued) {
			return mealSavedMsg{queued: true}
		}
		return mealSavedMsg{meal: meal, err: err}
	}
}

func (m *mealsScreen) cmdModerate(status models.ApprovalStatus) tea.Cmd {
	if !m.isAdmin() || m.idx >= len(m.meals) {
		return nil
	}

	ctx := m.ctx
	meals := m.services.MealService
	mealID := m.meals[m.idx].ID

	return func() tea.Msg {
		return statusChangedMsg{err: meals.SetStatus(ctx, mealID, status)}
	}
}
