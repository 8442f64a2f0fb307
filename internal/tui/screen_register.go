package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bachelormess/mess-manager/internal/service"
	"github.com/bachelormess/mess-manager/internal/session"
	"github.com/bachelormess/mess-manager/internal/validators"
	"github.com/bachelormess/mess-manager/models"
)

// registerScreen renders the account creation form. The request is checked
// against the same validator the server uses, so obvious mistakes never
// leave the terminal.
type registerScreen struct {
	ctx       context.Context
	auth      service.ClientAuthService
	validator validators.Validator

	inputs     []textinput.Model
	focus      int
	submitting bool
	notice     string
	errMsg     string
}

const (
	registerFieldName = iota
	registerFieldEmail
	registerFieldPhone
	registerFieldPassword
	registerFieldRepeat
)

func newRegisterScreen(ctx context.Context, auth service.ClientAuthService) *registerScreen {
	fields := make([]textinput.Model, 5)

	fields[registerFieldName] = textinput.New()
	fields[registerFieldName].Placeholder = "name"
	fields[registerFieldName].Width = 40
	fields[registerFieldName].Focus()

	fields[registerFieldEmail] = textinput.New()
	fields[registerFieldEmail].Placeholder = "email"
	fields[registerFieldEmail].CharLimit = 120
	fields[registerFieldEmail].Width = 40

	fields[registerFieldPhone] = textinput.New()
	fields[registerFieldPhone].Placeholder = "phone (optional)"
	fields[registerFieldPhone].CharLimit = 20
	fields[registerFieldPhone].Width = 40

	fields[registerFieldPassword] = textinput.New()
	fields[registerFieldPassword].Placeholder = "password"
	fields[registerFieldPassword].EchoMode = textinput.EchoPassword
	fields[registerFieldPassword].EchoCharacter = '*'
	fields[registerFieldPassword].Width = 40

	fields[registerFieldRepeat] = textinput.New()
	fields[registerFieldRepeat].Placeholder = "repeat password"
	fields[registerFieldRepeat].EchoMode = textinput.EchoPassword
	fields[registerFieldRepeat].EchoCharacter = '*'
	fields[registerFieldRepeat].Width = 40

	return &registerScreen{
		ctx:       ctx,
		auth:      auth,
		validator: validators.NewRequestValidator(),
		inputs:    fields,
	}
}

func (m *registerScreen) requirement() session.Requirement { return session.Public() }

func (m *registerScreen) setNotice(notice string) { m.notice = notice }

func (m *registerScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (m *registerScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = result.err.Error()
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, navigateTo(screenMenu)
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *registerScreen) submit() (tea.Model, tea.Cmd) {
	req := models.RegisterRequest{
		Name:     strings.TrimSpace(m.inputs[registerFieldName].Value()),
		Email:    strings.TrimSpace(m.inputs[registerFieldEmail].Value()),
		Phone:    strings.TrimSpace(m.inputs[registerFieldPhone].Value()),
		Password: m.inputs[registerFieldPassword].Value(),
	}

	if req.Password != m.inputs[registerFieldRepeat].Value() {
		m.errMsg = "passwords do not match"
		return m, nil
	}
	if err := m.validator.Validate(m.ctx, req); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true
	return m, m.cmdRegister(req)
}

func (m *registerScreen) View() string {
	labels := []string{"Name    ", "Email   ", "Phone   ", "Password", "Repeat  "}

	var b strings.Builder
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n\n")
	}

	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]")
	} else {
		b.WriteString("\n[Create account]")
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "enter: submit │ tab: next field │ esc: back")
}

func (m *registerScreen) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Register(ctx, req)
		return registerDoneMsg{user: user, err: err}
	}
}

func (m *registerScreen) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *registerScreen) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
