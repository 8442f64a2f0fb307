package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bachelormess/mess-manager/internal/service"
	"github.com/bachelormess/mess-manager/internal/session"
	"github.com/bachelormess/mess-manager/models"
)

// dashboardScreen shows the aggregated mess figures. Admins also get the
// per-member breakdown the server includes for them.
type dashboardScreen struct {
	ctx      context.Context
	services *service.ClientServices

	stats   models.DashboardStats
	loaded  bool
	loading bool
	spinner spinner.Model

	notice string
	errMsg string
}

func newDashboardScreen(ctx context.Context, services *service.ClientServices) *dashboardScreen {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &dashboardScreen{ctx: ctx, services: services, spinner: s}
}

func (d *dashboardScreen) requirement() session.Requirement { return session.Authenticated() }

func (d *dashboardScreen) setNotice(notice string) { d.notice = notice }

func (d *dashboardScreen) Init() tea.Cmd {
	d.loading = true
	d.errMsg = ""
	return tea.Batch(d.spinner.Tick, d.cmdLoad())
}

func (d *dashboardScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		d.loading = false
		if msg.err != nil {
			if cmd := expireSession(msg.err); cmd != nil {
				return d, cmd
			}
			d.errMsg = msg.err.Error()
			return d, nil
		}
		d.errMsg = ""
		d.stats = msg.stats
		d.loaded = true
		return d, nil

	case spinner.TickMsg:
		if !d.loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return d, navigateTo(screenHome)
		case "g":
			d.loading = true
			return d, tea.Batch(d.spinner.Tick, d.cmdLoad())
		case "c":
			if !d.loaded {
				return d, nil
			}
			if err := clipboard.WriteAll(d.summary()); err != nil {
				d.errMsg = "clipboard unavailable"
				return d, nil
			}
			d.notice = "Summary copied to clipboard"
			return d, nil
		}
	}

	return d, nil
}

func (d *dashboardScreen) View() string {
	var b strings.Builder
	if d.notice != "" {
		b.WriteString(d.notice)
		b.WriteString("\n\n")
	}

	switch {
	case d.loading:
		b.WriteString(d.spinner.View())
		b.WriteString(" loading...")
	case !d.loaded:
		b.WriteString("No figures available")
	default:
		b.WriteString(d.summary())
		if len(d.stats.Members) > 0 {
			b.WriteString("\n\nPer member\n")
			b.WriteString(fmt.Sprintf("  %-20s %6s %12s\n", "name", "meals", "bazar"))
			for _, member := range d.stats.Members {
				b.WriteString(fmt.Sprintf("  %-20s %6d %12s\n", fitText(member.Name, 20), member.Meals, formatAmount(member.BazarAmount)))
			}
		}
	}
	b.WriteString(renderError(d.errMsg))

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), "g: refresh │ c: copy summary │ esc: back")
}

func (d *dashboardScreen) summary() string {
	s := d.stats
	lines := []string{
		fmt.Sprintf("Total meals        %d", s.TotalMeals),
		fmt.Sprintf("Pending records    %d meals, %s bazar", s.PendingMealRecords, formatAmount(s.PendingBazarAmount)),
		fmt.Sprintf("Rejected records   %d", s.RejectedMealRecords),
		fmt.Sprintf("Approved bazar     %s", formatAmount(s.ApprovedBazarAmount)),
		fmt.Sprintf("Meal rate          %s", formatAmount(s.MealRate)),
	}
	return strings.Join(lines, "\n")
}

func (d *dashboardScreen) cmdLoad() tea.Cmd {
	ctx := d.ctx
	dashboard := d.services.DashboardService

	return func() tea.Msg {
		stats, err := dashboard.Stats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}
