package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true)
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage lays out a screen as title, divider, body, divider, hotkeys.
func renderPage(title, body, hotkeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(body) != "" {
		for _, line := range strings.Split(body, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotkeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotkeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func renderError(msg string) string {
	if msg == "" {
		return ""
	}
	return "\n" + errorStyle.Render("Error: "+msg)
}

// formatAmount renders a smallest-currency-unit amount as taka with two
// decimal places.
func formatAmount(amount int64) string {
	return fmt.Sprintf("%d.%02d", amount/100, amount%100)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func mealSummary(breakfast, lunch, dinner bool) string {
	marks := make([]string, 0, 3)
	if breakfast {
		marks = append(marks, "breakfast")
	}
	if lunch {
		marks = append(marks, "lunch")
	}
	if dinner {
		marks = append(marks, "dinner")
	}
	if len(marks) == 0 {
		return "-"
	}
	return strings.Join(marks, ", ")
}
