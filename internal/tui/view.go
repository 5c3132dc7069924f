package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/soaringjerry/ipss-selfcheck/internal/services"
	"github.com/soaringjerry/ipss-selfcheck/internal/utils"
)

func (m Model) View() string {
	snap := m.form.Snapshot()
	left := m.styles.Card.Render(m.formView(snap))
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Card.Render(m.scoreView(snap)),
		m.adviceView(snap),
	)
	header := m.styles.Title.Render("IPSS Self-Assessment") + "\n" +
		m.styles.Subtle.Render("Results are not a diagnosis. Please consult a healthcare professional.")
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	if m.width > 0 && lipgloss.Width(body) > m.width {
		body = lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	footer := m.styles.Subtle.Render("tab/↑↓ move · 0–5 or ←→ answer · space consent · enter submit · esc quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, footer)
}

func (m Model) formView(snap services.Snapshot) string {
	var b strings.Builder
	b.WriteString(m.label(rowName, "Name *") + "\n" + m.name.View() + "\n")
	b.WriteString(m.label(rowEmail, "Email *") + "\n" + m.email.View() + "\n")
	b.WriteString(m.styles.Subtle.Render(utils.T(m.locale, utils.MsgEmailPrivacy)) + "\n\n")

	for i, q := range services.Questions {
		row := rowFirstQuestion + i
		b.WriteString(m.label(row, fmt.Sprintf("%-24s", q.Label)) + " " + m.scaleView(snap, q.Key) + "\n")
	}

	b.WriteString("\n" + m.label(rowQoL, utils.T(m.locale, utils.MsgQoLLabel)) + "\n" + m.qol.View() + "\n")
	if snap.QoLAdvisory {
		b.WriteString(m.styles.Subtle.Render(utils.T(m.locale, utils.MsgQoLAdvisory)) + "\n")
	}

	box := "[ ]"
	if snap.Consent {
		box = "[x]"
	}
	b.WriteString("\n" + m.label(rowConsent, box) + " " + m.styles.Subtle.Render(utils.T(m.locale, utils.MsgConsent)) + "\n\n")

	b.WriteString(m.submitView(snap))
	return b.String()
}

func (m Model) scaleView(snap services.Snapshot, key string) string {
	current, answered := snap.Answers[key]
	parts := make([]string, 0, services.MaxSeverity+1)
	for _, v := range services.SeverityScale() {
		s := strconv.Itoa(v)
		if answered && current == v {
			parts = append(parts, m.styles.Selected.Render("["+s+"]"))
		} else {
			parts = append(parts, m.styles.Option.Render(" "+s+" "))
		}
	}
	return strings.Join(parts, "")
}

func (m Model) submitView(snap services.Snapshot) string {
	var b strings.Builder
	label := utils.T(m.locale, utils.MsgSubmitButton)
	if snap.State == services.StatePending {
		label = m.spinner.View() + utils.T(m.locale, utils.MsgSubmitting)
	}
	button := m.styles.Disabled.Render(label)
	if snap.CanSubmit {
		button = m.styles.Button.Render(label)
	}
	if m.focus == rowSubmit {
		button = m.styles.Focused.Render("› ") + button
	}
	b.WriteString(button)
	if !snap.CanSubmit && snap.State != services.StatePending {
		b.WriteString(" " + m.styles.Subtle.Render(utils.T(m.locale, utils.MsgSubmitHint)))
	}
	if snap.Message != "" {
		b.WriteString("\n" + m.styles.Success.Render("✓ "+snap.Message))
	}
	if snap.Error != "" {
		b.WriteString("\n" + m.styles.Error.Render("⚠ "+snap.Error))
	}
	return b.String()
}

func (m Model) scoreView(snap services.Snapshot) string {
	lines := []string{
		m.styles.Title.Render("Live Score"),
		m.gauge.ViewAs(float64(snap.Total) / services.MaxTotal),
		m.styles.Score.Render(strconv.Itoa(snap.Total)) + "  " + m.styles.Badge(snap.Tier, m.locale),
		m.styles.Subtle.Render("International Prostate Symptom Score (0–35)"),
		"",
		m.styles.Subtle.Render("0–7: " + services.TierMild.Label(m.locale)),
		m.styles.Subtle.Render("8–19: " + services.TierModerate.Label(m.locale)),
		m.styles.Subtle.Render("20–35: " + services.TierSevere.Label(m.locale)),
	}
	return strings.Join(lines, "\n")
}

// adviceView appears once the endpoint has confirmed a total.
func (m Model) adviceView(snap services.Snapshot) string {
	if snap.SubmittedTotal == nil {
		return ""
	}
	total := *snap.SubmittedTotal
	tier := services.TierFor(total)
	lines := []string{
		m.styles.Title.Render("What your score suggests"),
		fmt.Sprintf("Your total score is %d. %s", total, m.styles.Badge(tier, m.locale)),
		tier.Advice(m.locale),
		m.styles.Subtle.Render(utils.T(m.locale, utils.MsgDisclaimer)),
	}
	return m.styles.Card.BorderForeground(colorEmerald).Render(strings.Join(lines, "\n"))
}

func (m Model) label(row int, text string) string {
	if m.focus == row {
		return m.styles.Focused.Render("› " + text)
	}
	return m.styles.Label.Render("  " + text)
}
