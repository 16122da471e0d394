package tui

import (
	"fmt"
	"strings"

	"github.com/austrich-ai/austrich/internal/tui/themes"
	"github.com/austrich-ai/austrich/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	av := m.buildAppView()

	if !av.IsReady() {
		if av.HasError() {
			return m.renderError(av)
		}
		return m.theme.Subtitle.Render("Loading report " + m.config.ReportID + "...")
	}

	switch av.State {
	case viewmodel.StateHelp:
		return m.renderHelp(av)
	case viewmodel.StateConfirm:
		return m.renderReview(av) + "\n" + m.renderConfirm(av)
	case viewmodel.StateTranscript:
		return m.renderTranscript(av)
	default:
		return m.renderReview(av)
	}
}

func (m Model) renderError(av viewmodel.AppView) string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("OSCE Review"))
	b.WriteString("\n")
	b.WriteString(m.theme.StatusError.Render("Error: " + av.Error))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("q quit"))
	return b.String()
}

func (m Model) renderReview(av viewmodel.AppView) string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("OSCE Review"))
	if av.ReportID != "" {
		b.WriteString(m.theme.Subtitle.Render("  report " + av.ReportID))
	}
	b.WriteString("\n")

	if av.Checklist != nil {
		b.WriteString(m.renderStats(av.Checklist.Stats, av.Checklist.HasChanges))
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render("filter: " + av.Checklist.Filter))
		b.WriteString("\n")
		b.WriteString(m.renderRows(av.Checklist))
	} else {
		b.WriteString(m.theme.StatusPending.Render("No checklist found in this report."))
		b.WriteString("\n")
	}

	if av.StatusMessage != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.StatusInfo.Render(av.StatusMessage))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("j/k move · Tab filter · y/n resolve · Enter transcript · e export · ? help · q quit"))
	return b.String()
}

func (m Model) renderStats(stats viewmodel.StatsLine, hasChanges bool) string {
	parts := []string{
		m.theme.StatusSuccess.Render(fmt.Sprintf("✓ %d", stats.Yes)),
		m.theme.StatusError.Render(fmt.Sprintf("✗ %d", stats.No)),
		m.theme.StatusWarning.Render(fmt.Sprintf("? %d", stats.NotSure)),
		m.theme.Bold.Render(fmt.Sprintf("score %d%%", stats.ScorePercent)),
	}
	line := strings.Join(parts, "  ")
	if hasChanges {
		line += "  " + m.theme.StatusPending.Render("(unsaved overrides)")
	}
	return line
}

func (m Model) renderRows(cv *viewmodel.ChecklistView) string {
	if len(cv.Rows) == 0 {
		return m.theme.StatusPending.Render("no items match this filter") + "\n"
	}

	var b strings.Builder
	visible := m.pageSize()
	start := 0
	if cv.Cursor >= visible {
		start = cv.Cursor - visible + 1
	}
	end := start + visible
	if end > len(cv.Rows) {
		end = len(cv.Rows)
	}

	for _, row := range cv.Rows[start:end] {
		icon := themes.GetVerdictIcon(row.Status)
		line := fmt.Sprintf("%s %s", m.styleVerdict(row.Status).Render(icon), row.Label)
		if row.Timestamp != "" {
			line += m.theme.Subtitle.UnsetMargins().Render("  [" + row.Timestamp + "]")
		}
		if row.Selected {
			line = m.theme.Selected.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Evidence for the selected row sits under the list.
	if row, ok := cv.SelectedRow(); ok && row.Evidence != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Code.Render("“" + row.Evidence + "”"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) styleVerdict(status string) lipgloss.Style {
	switch status {
	case "Yes":
		return m.theme.StatusSuccess
	case "No":
		return m.theme.StatusError
	default:
		return m.theme.StatusWarning
	}
}

func (m Model) renderConfirm(av viewmodel.AppView) string {
	if av.Confirm == nil {
		return ""
	}
	body := fmt.Sprintf("Change %q\n%s → %s\n\nEnter/y confirm · Esc/n cancel",
		av.Confirm.ItemLabel, av.Confirm.From, av.Confirm.To)
	return m.theme.RoundedBox.Render(body)
}

func (m Model) renderTranscript(av viewmodel.AppView) string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Transcript"))
	b.WriteString("\n")

	if av.Transcript == nil || len(av.Transcript.Lines) == 0 {
		b.WriteString(m.theme.StatusPending.Render("no transcript available"))
		b.WriteString("\n")
		return b.String()
	}

	for _, line := range av.Transcript.Visible(m.pageSize()) {
		text := line.Text
		if line.Highlighted {
			text = m.theme.Highlighted.Render(text)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("j/k scroll · t/Esc back · ? help"))
	return b.String()
}

func (m Model) renderHelp(av viewmodel.AppView) string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Help"))
	b.WriteString("\n")

	for _, kb := range av.GetActiveKeyBindings() {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", kb.Key, kb.Description))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("press any key to return"))
	return b.String()
}
