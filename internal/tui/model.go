package tui

import (
	"fmt"

	"github.com/austrich-ai/austrich/internal/checklist"
	"github.com/austrich-ai/austrich/internal/model"
	"github.com/austrich-ai/austrich/internal/report"
	"github.com/austrich-ai/austrich/internal/transcript"
	"github.com/austrich-ai/austrich/internal/tui/themes"
	"github.com/austrich-ai/austrich/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current state of the TUI.
type State int

const (
	StateLoading State = iota
	StateReview
	StateConfirm
	StateTranscript
	StateHelp
)

// Model holds the review console state. The checklist pane owns the cursor
// and filter; transcript scrolling and highlighting live beside them so a
// jump from a checklist item lands in the right place.
type Model struct {
	theme            themes.Theme
	lastError        error
	review           *checklist.ReviewState
	highlighter      *transcript.Highlighter
	resolved         *report.Resolved
	config           Config
	keymap           KeyMap
	statusMessage    string
	transcriptLines  []transcript.Line
	filter           checklist.FilterMode
	cursor           int
	transcriptOffset int
	height           int
	width            int
	state            State
	returnState      State
	quitWarned       bool
	quitting         bool
	ready            bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	return Model{
		state:  StateLoading,
		filter: checklist.FilterAll,
		config: cfg,
		keymap: DefaultKeyMap(),
		theme:  cfg.Theme,
		width:  cfg.Width,
		height: cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.loadReport(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case reportLoadedMsg:
		if msg.err != nil {
			m.lastError = msg.err
			m.ready = true
			m.state = StateReview
			return m, nil
		}
		m.resolved = msg.resolved
		m.review = checklist.NewReviewState(msg.resolved.Checklist)
		m.transcriptLines = transcript.Parse(msg.resolved.Report.Transcript)
		m.highlighter = transcript.NewHighlighter(m.transcriptLines)
		m.ready = true
		m.state = StateReview
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.statusMessage = "export failed: " + msg.err.Error()
		} else {
			m.statusMessage = fmt.Sprintf("exported %d rows to %s", msg.rows, msg.dest)
		}
		return m, nil

	case highlightExpiredMsg:
		// Redraw; Current() drops the highlight once the TTL has passed.
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key := msg.String(); key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if msg.String() == "ctrl+l" {
		return m, tea.ClearScreen
	}

	switch m.state {
	case StateLoading:
		return m, nil
	case StateConfirm:
		return m.handleConfirmKey(msg)
	case StateTranscript:
		return m.handleTranscriptKey(msg)
	case StateHelp:
		m.state = m.returnState
		return m, nil
	default:
		return m.handleReviewKey(msg)
	}
}

func (m Model) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := checklist.Filter(m.items(), m.filter)
	m.statusMessage = ""

	// Any key other than a repeated quit withdraws the quit warning.
	warned := m.quitWarned
	m.quitWarned = false

	switch msg.String() {
	case "q", "esc":
		if m.review != nil && m.review.HasChanges && !warned {
			m.statusMessage = "overrides are session-only and will be lost; press q again to quit"
			m.quitWarned = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "j", "down":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case "pgup", "ctrl+b":
		m.cursor -= m.pageSize()
		if m.cursor < 0 {
			m.cursor = 0
		}
	case "pgdown", "ctrl+f":
		m.cursor += m.pageSize()
		if m.cursor >= len(rows) && len(rows) > 0 {
			m.cursor = len(rows) - 1
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		if len(rows) > 0 {
			m.cursor = len(rows) - 1
		}

	case "tab", "f":
		m.filter = viewmodel.NextFilter(m.filter)
		m.cursor = 0

	case "y":
		return m.stageOverride(rows, model.StatusYes)
	case "n":
		return m.stageOverride(rows, model.StatusNo)

	case "enter":
		return m.jumpToTranscript(rows)

	case "t":
		m.returnState = StateReview
		m.state = StateTranscript

	case "e":
		return m, m.exportChecklist()

	case "?":
		m.returnState = StateReview
		m.state = StateHelp
	}

	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y":
		m.review.ConfirmStatusChange()
		m.state = StateReview
		m.statusMessage = "verdict updated (session only)"
	case "esc", "n", "q":
		m.review.CancelStatusChange()
		m.state = StateReview
	}
	return m, nil
}

func (m Model) handleTranscriptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "k", "up":
		if m.transcriptOffset > 0 {
			m.transcriptOffset--
		}
	case "j", "down":
		if m.transcriptOffset < len(m.transcriptLines)-1 {
			m.transcriptOffset++
		}
	case "pgup", "ctrl+b":
		m.transcriptOffset -= m.pageSize()
		if m.transcriptOffset < 0 {
			m.transcriptOffset = 0
		}
	case "pgdown", "ctrl+f":
		m.transcriptOffset += m.pageSize()
		if max := len(m.transcriptLines) - 1; m.transcriptOffset > max && max >= 0 {
			m.transcriptOffset = max
		}
	case "g", "home":
		m.transcriptOffset = 0
	case "t", "esc", "q":
		m.state = StateReview
	case "?":
		m.returnState = StateTranscript
		m.state = StateHelp
	}
	return m, nil
}

// stageOverride requests a verdict change for the row under the cursor.
// Terminal verdicts are silently left alone, matching the review rules.
func (m Model) stageOverride(rows []checklist.Row, target model.ChecklistStatus) (tea.Model, tea.Cmd) {
	if m.review == nil || m.cursor >= len(rows) {
		return m, nil
	}
	if m.review.RequestStatusChange(rows[m.cursor].SourceIndex, target) {
		m.state = StateConfirm
	}
	return m, nil
}

// jumpToTranscript resolves the selected item's timestamp against the
// transcript and highlights the matching lines.
func (m Model) jumpToTranscript(rows []checklist.Row) (tea.Model, tea.Cmd) {
	if m.highlighter == nil || m.cursor >= len(rows) {
		return m, nil
	}

	item := rows[m.cursor].Item
	if !item.HasTimestamp() {
		m.statusMessage = "no timestamp on this item"
		return m, nil
	}

	end := ""
	if item.TimestampEnd != nil {
		end = *item.TimestampEnd
	}

	line, ok := m.highlighter.LinkAndHighlight(*item.Timestamp, end)
	if !ok {
		m.statusMessage = "timestamp not found in transcript"
		return m, nil
	}

	m.transcriptOffset = line.Index
	m.returnState = StateReview
	m.state = StateTranscript
	return m, m.scheduleHighlightExpiry()
}

func (m Model) items() []model.ChecklistItem {
	if m.review == nil {
		return nil
	}
	return m.review.Items
}

// keyBindings projects the keymap into view bindings. Checklist actions are
// marked inactive while the transcript pane has focus, so the help overlay
// can show which keys the current pane responds to.
func (m Model) keyBindings() []viewmodel.KeyBinding {
	pane := m.state
	if pane == StateHelp {
		pane = m.returnState
	}

	reviewOnly := make(map[string]bool)
	for _, b := range []key.Binding{
		m.keymap.Jump,
		m.keymap.MarkYes,
		m.keymap.MarkNo,
		m.keymap.ExportCSV,
		m.keymap.CycleFilter,
	} {
		reviewOnly[b.Help().Key] = true
	}

	var bindings []viewmodel.KeyBinding
	for _, group := range m.keymap.FullHelp() {
		for _, b := range group {
			h := b.Help()
			bindings = append(bindings, viewmodel.KeyBinding{
				Key:         h.Key,
				Description: h.Desc,
				IsActive:    pane == StateReview || !reviewOnly[h.Key],
			})
		}
	}
	return bindings
}

func (m Model) pageSize() int {
	size := m.height - 8
	if size < 1 {
		size = 1
	}
	return size
}

// buildAppView projects the model into its serializable view state.
func (m Model) buildAppView() viewmodel.AppView {
	av := viewmodel.AppView{
		State:  viewmodel.StateLoading,
		Width:  m.width,
		Height: m.height,
	}
	if m.lastError != nil {
		av.Error = m.lastError.Error()
	}
	av.StatusMessage = m.statusMessage
	if m.resolved != nil {
		av.ReportID = m.resolved.Report.ID
	}

	if !m.ready {
		return av
	}
	av.KeyBindings = m.keyBindings()

	switch {
	case m.lastError != nil:
		av.State = viewmodel.StateError
	case m.state == StateConfirm:
		av.State = viewmodel.StateConfirm
	case m.state == StateTranscript:
		av.State = viewmodel.StateTranscript
	case m.state == StateHelp:
		av.State = viewmodel.StateHelp
	default:
		av.State = viewmodel.StateReview
	}

	if m.review != nil {
		cv := viewmodel.BuildChecklistView(m.review, m.filter, m.cursor)
		av.Checklist = &cv
		av.Confirm = viewmodel.BuildConfirmView(m.review)
	}
	if len(m.transcriptLines) > 0 {
		tv := viewmodel.BuildTranscriptView(m.transcriptLines, m.highlighter, m.transcriptOffset, m.pageSize())
		av.Transcript = &tv
	}

	return av
}
