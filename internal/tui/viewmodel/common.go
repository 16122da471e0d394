// Package viewmodel holds pure, serializable view state for the review
// console. Nothing here imports bubbletea; builders take domain state and
// return plain structs the render layer can draw without further logic.
package viewmodel

// AppState represents the overall application state.
type AppState int

const (
	// StateLoading indicates the application is loading the report.
	StateLoading AppState = iota
	// StateReview indicates the user is reviewing the checklist.
	StateReview
	// StateConfirm indicates an override is staged and awaiting confirmation.
	StateConfirm
	// StateTranscript indicates the transcript pane has focus.
	StateTranscript
	// StateHelp indicates the help overlay is active.
	StateHelp
	// StateError indicates an error has occurred.
	StateError
)

// AppView represents the entire application view model.
type AppView struct {
	Checklist     *ChecklistView
	Transcript    *TranscriptView
	Confirm       *ConfirmView
	Error         string
	StatusMessage string
	ReportID      string
	KeyBindings   []KeyBinding
	State         AppState
	Width         int
	Height        int
}

// KeyBinding represents a keyboard shortcut.
type KeyBinding struct {
	Key         string
	Description string
	IsActive    bool
}

// IsReady returns true if the application is ready for user interaction.
func (av AppView) IsReady() bool {
	return av.State != StateLoading && av.State != StateError
}

// HasError returns true if the application has a global error.
func (av AppView) HasError() bool {
	return av.Error != ""
}

// GetActiveKeyBindings returns only the currently active key bindings.
func (av AppView) GetActiveKeyBindings() []KeyBinding {
	var active []KeyBinding
	for _, kb := range av.KeyBindings {
		if kb.IsActive {
			active = append(active, kb)
		}
	}
	return active
}
