package model

import "fyne.io/fyne/v2/data/binding"

// ApplicationState is the centralized UI state with Fyne data bindings.
// Panels bind to these values for reactive updates; the core components
// never touch them.
type ApplicationState struct {
	// WorkspaceFolder is the currently open folder, empty when none.
	WorkspaceFolder binding.String

	Response *ResponseState
	Git      *GitState
	Status   *StatusState
}

// NewApplicationState creates an ApplicationState with initialized bindings.
func NewApplicationState() *ApplicationState {
	return &ApplicationState{
		WorkspaceFolder: binding.NewString(),
		Response:        NewResponseState(),
		Git:             NewGitState(),
		Status:          NewStatusState(),
	}
}

// ResponseState is the state of the response panel. A dispatch applies a
// whole record at once; the only mid-flight signal is Loading.
type ResponseState struct {
	StatusLine binding.String // e.g. "200 OK"
	Body       binding.String
	Elapsed    binding.String // e.g. "123ms"
	Oversized  binding.Bool   // body kept raw, not rendered line-by-line
	Loading    binding.Bool
}

// NewResponseState creates a ResponseState with initialized bindings.
func NewResponseState() *ResponseState {
	loading := binding.NewBool()
	_ = loading.Set(false)

	return &ResponseState{
		StatusLine: binding.NewString(),
		Body:       binding.NewString(),
		Elapsed:    binding.NewString(),
		Oversized:  binding.NewBool(),
		Loading:    loading,
	}
}

// GitState is the read-only repository overlay state.
type GitState struct {
	Branch    binding.String     // short branch name, empty when no repository
	Available binding.Bool       // false when the folder is not in a repository
	Changes   binding.StringList // formatted change rows
}

// NewGitState creates a GitState with initialized bindings.
func NewGitState() *GitState {
	return &GitState{
		Branch:    binding.NewString(),
		Available: binding.NewBool(),
		Changes:   binding.NewStringList(),
	}
}

// StatusState feeds the status bar: a transient message plus its severity.
// Severities: "info", "warning", "error".
type StatusState struct {
	Message  binding.String
	Severity binding.String
}

// NewStatusState creates a StatusState with initialized bindings.
func NewStatusState() *StatusState {
	severity := binding.NewString()
	_ = severity.Set("info")

	return &StatusState{
		Message:  binding.NewString(),
		Severity: severity,
	}
}
