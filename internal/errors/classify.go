package errors

import (
	"context"
	"errors"
)

// ErrorSeverity indicates the severity of an error for UI presentation.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // User should know, not blocking
	SeverityWarning                      // Degraded functionality
	SeverityError                        // Operation failed, can retry
)

// UIError wraps an error with UI-friendly presentation metadata.
type UIError struct {
	Err      error
	Severity ErrorSeverity
	Title    string   // Short user-facing title
	Message  string   // Detailed user-facing message
	Recovery []string // Suggested actions (bullet points)
	Details  string   // Technical details (collapsed by default)
}

func (e UIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Title
}

// Unwrap returns the underlying error.
func (e UIError) Unwrap() error {
	return e.Err
}

// ClassifyError converts a core error into a UIError with appropriate
// severity, title, message, and recovery suggestions. Transport failures
// never reach this path: dispatch absorbs them into the response record.
func ClassifyError(err error) *UIError {
	if err == nil {
		return nil
	}

	var uiErr *UIError
	if errors.As(err, &uiErr) {
		return uiErr
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Request Timeout",
			Message:  "The server took too long to respond.",
			Recovery: []string{"Try again"},
		}

	case errors.Is(err, ErrRepositoryAbsent):
		return &UIError{
			Err:      err,
			Severity: SeverityInfo,
			Title:    "No Repository",
			Message:  "This folder is not inside a git repository.",
			Recovery: []string{},
		}

	case errors.Is(err, ErrNoWorkspaceFolder):
		return &UIError{
			Err:      err,
			Severity: SeverityWarning,
			Title:    "No Folder Open",
			Message:  "Open a workspace folder before saving requests.",
			Recovery: []string{"Use Open Folder to choose a workspace"},
		}

	case errors.Is(err, ErrEmptyName):
		return &UIError{
			Err:      err,
			Severity: SeverityWarning,
			Title:    "Invalid Name",
			Message:  "The request name is empty after removing unsafe characters.",
			Recovery: []string{"Choose a name with letters or digits"},
		}

	case errors.Is(err, ErrStaleEntry):
		return &UIError{
			Err:      err,
			Severity: SeverityWarning,
			Title:    "Entry Out of Date",
			Message:  "The workspace changed underneath this entry.",
			Recovery: []string{"The list has been refreshed, try again"},
		}
	}

	var fsErr FilesystemError
	if errors.As(err, &fsErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityWarning,
			Title:    "File Operation Failed",
			Message:  "Could not " + fsErr.Op + " the file. Nothing was changed.",
			Recovery: []string{
				"Check the file still exists",
				"Check folder permissions",
			},
			Details: fsErr.Error(),
		}
	}

	var parseErr ParseError
	if errors.As(err, &parseErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityWarning,
			Title:    "Unreadable Request File",
			Message:  "The file could not be parsed as a saved request.",
			Recovery: []string{"Fix or delete the file"},
			Details:  parseErr.Error(),
		}
	}

	// Default fallback for unknown errors
	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Unexpected Error",
		Message:  "An unexpected error occurred.",
		Recovery: []string{"Try again"},
		Details:  err.Error(),
	}
}
