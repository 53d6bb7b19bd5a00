package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/lifeos/internal/logger"
)

var (
	// ErrNotFound is returned by commands that address a record by id when
	// no such record exists.
	ErrNotFound = stderrors.New("not found")
	// ErrAborted is returned when the user declines a confirmation prompt.
	ErrAborted = stderrors.New("aborted")
)

// problemLister is implemented by validation failures that carry one message
// per offending field.
type problemLister interface {
	Problems() []string
}

// NotFound wraps ErrNotFound with the kind and id that were looked up.
func NotFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

// Format formats an error message with a consistent "Error: " prefix.
// Validation failures are expanded into one indented line per problem.
func Format(err error) string {
	if err == nil {
		return ""
	}
	var pl problemLister
	if stderrors.As(err, &pl) {
		problems := pl.Problems()
		if len(problems) > 0 {
			var b strings.Builder
			b.WriteString("Error: invalid input")
			for _, p := range problems {
				b.WriteString("\n  - ")
				b.WriteString(p)
			}
			return b.String()
		}
	}
	return fmt.Sprintf("Error: %v", err)
}

// ExitCode maps an error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil, stderrors.Is(err, ErrAborted):
		return 0
	default:
		return 1
	}
}

// Fatal logs an error and exits the program. A declined confirmation exits
// cleanly.
func Fatal(err error) {
	if err == nil {
		return
	}
	if stderrors.Is(err, ErrAborted) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		os.Exit(ExitCode(err))
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintf(os.Stderr, "%s\n", Format(err))
	os.Exit(ExitCode(err))
}
