package orchestrator

import (
	"errors"
	"fmt"
	"io/fs"
)

// Fatal conditions. Each ends the run with exit status 1.
var (
	ErrSourceNotFound           = errors.New("source does not exist")
	ErrSourceNotDirectory       = errors.New("source is not a directory")
	ErrSourcePermission         = errors.New("source cannot be read: permission denied")
	ErrDestinationNotDirectory  = errors.New("destination is not a directory")
	ErrDestinationMissingParent = errors.New("destination parent does not exist")
	ErrDestinationPermission    = errors.New("destination cannot be created: permission denied")
	ErrClipIO                   = errors.New("clip i/o failure")
	ErrClipPermission           = errors.New("clip write: permission denied")
)

// userMessages are ordered so the more specific permission error wins over
// the generic i/o error.
var userMessages = []struct {
	err error
	msg string
}{
	{ErrSourceNotFound, "The specified source does not exist."},
	{ErrSourceNotDirectory, "The specified source is not a directory."},
	{ErrSourcePermission, "The specified source could not be read due to inadequate permissions."},
	{ErrDestinationNotDirectory, "The specified destination is not a directory."},
	{ErrDestinationMissingParent, "The specified destination directory could not be created because of missing parents."},
	{ErrDestinationPermission, "The destination directory could not be created due to inadequate permissions."},
	{ErrClipPermission, "A clip could not be saved due to inadequate permissions."},
	{ErrClipIO, "An IO error occurred while saving a clip to a file."},
}

// UserMessage returns the one-line message for err if it wraps one of the
// fatal conditions. The message is a lexicon key.
func UserMessage(err error) (string, bool) {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg, true
		}
	}
	return "", false
}

// wrap attaches sentinel to cause so errors.Is matches both.
func wrap(sentinel error, op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", sentinel, op, cause)
}

// clipError classifies a filesystem failure while producing a clip.
func clipError(op string, cause error) error {
	if errors.Is(cause, fs.ErrPermission) {
		return wrap(ErrClipPermission, op, cause)
	}
	return wrap(ErrClipIO, op, cause)
}
