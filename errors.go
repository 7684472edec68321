package stomlargs

import (
	"errors"
	"fmt"
)

// The parse pipeline aborts on the first failure and surfaces it as one
// of the typed errors below; there is no partial result and no multi-error
// aggregation. Callers match with errors.As and decide presentation and
// exit status themselves.

// UnknownFlagError reports a token that matched neither alias index.
type UnknownFlagError struct {
	Flag string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag '%s'", e.Flag)
}

// MissingValueError reports a value-taking flag with nothing to consume.
type MissingValueError struct {
	Name string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("argument '%s' requires a value", e.Name)
}

// InvalidValueError reports raw text that failed type coercion.
type InvalidValueError struct {
	Name     string
	Value    string
	Expected string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value '%s' for '%s': expected %s", e.Value, e.Name, e.Expected)
}

// DuplicateValueError reports a second occurrence of an argument that is
// neither an array nor a counter.
type DuplicateValueError struct {
	Name string
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("argument '%s' cannot be specified multiple times", e.Name)
}

// MissingPositionalError reports a required positional slot left unfilled
// after the full merge.
type MissingPositionalError struct {
	Name string
	Slot int
}

func (e *MissingPositionalError) Error() string {
	return fmt.Sprintf("missing required positional argument '%s' at position %d", e.Name, e.Slot)
}

// TooManyPositionalError reports surplus positional tokens with no
// variadic slot to absorb them.
type TooManyPositionalError struct {
	Max int
	Got int
}

func (e *TooManyPositionalError) Error() string {
	return fmt.Sprintf("too many positional arguments: expected at most %d, got %d", e.Max, e.Got)
}

// MissingRequiredError reports a required non-positional argument absent
// after the full merge.
type MissingRequiredError struct {
	Name string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("required argument '%s' was not provided", e.Name)
}

// MissingConfigError reports an explicitly requested configuration file
// that does not exist. An absent default config path is not an error; it
// is silently skipped.
type MissingConfigError struct {
	Path string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("required config file '%s' not found", e.Path)
}

// HelpRequestedError is the informational outcome produced when the user
// asks for help. It travels the error channel but is not a failure; its
// text is the fully rendered help screen.
type HelpRequestedError struct {
	Text string
}

func (e *HelpRequestedError) Error() string { return e.Text }

// VersionRequestedError is the informational outcome produced when the
// user asks for the version.
type VersionRequestedError struct {
	Text string
}

func (e *VersionRequestedError) Error() string { return e.Text }

// IsInfoRequest reports whether err is a help or version request rather
// than a genuine parse failure.
func IsInfoRequest(err error) bool {
	var h *HelpRequestedError
	var v *VersionRequestedError
	return errors.As(err, &h) || errors.As(err, &v)
}

// ExitCode maps an outcome to a process exit disposition: 0 for nil or
// an informational request, 2 for any parse or configuration failure.
func ExitCode(err error) int {
	if err == nil || IsInfoRequest(err) {
		return 0
	}
	return 2
}
