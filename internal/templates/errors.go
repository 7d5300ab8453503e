package templates

import (
	"errors"
	"fmt"
	"strings"
)

// Registry errors.
var (
	// ErrTemplateNameRequired is returned when a template has no name.
	ErrTemplateNameRequired = errors.New("template name is required")
	// ErrTemplateMessageRequired is returned when a template has no message body.
	ErrTemplateMessageRequired = errors.New("template message is required")
	// ErrDuplicateTemplate is returned when two templates share a name.
	ErrDuplicateTemplate = errors.New("duplicate template name")
)

// NotFoundError is returned when a template name is not registered.
// It is a caller error and recoverable.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.Name)
}

// MissingVariablesError reports every required variable absent from
// the caller-supplied context, not just the first one.
type MissingVariablesError struct {
	Template string
	Missing  []string
}

func (e *MissingVariablesError) Error() string {
	return fmt.Sprintf("template %q missing required variables: %s",
		e.Template, strings.Join(e.Missing, ", "))
}

// DefinitionError reports a template whose message references a
// placeholder that no declared variable resolves. It indicates an
// authoring bug in the definition, never a caller error, and surfaces
// at registry construction.
type DefinitionError struct {
	Template string
	Err      error
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("template %q definition invalid: %v", e.Template, e.Err)
}

func (e *DefinitionError) Unwrap() error { return e.Err }
