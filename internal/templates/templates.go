// Package templates provides the message template registry and
// rendering for the racer agent.
package templates

// Template is a named message format with a declared variable schema.
// The message body uses Go text/template placeholders ({{.field}});
// every placeholder must be resolvable from the declared variables.
type Template struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Message     string        `yaml:"message"`
	Variables   []TemplateVar `yaml:"variables,omitempty"`
	Tags        []string      `yaml:"tags,omitempty"`
	Source      string        // file path or "builtin"
}

// TemplateVar describes a variable used in a template. Required
// variables must be supplied by the caller; the rest fall back to
// their Default when absent.
type TemplateVar struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Default     string `yaml:"default,omitempty"`
	Required    bool   `yaml:"required"`
}

// RequiredVars returns the names of all required variables.
func (t *Template) RequiredVars() []string {
	names := make([]string, 0, len(t.Variables))
	for _, variable := range t.Variables {
		if variable.Required {
			names = append(names, variable.Name)
		}
	}
	return names
}

// OptionalVars returns the declared variables that are not required.
func (t *Template) OptionalVars() []TemplateVar {
	vars := make([]TemplateVar, 0, len(t.Variables))
	for _, variable := range t.Variables {
		if !variable.Required {
			vars = append(vars, variable)
		}
	}
	return vars
}

// Var returns the declared variable with the given name.
func (t *Template) Var(name string) (TemplateVar, bool) {
	for _, variable := range t.Variables {
		if variable.Name == name {
			return variable, true
		}
	}
	return TemplateVar{}, false
}
