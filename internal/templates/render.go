package templates

import (
	"fmt"
	"sort"
	"strings"
	"text/template"
)

// Render resolves a template against caller-supplied variables.
//
// Presence means the key exists in vars, so an explicit empty string
// counts as supplied. Optional variables absent from vars fall back to
// their declared defaults; supplied values always win over defaults.
// Missing required variables are collected and reported together in a
// single MissingVariablesError.
func Render(tmpl *Template, vars map[string]any) (string, error) {
	if tmpl == nil {
		return "", fmt.Errorf("template is required")
	}

	data := make(map[string]any, len(tmpl.Variables)+len(vars))
	for key, value := range vars {
		data[key] = value
	}

	var missing []string
	for _, variable := range tmpl.Variables {
		if _, ok := data[variable.Name]; ok {
			continue
		}
		if variable.Required {
			missing = append(missing, variable.Name)
			continue
		}
		data[variable.Name] = variable.Default
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return "", &MissingVariablesError{Template: tmpl.Name, Missing: missing}
	}

	out, err := execute(tmpl, data)
	if err != nil {
		// Required and default values are already merged, so a failure
		// here means the message references a placeholder outside the
		// declared variable set.
		return "", &DefinitionError{Template: tmpl.Name, Err: err}
	}
	return out, nil
}

func execute(tmpl *Template, data map[string]any) (string, error) {
	parsed, err := template.New(tmpl.Name).
		Option("missingkey=error").
		Parse(tmpl.Message)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := parsed.Execute(&out, data); err != nil {
		return "", err
	}
	return out.String(), nil
}
