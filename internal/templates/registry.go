package templates

import (
	"fmt"
	"sort"
	"strings"
)

// Registry is an immutable lookup table of template definitions built
// at process start.
type Registry struct {
	byName map[string]*Template
}

// NewRegistry validates the given templates and builds the lookup
// table. Definitions whose message references an undeclared
// placeholder are rejected here, so misconfiguration fails at startup
// rather than at request time.
func NewRegistry(tmpls []*Template) (*Registry, error) {
	byName := make(map[string]*Template, len(tmpls))
	for _, tmpl := range tmpls {
		if err := validate(tmpl); err != nil {
			return nil, err
		}
		if _, exists := byName[tmpl.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTemplate, tmpl.Name)
		}
		byName[tmpl.Name] = tmpl
	}
	return &Registry{byName: byName}, nil
}

// Get returns the named template or a NotFoundError.
func (r *Registry) Get(name string) (*Template, error) {
	tmpl, ok := r.byName[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return tmpl, nil
}

// Resolve looks a template up and renders it in one call.
func (r *Registry) Resolve(name string, vars map[string]any) (string, error) {
	tmpl, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return Render(tmpl, vars)
}

// Names returns the registered template names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the registered templates sorted by name.
func (r *Registry) All() []*Template {
	tmpls := make([]*Template, 0, len(r.byName))
	for _, name := range r.Names() {
		tmpls = append(tmpls, r.byName[name])
	}
	return tmpls
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	return len(r.byName)
}

const probeValue = "probe"

func validate(tmpl *Template) error {
	if tmpl == nil || strings.TrimSpace(tmpl.Name) == "" {
		return ErrTemplateNameRequired
	}
	if strings.TrimSpace(tmpl.Message) == "" {
		return fmt.Errorf("template %q: %w", tmpl.Name, ErrTemplateMessageRequired)
	}

	// Execute the message with a probe value bound to every declared
	// variable; any placeholder outside the declared set fails.
	probe := make(map[string]any, len(tmpl.Variables))
	for _, variable := range tmpl.Variables {
		probe[variable.Name] = probeValue
	}
	if _, err := execute(tmpl, probe); err != nil {
		return &DefinitionError{Template: tmpl.Name, Err: err}
	}
	return nil
}
