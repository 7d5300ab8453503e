package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadTemplate reads a single template definition from disk.
func LoadTemplate(path string) (*Template, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("template path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}

	tmpl, err := parseTemplate(data)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}
	tmpl.Source = path
	return tmpl, nil
}

// LoadTemplatesFromDir loads all template definitions from a
// directory. A missing directory is not an error.
func LoadTemplatesFromDir(dir string) ([]*Template, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Template{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Template{}, nil
		}
		return nil, fmt.Errorf("read templates dir %s: %w", dir, err)
	}

	tmpls := make([]*Template, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		tmpl, err := LoadTemplate(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		tmpls = append(tmpls, tmpl)
	}

	sort.Slice(tmpls, func(i, j int) bool {
		return tmpls[i].Name < tmpls[j].Name
	})

	return tmpls, nil
}

// LoadRegistry builds the process registry. Definitions from dir (when
// set) take precedence over builtins with the same name.
func LoadRegistry(dir string) (*Registry, error) {
	seen := make(map[string]bool)
	merged := make([]*Template, 0)

	user, err := LoadTemplatesFromDir(dir)
	if err != nil {
		return nil, err
	}
	for _, tmpl := range user {
		if seen[tmpl.Name] {
			continue
		}
		seen[tmpl.Name] = true
		merged = append(merged, tmpl)
	}

	builtins, err := LoadBuiltinTemplates()
	if err != nil {
		return nil, err
	}
	for _, tmpl := range builtins {
		if seen[tmpl.Name] {
			continue
		}
		seen[tmpl.Name] = true
		merged = append(merged, tmpl)
	}

	return NewRegistry(merged)
}

func parseTemplate(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, err
	}
	tmpl.Name = strings.TrimSpace(tmpl.Name)
	return &tmpl, nil
}
