package templates

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "example.yaml")

	yaml := `name: example
description: Example template
message: |
  Hello {{.name}}
variables:
  - name: name
    description: Person name
    required: true
`

	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	tmpl, err := LoadTemplate(path)
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}

	if tmpl.Name != "example" {
		t.Fatalf("expected name example, got %q", tmpl.Name)
	}
	if tmpl.Source != path {
		t.Fatalf("expected source %q, got %q", path, tmpl.Source)
	}
	if len(tmpl.Variables) != 1 || tmpl.Variables[0].Name != "name" {
		t.Fatalf("unexpected variables: %+v", tmpl.Variables)
	}
}

func TestLoadTemplatesFromMissingDir(t *testing.T) {
	tmpls, err := LoadTemplatesFromDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("LoadTemplatesFromDir: %v", err)
	}
	if len(tmpls) != 0 {
		t.Fatalf("expected no templates, got %d", len(tmpls))
	}
}

func TestLoadBuiltinTemplates(t *testing.T) {
	tmpls, err := LoadBuiltinTemplates()
	if err != nil {
		t.Fatalf("LoadBuiltinTemplates: %v", err)
	}
	if len(tmpls) != 5 {
		t.Fatalf("expected 5 builtin templates, got %d", len(tmpls))
	}

	for _, tmpl := range tmpls {
		if tmpl.Source != "builtin" {
			t.Fatalf("expected builtin source, got %q", tmpl.Source)
		}
		if tmpl.Name == "" {
			t.Fatalf("builtin template missing name")
		}
	}
}

func TestLoadRegistryUserDirOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	override := `name: post_race
description: Stripped-down override
message: "{{.race_name}}: {{.result}}"
variables:
  - name: race_name
    required: true
  - name: result
    required: true
`
	if err := os.WriteFile(filepath.Join(dir, "post_race.yaml"), []byte(override), 0644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	registry, err := LoadRegistry(dir)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	tmpl, err := registry.Get("post_race")
	if err != nil {
		t.Fatalf("Get(post_race): %v", err)
	}
	if tmpl.Source == "builtin" {
		t.Fatal("expected user template to take precedence over builtin")
	}

	rendered, err := registry.Resolve("post_race", map[string]any{
		"race_name": "Suzuka",
		"result":    "P2",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rendered != "Suzuka: P2" {
		t.Fatalf("unexpected render result: %q", rendered)
	}
}
