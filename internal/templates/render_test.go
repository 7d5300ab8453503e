package templates

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func postRaceTemplate(t *testing.T) *Template {
	t.Helper()
	builtins, err := LoadBuiltinTemplates()
	if err != nil {
		t.Fatalf("LoadBuiltinTemplates: %v", err)
	}
	for _, tmpl := range builtins {
		if tmpl.Name == "post_race" {
			return tmpl
		}
	}
	t.Fatal("post_race builtin not found")
	return nil
}

func TestRenderAppliesDefaults(t *testing.T) {
	tmpl := &Template{
		Name:    "greet",
		Message: "Hello {{.name}}, have a {{.mood}} day",
		Variables: []TemplateVar{
			{Name: "name", Required: true},
			{Name: "mood", Default: "great"},
		},
	}

	rendered, err := Render(tmpl, map[string]any{"name": "Max"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if rendered != "Hello Max, have a great day" {
		t.Fatalf("unexpected render result: %q", rendered)
	}
}

func TestRenderSuppliedValueOverridesDefault(t *testing.T) {
	tmpl := &Template{
		Name:    "greet",
		Message: "Hello {{.name}}, have a {{.mood}} day",
		Variables: []TemplateVar{
			{Name: "name", Required: true},
			{Name: "mood", Default: "great"},
		},
	}

	rendered, err := Render(tmpl, map[string]any{"name": "Max", "mood": "quiet"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if rendered != "Hello Max, have a quiet day" {
		t.Fatalf("unexpected render result: %q", rendered)
	}
}

func TestRenderEmptyStringCountsAsSupplied(t *testing.T) {
	tmpl := &Template{
		Name:    "echo",
		Message: "[{{.value}}]",
		Variables: []TemplateVar{
			{Name: "value", Required: true},
		},
	}

	rendered, err := Render(tmpl, map[string]any{"value": ""})
	if err != nil {
		t.Fatalf("Render with empty string: %v", err)
	}
	if rendered != "[]" {
		t.Fatalf("unexpected render result: %q", rendered)
	}
}

func TestRenderReportsAllMissingVariables(t *testing.T) {
	tmpl := &Template{
		Name:    "strategy",
		Message: "{{.track}} {{.tires}} {{.fuel}}",
		Variables: []TemplateVar{
			{Name: "track", Required: true},
			{Name: "tires", Required: true},
			{Name: "fuel", Required: true},
		},
	}

	cases := []struct {
		name    string
		vars    map[string]any
		missing []string
	}{
		{
			name:    "all_missing",
			vars:    map[string]any{},
			missing: []string{"fuel", "tires", "track"},
		},
		{
			name:    "one_missing",
			vars:    map[string]any{"track": "Monza", "fuel": "full"},
			missing: []string{"tires"},
		},
		{
			name:    "two_missing",
			vars:    map[string]any{"track": "Monza"},
			missing: []string{"fuel", "tires"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Render(tmpl, tc.vars)
			var missingErr *MissingVariablesError
			if !errors.As(err, &missingErr) {
				t.Fatalf("expected MissingVariablesError, got %v", err)
			}
			if !reflect.DeepEqual(missingErr.Missing, tc.missing) {
				t.Fatalf("Missing = %v, want %v", missingErr.Missing, tc.missing)
			}
		})
	}
}

func TestRenderUndeclaredPlaceholderIsDefinitionError(t *testing.T) {
	tmpl := &Template{
		Name:    "broken",
		Message: "Hello {{.name}} from {{.nowhere}}",
		Variables: []TemplateVar{
			{Name: "name", Required: true},
		},
	}

	_, err := Render(tmpl, map[string]any{"name": "Max"})
	var defErr *DefinitionError
	if !errors.As(err, &defErr) {
		t.Fatalf("expected DefinitionError, got %v", err)
	}
	if defErr.Template != "broken" {
		t.Fatalf("Template = %q, want broken", defErr.Template)
	}
}

func TestRenderStringifiesNonStringValues(t *testing.T) {
	tmpl := &Template{
		Name:    "laps",
		Message: "Completed {{.laps}} laps",
		Variables: []TemplateVar{
			{Name: "laps", Required: true},
		},
	}

	rendered, err := Render(tmpl, map[string]any{"laps": 57})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if rendered != "Completed 57 laps" {
		t.Fatalf("unexpected render result: %q", rendered)
	}
}

func TestRenderPostRaceMonacoScenario(t *testing.T) {
	tmpl := postRaceTemplate(t)

	rendered, err := Render(tmpl, map[string]any{
		"race_name": "Monaco Grand Prix",
		"team":      "Red Bull Racing",
		"result":    "P1",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{"Monaco Grand Prix", "Red Bull Racing", "P1", "neutral"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("rendered text missing %q: %q", want, rendered)
		}
	}
	if strings.Contains(rendered, "{{") || strings.Contains(rendered, "}}") {
		t.Fatalf("unresolved placeholder tokens remain: %q", rendered)
	}
}
