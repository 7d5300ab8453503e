package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raceday-ai/racerd/internal/templates"
)

var renderVars []string

func init() {
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(renderCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesShowCmd)

	renderCmd.Flags().StringArrayVar(&renderVars, "var", nil, "template variable as key=value (repeatable)")
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect and render post templates",
	Long:  "List, show and render post templates without a running daemon.",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := localRegistry()
		if err != nil {
			return err
		}

		rows := make([][]string, 0, registry.Len())
		for _, tmpl := range registry.All() {
			rows = append(rows, []string{
				tmpl.Name,
				tmpl.Source,
				strconv.Itoa(len(tmpl.RequiredVars())),
				strconv.Itoa(len(tmpl.OptionalVars())),
				tmpl.Description,
			})
		}
		return writeTable(os.Stdout, []string{"NAME", "SOURCE", "REQUIRED", "OPTIONAL", "DESCRIPTION"}, rows)
	},
}

var templatesShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a template definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := localRegistry()
		if err != nil {
			return err
		}
		tmpl, err := registry.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Name:        %s\n", tmpl.Name)
		if tmpl.Description != "" {
			fmt.Printf("Description: %s\n", tmpl.Description)
		}
		if tmpl.Source != "" {
			fmt.Printf("Source:      %s\n", tmpl.Source)
		}
		if len(tmpl.Tags) > 0 {
			fmt.Printf("Tags:        %s\n", strings.Join(tmpl.Tags, ", "))
		}
		fmt.Printf("\nMessage:\n%s\n", strings.TrimRight(tmpl.Message, "\n"))

		if len(tmpl.Variables) == 0 {
			return nil
		}
		fmt.Println("\nVariables:")
		rows := make([][]string, 0, len(tmpl.Variables))
		for _, v := range tmpl.Variables {
			rows = append(rows, []string{v.Name, formatYesNo(v.Required), v.Default, v.Description})
		}
		return writeTable(os.Stdout, []string{"NAME", "REQUIRED", "DEFAULT", "DESCRIPTION"}, rows)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render NAME",
	Short: "Render a template locally",
	Long:  "Render a template with --var key=value pairs, without a running daemon or stored context.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := localRegistry()
		if err != nil {
			return err
		}
		vars, err := parseVars(renderVars)
		if err != nil {
			return err
		}

		text, err := registry.Resolve(args[0], vars)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

func localRegistry() (*templates.Registry, error) {
	return templates.LoadRegistry(GetConfig().Templates.Dir)
}

func parseVars(pairs []string) (map[string]any, error) {
	vars := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid --var %q, expected key=value", pair)
		}
		vars[strings.TrimSpace(key)] = value
	}
	return vars, nil
}
