package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raceday-ai/racerd/internal/client"
)

var (
	generateVars []string
	contextVars  []string
	simulateVars []string
	likeUserID   string
)

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(contextCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(actionsCmd)

	contextCmd.AddCommand(contextGetCmd)
	contextCmd.AddCommand(contextSetCmd)

	generateCmd.Flags().StringArrayVar(&generateVars, "var", nil, "per-request value as key=value (repeatable)")
	contextSetCmd.Flags().StringArrayVar(&contextVars, "var", nil, "context value as key=value (repeatable)")
	simulateCmd.Flags().StringArrayVar(&simulateVars, "var", nil, "action detail as key=value (repeatable)")
	likeCmd.Flags().StringVar(&likeUserID, "user", "", "user id performing the like")
}

var generateCmd = &cobra.Command{
	Use:   "generate TEMPLATE",
	Short: "Generate a post via a running daemon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vars, err := parseVars(generateVars)
		if err != nil {
			return err
		}

		resp, err := client.New(serverBaseURL()).Generate(cmd.Context(), args[0], vars)
		if err != nil {
			return err
		}
		return printData(resp)
	},
}

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Inspect and update the agent context",
}

var contextGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current agent context",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.New(serverBaseURL()).GetContext(cmd.Context())
		if err != nil {
			return err
		}
		return printData(resp)
	},
}

var contextSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Merge --var key=value pairs into the agent context",
	RunE: func(cmd *cobra.Command, args []string) error {
		vars, err := parseVars(contextVars)
		if err != nil {
			return err
		}
		if len(vars) == 0 {
			return fmt.Errorf("at least one --var key=value is required")
		}

		resp, err := client.New(serverBaseURL()).UpdateContext(cmd.Context(), vars)
		if err != nil {
			return err
		}
		return printData(resp)
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate ACTION",
	Short: "Simulate a social media action",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := parseVars(simulateVars)
		if err != nil {
			return err
		}

		resp, err := client.New(serverBaseURL()).Simulate(cmd.Context(), args[0], data)
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
		return nil
	},
}

var likeCmd = &cobra.Command{
	Use:   "like POST_ID",
	Short: "Simulate liking a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.New(serverBaseURL()).SimulateLike(cmd.Context(), args[0], likeUserID)
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
		return nil
	},
}

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List recent simulated actions",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.New(serverBaseURL()).Actions(cmd.Context())
		if err != nil {
			return err
		}
		return printData(resp)
	},
}

func printData(resp *client.Response) error {
	if len(resp.Data) == 0 {
		fmt.Println(resp.Message)
		return nil
	}
	var pretty map[string]any
	if err := json.Unmarshal(resp.Data, &pretty); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
