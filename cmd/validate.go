package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/wt/internal/config"
	"github.com/arcanaland/wt/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card source",
	Long: `Validate checks that a card directory or card file can be loaded and that
every card can be drawn. Without a path the configured card source is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var deckPath string
		if len(args) == 1 {
			deckPath = args[0]
		} else {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("error loading config: %v", err)
			}
			if deckPath, err = cardsPath(cfg); err != nil {
				return err
			}
		}

		// Create validator and run validation
		v := validator.NewValidator(deckPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Cards in '%s' are valid.\n", deckPath)
		} else {
			fmt.Fprintf(out, "❌ Cards in '%s' have %d validation errors:\n", deckPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
