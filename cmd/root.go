package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/wt/internal/logging"
)

var (
	// Global flags
	cardsFlag  string
	rosterFlag string
	seedFlag   uint64
	verbose    bool

	logger = zap.NewNop()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "wt",
	Short: "Card drawing aid for tabletop games",
	Long: `wt (working-title) keeps track of the players at the table and their classes,
and draws random cards for them from a card library.

Run without arguments to start the interactive shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&cardsFlag, "cards", "c", "", "Card source: a library entry, a directory or a card file")
	RootCmd.PersistentFlags().StringVarP(&rosterFlag, "roster", "r", "", "Roster file to load at startup")
	RootCmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "Seed for card draws (0 picks a random seed)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		return fmt.Errorf("wt: %w", err)
	}
	return nil
}
