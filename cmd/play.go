package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/wt/internal/shell"
)

// shopCmd represents the shop command
var shopCmd = &cobra.Command{
	Use:   "shop [ncards]",
	Short: "Draw cards at random with no consideration for class or type",
	Args:  cobra.ExactArgs(1),
	RunE:  runOnce("shop"),
}

// drawCmd represents the draw command
var drawCmd = &cobra.Command{
	Use:   "draw [player] [ncards] [type...]",
	Short: "Draw cards for a player from the roster",
	Long: `Draw ncards for a player, limited to cards their class may draw and,
when types are given, to cards of those types.

Examples:
  wt draw --roster party.yaml Alice 3
  wt draw --roster party.yaml Alice 2 weapon item`,
	Args: cobra.MinimumNArgs(2),
	RunE: runOnce("draw"),
}

// cardsCmd represents the cards command
var cardsCmd = &cobra.Command{
	Use:   "cards [player]",
	Short: "List the cards a player may draw",
	Args:  cobra.ExactArgs(1),
	RunE:  runOnce("cards"),
}

// classCmd represents the class command
var classCmd = &cobra.Command{
	Use:   "class [player]",
	Short: "Show the class(es) of a player",
	Args:  cobra.ExactArgs(1),
	RunE:  runOnce("class"),
}

// playersCmd represents the players command
var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players in the roster",
	Args:  cobra.NoArgs,
	RunE:  runOnce("players"),
}

func init() {
	RootCmd.AddCommand(shopCmd)
	RootCmd.AddCommand(drawCmd)
	RootCmd.AddCommand(cardsCmd)
	RootCmd.AddCommand(classCmd)
	RootCmd.AddCommand(playersCmd)
}

// runOnce runs a single shell command outside the interactive loop
func runOnce(name string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession()
		if err != nil {
			return err
		}

		sh := shell.New(sess.deck, sess.roster, sess.rng, cmd.OutOrStdout(), logger)
		_, err = sh.Execute(name + " " + strings.Join(args, " "))
		return err
	}
}
