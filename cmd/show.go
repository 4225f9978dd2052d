package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/wt/internal/card"
	"github.com/arcanaland/wt/internal/config"
)

var showCmd = &cobra.Command{
	Use:   "show [card_name]",
	Short: "Display information about a specific card",
	Long: `Show displays the classes, type and text of a card.

You can specify a card source using the --cards flag, which will look for it
in your card library (XDG_DATA_HOME/wt/cards) or as a relative path.
If no source is specified, the default from your config will be used.

Examples:
  wt show Sword
  wt show --cards starter "Healing Potion"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		d, err := loadDeck(cfg)
		if err != nil {
			return err
		}

		c, ok := d.Find(name)
		if !ok {
			return fmt.Errorf("card not found: %s", name)
		}

		displayCard(cmd.OutOrStdout(), c, d.Name, terminalWidth())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// displayCard prints a card with labelled fields and its text wrapped to width
func displayCard(w io.Writer, c card.Card, deckName string, width int) {
	label := colorize.New(colorize.FgCyan).SprintFunc()
	value := colorize.New(colorize.FgHiWhite).SprintfFunc()

	classes := "none (shop only)"
	if len(c.Classes) > 0 {
		classes = strings.Join(c.Classes, ", ")
	}
	cardType := c.Type
	if cardType == "" {
		cardType = "untyped"
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s%s\n", label("Card:    "), value("%s", c.Name))
	fmt.Fprintf(w, "  %s%s\n", label("Deck:    "), value("%s", deckName))
	fmt.Fprintf(w, "  %s%s\n", label("Type:    "), value("%s", cardType))
	fmt.Fprintf(w, "  %s%s\n", label("Classes: "), value("%s", classes))

	if c.Text != "" {
		fmt.Fprintln(w)
		// Leave the two character indent as a margin
		for _, line := range wrapText(c.Text, width-4) {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	fmt.Fprintln(w)
}
