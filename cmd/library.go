package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/wt/internal/config"
	"github.com/arcanaland/wt/internal/deck"
)

// libraryCmd represents the library command group
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage card sources in your card library",
	Long:  `Commands for managing card directories and card files in your card library.`,
}

// libraryListCmd represents the library ls command
var libraryListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available card sources in your card library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetCardLibraryPath()

		// Check if card library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Card library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'wt library init' to create it.")
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading card library: %v", err)
		}

		found := 0
		for _, entry := range entries {
			entryPath := filepath.Join(libraryPath, entry.Name())
			if !entry.IsDir() && !deck.IsCardFile(entry.Name()) {
				continue
			}

			d, err := deck.LoadDeck(entryPath)
			if err != nil {
				logger.Debug("skipping card source", zap.String("path", entryPath), zap.Error(err))
				continue
			}
			found++

			marker, suffix := " ", ""
			if sameFile(entryPath, cfg.CardsPath) {
				marker, suffix = "*", " [DEFAULT]"
			}
			fmt.Fprintf(out, "%s %s (%s: %d cards, %d classes)%s\n",
				marker, entry.Name(), d.Name, len(d.Cards), len(d.Classes()), suffix)
			if d.Description != "" {
				fmt.Fprintf(out, "    %s\n", d.Description)
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No card sources found in your card library.")
			fmt.Fprintln(out, "You can add cards by copying them to:", libraryPath)
		}
		return nil
	},
}

// librarySetDefaultCmd represents the library set-default command
var librarySetDefaultCmd = &cobra.Command{
	Use:   "set-default [name_or_path]",
	Short: "Set the default card source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ResolveCardsPath(args[0])
		if err != nil {
			return err
		}

		// Try to load the cards to make sure they're valid
		if _, err := deck.LoadDeck(path); err != nil {
			return err
		}

		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if err := config.SetCardsPath(path); err != nil {
			return fmt.Errorf("error setting default card source: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default card source set to: %s\n", path)
		return nil
	},
}

// libraryInitCmd represents the library init command
var libraryInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the card library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetCardLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating card library: %v", err)
		}

		fmt.Fprintln(out, "Card library initialized at:", libraryPath)
		fmt.Fprintln(out, "You can now add card directories or files to this directory.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}

		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(librarySetDefaultCmd)
	libraryCmd.AddCommand(libraryInitCmd)
}

// sameFile reports whether a and b name the same path after resolving links
func sameFile(a, b string) bool {
	if b == "" {
		return false
	}
	ra, errA := filepath.EvalSymlinks(a)
	rb, errB := filepath.EvalSymlinks(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return ra == rb
}
