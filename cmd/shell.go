package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/wt/internal/shell"
)

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell",
	Long: `Start the interactive shell. Type 'help' at the prompt for the list of commands.

When standard input is not a terminal, commands are read one per line until
end of input, so a game can be scripted:

  printf 'load_cfg party.yaml\ndraw Alice 3\n' | wt shell`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	RootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	sess, err := loadSession()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sh := shell.New(sess.deck, sess.roster, sess.rng, out, logger)

	fd := int(os.Stdin.Fd())
	if cmd.InOrStdin() == os.Stdin && term.IsTerminal(fd) {
		return sh.RunTerminal(fd, struct {
			io.Reader
			io.Writer
		}{os.Stdin, out})
	}
	return sh.Run(shell.NewScannerReader(cmd.InOrStdin(), nil))
}
