// Package shell implements the line-oriented command loop used at the table.
//
// Each input line is split on whitespace; the first word names the command
// and the rest are its arguments. Handled errors are printed and the loop
// carries on with the next line.
package shell

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/arcanaland/wt/internal/deck"
	"github.com/arcanaland/wt/internal/roster"
	"github.com/arcanaland/wt/internal/selection"
)

// Intro is printed when a session starts and Prompt before each line
const (
	Intro  = "Welcome to working-title, have a wonderful day :-)."
	Prompt = "(wt) "
)

// ErrUsage is returned when a command is given the wrong arguments
var ErrUsage = errors.New("usage")

// UnknownCommandError is returned for lines whose first word is not a command
type UnknownCommandError struct {
	Line string
}

func (e *UnknownCommandError) Error() string {
	return "unknown command: " + e.Line
}

// LineReader yields one input line at a time and io.EOF at the end.
// *term.Terminal satisfies it.
type LineReader interface {
	ReadLine() (string, error)
}

// Shell holds the state of one session
type Shell struct {
	deck   *deck.Deck
	roster *roster.Roster
	rng    selection.RNG
	out    io.Writer
	logger *zap.Logger
}

// New returns a shell over a loaded deck. The roster is owned by the shell
// for the rest of the session.
func New(d *deck.Deck, r *roster.Roster, rng selection.RNG, out io.Writer, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		deck:   d,
		roster: r,
		rng:    rng,
		out:    out,
		logger: logger,
	}
}

// Roster returns the session roster
func (s *Shell) Roster() *roster.Roster {
	return s.roster
}

// Execute runs a single command line. quit is true when the line asks the
// session to end.
func (s *Shell) Execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	name, args := fields[0], fields[1:]
	if name == "quit" || name == "exit" {
		return true, nil
	}

	cmd, ok := commands[name]
	if !ok {
		return false, &UnknownCommandError{Line: strings.TrimSpace(line)}
	}
	if cmd.rawArgs {
		// One argument: the rest of the line as typed
		args = nil
		if rest := strings.TrimSpace(strings.TrimSpace(line)[len(name):]); rest != "" {
			args = []string{rest}
		}
	}

	s.logger.Debug("running command", zap.String("command", name), zap.Strings("args", args))
	if len(args) < cmd.minArgs {
		return false, fmt.Errorf("%w: %s", ErrUsage, cmd.usage)
	}
	if err := cmd.run(s, args); err != nil {
		s.logger.Debug("command failed", zap.String("command", name), zap.Error(err))
		return false, err
	}
	return false, nil
}

// Run prints the intro and executes lines until end of input or quit
func (s *Shell) Run(in LineReader) error {
	color.New(color.FgCyan).Fprintln(s.out, Intro)

	for {
		line, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if errors.Is(err, ErrLineTooLong) {
			s.printError(err)
			continue
		}
		if err != nil {
			return err
		}

		quit, err := s.Execute(line)
		if err != nil {
			s.printError(err)
		}
		if quit {
			return nil
		}
	}
}

func (s *Shell) printError(err error) {
	var unknown *UnknownCommandError
	if errors.As(err, &unknown) {
		fmt.Fprintf(s.out, "*** Unknown syntax: %s\n", unknown.Line)
		return
	}
	color.New(color.FgRed).Fprintf(s.out, "Error: %v\n", err)
}

// complete fills in the word under the cursor when exactly one candidate
// matches it. The first word completes to a command, the player argument of
// draw, class and cards to a roster name, and the trailing arguments of draw
// to a card type. pos counts runes, not bytes.
func (s *Shell) complete(line string, pos int, key rune) (string, int, bool) {
	if key != '\t' {
		return "", 0, false
	}
	runes := []rune(line)
	head, rest := string(runes[:pos]), string(runes[pos:])
	start := strings.LastIndex(head, " ") + 1
	word := head[start:]

	var candidates []string
	switch before := strings.Fields(head[:start]); {
	case len(before) == 0:
		candidates = commandNames()
	case len(before) == 1 && takesPlayer(before[0]):
		candidates = s.roster.Names()
	case len(before) >= 3 && before[0] == "draw":
		candidates = s.deck.Types()
	}

	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, word) {
			matches = append(matches, c)
		}
	}
	slices.Sort(matches)
	if matches = slices.Compact(matches); len(matches) != 1 {
		return "", 0, false
	}

	completed := head[:start] + matches[0] + " "
	return completed + rest, len([]rune(completed)), true
}

func takesPlayer(command string) bool {
	switch command {
	case "draw", "class", "cards":
		return true
	}
	return false
}

// formatList renders items as [a, b, c]
func formatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
