package shell

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/arcanaland/wt/internal/card"
	"github.com/arcanaland/wt/internal/roster"
	"github.com/arcanaland/wt/internal/selection"
)

type command struct {
	usage   string
	help    string
	minArgs int
	rawArgs bool // pass the rest of the line as a single argument
	run     func(s *Shell, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"load_cfg": {
			usage:   "load_cfg PATH",
			help:    "Load players and their classes from a roster file.",
			minArgs: 1,
			rawArgs: true,
			run:     (*Shell).loadConfig,
		},
		"shop": {
			usage:   "shop NCARDS",
			help:    "Draw NCARDS at random with no consideration for class or type.",
			minArgs: 1,
			run:     (*Shell).shop,
		},
		"draw": {
			usage:   "draw PLAYER NCARDS [TYPE...]",
			help:    "Draw NCARDS for PLAYER, optionally limited to the given card types.",
			minArgs: 2,
			run:     (*Shell).draw,
		},
		"players": {
			usage: "players",
			help:  "Print the names of the players in this game.",
			run:   (*Shell).players,
		},
		"class": {
			usage:   "class PLAYER",
			help:    "Reveal the class(es) of the given player.",
			minArgs: 1,
			run:     (*Shell).class,
		},
		"cards": {
			usage:   "cards PLAYER",
			help:    "Print the cards PLAYER may draw.",
			minArgs: 1,
			run:     (*Shell).cards,
		},
		"add_player": {
			usage:   "add_player NAME [CLASS...]",
			help:    "Add a player to the game with the given classes.",
			minArgs: 1,
			run:     (*Shell).addPlayer,
		},
		"help": {
			usage: "help [COMMAND]",
			help:  "List available commands or describe one.",
			run:   (*Shell).help,
		},
	}
}

func (s *Shell) loadConfig(args []string) error {
	path := args[0]
	n, err := s.roster.Load(path)
	if err != nil {
		return err
	}
	s.logger.Debug("loaded roster", zap.String("path", path), zap.Int("players", n), zap.Int("total", s.roster.Len()))
	return nil
}

func (s *Shell) shop(args []string) error {
	n, err := parseCount(args[0])
	if err != nil {
		return err
	}

	drawn, err := selection.Draw(s.deck.Cards, n, s.rng)
	if err != nil {
		return err
	}
	for _, c := range drawn {
		fmt.Fprintln(s.out, c.Name)
	}
	return nil
}

func (s *Shell) draw(args []string) error {
	p, err := s.player(args[0])
	if err != nil {
		return err
	}
	n, err := parseCount(args[1])
	if err != nil {
		return err
	}
	types := args[2:]

	var drawn []card.Card
	if len(p.Classes) == 1 {
		drawn, err = selection.PrepAndDraw(s.deck.Cards, p.Classes[0], types, n, s.rng)
	} else {
		drawn, err = selection.Draw(selection.FilterForClasses(s.deck.Cards, p.Classes, types), n, s.rng)
	}
	if err != nil {
		return fmt.Errorf("drawing for %s: %w", p.Name, err)
	}

	fmt.Fprintln(s.out, formatList(card.Names(drawn)))
	return nil
}

func (s *Shell) players(_ []string) error {
	fmt.Fprintln(s.out, formatList(s.roster.Names()))
	return nil
}

func (s *Shell) class(args []string) error {
	p, err := s.player(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, formatList(p.Classes))
	return nil
}

func (s *Shell) cards(args []string) error {
	p, err := s.player(args[0])
	if err != nil {
		return err
	}
	for _, c := range selection.FilterForClasses(s.deck.Cards, p.Classes, nil) {
		fmt.Fprintln(s.out, c.Name)
	}
	return nil
}

func (s *Shell) addPlayer(args []string) error {
	name, classes := args[0], args[1:]
	s.roster.Add(name, classes...)
	color.New(color.FgGreen).Fprintf(s.out, "%s with class(es) %s added.\n", name, formatList(classes))
	return nil
}

func (s *Shell) help(args []string) error {
	if len(args) > 0 {
		cmd, ok := commands[args[0]]
		if !ok {
			return fmt.Errorf("%w: no help for %s", ErrUsage, args[0])
		}
		fmt.Fprintf(s.out, "%s\n  %s\n", cmd.usage, cmd.help)
		return nil
	}

	fmt.Fprintln(s.out, "Commands:")
	for _, name := range commandNames() {
		fmt.Fprintf(s.out, "  %-28s %s\n", commands[name].usage, commands[name].help)
	}
	fmt.Fprintf(s.out, "  %-28s %s\n", "quit", "Leave the shell.")
	return nil
}

// player resolves a name to the first matching roster entry
func (s *Shell) player(name string) (roster.Player, error) {
	p, ok := s.roster.Find(name)
	if !ok {
		return roster.Player{}, fmt.Errorf("%w: %s", roster.ErrUnknownPlayer, name)
	}
	return p, nil
}

func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: card count must be a whole number, got %q", ErrUsage, arg)
	}
	return n, nil
}
