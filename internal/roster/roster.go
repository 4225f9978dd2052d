// Package roster tracks the players of a session and their classes.
package roster

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrUnknownPlayer is returned when no player has the requested name
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrConfigFormat is returned for a roster file that does not have the expected shape
	ErrConfigFormat = errors.New("malformed roster file")
)

// Player is a named participant and the classes they play
type Player struct {
	Name    string
	Classes []string
}

// Roster is an ordered collection of players. Names are not required to be
// unique; lookups resolve to the first player added under a name.
type Roster struct {
	players []Player
	first   map[string]int
}

// New returns an empty roster
func New() *Roster {
	return &Roster{first: make(map[string]int)}
}

// Add appends a player and returns its position
func (r *Roster) Add(name string, classes ...string) int {
	pos := len(r.players)
	r.players = append(r.players, Player{Name: name, Classes: slices.Clone(classes)})
	if _, ok := r.first[name]; !ok {
		r.first[name] = pos
	}
	return pos
}

// Index returns the position of the first player called name
func (r *Roster) Index(name string) (int, error) {
	pos, ok := r.first[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPlayer, name)
	}
	return pos, nil
}

// Find returns the first player called name
func (r *Roster) Find(name string) (Player, bool) {
	pos, ok := r.first[name]
	if !ok {
		return Player{}, false
	}
	return r.players[pos], true
}

// Names returns player names in insertion order
func (r *Roster) Names() []string {
	names := make([]string, len(r.players))
	for i, p := range r.players {
		names[i] = p.Name
	}
	return names
}

// Len returns the number of players, counting shadowed duplicates
func (r *Roster) Len() int {
	return len(r.players)
}

// Load reads a roster file and appends its players. The file is parsed and
// checked in full first, so a malformed file leaves the roster unchanged.
func (r *Roster) Load(path string) (int, error) {
	players, err := LoadFile(path)
	if err != nil {
		return 0, err
	}
	for _, p := range players {
		r.Add(p.Name, p.Classes...)
	}
	return len(players), nil
}
