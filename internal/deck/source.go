package deck

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"github.com/arcanaland/wt/internal/card"
)

// Source is the raw content of a card source before any checks
type Source struct {
	Name        string
	Description string
	Entries     []Entry
}

// Entry is a card as written in its source file
type Entry struct {
	Name    string   `toml:"name" yaml:"name"`
	Classes []string `toml:"classes" yaml:"classes"`
	Type    string   `toml:"type" yaml:"type"`
	Text    string   `toml:"text" yaml:"text"`

	File     string `toml:"-" yaml:"-"` // Source file
	Position int    `toml:"-" yaml:"-"` // 1-based position within File
}

// Card converts the entry to an immutable card
func (e Entry) Card() card.Card {
	return card.Card{
		Name:    e.Name,
		Classes: e.Classes,
		Type:    e.Type,
		Text:    e.Text,
	}
}

// Card file structures
type cardFile struct {
	Deck  DeckSection `toml:"deck" yaml:"deck"`
	Cards []Entry     `toml:"card" yaml:"cards"`
}

// DeckSection is the optional [deck] table of a card file
type DeckSection struct {
	Name        string `toml:"name" yaml:"name"`
	Description string `toml:"description" yaml:"description"`
}

// ReadSource reads a card directory or file without validating the cards
func ReadSource(path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		src, err := readFile(path)
		if err != nil {
			return nil, err
		}
		if src.Name == "" {
			src.Name = defaultName(path)
		}
		return src, nil
	}

	src := &Source{Name: defaultName(path)}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading card directory: %v", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !IsCardFile(entry.Name()) {
			continue
		}

		fileSrc, err := readFile(filepath.Join(path, entry.Name()))
		if err != nil {
			return nil, err
		}

		// deck.toml names the whole directory
		if entry.Name() == "deck.toml" {
			if fileSrc.Name != "" {
				src.Name = fileSrc.Name
			}
			src.Description = fileSrc.Description
		}
		src.Entries = append(src.Entries, fileSrc.Entries...)
	}

	return src, nil
}

// IsCardFile reports whether name has an extension LoadDeck understands
func IsCardFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml", ".yaml", ".yml", ".db", ".sqlite":
		return true
	}
	return false
}

func readFile(path string) (*Source, error) {
	var (
		f   cardFile
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.DecodeFile(path, &f)
	case ".yaml", ".yml":
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			err = yaml.Unmarshal(data, &f)
		}
	case ".db", ".sqlite":
		return readSQLite(path)
	default:
		return nil, fmt.Errorf("unsupported card file: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", path, err)
	}

	src := &Source{Name: f.Deck.Name, Description: f.Deck.Description, Entries: f.Cards}
	for i := range src.Entries {
		src.Entries[i].File = path
		src.Entries[i].Position = i + 1
	}
	return src, nil
}

// readSQLite reads cards(name, classes, type, text) in rowid order.
// classes holds a comma separated list.
func readSQLite(path string) (*Source, error) {
	// sql.Open would create a missing database
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %v", path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT name, COALESCE(classes, ''), COALESCE(type, ''), COALESCE(text, '') FROM cards ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %v", path, err)
	}
	defer rows.Close()

	src := &Source{}
	for rows.Next() {
		var (
			e       Entry
			classes string
		)
		if err := rows.Scan(&e.Name, &classes, &e.Type, &e.Text); err != nil {
			return nil, fmt.Errorf("reading %s: %v", path, err)
		}
		e.Classes = SplitClasses(classes)
		e.File = path
		e.Position = len(src.Entries) + 1
		src.Entries = append(src.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %v", path, err)
	}

	return src, nil
}

// SplitClasses parses a comma separated class list
func SplitClasses(s string) []string {
	var classes []string
	for _, class := range strings.Split(s, ",") {
		if class = strings.TrimSpace(class); class != "" {
			classes = append(classes, class)
		}
	}
	return classes
}
