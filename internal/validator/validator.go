package validator

import (
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/wt/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Results  ValidationResults

	source *deck.Source
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.readSource(); err != nil {
		return v.Results, err
	}

	v.validateLayout()
	v.validateNames()
	v.validateClasses()
	v.validateTypes()

	return v.Results, nil
}

func (v *Validator) readSource() error {
	if _, err := os.Stat(v.DeckPath); os.IsNotExist(err) {
		return fmt.Errorf("card source not found: %s", v.DeckPath)
	}

	src, err := deck.ReadSource(v.DeckPath)
	if err != nil {
		return fmt.Errorf("error reading card source: %v", err)
	}
	v.source = src

	if len(src.Entries) == 0 {
		v.Results.Errors = append(v.Results.Errors, "no cards found")
	}
	return nil
}

// validateLayout warns about files in a card directory that will be ignored
func (v *Validator) validateLayout() {
	info, err := os.Stat(v.DeckPath)
	if err != nil || !info.IsDir() {
		return
	}

	entries, err := os.ReadDir(v.DeckPath)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("error reading card directory: %v", err))
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("subdirectory %s is not searched for cards", entry.Name()))
		} else if !deck.IsCardFile(entry.Name()) && !strings.HasPrefix(entry.Name(), ".") {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("ignoring %s (not a card file)", entry.Name()))
		}
	}
}

// validateNames checks that every card is named and flags shadowed names
func (v *Validator) validateNames() {
	seen := make(map[string]string)
	for _, e := range v.source.Entries {
		if strings.TrimSpace(e.Name) == "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s: card %d has no name", e.File, e.Position))
			continue
		}

		if where, ok := seen[e.Name]; ok {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: card %q is also defined in %s; show will only find the first", location(e), e.Name, where))
			continue
		}
		seen[e.Name] = location(e)
	}
}

// validateClasses checks that every card can be drawn by someone
func (v *Validator) validateClasses() {
	for _, e := range v.source.Entries {
		if len(e.Classes) == 0 {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: card %q has no classes and can only be bought in the shop", location(e), e.Name))
			continue
		}

		for _, class := range e.Classes {
			if strings.TrimSpace(class) == "" {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("%s: card %q has an empty class", location(e), e.Name))
			} else if class != strings.TrimSpace(class) {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("%s: class %q of card %q has surrounding spaces", location(e), class, e.Name))
			}
		}
	}
}

// validateTypes warns about cards a type filter can never select
func (v *Validator) validateTypes() {
	for _, e := range v.source.Entries {
		if e.Type == "" {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: card %q has no type", location(e), e.Name))
		}
	}
}

func location(e deck.Entry) string {
	return fmt.Sprintf("%s:%d", e.File, e.Position)
}
