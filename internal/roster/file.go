package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rosterFile is the on-disk layout:
//
//	players:
//	  Alice:
//	    class: Warrior
//	  Bob:
//	    class: [Mage, Rogue]
type rosterFile struct {
	Players yaml.Node `yaml:"players"`
}

type playerEntry struct {
	Class classList `yaml:"class"`
}

// classList accepts either a single class or a list of classes
type classList []string

func (c *classList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*c = classList{value.Value}
		return nil
	case yaml.SequenceNode:
		var classes []string
		if err := value.Decode(&classes); err != nil {
			return err
		}
		*c = classes
		return nil
	default:
		return fmt.Errorf("line %d: class must be a name or a list of names", value.Line)
	}
}

// LoadFile parses a roster file. Players are returned in document order.
func LoadFile(path string) ([]Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes roster YAML
func Parse(data []byte) ([]Player, error) {
	var f rosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigFormat, err)
	}
	if f.Players.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: missing players mapping", ErrConfigFormat)
	}

	players := make([]Player, 0, len(f.Players.Content)/2)
	for i := 0; i+1 < len(f.Players.Content); i += 2 {
		key, value := f.Players.Content[i], f.Players.Content[i+1]
		name := key.Value

		var entry playerEntry
		if err := value.Decode(&entry); err != nil {
			return nil, fmt.Errorf("%w: player %s: %v", ErrConfigFormat, name, err)
		}
		if len(entry.Class) == 0 {
			return nil, fmt.Errorf("%w: player %s has no class", ErrConfigFormat, name)
		}
		for _, class := range entry.Class {
			if class == "" {
				return nil, fmt.Errorf("%w: player %s has an empty class", ErrConfigFormat, name)
			}
		}
		players = append(players, Player{Name: name, Classes: entry.Class})
	}
	return players, nil
}
