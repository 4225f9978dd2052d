package cmd

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/arcanaland/wt/internal/config"
	"github.com/arcanaland/wt/internal/deck"
	"github.com/arcanaland/wt/internal/random"
	"github.com/arcanaland/wt/internal/roster"
)

// session is everything a shell needs, resolved from flags, environment and
// the config file in that order of precedence
type session struct {
	deck   *deck.Deck
	roster *roster.Roster
	rng    *rand.Rand
}

// cardsPath picks the card source from the --cards flag or the config.
// A source that cannot be found is an ErrDataLoad.
func cardsPath(cfg *config.Config) (string, error) {
	if cardsFlag != "" {
		path, err := config.ResolveCardsPath(cardsFlag)
		if err != nil {
			return "", fmt.Errorf("%w: %v", deck.ErrDataLoad, err)
		}
		return path, nil
	}
	if cfg.CardsPath == "" {
		return "", fmt.Errorf("%w: no card source configured; pass --cards or run 'wt library set-default'", deck.ErrDataLoad)
	}
	return cfg.CardsPath, nil
}

func loadDeck(cfg *config.Config) (*deck.Deck, error) {
	path, err := cardsPath(cfg)
	if err != nil {
		return nil, err
	}

	d, err := deck.LoadDeck(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded cards", zap.String("deck", d.Name), zap.String("path", path), zap.Int("cards", len(d.Cards)))
	return d, nil
}

func loadSession() (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	d, err := loadDeck(cfg)
	if err != nil {
		return nil, err
	}

	r := roster.New()
	rosterPath := cfg.RosterPath
	if rosterFlag != "" {
		rosterPath = rosterFlag
	}
	if rosterPath != "" {
		n, err := r.Load(rosterPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded roster", zap.String("path", rosterPath), zap.Int("players", n))
	}

	seed := cfg.Seed
	if seedFlag != 0 {
		seed = seedFlag
	}
	rng, seed, err := random.New(seed)
	if err != nil {
		return nil, err
	}
	logger.Debug("seeded card draws", zap.Uint64("seed", seed))

	return &session{deck: d, roster: r, rng: rng}, nil
}
