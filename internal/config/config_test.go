package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/wt/internal/config"
)

func isolate(t *testing.T) (dataHome, configHome string) {
	t.Helper()
	dataHome = t.TempDir()
	configHome = t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("WT_CARDS_PATH", "")
	t.Setenv("WT_ROSTER_PATH", "")
	t.Setenv("WT_SEED", "")
	os.Unsetenv("WT_CARDS_PATH")
	os.Unsetenv("WT_ROSTER_PATH")
	os.Unsetenv("WT_SEED")
	return dataHome, configHome
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	dataHome, configHome := isolate(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dataHome, "wt", "cards"), cfg.CardsPath)
	assert.Empty(t, cfg.RosterPath)
	assert.Zero(t, cfg.Seed)
	assert.FileExists(t, filepath.Join(configHome, "wt", "config.toml"))
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	_, configHome := isolate(t)
	dir := filepath.Join(configHome, "wt")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
cards_path = "/srv/cards"
roster_path = "/srv/party.yaml"
seed = 99
`), 0644))

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, &config.Config{CardsPath: "/srv/cards", RosterPath: "/srv/party.yaml", Seed: 99}, cfg)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("WT_CARDS_PATH", "/env/cards")
	t.Setenv("WT_SEED", "7")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/env/cards", cfg.CardsPath)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestLoadConfig_BadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("WT_SEED", "not-a-number")

	_, err := config.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestSetCardsPath_IgnoresEnv(t *testing.T) {
	isolate(t)
	t.Setenv("WT_SEED", "5")

	require.NoError(t, config.SetCardsPath("/new/cards"))
	os.Unsetenv("WT_SEED")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/new/cards", cfg.CardsPath)
	assert.Zero(t, cfg.Seed, "env override must not be persisted")
}

func TestResolveCardsPath(t *testing.T) {
	dataHome, _ := isolate(t)
	library := filepath.Join(dataHome, "wt", "cards")
	require.NoError(t, os.MkdirAll(filepath.Join(library, "core"), 0755))

	got, err := config.ResolveCardsPath("core")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(library, "core"), got)

	local := filepath.Join(t.TempDir(), "local.toml")
	require.NoError(t, os.WriteFile(local, nil, 0644))
	got, err = config.ResolveCardsPath(local)
	require.NoError(t, err)
	assert.Equal(t, local, got)

	_, err = config.ResolveCardsPath("nowhere")
	require.Error(t, err)
}
