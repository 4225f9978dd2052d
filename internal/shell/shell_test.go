package shell_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/wt/internal/card"
	"github.com/arcanaland/wt/internal/deck"
	"github.com/arcanaland/wt/internal/roster"
	"github.com/arcanaland/wt/internal/selection"
	"github.com/arcanaland/wt/internal/shell"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// firstRNG always picks the lowest remaining position, so draws come out in
// pool order.
type firstRNG struct{}

func (firstRNG) IntN(int) int { return 0 }

func testDeck() *deck.Deck {
	return &deck.Deck{Name: "test", Cards: []card.Card{
		{Name: "Sword", Classes: []string{"Warrior"}, Type: "weapon"},
		{Name: "Spellbook", Classes: []string{"Mage"}, Type: "item"},
		{Name: "Staff", Classes: []string{"Mage", "Warrior"}, Type: "weapon"},
		{Name: "Potion", Classes: []string{"Warrior", "Mage", "Rogue"}, Type: "item"},
		{Name: "Dagger", Classes: []string{"Rogue"}, Type: "weapon"},
	}}
}

func newShell() (*shell.Shell, *bytes.Buffer) {
	var out bytes.Buffer
	return shell.New(testDeck(), roster.New(), firstRNG{}, &out, nil), &out
}

func exec(t *testing.T, s *shell.Shell, line string) {
	t.Helper()
	quit, err := s.Execute(line)
	require.NoError(t, err, line)
	require.False(t, quit)
}

func TestAddPlayerAndQueries(t *testing.T) {
	s, out := newShell()

	exec(t, s, "add_player Alice Warrior")
	exec(t, s, "add_player Bob Mage Rogue")
	exec(t, s, "players")
	exec(t, s, "class Bob")
	exec(t, s, "cards Alice")

	assert.Equal(t, strings.Join([]string{
		"Alice with class(es) [Warrior] added.",
		"Bob with class(es) [Mage, Rogue] added.",
		"[Alice, Bob]",
		"[Mage, Rogue]",
		"Sword",
		"Staff",
		"Potion",
		"",
	}, "\n"), out.String())
}

func TestDraw(t *testing.T) {
	s, out := newShell()
	exec(t, s, "add_player Alice Warrior")
	out.Reset()

	exec(t, s, "draw Alice 2")
	exec(t, s, "draw Alice 1 item")
	exec(t, s, "draw Alice 0")

	assert.Equal(t, "[Sword, Staff]\n[Potion]\n[]\n", out.String())
}

func TestDraw_MultiClassPlayer(t *testing.T) {
	s, out := newShell()
	exec(t, s, "add_player Bob Mage Rogue")
	out.Reset()

	exec(t, s, "draw Bob 4 item weapon")
	assert.Equal(t, "[Spellbook, Staff, Potion, Dagger]\n", out.String())
}

func TestDraw_Errors(t *testing.T) {
	s, out := newShell()
	exec(t, s, "add_player Alice Warrior")
	exec(t, s, "add_player Nobody Bard")
	out.Reset()

	_, err := s.Execute("draw Bob 1")
	require.ErrorIs(t, err, roster.ErrUnknownPlayer)

	_, err = s.Execute("draw Alice 4")
	require.ErrorIs(t, err, selection.ErrInsufficientPool)

	_, err = s.Execute("draw Nobody 1")
	require.ErrorIs(t, err, selection.ErrInsufficientPool)

	_, err = s.Execute("draw Alice two")
	require.ErrorIs(t, err, shell.ErrUsage)

	_, err = s.Execute("draw Alice -1")
	require.ErrorIs(t, err, selection.ErrInvalidCount)

	_, err = s.Execute("draw Alice")
	require.ErrorIs(t, err, shell.ErrUsage)

	assert.Empty(t, out.String(), "failed draws must not print partial results")
}

func TestShop(t *testing.T) {
	s, out := newShell()

	exec(t, s, "shop 3")
	assert.Equal(t, "Sword\nSpellbook\nStaff\n", out.String())

	_, err := s.Execute("shop 6")
	require.ErrorIs(t, err, selection.ErrInsufficientPool)

	_, err = s.Execute("shop")
	require.ErrorIs(t, err, shell.ErrUsage)
}

func TestUnknownPlayerQueries(t *testing.T) {
	s, _ := newShell()

	for _, line := range []string{"class Zed", "cards Zed"} {
		_, err := s.Execute(line)
		require.ErrorIs(t, err, roster.ErrUnknownPlayer, line)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "party.yaml")
	require.NoError(t, os.WriteFile(path, []byte("players:\n  Alice:\n    class: Warrior\n  Bob:\n    class: Mage\n"), 0644))

	s, out := newShell()
	exec(t, s, "load_cfg "+path)
	assert.Empty(t, out.String())
	assert.Equal(t, []string{"Alice", "Bob"}, s.Roster().Names())

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("players:\n  Carol: {}\n"), 0644))
	_, err := s.Execute("load_cfg " + bad)
	require.ErrorIs(t, err, roster.ErrConfigFormat)
	assert.Equal(t, []string{"Alice", "Bob"}, s.Roster().Names())
}

func TestLoadConfig_PathWithSpaces(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "game  night")
	require.NoError(t, os.Mkdir(dir, 0755))
	path := filepath.Join(dir, "party.yaml")
	require.NoError(t, os.WriteFile(path, []byte("players:\n  Alice:\n    class: Warrior\n"), 0644))

	s, _ := newShell()
	exec(t, s, "load_cfg   "+path+"  ")
	assert.Equal(t, []string{"Alice"}, s.Roster().Names())

	_, err := s.Execute("load_cfg   ")
	require.ErrorIs(t, err, shell.ErrUsage)
}

func TestUnknownCommand(t *testing.T) {
	s, _ := newShell()

	_, err := s.Execute("  dance wildly ")
	var unknown *shell.UnknownCommandError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "dance wildly", unknown.Line)
}

func TestHelp(t *testing.T) {
	s, out := newShell()

	exec(t, s, "help")
	for _, name := range []string{"load_cfg", "shop", "draw", "players", "class", "cards", "add_player", "quit"} {
		assert.Contains(t, out.String(), name)
	}

	out.Reset()
	exec(t, s, "help draw")
	assert.Equal(t, "draw PLAYER NCARDS [TYPE...]\n  Draw NCARDS for PLAYER, optionally limited to the given card types.\n", out.String())

	_, err := s.Execute("help juggle")
	require.ErrorIs(t, err, shell.ErrUsage)
}

func TestExecute_QuitAndBlank(t *testing.T) {
	s, _ := newShell()

	for _, line := range []string{"quit", "exit"} {
		quit, err := s.Execute(line)
		require.NoError(t, err)
		assert.True(t, quit, line)
	}

	quit, err := s.Execute("   ")
	require.NoError(t, err)
	assert.False(t, quit)
}

func TestRun_Session(t *testing.T) {
	s, out := newShell()
	input := strings.Join([]string{
		"add_player Alice Warrior",
		"",
		"draw Alice 9",
		"class Bob",
		"frobnicate",
		"draw Alice 1 weapon",
		"quit",
		"players",
	}, "\n")

	require.NoError(t, s.Run(shell.NewScannerReader(strings.NewReader(input), nil)))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, shell.Intro+"\n"))
	assert.Contains(t, got, "Error: drawing for Alice: not enough eligible cards to draw from: requested 9, pool has 3\n")
	assert.Contains(t, got, "Error: unknown player: Bob\n")
	assert.Contains(t, got, "*** Unknown syntax: frobnicate\n")
	assert.Contains(t, got, "[Sword]\n")
	// Nothing runs after quit.
	assert.NotContains(t, got, "[Alice]")
}

func TestRun_EOFEndsSession(t *testing.T) {
	s, out := newShell()
	var prompts bytes.Buffer

	reader := shell.NewScannerReader(strings.NewReader("add_player Alice Warrior\nplayers\n"), &prompts)
	require.NoError(t, s.Run(reader))

	assert.Contains(t, out.String(), "[Alice]\n")
	assert.Equal(t, strings.Repeat(shell.Prompt, 3), prompts.String())
}

func TestRun_LongLines(t *testing.T) {
	s, out := newShell()
	input := strings.Join([]string{
		"add_player " + strings.Repeat("x", 70000) + " Warrior",
		"add_player " + strings.Repeat("y", shell.MaxLineLength),
		"add_player Alice Warrior",
		"players",
	}, "\n")

	require.NoError(t, s.Run(shell.NewScannerReader(strings.NewReader(input), nil)))

	names := s.Roster().Names()
	require.Len(t, names, 2)
	assert.Len(t, names[0], 70000)
	assert.Equal(t, "Alice", names[1])
	assert.Contains(t, out.String(), "Error: input line too long: more than 1048576 bytes\n")
	assert.Contains(t, out.String(), ", Alice]\n")
}

func TestScannerReader_LineEndings(t *testing.T) {
	reader := shell.NewScannerReader(strings.NewReader("players\r\nshop 1\nquit"), nil)

	for _, want := range []string{"players", "shop 1", "quit"} {
		line, err := reader.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}
	_, err := reader.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}
