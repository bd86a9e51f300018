package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocube "github.com/SeamusWaldron/gocube_lattice"
	"github.com/SeamusWaldron/gocube_lattice/internal/storage"
	"github.com/SeamusWaldron/gocube_lattice/pkg/types"
)

// run executes cubesim with an isolated config and database.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--db", filepath.Join(dir, "gocube.db"),
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "parse", "3Rw2", "M'", "x")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "3r2")
	assert.Contains(t, lines[0], "level=3 symbol=r sign=2")
	assert.Contains(t, lines[1], "M'")
	assert.Contains(t, lines[1], "sign=3")
	assert.Contains(t, lines[2], "cube rotation x clockwise")
}

func TestParseCommandRejectsBadMove(t *testing.T) {
	_, err := run(t, t.TempDir(), "parse", "R", "Q")
	assert.ErrorIs(t, err, types.ErrInvalidMoveSyntax)
}

func TestApplyCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "apply", "R U R' U'")
	require.NoError(t, err)
	assert.Contains(t, out, "not solved")

	out, err = run(t, dir, "apply", "R", "R'")
	require.NoError(t, err)
	assert.Contains(t, out, "SOLVED")
	assert.Equal(t, 9, strings.Count(out, " W "))
}

func TestSimplifyCommand(t *testing.T) {
	cases := map[string]string{
		"R R U U' R":  "R'",
		"R U U' R'":   "",
		"F2 F F B":    "B",
		"3Rw 3r 2R M": "3r2 2R M",
	}
	for in, want := range cases {
		out, err := run(t, t.TempDir(), "simplify", in)
		require.NoError(t, err, in)
		assert.Equal(t, want, strings.TrimSpace(out), in)
	}
}

func TestAlgebraCommands(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"algebra", "add", "R", "R"}, "R2"},
		{[]string{"algebra", "add", "R", "R'"}, "identity"},
		{[]string{"algebra", "scale", "r", "3"}, "r'"},
		{[]string{"algebra", "scale", "--", "U", "-1"}, "U'"},
		{[]string{"algebra", "invert", "3f2"}, "3f2"},
		{[]string{"algebra", "invert", "M"}, "M'"},
		{[]string{"algebra", "equal", "Rw", "2r"}, "true"},
		{[]string{"algebra", "equal", "R", "2R"}, "false"},
	}
	for _, tc := range cases {
		out, err := run(t, dir, tc.args...)
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.want, strings.TrimSpace(out), tc.args)
	}
}

func TestAlgebraErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "algebra", "add", "R", "U")
	assert.ErrorIs(t, err, types.ErrIncompatibleMoves)

	_, err = run(t, dir, "algebra", "scale", "R", "1.5")
	assert.ErrorIs(t, err, types.ErrUnsupportedOperandType)
}

func TestSessionCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions")

	out, err = run(t, dir, "session", "new", "practice")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)

	_, err = run(t, dir, "session", "add", id, "R U")
	require.NoError(t, err)
	out, err = run(t, dir, "session", "add", id, "U'", "R'")
	require.NoError(t, err)
	assert.Contains(t, out, "Added 2 move(s)")

	out, err = run(t, dir, "session", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "practice")
	assert.Contains(t, out, "Moves (4)")
	assert.Contains(t, out, "R U U' R'")
	assert.Contains(t, out, "SOLVED")

	out, err = run(t, dir, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "practice")

	_, err = run(t, dir, "session", "add", id, "R U R' U'")
	require.NoError(t, err)
	out, err = run(t, dir, "session", "stats", id, "--max", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Moves:       8 (4 after simplifying, 50%)")
	assert.Contains(t, out, "Repeated 2-move sequences:")
	assert.Contains(t, out, "2x")

	_, err = run(t, dir, "session", "delete", id)
	require.NoError(t, err)
	_, err = run(t, dir, "session", "show", id)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSessionAddSimplifiesWhenConfigured(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("simplify: true\n"), 0644))

	out, err := run(t, dir, "session", "new")
	require.NoError(t, err)
	id := strings.TrimSpace(out)

	out, err = run(t, dir, "session", "add", id, "R R R U U'")
	require.NoError(t, err)
	assert.Contains(t, out, "Added 1 move(s)")
}

func TestSessionAddUnknownSession(t *testing.T) {
	_, err := run(t, t.TempDir(), "session", "add", "missing", "R")
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSessionStatsUnknownSession(t *testing.T) {
	out, err := run(t, t.TempDir(), "session", "stats", "missing")
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
	assert.NotContains(t, out, "Moves:")
}

func TestSessionStatsRejectsBadLengths(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "session", "new")
	require.NoError(t, err)
	id := strings.TrimSpace(out)

	for _, flags := range [][]string{
		{"--top", "-1"},
		{"--min", "4", "--max", "2"},
		{"--min", "0"},
	} {
		_, err := run(t, dir, append([]string{"session", "stats", id}, flags...)...)
		assert.Error(t, err, flags)
	}

	_, err = run(t, dir, "session", "add", id, "R U R U")
	require.NoError(t, err)

	out, err = run(t, dir, "session", "stats", id, "--top", "0")
	require.NoError(t, err)
	assert.NotContains(t, out, "Repeated")

	// A huge --max is clamped to the session length.
	out, err = run(t, dir, "session", "stats", id, "--max", "1000000000")
	require.NoError(t, err)
	assert.Contains(t, out, "Repeated 2-move sequences:")
}

func TestBadConfigFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log_level: loud\n"), 0644))

	_, err := run(t, dir, "parse", "R")
	assert.Error(t, err)
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayModel(t *testing.T) {
	m := newPlayModel(context.Background(), gocube.NewTracker(), nil, "")

	m.Update(keys("R U"))
	assert.Equal(t, "R U", m.input.Value())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "R U", m.tracker.Notation())
	assert.Empty(t, m.input.Value())
	assert.Equal(t, "up clockwise", m.lastMove)
	assert.Contains(t, m.View(), "R U")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Equal(t, "R", m.tracker.Notation())

	m.Update(keys("R'"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.solved)
	assert.Contains(t, m.View(), "SOLVED!")

	m.Update(keys("Q"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.ErrorIs(t, m.err, types.ErrInvalidMoveSyntax)
	assert.Equal(t, "Q", m.input.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, m.input.Value())

	m.Update(keys("F"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Empty(t, m.tracker.History())
	assert.True(t, m.tracker.IsSolved())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPlayModelSession(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "gocube.db"))
	require.NoError(t, err)
	defer db.Close()

	s, err := storage.NewSessionRepository(db).Create(ctx, "play")
	require.NoError(t, err)
	repo := storage.NewMoveRepository(db)
	require.NoError(t, repo.Append(ctx, s.SessionID, []types.Move{gocube.R, gocube.U}))

	stored := func() string {
		t.Helper()
		moves, err := repo.GetBySession(ctx, s.SessionID)
		require.NoError(t, err)
		return gocube.FormatMoves(moves)
	}

	tracker := gocube.NewTracker()
	require.NoError(t, tracker.ApplyNotation("R U"))
	m := newPlayModel(ctx, tracker, repo, s.SessionID)
	assert.Equal(t, 2, m.stored)

	m.Update(keys("F"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "R U F", stored())
	assert.Equal(t, "R U F", m.tracker.Notation())

	// Rejected input is neither stored nor applied.
	m.input.Reset()
	m.Update(keys("Q"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Error(t, m.err)
	assert.Equal(t, "R U F", stored())

	m.input.Reset()
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Equal(t, "R", m.tracker.Notation())
	assert.Equal(t, "R", stored())
	assert.Equal(t, 1, m.stored)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Empty(t, stored())
	assert.Empty(t, m.tracker.History())
	assert.Zero(t, m.stored)

	// Undo with nothing left touches neither side.
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.NoError(t, m.err)
	assert.Empty(t, stored())
}
