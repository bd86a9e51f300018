package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	gocube "github.com/SeamusWaldron/gocube_lattice"
	"github.com/SeamusWaldron/gocube_lattice/internal/notation"
	"github.com/SeamusWaldron/gocube_lattice/internal/storage"
)

// maxShownMoves caps the history line in the play view.
const maxShownMoves = 20

// Model
type playModel struct {
	tracker *gocube.Tracker

	// Persistence, nil unless playing into a session. The stored moves
	// mirror the tracker history one to one.
	ctx       context.Context
	moves     *storage.MoveRepository
	sessionID string
	stored    int

	// UI
	input    textinput.Model
	lastMove string
	solved   bool
	err      error
	quitting bool
}

func newPlayModel(ctx context.Context, tracker *gocube.Tracker, moves *storage.MoveRepository, sessionID string) *playModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "R U R' U'"
	ti.CharLimit = 256
	ti.Focus()

	m := &playModel{
		tracker:   tracker,
		ctx:       ctx,
		moves:     moves,
		sessionID: sessionID,
		stored:    len(tracker.History()),
		input:     ti,
	}
	tracker.OnMove(func(mv gocube.Move) {
		m.lastMove = notation.Describe(mv)
	})
	tracker.OnSolved(func() {
		m.solved = true
	})
	return m
}

func (m *playModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			m.submit()
			return m, nil

		case tea.KeyCtrlZ:
			m.undo()
			return m, nil

		case tea.KeyCtrlR:
			m.reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit applies the typed sequence. In a session the moves are stored
// before the tracker sees them, so a failed write leaves both unchanged.
func (m *playModel) submit() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}

	moves, err := notation.ParseSequence(text)
	if err != nil {
		m.err = err
		return
	}
	// Cube returns a copy, so this only validates.
	if err := m.tracker.Cube().ApplyMoves(moves); err != nil {
		m.err = err
		return
	}
	if m.moves != nil {
		if err := m.moves.Append(m.ctx, m.sessionID, moves); err != nil {
			m.err = err
			return
		}
		m.stored += len(moves)
	}

	m.solved = false
	if err := m.tracker.Apply(moves...); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.input.Reset()
}

// undo reverts the last move, removing it from the session first.
func (m *playModel) undo() {
	m.err = nil
	if len(m.tracker.History()) == 0 {
		return
	}
	if m.moves != nil {
		if _, _, err := m.moves.DeleteLast(m.ctx, m.sessionID); err != nil {
			m.err = err
			return
		}
		m.stored--
	}
	if mv, ok := m.tracker.Undo(); ok {
		m.lastMove = "undo " + mv.Notation()
		m.solved = m.tracker.IsSolved()
	}
}

// reset returns to a solved cube, clearing the session's moves first.
func (m *playModel) reset() {
	m.err = nil
	if m.moves != nil {
		if err := m.moves.Clear(m.ctx, m.sessionID); err != nil {
			m.err = err
			return
		}
		m.stored = 0
	}
	m.tracker.Reset()
	m.lastMove = ""
	m.solved = false
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubesim"))
	if m.sessionID != "" {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  session %s, %d move(s) stored", m.sessionID, m.stored)))
	}
	b.WriteString("\n\n")

	c := m.tracker.Cube()
	b.WriteString(renderNet(c))
	b.WriteString("\n")
	if m.solved {
		b.WriteString(solvedStyle.Render("SOLVED!"))
	} else {
		b.WriteString(renderStatus(c))
	}
	b.WriteString("\n")

	history := m.tracker.History()
	if len(history) > maxShownMoves {
		history = history[len(history)-maxShownMoves:]
	}
	b.WriteString(fmt.Sprintf("Moves: %s\n", moveStyle.Render(notation.FormatSequence(history))))
	if m.lastMove != "" {
		b.WriteString(statusStyle.Render("Last: "+m.lastMove) + "\n")
	}

	b.WriteString("\n" + m.input.View() + "\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: apply  ctrl+z: undo  ctrl+r: reset  esc: quit"))
	b.WriteString("\n")

	return b.String()
}

func (a *app) playCmd() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Turn a virtual cube interactively",
		Long: `Start an interactive cube. Type moves in standard notation and
press enter to apply them.

With --session the session is replayed first, every applied sequence
is appended to it, and undo and reset remove moves from it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Merging would break the one to one match with stored moves.
			merge := a.cfg.Simplify && sessionID == ""
			tracker := gocube.NewTracker(gocube.WithLogger(a.logger), gocube.WithMerge(merge))
			var repo *storage.MoveRepository

			if sessionID != "" {
				db, err := a.openDB(cmd.Context())
				if err != nil {
					return err
				}
				defer db.Close()

				_, replayed, err := a.replay(cmd, db, sessionID)
				if err != nil {
					return err
				}
				if err := tracker.Apply(replayed.History()...); err != nil {
					return err
				}
				repo = storage.NewMoveRepository(db)
				a.logger.Debug("session loaded", zap.String("session_id", sessionID))
			}

			p := tea.NewProgram(newPlayModel(cmd.Context(), tracker, repo, sessionID), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("TUI error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "Replay and append to this session")
	return cmd
}
