package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	gocube "github.com/SeamusWaldron/gocube_lattice"
	"github.com/SeamusWaldron/gocube_lattice/internal/analysis"
	"github.com/SeamusWaldron/gocube_lattice/internal/notation"
	"github.com/SeamusWaldron/gocube_lattice/internal/storage"
)

func (a *app) sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage saved move sessions",
		Long: `Sessions are named move sequences kept in the local database.
Moves are stored in canonical notation and replayed onto a solved cube
when shown.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "new [name]",
			Short: "Create a session",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runSessionNew,
		},
		&cobra.Command{
			Use:   "add <session-id> <sequence>",
			Short: "Append moves to a session",
			Args:  cobra.MinimumNArgs(2),
			RunE:  a.runSessionAdd,
		},
		&cobra.Command{
			Use:   "show <session-id>",
			Short: "Replay a session and show the cube",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runSessionShow,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List sessions",
			Args:  cobra.NoArgs,
			RunE:  a.runSessionList,
		},
		a.sessionStatsCmd(),
		&cobra.Command{
			Use:   "delete <session-id>",
			Short: "Delete a session and its moves",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runSessionDelete,
		},
	)
	return cmd
}

func (a *app) runSessionNew(cmd *cobra.Command, args []string) error {
	db, err := a.openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	s, err := storage.NewSessionRepository(db).Create(cmd.Context(), name)
	if err != nil {
		return err
	}
	a.logger.Info("session created", zap.String("session_id", s.SessionID), zap.String("name", name))
	fmt.Fprintln(cmd.OutOrStdout(), s.SessionID)
	return nil
}

func (a *app) runSessionAdd(cmd *cobra.Command, args []string) error {
	moves, err := notation.ParseSequence(joinArgs(args[1:]))
	if err != nil {
		return err
	}
	if a.cfg.Simplify {
		moves = notation.Simplify(moves)
	}

	db, err := a.openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewMoveRepository(db).Append(cmd.Context(), args[0], moves); err != nil {
		return err
	}
	a.logger.Info("moves appended", zap.String("session_id", args[0]), zap.Int("moves", len(moves)))
	fmt.Fprintf(cmd.OutOrStdout(), "Added %d move(s)\n", len(moves))
	return nil
}

// replay loads a session and applies its moves to a fresh tracker.
func (a *app) replay(cmd *cobra.Command, db *storage.DB, sessionID string) (storage.Session, *gocube.Tracker, error) {
	s, err := storage.NewSessionRepository(db).Get(cmd.Context(), sessionID)
	if err != nil {
		return storage.Session{}, nil, err
	}
	moves, err := storage.NewMoveRepository(db).GetBySession(cmd.Context(), sessionID)
	if err != nil {
		return storage.Session{}, nil, err
	}
	t := gocube.NewTracker(gocube.WithLogger(a.logger))
	if err := t.Apply(moves...); err != nil {
		return storage.Session{}, nil, fmt.Errorf("failed to replay session %s: %w", sessionID, err)
	}
	return s, t, nil
}

func (a *app) runSessionShow(cmd *cobra.Command, args []string) error {
	db, err := a.openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	s, t, err := a.replay(cmd, db, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(sessionTitle(s)))
	fmt.Fprintf(out, "Created: %s\n", s.CreatedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(out, "Moves (%d): %s\n", s.MoveCount, moveStyle.Render(t.Notation()))
	fmt.Fprintln(out)
	fmt.Fprint(out, renderNet(t.Cube()))
	fmt.Fprintln(out, renderStatus(t.Cube()))
	return nil
}

func sessionTitle(s storage.Session) string {
	if s.Name == "" {
		return s.SessionID
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.SessionID)
}

func (a *app) runSessionList(cmd *cobra.Command, args []string) error {
	db, err := a.openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMOVES\tCREATED")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.SessionID, s.Name, s.MoveCount, s.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func (a *app) runSessionDelete(cmd *cobra.Command, args []string) error {
	db, err := a.openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewSessionRepository(db).Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	a.logger.Info("session deleted", zap.String("session_id", args[0]))
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}

func (a *app) sessionStatsCmd() *cobra.Command {
	var minN, maxN, topK int

	cmd := &cobra.Command{
		Use:   "stats <session-id>",
		Short: "Show move counts and repeated sequences of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if minN < 1 || minN > maxN {
				return fmt.Errorf("invalid sequence lengths: need 1 <= --min (%d) <= --max (%d)", minN, maxN)
			}
			if topK < 0 {
				return fmt.Errorf("invalid --top %d: must not be negative", topK)
			}

			db, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			moves, err := storage.NewMoveRepository(db).GetBySession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			maxN = min(maxN, len(moves))

			s := analysis.Summarize(moves)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Moves:       %d (%d after simplifying, %.0f%%)\n", s.TotalMoves, s.SimplifiedMoves, s.Efficiency*100)
			fmt.Fprintf(out, "STM:         %d\n", s.STM)
			fmt.Fprintf(out, "QTM:         %d\n", s.QTM)
			fmt.Fprintf(out, "Rotations:   %d\n", s.Rotations)
			if s.TotalMoves > 0 {
				fmt.Fprintf(out, "Most used:   %s\n", s.Profile.MostUsedSymbol)
			}

			report := analysis.MineNGrams(moves, minN, maxN, topK)
			for n := maxN; n >= minN; n-- {
				ngrams := report.TopNGrams[n]
				if len(ngrams) == 0 {
					continue
				}
				fmt.Fprintf(out, "\nRepeated %d-move sequences:\n", n)
				for _, ng := range ngrams {
					fmt.Fprintf(out, "  %dx  %s\n", ng.Count, moveStyle.Render(ng.Notation))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&minN, "min", 2, "Shortest sequence length to mine")
	cmd.Flags().IntVar(&maxN, "max", 6, "Longest sequence length to mine")
	cmd.Flags().IntVar(&topK, "top", 3, "Sequences to show per length")
	return cmd
}
