package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	gocube "github.com/SeamusWaldron/gocube_lattice"
	"github.com/SeamusWaldron/gocube_lattice/internal/notation"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <move>...",
		Short: "Parse moves and print their canonical form",
		Long: `Parse each move and print its canonical notation, its
(level, symbol, sign) triple and a plain description.

Example:
  cubesim parse "3Rw2" M' x`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := notation.ParseSequence(joinArgs(args))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range moves {
				fmt.Fprintf(out, "%-6s level=%d symbol=%s sign=%d  %s\n",
					m.Notation(), m.Level(), m.Symbol(), m.Sign(), notation.Describe(m))
			}
			return nil
		},
	}
}

func (a *app) applyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <sequence>",
		Short: "Apply a sequence to a solved cube and show the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := gocube.NewTracker(gocube.WithLogger(a.logger))
			if err := t.ApplyNotation(joinArgs(args)); err != nil {
				return err
			}
			a.logger.Info("sequence applied",
				zap.Int("moves", len(t.History())),
				zap.Bool("solved", t.IsSolved()))

			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderNet(t.Cube()))
			fmt.Fprintln(out, renderStatus(t.Cube()))
			return nil
		},
	}
}

func (a *app) simplifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simplify <sequence>",
		Short: "Merge adjacent moves on the same layer",
		Long: `Merge adjacent moves that turn the same layers, dropping any that
cancel out.

Example:
  cubesim simplify "R R U U' R"   # prints R'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := notation.ParseSequence(joinArgs(args))
			if err != nil {
				return err
			}
			simplified := notation.Simplify(moves)
			a.logger.Debug("sequence simplified",
				zap.Int("before", len(moves)),
				zap.Int("after", len(simplified)))
			fmt.Fprintln(cmd.OutOrStdout(), notation.FormatSequence(simplified))
			return nil
		},
	}
}
