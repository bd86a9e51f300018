package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_lattice/internal/notation"
	"github.com/SeamusWaldron/gocube_lattice/pkg/types"
)

// formatResult prints a move, spelling out the no-op.
func formatResult(m types.Move) string {
	if m.IsIdentity() {
		return "identity"
	}
	return m.Notation()
}

func (a *app) algebraCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "algebra",
		Short: "Combine moves algebraically",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <move> <move>",
			Short: "Add two moves on the same layer",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, err := notation.ParseNotation(args[0])
				if err != nil {
					return err
				}
				y, err := notation.ParseNotation(args[1])
				if err != nil {
					return err
				}
				sum, err := x.Add(y)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatResult(sum))
				return nil
			},
		},
		&cobra.Command{
			Use:   "scale <move> <n>",
			Short: "Repeat a move n times",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := notation.ParseNotation(args[0])
				if err != nil {
					return err
				}
				n, err := notation.ParseScalar(args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatResult(m.Scale(n)))
				return nil
			},
		},
		&cobra.Command{
			Use:   "invert <move>",
			Short: "Print the inverse of a move",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := notation.ParseNotation(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatResult(m.Inverse()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "equal <move> <move>",
			Short: "Report whether two spellings denote the same move",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				eq, err := notation.Equivalent(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), eq)
				return nil
			},
		},
	)
	return cmd
}
