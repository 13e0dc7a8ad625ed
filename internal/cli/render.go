package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeperm"
)

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render [moves...]",
		Short: "Print the facelet net after a move sequence",
		Long: `Apply a move sequence to a solved cube and print the unfolded net.
Each cell shows the home position of the facelet now in that place.

Examples:
  cubeperm render
  cubeperm render "R U R' U'"
  cubeperm render F F --color`,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := cubeperm.NewState(nil)
			if err := state.ApplyNotation(joinArgs(args)); err != nil {
				return err
			}
			return printNet(cmd.OutOrStdout(), state, a.cfg.Color)
		},
	}
}

func newOrderCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "order <moves...>",
		Short: "Print the order and cycles of a move sequence",
		Long: `Compose a move sequence into one permutation and print how many
repetitions return the cube to solved, with its cycle notation.

Example:
  cubeperm order "R U R' U'"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := cubeperm.ParseMoves(joinArgs(args))
			if err != nil {
				return err
			}
			p, err := cubeperm.SequencePerm(cubeperm.Standard(), moves)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sequence: %s\n", cubeperm.FormatMoves(moves))
			if simple := cubeperm.Simplify(moves); len(simple) != len(moves) {
				fmt.Fprintf(out, "Reduced:  %s\n", cubeperm.FormatMoves(simple))
			}
			fmt.Fprintf(out, "Order:    %d\n", p.Order())
			fmt.Fprintf(out, "Cycles:   %s\n", p)
			return nil
		},
	}
}
