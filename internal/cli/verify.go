package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubeperm"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check every generator is a quarter turn of order 4",
		Long: `Run the order check on every generator of the standard catalog:
g^4 must be the identity and the order computed from the cycle
decomposition must be exactly 4.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cubeperm.Standard()
			out := cmd.OutOrStdout()

			for _, g := range c.Generators() {
				status := "ok"
				if err := cubeperm.VerifyOrder(g, cubeperm.QuarterTurnOrder); err != nil {
					status = "FAIL"
				}
				fmt.Fprintf(out, "%-2s order=%d %-4s %s\n", g.Name, g.Perm.Order(), status, g.Perm)
			}

			if err := cubeperm.VerifyCatalog(c, cubeperm.QuarterTurnOrder); err != nil {
				a.logger.Error("catalog verification failed", zap.Error(err))
				return err
			}
			a.logger.Info("catalog verified", zap.Int("generators", len(c.Names())))
			return nil
		},
	}
}
