package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDetailsCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "details <productID>",
		Short: "Show detailed product info",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAuthedClient(cmd, st)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "fetching details for product %s...\n", args[0])

			detail, err := c.ProductDetails(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatProductDetails(detail, st.cfg.BaseURL))
			return nil
		},
	}
}
