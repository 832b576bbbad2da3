package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCmd(st *state) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search for products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAuthedClient(cmd, st)
			if err != nil {
				return err
			}

			query := args[0]
			fmt.Fprintf(cmd.ErrOrStderr(), "searching for %q...\n", query)

			products, err := c.Search(cmd.Context(), query, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(products) == 0 {
				fmt.Fprintf(out, "no products found for %q\n", query)
				return nil
			}

			fmt.Fprintf(out, "found %d products:\n\n", len(products))
			for _, p := range products {
				fmt.Fprintln(out, formatProduct(p))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "max results")
	return cmd
}
