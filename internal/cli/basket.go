package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBasketCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "basket",
		Short: "Show current basket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAuthedClient(cmd, st)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), "fetching basket...")

			basket, err := c.GetBasket(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(basket.Lines) == 0 {
				fmt.Fprintln(out, "your basket is empty")
				return nil
			}

			fmt.Fprintf(out, "basket (%d items):\n\n", len(basket.Lines))
			for _, line := range basket.Lines {
				fmt.Fprintln(out, formatBasketLine(line))
			}
			fmt.Fprintf(out, "\n  Total: %.2f kr\n", basket.Total())
			return nil
		},
	}
}

func newAddCmd(st *state) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <productID>",
		Short: "Add product to basket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAuthedClient(cmd, st)
			if err != nil {
				return err
			}

			productID := args[0]
			fmt.Fprintf(cmd.ErrOrStderr(), "adding product %s (quantity %d) to basket...\n", productID, quantity)

			basket, err := c.AddToBasket(cmd.Context(), productID, quantity)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			added := false
			for _, line := range basket.Lines {
				if line.ID == productID {
					fmt.Fprintln(out, "added to basket:")
					fmt.Fprintln(out, formatBasketLine(line))
					added = true
					break
				}
			}
			if !added {
				fmt.Fprintf(out, "product %s added to basket\n", productID)
			}

			fmt.Fprintf(out, "\nbasket total: %.2f kr (%d items)\n", basket.Total(), len(basket.Lines))
			return nil
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "quantity to add")
	return cmd
}
