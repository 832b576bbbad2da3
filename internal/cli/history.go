package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newHistoryCmd(st *state) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAuthedClient(cmd, st)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), "fetching order history...")

			page, err := c.OrderHistoryPage(cmd.Context(), 0, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(page.Orders) == 0 {
				fmt.Fprintln(out, "no orders found")
				return nil
			}

			fmt.Fprintf(out, "order history (%d orders, %d pages total):\n\n", len(page.Orders), page.NumberOfPages)
			for _, o := range page.Orders {
				fmt.Fprintln(out, formatOrderSummary(o))
			}
			fmt.Fprintln(out, "\nuse 'history show <orderID>' to see order details")
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "max orders to show")
	cmd.AddCommand(newHistoryShowCmd(st))
	return cmd
}

func newHistoryShowCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "show <orderID>",
		Short: "Show line items for a past order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid order ID %q", args[0])
			}

			c, err := newAuthedClient(cmd, st)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "fetching order %d...\n", orderID)

			order, err := c.FindOrder(cmd.Context(), orderID)
			if err != nil {
				return err
			}
			detail, err := c.OrderDetails(cmd.Context(), orderID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatOrderDetails(order, detail.Lines))
			return nil
		},
	}
}
