package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/internal/kernel"
)

// storefront cart [add|update|remove|clear]
func cartCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, _ []string) error {
			return printCart(cmd, k)
		}),
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <product-id> [quantity]",
		Short: "Add a product (quantity defaults to 1)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, args []string) error {
			ids, err := atoiAll(args)
			if err != nil {
				return err
			}
			qty := 1
			if len(ids) == 2 {
				qty = ids[1]
			}
			p, ok, err := k.Catalog.ByID(ids[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("product %d not found", ids[0])
			}
			if err := k.Cart.AddToCart(p, qty); err != nil {
				return err
			}
			return printCart(cmd, k)
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "update <product-id> <quantity>",
		Short: "Set a quantity (0 removes the item)",
		Args:  cobra.ExactArgs(2),
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, args []string) error {
			n, err := atoiAll(args)
			if err != nil {
				return err
			}
			if err := k.Cart.UpdateQuantity(n[0], n[1]); err != nil {
				return err
			}
			return printCart(cmd, k)
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, args []string) error {
			n, err := atoiAll(args)
			if err != nil {
				return err
			}
			if err := k.Cart.RemoveFromCart(n[0]); err != nil {
				return err
			}
			return printCart(cmd, k)
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, _ []string) error {
			if err := k.Cart.Clear(); err != nil {
				return err
			}
			return printCart(cmd, k)
		}),
	})
	return cmd
}

func printCart(cmd *cobra.Command, k *kernel.Kernel) error {
	snap := k.Cart.Snapshot()
	if len(snap.Items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Your cart is empty.")
		return nil
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCT\tPRICE\tQTY\tTOTAL")
	for _, it := range snap.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			it.Product.ID, it.Product.Name, it.Product.DisplayPrice(), it.Quantity, models.FormatMoney(it.Total()))
	}
	fmt.Fprintf(w, "\t\t\t%d\t%s\n", snap.TotalQuantity, models.FormatMoney(snap.Total))
	return w.Flush()
}

func atoiAll(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", a)
		}
		out[i] = n
	}
	return out, nil
}
