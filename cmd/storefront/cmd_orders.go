package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/internal/kernel"
	"github.com/shashiranjanraj/storefront/pkg/collection"
	"github.com/shashiranjanraj/storefront/pkg/export"
)

var errNotLoggedIn = errors.New("not logged in, run `storefront login` first")

// storefront checkout
func checkoutCmd(c *cli) *cobra.Command {
	var form services.CheckoutForm
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart contents",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, _ []string) error {
			form.Normalize()
			if err := validationError(form.Validate()); err != nil {
				return err
			}
			order, ok, err := k.Orders.Checkout(form)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("cart is empty")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order placed successfully! %s  %s\n", order.FormattedID(), order.DisplayTotal())
			return nil
		}),
	}
	cmd.Flags().StringVar(&form.FullName, "name", "", "recipient full name")
	cmd.Flags().StringVar(&form.Address, "address", "", "shipping address")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&form.Email, "email", "", "contact email")
	cmd.Flags().BoolVar(&form.PrivacyConsent, "agree", false, "accept the privacy policy")
	return cmd
}

// storefront orders
func ordersCmd(c *cli) *cobra.Command {
	var recent, newest bool
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List the logged-in user's orders",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, _ []string) error {
			email, err := sessionEmail(k)
			if err != nil {
				return err
			}
			var orders []models.Order
			if recent {
				orders, err = k.Orders.UserOrdersLast6Months(email)
			} else {
				orders, err = k.Orders.UserOrders(email)
			}
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No orders yet.")
				return nil
			}
			if newest {
				orders = collection.Reverse(orders)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ORDER\tDATE\tITEMS\tTOTAL\tSTATUS")
			for _, o := range orders {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
					o.FormattedID(), o.DisplayDate(), models.SumQuantity(o.Items), o.DisplayTotal(), o.Status)
			}
			return w.Flush()
		}),
	}
	cmd.Flags().BoolVar(&recent, "recent", false, "only orders from the last six months")
	cmd.Flags().BoolVar(&newest, "newest", false, "newest first")
	return cmd
}

// storefront order <id>
func orderCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "order <id>",
		Short: "Show an order",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, args []string) error {
			n, err := atoiAll(args)
			if err != nil {
				return err
			}
			o, ok, err := k.Orders.OrderByID(n[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("order %d not found", n[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s  %s\n", o.FormattedID(), o.DisplayDate(), o.Status)
			fmt.Fprintf(out, "Ship to: %s, %s (%s, %s)\n\n", o.FullName, o.Address, o.Phone, o.Email)
			w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
			for _, it := range o.Items {
				fmt.Fprintf(w, "%s\t%d x %s\t%s\n", it.Product.Name, it.Quantity, it.Product.DisplayPrice(), models.FormatMoney(it.Total()))
			}
			fmt.Fprintf(w, "Total\t\t%s\n", o.DisplayTotal())
			return w.Flush()
		}),
	}
}

// storefront status <id> <status>
func statusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status <order-id> <Pending|Shipped|Delivered>",
		Short: "Change an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, args []string) error {
			n, err := atoiAll(args[:1])
			if err != nil {
				return err
			}
			form := services.StatusForm{Status: args[1]}
			if err := validationError(form.Validate()); err != nil {
				return err
			}
			ok, err := k.Orders.UpdateStatus(n[0], form.Status)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("order %d not found", n[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %d is now %s.\n", n[0], form.Status)
			return nil
		}),
	}
}

// storefront export
func exportCmd(c *cli) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the logged-in user's order history to an xlsx file",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, _ []string) error {
			email, err := sessionEmail(k)
			if err != nil {
				return err
			}
			orders, err := k.Orders.UserOrders(email)
			if err != nil {
				return err
			}
			if err := export.OrdersToFile(path, orders); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d orders to %s\n", len(orders), path)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&path, "out", "o", "orders.xlsx", "output file")
	return cmd
}

func sessionEmail(k *kernel.Kernel) (string, error) {
	user, ok, err := k.Auth.CurrentUser()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errNotLoggedIn
	}
	return user.Email, nil
}
