package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/internal/kernel"
	"github.com/shashiranjanraj/storefront/pkg/collection"
)

// storefront seed
func seedCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the default catalog if the store has none",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, _ []string) error {
			seeded, err := k.Catalog.Seed()
			if err != nil {
				return err
			}
			if seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "Catalog seeded.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Catalog already present, nothing to do.")
			}
			return nil
		}),
	}
}

// storefront products
func productsCmd(c *cli) *cobra.Command {
	var page, perPage int
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the catalog",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, _ []string) error {
			products, err := k.Catalog.All()
			if err != nil {
				return err
			}
			if perPage > 0 {
				products = collection.Paginate(products, page, perPage)
			}
			return printProducts(cmd, products)
		}),
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "products per page (0 lists all)")
	return cmd
}

// storefront product <id>
func productCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			p, ok, err := k.Catalog.ByID(id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("product %d not found", id)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", p.Name, p.DisplayPrice())
			fmt.Fprintf(out, "Rating %.1f (%d reviews)\n\n", p.Rating, p.Reviews)
			fmt.Fprintln(out, p.Description)
			return nil
		}),
	}
}

// storefront search <query>
func searchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find products whose name contains query",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, args []string) error {
			hits, err := k.Catalog.Search(args[0])
			if err != nil {
				return err
			}
			if len(hits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No products found.")
				return nil
			}
			return printProducts(cmd, hits)
		}),
	}
}

func printProducts(cmd *cobra.Command, products []models.Product) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tRATING\tREVIEWS")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%d\n", p.ID, p.Name, p.DisplayPrice(), p.Rating, p.Reviews)
	}
	return w.Flush()
}
