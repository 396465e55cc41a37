package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/storefront/internal/kernel"
	"github.com/shashiranjanraj/storefront/pkg/logger"
)

func main() {
	// stdout carries command output; logs go to stderr.
	logger.SetOutput(os.Stderr)

	if err := newRootCmd(kernel.Boot).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cli lazily boots one kernel per process and shares it between commands.
type cli struct {
	boot func() (*kernel.Kernel, error)
	k    *kernel.Kernel
}

func (c *cli) kernel() (*kernel.Kernel, error) {
	if c.k != nil {
		return c.k, nil
	}
	k, err := c.boot()
	if err != nil {
		return nil, err
	}
	c.k = k
	return k, nil
}

func (c *cli) close() error {
	if c.k == nil {
		return nil
	}
	err := c.k.Close()
	c.k = nil
	return err
}

// run adapts a kernel-backed command body to cobra's RunE. The kernel is
// closed when the body returns, whatever the outcome.
func (c *cli) run(fn func(cmd *cobra.Command, k *kernel.Kernel, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		k, err := c.kernel()
		if err != nil {
			return err
		}
		defer func() {
			if cerr := c.close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		return fn(cmd, k, args)
	}
}

func newRootCmd(boot func() (*kernel.Kernel, error)) *cobra.Command {
	c := &cli{boot: boot}

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront catalog, cart and order tool",
		Long:          "storefront manages the local product catalog, the device cart, user accounts and order history.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Catalog
	root.AddCommand(seedCmd(c))
	root.AddCommand(productsCmd(c))
	root.AddCommand(productCmd(c))
	root.AddCommand(searchCmd(c))

	// Account
	root.AddCommand(registerCmd(c))
	root.AddCommand(loginCmd(c))
	root.AddCommand(logoutCmd(c))
	root.AddCommand(whoamiCmd(c))

	// Cart and orders
	root.AddCommand(cartCmd(c))
	root.AddCommand(checkoutCmd(c))
	root.AddCommand(ordersCmd(c))
	root.AddCommand(orderCmd(c))
	root.AddCommand(statusCmd(c))
	root.AddCommand(exportCmd(c))

	// Server
	root.AddCommand(serveCmd(c))
	root.AddCommand(routeListCmd(c))

	return root
}
