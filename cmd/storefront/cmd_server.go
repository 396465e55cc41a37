package main

import (
	"fmt"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/internal/kernel"
	"github.com/shashiranjanraj/storefront/internal/server"
)

// storefront serve
func serveCmd(c *cli) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API, /graphql and /metrics",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, _ []string) error {
			h, err := k.HTTPHandler()
			if err != nil {
				return err
			}
			if port == "" {
				port = config.AppPort()
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Start(ctx, ":"+port, h)
		}),
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default APP_PORT)")
	return cmd
}

// storefront route:list
func routeListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "route:list",
		Short: "List the HTTP routes",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, _ []string) error {
			r, err := k.Router()
			if err != nil {
				return err
			}
			infos := r.Routes()
			sort.Slice(infos, func(i, j int) bool {
				if infos[i].Path != infos[j].Path {
					return infos[i].Path < infos[j].Path
				}
				return infos[i].Method < infos[j].Method
			})

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH\tNAME")
			fmt.Fprintln(w, "------\t----\t----")
			for _, ri := range infos {
				fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
			}
			return w.Flush()
		}),
	}
}
