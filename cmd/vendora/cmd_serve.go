package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/routes"
	"github.com/shashiranjanraj/vendora/app/store"
	"github.com/shashiranjanraj/vendora/config"
	"github.com/shashiranjanraj/vendora/internal/kernel"
	"github.com/shashiranjanraj/vendora/internal/server"
	"github.com/shashiranjanraj/vendora/pkg/router"
)

const version = "0.3.0"

var seedFlag bool

// vendora serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run", "s"},
	Short:   "Start the admin API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		seedDemo := seedFlag || config.SeedDemoData()
		return server.Start(kernel.New(seedDemo))
	},
}

// vendora route:list — print all registered named routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := router.New()
		routes.RegisterAPI(r,
			store.New[models.Product]("product", "prod_"),
			store.New[models.Order]("order", "order_"),
		)

		infos := r.Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vendora version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("vendora " + version)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&seedFlag, "seed", false, "load the demo catalogue on boot")
}
