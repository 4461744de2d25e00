package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mrtguide/formatter"
	"github.com/katalvlaran/mrtguide/pathfinder"
)

var departAt string

var routeCmd = &cobra.Command{
	Use:   "route START END",
	Short: "Print the recommended routes between two stations",
	Long: `START and END are station codes (NS1) or station names (Jurong East).
A name stands for every platform of that interchange.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}

		opts := []pathfinder.QueryOption{pathfinder.Limit(e.cfg.Limit)}
		if departAt != "" {
			opts = append(opts, pathfinder.At(departAt))
		}
		routes, err := e.finder.FindRoutes(args[0], args[1], opts...)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), e.formatter.Format(args[0], args[1], routes, formatter.Options{
			Limit:    e.cfg.Limit,
			ShowCost: departAt != "",
		}))

		return nil
	},
}

func init() {
	routeCmd.Flags().StringVarP(&departAt, "at", "t", "", "departure time, YYYY-MM-DDTHH:MM")
	rootCmd.AddCommand(routeCmd)
}
