package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarize the loaded station map",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}

		m := e.finder.Map()
		st := m.Stats()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Stations:     %d\n", st.Stations)
		fmt.Fprintf(out, "Lines:        %d (%s)\n", st.Lines, strings.Join(m.Lines(), ", "))
		fmt.Fprintf(out, "Interchanges: %d\n", st.Interchanges)
		fmt.Fprintf(out, "Rides:        %d\n", st.Rides)
		fmt.Fprintf(out, "Transfers:    %d\n", st.Transfers)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
