package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [table]",
	Short: "Show the tables, or how the columns of one table will be rendered",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := newSource()
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			tables, err := source.Analyze(cmd.Context())
			if err != nil {
				return err
			}
			for i, t := range tables {
				fmt.Fprintf(out, "[%02d] %-30s %d columns\n", i+1, t.Name, len(t.Columns))
			}
			return nil
		}

		cols, err := source.Columns(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(cols) == 0 {
			return fmt.Errorf("table %s not found or has no columns", args[0])
		}

		settings, err := LoadSettings(viper.GetViper())
		if err != nil {
			return err
		}
		settings.Samples = true
		b := settings.ColumnBuilder()

		fmt.Fprintf(out, "%-20s %-12s %-10s %-14s %-8s %s\n", "COLUMN", "DATA TYPE", "TYPE", "FRAGMENT", "REQUIRED", "PLACEHOLDER")
		for _, d := range b.BuildAll(cols) {
			fmt.Fprintf(out, "%-20s %-12s %-10s %-14s %-8t %s\n",
				d.Name, d.DataType, d.Type, d.FragmentName(), d.Required, d.Placeholder)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)
}
