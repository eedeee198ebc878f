// Package commands implements the report CLI over the loaded catalogs.
package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"catalogcmp/internal/app"
	"catalogcmp/internal/config"
	"catalogcmp/internal/dataset"
	"catalogcmp/internal/observability"
)

// state is shared by every subcommand of one invocation.
type state struct {
	format  string
	noColor bool
	cfg     *config.Config
	log     zerolog.Logger
	data    *dataset.Dataset
}

func NewRootCommand() *cobra.Command {
	st := &state{}
	root := &cobra.Command{
		Use:   "report",
		Short: "Compare two beauty product catalogs",
		Long: `report loads the two configured catalogs (CSV files or Postgres tables),
normalizes them into one working table and prints comparison reports.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if st.format != formatJSON && st.format != formatTable {
				return fmt.Errorf("unknown format %q (want json or table)", st.format)
			}
			if st.noColor {
				color.NoColor = true
			}
			st.cfg = config.Load()
			st.log = observability.NewLogger(observability.LogConfig{
				Level:       st.cfg.LogLevel,
				Format:      "console",
				Output:      cmd.ErrOrStderr(),
				ServiceName: "catalog-report",
			})
			d, err := app.LoadDataset(cmd.Context(), st.cfg, st.log)
			if err != nil {
				return err
			}
			st.data = d
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&st.format, "format", "f", formatTable, "output format: json or table")
	root.PersistentFlags().BoolVar(&st.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newOverviewCommand(st),
		newSummaryCommand(st),
		newDistributionCommand(st),
		newRatingByPriceCommand(st),
		newBrandsCommand(st),
		newBrandCommand(st),
		newProductsCommand(st),
		newInsightCommand(st),
		newExportCommand(st),
	)
	return root
}
