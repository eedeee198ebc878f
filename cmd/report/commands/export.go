package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"catalogcmp/internal/db"
	"catalogcmp/internal/repository"
)

func newExportCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Copy the working table into the product_snapshot Postgres table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if st.cfg.DatabaseURL == "" {
				return fmt.Errorf("export needs DATABASE_URL")
			}
			ctx := cmd.Context()
			pool, err := db.NewPool(ctx, st.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			repo := &repository.SnapshotRepository{DB: pool}
			if err := repo.EnsureSchema(ctx); err != nil {
				return err
			}
			runID := uuid.New()
			n, err := repo.Save(ctx, runID, st.data.Fingerprint, st.data.Table)
			if err != nil {
				return err
			}
			st.log.Info().Str("run_id", runID.String()).Int64("rows", n).Msg("snapshot exported")

			out := cmd.OutOrStdout()
			if st.format == formatJSON {
				return writeJSON(out, map[string]any{
					"run_id":      runID,
					"fingerprint": st.data.Fingerprint,
					"rows":        n,
				})
			}
			fmt.Fprintf(out, "%s exported %d rows (run %s)\n", color.GreenString("✓"), n, runID)
			return nil
		},
	}
}
