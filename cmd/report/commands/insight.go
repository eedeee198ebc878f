package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"catalogcmp/internal/analytics"
	"catalogcmp/internal/insight"
)

func newInsightCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "insight",
		Short: "Ask the configured chat model for a short narrative of the overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := insight.New(st.cfg.OpenAIKey, st.cfg.OpenAIModel, st.log)
			text, err := n.Summarize(cmd.Context(), analytics.BuildOverview(st.data.Table), st.data.Labels)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if st.format == formatJSON {
				return writeJSON(out, map[string]string{"insight": text})
			}
			fmt.Fprintln(out, text)
			return nil
		},
	}
}
