package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukydev/sahigaadi/internal/formatter"
	"github.com/ukydev/sahigaadi/internal/models"
)

func newCompareCmd(global *globalOptions) *cobra.Command {
	var (
		zone   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "compare VEHICLE1 VEHICLE2",
		Short: "Compare two catalog vehicles side by side",
		Long: `Compare two catalog vehicles side by side, scored in one zone.

Examples:
  advisor compare maruti-swift tata-nexon
  advisor compare tata-nexon-ev hyundai-creta --zone rajajipuram -o yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output); err != nil {
				return err
			}
			z := models.Zone(zone)
			if !models.IsValidZone(z) {
				return fmt.Errorf("unknown zone %q", zone)
			}
			engine, err := global.engine()
			if err != nil {
				return err
			}
			comparison, err := engine.Compare(args[0], args[1], z)
			if err != nil {
				return err
			}
			return formatter.DisplayComparison(cmd.OutOrStdout(), comparison, output)
		},
	}

	cmd.Flags().StringVar(&zone, "zone", string(models.ZoneGomtiNagar), "Lucknow zone to score in")
	cmd.Flags().StringVarP(&output, "output", "o", formatter.FormatHuman, "Output format (human, json, yaml)")
	return cmd
}
