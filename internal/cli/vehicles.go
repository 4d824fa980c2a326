package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukydev/sahigaadi/internal/formatter"
	"github.com/ukydev/sahigaadi/internal/models"
)

func newVehiclesCmd(global *globalOptions) *cobra.Command {
	var (
		category string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "List the vehicle catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output); err != nil {
				return err
			}
			c, err := global.loadCatalog()
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			vehicles := c.All()
			if category != "" {
				cat := models.VehicleCategory(category)
				if !models.IsValidCategory(cat) {
					return fmt.Errorf("unknown category %q", category)
				}
				vehicles = c.ByCategory(cat)
			}
			return formatter.DisplayVehicles(cmd.OutOrStdout(), vehicles, output)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only this category (car, motorcycle, scooty)")
	cmd.Flags().StringVarP(&output, "output", "o", formatter.FormatHuman, "Output format (human, json, yaml)")
	return cmd
}
