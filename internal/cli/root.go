package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/ukydev/sahigaadi/internal/catalog"
	"github.com/ukydev/sahigaadi/internal/formatter"
	"github.com/ukydev/sahigaadi/internal/recommend"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	catalogFile string
	noColor     bool
}

// NewRootCmd builds the advisor command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "advisor",
		Short: "Lucknow vehicle recommendations from the terminal",
		Long: `advisor ranks cars, motorcycles and scooters for a Lucknow household
using the same locality scoring as the SahiGaadi API.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&opts.catalogFile, "catalog", "", "Vehicle catalog YAML (defaults to the built-in catalog)")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")

	rootCmd.AddCommand(
		newRecommendCmd(opts),
		newCompareCmd(opts),
		newVehiclesCmd(opts),
		newHashPasswordCmd(),
		newVersionCmd(version),
	)
	return rootCmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "advisor version %s\n", version)
		},
	}
}

func (o *globalOptions) loadCatalog() (*catalog.Static, error) {
	if o.catalogFile == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(o.catalogFile)
}

func (o *globalOptions) engine() (*recommend.Engine, error) {
	c, err := o.loadCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return recommend.NewEngine(c, nil), nil
}

func checkFormat(format string) error {
	if !formatter.ValidFormat(format) {
		return fmt.Errorf("unknown output format %q (human, json, yaml)", format)
	}
	return nil
}
