package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukydev/sahigaadi/internal/formatter"
	"github.com/ukydev/sahigaadi/internal/models"
	"gopkg.in/yaml.v3"
)

type recommendOptions struct {
	profileFile string
	output      string
	vehicleType string
	primaryUse  string
	zone        string
	distance    int
	parking     string
	drivers     []string
	budgetType  string
	budget      int64
	priorities  []string
}

func newRecommendCmd(global *globalOptions) *cobra.Command {
	opts := &recommendOptions{}

	cmd := &cobra.Command{
		Use:   "recommend [flags]",
		Short: "Rank the top three vehicles for a household",
		Long: `Rank the top three vehicles for a wizard profile.

Examples:
  # Answers from a YAML or JSON profile file
  advisor recommend --profile family.yaml

  # Answers from flags
  advisor recommend --type car --zone alambagh --budget 800000 \
    --priorities safety,fuel_economy,comfort,brand_reputation,resale_value

  # Override one answer from a file
  advisor recommend --profile family.yaml --parking basement -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.output); err != nil {
				return err
			}
			profile, err := opts.buildProfile(cmd)
			if err != nil {
				return err
			}
			engine, err := global.engine()
			if err != nil {
				return err
			}
			results := engine.TopRecommendations(profile)
			return formatter.DisplayRecommendations(cmd.OutOrStdout(), results, profile.Zone, opts.output)
		},
	}

	defaultPriorities := make([]string, 0, len(models.AllPriorities))
	for _, p := range models.AllPriorities {
		defaultPriorities = append(defaultPriorities, string(p))
	}

	cmd.Flags().StringVar(&opts.profileFile, "profile", "", "Wizard profile file (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", formatter.FormatHuman, "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&opts.vehicleType, "type", "", "Vehicle type (car, motorcycle, scooty, all)")
	cmd.Flags().StringVar(&opts.primaryUse, "use", "", "Primary use (office_daily, family_trips, highway, all_purpose)")
	cmd.Flags().StringVar(&opts.zone, "zone", "", "Lucknow zone (gomti_nagar, alambagh, rajajipuram, outskirts)")
	cmd.Flags().IntVar(&opts.distance, "distance", 30, "Daily distance in km")
	cmd.Flags().StringVar(&opts.parking, "parking", "", "Parking (street, building, basement)")
	cmd.Flags().StringSliceVar(&opts.drivers, "drivers", []string{string(models.DriverSelf)}, "Who drives (self, spouse, elderly, learner)")
	cmd.Flags().StringVar(&opts.budgetType, "budget-type", "", "Budget type (purchase, monthly)")
	cmd.Flags().Int64Var(&opts.budget, "budget", 0, "Budget in INR, or INR per month")
	cmd.Flags().StringSliceVar(&opts.priorities, "priorities", defaultPriorities, "All five priorities, most important first")

	return cmd
}

// buildProfile reads the profile file when given and lets explicitly set
// flags override it. Without a file every flag contributes.
func (o *recommendOptions) buildProfile(cmd *cobra.Command) (models.WizardProfile, error) {
	var profile models.WizardProfile
	fromFile := o.profileFile != ""
	if fromFile {
		data, err := os.ReadFile(o.profileFile)
		if err != nil {
			return profile, fmt.Errorf("failed to read profile: %w", err)
		}
		// YAML is a superset of JSON, so one decoder covers both.
		if err := yaml.Unmarshal(data, &profile); err != nil {
			return profile, fmt.Errorf("failed to parse profile %s: %w", o.profileFile, err)
		}
	}

	use := func(name string) bool {
		return !fromFile || cmd.Flags().Changed(name)
	}
	if use("type") && o.vehicleType != "" {
		profile.VehicleType = models.VehicleTypeFilter(o.vehicleType)
	}
	if use("use") && o.primaryUse != "" {
		profile.PrimaryUse = models.PrimaryUse(o.primaryUse)
	}
	if use("zone") && o.zone != "" {
		profile.Zone = models.Zone(o.zone)
	}
	if use("distance") {
		profile.DailyDistance = o.distance
	}
	if use("parking") && o.parking != "" {
		profile.Parking = models.ParkingSituation(o.parking)
	}
	if use("drivers") {
		profile.Drivers = profile.Drivers[:0]
		for _, d := range o.drivers {
			profile.Drivers = append(profile.Drivers, models.DriverProfile(d))
		}
	}
	if use("budget-type") && o.budgetType != "" {
		profile.BudgetType = models.BudgetType(o.budgetType)
	}
	if use("budget") {
		profile.BudgetAmount = o.budget
	}
	if use("priorities") {
		profile.Priorities = profile.Priorities[:0]
		for _, p := range o.priorities {
			profile.Priorities = append(profile.Priorities, models.Priority(p))
		}
	}

	profile = profile.WithDefaults()
	if err := profile.Validate(); err != nil {
		return profile, err
	}
	return profile, nil
}
