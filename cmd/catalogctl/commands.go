package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/recommend"
	"storefront/internal/domain/scoring"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	catalogPath  string
	coveragePath string
	asJSON       bool
}

func rootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Check and explore the storefront catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "Catalog YAML file (defaults to the embedded catalog)")
	cmd.PersistentFlags().StringVar(&opts.coveragePath, "coverage", "", "Coverage GeoJSON file")
	cmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Print JSON instead of a table")

	cmd.AddCommand(
		validateCmd(opts),
		scoreCmd(opts),
		rankCmd(opts),
		trueCostCmd(opts),
	)

	return cmd
}

func (o *rootOptions) load() (*catalog.Catalog, error) {
	if o.catalogPath == "" {
		return catalog.Default()
	}

	return catalog.LoadFile(o.catalogPath, o.coveragePath)
}

func validateCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load the catalog and report invariant violations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.load()
			if err != nil {
				return err
			}

			warnings := c.Lint()
			out := cmd.OutOrStdout()
			if opts.asJSON {
				if err := writeJSON(out, warnings); err != nil {
					return err
				}
			} else {
				for _, w := range warnings {
					fmt.Fprintf(out, "warning: %s\n", w)
				}
				fmt.Fprintf(out, "catalog %s: %d devices, %d plans, %d warnings\n",
					c.Version(), len(c.Devices()), len(c.Plans()), len(warnings))
			}

			if strict && len(warnings) > 0 {
				return errors.Errorf("%d catalog warnings", len(warnings))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the catalog has warnings")

	return cmd
}

func scoreCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score <device-id>",
		Short: "Print the score card of a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.load()
			if err != nil {
				return err
			}

			device, ok := c.Device(args[0])
			if !ok {
				return errors.Errorf("device %q not found", args[0])
			}

			card := scoring.Card(device)
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, card)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "DEVICE\t%s %s\n", device.Brand, device.Name)
			fmt.Fprintf(tw, "gaming\t%d\n", card.Gaming)
			fmt.Fprintf(tw, "battery\t%d\n", card.Battery)
			fmt.Fprintf(tw, "camera\t%d\n", card.Camera)
			fmt.Fprintf(tw, "work\t%d\n", card.Work)
			fmt.Fprintf(tw, "prestige\t%d\n", card.Prestige)
			fmt.Fprintf(tw, "value\t%d\n", card.Value)
			fmt.Fprintf(tw, "durability\t%d\n", card.Durability)
			fmt.Fprintf(tw, "kid safety\t%d\n", card.KidSafety)

			return tw.Flush()
		},
	}
}

func rankCmd(opts *rootOptions) *cobra.Command {
	var query recommend.FinderQuery

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Run the phone finder against the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if query.Priority < 0 || query.Priority > 100 {
				return errors.Errorf("priority %d outside 0..100", query.Priority)
			}

			c, err := opts.load()
			if err != nil {
				return err
			}

			matches := recommend.Find(c.Devices(), query)
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, matches)
			}
			if len(matches) == 0 {
				fmt.Fprintln(out, "no matching devices")

				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDEVICE\tPRICE/36\tMATCH\tGAMING")
			for _, m := range matches {
				fmt.Fprintf(tw, "%s\t%s %s\t%.2f\t%d\t%d\n",
					m.ID, m.Brand, m.Name, m.Price36, m.Annotation.MatchScore, m.Annotation.GamingScore)
			}

			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&query.Style, "style", "", "Category tag the device must carry")
	cmd.Flags().Float64Var(&query.Budget, "budget", 0, "Ceiling on the 36-month price, 0 for none")
	cmd.Flags().IntVar(&query.Priority, "priority", recommend.DefaultPriority, "0 camera ... 100 gaming")
	cmd.Flags().BoolVar(&query.GamingMode, "gaming", false, "Rank by gaming score")

	return cmd
}

func trueCostCmd(opts *rootOptions) *cobra.Command {
	var input recommend.TrueCostInput

	cmd := &cobra.Command{
		Use:   "true-cost",
		Short: "Compare the full-term cost of an offer with competitors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if input.DeviceMonthly < 0 || input.PlanMonthly < 0 || input.Promo < 0 {
				return errors.New("prices and promo must not be negative")
			}

			cost := recommend.CalculateTrueCost(input)
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, cost)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PROVIDER\tMONTHLY\tUPFRONT\tTOTAL")
			fmt.Fprintf(tw, "storefront\t%.2f\t0.00\t%.2f\n", cost.TrueMonthly, cost.Total)
			for _, row := range cost.Competitors {
				fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\n", row.Provider, row.Monthly, row.Upfront, row.Total)
			}
			fmt.Fprintf(tw, "\nover %d months\n", cost.Months)

			return tw.Flush()
		},
	}

	cmd.Flags().Float64Var(&input.DeviceMonthly, "device", 0, "Device monthly payment")
	cmd.Flags().Float64Var(&input.PlanMonthly, "plan", 0, "Plan monthly price")
	cmd.Flags().IntVar(&input.Months, "months", recommend.DefaultTermMonths, "Term in months")
	cmd.Flags().Float64Var(&input.Promo, "promo", 0, "Monthly promotional credit")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}
