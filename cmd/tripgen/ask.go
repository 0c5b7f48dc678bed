package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"tripgen/internal/modules/planner"
)

var (
	planCity    string
	planCountry string
	planDays    int
)

var placesCmd = &cobra.Command{
	Use:   "places",
	Short: "Ask the model for popular destinations once and print the JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := newPlanner(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		places, err := svc.ListPopularDestinations(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), places)
	},
}

var planCmd = &cobra.Command{
	Use:     "plan",
	Short:   "Generate one itinerary and print the JSON",
	Example: `  tripgen plan --city Jaipur --country India --days 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := newPlanner(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		itinerary, err := svc.GenerateItinerary(cmd.Context(), planner.PlanRequest{
			City:    planCity,
			Country: planCountry,
			Days:    planDays,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), itinerary)
	},
}

func init() {
	planCmd.Flags().StringVar(&planCity, "city", planner.DefaultCity, "destination city")
	planCmd.Flags().StringVar(&planCountry, "country", planner.DefaultCountry, "destination country")
	planCmd.Flags().IntVar(&planDays, "days", planner.DefaultDays, "trip length in days")
}

func newPlanner(cmd *cobra.Command) (*planner.Service, func(), error) {
	if err := requireCredential(); err != nil {
		return nil, nil, err
	}
	provider, closeFn, err := newProvider(cmd.Context(), cfg.LLM)
	if err != nil {
		return nil, nil, err
	}
	return planner.NewService(provider, cfg.LLM.Timeout, logger), closeFn, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
