// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/itinera/internal/core/planner"
	"github.com/taibuivan/itinera/internal/platform/apperr"
	"github.com/taibuivan/itinera/internal/platform/constants"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		maxDays       int
		maxBudget     float64
		maxCandidates int
		timeout       time.Duration
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:   "generate <region>",
		Short: "Generate the optimal tour package for a region",
		Long: `Runs the exhaustive package search over every tour of the region.
Limits left unset are unbounded. Among packages of equal value the first one
found in ascending tour id order is returned.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			holder, err := opts.loadCatalog(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			var constraints planner.Constraints
			if cmd.Flags().Changed("max-days") {
				constraints.MaxDays = &maxDays
			}
			if cmd.Flags().Changed("max-budget") {
				constraints.MaxBudget = &maxBudget
			}

			service := planner.NewService(holder, planner.NopCache{}, opts.logger(cmd), planner.Options{
				SearchTimeout: timeout,
				MaxCandidates: maxCandidates,
			})

			pkg, err := service.GeneratePackage(cmd.Context(), args[0], constraints)
			if err != nil {
				return describe(err)
			}

			if asJSON {
				data, err := json.MarshalIndent(planner.NewPackageResponse(pkg), "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal package: %w", err)
				}
				cmd.Println(string(data))
				return nil
			}

			printPackage(cmd, pkg)
			return nil
		},
	}

	cmd.Flags().IntVarP(&maxDays, "max-days", "d", 0, "maximum total days (unbounded when unset)")
	cmd.Flags().Float64VarP(&maxBudget, "max-budget", "b", 0, "maximum total cost (unbounded when unset)")
	cmd.Flags().IntVar(&maxCandidates, "max-candidates", constants.DefaultMaxCandidates, "refuse regions with more tours than this (0 disables)")
	cmd.Flags().DurationVar(&timeout, "timeout", constants.DefaultSearchTimeout, "abort the search after this long")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output the package as JSON")
	return cmd
}

func printPackage(cmd *cobra.Command, pkg *planner.Package) {
	cmd.Printf("Region %s\n", pkg.RegionID)
	if len(pkg.Tours) == 0 {
		cmd.Println("  No tours selected.")
	}
	for _, tour := range pkg.Tours {
		name := tour.Name
		if name == "" {
			name = tour.ID
		}
		cmd.Printf("  %-10s %-30s %2d days  %10.2f  value %g\n", tour.ID, name, tour.DurationDays, tour.Cost, tour.CulturalValue())
	}
	cmd.Printf("Total: %d days, cost %.2f, cultural value %g\n", pkg.TotalDays, pkg.TotalCost, pkg.TotalValue)
	cmd.Printf("Searched %d candidates, %d nodes in %s\n", pkg.Stats.Candidates, pkg.Stats.Nodes, pkg.Stats.Duration.Round(time.Microsecond))
}

// describe turns API errors into one-line CLI messages.
func describe(err error) error {
	appErr := apperr.As(err)
	if appErr == nil {
		return err
	}

	message := appErr.Message
	for _, detail := range appErr.Details {
		message += fmt.Sprintf("; %s: %s", detail.Field, detail.Message)
	}
	if appErr.Cause != nil {
		return fmt.Errorf("%s: %w", message, appErr.Cause)
	}
	return errors.New(message)
}
