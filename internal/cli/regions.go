// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/itinera/internal/core/catalog"
)

func newRegionsCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List the regions of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			holder, err := opts.loadCatalog(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			regions := catalog.NewService(holder, opts.logger(cmd)).ListRegions(cmd.Context())
			if asJSON {
				data, err := json.MarshalIndent(regions, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal regions: %w", err)
				}
				cmd.Println(string(data))
				return nil
			}

			if len(regions) == 0 {
				cmd.Println("No regions found.")
				return nil
			}
			for _, region := range regions {
				cmd.Printf("%-12s %-30s %d tours\n", region.ID, region.Name, region.TourCount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output regions as JSON")
	return cmd
}
