// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/itinera/internal/core/catalog"
)

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <fixture.yaml>",
		Short: "Import a YAML fixture into the SQLite catalog",
		Long: `Validates a YAML fixture and writes it into the SQLite file given by
--catalog, creating the tables when needed. The previous contents of the
file are replaced. Nothing is written if the fixture does not build into a
consistent catalog.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch strings.ToLower(filepath.Ext(opts.catalogPath)) {
			case ".db", ".sqlite", ".sqlite3":
			default:
				return fmt.Errorf("--catalog must be a SQLite file, got %q", opts.catalogPath)
			}

			fixture, err := catalog.OpenYAML(args[0])
			if err != nil {
				return err
			}

			built, err := catalog.Build(cmd.Context(), fixture)
			if err != nil {
				return fmt.Errorf("fixture %s: %w", args[0], err)
			}

			target, err := catalog.OpenSQLite(opts.catalogPath)
			if err != nil {
				return err
			}
			defer target.Close()

			if err := target.EnsureSchema(cmd.Context()); err != nil {
				return err
			}
			if err := target.Import(cmd.Context(), fixture); err != nil {
				return err
			}

			stats := built.Stats()
			cmd.Printf("Imported %d regions, %d tours, %d attractions, %d links into %s\n",
				stats.Regions, stats.Tours, stats.Attractions, stats.Edges, opts.catalogPath)
			return nil
		},
	}
}
