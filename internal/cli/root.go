// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cli implements the tourpack command line tool.

tourpack plans tour packages offline against a catalog file instead of the
PostgreSQL database used by the API server. YAML fixtures and SQLite exports
are supported; the format is chosen by file extension.
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/itinera/internal/core/catalog"
	"github.com/taibuivan/itinera/internal/platform/constants"
)

// ErrUnsupportedCatalog is returned for catalog files of unknown type.
var ErrUnsupportedCatalog = errors.New("unsupported catalog file (want .yaml, .yml, .db, .sqlite or .sqlite3)")

// options are the persistent flags shared by every subcommand.
type options struct {
	catalogPath string
	verbose     bool
}

// NewRootCmd builds the tourpack command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tourpack",
		Short: "Plan the most valuable tour package of a region",
		Long: `tourpack loads a tour catalog from a YAML fixture or SQLite file and
selects, for one region, the set of tours with the highest total cultural
value that fits a day limit and a budget without visiting any attraction twice.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.catalogPath, "catalog", "c", "", "catalog file (.yaml, .yml, .db, .sqlite, .sqlite3)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log catalog loading and search details to stderr")

	root.AddCommand(
		newRegionsCmd(opts),
		newGenerateCmd(opts),
		newImportCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI with os.Args. Results go to stdout, errors and logs
// to stderr.
func Execute() error {
	root := NewRootCmd()
	root.SetOut(os.Stdout)
	return root.Execute()
}

// logger writes to stderr so stdout stays machine readable.
func (opts *options) logger(cmd *cobra.Command) *slog.Logger {
	if !opts.verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})).
		With(slog.String("app", "tourpack"))
}

// loadCatalog opens the catalog file and builds a holder over it.
func (opts *options) loadCatalog(ctx context.Context, cmd *cobra.Command) (*catalog.Holder, error) {
	source, closeSource, err := openSource(opts.catalogPath)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	loadCtx, cancel := context.WithTimeout(ctx, constants.CatalogLoadTimeout)
	defer cancel()

	holder, err := catalog.NewHolder(loadCtx, source, opts.logger(cmd))
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", opts.catalogPath, err)
	}
	return holder, nil
}

// openSource picks the catalog source for path by extension.
func openSource(path string) (catalog.Source, func(), error) {
	if path == "" {
		return nil, nil, errors.New("--catalog is required")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		source, err := catalog.OpenYAML(path)
		if err != nil {
			return nil, nil, err
		}
		return source, func() {}, nil

	case ".db", ".sqlite", ".sqlite3":
		source, err := catalog.OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return source, func() { _ = source.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("%s: %w", path, ErrUnsupportedCatalog)
	}
}
