// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command tourpack plans tour packages offline from a catalog file.
//
//	tourpack --catalog data/catalog/riviera.yaml regions
//	tourpack --catalog data/catalog/riviera.yaml generate R --max-days 3 --max-budget 150
//	tourpack --catalog catalog.db import data/catalog/riviera.yaml
package main

import (
	"os"

	"github.com/taibuivan/itinera/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
