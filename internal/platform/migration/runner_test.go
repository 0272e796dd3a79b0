// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"postgres_scheme", "postgres://u:p@db:5432/itinera", "pgx5://u:p@db:5432/itinera"},
		{"postgresql_scheme", "postgresql://db/itinera?sslmode=disable", "pgx5://db/itinera?sslmode=disable"},
		{"already_pgx5", "pgx5://db/itinera", "pgx5://db/itinera"},
		{"keyword_dsn", "host=db dbname=itinera", "host=db dbname=itinera"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toPgx5DSN(tt.in))
		})
	}
}
