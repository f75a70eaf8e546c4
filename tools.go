//go:build tools

// Package tools pins the versions of the command-line tools used by the
// Makefile: linting, migrations, swagger generation and benchmark comparison.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "golang.org/x/perf/cmd/benchstat"
)
