package main

import (
	"context"
	"fmt"

	"github.com/osse101/WheelShow_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply the embedded round log migrations (up, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	subcmd := "up"
	if len(args) > 0 {
		subcmd = args[0]
	}
	if subcmd != "up" && subcmd != "status" {
		return fmt.Errorf("unknown subcommand %q: expected up or status", subcmd)
	}

	pool, err := openPool()
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx := context.Background()
	if subcmd == "up" {
		PrintHeader("Applying migrations...")
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
	}

	version, err := database.MigrationVersion(ctx, pool)
	if err != nil {
		return err
	}
	PrintSuccess("Schema version: %d", version)
	return nil
}
