package main

import (
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/WheelShow_Go/internal/config"
	"github.com/osse101/WheelShow_Go/internal/database"
)

// dbConnString builds the connection string from DB_URL or the DB_* variables
func dbConnString() string {
	if url := os.Getenv("DB_URL"); url != "" {
		return url
	}
	return database.ConnString(
		getEnv(config.EnvDBUser, config.DefaultDBUser),
		getEnv(config.EnvDBPassword, config.DefaultDBPassword),
		getEnv(config.EnvDBHost, "localhost"),
		getEnv(config.EnvDBPort, config.DefaultDBPort),
		getEnv(config.EnvDBName, config.DefaultDBName),
		getEnv(config.EnvDBSSLMode, config.DefaultDBSSLMode),
	)
}

func openPool() (*pgxpool.Pool, error) {
	return database.NewPool(dbConnString(), 2, database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
}
