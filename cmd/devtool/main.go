package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	registry := NewRegistry(
		&MigrateCommand{},
		&WaitForDBCommand{},
		&HealthCheckCommand{},
		&WatchCommand{},
		&DeadLettersCommand{},
	)

	if err := registry.Dispatch(os.Args[1:]); err != nil {
		if !errors.Is(err, errUnknownCommand) || len(os.Args) > 1 {
			PrintError("%v", err)
		}
		os.Exit(1)
	}
}

// getEnv returns the environment value for key or fallback when unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// apiURL is the base URL of a running WheelShow instance
func apiURL() string {
	return getEnv("API_URL", fmt.Sprintf("http://localhost:%s", getEnv("PORT", "8080")))
}
