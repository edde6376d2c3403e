package main

import (
	"flag"
	"fmt"
	"os"

	pg "pets-api/internal/adapters/storage/postgres"
	"pets-api/internal/config"
)

func main() {
	config.LoadDotEnvUp(8)

	var (
		direction = flag.String("direction", "up", "up|down")
		steps     = flag.Int("steps", 0, "number of steps (0 = all)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(2)
	}
	if cfg.Postgres.DSN == "" {
		fmt.Fprintln(os.Stderr, "DB_DSN is required")
		os.Exit(2)
	}

	var down bool
	switch *direction {
	case "up":
	case "down":
		down = true
	default:
		fmt.Fprintln(os.Stderr, "invalid -direction, must be up|down")
		os.Exit(2)
	}

	if err := pg.Migrate(cfg.Postgres.DSN, down, *steps); err != nil {
		fmt.Fprintln(os.Stderr, "migration error:", err)
		os.Exit(1)
	}

	fmt.Println("migrations:", *direction, "ok")
}
