package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-dm-tools/internal/cli"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
