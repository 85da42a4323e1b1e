package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/etfcalc/etf-calculator/internal/cli"
)

func main() {
	// Optional .env for settings like ETFCALC_FONT.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if cli.IsInputError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
