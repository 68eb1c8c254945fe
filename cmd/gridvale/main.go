// Package main is the entry point for Gridvale.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/gridvale/internal/game"
	"github.com/samdwyer/gridvale/internal/telemetry"
)

func main() {
	// Load .env for local development; env vars may also be set directly
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	savePath := flag.String("save", "gridvale.db", "path to the save database")
	saveSlot := flag.Int("slot", 1, "save slot to load")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	flag.Parse()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(game.Config{
		Seed:     *seed,
		SavePath: *savePath,
		SaveSlot: *saveSlot,
	})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_GRIDVALE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_GRIDVALE_DATASET")
	if dataset == "" {
		dataset = "gridvale"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
