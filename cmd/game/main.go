package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tatianab/worldle/internal/config"
	"github.com/tatianab/worldle/internal/directory"
	"github.com/tatianab/worldle/internal/engine"
	"github.com/tatianab/worldle/internal/logging"
	"github.com/tatianab/worldle/internal/models"
	"github.com/tatianab/worldle/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Printf("Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	countries, err := models.LoadCountries(cfg.DataPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to load countries")
		fmt.Printf("Error loading countries: %v\n", err)
		os.Exit(1)
	}
	dir, err := directory.New(countries)
	if err != nil {
		log.Error().Err(err).Msg("invalid country data")
		fmt.Printf("Error building country directory: %v\n", err)
		os.Exit(1)
	}
	log.Info().Int("countries", dir.Len()).Str("source", cfg.DataPath).Msg("country directory loaded")

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	var hinter tui.Hinter
	if cfg.HintsEnabled() {
		eng, err := engine.NewEngine(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			fmt.Printf("Error creating hint engine: %v\n", err)
			os.Exit(1)
		}
		defer eng.Close()
		hinter = eng
	}

	if err := tui.Run(dir, rng, hinter); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
