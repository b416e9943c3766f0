package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog/log"
	"github.com/tatianab/worldle/internal/config"
	"github.com/tatianab/worldle/internal/directory"
	"github.com/tatianab/worldle/internal/engine"
	"github.com/tatianab/worldle/internal/game"
	"github.com/tatianab/worldle/internal/geo"
	"github.com/tatianab/worldle/internal/logging"
	"github.com/tatianab/worldle/internal/models"
)

const maxTurns = 20

func main() {
	rounds := flag.Int("rounds", 5, "number of rounds to play")
	seed := flag.Uint64("seed", 1, "seed for target selection")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if _, err := logging.Setup("-", cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}

	countries, err := models.LoadCountries(cfg.DataPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load countries")
	}
	dir, err := directory.New(countries)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build directory")
	}

	// Optional Gemini hint for the first turn of each round.
	var eng *engine.Engine
	if cfg.HintsEnabled() {
		eng, err = engine.NewEngine(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create hint engine")
		}
		defer eng.Close()
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	opener := rand.New(rand.NewPCG(*seed+1, *seed))
	total := 0
	for round := 1; round <= *rounds; round++ {
		session, err := game.Start(dir, rng)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start round")
		}
		fmt.Printf("--- Round %d ---\n", round)

		if eng != nil {
			hint, err := eng.Hint(ctx, session.Target(), nil, 1)
			if err != nil {
				fmt.Printf("Hint failed: %v\n", err)
			} else {
				fmt.Printf("Hint: %s\n", hint)
			}
		}

		candidates := dir.Countries()
		next := candidates[opener.IntN(len(candidates))]
		for turn := 1; turn <= maxTurns && session.State() == game.InProgress; turn++ {
			res, err := session.SubmitGuess(next.Name)
			if err != nil {
				fmt.Printf("Error submitting %s: %v\n", next.Name, err)
				break
			}
			fmt.Printf("Guess %d: %-30s ~ %8.1fkm %s\n", turn, res.Name, res.DistanceKm, res.Direction.Arrow())
			if res.State == game.Won {
				break
			}

			candidates = narrow(candidates, next, res)
			if len(candidates) == 0 {
				fmt.Println("No candidates left, giving up.")
				_ = session.GiveUp()
				break
			}
			next = candidates[0]
		}

		if session.State() == game.Won {
			fmt.Printf("Solved %s in %d tries\n\n", session.Target().Name, session.Tries())
			total += session.Tries()
		} else {
			if session.State() == game.InProgress {
				_ = session.GiveUp()
			}
			fmt.Printf("Gave up, the answer was %s\n\n", session.Target().Name)
		}
	}
	fmt.Printf("Total tries over %d rounds: %d\n", *rounds, total)
}

// narrow keeps the countries that would have produced the same feedback for
// guess as the hidden target did.
func narrow(candidates []models.Country, guess models.Country, res game.Result) []models.Country {
	var out []models.Country
	for _, c := range candidates {
		if c.Code == guess.Code {
			continue
		}
		m := geo.Measure(guess.Point(), c.Point())
		if m.DistanceKm == res.DistanceKm && m.Direction == res.Direction {
			out = append(out, c)
		}
	}
	return out
}
