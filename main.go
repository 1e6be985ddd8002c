package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"pilotta/engine"
	"pilotta/experiments"
	"pilotta/game"
	"pilotta/meta"
	"pilotta/player"
	"pilotta/searcher"
	"pilotta/strategy"
)

func main() {
	configPath := flag.String("config", "", "Experiment config (YAML)")
	preset := flag.String("preset", "", "Built-in experiment: throughput, strength, cutoff or personality")
	level := flag.String("level", "info", "Log level")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed of the self-play match")
	rounds := flag.Int("rounds", meta.MAX_ROUNDS, "Maximum rounds of the self-play match")
	duration := flag.Duration("duration", meta.SearchTimeBudget, "Search budget per card of the MCTS seats")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *configPath != "":
		config, err := experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment")
		}
		runExperiment(ctx, config)
	case *preset != "":
		build, ok := experiments.Presets[*preset]
		if !ok {
			log.Fatal().Msgf("unknown preset %q", *preset)
		}
		runExperiment(ctx, build())
	default:
		selfPlay(ctx, *seed, *rounds, *duration)
	}
}

func runExperiment(ctx context.Context, config experiments.Config) {
	result, err := experiments.Run(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msgf("experiment %s failed", config.Name)
	}
	for id, wins := range result.Wins() {
		log.Info().Msgf("agent %d won %d of %d games", id, wins, len(result.Games))
	}
}

// selfPlay runs one match with MCTS on team A and heuristic players on team B.
func selfPlay(ctx context.Context, seed uint64, rounds int, duration time.Duration) {
	rng := rand.New(rand.NewSource(seed))
	newSearch := func() engine.Player {
		mcts := searcher.NewMCTS(
			searcher.WithDuration(duration),
			searcher.WithWorkers(meta.GO_ROUTINES),
			searcher.WithSeed(rng.Uint64()),
		)
		return player.NewSearch(strategy.Adaptive, mcts, 0, nil)
	}
	players := [game.NumSeats]engine.Player{
		newSearch(), player.NewHeuristic(strategy.Balanced),
		newSearch(), player.NewHeuristic(strategy.Aggressive),
	}

	log.Info().Msgf("starting self-play with seed %d", seed)
	ctrl := engine.NewController(engine.Config{TargetScore: meta.TARGET_SCORE, MaxRounds: rounds}, players, rng)
	if err := ctrl.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("self-play aborted")
	}

	s := ctrl.State()
	for i, rs := range s.History {
		log.Info().Msgf("round %d: %d-%d", i+1, rs.Final[game.TeamA], rs.Final[game.TeamB])
	}
	log.Info().Msgf("final score %d-%d, winner %s", s.Scores[game.TeamA], s.Scores[game.TeamB], s.Winner)
}
