package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"pilotta/engine"
	"pilotta/experiments/metrics"
	"pilotta/game"
	"pilotta/player"
	"pilotta/searcher"
	"pilotta/strategy"
)

type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Wins counts the games won by each agent id.
func (r Result) Wins() map[int]int {
	wins := map[int]int{}
	for _, g := range r.Games {
		switch g.Winner {
		case game.TeamA.String():
			wins[g.TeamA]++
		case game.TeamB.String():
			wins[g.TeamB]++
		}
	}
	return wins
}

// Run plays every matchup of the experiment config.Games times. Game seeds
// are drawn from config.Seed, so a config with iteration-bounded agents
// replays identically.
func Run(ctx context.Context, config Config) (Result, error) {
	if err := config.Validate(); err != nil {
		return Result{}, err
	}
	seeds := rand.New(rand.NewSource(config.Seed))
	result := Result{}

	log.Info().Msgf("starting %s experiment...", config.Name)

	for mi, matchup := range config.Matchups {
		configA := config.agent(matchup[0])
		configB := config.agent(matchup[1])

		log.Info().Msgf("starting matchup %d of %d between teamA=%+v and teamB=%+v...", mi+1, len(config.Matchups), configA, configB)

		for i := 0; i < config.Games; i++ {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(config.Matchups), i+1, config.Games)

			record, moves, err := runGame(ctx, config, configA, configB, seeds.Uint64())
			if err != nil {
				return result, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			result.Games = append(result.Games, record)
			result.Moves = append(result.Moves, moves...)

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(config.Matchups), i+1, record.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(config.Matchups))
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	if config.OutputDir != "" {
		if err := write(config, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func write(config Config, result Result) error {
	writer, err := metrics.NewWriter(config.OutputDir, config.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(config.Agents); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame plays one match with configA on team A and configB on team B.
func runGame(ctx context.Context, config Config, configA, configB metrics.AgentConfig, seed uint64) (metrics.GameRecord, []metrics.MoveRecord, error) {
	rng := rand.New(rand.NewSource(seed))
	players := [game.NumSeats]engine.Player{}
	agents := [game.NumSeats]int{}
	for seat := range players {
		agent := configA
		if game.Seat(seat).Team() == game.TeamB {
			agent = configB
		}
		p, err := newPlayer(agent, rng.Uint64())
		if err != nil {
			return metrics.GameRecord{}, nil, err
		}
		players[seat] = p
		agents[seat] = agent.ID
	}

	ctrl := engine.NewController(engine.Config{TargetScore: config.TargetScore, MaxRounds: config.MaxRounds}, players, rng)
	start := time.Now()
	if err := ctrl.Run(ctx); err != nil {
		return metrics.GameRecord{}, nil, err
	}
	end := time.Now()
	s := ctrl.State()

	id := s.ID.String()
	moves := []metrics.MoveRecord{}
	for seat, p := range players {
		if search, ok := p.(*player.Search); ok {
			for _, mm := range search.Moves {
				moves = append(moves, metrics.MoveRecord{Game: id, Agent: agents[seat], MoveMetric: mm})
			}
		}
	}

	record := metrics.GameRecord{
		ID:    id,
		TeamA: configA.ID,
		TeamB: configB.ID,
		GameMetric: metrics.GameMetric{
			Dealer:     int(game.Seat(game.NumSeats - 1)),
			Winner:     s.Winner.String(),
			Scores:     s.Scores,
			Rounds:     s.Round,
			StartTime:  start,
			EndTime:    end,
			Duration:   end.Sub(start),
			TotalMoves: len(s.Log),
		},
	}
	return record, moves, nil
}

func newPlayer(config metrics.AgentConfig, seed uint64) (engine.Player, error) {
	policy, err := player.ParsePolicy(config.Policy)
	if err != nil {
		return nil, err
	}
	personality := strategy.Balanced
	if config.Personality != "" {
		if personality, err = strategy.ParsePersonality(config.Personality); err != nil {
			return nil, err
		}
	}

	switch policy {
	case player.MCTSPolicy:
		rng := rand.New(rand.NewSource(seed))
		return player.NewSearch(personality, createMCTS(config, rng.Uint64()), config.Temperature, rng), nil
	case player.RandomPolicy:
		return player.NewRandom(rand.New(rand.NewSource(seed))), nil
	default:
		return player.NewHeuristic(personality), nil
	}
}

func createMCTS(config metrics.AgentConfig, seed uint64) *searcher.MCTS {
	options := []searcher.Option{searcher.WithSeed(seed)}

	if config.Iterations > 0 {
		options = append(options, searcher.WithIterations(config.Iterations))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	if config.Determinizations > 0 {
		options = append(options, searcher.WithDeterminizations(config.Determinizations))
	}
	if config.Workers > 0 {
		options = append(options, searcher.WithWorkers(config.Workers))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(options...)
}
