package experiments

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pilotta/experiments/metrics"
	"pilotta/meta"
	"pilotta/player"
	"pilotta/strategy"
)

// Config describes an experiment: a set of agents and the matchups to play
// between them. In each matchup the first agent holds team A (seats 0 and 2)
// and the second holds team B.
type Config struct {
	Name        string                `yaml:"name"`
	Games       int                   `yaml:"games"` // Per matchup
	TargetScore int                   `yaml:"target_score"`
	MaxRounds   int                   `yaml:"max_rounds"`
	Seed        uint64                `yaml:"seed"`
	OutputDir   string                `yaml:"output_dir"` // Empty skips writing CSVs
	Agents      []metrics.AgentConfig `yaml:"agents"`
	Matchups    [][2]int              `yaml:"matchups"`
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read experiment config: %w", err)
	}
	config := Config{
		Games:       1,
		TargetScore: meta.TARGET_SCORE,
		MaxRounds:   meta.MAX_ROUNDS,
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse experiment config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Name == "" {
		return errors.New("experiment has no name")
	}
	if c.Games <= 0 {
		return fmt.Errorf("experiment %s: games must be positive, got %d", c.Name, c.Games)
	}
	if len(c.Matchups) == 0 {
		return fmt.Errorf("experiment %s: no matchups", c.Name)
	}
	seen := map[int]bool{}
	for _, agent := range c.Agents {
		if seen[agent.ID] {
			return fmt.Errorf("experiment %s: duplicate agent id %d", c.Name, agent.ID)
		}
		seen[agent.ID] = true
		if _, err := player.ParsePolicy(agent.Policy); err != nil {
			return fmt.Errorf("experiment %s: agent %d: %w", c.Name, agent.ID, err)
		}
		if agent.Personality != "" {
			if _, err := strategy.ParsePersonality(agent.Personality); err != nil {
				return fmt.Errorf("experiment %s: agent %d: %w", c.Name, agent.ID, err)
			}
		}
	}
	for _, m := range c.Matchups {
		for _, id := range m {
			if !seen[id] {
				return fmt.Errorf("experiment %s: matchup references unknown agent %d", c.Name, id)
			}
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}
