package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig describes one automated team in an experiment.
type AgentConfig struct {
	ID               int           `yaml:"id"`
	Policy           string        `yaml:"policy"`
	Personality      string        `yaml:"personality"`
	Workers          int           `yaml:"workers"`
	Duration         time.Duration `yaml:"duration"`
	Iterations       int           `yaml:"iterations"`
	Cutoff           int           `yaml:"cutoff"`
	Determinizations int           `yaml:"determinizations"`
	Temperature      float64       `yaml:"temperature"`
}

type GameRecord struct {
	ID    string // Match ID
	TeamA int    // AgentConfig.ID
	TeamB int    // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game  string // GameRecord.ID
	Agent int    // AgentConfig.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "policy", "personality", "workers", "duration", "iterations", "cutoff", "determinizations", "temperature"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Policy,
			config.Personality,
			strconv.Itoa(config.Workers),
			config.Duration.String(),
			strconv.Itoa(config.Iterations),
			strconv.Itoa(config.Cutoff),
			strconv.Itoa(config.Determinizations),
			strconv.FormatFloat(config.Temperature, 'f', -1, 64),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "team_a", "team_b", "dealer", "winner", "score_a", "score_b", "rounds", "moves", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			strconv.Itoa(record.TeamA),
			strconv.Itoa(record.TeamB),
			strconv.Itoa(record.Dealer),
			record.Winner,
			strconv.Itoa(record.Scores[0]),
			strconv.Itoa(record.Scores[1]),
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "agent", "round", "trick", "seat", "card", "workers", "determinizations", "duration", "episodes", "full_playouts", "fell_back"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game,
			strconv.Itoa(record.Agent),
			strconv.Itoa(record.Round),
			strconv.Itoa(record.Trick),
			strconv.Itoa(record.Seat),
			record.Card,
			strconv.Itoa(record.Workers),
			strconv.Itoa(record.Determinizations),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.FullPlayouts),
			strconv.FormatBool(record.FellBack),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	// Write header
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	// Write each row
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}
