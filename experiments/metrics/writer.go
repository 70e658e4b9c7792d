package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	header := []string{"id", "player", "opponent", "seed", "player_score", "opponent_score", "outcome", "rounds", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Player.String(),
			record.Opponent.String(),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.PlayerScore),
			strconv.Itoa(record.OpponentScore),
			record.Outcome.String(),
			strconv.Itoa(record.Rounds),
			record.Duration.String(),
		})
	}
	return w.write("matches.csv", header, rows)
}

func (w *Writer) WriteStandings(standings []Standing) error {
	header := []string{"rank", "strategy", "matches", "total_score", "mean_score", "wins", "losses", "ties"}
	rows := make([][]string, 0, len(standings))
	for i, s := range standings {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.Kind.String(),
			strconv.Itoa(s.Matches),
			strconv.Itoa(s.TotalScore),
			strconv.FormatFloat(s.MeanScore(), 'f', 2, 64),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Ties),
		})
	}
	return w.write("standings.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
