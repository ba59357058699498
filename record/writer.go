// Package record writes and reads finished-run records as JSON files.
package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"raidterm/engine"
	"raidterm/types"
)

const fileExt = ".json"

// RunRecord is the persisted summary of one run.
type RunRecord struct {
	Date       string   `json:"date"`
	Seed       int64    `json:"seed"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Difficulty int      `json:"difficulty"`
	Turns      int      `json:"turns"`
	Kills      int      `json:"kills"`
	Gold       int      `json:"gold"`
	Level      int      `json:"level"`
	Outcome    string   `json:"outcome"`
	Board      []string `json:"board"` // one string per row, see types.TileKind.Letter
}

// Writer keeps a run record on disk up to date while the run is played.
type Writer struct {
	FilePath string
	rec      RunRecord
}

// NewWriter creates a new record file in dir and writes the initial state.
func NewWriter(dir string, cfg engine.GameConfig, seed int64) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	now := time.Now()
	filename := fmt.Sprintf("%s_%dx%d%s", now.Format("2006-01-02_150405"), cfg.Width, cfg.Height, fileExt)

	w := &Writer{
		FilePath: filepath.Join(dir, filename),
		rec: RunRecord{
			Date:       now.Format("2006-01-02"),
			Seed:       seed,
			Width:      cfg.Width,
			Height:     cfg.Height,
			Difficulty: cfg.Difficulty,
			Level:      1,
			Outcome:    "in progress",
		},
	}
	if err := w.flush(); err != nil {
		return nil, err
	}
	return w, nil
}

// Update copies the engine's tally and board into the record and rewrites it.
func (w *Writer) Update(eng engine.GameEngine) error {
	sum := eng.Summary()
	w.rec.Turns = sum.Turns
	w.rec.Kills = sum.Kills
	w.rec.Gold = sum.Gold
	w.rec.Level = sum.Level
	if sum.Died {
		w.rec.Outcome = "died"
	}
	w.rec.Board = Snapshot(eng)
	return w.flush()
}

// Finish records the final state with the given outcome unless the run already ended in death.
func (w *Writer) Finish(eng engine.GameEngine, outcome string) error {
	if err := w.Update(eng); err != nil {
		return err
	}
	if w.rec.Outcome != "died" {
		w.rec.Outcome = outcome
	}
	return w.flush()
}

// Record returns a copy of the current record.
func (w *Writer) Record() RunRecord {
	rec := w.rec
	rec.Board = append([]string(nil), w.rec.Board...)
	return rec
}

func (w *Writer) flush() error {
	data, err := json.MarshalIndent(w.rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode run record: %w", err)
	}
	if err := os.WriteFile(w.FilePath, data, 0644); err != nil {
		return fmt.Errorf("write run record: %w", err)
	}
	return nil
}

// Snapshot encodes the board as rows of tile letters.
func Snapshot(eng engine.GameEngine) []string {
	rows := make([]string, eng.Height())
	for r := range rows {
		line := make([]byte, eng.Width())
		for c := range line {
			line[c] = eng.TileAt(types.TilePosition{Row: r, Col: c}).Kind.Letter()
		}
		rows[r] = string(line)
	}
	return rows
}
