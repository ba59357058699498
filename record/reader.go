package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"raidterm/types"
)

// RunInfo is a record together with the file it was read from.
type RunInfo struct {
	RunRecord
	FilePath string
	FileName string
}

// Load reads a single run record.
func Load(filePath string) (*RunInfo, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	info := &RunInfo{
		FilePath: filePath,
		FileName: filepath.Base(filePath),
	}
	if err := json.Unmarshal(data, &info.RunRecord); err != nil {
		return nil, fmt.Errorf("parse run record %s: %w", filepath.Base(filePath), err)
	}
	return info, nil
}

// List scans a directory for run records, newest first (file names carry timestamps).
// Unreadable files are skipped.
func List(dir string) ([]RunInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history dir: %w", err)
	}

	var runs []RunInfo
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		info, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		runs = append(runs, *info)
	}
	return runs, nil
}

// Kinds decodes the stored board rows back into tile kinds, indexed [row][col].
func (r *RunRecord) Kinds() [][]types.TileKind {
	kinds := make([][]types.TileKind, len(r.Board))
	for row, line := range r.Board {
		kinds[row] = make([]types.TileKind, len(line))
		for col := 0; col < len(line); col++ {
			kinds[row][col] = types.KindFromLetter(line[col])
		}
	}
	return kinds
}
