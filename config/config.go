package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

var (
	cfgFile   = "raidterm/config.json"
	runsDir   = "raidterm/runs"
	debugFile = "raidterm/debug.log"
)

const (
	minBoard = 3
	maxBoard = 12
	minLevel = 1
	maxLevel = 10
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor     int `json:"board"`
	ConnectorColor int `json:"connector"`
	CrossingColor  int `json:"crossing"`
	CursorColorFG  int `json:"cursor_fg"`
	CursorColorBG  int `json:"cursor_bg"`
	PickedColorBG  int `json:"picked_bg"`
	SwordColor     int `json:"sword"`
	ShieldColor    int `json:"shield"`
	PotionColor    int `json:"potion"`
	CoinColor      int `json:"coin"`
	SkullColor     int `json:"skull"`
}

type ConfigSymbols struct {
	Sword  rune `json:"sword"`
	Shield rune `json:"shield"`
	Potion rune `json:"potion"`
	Coin   rune `json:"coin"`
	Skull  rune `json:"skull"`
}

type Theme struct {
	DrawCursorBackground bool `json:"draw_cursor_bg"`
	// StickyCrossings keeps an X crossing marker once written instead of
	// letting a later connector overwrite it.
	StickyCrossings bool          `json:"sticky_crossings"`
	Colors          ConfigColors  `json:"colors"`
	Symbols         ConfigSymbols `json:"symbols"`
}

// BoardConfig holds the defaults for a new run.
type BoardConfig struct {
	Width      int   `json:"width"`
	Height     int   `json:"height"`
	Difficulty int   `json:"difficulty"`
	Seed       int64 `json:"seed"`
}

// SoundConfig toggles audio cues.
type SoundConfig struct {
	Enabled bool `json:"enabled"`
}

type Config struct {
	Theme    Theme       `json:"theme"`
	Board    BoardConfig `json:"board"`
	Sound    SoundConfig `json:"sound"`
	DebugLog bool        `json:"debug_log"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	s := c.Theme.Symbols
	for _, r := range []rune{s.Sword, s.Shield, s.Potion, s.Coin, s.Skull} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Board.Width < minBoard || c.Board.Width > maxBoard || c.Board.Height < minBoard || c.Board.Height > maxBoard {
		return &InvalidConfig{fmt.Sprintf("board must be between %dx%d and %dx%d", minBoard, minBoard, maxBoard, maxBoard)}
	}
	if c.Board.Difficulty < minLevel || c.Board.Difficulty > maxLevel {
		return &InvalidConfig{fmt.Sprintf("difficulty must be between %d and %d", minLevel, maxLevel)}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

// HistoryDir returns the directory finished runs are recorded in.
func HistoryDir() string {
	return filepath.Join(xdg.DataHome, runsDir)
}

// DebugLogPath returns the path of the diagnostic log, creating its directory.
func DebugLogPath() (string, error) {
	return xdg.DataFile(debugFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
