// raidterm is a terminal dungeon raid: chain matching tiles to fight your way down.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"raidterm/config"
	"raidterm/engine"
	"raidterm/engine/raid"
	"raidterm/record"
	"raidterm/sound"
	"raidterm/types"
	"raidterm/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagWidth      = flag.Int("width", 0, "Board width in tiles (3-12)")
	flagHeight     = flag.Int("height", 0, "Board height in tiles (3-12)")
	flagDifficulty = flag.Int("difficulty", 0, "Difficulty level (1-10)")
	flagSeed       = flag.Int64("seed", 0, "RNG seed; 0 picks one from the clock")
	flagQuickStart = flag.Bool("play", false, "Start a run immediately, skipping the setup card")
	flagNoSound    = flag.Bool("nosound", false, "Disable audio cues")
	flagDebug      = flag.Bool("debug", false, "Write a diagnostic log to the XDG data directory")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var (
	app       *tview.Application
	rootPage  *tview.Pages
	gameBoard *ui.RaidBoardUI
	gameHint  *tview.TextView
	cfg       *config.Config
	sink      ui.EventSink = ui.NopSink{}
	sounds    *sound.Manager

	state       *ui.PlayState
	dispatcher  *ui.InputDispatcher
	runWriter   *record.Writer
	lastSummary types.RunSummary
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("raidterm %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		panic(err)
	}

	closeLog, err := openDebugLog(*flagDebug || cfg.DebugLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "debug log: %s\n", err)
		os.Exit(1)
	}
	defer closeLog()

	sounds = sound.NewManager()
	if cfg.Sound.Enabled && !*flagNoSound {
		if err := sounds.Initialize(); err != nil {
			sink.Event("sound_unavailable", "err", err)
		}
	}
	defer sounds.Close()

	quickStart := *flagQuickStart || *flagWidth > 0 || *flagHeight > 0 || *flagDifficulty > 0 || *flagSeed != 0

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ⚔ raidterm ")

	gameHint = tview.NewTextView()
	gameHint.SetTextColor(tcell.ColorGray)
	gameBoard = ui.NewRaidBoard(cfg, nil, sink)
	gameFrame := ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if dispatcher == nil {
			return event
		}
		quit := dispatcher.HandleKey(event)
		saveProgress()
		if quit {
			finishRun("abandoned")
			app.Stop()
			return nil
		}
		gameHint.SetText(ui.HintText(state.Engine))
		return nil
	})

	colorConfig := ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		if event.Key() == tcell.KeyRune && event.Rune() == 'x' {
			colorConfig.ToggleSticky()
			return nil
		}
		return event
	})

	history := ui.NewHistoryBrowser(config.HistoryDir(), themeGlyphs(cfg), sink, func() {
		rootPage.SwitchToPage("setup")
	})
	setupUI := ui.NewRunSetup(
		defaultGameConfig(),
		startRun,
		func() { rootPage.SwitchToPage("colors") },
		func() {
			history.Refresh()
			rootPage.SwitchToPage("history")
		},
		func() { app.Stop() },
	)

	rootPage.AddPage("setup", setupUI, true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)
	rootPage.AddPage("history", history.Flex(), true, false)

	if quickStart {
		startRun(defaultGameConfig())
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// openDebugLog points the event sink at the debug log when enabled.
func openDebugLog(enabled bool) (func(), error) {
	if !enabled {
		return func() {}, nil
	}
	path, err := config.DebugLogPath()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	sink = ui.NewLogSink(log.New(f, "", log.LstdFlags|log.Lmicroseconds))
	sink.Event("start", "version", Version)
	return func() { f.Close() }, nil
}

// defaultGameConfig merges the config file's board settings with flags.
func defaultGameConfig() engine.GameConfig {
	gc := engine.GameConfig{
		Width:      cfg.Board.Width,
		Height:     cfg.Board.Height,
		Difficulty: cfg.Board.Difficulty,
		Seed:       cfg.Board.Seed,
	}
	if *flagWidth >= 3 && *flagWidth <= 12 {
		gc.Width = *flagWidth
	}
	if *flagHeight >= 3 && *flagHeight <= 12 {
		gc.Height = *flagHeight
	}
	if *flagDifficulty >= 1 && *flagDifficulty <= 10 {
		gc.Difficulty = *flagDifficulty
	}
	if *flagSeed != 0 {
		gc.Seed = *flagSeed
	}
	return gc
}

// startRun starts a run with the given configuration and shows the board.
func startRun(gc engine.GameConfig) {
	eng := raid.New(gc)
	if state == nil {
		state = ui.NewPlayState(eng)
	} else {
		state.Reset(eng)
	}
	gameBoard.State = state
	dispatcher = ui.NewInputDispatcher(state, sink, sounds)
	sink.Event("run_start", "width", gc.Width, "height", gc.Height, "difficulty", gc.Difficulty, "seed", eng.Seed())

	runWriter = nil
	w, err := record.NewWriter(config.HistoryDir(), eng.Config(), eng.Seed())
	if err != nil {
		sink.Event("record_unavailable", "err", err)
	} else {
		runWriter = w
	}
	lastSummary = eng.Summary()

	gameHint.SetText(ui.HintText(eng))
	rootPage.SwitchToPage("gameview")
}

// saveProgress rewrites the run record whenever the tally changes.
func saveProgress() {
	if runWriter == nil || state == nil {
		return
	}
	sum := state.Engine.Summary()
	if sum == lastSummary {
		return
	}
	lastSummary = sum
	if err := runWriter.Update(state.Engine); err != nil {
		sink.Event("record_write_failed", "err", err)
	}
}

// finishRun stamps the run record with its outcome.
func finishRun(outcome string) {
	if runWriter == nil || state == nil {
		return
	}
	if err := runWriter.Finish(state.Engine, outcome); err != nil {
		sink.Event("record_write_failed", "err", err)
	}
	runWriter = nil
}

func themeGlyphs(c *config.Config) map[types.TileKind]rune {
	s := c.Theme.Symbols
	return map[types.TileKind]rune{
		types.KindSword:  s.Sword,
		types.KindShield: s.Shield,
		types.KindPotion: s.Potion,
		types.KindCoin:   s.Coin,
		types.KindSkull:  s.Skull,
	}
}
