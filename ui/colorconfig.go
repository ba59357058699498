package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"raidterm/config"
	"raidterm/types"
)

// colorTarget is one themable colour and where it lives in the config.
type colorTarget struct {
	name  string
	field func(c *config.ConfigColors) *int
}

var colorTargets = []colorTarget{
	{"Board", func(c *config.ConfigColors) *int { return &c.BoardColor }},
	{"Connector", func(c *config.ConfigColors) *int { return &c.ConnectorColor }},
	{"Crossing", func(c *config.ConfigColors) *int { return &c.CrossingColor }},
	{"Cursor", func(c *config.ConfigColors) *int { return &c.CursorColorBG }},
	{"Sword", func(c *config.ConfigColors) *int { return &c.SwordColor }},
	{"Shield", func(c *config.ConfigColors) *int { return &c.ShieldColor }},
	{"Potion", func(c *config.ConfigColors) *int { return &c.PotionColor }},
	{"Coin", func(c *config.ConfigColors) *int { return &c.CoinColor }},
	{"Skull", func(c *config.ConfigColors) *int { return &c.SkullColor }},
}

var paletteChoices = []struct {
	code int
	name string
}{
	{16, "Black"},
	{233, "Coal"},
	{235, "Slate"},
	{238, "Ash"},
	{244, "Stone"},
	{250, "Silver"},
	{255, "Bone"},
	{52, "Blood"},
	{124, "Crimson"},
	{203, "Salmon"},
	{130, "Rust"},
	{172, "Amber"},
	{220, "Gold"},
	{142, "Moss"},
	{28, "Forest"},
	{60, "Dusk"},
	{24, "Deep Sea"},
	{110, "Frost"},
	{96, "Heather"},
	{231, "White"},
}

// previewBoard is a fixed 3x2 board whose chain crosses itself once.
type previewBoard struct{}

var previewTiles = [2][3]types.Tile{
	{{Kind: types.KindSword}, {Kind: types.KindSword}, {Kind: types.KindCoin}},
	{{Kind: types.KindSkull}, {Kind: types.KindSkull}, {Kind: types.KindPotion}},
}

var previewChain = map[types.TilePosition]types.Direction{
	{Row: 0, Col: 0}: types.DirDownRight,
	{Row: 1, Col: 1}: types.DirUp,
	{Row: 0, Col: 1}: types.DirDownLeft,
}

func (previewBoard) Width() int  { return 3 }
func (previewBoard) Height() int { return 2 }

func (previewBoard) TileAt(pos types.TilePosition) types.Tile {
	return previewTiles[pos.Row][pos.Col]
}

func (previewBoard) Successor(pos types.TilePosition) types.Direction {
	return previewChain[pos]
}

// ColorConfigUI lets the player recolour the board with a live chain preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	working   config.Theme
	target    int
	saveErr   error
	onDone    func()
}

// NewColorConfig creates the colour screen. onDone runs after a choice is saved.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:     cfg,
		working: cfg.Theme,
		onDone:  onDone,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	for i, c := range paletteChoices {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code), "", rune('a'+i), nil)
	}
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.Preview(index)
	})
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.Preview(index)
		if err := cc.Apply(); err != nil {
			return
		}
		if cc.onDone != nil {
			cc.onDone()
		}
	})
	cc.selectCurrent()

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)
	return cc
}

// Target returns the name of the colour being edited.
func (cc *ColorConfigUI) Target() string {
	return colorTargets[cc.target].name
}

// Preview sets the edited colour to palette entry index without saving.
func (cc *ColorConfigUI) Preview(index int) {
	if index < 0 || index >= len(paletteChoices) {
		return
	}
	*colorTargets[cc.target].field(&cc.working.Colors) = paletteChoices[index].code
}

// Apply copies the working theme into the config and saves it.
func (cc *ColorConfigUI) Apply() error {
	cc.cfg.Theme = cc.working
	cc.saveErr = cc.cfg.Save()
	return cc.saveErr
}

// ToggleMode moves on to the next themable colour.
func (cc *ColorConfigUI) ToggleMode() {
	cc.target = (cc.target + 1) % len(colorTargets)
	cc.selectCurrent()
}

// ToggleSticky flips whether crossings stay marked once drawn.
func (cc *ColorConfigUI) ToggleSticky() {
	cc.working.StickyCrossings = !cc.working.StickyCrossings
}

func (cc *ColorConfigUI) selectCurrent() {
	cc.colorList.SetTitle(fmt.Sprintf(" %s colour (Tab: next) ", cc.Target()))
	code := *colorTargets[cc.target].field(&cc.working.Colors)
	for i, c := range paletteChoices {
		if c.code == code {
			cc.colorList.SetCurrentItem(i)
			return
		}
	}
}

// ComposePreview draws the sample board and the current settings into a frame.
func (cc *ColorConfigUI) ComposePreview(width, height int) (*Frame, error) {
	f := NewFrame(width, height)
	st := newTileStyles(cc.working)
	r := ChainPathRenderer{Glyph: st.symbol, StickyCrossings: cc.working.StickyCrossings}
	src := previewBoard{}
	grid, err := r.Render(src)
	if err != nil {
		return nil, err
	}
	chain := map[types.TilePosition]bool{}
	for pos := range previewChain {
		chain[pos] = true
	}
	chain[types.TilePosition{Row: 1, Col: 0}] = true
	paintGrid(f, grid, src, st, chain)

	row := grid.Height + 1
	f.PutText(0, row, fmt.Sprintf("Editing: %s", cc.Target()), MenuColors.Label)
	row++
	sticky := "off"
	if cc.working.StickyCrossings {
		sticky = "on"
	}
	f.PutText(0, row, fmt.Sprintf("Sticky crossings: %s (x)", sticky), MenuColors.Hint)
	if cc.saveErr != nil {
		f.PutText(0, row+2, cc.saveErr.Error(), MenuColors.Warning)
	}
	return f, nil
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < 8 || height < 6 {
		return x, y, width, height
	}
	f, err := cc.ComposePreview(width-4, height-2)
	if err != nil {
		return x, y, width, height
	}
	f.Blit(screen, x+2, y+1)
	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the colour list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}
