package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground: true,
		StickyCrossings:      false,
		Colors: ConfigColors{
			BoardColor:     235,
			ConnectorColor: 250,
			CrossingColor:  203,
			CursorColorFG:  255,
			CursorColorBG:  60,
			PickedColorBG:  24,
			SwordColor:     252,
			ShieldColor:    110,
			PotionColor:    203,
			CoinColor:      220,
			SkullColor:     142,
		},
		Symbols: ConfigSymbols{
			Sword:  '†',
			Shield: '◘',
			Potion: '♥',
			Coin:   '$',
			Skull:  '☠',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Board: BoardConfig{
			Width:      8,
			Height:     6,
			Difficulty: 3,
		},
		Sound: SoundConfig{
			Enabled: true,
		},
	}
}
