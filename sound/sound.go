// Package sound plays short audio cues for game events.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a game event with a sound.
type Cue int

const (
	CueChain Cue = iota
	CueHit
	CueAbility
	CueChoice
	CueRefused
)

type tone struct {
	freq float64
	dur  time.Duration
}

// cueTones lists the notes played in sequence for each cue.
var cueTones = map[Cue][]tone{
	CueChain:   {{660, 40 * time.Millisecond}, {880, 60 * time.Millisecond}},
	CueHit:     {{150, 120 * time.Millisecond}},
	CueAbility: {{523, 50 * time.Millisecond}, {784, 50 * time.Millisecond}, {1047, 70 * time.Millisecond}},
	CueChoice:  {{440, 60 * time.Millisecond}, {554, 60 * time.Millisecond}, {659, 90 * time.Millisecond}},
	CueRefused: {{220, 60 * time.Millisecond}},
}

// Manager owns the speaker and mixes cues into it.
// A Manager that was never initialized ignores Play.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates a new, uninitialized manager.
func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker. Safe to call more than once.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Enabled returns true once the speaker is running.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// Play mixes the cue's notes into the output.
func (m *Manager) Play(c Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	streamer, err := cueStreamer(c)
	if err != nil || streamer == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}

// cueStreamer builds the note sequence for c, or nil for an unknown cue.
func cueStreamer(c Cue) (beep.Streamer, error) {
	tones, ok := cueTones[c]
	if !ok {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(t.dur), sine))
	}
	return beep.Seq(parts...), nil
}
