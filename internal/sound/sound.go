//go:build !ci

// Package sound plays short effect clips for game events.
package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// Effect names, matched against file base names under assets/sounds.
const (
	EffectDraw     = "draw"
	EffectCombo    = "combo"
	EffectLifeLost = "life_lost"
	EffectGameOver = "game_over"
)

type Manager struct {
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewManager() *Manager {
	return &Manager{
		buffers: make(map[string]*beep.Buffer),
	}
}

// Init opens the speaker and loads every clip it can find. A missing
// assets directory just means silence.
func (m *Manager) Init() error {
	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	m.enabled = true

	return m.loadEffects(sampleRate)
}

func (m *Manager) loadEffects(sampleRate beep.SampleRate) error {
	soundDir := "assets/sounds"
	files, err := os.ReadDir(soundDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read sound directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".mp3" && ext != ".wav" {
			continue
		}

		// Skip clips that fail to decode, the rest still load.
		_ = m.loadEffect(soundDir, name, ext, sampleRate)
	}

	return nil
}

func (m *Manager) loadEffect(soundDir, name, ext string, sampleRate beep.SampleRate) error {
	f, err := os.Open(filepath.Clean(filepath.Join(soundDir, name)))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return err
	}
	defer func() { _ = streamer.Close() }()

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   4,
	})
	buffer.Append(resampled)

	m.buffers[strings.TrimSuffix(name, filepath.Ext(name))] = buffer
	return nil
}

// Play starts the named effect without blocking. Unknown names are
// ignored.
func (m *Manager) Play(name string) {
	if m == nil || !m.enabled {
		return
	}

	buffer, ok := m.buffers[name]
	if !ok {
		return
	}

	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (m *Manager) Close() {
	if m == nil {
		return
	}
	m.enabled = false
}
