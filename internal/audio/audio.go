// Package audio provides the collision sound backends. The system speaker
// plays through beep; sessions without an audio device fall back to the
// terminal bell from core.
package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

// SampleRate is the output rate every clip is converted to.
const SampleRate = beep.SampleRate(44100)

// Backend names accepted by Open.
const (
	BackendSpeaker = "speaker"
	BackendBell    = "bell"
	BackendOff     = "off"
)

var clipFormat = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// LoadClip decodes an .ogg or .wav file fully into memory at SampleRate.
func LoadClip(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("audio: unsupported format %q", ext)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, streamer)
	}

	buf := beep.NewBuffer(clipFormat)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", path, err)
	}
	return buf, nil
}

// Tone synthesizes a sine blip of the given frequency and length.
func Tone(hz float64, d time.Duration) (*beep.Buffer, error) {
	sine, err := generators.SineTone(SampleRate, hz)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %vHz: %w", hz, err)
	}
	buf := beep.NewBuffer(clipFormat)
	buf.Append(beep.Take(SampleRate.N(d), sine))
	return buf, nil
}

// Speaker plays a buffered clip on the system audio device.
// Overlapping plays are mixed.
type Speaker struct {
	clip   *beep.Buffer
	volume float64
}

var speakerOnce struct {
	sync.Once
	err error
}

// NewSpeaker loads the configured clip, falling back to a synthesized tone
// when the asset is missing or unreadable, and opens the audio device.
func NewSpeaker(cfg config.ArenaSound, logger *log.Logger) (*Speaker, error) {
	clip, err := LoadClip(cfg.Path)
	if err != nil {
		if logger != nil {
			logger.Warn("collision sound unavailable, using tone", "path", cfg.Path, "error", err)
		}
		clip, err = Tone(cfg.ToneHz, cfg.ToneDuration())
		if err != nil {
			return nil, err
		}
	}

	speakerOnce.Do(func() {
		speakerOnce.err = speaker.Init(SampleRate, SampleRate.N(time.Second/10))
	})
	if speakerOnce.err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", speakerOnce.err)
	}

	return &Speaker{clip: clip, volume: cfg.Volume}, nil
}

// Play starts the clip and returns immediately.
func (s *Speaker) Play() {
	speaker.Play(s.streamer())
}

func (s *Speaker) streamer() beep.Streamer {
	st := s.clip.Streamer(0, s.clip.Len())
	if s.volume == 0 {
		return st
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: s.volume}
}

// Open returns the backend selected by name. A speaker that cannot be
// opened degrades to the bell on out.
func Open(backend string, cfg config.ArenaSound, out io.Writer, logger *log.Logger) (core.Sound, error) {
	switch backend {
	case BackendOff:
		return core.SilentSound{}, nil
	case BackendBell:
		return core.NewBell(out), nil
	case BackendSpeaker, "":
		s, err := NewSpeaker(cfg, logger)
		if err != nil {
			if logger != nil {
				logger.Warn("Audio device unavailable, using terminal bell", "error", err)
			}
			return core.NewBell(out), nil
		}
		return s, nil
	default:
		return nil, fmt.Errorf("audio: unknown backend %q (expected speaker, bell or off)", backend)
	}
}
