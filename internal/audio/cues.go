// Package audio plays short synthesized sound cues for game events.
// Output needs the audio build tag; without it, or without a device,
// the manager stays silent and every call is a no-op.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate all cues are synthesized at.
const SampleRate = beep.SampleRate(44100)

// Cue is a sound played for a game event.
type Cue int

const (
	CuePaddleHit Cue = iota
	CueBrickDestroyed
	CueWallBounce
	CueLifeLost
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CuePaddleHit:
		return "paddle_hit"
	case CueBrickDestroyed:
		return "brick_destroyed"
	case CueWallBounce:
		return "wall_bounce"
	case CueLifeLost:
		return "life_lost"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// note is one sine tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CuePaddleHit:      {{440, 40 * time.Millisecond}},
	CueBrickDestroyed: {{880, 50 * time.Millisecond}},
	CueWallBounce:     {{220, 30 * time.Millisecond}},
	CueLifeLost:       {{330, 120 * time.Millisecond}, {220, 180 * time.Millisecond}},
	CueGameOver: {
		{392, 150 * time.Millisecond},
		{330, 150 * time.Millisecond},
		{262, 300 * time.Millisecond},
	},
}

// Samples returns the length of a cue in samples.
func Samples(c Cue) int {
	n := 0
	for _, nt := range cueNotes[c] {
		n += SampleRate.N(nt.dur)
	}
	return n
}

// Synth builds the streamer for a cue at the given volume (0.0 to 1.0).
func Synth(c Cue, volume float64) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("audio: unknown cue %d", c)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, nt := range notes {
		tone, err := generators.SineTone(SampleRate, nt.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: %s tone %.0fHz: %w", c, nt.freq, err)
		}
		parts = append(parts, beep.Take(SampleRate.N(nt.dur), tone))
	}

	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume scales s linearly. Log2(0) is -Inf, so zero is explicit silence.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
