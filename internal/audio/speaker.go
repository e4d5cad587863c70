//go:build audio

package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

type speakerSink struct{}

func openSpeaker(sr beep.SampleRate) (sink, error) {
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	return speakerSink{}, nil
}

func (speakerSink) Play(s beep.Streamer) {
	speaker.Play(s)
}
