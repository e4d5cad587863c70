//go:build !audio

package audio

import "github.com/gopxl/beep"

// openSpeaker always fails: this build has no audio output.
func openSpeaker(beep.SampleRate) (sink, error) {
	return nil, ErrNoDevice
}
