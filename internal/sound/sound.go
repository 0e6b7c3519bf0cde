// Package sound plays the short audio cue announcing an expired countdown.
package sound

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// MaxDuration bounds how long a cue may play
const MaxDuration = time.Second

// cueVolume halves the amplitude (base 2, exponent -1)
const cueVolume = -1

//go:embed assets/notify.wav
var cue []byte

// Decode returns a fresh streamer over the embedded cue
func Decode() (beep.StreamSeekCloser, beep.Format, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(cue))
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("decode cue: %w", err)
	}
	return streamer, format, nil
}

// Player plays the embedded cue through the system speaker.
// The speaker is initialised on first use; without an audio device
// Play is a no-op.
type Player struct {
	logger *slog.Logger

	once    sync.Once
	initErr error
}

// NewPlayer creates a player
func NewPlayer(logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{logger: logger.With("component", "sound")}
}

func (p *Player) initSpeaker(format beep.Format) bool {
	p.once.Do(func() {
		p.initErr = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
		if p.initErr != nil {
			p.logger.Debug("audio device unavailable", "error", p.initErr)
		}
	})
	return p.initErr == nil
}

// Play blocks until the cue finished, MaxDuration elapsed or ctx is done.
// A missing audio device is not an error.
func (p *Player) Play(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	streamer, format, err := Decode()
	if err != nil {
		return err
	}
	defer streamer.Close()

	if !p.initSpeaker(format) {
		return nil
	}

	done := make(chan struct{})
	volume := &effects.Volume{
		Streamer: beep.Take(format.SampleRate.N(MaxDuration), streamer),
		Base:     2,
		Volume:   cueVolume,
	}
	speaker.Play(beep.Seq(volume, beep.Callback(func() {
		close(done)
	})))

	// Allow the speaker buffer to drain past the bound.
	timeout := time.NewTimer(MaxDuration + 200*time.Millisecond)
	defer timeout.Stop()

	select {
	case <-done:
		return nil
	case <-timeout.C:
		speaker.Clear()
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}
