package chime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/oshokin/stopwatch/internal/config"
)

// bufferDuration is the speaker buffer length.
const bufferDuration = 100 * time.Millisecond

// terminalBell is the ASCII BEL control character.
const terminalBell = "\a"

// errSpeakerUnavailable wraps audio device initialisation failures.
var errSpeakerUnavailable = errors.New("audio device unavailable")

// Player plays the completion chime. Play blocks until the chime is done
// or ctx is canceled.
type Player interface {
	Play(ctx context.Context) error
}

// Nop plays nothing.
type Nop struct{}

// Play does nothing.
func (Nop) Play(context.Context) error { return nil }

// Bell rings the terminal bell by writing BEL to a writer.
type Bell struct {
	// Out is usually the terminal.
	Out io.Writer
}

// Play writes the bell character.
func (b Bell) Play(context.Context) error {
	if b.Out == nil {
		return nil
	}

	if _, err := io.WriteString(b.Out, terminalBell); err != nil {
		return fmt.Errorf("ring terminal bell: %w", err)
	}

	return nil
}

// Speaker synthesizes the chime and plays it on the audio device.
// The device is opened lazily on the first Play.
type Speaker struct {
	// rate is the device sample rate.
	rate beep.SampleRate
	// volume is the linear chime volume.
	volume float64

	// mu protects the fields below.
	mu sync.Mutex
	// tried is set after the first initialisation attempt.
	tried bool
	// opened is set when the device was initialised.
	opened bool
	// initErr is the result of initialisation.
	initErr error
}

// NewSpeaker creates a speaker player.
func NewSpeaker(sampleRate int, volume float64) *Speaker {
	return &Speaker{
		rate:   beep.SampleRate(sampleRate),
		volume: volume,
	}
}

// Play plays the chime on the audio device.
func (s *Speaker) Play(ctx context.Context) error {
	if err := s.open(); err != nil {
		return err
	}

	done := make(chan struct{})
	ctrl := &beep.Ctrl{Streamer: beep.Seq(Sound(s.rate, s.volume), beep.Callback(func() { close(done) }))}

	speaker.Play(ctrl)

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Lock()
		ctrl.Streamer = nil
		speaker.Unlock()

		return ctx.Err()
	}
}

// Close releases the audio device if it was opened.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened {
		speaker.Close()
		s.opened = false
	}

	return nil
}

func (s *Speaker) open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tried {
		return s.initErr
	}

	s.tried = true

	if err := speaker.Init(s.rate, s.rate.N(bufferDuration)); err != nil {
		s.initErr = fmt.Errorf("%w: %w", errSpeakerUnavailable, err)

		return s.initErr
	}

	s.opened = true

	return nil
}

// Fallback plays Primary and, if it fails, Secondary.
type Fallback struct {
	Primary   Player
	Secondary Player
	// OnError is called with the primary error before falling back.
	OnError func(error)
}

// Play plays the first player that succeeds.
func (f Fallback) Play(ctx context.Context) error {
	err := f.Primary.Play(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}

	if f.OnError != nil {
		f.OnError(err)
	}

	return f.Secondary.Play(ctx)
}

// Close closes both players when they hold resources.
func (f Fallback) Close() error {
	return errors.Join(closePlayer(f.Primary), closePlayer(f.Secondary))
}

func closePlayer(p Player) error {
	if c, ok := p.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// New builds the player described by cfg. Audio failures fall back to the
// terminal bell written to out.
func New(cfg config.ChimeConfig, out io.Writer, onError func(error)) Player {
	if !cfg.Enabled {
		return Nop{}
	}

	return Fallback{
		Primary:   NewSpeaker(cfg.SampleRate, cfg.Volume),
		Secondary: Bell{Out: out},
		OnError:   onError,
	}
}
