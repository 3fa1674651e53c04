// Package audio plays short synthesized sound cues for game events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	blipFreq     = 880.0
	blipDuration = 60 * time.Millisecond
	minGap       = 50 * time.Millisecond // Cues closer than this are merged
)

// Player plays game cues. Implementations must be safe to call from the
// UI goroutine without blocking.
type Player interface {
	PlayCollision()
}

// Nop is a Player that makes no sound.
type Nop struct{}

// PlayCollision does nothing.
func (Nop) PlayCollision() {}

// Cue plays a short blip through the system speaker.
type Cue struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	last        time.Time
}

// NewCue creates a cue player. Call Initialize before use.
func NewCue() *Cue {
	return &Cue{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Sound is optional, so callers usually log
// the error and keep playing without it.
func (c *Cue) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close silences pending cues. The speaker itself stays open.
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// PlayCollision queues the collision blip.
func (c *Cue) PlayCollision() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	now := time.Now()
	if !c.last.IsZero() && now.Sub(c.last) < minGap {
		return
	}
	c.last = now

	speaker.Lock()
	c.mixer.Add(NewBlip(sampleRate, blipFreq, blipDuration))
	speaker.Unlock()
}

// blip is a sine tone with an exponential decay envelope.
type blip struct {
	sr       beep.SampleRate
	freq     float64
	pos      int
	duration int
}

// NewBlip creates a decaying sine blip of the given frequency and length.
func NewBlip(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	return &blip{
		sr:       sr,
		freq:     freq,
		duration: sr.N(d),
	}
}

func (b *blip) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.duration {
			return i, i > 0
		}

		t := float64(b.pos) / float64(b.sr)
		envelope := math.Exp(-t * 40)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*b.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		b.pos++
	}
	return len(samples), true
}

func (b *blip) Err() error {
	return nil
}
