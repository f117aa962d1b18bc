package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// Player synthesizes short feedback tones through the speaker. Audio is
// optional: when the speaker cannot initialize every method is a no-op,
// the game runs silent.
type Player struct {
	ok  bool
	log *zap.Logger
}

func NewPlayer(log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Player{log: log}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, game can run without sound
		log.Warn("audio initialization failed", zap.Error(err))
		return p
	}
	p.ok = true
	return p
}

func (p *Player) tone(freq float64, d time.Duration) {
	if !p.ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		p.log.Warn("tone generation failed", zap.Error(err))
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Flap plays the lift blip.
func (p *Player) Flap() {
	p.tone(880, 40*time.Millisecond)
}

// Crash plays the game-over tone.
func (p *Player) Crash() {
	p.tone(110, 400*time.Millisecond)
}
