package audio

import (
	"testing"

	"go.uber.org/zap"
)

func TestPlayerSilentWithoutSpeaker(t *testing.T) {
	// Uninitialized speaker path: every method must be a safe no-op
	p := &Player{log: zap.NewNop()}
	p.Flap()
	p.Crash()
}
