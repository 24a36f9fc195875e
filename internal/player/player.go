// Package player is the periodic driver that steps an animation and pushes
// each frame to the device. The sequence itself never schedules anything;
// this loop owns the timing.
package player

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"smartpad/internal/animation"
	"smartpad/internal/smartpad"
)

// Player ties one sequence to one device session.
type Player struct {
	seq     *animation.Sequence
	session *smartpad.Session
	log     zerolog.Logger
}

// New creates a player over the given sequence and session.
func New(seq *animation.Sequence, session *smartpad.Session) *Player {
	return &Player{
		seq:     seq,
		session: session,
		log:     log.With().Str("component", "player").Logger(),
	}
}

// Play starts the sequence at from (-1 for the edit cursor) and runs one
// tick per frame delay until the sequence stops or ctx is cancelled. The
// delay is re-read every tick, so a delay change takes effect on the next
// scheduled tick. A lost connection aborts playback; other send failures
// are logged and the animation keeps running.
func (p *Player) Play(ctx context.Context, from int) error {
	if !p.seq.Start(from) {
		return fmt.Errorf("animation %q has no frames", p.seq.Name())
	}
	for {
		colors := p.seq.Advance()
		if colors == nil {
			return nil
		}
		if err := p.session.SendGrid(colors); err != nil {
			if errors.Is(err, smartpad.ErrConnectionLost) ||
				errors.Is(err, smartpad.ErrNotConnected) {
				p.seq.Stop()
				return err
			}
			p.log.Warn().Err(err).Int("frame", p.seq.PlayIndex()).Msg("frame send failed")
		}

		select {
		case <-ctx.Done():
			p.seq.Stop()
			return ctx.Err()
		case <-time.After(time.Duration(p.seq.DelayMS()) * time.Millisecond):
		}
	}
}
