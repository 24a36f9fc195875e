package smartpad

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"smartpad/internal/palette"
)

// settleBuffer pads the post-clear wait on disconnect so the final
// note-offs drain before the port closes.
const settleBuffer = 50 * time.Millisecond

// Session owns at most one open MIDI output and pushes encoded message
// batches to it. Transport failures are reported, never panicked; a
// connection-loss class failure degrades the session to disconnected.
type Session struct {
	transport Transport
	encoder   *Encoder
	selector  PortSelector
	log       zerolog.Logger

	out      Output
	portName string

	// StatusChanged, when set, fires on every connect/disconnect
	// transition with a short human-readable detail.
	StatusChanged func(connected bool, detail string)
}

// NewSession creates a session over the given transport. The zero-config
// session auto-detects the SmartPad by port name keywords.
func NewSession(t Transport) *Session {
	return &Session{
		transport: t,
		encoder:   NewEncoder(),
		selector:  DefaultSelector(),
		log:       log.With().Str("component", "session").Logger(),
	}
}

// SetSelector replaces the port auto-detection strategy.
func (s *Session) SetSelector(sel PortSelector) {
	if sel != nil {
		s.selector = sel
	}
}

// Encoder returns the session's encoder, sharing its inter-command delay.
func (s *Session) Encoder() *Encoder {
	return s.encoder
}

// IsConnected reports whether the session holds an open output port.
func (s *Session) IsConnected() bool {
	return s.out != nil && s.out.IsOpen()
}

// PortName returns the name of the connected port, empty when disconnected.
func (s *Session) PortName() string {
	return s.portName
}

func (s *Session) notify(connected bool, detail string) {
	if s.StatusChanged != nil {
		s.StatusChanged(connected, detail)
	}
}

// Connect opens the named MIDI output, or auto-detects one when portName is
// empty. Reconnecting to the already-open port is a no-op success; naming a
// different port disconnects cleanly first. On success the whole grid is
// cleared so the device starts from a known-dark state.
func (s *Session) Connect(portName string) error {
	if s.IsConnected() {
		if portName != "" && portName == s.portName {
			s.notify(true, fmt.Sprintf("already connected to %s", s.portName))
			return nil
		}
		s.Disconnect(true)
	}

	target := portName
	if target == "" {
		available, err := s.transport.Ports()
		if err != nil {
			return fmt.Errorf("list midi ports: %w", err)
		}
		if len(available) == 0 {
			s.notify(false, "no MIDI output ports found")
			return fmt.Errorf("%w: no MIDI output ports", ErrPortNotFound)
		}
		target = s.selector(available)
		if target == "" {
			s.notify(false, "SmartPad port not found, select one manually")
			return fmt.Errorf("%w: no port matched detection keywords", ErrPortNotFound)
		}
	}

	out, err := s.transport.Open(target)
	if err != nil {
		s.notify(false, fmt.Sprintf("failed to open %s", target))
		return fmt.Errorf("open %s: %w", target, err)
	}
	s.out = out
	s.portName = target
	s.log.Info().Str("port", target).Msg("connected")
	s.notify(true, target)

	// Reset whatever the device was showing before we attached.
	if err := s.Send(s.encoder.EncodeClear()); err != nil {
		s.log.Warn().Err(err).Msg("initial clear failed")
	}
	return nil
}

// Disconnect closes the port. With clearFirst the grid is darkened and the
// transport given a short settle delay before the close, so the in-flight
// note-offs are not dropped.
func (s *Session) Disconnect(clearFirst bool) {
	if s.out != nil {
		if clearFirst {
			if err := s.Send(s.encoder.EncodeClear()); err != nil {
				s.log.Warn().Err(err).Msg("clear on disconnect failed")
			}
			time.Sleep(5*s.encoder.InterDelay + settleBuffer)
		}
		if err := s.out.Close(); err != nil {
			s.log.Warn().Err(err).Str("port", s.portName).Msg("error closing port")
		}
	}
	old := s.portName
	s.out = nil
	s.portName = ""
	if old != "" {
		s.log.Info().Str("port", old).Msg("disconnected")
		s.notify(false, fmt.Sprintf("disconnected from %s", old))
	} else {
		s.notify(false, "disconnected")
	}
}

// Send forwards the steps in order, observing each step's pause. Send
// failures are logged and returned but remaining steps are still attempted,
// unless the failure means the connection is gone, in which case the
// session transitions to disconnected and gives up on the batch.
func (s *Session) Send(steps []Step) error {
	if !s.IsConnected() {
		return ErrNotConnected
	}
	var firstErr error
	for _, step := range steps {
		if err := s.out.Send(step.Msg); err != nil {
			if errors.Is(err, ErrConnectionLost) || !s.out.IsOpen() {
				s.log.Error().Err(err).Str("port", s.portName).Msg("connection lost")
				old := s.portName
				s.out = nil
				s.portName = ""
				s.notify(false, fmt.Sprintf("connection to %s lost", old))
				return fmt.Errorf("%w: %s", ErrConnectionLost, old)
			}
			s.log.Warn().Err(err).Msg("midi send failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if step.Pause > 0 {
			time.Sleep(step.Pause)
		}
	}
	return firstErr
}

// SendGrid encodes and sends a full 64-color refresh.
func (s *Session) SendGrid(colors []palette.Color) error {
	steps, err := s.encoder.EncodeGrid(colors)
	if err != nil {
		return err
	}
	return s.Send(steps)
}

// SendPad encodes and sends a single pad update.
func (s *Session) SendPad(pad int, c palette.Color) error {
	steps, err := s.encoder.EncodeSingle(pad, c)
	if err != nil {
		return err
	}
	return s.Send(steps)
}

// Clear darkens every pad on the device.
func (s *Session) Clear() error {
	return s.Send(s.encoder.EncodeClear())
}
