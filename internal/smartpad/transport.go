package smartpad

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // register rtmidi driver
)

// Output is one open MIDI output port.
type Output interface {
	Send(msg midi.Message) error
	IsOpen() bool
	Close() error
}

// Transport abstracts MIDI port discovery and opening so the Session can
// run against real hardware or a test double.
type Transport interface {
	// Ports returns the names of the available MIDI output ports.
	Ports() ([]string, error)
	// Open opens the named output port.
	Open(name string) (Output, error)
	// Close releases the underlying driver.
	Close() error
}

// midiTransport is the rtmidi-backed Transport.
type midiTransport struct{}

// NewMIDITransport returns a Transport over the system's MIDI outputs.
func NewMIDITransport() Transport {
	return midiTransport{}
}

func (midiTransport) Ports() ([]string, error) {
	outs := midi.GetOutPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names, nil
}

func (midiTransport) Open(name string) (Output, error) {
	for _, out := range midi.GetOutPorts() {
		if out.String() != name {
			continue
		}
		send, err := midi.SendTo(out)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		return &midiOutput{port: out, send: send}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrPortNotFound, name)
}

func (midiTransport) Close() error {
	midi.CloseDriver()
	return nil
}

type midiOutput struct {
	port drivers.Out
	send func(midi.Message) error
}

func (o *midiOutput) Send(msg midi.Message) error {
	return o.send(msg)
}

func (o *midiOutput) IsOpen() bool {
	return o.port.IsOpen()
}

func (o *midiOutput) Close() error {
	return o.port.Close()
}
