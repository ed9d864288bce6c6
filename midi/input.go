package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// The unit listens on MIDI channels 2-9 for melodic parts 1-8 and channel
// 10 for the rhythm part (0-based here, as gomidi reports them).
const (
	firstPartChannel = 1
	lastPartChannel  = 8
	rhythmChannel    = 9
)

// Input listens on one MIDI input port and decodes traffic into panel
// events. Events are dropped rather than blocking when the consumer lags.
type Input struct {
	id       string
	inPort   drivers.In
	stopFunc func()

	events chan Event
}

// NewInput opens the port and starts decoding.
func NewInput(id string, inPort drivers.In) (*Input, error) {
	in := &Input{
		id:     id,
		inPort: inPort,
		events: make(chan Event, 64),
	}

	stop, err := gomidi.ListenTo(inPort, in.receive, gomidi.UseSysEx())
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	in.stopFunc = stop
	return in, nil
}

func (in *Input) ID() string {
	return in.id
}

// Events returns the decoded event stream.
func (in *Input) Events() <-chan Event {
	return in.events
}

func (in *Input) Close() error {
	if in.stopFunc != nil {
		in.stopFunc()
	}
	close(in.events)
	return nil
}

func (in *Input) receive(msg gomidi.Message, timestampms int32) {
	var channel, key, velocity, value, program uint8

	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		in.emit(Event{Type: EventMessage})
		if channel == rhythmChannel && velocity > 0 {
			in.emit(Event{Type: EventRhythmNote})
		}

	case msg.GetNoteOff(&channel, &key, &velocity):
		in.emit(Event{Type: EventMessage})

	case msg.GetProgramChange(&channel, &program):
		in.emit(Event{Type: EventMessage})
		if firstPartChannel <= channel && channel <= lastPartChannel {
			in.emit(Event{
				Type:    EventProgramChange,
				Part:    channel - firstPartChannel,
				Program: program,
			})
		}

	case msg.GetControlChange(&channel, &key, &value):
		in.emit(Event{Type: EventMessage})

	case msg.GetAfterTouch(&channel, &value):
		in.emit(Event{Type: EventMessage})

	case msg.GetPolyAfterTouch(&channel, &key, &value):
		in.emit(Event{Type: EventMessage})

	case msg.Is(gomidi.PitchBendMsg):
		in.emit(Event{Type: EventMessage})

	default:
		// SysEx arrives as the raw frame including F0/F7
		if len(msg) > 0 && msg[0] == 0xF0 {
			for _, evt := range DecodeSysEx(msg) {
				in.emit(evt)
			}
		}
	}
}

func (in *Input) emit(evt Event) {
	select {
	case in.events <- evt:
	default:
		// consumer is behind, drop
	}
}
