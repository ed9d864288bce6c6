package panel

import (
	"sync"
	"time"

	"mt32-panel/debug"
	"mt32-panel/midi"
)

// Manager serializes access to the display. Event handling and polling
// are mutually excluded here so the Display itself can stay plain
// single-threaded state, and the TUI gets a consistent snapshot.
type Manager struct {
	mu      sync.Mutex
	display *Display
	patches *Patches

	// Notify TUI of updates
	UpdateChan chan struct{}
}

// NewManager wires a display and its patch table.
func NewManager(display *Display, patches *Patches) *Manager {
	return &Manager{
		display:    display,
		patches:    patches,
		UpdateChan: make(chan struct{}, 1),
	}
}

// Run consumes decoded MIDI events until the channel closes or stop fires.
// Blocking - run in goroutine.
func (m *Manager) Run(events <-chan midi.Event, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			m.Handle(evt)
		}
	}
}

// Handle applies one decoded MIDI event to the panel state.
func (m *Manager) Handle(evt midi.Event) {
	m.mu.Lock()
	switch evt.Type {
	case midi.EventMessage:
		m.display.MidiMessagePlayed()

	case midi.EventRhythmNote:
		m.display.MidiMessagePlayed()
		m.display.RhythmNotePlayed()

	case midi.EventProgramChange:
		m.display.MidiMessagePlayed()
		m.patches.SetProgram(evt.Part, evt.Program)
		m.display.ProgramChanged(evt.Part)
		debug.Log("panel", "program change part=%d program=%d", evt.Part, evt.Program)

	case midi.EventMasterVolume:
		m.display.SetMasterVolume(evt.Volume)
		debug.Log("panel", "master volume %d", evt.Volume)

	case midi.EventDisplayMessage:
		ok := m.display.CustomDisplayMessageReceived(evt.Data, evt.Offset, uint32(len(evt.Data)))
		if !ok {
			debug.Log("panel", "display message rejected offset=%d len=%d", evt.Offset, len(evt.Data))
		}

	case midi.EventChecksumError:
		m.display.ChecksumErrorOccurred()
		debug.Log("panel", "checksum error")

	case midi.EventReset:
		m.patches.Reset()
		m.display.Reset()
		debug.Log("panel", "device reset")
	}
	m.mu.Unlock()

	m.notifyUpdate()
}

// DisplayState copies the visible LCD line into out and reports the LED.
// Poll operation for the render layer.
func (m *Manager) DisplayState(out []byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.display.UpdateDisplayState(out)
}

// Mode reports the active display mode.
func (m *Manager) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.display.Mode()
}

func (m *Manager) notifyUpdate() {
	select {
	case m.UpdateChan <- struct{}{}:
	default:
	}
}

// WallClock returns a Clock running on real time, anchored at the call.
// The emulated session treats this as its power-on instant.
func WallClock() Clock {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
