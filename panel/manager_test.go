package panel

import (
	"testing"
	"time"

	"mt32-panel/midi"
)

func testManager(t *testing.T) (*Manager, *time.Duration) {
	t.Helper()
	now := new(time.Duration)
	patches := NewPatches()
	display := NewDisplay(func() time.Duration { return *now }, patches)
	m := NewManager(display, patches)
	// skip the startup banner
	*now = StartupDisplayDelay
	return m, now
}

func TestManagerRoutesEvents(t *testing.T) {
	m, now := testManager(t)
	buf := make([]byte, LCDTextSize)

	m.Handle(midi.Event{Type: midi.EventMessage})
	if led := m.DisplayState(buf); !led {
		t.Errorf("LED off right after a message")
	}

	m.Handle(midi.Event{Type: midi.EventProgramChange, Part: 1, Program: 5})
	if m.Mode() != ModeProgramChange {
		t.Errorf("mode = %v, want %v", m.Mode(), ModeProgramChange)
	}
	m.DisplayState(buf)
	if buf[0] != '2' {
		t.Errorf("banner part cell = %q, want '2'", buf[0])
	}
	if got := m.patches.Program(1); got != 5 {
		t.Errorf("patch table program = %d, want 5", got)
	}

	m.Handle(midi.Event{Type: midi.EventMasterVolume, Volume: 42})
	*now += DisplayResetDelay
	m.DisplayState(buf)
	if got := string(buf[13:]); got != "vol: 42" {
		t.Errorf("volume field = %q, want %q", got, "vol: 42")
	}

	m.Handle(midi.Event{Type: midi.EventChecksumError})
	if m.Mode() != ModeErrorMessage {
		t.Errorf("mode = %v, want %v", m.Mode(), ModeErrorMessage)
	}

	m.Handle(midi.Event{Type: midi.EventReset})
	if m.Mode() != ModeStartupMessage {
		t.Errorf("mode after reset = %v, want %v", m.Mode(), ModeStartupMessage)
	}
	if got := m.patches.Program(1); got != defaultPrograms[1] {
		t.Errorf("patch table survived reset: %d", got)
	}
}

func TestManagerRunConsumesUntilClose(t *testing.T) {
	m, _ := testManager(t)

	events := make(chan midi.Event, 4)
	events <- midi.Event{Type: midi.EventProgramChange, Part: 6, Program: 9}
	close(events)

	done := make(chan struct{})
	go func() {
		m.Run(events, nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not return after channel close")
	}

	if m.Mode() != ModeProgramChange {
		t.Errorf("mode = %v, want %v", m.Mode(), ModeProgramChange)
	}
}

func TestManagerCoalescesUpdates(t *testing.T) {
	m, _ := testManager(t)

	for i := 0; i < 10; i++ {
		m.Handle(midi.Event{Type: midi.EventMessage})
	}
	// One pending notification at most, and it must be pending now
	select {
	case <-m.UpdateChan:
	default:
		t.Fatalf("no update notification pending")
	}
	select {
	case <-m.UpdateChan:
		t.Fatalf("update notifications not coalesced")
	default:
	}
}
