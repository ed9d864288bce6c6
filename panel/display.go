package panel

import "time"

// LCDTextSize is the width of the front-panel LCD in characters.
const LCDTextSize = 20

// Mode identifies what the LCD is currently showing. Exactly one mode is
// active at any instant.
type Mode int

const (
	ModeMain Mode = iota // master volume view
	ModeStartupMessage
	ModeProgramChange
	ModeCustomMessage
	ModeErrorMessage
)

func (m Mode) String() string {
	switch m {
	case ModeMain:
		return "main"
	case ModeStartupMessage:
		return "startup"
	case ModeProgramChange:
		return "program-change"
	case ModeCustomMessage:
		return "custom-message"
	case ModeErrorMessage:
		return "error-message"
	}
	return "unknown"
}

// modeUrgency ranks concurrent display requests. A request never replaces
// the visible buffer of a higher-ranked mode while that mode's reset timer
// is still pending.
var modeUrgency = [...]int{
	ModeMain:           0,
	ModeStartupMessage: 0,
	ModeProgramChange:  1,
	ModeCustomMessage:  2,
	ModeErrorMessage:   3,
}

// Reset delays for the transient display states and the two activity
// timers. All are measured on the injected clock, so tests can drive them
// without sleeping.
const (
	StartupDisplayDelay = 2 * time.Second
	DisplayResetDelay   = 5 * time.Second
	ErrorDisplayDelay   = 10 * time.Second
	MidiMessageLEDDelay = 30 * time.Millisecond
	RhythmStateDelay    = 50 * time.Millisecond
)

// Special bytes understood by the LCD renderer. The block glyph marks an
// active part cell on the master volume view.
const (
	BlockGlyph byte = 0x01
	BarGlyph   byte = 0x02
)

const (
	startupBanner = "  * Roland MT-32 *  "
	errorBanner   = "Exc. Checksum error "
	mainView      = "1 2 3 4 5 R |vol:100"

	rhythmCell = 10 // position of 'R' on the master volume view
	volumeCell = 17 // first digit of the volume field
)

const defaultMasterVolume = 100

// Clock reports emulated time since power-on. It must be monotonic; the
// display never sleeps on it, it only compares timestamps.
type Clock func() time.Duration

// PatchNameSource resolves the patch currently assigned to a part, for the
// program-change banner.
type PatchNameSource interface {
	PatchName(partIndex uint8) string
}

// Display models the front-panel LCD and the MIDI MESSAGE LED.
//
// All state transitions are lazy: timers are absolute timestamps paired
// with a pending flag and are resolved on the next operation, so the
// display stays correct no matter how irregularly it is polled. The type
// is not safe for concurrent use; callers serialize access (see Manager).
type Display struct {
	clock   Clock
	patches PatchNameSource

	mode Mode

	displayResetTimestamp time.Duration
	displayResetScheduled bool
	ledResetTimestamp     time.Duration
	ledOn                 bool
	rhythmResetTimestamp  time.Duration
	rhythmActive          bool

	masterVolume uint8

	// Latest program change held back by a higher-urgency mode. Applied
	// when that mode reverts.
	pendingPart    uint8
	pendingProgram bool

	displayBuffer [LCDTextSize]byte
	customBuffer  [LCDTextSize]byte
}

// NewDisplay creates a display showing the startup banner. patches may be
// nil, in which case program-change banners fall back to part numbers.
func NewDisplay(clock Clock, patches PatchNameSource) *Display {
	d := &Display{
		clock:   clock,
		patches: patches,
	}
	d.Reset()
	return d
}

// Reset returns the display to its power-on state: startup banner with a
// one-shot revert to the master volume view, LED off, no activity.
func (d *Display) Reset() {
	d.mode = ModeStartupMessage
	d.ledOn = false
	d.rhythmActive = false
	d.masterVolume = defaultMasterVolume
	d.pendingProgram = false
	copy(d.displayBuffer[:], startupBanner)
	for i := range d.customBuffer {
		d.customBuffer[i] = ' '
	}
	d.displayResetTimestamp = d.clock() + StartupDisplayDelay
	d.displayResetScheduled = true
}

// Mode reports the currently active display mode (after resolving any
// elapsed timers).
func (d *Display) Mode() Mode {
	d.resolveTimers(d.clock())
	return d.mode
}

// MasterVolume reports the current master volume (0..100).
func (d *Display) MasterVolume() uint8 {
	return d.masterVolume
}

// SetMasterVolume updates the volume shown on the master volume view.
// Values above 100 are clamped.
func (d *Display) SetMasterVolume(volume uint8) {
	if volume > 100 {
		volume = 100
	}
	d.masterVolume = volume
}

// UpdateDisplayState resolves elapsed timers, copies the visible 20-byte
// line into out and reports whether the MIDI MESSAGE LED is lit. This is
// the poll operation; it is safe to call at any cadence.
func (d *Display) UpdateDisplayState(out []byte) bool {
	d.resolveTimers(d.clock())
	if d.mode == ModeMain {
		d.composeMainView()
	}
	copy(out, d.displayBuffer[:])
	return d.ledOn
}

// MidiMessagePlayed lights the MIDI MESSAGE LED and pushes its reset
// deadline out. Messages arriving faster than the timeout keep it lit.
func (d *Display) MidiMessagePlayed() {
	d.ledOn = true
	d.ledResetTimestamp = d.clock() + MidiMessageLEDDelay
}

// RhythmNotePlayed marks rhythm-part activity, shown as a block in the 'R'
// cell of the master volume view. Same debounce as the LED, separate timer.
func (d *Display) RhythmNotePlayed() {
	d.rhythmActive = true
	d.rhythmResetTimestamp = d.clock() + RhythmStateDelay
}

// ProgramChanged requests the program-change banner for a part (0..7).
// While a higher-urgency mode is visible the request is remembered (latest
// wins) and shown once that mode reverts.
func (d *Display) ProgramChanged(partIndex uint8) {
	now := d.clock()
	d.resolveTimers(now)
	if modeUrgency[d.mode] > modeUrgency[ModeProgramChange] {
		d.pendingPart = partIndex
		d.pendingProgram = true
		return
	}
	d.pendingProgram = false
	d.enterProgramChange(partIndex, now)
}

// ChecksumErrorOccurred unconditionally shows the checksum diagnostic.
// This mode outranks all others until its timer elapses.
func (d *Display) ChecksumErrorOccurred() {
	d.mode = ModeErrorMessage
	copy(d.displayBuffer[:], errorBanner)
	d.displayResetTimestamp = d.clock() + ErrorDisplayDelay
	d.displayResetScheduled = true
}

// CustomDisplayMessageReceived writes a fragment of an override message
// into the staging buffer at startIndex and commits the staged line to the
// LCD. Out-of-range writes are rejected without touching any state. While
// the error banner is visible the write is staged but not shown until the
// next commit after the error reverts.
func (d *Display) CustomDisplayMessageReceived(message []byte, startIndex, length uint32) bool {
	if startIndex > LCDTextSize || length > LCDTextSize-startIndex || uint32(len(message)) < length {
		return false
	}
	copy(d.customBuffer[startIndex:startIndex+length], message[:length])

	now := d.clock()
	d.resolveTimers(now)
	if modeUrgency[d.mode] > modeUrgency[ModeCustomMessage] {
		return true
	}
	d.mode = ModeCustomMessage
	copy(d.displayBuffer[:], d.customBuffer[:])
	d.displayResetTimestamp = now + DisplayResetDelay
	d.displayResetScheduled = true
	return true
}

// resolveTimers applies every reset whose deadline has passed. A timer
// fires only while its pending flag is set; firing clears the flag.
func (d *Display) resolveTimers(now time.Duration) {
	if d.ledOn && d.ledResetTimestamp <= now {
		d.ledOn = false
	}
	if d.rhythmActive && d.rhythmResetTimestamp <= now {
		d.rhythmActive = false
	}
	if d.displayResetScheduled && d.displayResetTimestamp <= now {
		d.displayResetScheduled = false
		d.mode = ModeMain
		if d.pendingProgram {
			d.pendingProgram = false
			d.enterProgramChange(d.pendingPart, now)
		}
	}
}

func (d *Display) enterProgramChange(partIndex uint8, now time.Duration) {
	d.mode = ModeProgramChange
	d.composeProgramChange(partIndex)
	d.displayResetTimestamp = now + DisplayResetDelay
	d.displayResetScheduled = true
}

// composeMainView rebuilds the master volume view in place. No
// allocation: this runs on every poll while idle.
func (d *Display) composeMainView() {
	copy(d.displayBuffer[:], mainView)
	if d.rhythmActive {
		d.displayBuffer[rhythmCell] = BlockGlyph
	}
	v := d.masterVolume
	d.displayBuffer[volumeCell] = ' '
	d.displayBuffer[volumeCell+1] = ' '
	d.displayBuffer[volumeCell+2] = '0' + v%10
	if v >= 10 {
		d.displayBuffer[volumeCell+1] = '0' + (v/10)%10
	}
	if v >= 100 {
		d.displayBuffer[volumeCell] = '0' + v/100
	}
}

// composeProgramChange renders "<part>|<patch name>", truncated and
// space-padded to the LCD width.
func (d *Display) composeProgramChange(partIndex uint8) {
	name := ""
	if d.patches != nil {
		name = d.patches.PatchName(partIndex)
	}
	d.displayBuffer[0] = '1' + partIndex
	d.displayBuffer[1] = BarGlyph
	for i := 2; i < LCDTextSize; i++ {
		if j := i - 2; j < len(name) {
			d.displayBuffer[i] = name[j]
		} else {
			d.displayBuffer[i] = ' '
		}
	}
}
