package midi

// EventType classifies a decoded inbound MIDI event.
type EventType int

const (
	// EventMessage is any channel voice message addressed to the unit.
	// It only feeds the MIDI MESSAGE LED.
	EventMessage EventType = iota
	// EventRhythmNote is a note-on on the rhythm channel.
	EventRhythmNote
	// EventProgramChange is a program change on a melodic part.
	EventProgramChange
	// EventMasterVolume is a SysEx master volume write.
	EventMasterVolume
	// EventDisplayMessage is a SysEx display override fragment.
	EventDisplayMessage
	// EventChecksumError is a SysEx message that failed its checksum.
	EventChecksumError
	// EventReset is a SysEx device reset.
	EventReset
)

// Event is a decoded inbound MIDI event relevant to the front panel.
// Fields beyond Type are populated per event type.
type Event struct {
	Type    EventType
	Part    uint8  // EventProgramChange: part index 0..7
	Program uint8  // EventProgramChange
	Volume  uint8  // EventMasterVolume: 0..100
	Offset  uint32 // EventDisplayMessage: write offset into the LCD line
	Data    []byte // EventDisplayMessage: fragment payload
}

// DeviceEventType distinguishes connects from disconnects.
type DeviceEventType int

const (
	DeviceConnected DeviceEventType = iota
	DeviceDisconnected
)

// DeviceEvent is emitted when an input port appears or goes away.
type DeviceEvent struct {
	Type  DeviceEventType
	Input *Input
	ID    string
}
