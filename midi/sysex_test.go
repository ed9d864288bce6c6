package midi

import (
	"bytes"
	"testing"
)

// dt1 builds a full exclusive message for the unit: address, data and a
// valid checksum, framed with F0/F7.
func dt1(addr [3]byte, data []byte) []byte {
	body := append(addr[:], data...)
	msg := []byte{0xF0, manufacturerRoland, 0x10, modelMT32, commandDT1}
	msg = append(msg, body...)
	msg = append(msg, Checksum(body), 0xF7)
	return msg
}

func TestChecksum(t *testing.T) {
	cases := []struct {
		body []byte
		want byte
	}{
		{[]byte{0x00}, 0x00},
		{[]byte{0x10, 0x00, 0x16, 0x64}, 128 - (0x10+0x16+0x64)%128},
		{[]byte{0x7F, 0x7F, 0x7F}, 128 - (3*0x7F)%128},
	}
	for _, tc := range cases {
		if got := Checksum(tc.body); got != tc.want {
			t.Errorf("Checksum(% X) = %#x, want %#x", tc.body, got, tc.want)
		}
	}
}

func TestDecodeDisplayMessage(t *testing.T) {
	text := []byte("hello")
	events := DecodeSysEx(dt1([3]byte{addrDisplay, 0x00, 0x06}, text))

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	evt := events[0]
	if evt.Type != EventDisplayMessage {
		t.Fatalf("event type = %v, want display message", evt.Type)
	}
	if evt.Offset != 6 {
		t.Errorf("offset = %d, want 6", evt.Offset)
	}
	if !bytes.Equal(evt.Data, text) {
		t.Errorf("data = %q, want %q", evt.Data, text)
	}
}

func TestDecodeMasterVolume(t *testing.T) {
	events := DecodeSysEx(dt1([3]byte{addrSystem, 0x00, addrSystemVolume}, []byte{0x37}))
	if len(events) != 1 || events[0].Type != EventMasterVolume {
		t.Fatalf("events = %+v, want one master volume event", events)
	}
	if events[0].Volume != 0x37 {
		t.Errorf("volume = %d, want %d", events[0].Volume, 0x37)
	}
}

func TestDecodeReset(t *testing.T) {
	events := DecodeSysEx(dt1([3]byte{addrReset, 0x00, 0x00}, nil))
	if len(events) != 1 || events[0].Type != EventReset {
		t.Fatalf("events = %+v, want one reset event", events)
	}
}

func TestDecodeBadChecksum(t *testing.T) {
	msg := dt1([3]byte{addrDisplay, 0x00, 0x00}, []byte("hi"))
	msg[len(msg)-2] ^= 0x01 // corrupt the checksum

	events := DecodeSysEx(msg)
	if len(events) != 1 || events[0].Type != EventChecksumError {
		t.Fatalf("events = %+v, want one checksum error", events)
	}
}

func TestDecodeIgnoresForeignMessages(t *testing.T) {
	cases := []struct {
		name string
		raw  []byte
	}{
		{"too short", []byte{0xF0, manufacturerRoland, 0x10, modelMT32, commandDT1, 0xF7}},
		{"other manufacturer", []byte{0xF0, 0x43, 0x10, modelMT32, commandDT1, 0x20, 0x00, 0x00, 0x60, 0xF7}},
		{"other model", []byte{0xF0, manufacturerRoland, 0x10, 0x42, commandDT1, 0x20, 0x00, 0x00, 0x60, 0xF7}},
		{"request command", []byte{0xF0, manufacturerRoland, 0x10, modelMT32, 0x11, 0x20, 0x00, 0x00, 0x60, 0xF7}},
		{"unknown address", dt1([3]byte{0x03, 0x00, 0x00}, []byte{0x01})},
	}
	for _, tc := range cases {
		if events := DecodeSysEx(tc.raw); events != nil {
			t.Errorf("%s: events = %+v, want none", tc.name, events)
		}
	}
}

func TestDecodeUnframedMessage(t *testing.T) {
	// Drivers differ on whether F0/F7 are stripped before delivery
	framed := dt1([3]byte{addrDisplay, 0x00, 0x00}, []byte("ok"))
	unframed := framed[1 : len(framed)-1]

	for _, raw := range [][]byte{framed, unframed} {
		events := DecodeSysEx(raw)
		if len(events) != 1 || events[0].Type != EventDisplayMessage {
			t.Fatalf("events = %+v, want one display message", events)
		}
		if string(events[0].Data) != "ok" {
			t.Errorf("data = %q, want %q", events[0].Data, "ok")
		}
	}
}
