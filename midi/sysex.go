package midi

// Roland exclusive format for the modeled unit: F0 41 dev 16 12 aH aM aL
// data... sum F7 (DT1). The checksum covers address and data; the sum of
// all covered bytes plus the checksum is 0 mod 128.
const (
	manufacturerRoland = 0x41
	modelMT32          = 0x16
	commandDT1         = 0x12
)

// Addresses the front panel reacts to.
const (
	addrDisplay      = 0x20 // 20 00 xx: LCD override, xx = write offset
	addrSystem       = 0x10 // 10 00 16: master volume
	addrSystemVolume = 0x16
	addrReset        = 0x7F // 7F 00 00: device reset
)

// DecodeSysEx decodes one system exclusive message into panel events.
// Leading F0 and trailing F7 are tolerated, since drivers differ on
// whether they strip them. Messages for other manufacturers, models or
// commands decode to nothing; a DT1 with a bad checksum decodes to a
// single EventChecksumError.
func DecodeSysEx(raw []byte) []Event {
	if len(raw) > 0 && raw[0] == 0xF0 {
		raw = raw[1:]
	}
	if len(raw) > 0 && raw[len(raw)-1] == 0xF7 {
		raw = raw[:len(raw)-1]
	}
	// 41 dev 16 12 aH aM aL sum is the shortest valid DT1
	if len(raw) < 8 {
		return nil
	}
	if raw[0] != manufacturerRoland || raw[2] != modelMT32 || raw[3] != commandDT1 {
		return nil
	}

	body := raw[4:] // address, data, checksum
	var sum uint32
	for _, b := range body {
		sum += uint32(b)
	}
	if sum%128 != 0 {
		return []Event{{Type: EventChecksumError}}
	}

	addr := body[:3]
	data := body[3 : len(body)-1]

	switch {
	case addr[0] == addrDisplay && addr[1] == 0x00:
		return []Event{{
			Type:   EventDisplayMessage,
			Offset: uint32(addr[2]),
			Data:   data,
		}}

	case addr[0] == addrSystem && addr[1] == 0x00 && addr[2] == addrSystemVolume:
		if len(data) == 0 {
			return nil
		}
		return []Event{{Type: EventMasterVolume, Volume: data[0] & 0x7F}}

	case addr[0] == addrReset:
		return []Event{{Type: EventReset}}
	}
	return nil
}

// Checksum computes the Roland checksum over address and data bytes.
func Checksum(body []byte) byte {
	var sum uint32
	for _, b := range body {
		sum += uint32(b)
	}
	return byte((128 - sum%128) % 128)
}
