package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

// DeviceManager handles hot-plug detection of MIDI input ports. An empty
// wanted name matches every port; otherwise ports are matched by
// case-insensitive substring.
type DeviceManager struct {
	wantedPort string

	inputs   map[string]*Input
	mu       sync.RWMutex
	events   chan DeviceEvent
	pollRate time.Duration
}

// NewDeviceManager creates a manager looking for the given port name.
func NewDeviceManager(wantedPort string) *DeviceManager {
	return &DeviceManager{
		wantedPort: wantedPort,
		inputs:     make(map[string]*Input),
		events:     make(chan DeviceEvent, 16),
		pollRate:   time.Second,
	}
}

// Events returns a channel of connect/disconnect events.
func (dm *DeviceManager) Events() <-chan DeviceEvent {
	return dm.events
}

// Inputs returns a snapshot of open inputs.
func (dm *DeviceManager) Inputs() map[string]*Input {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	snapshot := make(map[string]*Input, len(dm.inputs))
	for k, v := range dm.inputs {
		snapshot[k] = v
	}
	return snapshot
}

// Run starts the polling loop (blocking - run in goroutine)
func (dm *DeviceManager) Run(ctx context.Context) {
	ticker := time.NewTicker(dm.pollRate)
	defer ticker.Stop()

	// Initial scan
	dm.scan()

	for {
		select {
		case <-ctx.Done():
			dm.closeAll()
			close(dm.events)
			return
		case <-ticker.C:
			dm.scan()
		}
	}
}

func (dm *DeviceManager) scan() {
	// Get current MIDI ports with timeout (CoreMIDI can hang)
	ch := make(chan []drivers.In, 1)
	go func() {
		ch <- gomidi.GetInPorts()
	}()

	var inPorts []drivers.In
	select {
	case inPorts = <-ch:
	case <-time.After(3 * time.Second):
		// CoreMIDI is hung - skip this scan
		return
	}

	seenIDs := make(map[string]bool)

	for i, inPort := range inPorts {
		if !dm.matches(inPort.String()) {
			continue
		}
		id := inPort.String()
		seenIDs[id] = true

		dm.mu.RLock()
		_, exists := dm.inputs[id]
		dm.mu.RUnlock()

		if !exists {
			in, err := NewInput(id, inPorts[i])
			if err != nil {
				continue
			}

			dm.mu.Lock()
			dm.inputs[id] = in
			dm.mu.Unlock()

			dm.events <- DeviceEvent{
				Type:  DeviceConnected,
				Input: in,
				ID:    id,
			}
		}
	}

	// Check for disconnects
	dm.mu.Lock()
	var toRemove []string
	for id := range dm.inputs {
		if !seenIDs[id] {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range toRemove {
		in := dm.inputs[id]
		in.Close()
		delete(dm.inputs, id)
		dm.events <- DeviceEvent{
			Type: DeviceDisconnected,
			ID:   id,
		}
	}
	dm.mu.Unlock()
}

func (dm *DeviceManager) matches(portName string) bool {
	if dm.wantedPort == "" {
		return true
	}
	return strings.Contains(strings.ToLower(portName), strings.ToLower(dm.wantedPort))
}

func (dm *DeviceManager) closeAll() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	for _, in := range dm.inputs {
		in.Close()
	}
	dm.inputs = make(map[string]*Input)
}
