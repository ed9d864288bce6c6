package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"mt32-panel/midi"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "dump":
		dumpPort(strings.Join(os.Args[2:], " "))
	case "poll":
		pollDevices()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI probe")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list         - List all MIDI input ports")
	fmt.Println("  dump [port]  - Dump decoded panel events from a port")
	fmt.Println("  poll         - Poll for device changes")
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	ch := make(chan []drivers.In, 1)
	go func() {
		ch <- gomidi.GetInPorts()
	}()

	select {
	case ins := <-ch:
		for i, p := range ins {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
	}
}

func dumpPort(wanted string) {
	var inPort drivers.In
	for _, p := range gomidi.GetInPorts() {
		if wanted == "" || strings.Contains(strings.ToLower(p.String()), strings.ToLower(wanted)) {
			inPort = p
			break
		}
	}
	if inPort == nil {
		fmt.Println("No matching input port")
		return
	}
	fmt.Printf("Listening on %s (Ctrl+C to exit)\n", inPort.String())

	in, err := midi.NewInput(inPort.String(), inPort)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer in.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	for {
		select {
		case <-sig:
			return
		case evt := <-in.Events():
			printEvent(evt)
		}
	}
}

func printEvent(evt midi.Event) {
	ts := time.Now().Format("15:04:05.000")
	switch evt.Type {
	case midi.EventMessage:
		fmt.Printf("[%s] message\n", ts)
	case midi.EventRhythmNote:
		fmt.Printf("[%s] rhythm note\n", ts)
	case midi.EventProgramChange:
		fmt.Printf("[%s] program change part=%d program=%d\n", ts, evt.Part, evt.Program)
	case midi.EventMasterVolume:
		fmt.Printf("[%s] master volume %d\n", ts, evt.Volume)
	case midi.EventDisplayMessage:
		fmt.Printf("[%s] display message offset=%d %q\n", ts, evt.Offset, evt.Data)
	case midi.EventChecksumError:
		fmt.Printf("[%s] checksum error\n", ts)
	case midi.EventReset:
		fmt.Printf("[%s] device reset\n", ts)
	}
}

func pollDevices() {
	fmt.Println("Polling for device changes every 2 seconds...")
	fmt.Println("Connect/disconnect devices to test. Ctrl+C to exit.")

	last := ""
	for {
		var names []string
		for _, p := range gomidi.GetInPorts() {
			names = append(names, p.String())
		}
		current := strings.Join(names, ",")

		if current != last {
			fmt.Printf("\n[%s] Device change detected!\n", time.Now().Format("15:04:05"))
			fmt.Printf("  Inputs: %v\n", names)
			last = current
		}

		time.Sleep(2 * time.Second)
	}
}
