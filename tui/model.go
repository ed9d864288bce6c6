package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mt32-panel/midi"
	"mt32-panel/panel"
	"mt32-panel/theme"
	"mt32-panel/widgets"
)

// pollInterval is how often the view samples the display state. The
// display resolves its timers lazily, so polling faster buys nothing.
const pollInterval = 30 * time.Millisecond

type Model struct {
	Manager   *panel.Manager
	DeviceMgr *midi.DeviceManager
	Theme     *theme.Theme

	lcd      [panel.LCDTextSize]byte
	ledOn    bool
	portID   string
	quitting bool

	// bench-key state: which part/program the next 'p' selects
	demoPart    uint8
	demoProgram uint8
	demoVolume  uint8
}

type tickMsg time.Time

type UpdateMsg struct{}

type DeviceEventMsg midi.DeviceEvent

func NewModel(manager *panel.Manager, deviceMgr *midi.DeviceManager, th *theme.Theme) Model {
	return Model{
		Manager:    manager,
		DeviceMgr:  deviceMgr,
		Theme:      th,
		demoVolume: 100,
	}
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func ListenForUpdates(manager *panel.Manager) tea.Cmd {
	return func() tea.Msg {
		<-manager.UpdateChan
		return UpdateMsg{}
	}
}

func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	return func() tea.Msg {
		event := <-deviceMgr.Events()
		return DeviceEventMsg(event)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tick(),
		ListenForUpdates(m.Manager),
		ListenForDevices(m.DeviceMgr),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "n":
			m.Manager.Handle(midi.Event{Type: midi.EventMessage})

		case "r":
			m.Manager.Handle(midi.Event{Type: midi.EventRhythmNote})

		case "p":
			m.Manager.Handle(midi.Event{
				Type:    midi.EventProgramChange,
				Part:    m.demoPart,
				Program: m.demoProgram,
			})
			m.demoPart = (m.demoPart + 1) % panel.NumParts
			m.demoProgram = (m.demoProgram + 1) % 128

		case "e":
			m.Manager.Handle(midi.Event{Type: midi.EventChecksumError})

		case "c":
			m.Manager.Handle(midi.Event{
				Type: midi.EventDisplayMessage,
				Data: []byte("* mt32-panel demo *"),
			})

		case "-", "_":
			if m.demoVolume >= 10 {
				m.demoVolume -= 10
			} else {
				m.demoVolume = 0
			}
			m.Manager.Handle(midi.Event{Type: midi.EventMasterVolume, Volume: m.demoVolume})

		case "+", "=":
			if m.demoVolume <= 90 {
				m.demoVolume += 10
			} else {
				m.demoVolume = 100
			}
			m.Manager.Handle(midi.Event{Type: midi.EventMasterVolume, Volume: m.demoVolume})

		case "x":
			m.Manager.Handle(midi.Event{Type: midi.EventReset})
		}

	case tickMsg:
		m.ledOn = m.Manager.DisplayState(m.lcd[:])
		return m, tick()

	case UpdateMsg:
		m.ledOn = m.Manager.DisplayState(m.lcd[:])
		return m, ListenForUpdates(m.Manager)

	case DeviceEventMsg:
		event := midi.DeviceEvent(msg)
		if event.Type == midi.DeviceConnected {
			m.portID = event.ID
			// Route decoded events into the panel until the port closes
			go m.Manager.Run(event.Input.Events(), nil)
		} else if event.Type == midi.DeviceDisconnected {
			if m.portID == event.ID {
				m.portID = ""
			}
		}
		return m, ListenForDevices(m.DeviceMgr)
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	textStyle := lipgloss.NewStyle().Foreground(m.Theme.Text())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.LEDOff())

	port := "no MIDI input (bench keys active)"
	if m.portID != "" {
		port = m.portID
	}
	header := textStyle.Render(fmt.Sprintf("mt32-panel  %s  [%s]", port, m.Manager.Mode()))

	lcd := widgets.RenderLCD(m.lcd[:], m.Theme)
	led := widgets.RenderLED(m.ledOn, m.Theme)

	help := dimStyle.Render("n:note r:rhythm p:program e:error c:message +/-:volume x:reset q:quit")

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(lcd)
	out.WriteString("\n")
	out.WriteString(led)
	out.WriteString("\n\n")
	out.WriteString(help)

	return out.String()
}
