// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Videology Inc.

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/VideologyInc/bosonctl/pkg/fslp"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Interactive TUI for watching a camera",
	Long: `Watch a camera via an interactive terminal UI.

The TUI reads the camera identity once, then polls the MIPI transmitter
state and multiplexer routing every second. Remote status errors show up
in the event log with their firmware result-code names.

Keys:
  f       run a flat-field correction
  s       toggle the MIPI stream
  q       quit`,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}

// Event log entry
type monitorLogEntry struct {
	timestamp time.Time
	message   string
	isError   bool
}

// One poll pass over the camera
type monitorPollMsg struct {
	state     fslp.MipiState
	muxSource fslp.MuxSource
	muxType   fslp.MuxType
	err       error
}

type monitorIdentityMsg struct {
	pn       string
	cameraSN uint32
	firmware string
	err      error
}

type monitorFFCMsg struct{ err error }
type monitorStreamMsg struct {
	started bool
	err     error
}
type monitorTickMsg time.Time

// TUI model
type monitorModel struct {
	client   *fslp.Client
	connInfo string

	spin          spinner.Model
	identity      *monitorIdentityMsg
	lastPoll      *monitorPollMsg
	eventLog      []monitorLogEntry
	maxLogEntries int
	busy          string // in-flight slow operation, "" when idle
	width         int
	height        int
	quitting      bool
}

func initialMonitorModel(client *fslp.Client, connInfo string) monitorModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return monitorModel{
		client:        client,
		connInfo:      connInfo,
		spin:          sp,
		eventLog:      make([]monitorLogEntry, 0),
		maxLogEntries: 100,
		width:         80,
		height:        24,
	}
}

func runMonitor(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	m := initialMonitorModel(s.Client, s.ConnInfo)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}
	return nil
}

func (m monitorModel) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		fetchIdentityCmd(m.client),
		pollCameraCmd(m.client),
		monitorTickCmd(),
	)
}

func monitorTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return monitorTickMsg(t)
	})
}

func fetchIdentityCmd(client *fslp.Client) tea.Cmd {
	return func() tea.Msg {
		pn, err := client.CameraPN()
		if err != nil {
			return monitorIdentityMsg{err: err}
		}
		sn, err := client.CameraSN()
		if err != nil {
			return monitorIdentityMsg{err: err}
		}
		major, minor, patch, err := client.SoftwareRev()
		if err != nil {
			return monitorIdentityMsg{err: err}
		}
		return monitorIdentityMsg{
			pn:       pn,
			cameraSN: sn,
			firmware: fmt.Sprintf("%d.%d.%d", major, minor, patch),
		}
	}
}

func pollCameraCmd(client *fslp.Client) tea.Cmd {
	return func() tea.Msg {
		state, err := client.MipiState()
		if err != nil {
			return monitorPollMsg{err: err}
		}
		source, typ, err := client.GetMuxType(fslp.MuxOutputMIPITX)
		if err != nil {
			return monitorPollMsg{state: state, err: err}
		}
		return monitorPollMsg{state: state, muxSource: source, muxType: typ}
	}
}

func runFFCCmd(client *fslp.Client) tea.Cmd {
	return func() tea.Msg {
		return monitorFFCMsg{err: client.RunFFC()}
	}
}

func toggleStreamCmd(client *fslp.Client, current fslp.MipiState) tea.Cmd {
	return func() tea.Msg {
		if current == fslp.MipiStateActive {
			return monitorStreamMsg{started: false, err: client.StopMipiStream()}
		}
		return monitorStreamMsg{started: true, err: client.StartMipiStream(fslp.ColorStream)}
	}
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "f":
			if m.busy == "" {
				m.busy = "running FFC"
				return m, runFFCCmd(m.client)
			}
		case "s":
			if m.busy == "" && m.lastPoll != nil && m.lastPoll.err == nil {
				if m.lastPoll.state == fslp.MipiStateActive {
					m.busy = "stopping stream"
				} else {
					m.busy = "starting stream"
				}
				return m, toggleStreamCmd(m.client, m.lastPoll.state)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case monitorTickMsg:
		// Hold polling while a slow command owns the session; the
		// client serializes anyway but interleaved polls would delay it.
		if m.busy != "" {
			return m, monitorTickCmd()
		}
		return m, tea.Batch(pollCameraCmd(m.client), monitorTickCmd())

	case monitorIdentityMsg:
		if msg.err != nil {
			m.addLogEntry(fmt.Sprintf("identity read failed: %v", msg.err), true)
		} else {
			identity := msg
			m.identity = &identity
			m.addLogEntry(fmt.Sprintf("connected to %s (S/N %d)", msg.pn, msg.cameraSN), false)
		}

	case monitorPollMsg:
		poll := msg
		m.lastPoll = &poll
		if msg.err != nil {
			m.logRemoteError("poll", msg.err)
		}

	case monitorFFCMsg:
		m.busy = ""
		if msg.err != nil {
			m.logRemoteError("FFC", msg.err)
		} else {
			m.addLogEntry("FFC complete", false)
		}

	case monitorStreamMsg:
		m.busy = ""
		if msg.err != nil {
			m.logRemoteError("stream", msg.err)
		} else if msg.started {
			m.addLogEntry("MIPI stream started", false)
		} else {
			m.addLogEntry("MIPI stream stopped", false)
		}
		return m, pollCameraCmd(m.client)
	}

	return m, nil
}

func (m *monitorModel) addLogEntry(message string, isError bool) {
	m.eventLog = append(m.eventLog, monitorLogEntry{
		timestamp: time.Now(),
		message:   message,
		isError:   isError,
	})

	// Keep only last N entries
	if len(m.eventLog) > m.maxLogEntries {
		m.eventLog = m.eventLog[len(m.eventLog)-m.maxLogEntries:]
	}
}

// logRemoteError renders camera status errors with their firmware
// result-code name; transport errors pass through as-is.
func (m *monitorModel) logRemoteError(op string, err error) {
	if code, ok := fslp.RemoteStatus(err); ok {
		m.addLogEntry(fmt.Sprintf("%s: camera returned %s", op, code), true)
		return
	}
	m.addLogEntry(fmt.Sprintf("%s: %v", op, err), true)
}

func (m monitorModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	// Styles
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	// Header
	var s strings.Builder
	s.WriteString(titleStyle.Render("BOSONCTL - CAMERA MONITOR"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf("%s | Press 'f' for FFC, 's' to toggle stream, 'q' to quit", m.connInfo)))
	s.WriteString("\n\n")

	// Identity
	identityContent := strings.Builder{}
	if m.identity == nil {
		identityContent.WriteString(warningStyle.Render(m.spin.View() + " Reading camera identity..."))
	} else {
		identityContent.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s",
			labelStyle.Render("Part:"), valueStyle.Render(m.identity.pn),
			labelStyle.Render("S/N:"), valueStyle.Render(fmt.Sprintf("%d", m.identity.cameraSN)),
			labelStyle.Render("Firmware:"), valueStyle.Render(m.identity.firmware),
		))
	}
	s.WriteString(boxStyle.Render(identityContent.String()))
	s.WriteString("\n\n")

	// Live state
	stateContent := strings.Builder{}
	if m.busy != "" {
		stateContent.WriteString(warningStyle.Render(m.spin.View() + " " + m.busy + "..."))
	} else if m.lastPoll == nil {
		stateContent.WriteString(warningStyle.Render(m.spin.View() + " Polling..."))
	} else if m.lastPoll.err != nil {
		stateContent.WriteString(errorStyle.Render("poll failed, see events"))
	} else {
		stateContent.WriteString(fmt.Sprintf("%s %s   %s %s (%s)",
			labelStyle.Render("MIPI:"), valueStyle.Render(mipiStateName(m.lastPoll.state)),
			labelStyle.Render("Mux:"), valueStyle.Render(muxName(muxSources, m.lastPoll.muxSource)),
			muxName(muxTypes, m.lastPoll.muxType),
		))
	}
	s.WriteString(boxStyle.Render(stateContent.String()))
	s.WriteString("\n\n")

	// Event log
	s.WriteString(labelStyle.Render("Recent Events:"))
	s.WriteString("\n")

	// Calculate how many log entries we can show
	logHeight := m.height - 12 // Reserve space for header and state boxes
	if logHeight < 5 {
		logHeight = 5
	}

	logContent := strings.Builder{}
	startIdx := len(m.eventLog) - logHeight
	if startIdx < 0 {
		startIdx = 0
	}

	if len(m.eventLog) == 0 {
		logContent.WriteString(headerStyle.Render("  (no events yet)"))
	} else {
		for i := startIdx; i < len(m.eventLog); i++ {
			entry := m.eventLog[i]
			timestamp := entry.timestamp.Format("01/02/06 15:04:05.000")
			if entry.isError {
				logContent.WriteString(fmt.Sprintf("%s %s\n",
					headerStyle.Render(timestamp),
					errorStyle.Render("✗ "+entry.message),
				))
			} else {
				logContent.WriteString(fmt.Sprintf("%s %s\n",
					headerStyle.Render(timestamp),
					warningStyle.Render("ℹ "+entry.message),
				))
			}
		}
	}

	s.WriteString(boxStyle.Width(m.width - 4).Render(logContent.String()))

	return s.String()
}
