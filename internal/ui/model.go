// ABOUTME: Bubbletea model for the playback status TUI
// ABOUTME: Renders the rate plan and live skip statistics
package ui

import (
	"fmt"

	"github.com/Pulseplay-Audio/pulseplay-go/internal/version"
	tea "github.com/charmbracelet/bubbletea"
)

// StatusMsg carries playback state into the TUI
type StatusMsg struct {
	File     string
	Speed    float64
	Desired  float64
	SinkRate int
	Ratio    float64
	Chunks   int64
	Played   int64
	Skipped  int64
	Percent  float64
	State    string // "idle", "playing", "done", "failed"
}

// Model represents the TUI state
type Model struct {
	// Source
	file  string
	state string

	// Rate plan
	speed    float64
	desired  float64
	sinkRate int
	ratio    float64

	// Stats
	chunks  int64
	played  int64
	skipped int64
	percent float64

	// Dimensions
	width  int
	height int

	control *Control
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case StatusMsg:
		m.applyStatus(msg)
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.control != nil {
			select {
			case m.control.Quit <- struct{}{}:
			default:
			}
		}
		return m, tea.Quit
	}
	return m, nil
}

// applyStatus merges a status update into the model
func (m *Model) applyStatus(msg StatusMsg) {
	if msg.File != "" {
		m.file = msg.File
	}
	if msg.State != "" {
		m.state = msg.State
	}
	if msg.SinkRate != 0 {
		m.speed = msg.Speed
		m.desired = msg.Desired
		m.sinkRate = msg.SinkRate
		m.ratio = msg.Ratio
	}
	m.chunks = msg.Chunks
	m.played = msg.Played
	m.skipped = msg.Skipped
	m.percent = msg.Percent
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := fmt.Sprintf("%s v%s\n\n", version.Product, version.Version)
	s += fmt.Sprintf("File:   %s\n", m.file)
	s += fmt.Sprintf("State:  %s\n\n", m.state)

	if m.sinkRate != 0 {
		s += fmt.Sprintf("Speed:  %.2fx (desired %.0f Hz -> sink %d Hz, ratio %.4f)\n\n",
			m.speed, m.desired, m.sinkRate, m.ratio)
	}

	s += fmt.Sprintf("Chunks: %d\n", m.chunks)
	s += fmt.Sprintf("Played: %d samples\n", m.played)
	s += fmt.Sprintf("Skipped: %d samples (%.1f%%)\n\n", m.skipped, m.percent)
	s += "Press q to quit\n"

	return s
}
