// Package tui implements the interactive what-if terminal UI for match
// scoring: edit the five factor values and watch the weighted score and
// audit formula update.
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmehta6/wastelink/internal/matching"
)

// MatchState represents the current state of the match TUI.
type MatchState int

const (
	// MatchStateEditing indicates the user is editing factor values.
	MatchStateEditing MatchState = iota
	// MatchStateQuitting indicates the application is exiting.
	MatchStateQuitting
)

// factorRow is a single editable factor in the match TUI.
type factorRow struct {
	key           string
	weight        float64
	originalValue float64
	currentValue  float64
}

// Default dimensions for the match model.
const (
	matchDefaultWidth  = 80
	matchDefaultHeight = 20

	factorInputLimit = 7 // longest valid value is "99.9999"
)

// MatchModel is the Bubble Tea model for interactive match scoring.
type MatchModel struct {
	weights matching.Weights
	rows    []factorRow

	focusedRow int
	editMode   bool
	input      textinput.Model
	editErr    string

	result    matching.ScoreResult
	resultErr error

	state  MatchState
	width  int
	height int
}

// NewMatchModel creates a match model seeded with the given factors and
// weights. The initial score is computed immediately.
func NewMatchModel(f matching.Factors, w matching.Weights) *MatchModel {
	input := textinput.New()
	input.CharLimit = factorInputLimit
	input.Width = factorInputLimit + 1

	m := &MatchModel{
		weights: w,
		rows: []factorRow{
			{key: "material", weight: w.Material, originalValue: f.MaterialCompatibility, currentValue: f.MaterialCompatibility},
			{key: "quantity", weight: w.Quantity, originalValue: f.QuantityFit, currentValue: f.QuantityFit},
			{key: "price", weight: w.Price, originalValue: f.PriceCompatibility, currentValue: f.PriceCompatibility},
			{key: "distance", weight: w.Distance, originalValue: f.DistanceScore, currentValue: f.DistanceScore},
			{key: "reliability", weight: w.Reliability, originalValue: f.ReliabilityScore, currentValue: f.ReliabilityScore},
		},
		input:  input,
		state:  MatchStateEditing,
		width:  matchDefaultWidth,
		height: matchDefaultHeight,
	}
	m.rescore()
	return m
}

// factors rebuilds the Factors struct from the current row values.
func (m *MatchModel) factors() matching.Factors {
	return matching.Factors{
		MaterialCompatibility: m.rows[0].currentValue,
		QuantityFit:           m.rows[1].currentValue,
		PriceCompatibility:    m.rows[2].currentValue,
		DistanceScore:         m.rows[3].currentValue,
		ReliabilityScore:      m.rows[4].currentValue,
	}
}

// rescore recomputes the weighted score. Scoring is a pure function, so it
// runs synchronously inside Update.
func (m *MatchModel) rescore() {
	m.result, m.resultErr = matching.WeightedMatchScore(m.factors(), m.weights)
}

// Init initializes the model.
func (m *MatchModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *MatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.editMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only handling relevant key types for TUI navigation.
func (m *MatchModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editMode {
		return m.handleEditModeKey(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = MatchStateQuitting
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.state = MatchStateQuitting
			return m, tea.Quit
		case "r":
			for i := range m.rows {
				m.rows[i].currentValue = m.rows[i].originalValue
			}
			m.rescore()
		}
		return m, nil

	case tea.KeyUp:
		if m.focusedRow > 0 {
			m.focusedRow--
		}
		return m, nil

	case tea.KeyDown:
		if m.focusedRow < len(m.rows)-1 {
			m.focusedRow++
		}
		return m, nil

	case tea.KeyEnter:
		m.editMode = true
		m.editErr = ""
		m.input.SetValue(formatFactor(m.rows[m.focusedRow].currentValue))
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

// handleEditModeKey processes keyboard input while editing a factor.
//
//nolint:exhaustive // Only handling relevant key types for text editing.
func (m *MatchModel) handleEditModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		raw := m.input.Value()
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 || value > 100 {
			m.editErr = fmt.Sprintf("%q is not a score in [0,100]", raw)
			return m, nil
		}
		m.rows[m.focusedRow].currentValue = value
		m.editMode = false
		m.editErr = ""
		m.input.Blur()
		m.rescore()
		return m, nil

	case tea.KeyEsc:
		m.editMode = false
		m.editErr = ""
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func formatFactor(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
