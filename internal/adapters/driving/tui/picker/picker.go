// Package picker provides an interactive candidate picker for
// choosing a database entry to insert.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
)

const visibleRows = 10

var (
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	normalStyle   = lipgloss.NewStyle()
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model for the candidate picker.
type Model struct {
	input      textinput.Model
	candidates []domain.Candidate
	filtered   []domain.Candidate
	selected   int
	chosen     *domain.Candidate
	cancelled  bool
}

// NewModel creates a picker over the given candidates.
func NewModel(candidates []domain.Candidate) Model {
	ti := textinput.New()
	ti.Placeholder = "Filter candidates..."
	ti.Focus()

	return Model{
		input:      ti,
		candidates: candidates,
		filtered:   candidates,
	}
}

// Init initialises the picker.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key messages: navigation, selection, and filtering.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch key.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.selected < len(m.filtered) {
				c := m.filtered[m.selected]
				m.chosen = &c
			}
			return m, tea.Quit
		case tea.KeyUp:
			m.moveUp()
			return m, nil
		case tea.KeyDown:
			m.moveDown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

// View renders the filter input above the candidate list.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(mutedStyle.Render("No matching candidates"))
		b.WriteString("\n")
		return b.String()
	}

	start := 0
	if m.selected >= visibleRows {
		start = m.selected - visibleRows + 1
	}
	end := start + visibleRows
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := start; i < end; i++ {
		line := m.filtered[i].Display()
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(normalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d/%d  enter: select  esc: cancel",
		len(m.filtered), len(m.candidates))))
	b.WriteString("\n")
	return b.String()
}

// Chosen returns the selected candidate, or nil when cancelled.
func (m Model) Chosen() *domain.Candidate {
	if m.cancelled {
		return nil
	}
	return m.chosen
}

func (m *Model) moveUp() {
	if m.selected > 0 {
		m.selected--
	}
}

func (m *Model) moveDown() {
	if m.selected < len(m.filtered)-1 {
		m.selected++
	}
}

// applyFilter narrows the list to candidates whose citation or source
// contains the query, case-insensitively.
func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.input.Value()))
	if query == "" {
		m.filtered = m.candidates
		m.selected = 0
		return
	}

	var filtered []domain.Candidate
	for _, c := range m.candidates {
		if strings.Contains(strings.ToLower(c.Display()), query) ||
			strings.Contains(strings.ToLower(c.Source), query) {
			filtered = append(filtered, c)
		}
	}
	m.filtered = filtered
	m.selected = 0
}

// Run opens the picker and blocks until a candidate is chosen or the
// picker is dismissed. A nil candidate with nil error means dismissal.
func Run(candidates []domain.Candidate) (*domain.Candidate, error) {
	p := tea.NewProgram(NewModel(candidates))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}

	model, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected picker model %T", final)
	}
	return model.Chosen(), nil
}
