package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel represents the Bubble Tea model for choice selection.
type selectModel struct {
	title           string
	choices         []Choice
	filteredChoices []Choice
	cursor          int
	filter          string
	selected        *Choice
	quitting        bool
}

// initialSelectModel creates a new select model with the cursor on defaultValue.
func initialSelectModel(title string, choices []Choice, defaultValue string) selectModel {
	m := selectModel{
		title:           title,
		choices:         choices,
		filteredChoices: choices,
	}
	for i, choice := range choices {
		if choice.Value == defaultValue {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyInput(msg.String())
	}

	return m, nil
}

// handleKeyInput processes key input and returns the updated model and command.
func (m selectModel) handleKeyInput(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if m.cursor < len(m.filteredChoices) {
			selected := m.filteredChoices[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filteredChoices)-1 {
			m.cursor++
		}
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m = m.updateFilteredChoices()
		}
	case "esc":
		m.filter = ""
		m = m.updateFilteredChoices()
	default:
		if len(key) == 1 {
			m.filter += key
			m = m.updateFilteredChoices()
		}
	}

	return m, nil
}

// updateFilteredChoices updates the filtered choices based on the current filter.
func (m selectModel) updateFilteredChoices() selectModel {
	if m.filter == "" {
		m.filteredChoices = m.choices
	} else {
		m.filteredChoices = []Choice{}
		filterLower := strings.ToLower(m.filter)
		for _, choice := range m.choices {
			if strings.Contains(strings.ToLower(choice.Value), filterLower) {
				m.filteredChoices = append(m.filteredChoices, choice)
			}
		}
	}

	if m.cursor >= len(m.filteredChoices) {
		m.cursor = 0
	}
	return m
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(fmt.Sprintf("? %s  [Use arrows to move, type to filter]\n\n", m.title))

	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	for i, choice := range m.filteredChoices {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s.WriteString(fmt.Sprintf("%s %s\n", cursor, formatChoice(choice)))
	}

	s.WriteString("\nPress Enter to select, Ctrl+C or q to quit")
	if m.filter != "" {
		s.WriteString(", Esc to clear filter")
	}

	return s.String()
}

// formatChoice formats a choice for display.
func formatChoice(choice Choice) string {
	if choice.Description == "" {
		return choice.Value
	}
	return fmt.Sprintf("%s (%s)", choice.Value, choice.Description)
}

// promptSelectBubbleTea runs the Bubble Tea program for choice selection.
func promptSelectBubbleTea(title string, choices []Choice, defaultValue string) (Choice, error) {
	p := tea.NewProgram(initialSelectModel(title, choices, defaultValue))

	finalModel, err := p.Run()
	if err != nil {
		return Choice{}, fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return Choice{}, fmt.Errorf("unexpected model type")
	}

	if model.selected == nil {
		return Choice{}, ErrNoSelection
	}

	return *model.selected, nil
}
