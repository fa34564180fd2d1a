package cli

import (
	"strings"

	"github.com/DiegoRozo23/lexpro-abogados/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchBar wraps a textinput for the "/" substring filter on list views.
// While active it captures every keystroke; esc clears the filter, enter
// keeps it applied and returns control to the list.
type searchBar struct {
	input  textinput.Model
	active bool
}

func newSearchBar() searchBar {
	ti := textinput.New()
	ti.Prompt = "buscar: "
	ti.PromptStyle = formatter.StyleDim
	ti.CharLimit = 100
	return searchBar{input: ti}
}

// Open activates the bar with an empty query and focuses the input.
func (s *searchBar) Open() tea.Cmd {
	s.active = true
	s.input.Reset()
	return s.input.Focus()
}

// Active reports whether the bar is capturing keystrokes.
func (s *searchBar) Active() bool { return s.active }

// Query returns the current filter text, lowercased for matching.
func (s *searchBar) Query() string {
	return strings.ToLower(strings.TrimSpace(s.input.Value()))
}

// HandleKey processes one keystroke while the bar is active.
func (s *searchBar) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		s.active = false
		s.input.Blur()
		s.input.Reset()
		return nil
	case tea.KeyEnter:
		s.active = false
		s.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// View renders the bar; empty when the bar is inactive with no filter.
func (s *searchBar) View() string {
	if !s.active && s.Query() == "" {
		return ""
	}
	return s.input.View()
}
