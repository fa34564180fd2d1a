package cli

import (
	"github.com/DiegoRozo23/lexpro-abogados/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method, keeping the nav.Stack
// and the live view stack in lockstep.

// pushViewMsg pushes a new view onto the navigation stack. The frame carries
// the route name, params and breadcrumb title recorded in the history.
type pushViewMsg struct {
	view  View
	frame nav.Frame
}

// popViewMsg pops the current view, returning to the previous one.
type popViewMsg struct{}

// popToMsg truncates the stack so the frame at the given index becomes
// current. Out-of-range indices clamp: negative jumps to the root, an index
// at or past the top is a no-op.
type popToMsg struct {
	index int
}

// navigateRootMsg resets navigation to a single root view, discarding all
// history. Sent on login, logout, section switches and notification links.
type navigateRootMsg struct {
	name nav.ViewName
}

// refreshViewMsg tells every view on the stack to reload its data. Sent after
// mutations so list views under a form pick up the change.
type refreshViewMsg struct{}

// wizardCompleteMsg is sent when a form completes or is cancelled.
// The appModel handles it atomically: pop the form view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// opErrMsg reports a failed service write from a wizard done callback.
// The appModel shows it in the status bar until the next key press.
type opErrMsg struct {
	err error
}

// logoutMsg clears the session and returns to the login screen.
type logoutMsg struct{}

func pushViewCmd(v View, frame nav.Frame) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v, frame: frame} }
}

func popViewCmd() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func navigateRootCmd(name nav.ViewName) tea.Cmd {
	return func() tea.Msg { return navigateRootMsg{name: name} }
}

func refreshCmd() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}
