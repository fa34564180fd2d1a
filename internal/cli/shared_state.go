package cli

import (
	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Session: set on login, cleared on logout.
	CurrentUser *domain.User

	// Terminal dimensions
	Width  int
	Height int
}

// LoggedIn reports whether a session is active.
func (s *SharedState) LoggedIn() bool {
	return s.CurrentUser != nil
}

// Role returns the active session's role, or empty when logged out.
func (s *SharedState) Role() domain.UserRole {
	if s.CurrentUser == nil {
		return ""
	}
	return s.CurrentUser.Role
}

// IsAdmin reports whether the active session has the admin role.
func (s *SharedState) IsAdmin() bool {
	return s.Role() == domain.RoleAdmin
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
