// Package nav implements the view stack router: an always-non-empty LIFO
// history of view frames with push, back, breadcrumb truncation, and a
// replace-all root jump. It has no rendering dependencies; the TUI layer
// owns one Stack and derives the visible screen and breadcrumb trail from it.
package nav

// ViewName identifies a top-level screen.
type ViewName string

const (
	ViewLogin          ViewName = "login"
	ViewDashboard      ViewName = "dashboard"
	ViewProyectos      ViewName = "proyectos"
	ViewProjectDetail  ViewName = "project-detail"
	ViewTareas         ViewName = "tareas"
	ViewTaskDetail     ViewName = "task-detail"
	ViewClientes       ViewName = "clientes"
	ViewClientDetail   ViewName = "client-detail"
	ViewMiPanel        ViewName = "mi-panel"
	ViewTiempos        ViewName = "tiempos"
	ViewNotificaciones ViewName = "notificaciones"
	ViewForm           ViewName = "form"
)

// Frame is one entry in the navigation history. Params and Title are opaque
// pass-through data for the destination screen. Frames are immutable once
// pushed; navigation only appends or truncates.
type Frame struct {
	Name   ViewName
	Params map[string]string
	Title  string
}

// Param returns the named parameter, or "" when absent.
func (f Frame) Param(key string) string {
	return f.Params[key]
}

// Stack is the navigation history. The zero value is not usable; construct
// with New so the root frame invariant holds from the start.
type Stack struct {
	frames []Frame
}

// New returns a stack containing the single root frame.
func New(root Frame) *Stack {
	return &Stack{frames: []Frame{root}}
}

// Push appends a frame, making it the current view. Never fails.
func (s *Stack) Push(f Frame) {
	s.frames = append(s.frames, f)
}

// Back removes the current frame unless only the root remains, in which
// case it is a no-op.
func (s *Stack) Back() {
	if len(s.frames) > 1 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// PopTo truncates the history so the frame at index becomes current.
// Out-of-range indices clamp: negative keeps only the root, an index past
// the end leaves the stack unchanged.
func (s *Stack) PopTo(index int) {
	if index < 0 {
		index = 0
	}
	if index >= len(s.frames)-1 {
		return
	}
	s.frames = s.frames[:index+1]
}

// NavigateRoot replaces the whole history with a single bare frame for name,
// discarding params and titles. Used for root-level jumps that should not
// leave a breadcrumb trail.
func (s *Stack) NavigateRoot(name ViewName) {
	s.frames = []Frame{{Name: name}}
}

// Current returns the topmost frame.
func (s *Stack) Current() Frame {
	return s.frames[len(s.frames)-1]
}

// Len returns the history depth, always >= 1.
func (s *Stack) Len() int {
	return len(s.frames)
}

// Frames returns a copy of the history, root first, for breadcrumb rendering.
func (s *Stack) Frames() []Frame {
	out := make([]Frame, len(s.frames))
	copy(out, s.frames)
	return out
}
