package formatter

import (
	"fmt"
	"time"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
)

// PriorityBadge returns a colored badge for a priority level.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityCritica:
		return StyleRed.Render("▲ Critica")
	case domain.PriorityAlta:
		return StyleYellow.Render("▲ Alta")
	case domain.PriorityMedia:
		return StyleBlue.Render("● Media")
	case domain.PriorityBaja:
		return StyleDim.Render("▽ Baja")
	default:
		return StyleDim.Render(string(p))
	}
}

// TaskStatusPill returns a colored status indicator for a task.
func TaskStatusPill(s domain.TaskStatus) string {
	switch s {
	case domain.TaskPendiente:
		return StyleBlue.Render("○ Pendiente")
	case domain.TaskEnProgreso:
		return StyleYellow.Render("▶ En Progreso")
	case domain.TaskCompletada:
		return StyleGreen.Render("✔ Completada")
	case domain.TaskVencida:
		return StyleRed.Render("✖ Vencida")
	default:
		return StyleDim.Render(string(s))
	}
}

// ProjectStatusPill returns a colored status indicator for a project.
func ProjectStatusPill(s domain.ProjectStatus) string {
	switch s {
	case domain.ProjectActivo:
		return StyleGreen.Render("● Activo")
	case domain.ProjectEnEspera:
		return StyleYellow.Render("○ En Espera")
	case domain.ProjectCompletado:
		return StyleDim.Render("✔ Completado")
	default:
		return StyleDim.Render(string(s))
	}
}

// DivisionBadge returns a colored badge for a practice area.
func DivisionBadge(d domain.Division) string {
	if d == domain.DivisionCorporativo {
		return StyleYellow.Render("[Corporativo]")
	}
	return StyleBlue.Render("[Fiscal]")
}

// CategoryTag renders a category name with its division color.
func CategoryTag(c domain.Category) string {
	if domain.DivisionOf(c) == domain.DivisionCorporativo {
		return StyleYellow.Render(string(c))
	}
	return StyleBlue.Render(string(c))
}

// NotificationGlyph returns a one-rune icon for a notification type.
func NotificationGlyph(t domain.NotificationType) string {
	switch t {
	case domain.NotificationVencimiento:
		return StyleRed.Render("!")
	case domain.NotificationAsignacion:
		return StyleGreen.Render("+")
	case domain.NotificationRecordatorio:
		return StyleYellow.Render("~")
	default:
		return StyleDim.Render("·")
	}
}

// RoleLabel returns a styled label for a user role.
func RoleLabel(r domain.UserRole) string {
	if r == domain.RoleAdmin {
		return StylePurple.Render("admin")
	}
	return StyleBlue.Render("abogado")
}

// DueBadge renders a due date with urgency coloring from a reference day:
// red when overdue or due within 2 days, yellow within 7, plain otherwise.
func DueBadge(now, due time.Time) string {
	days := domain.DaysRemaining(now, due)
	text := due.Format("02 Jan 2006")
	switch {
	case days < 0:
		return StyleRed.Render(fmt.Sprintf("%s (vencida)", text))
	case days == 0:
		return StyleRed.Render(text + " (hoy)")
	case days <= 2:
		return StyleRed.Render(fmt.Sprintf("%s (%dd)", text, days))
	case days <= 7:
		return StyleYellow.Render(fmt.Sprintf("%s (%dd)", text, days))
	default:
		return StyleFg.Render(text)
	}
}
