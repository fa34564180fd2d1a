package formatter

import (
	"testing"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "12h", FormatHours(12))
	assert.Equal(t, "3.5h", FormatHours(3.5))
	assert.Equal(t, "0h", FormatHours(0))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$150,000 MXN", FormatMoney(150000))
	assert.Equal(t, "$985 MXN", FormatMoney(985))
	assert.Equal(t, "$1,250,000 MXN", FormatMoney(1250000))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc   ", PadRight("abc", 6))
	assert.Equal(t, "abcde…", PadRight("abcdefgh", 6))
}

func TestPriorityBadge(t *testing.T) {
	for _, p := range domain.AllPriorities {
		assert.Contains(t, PriorityBadge(p), string(p))
	}
}

func TestTaskStatusPill(t *testing.T) {
	for _, s := range domain.AllTaskStatuses {
		assert.Contains(t, TaskStatusPill(s), string(s))
	}
}

func TestDueBadge(t *testing.T) {
	now := domain.MustDate("2026-02-13")

	assert.Contains(t, DueBadge(now, domain.MustDate("2026-02-10")), "vencida")
	assert.Contains(t, DueBadge(now, domain.MustDate("2026-02-13")), "hoy")
	assert.Contains(t, DueBadge(now, domain.MustDate("2026-02-15")), "2d")
	assert.Contains(t, DueBadge(now, domain.MustDate("2026-02-18")), "5d")
}

func TestRenderProgress(t *testing.T) {
	bar := RenderProgress(0.5, 8)
	assert.Contains(t, bar, "50%")
	assert.Contains(t, bar, filledBlock)
	assert.Contains(t, bar, emptyBlock)

	full := RenderProgress(1.2, 4)
	assert.Contains(t, full, "100%")
}

func TestRoleLabel(t *testing.T) {
	assert.Contains(t, RoleLabel(domain.RoleAdmin), "admin")
	assert.Contains(t, RoleLabel(domain.RoleAbogado), "abogado")
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("Resumen", "contenido")
	assert.Contains(t, out, "RESUMEN")
	assert.Contains(t, out, "contenido")

	untitled := RenderBox("", "solo texto")
	assert.Contains(t, untitled, "solo texto")
	assert.NotContains(t, untitled, "SOLO")
}

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"ID", "Nombre"}, [][]string{{"p1", "Recurso SAT"}})
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Recurso SAT")
}
