package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DiegoRozo23/lexpro-abogados/internal/cli/formatter"
	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// taskDetailLoadedMsg signals that a task and its time entries loaded.
type taskDetailLoadedMsg struct {
	task    *domain.Task
	entries []*domain.TimeEntry
	err     error
}

// taskDetailView shows one task: schedule, alerts, the progress history
// (newest first), and the hours logged against it.
type taskDetailView struct {
	state   *SharedState
	taskID  string
	task    *domain.Task
	entries []*domain.TimeEntry
	loading bool
	err     error
}

func newTaskDetailView(state *SharedState, taskID string) *taskDetailView {
	return &taskDetailView{state: state, taskID: taskID, loading: true}
}

func (v *taskDetailView) ID() ViewID { return ViewTaskDetail }
func (v *taskDetailView) Title() string {
	if v.task != nil {
		return v.task.Title
	}
	return "Tarea"
}

func (v *taskDetailView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "avance")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "registrar horas")),
		key.NewBinding(key.WithKeys("space"), key.WithHelp("espacio", "completar")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
	}
	if v.state.IsAdmin() {
		bindings = append(bindings, key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "eliminar")))
	}
	return bindings
}

func (v *taskDetailView) Init() tea.Cmd {
	return v.loadDetail()
}

func (v *taskDetailView) loadDetail() tea.Cmd {
	app := v.state.App
	taskID := v.taskID
	return func() tea.Msg {
		ctx := context.Background()
		task, err := app.Tasks.GetByID(ctx, taskID)
		if err != nil {
			return taskDetailLoadedMsg{err: err}
		}
		entries, err := app.TimeEntries.ListByTask(ctx, taskID)
		if err != nil {
			return taskDetailLoadedMsg{err: err}
		}
		return taskDetailLoadedMsg{task: task, entries: entries}
	}
}

func (v *taskDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDetailLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.task = msg.task
		v.entries = msg.entries
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadDetail()

	case tea.KeyMsg:
		if v.task == nil {
			return v, nil
		}
		switch msg.String() {
		case "u":
			return v, progressUpdateFormCmd(v.state, v.taskID)
		case "h":
			return v, timeEntryFormCmd(v.state, v.taskID)
		case " ":
			return v, v.toggleDone()
		case "e":
			return v, taskFormCmd(v.state, v.task, "")
		case "x":
			if v.state.IsAdmin() {
				t := v.task
				return v, confirmDeleteCmd(v.state,
					fmt.Sprintf("Eliminar la tarea %q?", t.Title),
					func(ctx context.Context) error { return v.state.App.Tasks.Delete(ctx, t.ID) },
				)
			}
		case "r":
			v.loading = true
			return v, v.loadDetail()
		}
	}
	return v, nil
}

func (v *taskDetailView) toggleDone() tea.Cmd {
	app := v.state.App
	task := v.task
	return func() tea.Msg {
		ctx := context.Background()
		status := domain.TaskCompletada
		if task.Status == domain.TaskCompletada {
			status = domain.TaskPendiente
		}
		if err := app.Tasks.Update(ctx, task.ID, domain.TaskPatch{Status: &status}); err != nil {
			return taskDetailLoadedMsg{err: err}
		}
		return refreshViewMsg{}
	}
}

func (v *taskDetailView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Cargando tarea...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	t := v.task
	now := time.Now()

	var b strings.Builder
	b.WriteString("\n  " + formatter.Bold(t.Title) + "  " + formatter.TaskStatusPill(t.Status) + " " + formatter.PriorityBadge(t.Priority) + "\n")
	b.WriteString("  " + formatter.Dim("Proyecto: ") + t.ProjectName + "  " + formatter.Dim("Responsable: ") + t.AssignedToName + "\n")
	b.WriteString(fmt.Sprintf("  %s%s %s  %s\n",
		formatter.Dim("Limite: "), t.DueDate.Format(domain.DateLayout),
		formatter.DueBadge(now, t.DueDate),
		formatter.Dim(formatter.FormatHours(domain.SumHours(v.entries))+" registradas"),
	))
	if t.Description != "" {
		b.WriteString("\n  " + t.Description + "\n")
	}

	if alerts := t.SortedAlerts(); len(alerts) > 0 {
		b.WriteString("\n  " + formatter.Header("Alertas") + "\n")
		for _, a := range alerts {
			b.WriteString("  " + formatter.StyleYellow.Render("⏰ ") + a.Date + " " + formatter.Dim(a.Time) + "\n")
		}
	}

	b.WriteString("\n  " + formatter.Header("Avance") + "\n")
	if updates := t.UpdatesNewestFirst(); len(updates) > 0 {
		for _, u := range updates {
			b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim(u.Date.Format(domain.DateLayout)), u.Content))
			b.WriteString("  " + formatter.Dim("  — "+u.Author) + "\n")
		}
	} else if t.Avance != "" {
		b.WriteString("  " + t.Avance + "\n")
	} else {
		b.WriteString("  " + formatter.Dim("Sin avances registrados.") + "\n")
	}

	if len(v.entries) > 0 {
		b.WriteString("\n  " + formatter.Header("Horas") + "\n")
		rows := make([][]string, 0, len(v.entries))
		for _, te := range v.entries {
			billable := "no"
			if te.Billable {
				billable = "si"
			}
			rows = append(rows, []string{
				te.Date.Format(domain.DateLayout),
				te.UserName,
				formatter.FormatHours(te.Hours),
				billable,
				te.Description,
			})
		}
		b.WriteString(formatter.RenderTable([]string{"Fecha", "Abogado", "Horas", "Fact.", "Descripcion"}, rows))
	}
	return b.String()
}
