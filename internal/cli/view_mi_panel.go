package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DiegoRozo23/lexpro-abogados/internal/cli/formatter"
	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/nav"
	"github.com/DiegoRozo23/lexpro-abogados/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// miPanelLoadedMsg signals that the lawyer's personal data loaded.
type miPanelLoadedMsg struct {
	summary  *service.UserSummary
	tasks    []*domain.Task
	projects []*domain.Project
	err      error
}

// miPanelView is the lawyer's home screen: their personal counters, open
// tasks sorted by due date, and assigned matters.
type miPanelView struct {
	state    *SharedState
	summary  *service.UserSummary
	tasks    []*domain.Task
	projects []*domain.Project
	cursor   int
	loading  bool
	err      error
}

func newMiPanelView(state *SharedState) *miPanelView {
	return &miPanelView{state: state, loading: true}
}

func (v *miPanelView) ID() ViewID    { return ViewMiPanel }
func (v *miPanelView) Title() string { return "Mi Panel" }

func (v *miPanelView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir tarea")),
		key.NewBinding(key.WithKeys("space"), key.WithHelp("espacio", "completar")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "registrar horas")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refrescar")),
	}
}

func (v *miPanelView) Init() tea.Cmd {
	return v.loadData()
}

func (v *miPanelView) loadData() tea.Cmd {
	app := v.state.App
	user := v.state.CurrentUser
	return func() tea.Msg {
		if user == nil {
			return miPanelLoadedMsg{err: fmt.Errorf("sin sesion activa")}
		}
		ctx := context.Background()
		summary, err := app.Stats.UserSummary(ctx, user.ID)
		if err != nil {
			return miPanelLoadedMsg{err: err}
		}
		tasks, err := app.Tasks.ListByAssignee(ctx, user.ID)
		if err != nil {
			return miPanelLoadedMsg{err: err}
		}
		open := tasks[:0]
		for _, t := range tasks {
			if t.Status != domain.TaskCompletada {
				open = append(open, t)
			}
		}
		domain.SortTasksByDueDate(open, false)
		open = groupOpenTasks(open)

		projects, err := app.Projects.ListForUser(ctx, user.ID)
		if err != nil {
			return miPanelLoadedMsg{err: err}
		}
		return miPanelLoadedMsg{summary: summary, tasks: open, projects: projects}
	}
}

// miPanelGroups is the display order of the open-task sections.
var miPanelGroups = []domain.TaskStatus{domain.TaskVencida, domain.TaskEnProgreso, domain.TaskPendiente}

// groupOpenTasks reorders due-date-sorted open tasks so overdue work comes
// first, then tasks in progress, then pending ones.
func groupOpenTasks(tasks []*domain.Task) []*domain.Task {
	out := make([]*domain.Task, 0, len(tasks))
	for _, status := range miPanelGroups {
		for _, t := range tasks {
			if t.Status == status {
				out = append(out, t)
			}
		}
	}
	return out
}

func (v *miPanelView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case miPanelLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.summary = msg.summary
		v.tasks = msg.tasks
		v.projects = msg.projects
		if v.cursor >= len(v.tasks) {
			v.cursor = 0
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.tasks)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.tasks) {
				t := v.tasks[v.cursor]
				return v, pushViewCmd(
					newTaskDetailView(v.state, t.ID),
					nav.Frame{Name: nav.ViewTaskDetail, Params: map[string]string{"id": t.ID}, Title: t.Title},
				)
			}
		case " ":
			if v.cursor < len(v.tasks) {
				return v, v.completeTask(v.tasks[v.cursor])
			}
		case "h":
			return v, timeEntryFormCmd(v.state, "")
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}
	return v, nil
}

func (v *miPanelView) completeTask(task *domain.Task) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		status := domain.TaskCompletada
		if err := app.Tasks.Update(context.Background(), task.ID, domain.TaskPatch{Status: &status}); err != nil {
			return miPanelLoadedMsg{err: err}
		}
		return refreshViewMsg{}
	}
}

func (v *miPanelView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Cargando mi panel...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	s := v.summary
	user := v.state.CurrentUser

	var b strings.Builder
	b.WriteString("\n  " + formatter.Bold("Hola, "+user.Name) + "\n\n")
	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n",
		formatter.Bold(fmt.Sprintf("%d", s.ActiveProjects)), formatter.Dim("asuntos activos"),
		formatter.Bold(fmt.Sprintf("%d", s.PendingTasks)), formatter.Dim("tareas abiertas"),
		formatter.Bold(fmt.Sprintf("%d", s.CompletedTasks)), formatter.Dim("completadas"),
	))
	if s.OverdueTasks > 0 {
		b.WriteString("  " + formatter.StyleRed.Render(fmt.Sprintf("%d tareas vencidas", s.OverdueTasks)) + "\n")
	}
	b.WriteString("  " + formatter.Dim(fmt.Sprintf("Horas: %s registradas, %s facturables",
		formatter.FormatHours(s.TotalHours), formatter.FormatHours(s.BillableHours))) + "\n")

	b.WriteString("\n  " + formatter.Header("Mis tareas") + "\n")
	if len(v.tasks) == 0 {
		b.WriteString("  " + formatter.Dim("Sin tareas abiertas.") + "\n")
	}
	now := time.Now()
	var lastStatus domain.TaskStatus
	for i, t := range v.tasks {
		if t.Status != lastStatus {
			lastStatus = t.Status
			b.WriteString("  " + formatter.Dim(string(t.Status)) + "\n")
		}
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s %s\n",
			cursor,
			formatter.PriorityBadge(t.Priority),
			t.Title,
			formatter.Dim(t.ProjectName),
			formatter.DueBadge(now, t.DueDate),
		))
	}

	if len(v.projects) > 0 {
		b.WriteString("\n  " + formatter.Header("Mis asuntos") + "\n")
		for _, p := range v.projects {
			b.WriteString(fmt.Sprintf("  %s %s  %s %s\n",
				formatter.ProjectStatusPill(p.Status),
				p.Name,
				formatter.Dim(p.ClientName),
				formatter.RenderProgress(float64(p.Progress)/100, 8),
			))
		}
	}
	return b.String()
}
