package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DiegoRozo23/lexpro-abogados/internal/cli/formatter"
	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// taskListLoadedMsg signals that task data has been loaded.
type taskListLoadedMsg struct {
	tasks []*domain.Task
	err   error
}

// taskListView lists tasks sorted by due date. Admins see every task;
// lawyers see their own. projectID, when set, scopes the list to one matter.
// "tab" cycles the status tabs, "space" toggles pending/completed.
type taskListView struct {
	state     *SharedState
	projectID string
	tasks     []*domain.Task
	cursor    int
	loading   bool
	err       error
	search    searchBar
	// statusTab indexes taskStatusTabs; 0 is the "all" tab.
	statusTab   int
	priorityTab int
	assigneeTab int
	// byPriority switches the ordering from due date to priority rank.
	byPriority bool
}

// taskStatusTabs is the tab order; the empty leading entry means no filter.
var taskStatusTabs = append([]domain.TaskStatus{""}, domain.AllTaskStatuses...)

var taskPriorityTabs = append([]domain.Priority{""}, domain.AllPriorities...)

func newTaskListView(state *SharedState, projectID string) *taskListView {
	return &taskListView{state: state, projectID: projectID, loading: true, search: newSearchBar()}
}

func (v *taskListView) ID() ViewID    { return ViewTaskList }
func (v *taskListView) Title() string { return "Tareas" }

func (v *taskListView) capturingInput() bool { return v.search.Active() }

func (v *taskListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "estado")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "prioridad")),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "abogado")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "orden")),
		key.NewBinding(key.WithKeys("space"), key.WithHelp("espacio", "completar")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "buscar")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "nueva")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "eliminar")),
	}
}

func (v *taskListView) Init() tea.Cmd {
	return v.loadTasks()
}

func (v *taskListView) loadTasks() tea.Cmd {
	app := v.state.App
	user := v.state.CurrentUser
	admin := v.state.IsAdmin()
	projectID := v.projectID
	return func() tea.Msg {
		ctx := context.Background()
		var (
			tasks []*domain.Task
			err   error
		)
		switch {
		case projectID != "":
			tasks, err = app.Tasks.ListByProject(ctx, projectID)
		case admin || user == nil:
			tasks, err = app.Tasks.List(ctx)
		default:
			tasks, err = app.Tasks.ListByAssignee(ctx, user.ID)
		}
		if err == nil {
			domain.SortTasksByDueDate(tasks, false)
		}
		return taskListLoadedMsg{tasks: tasks, err: err}
	}
}

// assignees returns the assignee filter cycle: "" (all) plus every distinct
// assignee name among the loaded tasks, in first-seen order.
func (v *taskListView) assignees() []string {
	names := []string{""}
	seen := make(map[string]bool)
	for _, t := range v.tasks {
		if t.AssignedToName != "" && !seen[t.AssignedToName] {
			seen[t.AssignedToName] = true
			names = append(names, t.AssignedToName)
		}
	}
	return names
}

func (v *taskListView) filtered() []*domain.Task {
	status := taskStatusTabs[v.statusTab]
	priority := taskPriorityTabs[v.priorityTab]
	assigneeNames := v.assignees()
	assignee := assigneeNames[v.assigneeTab%len(assigneeNames)]
	q := v.search.Query()
	var out []*domain.Task
	for _, t := range v.tasks {
		if status != "" && t.Status != status {
			continue
		}
		if priority != "" && t.Priority != priority {
			continue
		}
		if assignee != "" && t.AssignedToName != assignee {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.ProjectName), q) &&
			!strings.Contains(strings.ToLower(t.AssignedToName), q) {
			continue
		}
		out = append(out, t)
	}
	if v.byPriority {
		domain.SortTasksByPriority(out)
	}
	return out
}

// statusCounts tallies the loaded tasks per status for the tab bar.
func (v *taskListView) statusCounts() map[domain.TaskStatus]int {
	counts := make(map[domain.TaskStatus]int, len(domain.AllTaskStatuses))
	for _, t := range v.tasks {
		counts[t.Status]++
	}
	return counts
}

func (v *taskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskListLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.tasks = msg.tasks
		if v.cursor >= len(v.tasks) {
			v.cursor = 0
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadTasks()

	case tea.KeyMsg:
		if v.search.Active() {
			cmd := v.search.HandleKey(msg)
			v.cursor = 0
			return v, cmd
		}
		visible := v.filtered()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(visible)-1 {
				v.cursor++
			}
		case "/":
			v.cursor = 0
			return v, v.search.Open()
		case "tab":
			v.statusTab = (v.statusTab + 1) % len(taskStatusTabs)
			v.cursor = 0
		case "f":
			v.priorityTab = (v.priorityTab + 1) % len(taskPriorityTabs)
			v.cursor = 0
		case "o":
			v.assigneeTab = (v.assigneeTab + 1) % len(v.assignees())
			v.cursor = 0
		case "s":
			v.byPriority = !v.byPriority
			v.cursor = 0
		case "enter":
			if v.cursor < len(visible) {
				t := visible[v.cursor]
				return v, pushViewCmd(
					newTaskDetailView(v.state, t.ID),
					nav.Frame{Name: nav.ViewTaskDetail, Params: map[string]string{"id": t.ID}, Title: t.Title},
				)
			}
		case " ":
			if v.cursor < len(visible) {
				return v, v.toggleDone(visible[v.cursor])
			}
		case "a":
			return v, taskFormCmd(v.state, nil, v.projectID)
		case "e":
			if v.cursor < len(visible) {
				return v, taskFormCmd(v.state, visible[v.cursor], "")
			}
		case "x":
			if v.state.IsAdmin() && v.cursor < len(visible) {
				t := visible[v.cursor]
				return v, confirmDeleteCmd(v.state,
					fmt.Sprintf("Eliminar la tarea %q?", t.Title),
					func(ctx context.Context) error { return v.state.App.Tasks.Delete(ctx, t.ID) },
				)
			}
		case "r":
			v.loading = true
			return v, v.loadTasks()
		}
	}
	return v, nil
}

func (v *taskListView) toggleDone(task *domain.Task) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		status := domain.TaskCompletada
		if task.Status == domain.TaskCompletada {
			status = domain.TaskPendiente
		}
		if err := app.Tasks.Update(ctx, task.ID, domain.TaskPatch{Status: &status}); err != nil {
			return taskListLoadedMsg{err: err}
		}
		return refreshViewMsg{}
	}
}

func (v *taskListView) renderTabs() string {
	counts := v.statusCounts()
	labels := make([]string, 0, len(taskStatusTabs))
	for i, status := range taskStatusTabs {
		name := "Todas"
		n := len(v.tasks)
		if status != "" {
			name = string(status)
			n = counts[status]
		}
		label := fmt.Sprintf("%s (%d)", name, n)
		if i == v.statusTab {
			label = formatter.StyleHeader.Render(label)
		} else {
			label = formatter.Dim(label)
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, " · ")
}

func (v *taskListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Cargando tareas...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n  " + v.renderTabs() + "\n\n")
	if v.priorityTab != 0 || v.assigneeTab != 0 || v.byPriority {
		assigneeNames := v.assignees()
		order := "vencimiento"
		if v.byPriority {
			order = "prioridad"
		}
		filters := []string{
			"prioridad: " + tabLabel(string(taskPriorityTabs[v.priorityTab])),
			"abogado: " + tabLabel(assigneeNames[v.assigneeTab%len(assigneeNames)]),
			"orden: " + order,
		}
		b.WriteString("  " + formatter.Dim(strings.Join(filters, " · ")) + "\n\n")
	}
	if sv := v.search.View(); sv != "" {
		b.WriteString("  " + sv + "\n\n")
	}

	visible := v.filtered()
	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("Sin tareas.") + "\n")
		return b.String()
	}

	now := time.Now()
	for i, t := range visible {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		check := " "
		if t.Status == domain.TaskCompletada {
			check = formatter.StyleGreen.Render("✓")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s %s  %s %s\n",
			cursor, check,
			formatter.PriorityBadge(t.Priority),
			t.Title,
			formatter.Dim(t.ProjectName),
			formatter.Dim(t.AssignedToName),
			formatter.DueBadge(now, t.DueDate),
		))
	}
	b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("%d tareas", len(visible))) + "\n")
	return b.String()
}
