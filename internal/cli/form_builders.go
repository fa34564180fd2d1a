package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Form builders assemble huh forms for each mutation and wire their done
// callbacks to the service layer. Every builder returns a tea.Cmd that
// pushes a wizardView; completion pops it and refreshes the stack.

func priorityOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.AllPriorities))
	for _, p := range domain.AllPriorities {
		options = append(options, huh.NewOption(string(p), string(p)))
	}
	return options
}

func categoryOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.AllCategories))
	for _, c := range domain.AllCategories {
		options = append(options, huh.NewOption(string(c), string(c)))
	}
	return options
}

func projectStatusOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.AllProjectStatuses))
	for _, s := range domain.AllProjectStatuses {
		options = append(options, huh.NewOption(string(s), string(s)))
	}
	return options
}

func taskStatusOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.AllTaskStatuses))
	for _, s := range domain.AllTaskStatuses {
		options = append(options, huh.NewOption(string(s), string(s)))
	}
	return options
}

// clientFormCmd opens the add/edit client wizard. existing == nil means add.
func clientFormCmd(state *SharedState, existing *domain.Client) tea.Cmd {
	var name, contact, email, phone, address string
	title := "Nuevo Cliente"
	if existing != nil {
		title = "Editar Cliente"
		name = existing.Name
		contact = existing.ContactName
		email = existing.Email
		phone = existing.Phone
		address = existing.Address
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Razon social").Value(&name).Validate(validateRequired("el nombre")),
			huh.NewInput().Title("Contacto").Value(&contact),
			huh.NewInput().Title("Email").Value(&email),
			huh.NewInput().Title("Telefono").Value(&phone),
			huh.NewInput().Title("Direccion").Value(&address),
		),
	).WithTheme(lexproHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			var err error
			if existing == nil {
				err = app.Clients.Create(ctx, &domain.Client{
					Name:        name,
					ContactName: contact,
					Email:       email,
					Phone:       phone,
					Address:     address,
				})
			} else {
				err = app.Clients.Update(ctx, existing.ID, domain.ClientPatch{
					Name:        &name,
					ContactName: &contact,
					Email:       &email,
					Phone:       &phone,
					Address:     &address,
				})
			}
			if err != nil {
				return opErrMsg{err: err}
			}
			return nil
		}
	}
	return startWizardCmd(state, title, form, done)
}

// projectFormCmd opens the add/edit project wizard. existing == nil means add.
func projectFormCmd(state *SharedState, existing *domain.Project) tea.Cmd {
	ctx := context.Background()
	app := state.App

	clients := clientOptions(ctx, app)
	if len(clients) == 0 {
		return nil
	}
	lawyers := lawyerOptions(ctx, app)

	var (
		name, clientID, category, priority, status string
		assignees                                  []string
		startDate, dueDate                         string
		juzgado, expediente, description, avance   string
		progress                                   string
	)
	title := "Nuevo Proyecto"
	category = string(domain.AllCategories[0])
	priority = string(domain.PriorityMedia)
	status = string(domain.ProjectActivo)
	if existing != nil {
		title = "Editar Proyecto"
		name = existing.Name
		clientID = existing.ClientID
		category = string(existing.Category)
		priority = string(existing.Priority)
		status = string(existing.Status)
		assignees = append(assignees, existing.AssignedTo...)
		startDate = existing.StartDate.Format(domain.DateLayout)
		dueDate = existing.DueDate.Format(domain.DateLayout)
		juzgado = existing.Juzgado
		expediente = existing.Expediente
		description = existing.Description
		avance = existing.Avance
		progress = formatInt(existing.Progress)
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().Title("Nombre del asunto").Value(&name).Validate(validateRequired("el nombre")),
			huh.NewSelect[string]().Title("Cliente").Options(clients...).Value(&clientID),
			huh.NewSelect[string]().Title("Categoria").Options(categoryOptions()...).Value(&category),
			huh.NewSelect[string]().Title("Prioridad").Options(priorityOptions()...).Value(&priority),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().Title("Abogados asignados").Options(lawyers...).Value(&assignees),
			huh.NewInput().Title("Fecha de inicio (YYYY-MM-DD)").Value(&startDate).Validate(validateOptionalDate),
			huh.NewInput().Title("Fecha limite (YYYY-MM-DD)").Value(&dueDate).Validate(validateRequiredDate),
			huh.NewInput().Title("Juzgado").Value(&juzgado).Description("Solo asuntos contenciosos"),
			huh.NewInput().Title("Expediente").Value(&expediente),
			huh.NewInput().Title("Descripcion").Value(&description),
		),
	}
	if existing != nil {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().Title("Estado").Options(projectStatusOptions()...).Value(&status),
			huh.NewInput().Title("Avance (%)").Value(&progress).Validate(validateOptionalNonNegativeInt),
			huh.NewInput().Title("Resumen de avance").Value(&avance),
		))
	}
	form := huh.NewForm(groups...).WithTheme(lexproHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			cat := domain.Category(category)
			prio := domain.Priority(priority)
			st := domain.ProjectStatus(status)
			var start, due time.Time
			if startDate != "" {
				start, _ = time.Parse(domain.DateLayout, startDate)
			}
			if dueDate != "" {
				due, _ = time.Parse(domain.DateLayout, dueDate)
			}

			var err error
			if existing == nil {
				err = app.Projects.Create(ctx, &domain.Project{
					Name:        name,
					ClientID:    clientID,
					Category:    cat,
					Priority:    prio,
					AssignedTo:  assignees,
					StartDate:   start,
					DueDate:     due,
					Juzgado:     juzgado,
					Expediente:  expediente,
					Description: description,
				})
			} else {
				prog := parseNonNegativeInt(progress, existing.Progress)
				err = app.Projects.Update(ctx, existing.ID, domain.ProjectPatch{
					Name:        &name,
					ClientID:    &clientID,
					Category:    &cat,
					Status:      &st,
					Priority:    &prio,
					AssignedTo:  &assignees,
					StartDate:   &start,
					DueDate:     &due,
					Juzgado:     &juzgado,
					Expediente:  &expediente,
					Description: &description,
					Avance:      &avance,
					Progress:    &prog,
				})
			}
			if err != nil {
				return opErrMsg{err: err}
			}
			return nil
		}
	}
	return startWizardCmd(state, title, form, done)
}

// taskFormCmd opens the add/edit task wizard. projectID preselects the
// project for new tasks pushed from a project detail screen.
func taskFormCmd(state *SharedState, existing *domain.Task, projectID string) tea.Cmd {
	ctx := context.Background()
	app := state.App

	projects := projectOptions(ctx, app)
	if len(projects) == 0 {
		return nil
	}
	lawyers := lawyerOptions(ctx, app)

	var (
		taskTitle, projID, assignee, priority, status string
		dueDate, description                          string
	)
	title := "Nueva Tarea"
	projID = projectID
	priority = string(domain.PriorityMedia)
	status = string(domain.TaskPendiente)
	if existing != nil {
		title = "Editar Tarea"
		taskTitle = existing.Title
		projID = existing.ProjectID
		assignee = existing.AssignedTo
		priority = string(existing.Priority)
		status = string(existing.Status)
		dueDate = existing.DueDate.Format(domain.DateLayout)
		description = existing.Description
	}

	fields := []huh.Field{
		huh.NewInput().Title("Titulo").Value(&taskTitle).Validate(validateRequired("el titulo")),
		huh.NewSelect[string]().Title("Proyecto").Options(projects...).Value(&projID),
		huh.NewSelect[string]().Title("Responsable").Options(lawyers...).Value(&assignee),
		huh.NewSelect[string]().Title("Prioridad").Options(priorityOptions()...).Value(&priority),
		huh.NewInput().Title("Fecha limite (YYYY-MM-DD)").Value(&dueDate).Validate(validateRequiredDate),
		huh.NewInput().Title("Descripcion").Value(&description),
	}
	if existing != nil {
		fields = append(fields,
			huh.NewSelect[string]().Title("Estado").Options(taskStatusOptions()...).Value(&status),
		)
	}
	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(lexproHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			prio := domain.Priority(priority)
			st := domain.TaskStatus(status)
			due, _ := time.Parse(domain.DateLayout, dueDate)

			var err error
			if existing == nil {
				err = app.Tasks.Create(ctx, &domain.Task{
					Title:       taskTitle,
					ProjectID:   projID,
					AssignedTo:  assignee,
					Priority:    prio,
					DueDate:     due,
					Description: description,
				})
			} else {
				err = app.Tasks.Update(ctx, existing.ID, domain.TaskPatch{
					Title:       &taskTitle,
					ProjectID:   &projID,
					AssignedTo:  &assignee,
					Priority:    &prio,
					Status:      &st,
					DueDate:     &due,
					Description: &description,
				})
			}
			if err != nil {
				return opErrMsg{err: err}
			}
			return nil
		}
	}
	return startWizardCmd(state, title, form, done)
}

// timeEntryFormCmd opens the wizard to log hours. taskID preselects the task
// when launched from a task detail screen.
func timeEntryFormCmd(state *SharedState, taskID string) tea.Cmd {
	ctx := context.Background()
	app := state.App
	user := state.CurrentUser
	if user == nil {
		return nil
	}

	taskList, err := app.Tasks.List(ctx)
	if err != nil || len(taskList) == 0 {
		return nil
	}
	options := make([]huh.Option[string], 0, len(taskList))
	for _, t := range taskList {
		options = append(options, huh.NewOption(t.Title+" ("+t.ProjectName+")", t.ID))
	}

	var (
		selTask     = taskID
		date        = time.Now().Format(domain.DateLayout)
		hours       string
		billable    = true
		description string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Tarea").Options(options...).Value(&selTask),
			huh.NewInput().Title("Fecha (YYYY-MM-DD)").Value(&date).Validate(validateRequiredDate),
			huh.NewInput().Title("Horas").Placeholder("2.5").Value(&hours).Validate(validatePositiveHours),
			huh.NewConfirm().Title("Facturable").Affirmative("Si").Negative("No").Value(&billable),
			huh.NewInput().Title("Descripcion").Value(&description).Validate(validateRequired("la descripcion")),
		),
	).WithTheme(lexproHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			day, _ := time.Parse(domain.DateLayout, date)
			if err := app.TimeEntries.Create(ctx, &domain.TimeEntry{
				TaskID:      selTask,
				UserID:      user.ID,
				Date:        day,
				Hours:       parseHours(hours),
				Billable:    billable,
				Description: description,
			}); err != nil {
				return opErrMsg{err: err}
			}
			return nil
		}
	}
	return startWizardCmd(state, "Registrar Horas", form, done)
}

// timeEntryEditFormCmd opens the wizard to correct an existing time entry.
// The task and the author stay fixed; only the logged values change.
func timeEntryEditFormCmd(state *SharedState, existing *domain.TimeEntry) tea.Cmd {
	app := state.App
	if existing == nil {
		return nil
	}

	var (
		date        = existing.Date.Format(domain.DateLayout)
		hours       = strconv.FormatFloat(existing.Hours, 'f', -1, 64)
		billable    = existing.Billable
		description = existing.Description
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Fecha (YYYY-MM-DD)").Value(&date).Validate(validateRequiredDate),
			huh.NewInput().Title("Horas").Value(&hours).Validate(validatePositiveHours),
			huh.NewConfirm().Title("Facturable").Affirmative("Si").Negative("No").Value(&billable),
			huh.NewInput().Title("Descripcion").Value(&description).Validate(validateRequired("la descripcion")),
		),
	).WithTheme(lexproHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			day, _ := time.Parse(domain.DateLayout, date)
			h := parseHours(hours)
			if err := app.TimeEntries.Update(ctx, existing.ID, domain.TimeEntryPatch{
				Date:        &day,
				Hours:       &h,
				Billable:    &billable,
				Description: &description,
			}); err != nil {
				return opErrMsg{err: err}
			}
			return nil
		}
	}
	return startWizardCmd(state, "Editar Registro", form, done)
}

// progressUpdateFormCmd opens the wizard to append a progress note to a task.
func progressUpdateFormCmd(state *SharedState, taskID string) tea.Cmd {
	user := state.CurrentUser
	if user == nil {
		return nil
	}
	var content string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().Title("Avance").Value(&content).Validate(validateRequired("el avance")),
		),
	).WithTheme(lexproHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			if err := app.Tasks.AddProgressUpdate(context.Background(), taskID, content, user.Name); err != nil {
				return opErrMsg{err: err}
			}
			return nil
		}
	}
	return startWizardCmd(state, "Registrar Avance", form, done)
}

// confirmDeleteCmd opens a yes/no wizard and runs del only on confirmation.
func confirmDeleteCmd(state *SharedState, prompt string, del func(ctx context.Context) error) tea.Cmd {
	var confirmed bool
	form := wizardConfirm(prompt, &confirmed)
	done := func() tea.Cmd {
		if !confirmed {
			return nil
		}
		return func() tea.Msg {
			if err := del(context.Background()); err != nil {
				return opErrMsg{err: err}
			}
			return nil
		}
	}
	return startWizardCmd(state, "Confirmar", form, done)
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}
