package domain

import (
	"sort"
	"time"
)

type Project struct {
	ID       string
	Name     string
	ClientID string
	// ClientName is a denormalized display cache. It is set when the project
	// is created or edited and is NOT re-propagated when the client renames.
	ClientName string
	Category   Category
	Status     ProjectStatus
	Priority   Priority
	AssignedTo []string
	DueDate    time.Time
	StartDate  time.Time
	// Juzgado and Expediente only apply to litigation matters.
	Juzgado     string
	Expediente  string
	Description string
	// Avance is the free-text "progress so far" summary.
	Avance   string
	Progress int
	Budget   float64
	Team     []string
}

// Division returns the practice area this project's category belongs to.
func (p *Project) Division() Division {
	return DivisionOf(p.Category)
}

// IsAssignedTo reports whether the user appears in the assignee list.
func (p *Project) IsAssignedTo(userID string) bool {
	for _, id := range p.AssignedTo {
		if id == userID {
			return true
		}
	}
	return false
}

type ProjectPatch struct {
	Name        *string
	ClientID    *string
	ClientName  *string
	Category    *Category
	Status      *ProjectStatus
	Priority    *Priority
	AssignedTo  *[]string
	DueDate     *time.Time
	StartDate   *time.Time
	Juzgado     *string
	Expediente  *string
	Description *string
	Avance      *string
	Progress    *int
	Budget      *float64
	Team        *[]string
}

func (pp ProjectPatch) Apply(p *Project) {
	p.Name = StrFromPtr(p.Name, pp.Name)
	p.ClientID = StrFromPtr(p.ClientID, pp.ClientID)
	p.ClientName = StrFromPtr(p.ClientName, pp.ClientName)
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	if pp.Status != nil {
		p.Status = *pp.Status
	}
	if pp.Priority != nil {
		p.Priority = *pp.Priority
	}
	if pp.AssignedTo != nil {
		p.AssignedTo = *pp.AssignedTo
	}
	p.DueDate = TimeFromPtr(p.DueDate, pp.DueDate)
	p.StartDate = TimeFromPtr(p.StartDate, pp.StartDate)
	p.Juzgado = StrFromPtr(p.Juzgado, pp.Juzgado)
	p.Expediente = StrFromPtr(p.Expediente, pp.Expediente)
	p.Description = StrFromPtr(p.Description, pp.Description)
	p.Avance = StrFromPtr(p.Avance, pp.Avance)
	p.Progress = IntFromPtr(p.Progress, pp.Progress)
	p.Budget = Float64FromPtr(p.Budget, pp.Budget)
	if pp.Team != nil {
		p.Team = *pp.Team
	}
}

// SortProjectsByDueDate orders projects by due date, earliest first (or
// latest first when desc is set).
func SortProjectsByDueDate(projects []*Project, desc bool) {
	sort.SliceStable(projects, func(i, j int) bool {
		if desc {
			return projects[i].DueDate.After(projects[j].DueDate)
		}
		return projects[i].DueDate.Before(projects[j].DueDate)
	})
}

// SortProjectsByPriority orders projects by priority rank (Critica first).
func SortProjectsByPriority(projects []*Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Priority.Rank() < projects[j].Priority.Rank()
	})
}

// SortProjectsByProgress orders projects by completion percentage, least
// advanced first.
func SortProjectsByProgress(projects []*Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Progress < projects[j].Progress
	})
}
