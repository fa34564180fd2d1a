package domain

import (
	"sort"
	"time"
)

// TaskAlert is a scheduled reminder for a task, kept as date + wall-clock
// strings ("2026-02-10", "09:00") exactly as entered.
type TaskAlert struct {
	Date string
	Time string
}

// sortKey orders alerts chronologically; ISO date + 24h time compare lexically.
func (a TaskAlert) sortKey() string { return a.Date + "T" + a.Time }

// ProgressUpdate is one entry in a task's structured progress history.
type ProgressUpdate struct {
	ID      string
	Date    time.Time
	Content string
	Author  string
}

type Task struct {
	ID        string
	Title     string
	ProjectID string
	// ProjectName and AssignedToName are denormalized display caches; they go
	// stale if the referenced project or user renames (accepted behavior).
	ProjectName    string
	AssignedTo     string
	AssignedToName string
	Priority       Priority
	Status         TaskStatus
	DueDate        time.Time
	Description    string
	HoursLogged    float64
	Alerts         []TaskAlert
	// Avance is the scalar latest-progress note. AddProgressUpdate overwrites
	// it with the newest update's content; detail screens show the structured
	// history when non-empty and fall back to Avance only when it is empty.
	Avance          string
	ProgressUpdates []ProgressUpdate
}

// SortedAlerts returns the alert schedule in chronological order.
func (t *Task) SortedAlerts() []TaskAlert {
	out := make([]TaskAlert, len(t.Alerts))
	copy(out, t.Alerts)
	sort.Slice(out, func(i, j int) bool { return out[i].sortKey() < out[j].sortKey() })
	return out
}

// UpdatesNewestFirst returns the progress history sorted by date descending.
func (t *Task) UpdatesNewestFirst() []ProgressUpdate {
	out := make([]ProgressUpdate, len(t.ProgressUpdates))
	copy(out, t.ProgressUpdates)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

type TaskPatch struct {
	Title          *string
	ProjectID      *string
	ProjectName    *string
	AssignedTo     *string
	AssignedToName *string
	Priority       *Priority
	Status         *TaskStatus
	DueDate        *time.Time
	Description    *string
	HoursLogged    *float64
	Alerts         *[]TaskAlert
	Avance         *string
}

func (tp TaskPatch) Apply(t *Task) {
	t.Title = StrFromPtr(t.Title, tp.Title)
	t.ProjectID = StrFromPtr(t.ProjectID, tp.ProjectID)
	t.ProjectName = StrFromPtr(t.ProjectName, tp.ProjectName)
	t.AssignedTo = StrFromPtr(t.AssignedTo, tp.AssignedTo)
	t.AssignedToName = StrFromPtr(t.AssignedToName, tp.AssignedToName)
	if tp.Priority != nil {
		t.Priority = *tp.Priority
	}
	if tp.Status != nil {
		t.Status = *tp.Status
	}
	t.DueDate = TimeFromPtr(t.DueDate, tp.DueDate)
	t.Description = StrFromPtr(t.Description, tp.Description)
	t.HoursLogged = Float64FromPtr(t.HoursLogged, tp.HoursLogged)
	if tp.Alerts != nil {
		t.Alerts = *tp.Alerts
	}
	t.Avance = StrFromPtr(t.Avance, tp.Avance)
}

// SortTasksByDueDate orders tasks by due date, earliest first (or latest
// first when desc is set).
func SortTasksByDueDate(tasks []*Task, desc bool) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if desc {
			return tasks[i].DueDate.After(tasks[j].DueDate)
		}
		return tasks[i].DueDate.Before(tasks[j].DueDate)
	})
}

// SortTasksByPriority orders tasks by priority rank (Critica first).
func SortTasksByPriority(tasks []*Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority.Rank() < tasks[j].Priority.Rank()
	})
}
