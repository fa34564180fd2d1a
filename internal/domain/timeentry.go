package domain

import "time"

type TimeEntry struct {
	ID     string
	TaskID string
	// TaskTitle and ProjectName are denormalized display caches.
	TaskTitle   string
	ProjectName string
	UserID      string
	UserName    string
	Date        time.Time
	Hours       float64
	Billable    bool
	Description string
}

type TimeEntryPatch struct {
	TaskID      *string
	TaskTitle   *string
	ProjectName *string
	UserID      *string
	UserName    *string
	Date        *time.Time
	Hours       *float64
	Billable    *bool
	Description *string
}

func (tp TimeEntryPatch) Apply(te *TimeEntry) {
	te.TaskID = StrFromPtr(te.TaskID, tp.TaskID)
	te.TaskTitle = StrFromPtr(te.TaskTitle, tp.TaskTitle)
	te.ProjectName = StrFromPtr(te.ProjectName, tp.ProjectName)
	te.UserID = StrFromPtr(te.UserID, tp.UserID)
	te.UserName = StrFromPtr(te.UserName, tp.UserName)
	te.Date = TimeFromPtr(te.Date, tp.Date)
	te.Hours = Float64FromPtr(te.Hours, tp.Hours)
	te.Billable = BoolFromPtr(te.Billable, tp.Billable)
	te.Description = StrFromPtr(te.Description, tp.Description)
}

// SumHours totals the hours of the given entries.
func SumHours(entries []*TimeEntry) float64 {
	var total float64
	for _, te := range entries {
		total += te.Hours
	}
	return total
}

// SumBillableHours totals only entries flagged as billable.
func SumBillableHours(entries []*TimeEntry) float64 {
	var total float64
	for _, te := range entries {
		if te.Billable {
			total += te.Hours
		}
	}
	return total
}
